package contracts

import "context"

type ObjectStorage interface {
	UploadProfileImage(ctx context.Context, objectName string, data []byte, contentType string) (string, error)
}
