package enquiries

import (
	"clinicdesk-service/internal/pkg/dto/requests"
	"clinicdesk-service/internal/pkg/dto/responses"
	"context"
)

type EnquiryUsecase interface {
	FindAll(ctx context.Context) ([]responses.Enquiry, error)
	Create(ctx context.Context, request *requests.CreateEnquiry) (*responses.Enquiry, error)
}
