package contracts

import (
	"clinicdesk-service/internal/pkg/dto/requests"
	"clinicdesk-service/internal/pkg/dto/responses"
	"context"
)

type EnquiryBackendClient interface {
	FindAllEnquiries(ctx context.Context) ([]responses.Enquiry, error)
	CreateEnquiry(ctx context.Context, request *requests.CreateEnquiry) (*responses.Enquiry, error)
}
