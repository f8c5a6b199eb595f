package enquiries

import (
	"clinicdesk-service/internal/app/contracts"
	"clinicdesk-service/internal/app/services/upstream/backendrest"
	"clinicdesk-service/internal/pkg/constvars"
	"clinicdesk-service/internal/pkg/dto/requests"
	"clinicdesk-service/internal/pkg/dto/responses"
	"context"
	"sync"

	"go.uber.org/zap"
)

var (
	enquiryBackendClientInstance contracts.EnquiryBackendClient
	onceEnquiryBackendClient     sync.Once
)

type enquiryBackendClient struct {
	Rest *backendrest.Client
	Log  *zap.Logger
}

func NewEnquiryBackendClient(rest *backendrest.Client, logger *zap.Logger) contracts.EnquiryBackendClient {
	onceEnquiryBackendClient.Do(func() {
		enquiryBackendClientInstance = &enquiryBackendClient{
			Rest: rest,
			Log:  logger,
		}
	})
	return enquiryBackendClientInstance
}

func (c *enquiryBackendClient) FindAllEnquiries(ctx context.Context) ([]responses.Enquiry, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("enquiryBackendClient.FindAllEnquiries called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var enquiries []responses.Enquiry
	err := c.Rest.Do(ctx, constvars.MethodGet, "/api/contact", nil, &enquiries, constvars.ResourceEnquiry)
	if err != nil {
		c.Log.Error("enquiryBackendClient.FindAllEnquiries failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return enquiries, nil
}

func (c *enquiryBackendClient) CreateEnquiry(ctx context.Context, request *requests.CreateEnquiry) (*responses.Enquiry, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("enquiryBackendClient.CreateEnquiry called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	enquiry := new(responses.Enquiry)
	err := c.Rest.Do(ctx, constvars.MethodPost, "/api/contact", request, enquiry, constvars.ResourceEnquiry)
	if err != nil {
		c.Log.Error("enquiryBackendClient.CreateEnquiry failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("enquiryBackendClient.CreateEnquiry succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingEnquiryIDKey, enquiry.ID),
	)
	return enquiry, nil
}
