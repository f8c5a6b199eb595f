package enquiries

import (
	"clinicdesk-service/internal/app/contracts"
	"clinicdesk-service/internal/pkg/constvars"
	"clinicdesk-service/internal/pkg/dto/requests"
	"clinicdesk-service/internal/pkg/dto/responses"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type enquiryUsecase struct {
	EnquiryBackendClient contracts.EnquiryBackendClient
	QueueNotifier        contracts.QueueNotifier
	Log                  *zap.Logger
}

func NewEnquiryUsecase(
	enquiryBackendClient contracts.EnquiryBackendClient,
	queueNotifier contracts.QueueNotifier,
	logger *zap.Logger,
) EnquiryUsecase {
	return &enquiryUsecase{
		EnquiryBackendClient: enquiryBackendClient,
		QueueNotifier:        queueNotifier,
		Log:                  logger,
	}
}

func (uc *enquiryUsecase) FindAll(ctx context.Context) ([]responses.Enquiry, error) {
	return uc.EnquiryBackendClient.FindAllEnquiries(ctx)
}

func (uc *enquiryUsecase) Create(ctx context.Context, request *requests.CreateEnquiry) (*responses.Enquiry, error) {
	enquiry, err := uc.EnquiryBackendClient.CreateEnquiry(ctx, request)
	if err != nil {
		return nil, err
	}

	message := &contracts.NotificationMessage{
		Kind:       "enquiry_received",
		Subject:    enquiry.Subject,
		Recipient:  enquiry.Email,
		Body:       fmt.Sprintf("New enquiry from %s: %s", enquiry.Name, enquiry.Message),
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := uc.QueueNotifier.Publish(ctx, message); err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Warn("enquiryUsecase.Create notification publish failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	return enquiry, nil
}
