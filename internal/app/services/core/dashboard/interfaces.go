package dashboard

import (
	"clinicdesk-service/internal/pkg/dto/responses"
	"context"
)

type DashboardUsecase interface {
	GetStats(ctx context.Context) (*responses.DashboardStats, error)
}
