package routers

import (
	"clinicdesk-service/internal/app/delivery/http/middlewares"
	"clinicdesk-service/internal/app/services/core/dashboard"
	"clinicdesk-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachDashboardRoutes(router chi.Router, middlewares *middlewares.Middlewares, dashboardController *dashboard.DashboardController) {
	router.With(middlewares.Authenticate, middlewares.RequireRole(constvars.RoleAdmin)).Get("/", dashboardController.GetStats)
}
