package routers

import (
	"clinicdesk-service/internal/app/delivery/http/middlewares"
	"clinicdesk-service/internal/app/services/core/enquiries"
	"clinicdesk-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachEnquiryRoutes(router chi.Router, middlewares *middlewares.Middlewares, enquiryController *enquiries.EnquiryController) {
	router.Post("/", enquiryController.Create)
	router.With(middlewares.Authenticate, middlewares.RequireRole(constvars.RoleAdmin)).Get("/", enquiryController.FindAll)
}
