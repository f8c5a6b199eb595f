package routers

import (
	"clinicdesk-service/internal/app/delivery/http/middlewares"
	"clinicdesk-service/internal/app/services/core/appointments"
	"clinicdesk-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *appointments.AppointmentController) {
	// Booking comes from the public site without a session.
	router.Post("/", appointmentController.Book)

	router.With(middlewares.Authenticate, middlewares.RequireRole(constvars.RoleAdmin, constvars.RoleDoctor)).Get("/", appointmentController.List)
	router.With(middlewares.Authenticate, middlewares.RequireRole(constvars.RoleAdmin, constvars.RoleDoctor)).Get("/doctor/{doctorID}", appointmentController.ListByDoctor)
	router.With(middlewares.Authenticate, middlewares.RequireRole(constvars.RoleAdmin)).Put("/{appointmentID}/status", appointmentController.UpdateStatus)
	router.With(middlewares.Authenticate, middlewares.RequireRole(constvars.RoleAdmin)).Delete("/{appointmentID}", appointmentController.Delete)
}
