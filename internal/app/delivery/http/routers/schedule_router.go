package routers

import (
	"clinicdesk-service/internal/app/delivery/http/middlewares"
	"clinicdesk-service/internal/app/services/core/schedules"
	"clinicdesk-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachScheduleRoutes(router chi.Router, middlewares *middlewares.Middlewares, scheduleController *schedules.ScheduleController) {
	router.Get("/doctor/{doctorID}", scheduleController.FindByDoctorID)

	staff := []string{constvars.RoleAdmin, constvars.RoleDoctor}
	router.With(middlewares.Authenticate, middlewares.RequireRole(staff...)).Post("/", scheduleController.Create)
	router.With(middlewares.Authenticate, middlewares.RequireRole(staff...)).Put("/{scheduleID}", scheduleController.Update)
	router.With(middlewares.Authenticate, middlewares.RequireRole(staff...)).Delete("/{scheduleID}", scheduleController.Delete)
}
