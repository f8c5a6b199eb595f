package routers

import (
	"clinicdesk-service/internal/app/delivery/http/middlewares"
	"clinicdesk-service/internal/app/services/core/doctors"
	"clinicdesk-service/internal/app/services/core/slots"
	"clinicdesk-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, middlewares *middlewares.Middlewares, doctorController *doctors.DoctorController, slotController *slots.SlotController) {
	// Public directory pages and the booking widget read these.
	router.Get("/", doctorController.FindAll)
	router.Get("/{doctorID}", doctorController.FindByID)
	router.Get("/{doctorID}/slots", slotController.FindDoctorSlots)

	router.With(middlewares.Authenticate, middlewares.RequireRole(constvars.RoleAdmin)).Post("/", doctorController.Create)
	router.With(middlewares.Authenticate, middlewares.RequireRole(constvars.RoleAdmin)).Put("/{doctorID}", doctorController.Update)
	router.With(middlewares.Authenticate, middlewares.RequireRole(constvars.RoleAdmin)).Delete("/{doctorID}", doctorController.Delete)
	router.With(middlewares.Authenticate, middlewares.RequireRole(constvars.RoleAdmin)).Post("/profile-image", doctorController.UploadProfileImage)
}
