package appointments

import (
	"clinicdesk-service/internal/app/services/shared/jwtmanager"
	"clinicdesk-service/internal/pkg/constvars"
	"clinicdesk-service/internal/pkg/dto/requests"
	"clinicdesk-service/internal/pkg/exceptions"
	"clinicdesk-service/internal/pkg/utils"
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AppointmentController struct {
	Log                *zap.Logger
	AppointmentUsecase AppointmentUsecase
}

func NewAppointmentController(logger *zap.Logger, appointmentUsecase AppointmentUsecase) *AppointmentController {
	return &AppointmentController{
		Log:                logger,
		AppointmentUsecase: appointmentUsecase,
	}
}

func (ctrl *AppointmentController) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := &requests.AppointmentFilter{
		Status:     query.Get("status"),
		Date:       query.Get("date"),
		SearchTerm: query.Get("search"),
	}
	if doctorIDStr := query.Get("doctor_id"); doctorIDStr != "" {
		doctorID, err := strconv.ParseInt(doctorIDStr, 10, 64)
		if err != nil || doctorID <= 0 {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, "doctor_id"))
			return
		}
		filter.DoctorID = doctorID
	}
	if filter.Date != "" {
		if _, err := utils.ParseISODate(filter.Date); err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseDate(err))
			return
		}
	}
	if page, err := strconv.Atoi(query.Get("page")); err == nil && page > 0 {
		filter.Page = page
	}
	if pageSize, err := strconv.Atoi(query.Get("page_size")); err == nil && pageSize > 0 {
		filter.PageSize = pageSize
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, pagination, err := ctrl.AppointmentUsecase.List(ctx, filter)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetAppointmentsSuccess, pagination, result)
}

func (ctrl *AppointmentController) ListByDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID, err := utils.ValidateUrlParamID(chi.URLParam(r, constvars.URLParamDoctorID))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamDoctorID))
		return
	}

	// Doctors may only read their own list; admins may read anyone's.
	if session, ok := r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*jwtmanager.Session); ok {
		if session.Role == constvars.RoleDoctor && session.DoctorID != doctorID {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrNotMatchRoleType(
				fmt.Errorf("doctor %d requested appointments of doctor %d", session.DoctorID, doctorID),
			))
			return
		}
	}

	query := r.URL.Query()
	filter := &requests.AppointmentFilter{
		DoctorID: doctorID,
		Status:   query.Get("status"),
		Date:     query.Get("date"),
	}
	if page, err := strconv.Atoi(query.Get("page")); err == nil && page > 0 {
		filter.Page = page
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, pagination, err := ctrl.AppointmentUsecase.List(ctx, filter)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetAppointmentsSuccess, pagination, result)
}

func (ctrl *AppointmentController) Book(w http.ResponseWriter, r *http.Request) {
	request := new(requests.BookAppointment)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.Book(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.BookAppointmentSuccess, result)
}

func (ctrl *AppointmentController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := utils.ValidateUrlParamID(chi.URLParam(r, constvars.URLParamAppointmentID))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamAppointmentID))
		return
	}

	request := new(requests.UpdateAppointmentStatus)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.UpdateStatus(ctx, appointmentID, request.Status)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	message := fmt.Sprintf(constvars.UpdateAppointmentStatusSuccess, strings.ToLower(request.Status))
	utils.BuildSuccessResponse(w, constvars.StatusOK, message, result)
}

func (ctrl *AppointmentController) Delete(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := utils.ValidateUrlParamID(chi.URLParam(r, constvars.URLParamAppointmentID))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamAppointmentID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.AppointmentUsecase.Delete(ctx, appointmentID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteAppointmentSuccess, nil)
}
