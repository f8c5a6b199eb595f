package schedules

import (
	"clinicdesk-service/internal/app/services/shared/jwtmanager"
	"clinicdesk-service/internal/pkg/constvars"
	"clinicdesk-service/internal/pkg/dto/requests"
	"clinicdesk-service/internal/pkg/exceptions"
	"clinicdesk-service/internal/pkg/utils"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ScheduleController struct {
	Log             *zap.Logger
	ScheduleUsecase ScheduleUsecase
}

func NewScheduleController(logger *zap.Logger, scheduleUsecase ScheduleUsecase) *ScheduleController {
	return &ScheduleController{
		Log:             logger,
		ScheduleUsecase: scheduleUsecase,
	}
}

func (ctrl *ScheduleController) FindByDoctorID(w http.ResponseWriter, r *http.Request) {
	doctorID, err := utils.ValidateUrlParamID(chi.URLParam(r, constvars.URLParamDoctorID))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamDoctorID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ScheduleUsecase.FindByDoctorID(ctx, doctorID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSchedulesSuccess, result)
}

func (ctrl *ScheduleController) Create(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateSchedule)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	// A doctor always writes their own availability; the session decides
	// the target, not the body.
	if session, ok := r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*jwtmanager.Session); ok && session.Role == constvars.RoleDoctor {
		request.DoctorID = session.DoctorID
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	// One request may fan out into many backend writes.
	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	result, err := ctrl.ScheduleUsecase.Create(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	message := fmt.Sprintf(constvars.CreateScheduleSuccess, result.CreatedCount)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, message, result)
}

// assertOwnership rejects a doctor-role caller touching a schedule that
// does not belong to them. Admins pass through.
func (ctrl *ScheduleController) assertOwnership(ctx context.Context, r *http.Request, scheduleID int64) error {
	session, ok := r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*jwtmanager.Session)
	if !ok || session.Role != constvars.RoleDoctor {
		return nil
	}
	owned, err := ctrl.ScheduleUsecase.FindByDoctorID(ctx, session.DoctorID)
	if err != nil {
		return err
	}
	for i := range owned {
		if owned[i].ID == scheduleID {
			return nil
		}
	}
	return exceptions.ErrNotMatchRoleType(fmt.Errorf("doctor %d does not own schedule %d", session.DoctorID, scheduleID))
}

func (ctrl *ScheduleController) Update(w http.ResponseWriter, r *http.Request) {
	scheduleID, err := utils.ValidateUrlParamID(chi.URLParam(r, constvars.URLParamScheduleID))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamScheduleID))
		return
	}

	request := new(requests.UpdateSchedule)
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

	if err := ctrl.assertOwnership(ctx, r, scheduleID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	result, err := ctrl.ScheduleUsecase.Update(ctx, scheduleID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateScheduleSuccess, result)
}

func (ctrl *ScheduleController) Delete(w http.ResponseWriter, r *http.Request) {
	scheduleID, err := utils.ValidateUrlParamID(chi.URLParam(r, constvars.URLParamScheduleID))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamScheduleID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.assertOwnership(ctx, r, scheduleID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if err := ctrl.ScheduleUsecase.Delete(ctx, scheduleID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteScheduleSuccess, nil)
}
