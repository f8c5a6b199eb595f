package slots

import (
	"clinicdesk-service/internal/pkg/constvars"
	"clinicdesk-service/internal/pkg/exceptions"
	"clinicdesk-service/internal/pkg/utils"
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type SlotController struct {
	Log         *zap.Logger
	SlotUsecase SlotUsecase
}

func NewSlotController(logger *zap.Logger, slotUsecase SlotUsecase) *SlotController {
	return &SlotController{
		Log:         logger,
		SlotUsecase: slotUsecase,
	}
}

func (ctrl *SlotController) FindDoctorSlots(w http.ResponseWriter, r *http.Request) {
	doctorID, err := utils.ValidateUrlParamID(chi.URLParam(r, constvars.URLParamDoctorID))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamDoctorID))
		return
	}

	date := r.URL.Query().Get("date")
	if _, err := utils.ParseISODate(date); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseDate(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, hasSchedule, err := ctrl.SlotUsecase.FindDoctorSlots(ctx, doctorID, date)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	message := constvars.GetSlotsSuccess
	if !hasSchedule {
		message = constvars.GetSlotsNoSchedule
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, message, result)
}
