package controllers

import (
	"carebridge-service/internal/app/contracts"
	"carebridge-service/internal/app/models"
	"carebridge-service/internal/pkg/constvars"
	"carebridge-service/internal/pkg/exceptions"
	"carebridge-service/internal/pkg/utils"
	"fmt"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CareGapController struct {
	Log            *zap.Logger
	CareGapUsecase contracts.CareGapUsecase
}

var (
	careGapControllerInstance *CareGapController
	onceCareGapController     sync.Once
)

func NewCareGapController(logger *zap.Logger, careGapUsecase contracts.CareGapUsecase) *CareGapController {
	onceCareGapController.Do(func() {
		careGapControllerInstance = &CareGapController{
			Log:            logger,
			CareGapUsecase: careGapUsecase,
		}
	})
	return careGapControllerInstance
}

func (ctrl *CareGapController) GetByPatient(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	if patientID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamMissing(constvars.URLParamPatientID))
		return
	}

	statusFilter := r.URL.Query().Get(constvars.QueryParamStatus)
	if !validStatusFilter(statusFilter) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(fmt.Errorf("unknown status filter %q", statusFilter)))
		return
	}

	gaps, err := ctrl.CareGapUsecase.GetCareGapsByPatient(r.Context(), patientID, statusFilter)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CareGapsGetSuccess, gaps)
}

func validStatusFilter(statusFilter string) bool {
	switch models.CareGapStatus(statusFilter) {
	case "", models.CareGapStatusDue, models.CareGapStatusSatisfied, models.CareGapStatusNotApplicable:
		return true
	}
	return false
}
