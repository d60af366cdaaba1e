package controllers

import (
	"carebridge-service/internal/app/contracts"
	"carebridge-service/internal/pkg/constvars"
	"carebridge-service/internal/pkg/exceptions"
	"carebridge-service/internal/pkg/utils"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type RecordController struct {
	Log              *zap.Logger
	RecordRepository contracts.ClinicalRecordRepository
}

var (
	recordControllerInstance *RecordController
	onceRecordController     sync.Once
)

func NewRecordController(logger *zap.Logger, recordRepository contracts.ClinicalRecordRepository) *RecordController {
	onceRecordController.Do(func() {
		recordControllerInstance = &RecordController{
			Log:              logger,
			RecordRepository: recordRepository,
		}
	})
	return recordControllerInstance
}

func (ctrl *RecordController) ListByPatient(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	if patientID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamMissing(constvars.URLParamPatientID))
		return
	}

	resourceType := constvars.ResourceType(chi.URLParam(r, constvars.URLParamResourceType))
	if !isMigratedResourceType(resourceType) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrUnknownResourceType(string(resourceType)))
		return
	}

	records, err := ctrl.RecordRepository.ListByPatient(r.Context(), resourceType, patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RecordListSuccess, records)
}

func isMigratedResourceType(resourceType constvars.ResourceType) bool {
	for _, known := range constvars.MigratedResourceTypes {
		if known == resourceType {
			return true
		}
	}
	return false
}
