package controllers

import (
	"carebridge-service/internal/app/contracts"
	"carebridge-service/internal/app/models"
	"carebridge-service/internal/pkg/constvars"
	"carebridge-service/internal/pkg/dto/responses"
	"carebridge-service/internal/pkg/exceptions"
	"carebridge-service/internal/pkg/utils"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MigrationController struct {
	Log              *zap.Logger
	MigrationUsecase contracts.MigrationUsecase
}

var (
	migrationControllerInstance *MigrationController
	onceMigrationController     sync.Once
)

func NewMigrationController(logger *zap.Logger, migrationUsecase contracts.MigrationUsecase) *MigrationController {
	onceMigrationController.Do(func() {
		migrationControllerInstance = &MigrationController{
			Log:              logger,
			MigrationUsecase: migrationUsecase,
		}
	})
	return migrationControllerInstance
}

// Migrate triggers one migration attempt for a session. A partial failure
// still returns 200 with the per-type error map filled in.
func (ctrl *MigrationController) Migrate(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, constvars.URLParamSessionID)
	if sessionID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamMissing(constvars.URLParamSessionID))
		return
	}

	result, err := ctrl.MigrationUsecase.MigrateBySessionID(r.Context(), sessionID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MigrationFinishedSuccess, buildMigrationResponse(result))
}

func buildMigrationResponse(result *models.MigrationResult) *responses.MigrationResult {
	counts := make(map[string]int, len(result.Counts))
	for resourceType, count := range result.Counts {
		counts[string(resourceType)] = count
	}

	var errorsByType map[string]string
	if result.Failed() {
		errorsByType = make(map[string]string, len(result.Errors))
		for resourceType, err := range result.Errors {
			errorsByType[string(resourceType)] = err.Error()
		}
	}

	return &responses.MigrationResult{
		SessionID:     result.SessionID,
		MigrationDate: result.MigrationDate,
		Counts:        counts,
		Errors:        errorsByType,
	}
}
