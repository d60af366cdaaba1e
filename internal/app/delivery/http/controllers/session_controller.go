package controllers

import (
	"carebridge-service/internal/app/contracts"
	"carebridge-service/internal/pkg/constvars"
	"carebridge-service/internal/pkg/dto/requests"
	"carebridge-service/internal/pkg/exceptions"
	"carebridge-service/internal/pkg/utils"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type SessionController struct {
	Log            *zap.Logger
	SessionUsecase contracts.SessionUsecase
}

var (
	sessionControllerInstance *SessionController
	onceSessionController     sync.Once
)

func NewSessionController(logger *zap.Logger, sessionUsecase contracts.SessionUsecase) *SessionController {
	onceSessionController.Do(func() {
		sessionControllerInstance = &SessionController{
			Log:            logger,
			SessionUsecase: sessionUsecase,
		}
	})
	return sessionControllerInstance
}

func (ctrl *SessionController) RegisterSession(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateSession)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := ctrl.SessionUsecase.RegisterSession(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SessionCreatedSuccess, response)
}

func (ctrl *SessionController) GetSessionByID(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, constvars.URLParamSessionID)
	if sessionID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamMissing(constvars.URLParamSessionID))
		return
	}

	response, err := ctrl.SessionUsecase.GetSessionByID(r.Context(), sessionID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SessionGetSuccess, response)
}

func (ctrl *SessionController) ListSessionsByPatient(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	if patientID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamMissing(constvars.URLParamPatientID))
		return
	}

	response, err := ctrl.SessionUsecase.ListSessionsByPatient(r.Context(), patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SessionListSuccess, response)
}
