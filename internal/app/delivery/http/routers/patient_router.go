package routers

import (
	"carebridge-service/internal/app/delivery/http/controllers"
	"carebridge-service/internal/app/delivery/http/middlewares"
	"carebridge-service/internal/pkg/constvars"
	"fmt"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, sessionController *controllers.SessionController, recordController *controllers.RecordController, careGapController *controllers.CareGapController) {
	patientParam := fmt.Sprintf("/{%s}", constvars.URLParamPatientID)
	resourceTypeParam := fmt.Sprintf("/{%s}", constvars.URLParamResourceType)

	router.Get(patientParam+"/sessions", sessionController.ListSessionsByPatient)
	router.Get(patientParam+"/records"+resourceTypeParam, recordController.ListByPatient)
	router.Get(patientParam+"/care-gaps", careGapController.GetByPatient)
}
