package routers

import (
	"carebridge-service/internal/app/delivery/http/controllers"
	"carebridge-service/internal/app/delivery/http/middlewares"
	"carebridge-service/internal/pkg/constvars"
	"fmt"

	"github.com/go-chi/chi/v5"
)

func attachSessionRoutes(router chi.Router, middlewares *middlewares.Middlewares, sessionController *controllers.SessionController, migrationController *controllers.MigrationController) {
	sessionParam := fmt.Sprintf("/{%s}", constvars.URLParamSessionID)

	router.Post("/", sessionController.RegisterSession)
	router.Get(sessionParam, sessionController.GetSessionByID)
	router.With(middlewares.SessionAuth).Post(sessionParam+"/migrate", migrationController.Migrate)
}
