package controllers

import (
	"carebridge-service/internal/pkg/constvars"
	"carebridge-service/internal/pkg/utils"
	"net/http"
)

type HealthController struct {
	Version string
}

func NewHealthController(version string) *HealthController {
	return &HealthController{Version: version}
}

func (ctrl *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, "ok", map[string]string{
		"version": ctrl.Version,
	})
}
