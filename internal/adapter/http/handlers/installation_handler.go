package handlers

import (
	"net/http"

	request "polymesh/internal/adapter/http/dto/request"
	response "polymesh/internal/adapter/http/dto/response"
	"polymesh/internal/adapter/http/middleware"
	"polymesh/internal/domain/entities"
	"polymesh/internal/usecase"

	"github.com/gin-gonic/gin"
)

type InstallationHandler struct {
	usecase usecase.IInstallationUseCase
}

func NewInstallationHandler(uc usecase.IInstallationUseCase) *InstallationHandler {
	return &InstallationHandler{usecase: uc}
}

// GetInstallation godoc
// @Summary  One installation of the caller with its quote summary
// @Tags     installations
// @Security Bearer
// @Produce  json
// @Param    id path string true "installation id"
// @Success  200 {object} response.InstallationEnvelope
// @Failure  404 {object} pkg.HTTPError
// @Router   /installations/{id} [get]
func (h *InstallationHandler) GetInstallation(c *gin.Context) {
	v, err := h.usecase.GetOwned(c.Request.Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		writeError(c, "installation", err)
		return
	}
	c.JSON(http.StatusOK, response.FromInstallationView(v))
}

// ScheduleInstallation godoc
// @Summary  Book an installation for a quote
// @Tags     admin
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    body body request.ScheduleInstallationRequest true "schedule"
// @Success  201 {object} response.InstallationEnvelope
// @Failure  404 {object} pkg.HTTPError
// @Router   /admin/installations [post]
func (h *InstallationHandler) ScheduleInstallation(c *gin.Context) {
	var payload request.ScheduleInstallationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}

	inst, err := h.usecase.Schedule(c.Request.Context(), payload.QuoteID, payload.ScheduledDate, payload.Notes)
	if err != nil {
		writeError(c, "installation", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromInstallation(inst))
}

// UpdateInstallationStatus godoc
// @Summary  Move an installation along; completed closes the quote
// @Tags     admin
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    id   path string                            true "installation id"
// @Param    body body request.InstallationStatusRequest true "status"
// @Success  200 {object} response.InstallationEnvelope
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Router   /admin/installations/{id} [patch]
func (h *InstallationHandler) UpdateInstallationStatus(c *gin.Context) {
	var payload request.InstallationStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}

	inst, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), entities.InstallationStatus(payload.Status))
	if err != nil {
		writeError(c, "installation", err)
		return
	}
	c.JSON(http.StatusOK, response.FromInstallation(inst))
}
