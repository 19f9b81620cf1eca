package handlers

import (
	"net/http"

	request "polymesh/internal/adapter/http/dto/request"
	response "polymesh/internal/adapter/http/dto/response"
	"polymesh/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SMSHandler struct {
	usecase usecase.ISMSUseCase
}

func NewSMSHandler(uc usecase.ISMSUseCase) *SMSHandler {
	return &SMSHandler{usecase: uc}
}

// SendSMS godoc
// @Summary  Send a branded SMS to a customer
// @Tags     admin
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    body body request.SendSMSRequest true "sms"
// @Success  200 {object} response.MessageResponse
// @Failure  502 {object} pkg.HTTPError
// @Router   /admin/send-sms [post]
func (h *SMSHandler) SendSMS(c *gin.Context) {
	var payload request.SendSMSRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}

	if err := h.usecase.Send(c.Request.Context(), payload.Phone, payload.Message); err != nil {
		writeError(c, "sms", err)
		return
	}
	c.JSON(http.StatusOK, response.Message("SMS sent successfully"))
}
