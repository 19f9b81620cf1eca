package handlers

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	request "polymesh/internal/adapter/http/dto/request"
	response "polymesh/internal/adapter/http/dto/response"
	"polymesh/internal/adapter/http/middleware"
	"polymesh/internal/infrastructure/logger"
	"polymesh/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler starts STK pushes and receives their results.
type PaymentHandler struct {
	initiator     usecase.IMpesaPaymentUseCase
	callbacks     usecase.IPaymentCallbackUseCase
	callbackToken string
}

// NewPaymentHandler takes the shared secret expected in the callback URL's
// token query parameter. An empty token disables the check.
func NewPaymentHandler(initiator usecase.IMpesaPaymentUseCase, callbacks usecase.IPaymentCallbackUseCase, callbackToken string) *PaymentHandler {
	return &PaymentHandler{initiator: initiator, callbacks: callbacks, callbackToken: callbackToken}
}

// MpesaPay godoc
// @Summary  Send an M-Pesa STK push for a quote
// @Tags     payments
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    body body request.MpesaPayRequest true "payment"
// @Success  200 {object} response.MpesaPayResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Failure  502 {object} pkg.HTTPError
// @Router   /mpesa-pay [post]
func (h *PaymentHandler) MpesaPay(c *gin.Context) {
	var payload request.MpesaPayRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}

	userID := middleware.UserID(c)
	attempt, err := h.initiator.Initiate(c.Request.Context(), userID, payload.QuoteID, payload.ResolvePhone(), payload.Amount)
	if err != nil {
		writeError(c, "payment", err)
		return
	}
	logger.FromCtx(c.Request.Context()).Info("[payment][handler] stk push sent",
		zap.String("quote_id", attempt.QuoteID), zap.String("checkout_request_id", attempt.ID))

	c.JSON(http.StatusOK, response.MpesaPayResponse{
		Success:       true,
		Message:       "M-Pesa payment request sent",
		TransactionID: attempt.ID,
	})
}

// MpesaCallback godoc
// @Summary  Daraja STK result URL
// @Description Always acknowledged with 200 so the gateway does not retry.
// @Tags     payments
// @Accept   json
// @Produce  json
// @Success  200 {object} response.CallbackAck
// @Router   /mpesa-callback [post]
func (h *PaymentHandler) MpesaCallback(c *gin.Context) {
	log := logger.FromCtx(c.Request.Context())

	if h.callbackToken != "" && subtle.ConstantTimeCompare([]byte(c.Query("token")), []byte(h.callbackToken)) != 1 {
		log.Warn("[payment][handler] callback with bad token ignored", zap.String("ip", c.ClientIP()))
		c.JSON(http.StatusOK, response.AcceptedCallback())
		return
	}

	raw, err := c.GetRawData()
	if err != nil || !json.Valid(raw) {
		log.Warn("[payment][handler] unreadable callback body", zap.Error(err))
		c.JSON(http.StatusOK, response.AcceptedCallback())
		return
	}

	q, err := h.callbacks.HandleCallback(c.Request.Context(), raw)
	if err != nil {
		log.Error("[payment][handler] callback not applied", zap.Error(err))
	} else {
		log.Info("[payment][handler] callback applied",
			zap.String("quote_id", q.ID), zap.String("payment_status", string(q.PaymentStatus)))
	}

	c.JSON(http.StatusOK, response.AcceptedCallback())
}
