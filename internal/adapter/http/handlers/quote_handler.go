package handlers

import (
	"net/http"

	request "polymesh/internal/adapter/http/dto/request"
	response "polymesh/internal/adapter/http/dto/response"
	"polymesh/internal/adapter/http/middleware"
	"polymesh/internal/infrastructure/logger"
	"polymesh/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// QuoteHandler exposes the quote ledger. Customers only ever see their own
// quotes; the admin listing goes through ListAll.
type QuoteHandler struct {
	quotes   usecase.IQuoteUseCase
	payments usecase.IMpesaPaymentUseCase
}

func NewQuoteHandler(quotes usecase.IQuoteUseCase, payments usecase.IMpesaPaymentUseCase) *QuoteHandler {
	return &QuoteHandler{quotes: quotes, payments: payments}
}

// CreateQuote godoc
// @Summary  Price a mesh installation and store the quote
// @Tags     quotes
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    body body request.QuoteRequest true "windows to cover"
// @Success  201 {object} response.CreateQuoteResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}

	userID := middleware.UserID(c)
	created, err := h.quotes.Create(c.Request.Context(), userID, payload.ToPricingInput())
	if err != nil {
		writeError(c, "quote", err)
		return
	}
	logger.FromCtx(c.Request.Context()).Info("[quote][handler] created",
		zap.String("quote_id", created.Quote.ID), zap.String("user_id", userID))

	c.JSON(http.StatusCreated, response.FromCreatedQuote(created))
}

// ListMyQuotes godoc
// @Summary  Quotes of the caller, newest first
// @Tags     quotes
// @Security Bearer
// @Produce  json
// @Success  200 {object} response.QuoteListResponse
// @Router   /user/quotes [get]
func (h *QuoteHandler) ListMyQuotes(c *gin.Context) {
	qs, err := h.quotes.ListByOwner(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		writeError(c, "quote", err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuotes(qs, true))
}

// GetQuote godoc
// @Summary  One quote of the caller
// @Tags     quotes
// @Security Bearer
// @Produce  json
// @Param    id path string true "quote id"
// @Success  200 {object} response.QuoteEnvelope
// @Failure  404 {object} pkg.HTTPError
// @Router   /quotes/{id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	q, err := h.quotes.GetOwned(c.Request.Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		writeError(c, "quote", err)
		return
	}
	c.JSON(http.StatusOK, response.QuoteEnvelope{Success: true, Quote: response.FromOwnQuote(q)})
}

// ListQuotePayments godoc
// @Summary  M-Pesa attempts made for one of the caller's quotes
// @Tags     quotes
// @Security Bearer
// @Produce  json
// @Param    id path string true "quote id"
// @Success  200 {object} response.PaymentAttemptListResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /quotes/{id}/payments [get]
func (h *QuoteHandler) ListQuotePayments(c *gin.Context) {
	attempts, err := h.payments.ListAttempts(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		writeError(c, "quote", err)
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentAttempts(attempts))
}

// ListAllQuotes godoc
// @Summary  Every quote, newest first
// @Tags     admin
// @Security Bearer
// @Produce  json
// @Success  200 {object} response.QuoteListResponse
// @Router   /admin/quotes [get]
func (h *QuoteHandler) ListAllQuotes(c *gin.Context) {
	qs, err := h.quotes.ListAll(c.Request.Context())
	if err != nil {
		writeError(c, "quote", err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuotes(qs, false))
}
