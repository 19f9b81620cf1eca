package handlers

import (
	"net/http"

	request "polymesh/internal/adapter/http/dto/request"
	response "polymesh/internal/adapter/http/dto/response"
	"polymesh/internal/adapter/http/middleware"
	"polymesh/internal/usecase"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// CreateOrder godoc
// @Summary  Accept a quote and place an order
// @Tags     orders
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    body body request.OrderRequest true "quote to accept"
// @Success  201 {object} response.OrderEnvelope
// @Failure  404 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.OrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}

	o, err := h.usecase.Create(c.Request.Context(), middleware.UserID(c), payload.QuoteID)
	if err != nil {
		writeError(c, "order", err)
		return
	}
	c.JSON(http.StatusCreated, response.OrderEnvelope{Success: true, Order: o})
}

// ListMyOrders godoc
// @Summary  Orders of the caller, newest first
// @Tags     orders
// @Security Bearer
// @Produce  json
// @Success  200 {object} response.OrderListResponse
// @Router   /user/orders [get]
func (h *OrderHandler) ListMyOrders(c *gin.Context) {
	orders, err := h.usecase.ListByUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		writeError(c, "order", err)
		return
	}
	c.JSON(http.StatusOK, response.OrderListResponse{Success: true, Count: len(orders), Orders: orders})
}
