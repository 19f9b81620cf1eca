package handlers

import (
	"net/http"

	request "polymesh/internal/adapter/http/dto/request"
	response "polymesh/internal/adapter/http/dto/response"
	"polymesh/internal/adapter/http/middleware"
	"polymesh/internal/usecase"

	"github.com/gin-gonic/gin"
)

type InquiryHandler struct {
	usecase usecase.IInquiryUseCase
}

func NewInquiryHandler(uc usecase.IInquiryUseCase) *InquiryHandler {
	return &InquiryHandler{usecase: uc}
}

// SubmitInquiry godoc
// @Summary  Contact form; signed-in callers are linked to the inquiry
// @Tags     inquiries
// @Accept   json
// @Produce  json
// @Param    body body request.InquiryRequest true "inquiry"
// @Success  201 {object} response.InquiryResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /inquiries [post]
func (h *InquiryHandler) SubmitInquiry(c *gin.Context) {
	var payload request.InquiryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}

	inq, err := h.usecase.Submit(c.Request.Context(), payload.ToInput(middleware.UserID(c)))
	if err != nil {
		writeError(c, "inquiry", err)
		return
	}
	c.JSON(http.StatusCreated, response.InquiryResponse{
		Success: true,
		Inquiry: response.InquirySummary{ID: inq.ID, Status: string(inq.Status)},
	})
}
