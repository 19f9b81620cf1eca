package handlers

import (
	"net/http"

	request "polymesh/internal/adapter/http/dto/request"
	response "polymesh/internal/adapter/http/dto/response"
	"polymesh/internal/adapter/http/middleware"
	"polymesh/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	usecase usecase.IReviewUseCase
}

func NewReviewHandler(uc usecase.IReviewUseCase) *ReviewHandler {
	return &ReviewHandler{usecase: uc}
}

// SubmitReview godoc
// @Summary  Submit a review for moderation
// @Tags     reviews
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    body body request.ReviewRequest true "review"
// @Success  201 {object} response.MessageResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /reviews [post]
func (h *ReviewHandler) SubmitReview(c *gin.Context) {
	var payload request.ReviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}

	if _, err := h.usecase.Submit(c.Request.Context(), middleware.UserID(c), payload.Rating, payload.Comment); err != nil {
		writeError(c, "review", err)
		return
	}
	c.JSON(http.StatusCreated, response.Message("Review submitted, pending approval"))
}

// ListApprovedReviews godoc
// @Summary  Latest approved reviews
// @Tags     reviews
// @Produce  json
// @Success  200 {object} response.PublicReviewListResponse
// @Router   /reviews [get]
func (h *ReviewHandler) ListApprovedReviews(c *gin.Context) {
	rs, err := h.usecase.ListApproved(c.Request.Context())
	if err != nil {
		writeError(c, "review", err)
		return
	}
	c.JSON(http.StatusOK, response.FromPublicReviews(rs))
}

// ListAllReviews godoc
// @Summary  Every review, approved or not
// @Tags     admin
// @Security Bearer
// @Produce  json
// @Success  200 {object} response.ReviewListResponse
// @Router   /admin/reviews [get]
func (h *ReviewHandler) ListAllReviews(c *gin.Context) {
	rs, err := h.usecase.ListAll(c.Request.Context())
	if err != nil {
		writeError(c, "review", err)
		return
	}
	c.JSON(http.StatusOK, response.ReviewListResponse{Success: true, Reviews: rs})
}

// ModerateReview godoc
// @Summary  Approve or hide a review
// @Tags     admin
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    id   path string                        true "review id"
// @Param    body body request.ReviewApprovalRequest true "decision"
// @Success  200 {object} response.ReviewEnvelope
// @Failure  404 {object} pkg.HTTPError
// @Router   /admin/reviews/{id} [patch]
func (h *ReviewHandler) ModerateReview(c *gin.Context) {
	var payload request.ReviewApprovalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}

	r, err := h.usecase.SetApproved(c.Request.Context(), c.Param("id"), *payload.Approved)
	if err != nil {
		writeError(c, "review", err)
		return
	}
	c.JSON(http.StatusOK, response.ReviewEnvelope{Success: true, Review: r})
}
