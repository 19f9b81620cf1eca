package handlers

import (
	"net/http"

	request "polymesh/internal/adapter/http/dto/request"
	response "polymesh/internal/adapter/http/dto/response"
	"polymesh/internal/infrastructure/logger"
	"polymesh/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	usecase usecase.IUserUseCase
}

func NewUserHandler(uc usecase.IUserUseCase) *UserHandler {
	return &UserHandler{usecase: uc}
}

// Register godoc
// @Summary  Create a customer account
// @Tags     users
// @Accept   json
// @Produce  json
// @Param    body body request.RegisterRequest true "account"
// @Success  201 {object} response.MessageResponse
// @Failure  400 {object} response.ValidationErrorResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /users/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var payload request.RegisterRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}

	u, err := h.usecase.Register(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, "user", err)
		return
	}
	logger.FromCtx(c.Request.Context()).Info("[user][handler] registered", zap.String("user_id", u.ID))

	c.JSON(http.StatusCreated, response.Message("User created"))
}

// Login godoc
// @Summary  Exchange credentials for a bearer token
// @Tags     users
// @Accept   json
// @Produce  json
// @Param    body body request.LoginRequest true "credentials"
// @Success  200 {object} response.LoginResponse
// @Failure  401 {object} pkg.HTTPError
// @Router   /users/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}

	token, u, err := h.usecase.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		writeError(c, "user", err)
		return
	}

	c.JSON(http.StatusOK, response.LoginResponse{Success: true, Token: token, Name: u.Name})
}
