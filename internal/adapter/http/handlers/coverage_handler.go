package handlers

import (
	"net/http"

	request "polymesh/internal/adapter/http/dto/request"
	response "polymesh/internal/adapter/http/dto/response"
	"polymesh/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CoverageHandler struct {
	usecase usecase.ICoverageUseCase
}

func NewCoverageHandler(uc usecase.ICoverageUseCase) *CoverageHandler {
	return &CoverageHandler{usecase: uc}
}

// CheckCoverage godoc
// @Summary  Service tier and lead time for an address
// @Tags     coverage
// @Accept   json
// @Produce  json
// @Param    body body request.CoverageRequest true "address"
// @Success  200 {object} response.CoverageResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /coverage [post]
func (h *CoverageHandler) CheckCoverage(c *gin.Context) {
	var payload request.CoverageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}

	cov, err := h.usecase.Check(payload.Address)
	if err != nil {
		writeError(c, "coverage", err)
		return
	}
	c.JSON(http.StatusOK, response.FromCoverage(cov))
}

// ServiceAreas godoc
// @Summary  Areas we install in
// @Tags     coverage
// @Produce  json
// @Success  200 {object} response.ServiceAreasResponse
// @Router   /service-areas [get]
func (h *CoverageHandler) ServiceAreas(c *gin.Context) {
	areas := h.usecase.ServiceAreas()
	c.JSON(http.StatusOK, response.ServiceAreasResponse{Success: true, Count: len(areas), ServiceAreas: areas})
}
