package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alizaidi-dev/tripbudget/internal/core/service"
)

type CountryHandler struct {
	svc *service.CountryService
}

func NewCountryHandler(svc *service.CountryService) *CountryHandler {
	return &CountryHandler{svc: svc}
}

func (h *CountryHandler) List(c *gin.Context) {
	countries, err := h.svc.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "country directory unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"countries": countries})
}
