package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alizaidi-dev/tripbudget/internal/core/domain"
	"github.com/alizaidi-dev/tripbudget/internal/core/service"
)

type PlacesHandler struct {
	svc *service.PlacesService
}

func NewPlacesHandler(svc *service.PlacesService) *PlacesHandler {
	return &PlacesHandler{svc: svc}
}

func (h *PlacesHandler) Geocode(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}

	coords, err := h.svc.Geocode(c.Request.Context(), query)
	if err != nil {
		if errors.Is(err, domain.ErrLocationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "location not found"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "geocoding service unavailable"})
		return
	}

	c.JSON(http.StatusOK, coords)
}

func (h *PlacesHandler) Attractions(c *gin.Context) {
	city := c.Query("city")
	if city == "" {
		c.JSON(http.StatusOK, gin.H{"cities": h.svc.CuratedCities()})
		return
	}

	dest, err := h.svc.Attractions(city)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":  "no curated attractions for this city",
			"cities": h.svc.CuratedCities(),
		})
		return
	}

	c.JSON(http.StatusOK, dest)
}
