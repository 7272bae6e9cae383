package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alizaidi-dev/tripbudget/internal/core/domain"
	"github.com/alizaidi-dev/tripbudget/internal/core/service"
)

type CurrencyHandler struct {
	svc *service.CurrencyService
}

func NewCurrencyHandler(svc *service.CurrencyService) *CurrencyHandler {
	return &CurrencyHandler{svc: svc}
}

type ConvertRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
	From   string  `json:"from" binding:"required,len=3,uppercase"`
	To     string  `json:"to" binding:"required,len=3,uppercase"`
}

func (h *CurrencyHandler) Convert(c *gin.Context) {
	var req ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !domain.IsSupportedCurrency(req.From) || !domain.IsSupportedCurrency(req.To) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported currency code"})
		return
	}

	conv, err := h.svc.Convert(c.Request.Context(), req.Amount, req.From, req.To)
	if err != nil {
		if errors.Is(err, domain.ErrConversionUnavailable) {
			c.JSON(http.StatusBadGateway, gin.H{"error": "conversion service unavailable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "conversion failed"})
		return
	}

	c.JSON(http.StatusOK, conv)
}

func (h *CurrencyHandler) ListCurrencies(c *gin.Context) {
	currencies := make([]gin.H, 0, len(domain.SupportedCurrencies))
	for _, code := range domain.SupportedCurrencies {
		currencies = append(currencies, gin.H{
			"code": code,
			"name": domain.CurrencyName(code),
		})
	}

	c.JSON(http.StatusOK, gin.H{"currencies": currencies})
}
