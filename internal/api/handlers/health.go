package handlers

import (
	"net/http"

	"github.com/Conceptual-Machines/promptgram/internal/prompt"
	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	svc *prompt.Service
}

func NewHealthHandler(svc *prompt.Service) *HealthHandler {
	return &HealthHandler{svc: svc}
}

// HealthCheck returns the health status of the API
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"grammars": h.svc.Names(),
	})
}
