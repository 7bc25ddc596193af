package http

import "github.com/gin-gonic/gin"

// Register attaches the contact route to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/contact", h.submit)
}
