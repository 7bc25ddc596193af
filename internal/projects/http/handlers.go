package http

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		log.Printf("[projects] list failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch projects"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) featured(c *gin.Context) {
	items, err := h.svc.Featured(c.Request.Context())
	if err != nil {
		log.Printf("[projects] featured failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch featured projects"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid project id"})
		return
	}

	p, ok := h.svc.Get(c.Request.Context(), id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}
