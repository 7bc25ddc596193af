package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-site/portfolio-backend/internal/contact/validation"
)

// maxBodyBytes caps a contact submission body.
const maxBodyBytes = 100 << 10

func (h *Handler) submit(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)
	raw, err := c.GetRawData()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"message": "Request body too large"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid form data"})
		return
	}

	req, err := validation.Decode(raw)
	if err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, invalidFormResponse{
				Message: "Invalid form data",
				Errors:  verr.Issues,
			})
			return
		}
		log.Printf("[contact] validation error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to send message"})
		return
	}

	if _, err := h.svc.Submit(c.Request.Context(), req); err != nil {
		log.Printf("[contact] contact form error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to send message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message sent successfully!"})
}
