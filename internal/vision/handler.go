package vision

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

const maxImageBytes = 10 * 1024 * 1024

// Prober reports whether the OCR backend is usable (health endpoint).
type Prober interface {
	Available() error
}

type Handler struct {
	service *Service
	prober  Prober
}

func NewHandler(service *Service, prober Prober) *Handler {
	return &Handler{service: service, prober: prober}
}

// --------------------------------------------------
// POST /api/vision/expiry-date
// --------------------------------------------------
func (h *Handler) ExtractExpiryDate(c *gin.Context) {
	image, ok := h.readImage(c)
	if !ok {
		return
	}

	result := h.service.ProcessExpiryImage(c.Request.Context(), image)
	c.JSON(http.StatusOK, result)
}

// --------------------------------------------------
// POST /api/vision/lot-number
// --------------------------------------------------
func (h *Handler) ExtractLotNumber(c *gin.Context) {
	image, ok := h.readImage(c)
	if !ok {
		return
	}

	result := h.service.ExtractLotFromImage(c.Request.Context(), image)
	if !result.Success {
		c.JSON(http.StatusBadRequest, result)
		return
	}

	c.JSON(http.StatusOK, result)
}

// --------------------------------------------------
// GET /api/vision/health
// --------------------------------------------------
func (h *Handler) Health(c *gin.Context) {
	if h.prober != nil {
		if err := h.prober.Available(); err != nil {
			c.JSON(http.StatusOK, gin.H{
				"status":  "error",
				"message": "OCR engine not available: " + err.Error(),
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "OCR service is running",
	})
}

// readImage pulls the multipart "image" file, enforcing type and size limits.
func (h *Handler) readImage(c *gin.Context) ([]byte, bool) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return nil, false
	}

	contentType := fileHeader.Header.Get("Content-Type")
	switch contentType {
	case "image/jpeg", "image/jpg", "image/png":
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported file type, use JPG or PNG"})
		return nil, false
	}

	if fileHeader.Size > maxImageBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image too large, maximum 10MB"})
		return nil, false
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read image"})
		return nil, false
	}
	defer file.Close()

	image, err := io.ReadAll(io.LimitReader(file, maxImageBytes+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read image"})
		return nil, false
	}
	if len(image) > maxImageBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image too large, maximum 10MB"})
		return nil, false
	}

	return image, true
}
