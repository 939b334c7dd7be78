package predict

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// GET /predict
// --------------------------------------------------
func (h *Handler) GetPredictions(c *gin.Context) {
	var params Params
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing or invalid query parameters"})
		return
	}

	result := h.service.Predict(c.Request.Context(), params)
	c.JSON(http.StatusOK, result)
}
