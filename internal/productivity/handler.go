package productivity

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type estimateQuery struct {
	ItemCount          int    `form:"item_count" binding:"required,min=1,max=100"`
	FlightType         string `form:"flight_type" binding:"required"`
	EmployeeExperience *int   `form:"employee_experience" binding:"omitempty,min=0,max=240"`
}

// --------------------------------------------------
// GET /productivity/estimate
// --------------------------------------------------
func (h *Handler) Estimate(c *gin.Context) {
	var q estimateQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}

	if !ValidFlightType(q.FlightType) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "flight_type must be one of: " + strings.Join(FlightTypes(), ", "),
		})
		return
	}

	estimate := BaseEstimate(q.ItemCount, q.FlightType, q.EmployeeExperience)

	confidence := "medium"
	if q.EmployeeExperience != nil {
		if *q.EmployeeExperience > 12 {
			confidence = "high"
		} else if *q.EmployeeExperience < 3 {
			confidence = "low"
		}
	}

	var recommendations []string
	if estimate.ExperienceLevel == "novice" {
		recommendations = append(recommendations, "Revisa la especificación antes de empezar")
	}
	if q.FlightType == "Business" || q.FlightType == "First-Class" {
		recommendations = append(recommendations, "Drawer premium - productos delicados")
	}
	if q.ItemCount > 30 {
		recommendations = append(recommendations, "Drawer grande - mantén el ritmo")
	}

	c.JSON(http.StatusOK, gin.H{
		"estimated_time_seconds": estimate.EstimatedTimeSeconds,
		"estimated_time_minutes": estimate.EstimatedTimeMinutes,
		"time_range": gin.H{
			"min_minutes": roundMinutes(float64(estimate.EstimatedTimeSeconds) * 0.85),
			"max_minutes": roundMinutes(float64(estimate.EstimatedTimeSeconds) * 1.15),
		},
		"confidence": confidence,
		"factors": gin.H{
			"item_count":            q.ItemCount,
			"flight_type":           q.FlightType,
			"experience_level":      estimate.ExperienceLevel,
			"complexity_multiplier": estimate.ComplexityMultiplier,
		},
		"recommendations": recommendations,
		"model_type":      "mathematical",
	})
}

type insightsQuery struct {
	DaysBack int `form:"days_back,default=30" binding:"omitempty,min=7,max=90"`
}

// --------------------------------------------------
// GET /productivity/insights/:employee_id
// --------------------------------------------------
func (h *Handler) Insights(c *gin.Context) {
	employeeID := c.Param("employee_id")
	if employeeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "employee_id is required"})
		return
	}

	var q insightsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "days_back must be between 7 and 90"})
		return
	}

	insights, err := h.service.EmployeeInsights(c.Request.Context(), employeeID, q.DaysBack)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute insights"})
		return
	}

	c.JSON(http.StatusOK, insights)
}

type compareQuery struct {
	ActualTimeSeconds  int    `form:"actual_time_seconds" binding:"required,min=1"`
	ItemCount          int    `form:"item_count" binding:"required,min=1"`
	FlightType         string `form:"flight_type" binding:"required"`
	EmployeeExperience *int   `form:"employee_experience"`
}

// --------------------------------------------------
// GET /productivity/compare
// --------------------------------------------------
func (h *Handler) Compare(c *gin.Context) {
	var q compareQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}

	comparison := Compare(q.ActualTimeSeconds, q.ItemCount, q.FlightType, q.EmployeeExperience)
	c.JSON(http.StatusOK, comparison)
}
