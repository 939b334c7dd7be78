package scans

import (
	"errors"
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

// --------------------------------------------------
// POST /scans
// Accepts JSON, or multipart/form-data with an
// optional "image" part that gets stored in R2.
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest

	contentType := c.ContentType()
	isMultipart := strings.HasPrefix(contentType, "multipart/form-data")

	if isMultipart {
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form data"})
			return
		}
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
	}

	var scan *Scan
	var err error

	if isMultipart {
		if file, ferr := c.FormFile("image"); ferr == nil {
			f, oerr := file.Open()
			if oerr != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "could not read image"})
				return
			}
			defer f.Close()

			scan, err = h.service.Create(
				c.Request.Context(),
				req,
				f,
				file.Header.Get("Content-Type"),
			)
		} else {
			scan, err = h.service.Create(c.Request.Context(), req, nil, "")
		}
	} else {
		scan, err = h.service.Create(c.Request.Context(), req, nil, "")
	}

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, scan)
}

// --------------------------------------------------
// GET /scans?flight_id=&employee_id=&status=
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	filter := Filter{
		FlightID:   c.Query("flight_id"),
		EmployeeID: c.Query("employee_id"),
		Status:     c.Query("status"),
	}

	scans, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list scans"})
		return
	}

	c.JSON(http.StatusOK, scans)
}

// --------------------------------------------------
// GET /scans/:id
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	scan, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "scan not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch scan"})
		return
	}

	c.JSON(http.StatusOK, scan)
}
