package leavequota

import (
	"net/http"

	"go-absensi/internal/shared/apperror"
	"go-absensi/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	tracker Tracker
}

func NewHandler(tracker Tracker) *Handler {
	return &Handler{tracker: tracker}
}

func (h *Handler) Get(c *gin.Context) {
	employeeID := c.Query("employee_id")
	if employeeID == "" {
		employeeID = c.GetString("employee_id")
	}

	resp, err := h.tracker.Get(c.Request.Context(), employeeID)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("/leave-quotas", h.Get)
}
