package leave

import (
	"net/http"
	"time"

	"go-absensi/internal/shared/apperror"
	"go-absensi/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
	monitor *ReturnMonitor
}

func NewHandler(service Service, monitor *ReturnMonitor) *Handler {
	return &Handler{service: service, monitor: monitor}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Create(c *gin.Context) {
	actorID := c.GetString("employee_id")

	var req CreateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), actorID, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetByID(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Approve(c *gin.Context) {
	actorID := c.GetString("employee_id")

	resp, err := h.service.Approve(c.Request.Context(), actorID, c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Reject(c *gin.Context) {
	actorID := c.GetString("employee_id")

	var req RejectLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Reject(c.Request.Context(), actorID, c.Param("id"), req.RejectionReason)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ReturnStatus(c *gin.Context) {
	st, err := h.monitor.CheckByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, mapReturnStatus(st), nil)
}

func (h *Handler) LateReturns(c *gin.Context) {
	sts, err := h.monitor.LateReturns(c.Request.Context(), time.Now())
	if err != nil {
		writeServiceError(c, err)
		return
	}

	resp := make([]ReturnStatusResponse, len(sts))
	for i, st := range sts {
		resp[i] = mapReturnStatus(st)
	}
	response.Success(c, http.StatusOK, resp, nil)
}
