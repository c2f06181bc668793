package leave

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	leaves := r.Group("/leaves")
	{
		leaves.POST("", h.Create)
		leaves.GET("", h.GetAll)
		leaves.GET("/:id", h.GetByID)
		leaves.POST("/:id/approve", h.Approve)
		leaves.POST("/:id/reject", h.Reject)
		leaves.GET("/:id/return-status", h.ReturnStatus)
	}

	// Di luar group /leaves agar tidak bentrok dengan wildcard :id
	r.GET("/reports/late-returns", h.LateReturns)
}
