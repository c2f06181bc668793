package payroll

import (
	"go-absensi/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rdb *redis.Client) {
	payrolls := r.Group("/payrolls")
	{
		payrolls.POST("",
			middleware.RateLimitByIP(2, 5),
			middleware.Idempotency(rdb),
			h.Create,
		)
		payrolls.GET("", h.List)
		payrolls.GET("/:id", h.GetByID)
		payrolls.POST("/:id/pay", middleware.Idempotency(rdb), h.MarkAsPaid)
		payrolls.POST("/:id/cancel", h.Cancel)
	}

	// Preview murni baca, tidak perlu idempotency.
	r.GET("/reports/deduction-preview", h.PreviewDeductions)
}
