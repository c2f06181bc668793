package attendance

import (
	"go-absensi/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rdb *redis.Client) {
	attendances := r.Group("/attendances")
	{
		attendances.GET("", h.List)
		attendances.POST("/check-in",
			middleware.RateLimitByEmployee(1, 3),
			middleware.Idempotency(rdb),
			h.CheckIn,
		)
		attendances.POST("/check-out",
			middleware.RateLimitByEmployee(1, 3),
			middleware.Idempotency(rdb),
			h.CheckOut,
		)
	}
}
