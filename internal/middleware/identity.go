package middleware

import (
	"net/http"

	"go-absensi/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Identity membaca identitas karyawan dari header yang sudah diisi oleh
// gateway/auth layer di depan service ini. Engine tidak melakukan
// autentikasi sendiri.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		employeeID := c.GetHeader("X-Employee-ID")
		if employeeID != "" {
			if _, err := uuid.Parse(employeeID); err != nil {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
					"code":    "INVALID_INPUT",
					"message": "invalid employee id header",
				})
				return
			}
			c.Set("employee_id", employeeID)
			ctx := contextutil.WithEmployeeID(c.Request.Context(), employeeID)
			c.Request = c.Request.WithContext(ctx)
		}

		c.Next()
	}
}
