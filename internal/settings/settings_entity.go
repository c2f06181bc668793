package settings

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const KeyLatePenaltyRatePerMinute = "late_penalty_rate_per_minute"

// DefaultLatePenaltyRatePerMinute dipakai saat setting belum diisi.
var DefaultLatePenaltyRatePerMinute = decimal.NewFromInt(1000)

type Setting struct {
	ID        uuid.UUID       `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Key       string          `gorm:"column:key;type:varchar(80);not null;uniqueIndex"`
	Value     decimal.Decimal `gorm:"column:value;type:numeric(18,2);not null"`
	CreatedAt time.Time       `gorm:"column:created_at"`
	UpdatedAt time.Time       `gorm:"column:updated_at"`
}

func (Setting) TableName() string {
	return "settings"
}
