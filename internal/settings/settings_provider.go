package settings

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const settingCacheKeyPrefix = "settings:"

//go:generate mockgen -source=settings_provider.go -destination=mock/settings_provider_mock.go -package=mock
type Provider interface {
	LatePenaltyRatePerMinute(ctx context.Context) (decimal.Decimal, error)
}

type provider struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewProvider(repo Repository, rdb *redis.Client) Provider {
	return &provider{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: zap.L().Named("settings.provider"),
	}
}

func (p *provider) LatePenaltyRatePerMinute(ctx context.Context) (decimal.Decimal, error) {
	rate, err := p.lookup(ctx, KeyLatePenaltyRatePerMinute)
	if err != nil {
		return decimal.Zero, err
	}
	// Tarif nol atau belum diisi berarti pakai default.
	if rate.IsZero() {
		return DefaultLatePenaltyRatePerMinute, nil
	}
	return rate, nil
}

func (p *provider) lookup(ctx context.Context, key string) (decimal.Decimal, error) {
	cacheKey := settingCacheKeyPrefix + key

	if p.rdb != nil {
		if cached, err := p.rdb.Get(ctx, cacheKey).Result(); err == nil {
			if v, err := decimal.NewFromString(cached); err == nil {
				return v, nil
			}
		}
	}

	v, err, _ := p.sf.Do(cacheKey, func() (interface{}, error) {
		row, err := p.repo.FindByKey(ctx, key)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return decimal.Zero, nil
			}
			return nil, err
		}

		if p.rdb != nil {
			p.rdb.Set(ctx, cacheKey, row.Value.String(), 1*time.Hour)
		}
		return row.Value, nil
	})
	if err != nil {
		p.logger.Error("gagal membaca setting", zap.String("key", key), zap.Error(err))
		return decimal.Zero, err
	}
	return v.(decimal.Decimal), nil
}
