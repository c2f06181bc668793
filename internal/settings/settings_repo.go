package settings

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=settings_repo.go -destination=mock/settings_repo_mock.go -package=mock
type Repository interface {
	FindByKey(ctx context.Context, key string) (*Setting, error)
	Upsert(ctx context.Context, setting *Setting) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByKey(ctx context.Context, key string) (*Setting, error) {
	var s Setting
	err := r.db.WithContext(ctx).Where("key = ?", key).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) Upsert(ctx context.Context, setting *Setting) error {
	return r.db.WithContext(ctx).
		Where("key = ?", setting.Key).
		Assign("value", setting.Value).
		FirstOrCreate(setting).Error
}
