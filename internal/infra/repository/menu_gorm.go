package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type MenuGormRepository struct {
	db *gorm.DB
}

// DI
func NewMenuGormRepository(db *gorm.DB) *MenuGormRepository {
	return &MenuGormRepository{db: db}
}

// メニュー全件を表示順で返す
func (r *MenuGormRepository) ListItems(ctx context.Context) ([]model.MenuItem, error) {
	var items []model.MenuItem
	err := r.db.WithContext(ctx).
		Order("sort asc").Order("id asc").
		Find(&items).Error
	if err != nil {
		return []model.MenuItem{}, err
	}
	return items, nil
}

// IDで商品を取得
func (r *MenuGormRepository) FindItemByID(ctx context.Context, id string) (model.MenuItem, error) {
	var item model.MenuItem
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.MenuItem{}, repo.ErrNotFound
	}
	if err != nil {
		return model.MenuItem{}, err
	}
	return item, nil
}

// カテゴリのトッピング候補
func (r *MenuGormRepository) ListAddonsByType(ctx context.Context, t model.ProductType) ([]model.AddonOption, error) {
	var addons []model.AddonOption
	err := r.db.WithContext(ctx).
		Where("type = ?", t).
		Order("sort asc").Order("id asc").
		Find(&addons).Error
	if err != nil {
		return []model.AddonOption{}, err
	}
	return addons, nil
}

// カテゴリのサイズ候補
func (r *MenuGormRepository) ListSizesByType(ctx context.Context, t model.ProductType) ([]model.SizeVariant, error) {
	var sizes []model.SizeVariant
	err := r.db.WithContext(ctx).
		Where("type = ?", t).
		Order("sort asc").Order("id asc").
		Find(&sizes).Error
	if err != nil {
		return []model.SizeVariant{}, err
	}
	return sizes, nil
}
