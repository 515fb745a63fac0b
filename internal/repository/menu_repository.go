package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// メニューの読み取りだけを約束。書き込みはシード処理のみ（gorm直）。
type MenuRepository interface {
	ListItems(ctx context.Context) ([]model.MenuItem, error)
	FindItemByID(ctx context.Context, id string) (model.MenuItem, error)
	ListAddonsByType(ctx context.Context, t model.ProductType) ([]model.AddonOption, error)
	ListSizesByType(ctx context.Context, t model.ProductType) ([]model.SizeVariant, error)
}
