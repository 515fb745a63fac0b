package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// MenuUsecase は画面ロード時に読むメニュー一式を組み立てる。
// メニューが読めないときだけは全画面エラーにする（代替メニューが無いため）。
type MenuUsecase struct {
	menuRepo repo.MenuRepository
}

func NewMenuUsecase(menuRepo repo.MenuRepository) *MenuUsecase {
	return &MenuUsecase{menuRepo: menuRepo}
}

type SizeOption struct {
	Label string `json:"label"`
	Price int64  `json:"price"`
}

type MenuResponse struct {
	Items  []model.MenuItem                   `json:"items"`
	Addons map[model.ProductType][]string     `json:"addons"`
	Sizes  map[model.ProductType][]SizeOption `json:"sizes"`
}

// GetMenu は商品・トッピング候補・サイズ候補をカテゴリ毎にまとめて返す。
func (u *MenuUsecase) GetMenu(ctx context.Context) (MenuResponse, error) {
	items, err := u.menuRepo.ListItems(ctx)
	if err != nil {
		return MenuResponse{}, NewHTTPError(http.StatusInternalServerError, "menu unavailable")
	}

	out := MenuResponse{
		Items:  items,
		Addons: make(map[model.ProductType][]string),
		Sizes:  make(map[model.ProductType][]SizeOption),
	}

	// 商品があるカテゴリだけ集める
	seen := make(map[model.ProductType]bool)
	for _, it := range items {
		if seen[it.Type] {
			continue
		}
		seen[it.Type] = true

		addons, err := u.menuRepo.ListAddonsByType(ctx, it.Type)
		if err != nil {
			return MenuResponse{}, NewHTTPError(http.StatusInternalServerError, "menu unavailable")
		}
		labels := make([]string, 0, len(addons))
		for _, a := range addons {
			labels = append(labels, a.Label)
		}
		out.Addons[it.Type] = labels

		sizes, err := u.menuRepo.ListSizesByType(ctx, it.Type)
		if err != nil {
			return MenuResponse{}, NewHTTPError(http.StatusInternalServerError, "menu unavailable")
		}
		opts := make([]SizeOption, 0, len(sizes))
		for _, s := range sizes {
			opts = append(opts, SizeOption{Label: s.Label, Price: s.Surcharge})
		}
		out.Sizes[it.Type] = opts
	}

	return out, nil
}
