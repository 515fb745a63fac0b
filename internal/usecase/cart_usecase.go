package usecase

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// CartUsecase はセッション毎のカートを一手に持つストア。
// 実体はメモリ上のカートで、変更の度にスナップショットを副作用として保存する。
// スナップショット保存の失敗は操作を失敗させない（ログのみ）。
type CartUsecase struct {
	mu    sync.Mutex
	carts map[string]*model.Cart

	snapshots repo.CartSnapshotRepository
	menuRepo  repo.MenuRepository
	idGen     IDGenerator
	logger    *slog.Logger
}

func NewCartUsecase(
	snapshots repo.CartSnapshotRepository,
	menuRepo repo.MenuRepository,
	idGen IDGenerator,
	logger *slog.Logger,
) *CartUsecase {
	return &CartUsecase{
		carts:     make(map[string]*model.Cart),
		snapshots: snapshots,
		menuRepo:  menuRepo,
		idGen:     idGen,
		logger:    logger,
	}
}

type CartResponse struct {
	Items []model.CartItem `json:"items"`
	Total int64            `json:"total"`
}

type AddToCartInput struct {
	MenuItemID string
	Variant    string
	Addons     []string
	Quantity   int64
}

// GetCart はカート取得（初回はスナップショットから復元、無ければ空）。
func (u *CartUsecase) GetCart(ctx context.Context, sessionID string) (CartResponse, error) {
	if sessionID == "" {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "no session")
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	cart := u.currentCartLocked(ctx, sessionID)
	return toCartResponse(cart), nil
}

// AddToCart はメニューを引いて価格を確定し、新しい明細として追加する。
// 同じ選択の二度目でもマージしない。価格は「基本＋サイズ追加料金」を追加時点で固定。
func (u *CartUsecase) AddToCart(ctx context.Context, sessionID string, in AddToCartInput) (CartResponse, error) {
	if sessionID == "" {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "no session")
	}

	// 数量省略は1本
	if in.Quantity == 0 {
		in.Quantity = 1
	}
	if in.Quantity < 1 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	// 商品チェック
	item, err := u.menuRepo.FindItemByID(ctx, in.MenuItemID)
	if err == repo.ErrNotFound {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid menu_item_id")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	// サイズチェック＋追加料金
	sizes, err := u.menuRepo.ListSizesByType(ctx, item.Type)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	var surcharge int64 = -1
	for _, s := range sizes {
		if s.Label == in.Variant {
			surcharge = s.Surcharge
			break
		}
	}
	if surcharge < 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid variant")
	}

	// トッピングはカテゴリの候補内だけ。複数選択可・重複は1つにまとめる。
	addons, err := u.validAddons(ctx, item.Type, in.Addons)
	if err != nil {
		return CartResponse{}, err
	}

	newItem := model.CartItem{
		ID:       u.idGen.NewID(),
		Name:     item.Title,
		Type:     item.Type,
		Variant:  in.Variant,
		Addons:   addons,
		Price:    item.Price + surcharge,
		Quantity: in.Quantity,
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	cart := u.currentCartLocked(ctx, sessionID)
	cart.Add(newItem)
	u.persistLocked(ctx, sessionID, cart)

	return toCartResponse(cart), nil
}

// 数量の増減。下限1。存在しないIDは何もしない（エラーにしない）。
func (u *CartUsecase) UpdateQuantity(ctx context.Context, sessionID string, itemID string, delta int64) (CartResponse, error) {
	if sessionID == "" {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "no session")
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	cart := u.currentCartLocked(ctx, sessionID)
	cart.UpdateQuantity(itemID, delta)
	u.persistLocked(ctx, sessionID, cart)

	return toCartResponse(cart), nil
}

// 明細削除。存在しないIDは何もしない（冪等削除）。
func (u *CartUsecase) RemoveItem(ctx context.Context, sessionID string, itemID string) (CartResponse, error) {
	if sessionID == "" {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "no session")
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	cart := u.currentCartLocked(ctx, sessionID)
	cart.Remove(itemID)
	u.persistLocked(ctx, sessionID, cart)

	return toCartResponse(cart), nil
}

// ClearCart はカートを空にする。チェックアウトからも使われる（CartSource実装）。
func (u *CartUsecase) ClearCart(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return NewHTTPError(http.StatusUnauthorized, "no session")
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	cart := u.currentCartLocked(ctx, sessionID)
	cart.Clear()
	u.persistLocked(ctx, sessionID, cart)
	return nil
}

// SnapshotItems は明細のコピーと合計を返す（CartSource実装）。
func (u *CartUsecase) SnapshotItems(ctx context.Context, sessionID string) ([]model.CartItem, int64, error) {
	if sessionID == "" {
		return nil, 0, NewHTTPError(http.StatusUnauthorized, "no session")
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	cart := u.currentCartLocked(ctx, sessionID)
	items := make([]model.CartItem, len(cart.Items))
	copy(items, cart.Items)
	return items, cart.Total(), nil
}

// ロック中に呼ぶ。初回はスナップショットから復元する。
func (u *CartUsecase) currentCartLocked(ctx context.Context, sessionID string) *model.Cart {
	if cart, ok := u.carts[sessionID]; ok {
		return cart
	}

	cart := &model.Cart{}
	restored, found, err := u.snapshots.Load(ctx, sessionID)
	if err != nil {
		// 復元失敗は空カートで開始（ログのみ）
		u.logger.Warn("cart snapshot load failed", "session_id", sessionID, "error", err)
	} else if found {
		*cart = restored
	}

	u.carts[sessionID] = cart
	return cart
}

// 変更の副作用としてスナップショット保存。失敗は飲み込む。
func (u *CartUsecase) persistLocked(ctx context.Context, sessionID string, cart *model.Cart) {
	if err := u.snapshots.Save(ctx, sessionID, *cart); err != nil {
		u.logger.Warn("cart snapshot save failed", "session_id", sessionID, "error", err)
	}
}

func (u *CartUsecase) validAddons(ctx context.Context, t model.ProductType, requested []string) ([]string, error) {
	if len(requested) == 0 {
		return []string{}, nil
	}

	allowed, err := u.menuRepo.ListAddonsByType(ctx, t)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	allowedSet := make(map[string]bool, len(allowed))
	for _, a := range allowed {
		allowedSet[a.Label] = true
	}

	out := make([]string, 0, len(requested))
	seen := make(map[string]bool, len(requested))
	for _, label := range requested {
		if !allowedSet[label] {
			return nil, NewHTTPError(http.StatusBadRequest, "invalid addon")
		}
		if seen[label] {
			continue
		}
		seen[label] = true
		out = append(out, label)
	}

	return out, nil
}

func toCartResponse(cart *model.Cart) CartResponse {
	items := make([]model.CartItem, len(cart.Items))
	copy(items, cart.Items)
	return CartResponse{Items: items, Total: cart.Total()}
}
