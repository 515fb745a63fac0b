package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"app/internal/domain/model"
)

// プロセス寿命の注文ログ。再起動で消える（永続化しないことが仕様）。
// 正本はWhatsApp側のやり取りで、こちらは帳簿用のメモ。
type OrderMemoryRepository struct {
	mu     sync.Mutex
	orders map[int64]model.Order
	nextID int64
}

func NewOrderMemoryRepository() *OrderMemoryRepository {
	return &OrderMemoryRepository{
		orders: make(map[int64]model.Order),
		nextID: 1,
	}
}

// IDを連番で採番し、CreatedAtを押して保存する。
func (r *OrderMemoryRepository) Create(ctx context.Context, order model.Order) (model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order.ID = r.nextID
	r.nextID++
	order.CreatedAt = time.Now()

	r.orders[order.ID] = order
	return order, nil
}

// 新しい順で全件
func (r *OrderMemoryRepository) List(ctx context.Context) ([]model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}
