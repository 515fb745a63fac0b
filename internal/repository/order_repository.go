package repository

import (
	"context"

	"app/internal/domain/model"
)

// 注文ログの約束。write-once：UpdateもDeleteも無い。
type OrderRepository interface {
	// IDとCreatedAtを採番して保存し、完成した注文を返す
	Create(ctx context.Context, order model.Order) (model.Order, error)
	// 新しい順で全件
	List(ctx context.Context) ([]model.Order, error)
}
