package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// OrderUsecase は帳簿ログAPI（POST /api/orders）の業務ロジック。
// 作成と一覧のみ。更新・削除は仕様上存在しない。
type OrderUsecase struct {
	orders repo.OrderRepository
	v      CheckoutValidator
}

func NewOrderUsecase(orders repo.OrderRepository, v CheckoutValidator) *OrderUsecase {
	return &OrderUsecase{orders: orders, v: v}
}

type OrderItemInput struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	Variant  string   `json:"variant"`
	Addons   []string `json:"addons"`
	Price    int64    `json:"price"`
	Quantity int64    `json:"quantity"`
}

type CreateOrderInput struct {
	Name          string
	Class         string
	WhatsApp      string
	PaymentMethod string
	Total         int64
	Items         []OrderItemInput
}

// CreateOrder は注文スナップショットを検証してログに積む。
func (u *OrderUsecase) CreateOrder(ctx context.Context, in CreateOrderInput) (model.Order, error) {
	// フォーム項目はチェックアウトと同じ制約
	fields := u.v.Validate(CheckoutInput{
		Name:          in.Name,
		Class:         in.Class,
		WhatsApp:      in.WhatsApp,
		PaymentMethod: in.PaymentMethod,
	})
	if len(fields) > 0 {
		return model.Order{}, NewValidationError(fields)
	}
	if in.Total < 0 {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid total")
	}

	items := make([]model.OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		if it.Quantity < 1 || it.Price < 0 {
			return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid items")
		}
		addons := it.Addons
		if addons == nil {
			addons = []string{}
		}
		items = append(items, model.OrderItem{
			ID:       it.ID,
			Name:     it.Name,
			Type:     model.ProductType(it.Type),
			Variant:  it.Variant,
			Addons:   addons,
			Price:    it.Price,
			Quantity: it.Quantity,
		})
	}

	created, err := u.orders.Create(ctx, model.Order{
		Name:          in.Name,
		Class:         in.Class,
		WhatsApp:      in.WhatsApp,
		PaymentMethod: model.PaymentMethod(in.PaymentMethod),
		Total:         in.Total,
		Items:         items,
	})
	if err != nil {
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "log error")
	}

	return created, nil
}

// ListOrders は帳簿の全件（新しい順）。
func (u *OrderUsecase) ListOrders(ctx context.Context) ([]model.Order, error) {
	out, err := u.orders.List(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "log error")
	}
	return out, nil
}
