package model

import "time"

// 支払い方法（固定enum）
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodTransfer PaymentMethod = "transfer"
)

// 注文明細のスナップショット。CartItemをそのまま写す（型なしJSONにしない）。
type OrderItem struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Type     ProductType `json:"type"`
	Variant  string      `json:"variant"`
	Addons   []string    `json:"addons"`
	Price    int64       `json:"price"`
	Quantity int64       `json:"quantity"`
}

// 注文ログ1件。送信時点の非正規化スナップショット。
// write-once：作成後の更新・削除は存在しない。プロセス寿命のみ（帳簿用であり正本はWhatsApp側）。
type Order struct {
	ID            int64         `json:"id"`
	Name          string        `json:"name"`
	Class         string        `json:"class"`
	WhatsApp      string        `json:"whatsapp"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Total         int64         `json:"total"`
	Items         []OrderItem   `json:"items"`
	CreatedAt     time.Time     `json:"createdAt"`
}
