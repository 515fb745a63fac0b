package model

// 商品カテゴリ（閉じた集合）
type ProductType string

const (
	ProductTypeIceCream   ProductType = "icecream"
	ProductTypeFries      ProductType = "fries"
	ProductTypePhotobooth ProductType = "photobooth"
)

// カートの明細1行。
// price は追加時点の「基本価格＋サイズ追加料金」を必ず保存（後から再計算しない）。
type CartItem struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Type     ProductType `json:"type"`
	Variant  string      `json:"variant"`
	Addons   []string    `json:"addons"`
	Price    int64       `json:"price"`
	Quantity int64       `json:"quantity"`
}

// セッション1つ分のカート。
// 操作は全部total function：不正なIDは黙って無視する（エラーにしない）。
type Cart struct {
	Items []CartItem `json:"items"`
}

// 明細を末尾に追加する。IDは呼び出し側（usecase）が採番する。
// 同じ商品＋同じカスタマイズでもマージしない（常に新しい行）。
func (c *Cart) Add(item CartItem) {
	c.Items = append(c.Items, item)
}

// IDが一致する明細を削除。見つからなければ何もしない。
func (c *Cart) Remove(id string) {
	out := c.Items[:0]
	for _, it := range c.Items {
		if it.ID != id {
			out = append(out, it)
		}
	}
	c.Items = out
}

// 数量を delta だけ増減する。下限は1（1未満には決してならない）。
// IDが見つからなければ何もしない。
func (c *Cart) UpdateQuantity(id string, delta int64) {
	for i := range c.Items {
		if c.Items[i].ID == id {
			q := c.Items[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			c.Items[i].Quantity = q
			return
		}
	}
}

// 全明細を空にする。
func (c *Cart) Clear() {
	c.Items = nil
}

// 合計＝Σ(price × quantity)。毎回計算する（キャッシュしない）。
func (c *Cart) Total() int64 {
	var total int64 = 0
	for _, it := range c.Items {
		total += it.Price * it.Quantity
	}
	return total
}
