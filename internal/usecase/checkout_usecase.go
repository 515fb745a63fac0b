package usecase

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// チェックアウトが読むカート面。CartUsecaseが実装する。
type CartSource interface {
	SnapshotItems(ctx context.Context, sessionID string) ([]model.CartItem, int64, error)
	ClearCart(ctx context.Context, sessionID string) error
}

// CheckoutUsecase は送信1回分の直列パイプライン。
// 検証 → 注文サマリー組み立て → ログ（投げっぱなし） → カート空 → WhatsAppリンク返却。
// リトライもロールバックも無い：ログに失敗しても注文はWhatsApp側で成立する。
type CheckoutUsecase struct {
	cart     CartSource
	orders   repo.OrderRepository
	v        CheckoutValidator
	tasks    Tasks
	waNumber string
}

func NewCheckoutUsecase(
	cart CartSource,
	orders repo.OrderRepository,
	v CheckoutValidator,
	tasks Tasks,
	waNumber string,
) *CheckoutUsecase {
	return &CheckoutUsecase{
		cart:     cart,
		orders:   orders,
		v:        v,
		tasks:    tasks,
		waNumber: waNumber,
	}
}

type CheckoutInput struct {
	Name          string
	Class         string
	WhatsApp      string
	PaymentMethod string
}

type CheckoutOutput struct {
	WhatsAppURL string `json:"whatsapp_url"`
	RedirectTo  string `json:"redirect_to"`
	Summary     string `json:"summary"`
}

// Submit はチェックアウト本体。
func (u *CheckoutUsecase) Submit(ctx context.Context, sessionID string, in CheckoutInput) (CheckoutOutput, error) {
	if sessionID == "" {
		return CheckoutOutput{}, NewHTTPError(http.StatusUnauthorized, "no session")
	}

	// 1. フォーム検証。不合格なら以降は実行しない。
	if fields := u.v.Validate(in); len(fields) > 0 {
		return CheckoutOutput{}, NewValidationError(fields)
	}

	items, total, err := u.cart.SnapshotItems(ctx, sessionID)
	if err != nil {
		return CheckoutOutput{}, NewHTTPError(http.StatusInternalServerError, "cart error")
	}
	if len(items) == 0 {
		return CheckoutOutput{}, NewHTTPError(http.StatusBadRequest, "cart empty")
	}

	// 2. 注文サマリー組み立て
	summary := BuildOrderSummary(in, items, total)

	// 3. 帳簿ログは投げっぱなし。失敗してもこの先を止めない。
	order := model.Order{
		Name:          in.Name,
		Class:         in.Class,
		WhatsApp:      in.WhatsApp,
		PaymentMethod: model.PaymentMethod(in.PaymentMethod),
		Total:         total,
		Items:         toOrderItems(items),
	}
	u.tasks.Go("order-log", func(ctx context.Context) error {
		_, err := u.orders.Create(ctx, order)
		return err
	})

	// 4. カートは無条件で空にする（ログやハンドオフがこけても空のまま）
	_ = u.cart.ClearCart(ctx, sessionID)

	// 5. 固定の宛先へのWhatsAppディープリンクと完了画面を返す
	return CheckoutOutput{
		WhatsAppURL: WhatsAppLink(u.waNumber, summary),
		RedirectTo:  "/success",
		Summary:     summary,
	}, nil
}

// BuildOrderSummary はWhatsAppに渡す注文サマリー文字列を作る。
func BuildOrderSummary(in CheckoutInput, items []model.CartItem, total int64) string {
	var b strings.Builder

	b.WriteString("*New Order from Sweet Colony!* 🍬\n\n")
	b.WriteString("*Name:* " + in.Name + "\n")
	b.WriteString("*Class:* " + in.Class + "\n")
	b.WriteString("*Payment:* " + strings.ToUpper(in.PaymentMethod) + "\n\n")
	b.WriteString("*Order Details:*\n")

	for _, it := range items {
		b.WriteString("- " + it.Name + " (" + it.Variant + ")")
		if len(it.Addons) > 0 {
			b.WriteString(" w/ " + strings.Join(it.Addons, ", "))
		}
		b.WriteString(" x" + strconv.FormatInt(it.Quantity, 10) + "\n")
	}

	b.WriteString("\n*Total: Rp " + FormatRupiah(total) + "*")
	return b.String()
}

// WhatsAppLink は固定宛先へのディープリンク。
// サマリーはパーセントエンコードして新しいコンテキストで開いてもらう。
func WhatsAppLink(number string, message string) string {
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return "https://wa.me/" + number + "?text=" + encoded
}

// FormatRupiah は3桁区切りをドットで入れる（id-ID表記：20000 → "20.000"）。
func FormatRupiah(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)

	out := strings.Join(parts, ".")
	if neg {
		out = "-" + out
	}
	return out
}

func toOrderItems(items []model.CartItem) []model.OrderItem {
	out := make([]model.OrderItem, 0, len(items))
	for _, it := range items {
		out = append(out, model.OrderItem{
			ID:       it.ID,
			Name:     it.Name,
			Type:     it.Type,
			Variant:  it.Variant,
			Addons:   it.Addons,
			Price:    it.Price,
			Quantity: it.Quantity,
		})
	}
	return out
}
