package validator

import (
	"regexp"
	"strings"

	"app/internal/domain/model"
	"app/internal/usecase"
)

// 電話番号のゆるい形式：数字・先頭の+・空白・ハイフン
var phoneRe = regexp.MustCompile(`^\+?[\d\s-]+$`)

type checkoutValidator struct{}

// Usecaseは interface を依存注入
func NewCheckoutValidator() usecase.CheckoutValidator {
	return &checkoutValidator{}
}

// チェックアウトフォームの入力を検証。
// 戻り値はフィールド名→メッセージ。空mapなら合格。
func (v *checkoutValidator) Validate(in usecase.CheckoutInput) map[string]string {
	fields := map[string]string{}

	// 名前は2文字以上
	if len(strings.TrimSpace(in.Name)) < 2 {
		fields["name"] = "Name is required"
	}

	// クラスは必須
	if strings.TrimSpace(in.Class) == "" {
		fields["class"] = "Class is required"
	}

	// WhatsApp番号は9文字以上＋ゆるい電話番号形式
	wa := strings.TrimSpace(in.WhatsApp)
	if len(wa) < 9 {
		fields["whatsapp"] = "Valid WhatsApp number required"
	} else if !phoneRe.MatchString(wa) {
		fields["whatsapp"] = "Invalid phone number"
	}

	// 支払い方法は固定enum
	switch model.PaymentMethod(in.PaymentMethod) {
	case model.PaymentMethodCash, model.PaymentMethodTransfer:
	default:
		fields["paymentMethod"] = "Invalid payment method"
	}

	return fields
}
