package validator_test

import (
	"testing"

	"app/internal/usecase"
	"app/internal/validator"

	"github.com/stretchr/testify/assert"
)

func valid() usecase.CheckoutInput {
	return usecase.CheckoutInput{
		Name:          "Budi Santoso",
		Class:         "XII IPA 2",
		WhatsApp:      "+62 812-8491-4453",
		PaymentMethod: "cash",
	}
}

func TestCheckoutValidator_Valid(t *testing.T) {
	v := validator.NewCheckoutValidator()
	assert.Empty(t, v.Validate(valid()))
}

func TestCheckoutValidator_TransferIsValid(t *testing.T) {
	v := validator.NewCheckoutValidator()
	in := valid()
	in.PaymentMethod = "transfer"
	assert.Empty(t, v.Validate(in))
}

func TestCheckoutValidator_NameTooShort(t *testing.T) {
	v := validator.NewCheckoutValidator()

	in := valid()
	in.Name = "B"
	fields := v.Validate(in)
	assert.Equal(t, "Name is required", fields["name"])

	// 空白だけも不合格
	in.Name = "   "
	fields = v.Validate(in)
	assert.Contains(t, fields, "name")
}

func TestCheckoutValidator_ClassRequired(t *testing.T) {
	v := validator.NewCheckoutValidator()

	in := valid()
	in.Class = ""
	fields := v.Validate(in)
	assert.Equal(t, "Class is required", fields["class"])
}

func TestCheckoutValidator_WhatsAppTooShort(t *testing.T) {
	v := validator.NewCheckoutValidator()

	in := valid()
	in.WhatsApp = "0812"
	fields := v.Validate(in)
	assert.Equal(t, "Valid WhatsApp number required", fields["whatsapp"])
}

func TestCheckoutValidator_WhatsAppBadCharacters(t *testing.T) {
	v := validator.NewCheckoutValidator()

	in := valid()
	in.WhatsApp = "0812abc4567"
	fields := v.Validate(in)
	assert.Equal(t, "Invalid phone number", fields["whatsapp"])

	// +は先頭だけ
	in.WhatsApp = "0812+345+6789"
	fields = v.Validate(in)
	assert.Contains(t, fields, "whatsapp")
}

func TestCheckoutValidator_PaymentMethodEnum(t *testing.T) {
	v := validator.NewCheckoutValidator()

	in := valid()
	in.PaymentMethod = "credit-card"
	fields := v.Validate(in)
	assert.Equal(t, "Invalid payment method", fields["paymentMethod"])
}

func TestCheckoutValidator_CollectsAllFieldErrors(t *testing.T) {
	v := validator.NewCheckoutValidator()

	fields := v.Validate(usecase.CheckoutInput{})
	assert.Len(t, fields, 4)
}
