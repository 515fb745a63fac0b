package usecase_test

import (
	"context"
	"testing"

	"app/internal/domain/model"
	"app/internal/usecase"
	"app/internal/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func validOrderInput() usecase.CreateOrderInput {
	return usecase.CreateOrderInput{
		Name:          "Budi",
		Class:         "XII IPA 2",
		WhatsApp:      "081234567890",
		PaymentMethod: "transfer",
		Total:         20000,
		Items: []usecase.OrderItemInput{{
			ID: "a1", Name: "Choco Blast", Type: "icecream",
			Variant: "Cup", Addons: []string{"Oreo Crumbles"}, Price: 20000, Quantity: 1,
		}},
	}
}

func TestOrderUsecase_CreateOrder(t *testing.T) {
	orders := new(OrderRepoMock)
	orders.On("Create", mock.Anything, mock.Anything).Return(model.Order{ID: 1}, nil)
	uc := usecase.NewOrderUsecase(orders, validator.NewCheckoutValidator())

	out, err := uc.CreateOrder(context.Background(), validOrderInput())
	assert.NoError(t, err)
	assert.Equal(t, int64(1), out.ID)

	// 明細は型付きのまま保存される
	orders.AssertCalled(t, "Create", mock.Anything, mock.MatchedBy(func(o model.Order) bool {
		return len(o.Items) == 1 &&
			o.Items[0].Type == model.ProductTypeIceCream &&
			o.PaymentMethod == model.PaymentMethodTransfer
	}))
}

func TestOrderUsecase_CreateOrder_ValidationFailure(t *testing.T) {
	orders := new(OrderRepoMock)
	uc := usecase.NewOrderUsecase(orders, validator.NewCheckoutValidator())

	in := validOrderInput()
	in.WhatsApp = "123"

	_, err := uc.CreateOrder(context.Background(), in)
	ve, ok := usecase.AsValidationError(err)
	assert.True(t, ok)
	assert.Contains(t, ve.Fields, "whatsapp")
	orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderUsecase_CreateOrder_InvalidItems(t *testing.T) {
	uc := usecase.NewOrderUsecase(new(OrderRepoMock), validator.NewCheckoutValidator())

	in := validOrderInput()
	in.Items[0].Quantity = 0

	_, err := uc.CreateOrder(context.Background(), in)
	assertErrContains(t, err, "invalid items")
}

func TestOrderUsecase_ListOrders(t *testing.T) {
	orders := new(OrderRepoMock)
	orders.On("List", mock.Anything).Return([]model.Order{{ID: 2}, {ID: 1}}, nil)
	uc := usecase.NewOrderUsecase(orders, validator.NewCheckoutValidator())

	out, err := uc.ListOrders(context.Background())
	assert.NoError(t, err)
	assert.Len(t, out, 2)
	assert.Equal(t, int64(2), out[0].ID)
}
