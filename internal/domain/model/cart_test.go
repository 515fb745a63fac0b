package model_test

import (
	"testing"

	"app/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

func item(id string, price int64, qty int64) model.CartItem {
	return model.CartItem{
		ID:       id,
		Name:     "Choco Blast",
		Type:     model.ProductTypeIceCream,
		Variant:  "Cup",
		Addons:   []string{"Oreo Crumbles"},
		Price:    price,
		Quantity: qty,
	}
}

func TestCart_Add_AppendsWithoutMerging(t *testing.T) {
	c := &model.Cart{}

	// 同じ内容でもマージせず2行になる
	c.Add(item("a", 20000, 1))
	c.Add(item("b", 20000, 1))

	assert.Len(t, c.Items, 2)
	assert.Equal(t, "a", c.Items[0].ID)
	assert.Equal(t, "b", c.Items[1].ID)
}

func TestCart_UpdateQuantity_ClampsAtOne(t *testing.T) {
	c := &model.Cart{}
	c.Add(item("a", 18000, 2))

	// 大きな負のdeltaでも1未満にはならない
	c.UpdateQuantity("a", -100)
	assert.Equal(t, int64(1), c.Items[0].Quantity)

	c.UpdateQuantity("a", 3)
	assert.Equal(t, int64(4), c.Items[0].Quantity)

	c.UpdateQuantity("a", -1)
	assert.Equal(t, int64(3), c.Items[0].Quantity)
}

func TestCart_UpdateQuantity_MissingIDIsNoop(t *testing.T) {
	c := &model.Cart{}
	c.Add(item("a", 18000, 2))

	c.UpdateQuantity("nope", 5)
	assert.Equal(t, int64(2), c.Items[0].Quantity)
}

func TestCart_Remove_MissingIDLeavesCartUnchanged(t *testing.T) {
	c := &model.Cart{}
	c.Add(item("a", 18000, 2))
	c.Add(item("b", 12000, 1))

	c.Remove("nope")

	assert.Len(t, c.Items, 2)
	assert.Equal(t, "a", c.Items[0].ID)
	assert.Equal(t, "b", c.Items[1].ID)
}

func TestCart_Remove_ByID(t *testing.T) {
	c := &model.Cart{}
	c.Add(item("a", 18000, 2))
	c.Add(item("b", 12000, 1))

	c.Remove("a")

	assert.Len(t, c.Items, 1)
	assert.Equal(t, "b", c.Items[0].ID)
}

func TestCart_Total(t *testing.T) {
	c := &model.Cart{}
	assert.Equal(t, int64(0), c.Total())

	c.Add(item("a", 18000, 2))
	assert.Equal(t, int64(36000), c.Total())

	c.Add(item("b", 12000, 3))
	assert.Equal(t, int64(36000+36000), c.Total())
}

func TestCart_Clear(t *testing.T) {
	c := &model.Cart{}
	c.Add(item("a", 18000, 2))

	c.Clear()

	assert.Empty(t, c.Items)
	assert.Equal(t, int64(0), c.Total())
}
