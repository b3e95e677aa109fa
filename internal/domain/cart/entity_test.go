// internal/domain/cart/entity_test.go
package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/restaurant-backend/internal/domain/pricing"
)

func burgerItem() Item {
	return Item{
		ID:          "item-1",
		ProductID:   1,
		ProductName: "X-Burguer da Casa",
		Quantity:    2,
		BasePrice:   3290,
		SelectedOptions: []pricing.SelectedOption{
			{GroupID: 2, OptionID: 20, Name: "Cheddar extra", ExtraPrice: 500},
			{GroupID: 2, OptionID: 21, Name: "Bacon", ExtraPrice: 400},
		},
	}
}

func TestNewCartIsEmpty(t *testing.T) {
	c := New("session-1", 599)

	assert.True(t, c.IsEmpty())
	assert.Equal(t, int64(0), c.Subtotal)
	assert.Equal(t, int64(599), c.Total)
}

func TestAddItemComputesTotals(t *testing.T) {
	c := New("session-1", 599)

	c.AddItem(burgerItem())

	require.Len(t, c.Items, 1)
	assert.Equal(t, int64(4190), c.Items[0].UnitTotal)
	assert.Equal(t, int64(8380), c.Items[0].LineTotal)
	assert.Equal(t, int64(8380), c.Subtotal)
	assert.Equal(t, int64(8979), c.Total)
}

func TestAddItemOverwritesStaleDerivedFields(t *testing.T) {
	c := New("session-1", 599)
	item := burgerItem()
	item.UnitTotal = 1 // wrong on purpose
	item.LineTotal = 1

	c.AddItem(item)

	assert.Equal(t, int64(4190), c.Items[0].UnitTotal)
	assert.Equal(t, int64(8380), c.Items[0].LineTotal)
}

func TestUpdateQuantityRecalculates(t *testing.T) {
	c := New("session-1", 599)
	c.AddItem(burgerItem())

	err := c.UpdateQuantity("item-1", 3)

	require.NoError(t, err)
	assert.Equal(t, int64(12570), c.Items[0].LineTotal)
	assert.Equal(t, int64(12570), c.Subtotal)
	assert.Equal(t, int64(13169), c.Total)
}

func TestUpdateQuantityZeroRemovesItem(t *testing.T) {
	c := New("session-1", 599)
	c.AddItem(burgerItem())

	err := c.UpdateQuantity("item-1", 0)

	require.NoError(t, err)
	assert.True(t, c.IsEmpty())
	assert.Equal(t, int64(0), c.Subtotal)
	assert.Equal(t, int64(599), c.Total)
}

func TestUpdateQuantityUnknownItem(t *testing.T) {
	c := New("session-1", 599)
	c.AddItem(burgerItem())

	err := c.UpdateQuantity("no-such-item", 5)

	assert.ErrorIs(t, err, ErrItemNotFound)
	assert.Equal(t, 2, c.Items[0].Quantity)
}

func TestRemoveItem(t *testing.T) {
	c := New("session-1", 599)
	c.AddItem(burgerItem())
	second := burgerItem()
	second.ID = "item-2"
	second.Quantity = 1
	c.AddItem(second)

	err := c.RemoveItem("item-1")

	require.NoError(t, err)
	require.Len(t, c.Items, 1)
	assert.Equal(t, "item-2", c.Items[0].ID)
	assert.Equal(t, int64(4190), c.Subtotal)
	assert.Equal(t, int64(4789), c.Total)
}

func TestRemoveItemUnknown(t *testing.T) {
	c := New("session-1", 599)

	assert.ErrorIs(t, c.RemoveItem("ghost"), ErrItemNotFound)
}

func TestClearKeepsDeliveryFee(t *testing.T) {
	c := New("session-1", 599)
	c.AddItem(burgerItem())

	c.Clear()

	assert.True(t, c.IsEmpty())
	assert.Equal(t, int64(599), c.DeliveryFee)
	assert.Equal(t, int64(599), c.Total)
}

func TestItemCount(t *testing.T) {
	c := New("session-1", 599)
	c.AddItem(burgerItem()) // quantity 2
	second := burgerItem()
	second.ID = "item-2"
	second.Quantity = 3
	c.AddItem(second)

	assert.Equal(t, 5, c.ItemCount())
}

func TestRecalculateItemIdempotent(t *testing.T) {
	item := burgerItem()

	recalculateItem(&item)
	once := item
	recalculateItem(&item)

	assert.Equal(t, once, item)
}

func TestTotalsConsistentAfterMutationSequence(t *testing.T) {
	c := New("session-1", 599)
	c.AddItem(burgerItem())
	second := burgerItem()
	second.ID = "item-2"
	second.Quantity = 1
	second.SelectedOptions = nil
	c.AddItem(second)

	require.NoError(t, c.UpdateQuantity("item-1", 1))
	require.NoError(t, c.RemoveItem("item-2"))
	require.NoError(t, c.UpdateQuantity("item-1", 4))

	var sum int64
	for _, item := range c.Items {
		sum += item.LineTotal
	}
	assert.Equal(t, sum, c.Subtotal)
	assert.Equal(t, c.Subtotal+c.DeliveryFee, c.Total)
	assert.Equal(t, int64(16760), c.Subtotal)
}
