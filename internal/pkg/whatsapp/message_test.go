// internal/pkg/whatsapp/message_test.go
package whatsapp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/your-org/restaurant-backend/internal/domain/order"
	"github.com/your-org/restaurant-backend/internal/domain/pricing"
)

func sampleOrder() *order.Order {
	changeFor := int64(10000)
	return &order.Order{
		DisplayCode:   "ER-001",
		CustomerName:  "João Silva",
		CustomerPhone: "11988887777",
		Address: order.AddressSnapshot{
			Street:       "Rua das Flores",
			Number:       "123",
			Complement:   "Apto 42",
			Neighborhood: "Centro",
			City:         "São Paulo",
		},
		Payment: order.PaymentSnapshot{
			Type:      order.PaymentCash,
			ChangeFor: &changeFor,
		},
		Subtotal:    8380,
		DeliveryFee: 599,
		Total:       8979,
		Items: []order.OrderItem{
			{
				ProductName: "X-Burguer da Casa",
				Quantity:    2,
				UnitPrice:   4190,
				LineTotal:   8380,
				SelectedOptions: order.SelectedOptions{
					{GroupID: 2, OptionID: 20, Name: "Cheddar extra", ExtraPrice: 500},
					{GroupID: 2, OptionID: 21, Name: "Bacon", ExtraPrice: 400},
				},
				Notes: "Sem cebola",
			},
		},
	}
}

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "R$ 0,00", FormatBRL(0))
	assert.Equal(t, "R$ 5,99", FormatBRL(599))
	assert.Equal(t, "R$ 89,79", FormatBRL(8979))
	assert.Equal(t, "R$ 1.234,56", FormatBRL(123456))
	assert.Equal(t, "R$ 1.000.000,00", FormatBRL(100000000))
	assert.Equal(t, "-R$ 5,99", FormatBRL(-599))
}

func TestFormatOrderMessage(t *testing.T) {
	msg := FormatOrderMessage(sampleOrder())

	assert.Contains(t, msg, "NOVO PEDIDO - ER-001")
	assert.Contains(t, msg, "João Silva")
	assert.Contains(t, msg, "2x X-Burguer da Casa - R$ 83,80")
	assert.Contains(t, msg, "Cheddar extra, Bacon")
	assert.Contains(t, msg, "Obs: Sem cebola")
	assert.Contains(t, msg, "Rua das Flores, 123 - Apto 42")
	assert.Contains(t, msg, "Dinheiro")
	assert.Contains(t, msg, "Troco para: R$ 100,00")
	assert.Contains(t, msg, "Total: R$ 89,79")
}

func TestFormatOrderMessageOmitsChangeForNonCash(t *testing.T) {
	o := sampleOrder()
	o.Payment = order.PaymentSnapshot{Type: order.PaymentPix}

	msg := FormatOrderMessage(o)

	assert.Contains(t, msg, "PIX")
	assert.NotContains(t, msg, "Troco")
}

func TestOrderLink(t *testing.T) {
	link := OrderLink("5511999999999", sampleOrder())

	assert.Contains(t, link, "https://wa.me/5511999999999?text=")
	assert.NotContains(t, link, " ") // message must be url-encoded
}

func TestFormatOrderMessageNoOptions(t *testing.T) {
	o := sampleOrder()
	o.Items[0].SelectedOptions = order.SelectedOptions{}
	o.Items[0].Notes = ""

	msg := FormatOrderMessage(o)

	assert.Contains(t, msg, "2x X-Burguer da Casa")
	assert.NotContains(t, msg, "Obs: Sem cebola")
}

func TestMessageTotalsMatchPricing(t *testing.T) {
	o := sampleOrder()
	unit := pricing.UnitTotal(3290, o.Items[0].SelectedOptions)

	assert.Equal(t, o.Items[0].UnitPrice, unit)
	assert.Equal(t, o.Items[0].LineTotal, pricing.LineTotal(unit, o.Items[0].Quantity))
}
