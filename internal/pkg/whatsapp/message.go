// internal/pkg/whatsapp/message.go
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/your-org/restaurant-backend/internal/domain/order"
)

var paymentLabels = map[order.PaymentType]string{
	order.PaymentPix:    "PIX",
	order.PaymentCash:   "Dinheiro",
	order.PaymentCredit: "Cartão de Crédito",
	order.PaymentDebit:  "Cartão de Débito",
}

// FormatOrderMessage renders a placed order as the WhatsApp message sent
// to the restaurant
func FormatOrderMessage(o *order.Order) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🍔 *NOVO PEDIDO - %s*\n\n", o.DisplayCode)
	fmt.Fprintf(&b, "👤 *Cliente:* %s\n\n", o.CustomerName)

	b.WriteString("📦 *Itens:*\n")
	for _, item := range o.Items {
		fmt.Fprintf(&b, "• %dx %s - %s\n", item.Quantity, item.ProductName, FormatBRL(item.LineTotal))
		if len(item.SelectedOptions) > 0 {
			names := make([]string, len(item.SelectedOptions))
			for i, opt := range item.SelectedOptions {
				names[i] = opt.Name
			}
			fmt.Fprintf(&b, "   _%s_\n", strings.Join(names, ", "))
		}
		if item.Notes != "" {
			fmt.Fprintf(&b, "   _Obs: %s_\n", item.Notes)
		}
	}

	b.WriteString("\n📍 *Endereço:*\n")
	fmt.Fprintf(&b, "%s, %s", o.Address.Street, o.Address.Number)
	if o.Address.Complement != "" {
		fmt.Fprintf(&b, " - %s", o.Address.Complement)
	}
	fmt.Fprintf(&b, "\n%s\n", o.Address.Neighborhood)

	fmt.Fprintf(&b, "\n💳 *Pagamento:* %s\n", paymentLabel(o.Payment.Type))
	if o.Payment.Type == order.PaymentCash && o.Payment.ChangeFor != nil {
		fmt.Fprintf(&b, "💵 Troco para: %s\n", FormatBRL(*o.Payment.ChangeFor))
	}

	fmt.Fprintf(&b, "\n🛵 Entrega: %s\n", FormatBRL(o.DeliveryFee))
	fmt.Fprintf(&b, "💰 *Total: %s*\n", FormatBRL(o.Total))

	if o.Notes != "" {
		fmt.Fprintf(&b, "\n📝 *Obs:* %s\n", o.Notes)
	}

	return b.String()
}

// OrderLink builds the wa.me link that opens a chat with the restaurant
// pre-filled with the order message
func OrderLink(phone string, o *order.Order) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", phone, url.QueryEscape(FormatOrderMessage(o)))
}

// FormatBRL renders cents as a pt-BR currency string, e.g. 123456 cents
// become "R$ 1.234,56"
func FormatBRL(cents int64) string {
	negative := cents < 0
	if negative {
		cents = -cents
	}

	reais := cents / 100
	centavos := cents % 100

	digits := fmt.Sprintf("%d", reais)
	var grouped strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(d)
	}

	sign := ""
	if negative {
		sign = "-"
	}

	return fmt.Sprintf("%sR$ %s,%02d", sign, grouped.String(), centavos)
}

func paymentLabel(t order.PaymentType) string {
	if label, ok := paymentLabels[t]; ok {
		return label
	}
	return string(t)
}
