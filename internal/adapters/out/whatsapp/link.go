// internal/adapters/out/whatsapp/link.go
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	orderdom "wingx/internal/domain/order"
)

// countryPrefix is Venezuela's calling code; numbers without it get it
// prepended after dropping a leading trunk 0.
const countryPrefix = "58"

// NormalizePhone turns a user/env-supplied number into a wa.me-compatible
// digit string: separators stripped, trunk 0 dropped, country code ensured.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" {
		return ""
	}
	if strings.HasPrefix(digits, countryPrefix) {
		return digits
	}
	digits = strings.TrimPrefix(digits, "0")
	return countryPrefix + digits
}

// Link builds a wa.me deep link with a pre-filled message.
func Link(phone, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", NormalizePhone(phone), url.QueryEscape(message))
}

var methodLabels = map[orderdom.DeliveryMethod]string{
	orderdom.DeliveryPickup:   "📍 Punto de Encuentro",
	orderdom.DeliveryDelivery: "🛵 Delivery BQTO",
	orderdom.DeliveryShipment: "📦 Envío Nacional",
}

// OrderMessage renders the customer-facing templated order summary for the
// messaging handoff.
func OrderMessage(o orderdom.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "¡Hola Wingx! 🦋 Quisiera procesar mi pedido *#%s* realizado en la web.\n\n", ShortID(o.ID))
	fmt.Fprintf(&b, "👤 *Cliente:* %s\n", o.Customer.Name)
	fmt.Fprintf(&b, "%s (%s)\n", methodLabels[o.Customer.DeliveryMethod], o.Customer.Address)
	b.WriteString("\n*Pedido:*\n")
	for _, it := range o.Items {
		fmt.Fprintf(&b, "▪️ %dx %s ($%.2f)\n", it.Quantity, it.Name, it.Price)
	}
	fmt.Fprintf(&b, "💰 *Total: $%.2f*\n", o.TotalPrice)
	if o.Notes != "" {
		fmt.Fprintf(&b, "📝 Nota: %s\n", o.Notes)
	}
	return b.String()
}

// AdminAlert renders the condensed new-order notification for the admin
// phone. A second, separately-opened link carries it.
func AdminAlert(o orderdom.Order) string {
	label := "💬 WhatsApp"
	if o.PaymentMethod == orderdom.PaymentPagoMovil {
		label = "💳 Pago Móvil"
	}
	return fmt.Sprintf(
		"🔔 *NUEVO PEDIDO WEB*\n\n📋 *Orden:* #%s\n👤 *Cliente:* %s\n💰 *Total:* $%.2f\n📱 *Método:* %s\n\n_Revisa el panel de gestión para más detalles._",
		strings.ToUpper(ShortID(o.ID)), o.Customer.Name, o.TotalPrice, label,
	)
}

// ShortID is the human-friendly order reference: the first six id chars.
func ShortID(id string) string {
	if len(id) > 6 {
		return id[:6]
	}
	return id
}
