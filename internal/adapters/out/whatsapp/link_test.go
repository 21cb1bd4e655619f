package whatsapp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	orderdom "wingx/internal/domain/order"
)

func TestNormalizePhone(t *testing.T) {
	cases := map[string]string{
		"0412-123-4567":   "584121234567",
		"0412 123 4567":   "584121234567",
		"(0412) 1234567":  "584121234567",
		"+58 412 1234567": "584121234567",
		"584121234567":    "584121234567",
		"4121234567":      "584121234567",
		"":                "",
	}
	for in, want := range cases {
		assert.Equalf(t, want, NormalizePhone(in), "input %q", in)
	}
}

func TestLink(t *testing.T) {
	link := Link("0412-123-4567", "hola mundo")
	assert.Equal(t, "https://wa.me/584121234567?text=hola+mundo", link)
}

func TestOrderMessage(t *testing.T) {
	o := orderdom.Order{
		ID:         "abc123def",
		TotalPrice: 43,
		Customer: orderdom.CustomerInfo{
			Name:           "María",
			Address:        "CC Sambil Barquisimeto",
			DeliveryMethod: orderdom.DeliveryPickup,
		},
		Items: []orderdom.Line{
			{ProductID: "p1", Name: "Top", Price: 18, Quantity: 1},
			{ProductID: "p2", Name: "Leggings", Price: 25, Quantity: 1},
		},
		Notes: "sin bolsa",
	}

	msg := OrderMessage(o)
	assert.Contains(t, msg, "#abc123")
	assert.NotContains(t, msg, "abc123d")
	assert.Contains(t, msg, "María")
	assert.Contains(t, msg, "Punto de Encuentro")
	assert.Contains(t, msg, "1x Top ($18.00)")
	assert.Contains(t, msg, "Total: $43.00")
	assert.Contains(t, msg, "Nota: sin bolsa")
}

func TestAdminAlert(t *testing.T) {
	o := orderdom.Order{
		ID:            "abc123def",
		TotalPrice:    200000,
		PaymentMethod: orderdom.PaymentPagoMovil,
		Customer:      orderdom.CustomerInfo{Name: "María"},
	}
	msg := AdminAlert(o)
	assert.Contains(t, msg, "#ABC123")
	assert.Contains(t, msg, "Pago Móvil")
	assert.True(t, strings.HasPrefix(msg, "🔔"))

	o.PaymentMethod = orderdom.PaymentWhatsApp
	assert.Contains(t, AdminAlert(o), "WhatsApp")
}
