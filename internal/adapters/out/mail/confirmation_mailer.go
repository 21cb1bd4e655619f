// internal/adapters/out/mail/confirmation_mailer.go
package mail

import (
	"context"
	"fmt"
	"strings"

	"wingx/internal/domain/order"
)

// ConfirmationMailer sends transactional notifications for order events.
type ConfirmationMailer struct {
	client EmailClient
	from   string
}

func NewConfirmationMailer(client EmailClient, from string) *ConfirmationMailer {
	return &ConfirmationMailer{client: client, from: from}
}

// PaymentVerified notifies the customer that their payment was approved.
// Orders without an email address are skipped silently.
func (m *ConfirmationMailer) PaymentVerified(ctx context.Context, o order.Order) error {
	if o.Customer.Email == "" {
		return nil
	}

	subject := "¡Tu pago ha sido verificado!"
	body := buildPaymentVerifiedBody(o)

	return m.client.Send(ctx, m.from, o.Customer.Email, subject, body)
}

func buildPaymentVerifiedBody(o order.Order) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Hola %s,\n\n", o.Customer.Name)
	fmt.Fprintf(&b, "Verificamos tu pago del pedido #%s. ¡Gracias por tu compra!\n\n", shortID(o.ID))
	b.WriteString("Resumen del pedido:\n")
	for _, line := range o.Items {
		fmt.Fprintf(&b, "  - %dx %s ($%.2f)\n", line.Quantity, line.Name, line.Price)
	}
	fmt.Fprintf(&b, "\nTotal: $%.2f\n\n", o.TotalPrice)
	b.WriteString("Pronto nos pondremos en contacto para coordinar la entrega.\n\n")
	b.WriteString("Wingx 🦋\n")

	return b.String()
}

func shortID(id string) string {
	up := strings.ToUpper(id)
	if len(up) > 6 {
		return up[:6]
	}
	return up
}
