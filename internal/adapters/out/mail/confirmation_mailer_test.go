// internal/adapters/out/mail/confirmation_mailer_test.go
package mail

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wingx/internal/domain/order"
)

type capturedMail struct {
	from, to, subject, body string
}

type fakeEmailClient struct {
	sent []capturedMail
}

func (c *fakeEmailClient) Send(ctx context.Context, from, to, subject, body string) error {
	c.sent = append(c.sent, capturedMail{from, to, subject, body})
	return nil
}

func TestConfirmationMailer_PaymentVerified(t *testing.T) {
	client := &fakeEmailClient{}
	m := NewConfirmationMailer(client, "pedidos@wingx.store")

	o := order.Order{
		ID: "a1b2c3d4",
		Customer: order.CustomerInfo{
			Name:  "María Pérez",
			Email: "maria@example.com",
		},
		Items: []order.Line{
			{ProductID: "p1", Name: "Crop Top", Price: 10, Quantity: 2},
		},
		TotalPrice: 20,
	}

	require.NoError(t, m.PaymentVerified(context.Background(), o))
	require.Len(t, client.sent, 1)

	sent := client.sent[0]
	assert.Equal(t, "pedidos@wingx.store", sent.from)
	assert.Equal(t, "maria@example.com", sent.to)
	assert.Equal(t, "¡Tu pago ha sido verificado!", sent.subject)
	assert.Contains(t, sent.body, "María Pérez")
	assert.Contains(t, sent.body, "#A1B2C3")
	assert.Contains(t, sent.body, "2x Crop Top")
}

func TestConfirmationMailer_SkipsOrdersWithoutEmail(t *testing.T) {
	client := &fakeEmailClient{}
	m := NewConfirmationMailer(client, "pedidos@wingx.store")

	require.NoError(t, m.PaymentVerified(context.Background(), order.Order{ID: "x"}))
	assert.Empty(t, client.sent)
}
