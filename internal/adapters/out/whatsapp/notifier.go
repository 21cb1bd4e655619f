// internal/adapters/out/whatsapp/notifier.go
package whatsapp

import orderdom "wingx/internal/domain/order"

// Notifier builds the pair of wa.me deep links opened after a successful
// checkout: one addressed to the store, one to the admin phone.
type Notifier struct {
	storePhone string
	adminPhone string
}

func NewNotifier(storePhone, adminPhone string) *Notifier {
	return &Notifier{storePhone: storePhone, adminPhone: adminPhone}
}

func (n *Notifier) CustomerLink(o orderdom.Order) string {
	return Link(n.storePhone, OrderMessage(o))
}

func (n *Notifier) AdminLink(o orderdom.Order) string {
	if n.adminPhone == "" {
		return ""
	}
	return Link(n.adminPhone, AdminAlert(o))
}
