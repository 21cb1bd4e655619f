// internal/application/usecase/checkout_usecase.go
package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	cartdom "wingx/internal/domain/cart"
	orderdom "wingx/internal/domain/order"
)

var (
	ErrCheckoutEmptyCart  = errors.New("checkout_usecase: cart is empty")
	ErrCheckoutNotOpen    = errors.New("checkout_usecase: wizard is not open")
	ErrCheckoutWrongStep  = errors.New("checkout_usecase: operation not valid for current step")
	ErrCheckoutValidation = errors.New("checkout_usecase: validation failed")
)

// CheckoutStep identifies where the wizard currently is.
type CheckoutStep string

const (
	StepInfo          CheckoutStep = "info"
	StepPaymentMethod CheckoutStep = "payment_method"
	StepPagoMovilForm CheckoutStep = "pago_movil_form"
)

// LinkBuilder produces the messaging deep links for a finished order.
type LinkBuilder interface {
	CustomerLink(o orderdom.Order) string
	AdminLink(o orderdom.Order) string
}

// CheckoutResult is what a successful submit hands back to the caller.
type CheckoutResult struct {
	Order        orderdom.Order `json:"order"`
	CustomerLink string         `json:"customerLink,omitempty"`
	AdminLink    string         `json:"adminLink,omitempty"`
}

// ValidationError carries per-field messages so the form can highlight them.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return ErrCheckoutValidation.Error() }

func (e *ValidationError) Unwrap() error { return ErrCheckoutValidation }

// CheckoutState is a read snapshot of the wizard.
type CheckoutState struct {
	Open     bool                  `json:"open"`
	Step     CheckoutStep          `json:"step"`
	Customer orderdom.CustomerInfo `json:"customer"`
	Notes    string                `json:"notes,omitempty"`
}

// CheckoutUsecase drives the three-step checkout wizard: contact and delivery
// info, payment method choice, and (for bank transfer) the payment claim form.
// Closing the wizard resets everything; the cart is cleared only after an
// order is persisted.
type CheckoutUsecase struct {
	mu     sync.Mutex
	cart   *CartUsecase
	orders *OrderUsecase
	links  LinkBuilder

	open     bool
	step     CheckoutStep
	customer orderdom.CustomerInfo
	notes    string
}

func NewCheckoutUsecase(cart *CartUsecase, orders *OrderUsecase, links LinkBuilder) *CheckoutUsecase {
	return &CheckoutUsecase{cart: cart, orders: orders, links: links}
}

// Open starts the wizard. An empty cart aborts; pickup at the default meeting
// point is pre-selected.
func (uc *CheckoutUsecase) Open() (CheckoutState, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.cart.IsEmpty() {
		return CheckoutState{}, ErrCheckoutEmptyCart
	}
	uc.open = true
	uc.step = StepInfo
	uc.customer = orderdom.CustomerInfo{
		DeliveryMethod: orderdom.DeliveryPickup,
		Address:        orderdom.DefaultMeetingPoint,
	}
	uc.notes = ""
	return uc.stateLocked(), nil
}

// Close abandons the wizard and wipes every partially-entered field.
func (uc *CheckoutUsecase) Close() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.resetLocked()
}

// State returns the current wizard snapshot.
func (uc *CheckoutUsecase) State() CheckoutState {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.stateLocked()
}

// SetDeliveryMethod updates the delivery choice. Switching to pickup forces
// the address onto a meeting point; switching away clears a meeting-point
// address so a pickup location never leaks into a delivery order.
func (uc *CheckoutUsecase) SetDeliveryMethod(m orderdom.DeliveryMethod) (CheckoutState, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if !uc.open {
		return CheckoutState{}, ErrCheckoutNotOpen
	}
	switch m {
	case orderdom.DeliveryPickup:
		if !orderdom.IsMeetingPoint(uc.customer.Address) {
			uc.customer.Address = orderdom.DefaultMeetingPoint
		}
	case orderdom.DeliveryDelivery, orderdom.DeliveryShipment:
		if orderdom.IsMeetingPoint(uc.customer.Address) {
			uc.customer.Address = ""
		}
	default:
		return CheckoutState{}, &ValidationError{Fields: map[string]string{"deliveryMethod": "método de entrega inválido"}}
	}
	uc.customer.DeliveryMethod = m
	return uc.stateLocked(), nil
}

// SubmitInfo validates the contact block and advances to the payment step.
func (uc *CheckoutUsecase) SubmitInfo(info orderdom.CustomerInfo, notes string) (CheckoutState, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if !uc.open {
		return CheckoutState{}, ErrCheckoutNotOpen
	}
	if uc.step != StepInfo {
		return CheckoutState{}, ErrCheckoutWrongStep
	}
	if info.DeliveryMethod == orderdom.DeliveryPickup && !orderdom.IsMeetingPoint(info.Address) {
		info.Address = orderdom.DefaultMeetingPoint
	}
	if fields := validateInfo(info); len(fields) > 0 {
		return CheckoutState{}, &ValidationError{Fields: fields}
	}

	uc.customer = info
	uc.notes = strings.TrimSpace(notes)
	uc.step = StepPaymentMethod
	return uc.stateLocked(), nil
}

// SelectPagoMovil advances to the payment claim form and returns the transfer
// sheet for the current cart total.
func (uc *CheckoutUsecase) SelectPagoMovil(ctx context.Context) (CheckoutState, PaymentInstructions, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if !uc.open {
		return CheckoutState{}, PaymentInstructions{}, ErrCheckoutNotOpen
	}
	if uc.step != StepPaymentMethod {
		return CheckoutState{}, PaymentInstructions{}, ErrCheckoutWrongStep
	}
	uc.step = StepPagoMovilForm
	instructions := uc.orders.PaymentInstructions(ctx, uc.cart.TotalPrice())
	return uc.stateLocked(), instructions, nil
}

// Back collapses one step. From the info step it is a no-op.
func (uc *CheckoutUsecase) Back() CheckoutState {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	switch uc.step {
	case StepPagoMovilForm:
		uc.step = StepPaymentMethod
	case StepPaymentMethod:
		uc.step = StepInfo
	}
	return uc.stateLocked()
}

// SubmitMessaging finishes checkout over the chat path (WhatsApp or cash on
// pickup). On success the cart is cleared, the wizard resets, and the caller
// gets the wa.me links to open.
func (uc *CheckoutUsecase) SubmitMessaging(ctx context.Context, method orderdom.PaymentMethod) (CheckoutResult, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if !uc.open {
		return CheckoutResult{}, ErrCheckoutNotOpen
	}
	if uc.step != StepPaymentMethod {
		return CheckoutResult{}, ErrCheckoutWrongStep
	}

	items, err := uc.linesLocked()
	if err != nil {
		return CheckoutResult{}, err
	}

	o, err := uc.orders.Create(ctx, items, uc.customer, uc.notes, method)
	if err != nil {
		return CheckoutResult{}, err
	}
	uc.finishLocked()

	return CheckoutResult{
		Order:        o,
		CustomerLink: uc.links.CustomerLink(o),
		AdminLink:    uc.links.AdminLink(o),
	}, nil
}

// SubmitPagoMovil finishes checkout with a bank-transfer claim. Field errors
// come back as a ValidationError; the cart survives any failure.
func (uc *CheckoutUsecase) SubmitPagoMovil(ctx context.Context, report orderdom.PagoMovilReport) (CheckoutResult, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if !uc.open {
		return CheckoutResult{}, ErrCheckoutNotOpen
	}
	if uc.step != StepPagoMovilForm {
		return CheckoutResult{}, ErrCheckoutWrongStep
	}
	if fields := validateReport(report); len(fields) > 0 {
		return CheckoutResult{}, &ValidationError{Fields: fields}
	}

	items, err := uc.linesLocked()
	if err != nil {
		return CheckoutResult{}, err
	}

	o, err := uc.orders.CreateWithPagoMovil(ctx, items, uc.customer, uc.notes, report)
	if err != nil {
		return CheckoutResult{}, err
	}
	uc.finishLocked()

	return CheckoutResult{
		Order:     o,
		AdminLink: uc.links.AdminLink(o),
	}, nil
}

func (uc *CheckoutUsecase) linesLocked() ([]orderdom.Line, error) {
	items := uc.cart.Items()
	if len(items) == 0 {
		return nil, ErrCheckoutEmptyCart
	}
	return cartLines(items), nil
}

func (uc *CheckoutUsecase) finishLocked() {
	if err := uc.cart.Clear(); err != nil {
		log.Printf("[checkout] cart clear after order failed: %v", err)
	}
	uc.resetLocked()
}

func (uc *CheckoutUsecase) resetLocked() {
	uc.open = false
	uc.step = StepInfo
	uc.customer = orderdom.CustomerInfo{}
	uc.notes = ""
}

func (uc *CheckoutUsecase) stateLocked() CheckoutState {
	return CheckoutState{
		Open:     uc.open,
		Step:     uc.step,
		Customer: uc.customer,
		Notes:    uc.notes,
	}
}

// cartLines converts cart lines into order lines, snapshotting the product
// fields an order needs to stand alone.
func cartLines(items []cartdom.Item) []orderdom.Line {
	lines := make([]orderdom.Line, 0, len(items))
	for _, it := range items {
		lines = append(lines, orderdom.Line{
			ProductID:    it.Product.ID,
			Name:         it.Product.Name,
			Price:        it.Product.Price,
			Quantity:     it.Quantity,
			SelectedSize: it.SelectedSize,
			ImageURL:     it.Product.ImageURL,
		})
	}
	return lines
}

func validateInfo(c orderdom.CustomerInfo) map[string]string {
	fields := map[string]string{}
	if len(strings.TrimSpace(c.Name)) < 2 {
		fields["name"] = "nombre es requerido"
	}
	if len(strings.TrimSpace(c.Phone)) < 6 {
		fields["phone"] = "teléfono inválido"
	}
	switch c.DeliveryMethod {
	case orderdom.DeliveryPickup:
		if !orderdom.IsMeetingPoint(c.Address) {
			fields["address"] = "selecciona un punto de encuentro"
		}
	case orderdom.DeliveryDelivery, orderdom.DeliveryShipment:
		if len(strings.TrimSpace(c.Address)) < 5 {
			fields["address"] = "dirección es requerida"
		}
	default:
		fields["deliveryMethod"] = "método de entrega inválido"
	}
	return fields
}

func validateReport(r orderdom.PagoMovilReport) map[string]string {
	fields := map[string]string{}
	if strings.TrimSpace(r.BancoOrigen) == "" {
		fields["bancoOrigen"] = "banco es requerido"
	}
	if len(strings.TrimSpace(r.TelefonoOrigen)) < 10 {
		fields["telefonoOrigen"] = "teléfono inválido"
	}
	if len(strings.TrimSpace(r.CedulaTitular)) < 6 {
		fields["cedulaTitular"] = "cédula inválida"
	}
	if len(strings.TrimSpace(r.NumeroReferencia)) < 4 {
		fields["numeroReferencia"] = "referencia debe tener al menos 4 dígitos"
	}
	if _, err := time.Parse("2006-01-02", strings.TrimSpace(r.FechaPago)); err != nil {
		fields["fechaPago"] = "fecha inválida"
	}
	return fields
}
