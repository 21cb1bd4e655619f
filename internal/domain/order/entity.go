// internal/domain/order/entity.go
package order

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// ========================================
// Value objects
// ========================================

// DeliveryMethod mirrors the storefront checkout options.
type DeliveryMethod string

const (
	DeliveryPickup   DeliveryMethod = "pickup"
	DeliveryDelivery DeliveryMethod = "delivery"
	DeliveryShipment DeliveryMethod = "shipment"
)

// MeetingPoints are the fixed pickup locations. A pickup address is always
// system-assigned from this list, never user-typed.
var MeetingPoints = []string{
	"CC Sambil Barquisimeto",
	"CC Capital Plaza",
}

// DefaultMeetingPoint is the pre-selected pickup address.
const DefaultMeetingPoint = "CC Sambil Barquisimeto"

func IsMeetingPoint(addr string) bool {
	addr = strings.TrimSpace(addr)
	for _, mp := range MeetingPoints {
		if mp == addr {
			return true
		}
	}
	return false
}

// PaymentMethod tags how the customer settles the order.
type PaymentMethod string

const (
	PaymentPagoMovil PaymentMethod = "pago_movil"
	PaymentWhatsApp  PaymentMethod = "whatsapp"
	PaymentEfectivo  PaymentMethod = "efectivo"
)

// CustomerInfo is the delivery/contact block collected at checkout.
type CustomerInfo struct {
	Name           string         `json:"name"`
	Phone          string         `json:"phone"`
	Address        string         `json:"address"`
	Email          string         `json:"email,omitempty"`
	UserID         string         `json:"userId,omitempty"`
	DeliveryMethod DeliveryMethod `json:"deliveryMethod"`
}

// PagoMovilReport is the bank-transfer payment claim filed by the customer.
// MontoBs and TasaCambio snapshot the converted amount and the exchange rate
// at submission time; they are never recomputed afterwards.
type PagoMovilReport struct {
	BancoOrigen      string  `json:"bancoOrigen"`
	TelefonoOrigen   string  `json:"telefonoOrigen"`
	CedulaTitular    string  `json:"cedulaTitular"`
	NumeroReferencia string  `json:"numeroReferencia"`
	FechaPago        string  `json:"fechaPago"` // YYYY-MM-DD
	MontoBs          float64 `json:"montoBs,omitempty"`
	TasaCambio       float64 `json:"tasaCambio,omitempty"`
	BancoDestino     string  `json:"bancoDestino,omitempty"`
	TelefonoDestino  string  `json:"telefonoDestino,omitempty"`
	CedulaDestino    string  `json:"cedulaDestino,omitempty"`
}

// Line is one product snapshot inside an order: what was actually sold,
// decoupled from live catalog state.
type Line struct {
	ProductID    string  `json:"id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Quantity     int     `json:"quantity"`
	SelectedSize string  `json:"selectedSize,omitempty"`
	ImageURL     string  `json:"imageUrl,omitempty"`
}

// ========================================
// Entity
// ========================================

// Order is the aggregate root. It is created exactly once, mutated only via
// status transitions, and never deleted (rejection is a terminal status).
type Order struct {
	ID         string          `json:"id,omitempty"`
	Items      []Line          `json:"items"`
	TotalPrice float64         `json:"totalPrice"`
	Customer   CustomerInfo    `json:"customer"`
	Notes      string          `json:"notes,omitempty"`
	Status     Status          `json:"status"`

	PaymentMethod PaymentMethod    `json:"paymentMethod,omitempty"`
	PagoMovil     *PagoMovilReport `json:"pagoMovil,omitempty"`

	// IdempotencyKey is client-generated; the persistence boundary uses it
	// as the document id so a double-submit cannot create two orders.
	IdempotencyKey string `json:"idempotencyKey,omitempty"`

	// Server-assigned; never trusted from the client.
	CreatedAt  time.Time  `json:"createdAt,omitempty"`
	UpdatedAt  time.Time  `json:"updatedAt,omitempty"`
	VerifiedAt *time.Time `json:"verifiedAt,omitempty"`

	RejectionReason string `json:"rejectionReason,omitempty"`

	// Denormalized summary fields consumed by the management panel.
	ClientName  string  `json:"clientName,omitempty"`
	Price       float64 `json:"price,omitempty"`
	PaidAmount  float64 `json:"paidAmount,omitempty"`
	GarmentName string  `json:"garmentName,omitempty"`
	Size        string  `json:"size,omitempty"`
}

// ========================================
// Errors
// ========================================

var (
	ErrInvalidItems    = errors.New("order: invalid items")
	ErrInvalidTotal    = errors.New("order: total does not match line sum")
	ErrInvalidCustomer = errors.New("order: invalid customer")
	ErrInvalidReport   = errors.New("order: invalid pago movil report")

	ErrNotFound = errors.New("order: not found")
	ErrConflict = errors.New("order: conflict")
)

// DefaultRejectionReason is recorded when a reject carries no reason.
const DefaultRejectionReason = "Pago no encontrado"

const totalTolerance = 1e-6

// ========================================
// Constructors
// ========================================

// New assembles an order from its lines and customer block and derives the
// management summary fields. Status is set by the caller before persisting.
func New(items []Line, customer CustomerInfo, notes string) (Order, error) {
	if len(items) == 0 {
		return Order{}, ErrInvalidItems
	}
	total := 0.0
	var parts []string
	for _, it := range items {
		if strings.TrimSpace(it.ProductID) == "" || strings.TrimSpace(it.Name) == "" {
			return Order{}, ErrInvalidItems
		}
		if it.Quantity < 1 || it.Price < 0 {
			return Order{}, ErrInvalidItems
		}
		total += it.Price * float64(it.Quantity)
		parts = append(parts, fmt.Sprintf("%dx %s", it.Quantity, it.Name))
	}
	if err := customer.Validate(); err != nil {
		return Order{}, err
	}

	o := Order{
		Items:      items,
		TotalPrice: total,
		Customer:   customer,
		Notes:      strings.TrimSpace(notes),

		ClientName:  customer.Name,
		Price:       total,
		PaidAmount:  0,
		GarmentName: strings.Join(parts, ", "),
		Size:        sizeSummary(items),
	}
	return o, nil
}

// ValidateTotal confirms TotalPrice equals the line sum within floating-point
// tolerance. Creation-time invariant; historical orders are never re-checked.
func (o Order) ValidateTotal() error {
	sum := 0.0
	for _, it := range o.Items {
		sum += it.Price * float64(it.Quantity)
	}
	if math.Abs(sum-o.TotalPrice) > totalTolerance {
		return ErrInvalidTotal
	}
	return nil
}

func (c CustomerInfo) Validate() error {
	if len(strings.TrimSpace(c.Name)) < 2 {
		return fmt.Errorf("%w: name", ErrInvalidCustomer)
	}
	if len(strings.TrimSpace(c.Phone)) < 6 {
		return fmt.Errorf("%w: phone", ErrInvalidCustomer)
	}
	switch c.DeliveryMethod {
	case DeliveryPickup:
		if !IsMeetingPoint(c.Address) {
			return fmt.Errorf("%w: pickup address must be a meeting point", ErrInvalidCustomer)
		}
	case DeliveryDelivery, DeliveryShipment:
		if len(strings.TrimSpace(c.Address)) < 5 {
			return fmt.Errorf("%w: address", ErrInvalidCustomer)
		}
	default:
		return fmt.Errorf("%w: deliveryMethod", ErrInvalidCustomer)
	}
	return nil
}

func (r PagoMovilReport) Validate() error {
	if strings.TrimSpace(r.BancoOrigen) == "" {
		return fmt.Errorf("%w: bancoOrigen", ErrInvalidReport)
	}
	if len(strings.TrimSpace(r.TelefonoOrigen)) < 10 {
		return fmt.Errorf("%w: telefonoOrigen", ErrInvalidReport)
	}
	if len(strings.TrimSpace(r.CedulaTitular)) < 6 {
		return fmt.Errorf("%w: cedulaTitular", ErrInvalidReport)
	}
	if len(strings.TrimSpace(r.NumeroReferencia)) < 4 {
		return fmt.Errorf("%w: numeroReferencia", ErrInvalidReport)
	}
	if _, err := time.Parse("2006-01-02", strings.TrimSpace(r.FechaPago)); err != nil {
		return fmt.Errorf("%w: fechaPago", ErrInvalidReport)
	}
	return nil
}

func sizeSummary(items []Line) string {
	if len(items) == 1 {
		if s := strings.TrimSpace(items[0].SelectedSize); s != "" {
			return s
		}
		return "Única"
	}
	return "Varios"
}
