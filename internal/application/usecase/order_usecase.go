// internal/application/usecase/order_usecase.go
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"wingx/internal/domain/exchange"
	orderdom "wingx/internal/domain/order"
)

var (
	ErrOrderInvalidArgument   = errors.New("order_usecase: invalid argument")
	ErrOrderInvalidTransition = errors.New("order_usecase: invalid status transition")
)

// RateProvider supplies the active exchange quote for payment snapshots.
type RateProvider interface {
	Current(ctx context.Context) exchange.Quote
}

// Mailer sends best-effort customer notifications.
type Mailer interface {
	PaymentVerified(ctx context.Context, o orderdom.Order) error
}

// PagoMovilDestino is the store-owned receiving account, denormalized into
// every bank-transfer order so the claim is self-contained.
type PagoMovilDestino struct {
	Banco    string
	Telefono string
	Cedula   string
}

// OrderUsecase coordinates order creation and the verification lifecycle.
type OrderUsecase struct {
	repo    orderdom.Repository
	rates   RateProvider
	mailer  Mailer
	destino PagoMovilDestino

	// strict rejects transitions outside the status table; permissive keeps
	// the historical last-write-wins behavior of the management panel.
	strict bool
}

func NewOrderUsecase(repo orderdom.Repository, rates RateProvider, mailer Mailer, destino PagoMovilDestino, strict bool) *OrderUsecase {
	return &OrderUsecase{
		repo:    repo,
		rates:   rates,
		mailer:  mailer,
		destino: destino,
		strict:  strict,
	}
}

// Create persists a messaging-path order (WhatsApp or cash on pickup). The
// order starts in "Pendiente" and is settled over chat, not in the panel.
func (uc *OrderUsecase) Create(ctx context.Context, items []orderdom.Line, customer orderdom.CustomerInfo, notes string, method orderdom.PaymentMethod) (orderdom.Order, error) {
	switch method {
	case orderdom.PaymentWhatsApp, orderdom.PaymentEfectivo:
	default:
		return orderdom.Order{}, fmt.Errorf("%w: paymentMethod %q", ErrOrderInvalidArgument, method)
	}

	o, err := orderdom.New(items, customer, notes)
	if err != nil {
		return orderdom.Order{}, err
	}
	o.Status = orderdom.StatusPendiente
	o.PaymentMethod = method
	o.IdempotencyKey = uuid.NewString()

	created, err := uc.repo.Create(ctx, o)
	if err != nil {
		return orderdom.Order{}, err
	}
	log.Printf("[order] created: id=%s method=%s total=%.2f", created.ID, method, created.TotalPrice)
	return created, nil
}

// CreateWithPagoMovil persists a bank-transfer order together with its payment
// claim in a single write. The converted amount and exchange rate are
// snapshotted at submission time.
func (uc *OrderUsecase) CreateWithPagoMovil(ctx context.Context, items []orderdom.Line, customer orderdom.CustomerInfo, notes string, report orderdom.PagoMovilReport) (orderdom.Order, error) {
	if err := report.Validate(); err != nil {
		return orderdom.Order{}, err
	}

	o, err := orderdom.New(items, customer, notes)
	if err != nil {
		return orderdom.Order{}, err
	}
	if err := o.ValidateTotal(); err != nil {
		return orderdom.Order{}, err
	}

	quote := uc.rates.Current(ctx)
	report.MontoBs = quote.ConvertToBs(o.TotalPrice)
	report.TasaCambio = quote.Rate
	report.BancoDestino = uc.destino.Banco
	report.TelefonoDestino = uc.destino.Telefono
	report.CedulaDestino = uc.destino.Cedula

	o.Status = orderdom.StatusPendingVerification
	o.PaymentMethod = orderdom.PaymentPagoMovil
	o.PagoMovil = &report
	o.PaidAmount = report.MontoBs
	o.IdempotencyKey = uuid.NewString()

	created, err := uc.repo.Create(ctx, o)
	if err != nil {
		return orderdom.Order{}, err
	}
	log.Printf("[order] created: id=%s method=pago_movil total=%.2f montoBs=%.2f", created.ID, created.TotalPrice, report.MontoBs)
	return created, nil
}

// PaymentInstructions is the transfer sheet shown when the customer picks
// Pago Móvil: the store account plus the converted amount at today's rate.
// Informational only; the binding snapshot happens at submit.
type PaymentInstructions struct {
	Banco       string  `json:"banco"`
	Telefono    string  `json:"telefono"`
	Cedula      string  `json:"cedula"`
	MontoUSD    float64 `json:"montoUsd"`
	MontoBs     float64 `json:"montoBs"`
	MontoBsText string  `json:"montoBsText"`
	Tasa        float64 `json:"tasa"`
}

func (uc *OrderUsecase) PaymentInstructions(ctx context.Context, totalUSD float64) PaymentInstructions {
	q := uc.rates.Current(ctx)
	return PaymentInstructions{
		Banco:       uc.destino.Banco,
		Telefono:    uc.destino.Telefono,
		Cedula:      uc.destino.Cedula,
		MontoUSD:    totalUSD,
		MontoBs:     q.ConvertToBs(totalUSD),
		MontoBsText: q.FormatBs(totalUSD),
		Tasa:        q.Rate,
	}
}

// GetByID loads one order.
func (uc *OrderUsecase) GetByID(ctx context.Context, id string) (orderdom.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return orderdom.Order{}, fmt.Errorf("%w: id", ErrOrderInvalidArgument)
	}
	return uc.repo.GetByID(ctx, id)
}

// ListPendingVerification returns the verification queue, newest first.
func (uc *OrderUsecase) ListPendingVerification(ctx context.Context) ([]orderdom.Order, error) {
	return uc.repo.ListPendingVerification(ctx)
}

// Approve marks a payment as verified, stamps verifiedAt, and notifies the
// customer by mail on a best-effort basis.
func (uc *OrderUsecase) Approve(ctx context.Context, id string) (orderdom.Order, error) {
	o, err := uc.GetByID(ctx, id)
	if err != nil {
		return orderdom.Order{}, err
	}
	if err := uc.checkTransition(o.Status, orderdom.StatusPaid); err != nil {
		return orderdom.Order{}, err
	}

	patch := orderdom.StatusPatch{Status: orderdom.StatusPaid, VerifiedAt: true}
	if err := uc.repo.UpdateStatus(ctx, o.ID, patch); err != nil {
		return orderdom.Order{}, err
	}

	updated, err := uc.repo.GetByID(ctx, o.ID)
	if err != nil {
		return orderdom.Order{}, err
	}

	if uc.mailer != nil {
		if err := uc.mailer.PaymentVerified(ctx, updated); err != nil {
			log.Printf("[order] confirmation mail failed: id=%s err=%v", updated.ID, err)
		}
	}

	log.Printf("[order] approved: id=%s", updated.ID)
	return updated, nil
}

// Reject marks a payment claim as rejected. An empty reason falls back to the
// stock "payment not found" message.
func (uc *OrderUsecase) Reject(ctx context.Context, id, reason string) (orderdom.Order, error) {
	o, err := uc.GetByID(ctx, id)
	if err != nil {
		return orderdom.Order{}, err
	}
	if err := uc.checkTransition(o.Status, orderdom.StatusRejected); err != nil {
		return orderdom.Order{}, err
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = orderdom.DefaultRejectionReason
	}

	patch := orderdom.StatusPatch{Status: orderdom.StatusRejected, RejectionReason: &reason}
	if err := uc.repo.UpdateStatus(ctx, o.ID, patch); err != nil {
		return orderdom.Order{}, err
	}

	log.Printf("[order] rejected: id=%s reason=%q", o.ID, reason)
	return uc.repo.GetByID(ctx, o.ID)
}

// UpdateStatus applies an arbitrary status change from the management panel,
// subject to the transition table when strict mode is on.
func (uc *OrderUsecase) UpdateStatus(ctx context.Context, id string, to orderdom.Status) (orderdom.Order, error) {
	if !to.Valid() {
		return orderdom.Order{}, fmt.Errorf("%w: status %q", ErrOrderInvalidArgument, to)
	}
	o, err := uc.GetByID(ctx, id)
	if err != nil {
		return orderdom.Order{}, err
	}
	if err := uc.checkTransition(o.Status, to); err != nil {
		return orderdom.Order{}, err
	}

	patch := orderdom.StatusPatch{Status: to, VerifiedAt: to == orderdom.StatusPaid}
	if err := uc.repo.UpdateStatus(ctx, o.ID, patch); err != nil {
		return orderdom.Order{}, err
	}
	return uc.repo.GetByID(ctx, o.ID)
}

func (uc *OrderUsecase) checkTransition(from, to orderdom.Status) error {
	if !uc.strict {
		return nil
	}
	if !orderdom.CanTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", ErrOrderInvalidTransition, from, to)
	}
	return nil
}
