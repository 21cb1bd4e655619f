// internal/domain/order/status.go
package order

// Status is the order lifecycle state.
//
// "Pendiente" keeps its historical capitalized spelling: existing documents
// in the orders collection carry it verbatim and the management panel matches
// on the exact string.
type Status string

const (
	// StatusPendiente: order created via the messaging handoff path, no
	// payment claim filed yet.
	StatusPendiente Status = "Pendiente"

	// StatusPendingVerification: a pago móvil report was filed and a human
	// is checking funds were received.
	StatusPendingVerification Status = "pending_verification"

	// Terminal verification outcomes.
	StatusPaid     Status = "paid"
	StatusRejected Status = "rejected"

	// Downstream fulfillment states. Present in the type model but set by
	// external fulfillment tooling, never produced by this subsystem.
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPendiente, StatusPendingVerification, StatusPaid, StatusRejected,
		StatusProcessing, StatusShipped, StatusDelivered:
		return true
	}
	return false
}

// transitions is the verification-flow transition table. Fulfillment moves
// (paid → processing → shipped → delivered) belong to external tooling and
// are listed so strict mode does not strand them.
var transitions = map[Status][]Status{
	StatusPendiente:           {StatusPendingVerification, StatusPaid, StatusRejected},
	StatusPendingVerification: {StatusPaid, StatusRejected},
	StatusPaid:                {StatusProcessing, StatusShipped, StatusDelivered},
	StatusProcessing:          {StatusShipped, StatusDelivered},
	StatusShipped:             {StatusDelivered},
}

// CanTransition reports whether from → to is a legal move per the table.
// Callers running in permissive mode skip this check entirely (last write
// wins, matching the historical behavior).
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
