// Package lifecycle is the order workflow policy: which status transitions
// are allowed for which caller, and how the customer-facing timeline is
// derived. Pure functions over entities; no I/O.
package lifecycle

import (
	"errors"

	"nct_portal/internal/domain/entities"
)

var (
	ErrInvalidStatus   = errors.New("invalid status")
	ErrNotCancellable  = errors.New("order cannot be cancelled at this stage")
	ErrTerminalStatus  = errors.New("order is in a terminal status")
	ErrAdminOnlyChange = errors.New("status changes require admin access")
)

// Actor identifies who is requesting a transition.
type Actor struct {
	Phone   string
	IsAdmin bool
}

// Authorize decides whether the actor may move an order from current to
// target. Admins may set any valid status on a non-terminal order; customers
// may only cancel (target Lost) a ticket that is still New Ticket.
func Authorize(current, target entities.OrderStatus, actor Actor) error {
	if _, ok := entities.ParseOrderStatus(string(target)); !ok {
		return ErrInvalidStatus
	}
	if current.Terminal() {
		return ErrTerminalStatus
	}
	if actor.IsAdmin {
		return nil
	}
	if target != entities.StatusLost {
		return ErrAdminOnlyChange
	}
	return AuthorizeCancel(current, actor)
}

// AuthorizeCancel applies the customer cancellation rule: once a ticket has
// entered Translation or any later stage, only admin can cancel it.
func AuthorizeCancel(current entities.OrderStatus, actor Actor) error {
	if current.Terminal() {
		return ErrTerminalStatus
	}
	if actor.IsAdmin {
		return nil
	}
	if current != entities.StatusNewTicket {
		return ErrNotCancellable
	}
	return nil
}

var statusNamesAr = map[entities.OrderStatus]string{
	entities.StatusNewTicket:          "طلب جديد",
	entities.StatusTranslation:        "قيد الترجمة",
	entities.StatusDeliveryAndPayment: "التسليم والدفع",
	entities.StatusAfterSaleService:   "خدمة ما بعد البيع",
	entities.StatusArchive:            "مؤرشف",
}

// Step is one stage of the derived timeline.
type Step struct {
	Status    entities.OrderStatus `json:"status"`
	StatusAr  string               `json:"statusAr"`
	Completed bool                 `json:"completed"`
	Current   bool                 `json:"current"`
	Pending   bool                 `json:"pending"`
}

// Timeline classifies every pipeline stage relative to the current status.
// Lost has no position in the pipeline: a Lost order reports every stage
// indeterminate (all three flags false) rather than guessing a position.
func Timeline(current entities.OrderStatus) []Step {
	idx := current.Index()
	steps := make([]Step, 0, len(entities.StatusOrder))
	for i, st := range entities.StatusOrder {
		step := Step{Status: st, StatusAr: statusNamesAr[st]}
		if idx >= 0 {
			step.Completed = i < idx
			step.Current = i == idx
			step.Pending = i > idx
		}
		steps = append(steps, step)
	}
	return steps
}
