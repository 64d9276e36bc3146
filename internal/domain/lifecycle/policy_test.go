package lifecycle

import (
	"errors"
	"testing"

	"nct_portal/internal/domain/entities"
)

var customer = Actor{Phone: "+9647701234567"}
var admin = Actor{Phone: "+9647709999999", IsAdmin: true}

func TestAuthorizeCancel(t *testing.T) {
	t.Run("customer may cancel a new ticket", func(t *testing.T) {
		if err := AuthorizeCancel(entities.StatusNewTicket, customer); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("customer cannot cancel past new ticket", func(t *testing.T) {
		for _, st := range []entities.OrderStatus{
			entities.StatusTranslation,
			entities.StatusDeliveryAndPayment,
			entities.StatusAfterSaleService,
		} {
			err := AuthorizeCancel(st, customer)
			if !errors.Is(err, ErrNotCancellable) {
				t.Fatalf("status %s: expected ErrNotCancellable, got %v", st, err)
			}
		}
	})

	t.Run("nobody cancels a terminal order", func(t *testing.T) {
		for _, st := range []entities.OrderStatus{entities.StatusArchive, entities.StatusLost} {
			if err := AuthorizeCancel(st, admin); !errors.Is(err, ErrTerminalStatus) {
				t.Fatalf("status %s: expected ErrTerminalStatus, got %v", st, err)
			}
		}
	})

	t.Run("admin may cancel mid-pipeline", func(t *testing.T) {
		if err := AuthorizeCancel(entities.StatusTranslation, admin); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestAuthorize(t *testing.T) {
	t.Run("unknown target is rejected outright", func(t *testing.T) {
		err := Authorize(entities.StatusNewTicket, "Bogus", admin)
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("admin may set any valid status", func(t *testing.T) {
		for _, target := range append(entities.StatusOrder, entities.StatusLost) {
			if err := Authorize(entities.StatusTranslation, target, admin); err != nil {
				t.Fatalf("target %s: unexpected error %v", target, err)
			}
		}
	})

	t.Run("customer may not set workflow statuses", func(t *testing.T) {
		err := Authorize(entities.StatusNewTicket, entities.StatusTranslation, customer)
		if !errors.Is(err, ErrAdminOnlyChange) {
			t.Fatalf("expected ErrAdminOnlyChange, got %v", err)
		}
	})

	t.Run("customer cancel is routed through the cancel rule", func(t *testing.T) {
		if err := Authorize(entities.StatusNewTicket, entities.StatusLost, customer); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		err := Authorize(entities.StatusTranslation, entities.StatusLost, customer)
		if !errors.Is(err, ErrNotCancellable) {
			t.Fatalf("expected ErrNotCancellable, got %v", err)
		}
	})

	t.Run("terminal orders accept no transitions", func(t *testing.T) {
		err := Authorize(entities.StatusArchive, entities.StatusTranslation, admin)
		if !errors.Is(err, ErrTerminalStatus) {
			t.Fatalf("expected ErrTerminalStatus, got %v", err)
		}
	})
}

func TestTimeline(t *testing.T) {
	t.Run("counts are exact for every pipeline position", func(t *testing.T) {
		for i, st := range entities.StatusOrder {
			steps := Timeline(st)
			var completed, current, pending int
			for _, s := range steps {
				if s.Completed {
					completed++
				}
				if s.Current {
					current++
				}
				if s.Pending {
					pending++
				}
			}
			if completed != i {
				t.Fatalf("status %s: expected %d completed, got %d", st, i, completed)
			}
			if current != 1 {
				t.Fatalf("status %s: expected exactly one current, got %d", st, current)
			}
			if pending != len(entities.StatusOrder)-i-1 {
				t.Fatalf("status %s: expected %d pending, got %d", st, len(entities.StatusOrder)-i-1, pending)
			}
		}
	})

	t.Run("lost reports every stage indeterminate", func(t *testing.T) {
		for _, s := range Timeline(entities.StatusLost) {
			if s.Completed || s.Current || s.Pending {
				t.Fatalf("stage %s should be indeterminate for a lost order: %+v", s.Status, s)
			}
		}
	})

	t.Run("stages carry localized names", func(t *testing.T) {
		for _, s := range Timeline(entities.StatusNewTicket) {
			if s.StatusAr == "" {
				t.Fatalf("stage %s has no Arabic name", s.Status)
			}
		}
	})
}
