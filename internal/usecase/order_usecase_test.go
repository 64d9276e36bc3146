package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"nct_portal/internal/domain/entities"
	"nct_portal/internal/domain/lifecycle"
	"nct_portal/internal/domain/pricing"
	"nct_portal/internal/usecase/interfaces"
	mock_interfaces "nct_portal/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var (
	customerActor = lifecycle.Actor{Phone: "+9647700000001"}
	adminActor    = lifecycle.Actor{Phone: "+9647700009999", IsAdmin: true}
)

func newOrderUC(t *testing.T, strict bool) (*OrderUseCase, *mock_interfaces.MockIOrderRepository, *mock_interfaces.MockIDriveService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIOrderRepository(ctrl)
	drive := mock_interfaces.NewMockIDriveService(ctrl)
	uc := NewOrderUseCase(repo, drive, pricing.NewEngine(pricing.DefaultRates()), strict, zap.NewNop())
	return uc, repo, drive
}

func TestOrderUseCase_Create(t *testing.T) {
	t.Run("service type required", func(t *testing.T) {
		uc, _, _ := newOrderUC(t, false)
		_, _, err := uc.Create(context.Background(), customerActor, CreateOrderCommand{ServiceType: "  "})
		if !errors.Is(err, ErrServiceTypeRequired) {
			t.Fatalf("expected ErrServiceTypeRequired, got %v", err)
		}
	})

	t.Run("strict mode rejects unknown service type", func(t *testing.T) {
		uc, _, _ := newOrderUC(t, true)
		_, _, err := uc.Create(context.Background(), customerActor, CreateOrderCommand{ServiceType: "premium", Pages: 1})
		if !errors.Is(err, ErrInvalidPricingInput) {
			t.Fatalf("expected ErrInvalidPricingInput, got %v", err)
		}
	})

	t.Run("success persists quoted order and provisions folders", func(t *testing.T) {
		uc, repo, drive := newOrderUC(t, false)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.ID == "" {
					t.Fatalf("expected generated id")
				}
				if o.Status != entities.StatusNewTicket || o.PaymentStatus != entities.PaymentNotPaid {
					t.Fatalf("unexpected initial state: %s / %s", o.Status, o.PaymentStatus)
				}
				// 3 pages full service + certification for one doc.
				if o.FinalQuotation != 50000 {
					t.Fatalf("expected quotation 50000, got %d", o.FinalQuotation)
				}
				if o.Channel != "App" || o.Phone != customerActor.Phone {
					t.Fatalf("unexpected order: %+v", o)
				}
				if len(o.Languages) != 1 || o.Languages[0] != entities.DefaultLanguagePair {
					t.Fatalf("expected default language pair, got %v", o.Languages)
				}
				if o.ServiceType != "full-service" || o.DeliveryMethod != "Pickup" {
					t.Fatalf("unexpected pricing attributes: %+v", o)
				}
				return o, nil
			},
		)
		drive.EXPECT().CreateCustomerFolders(gomock.Any(), "Ali", gomock.Any()).
			Return(entities.CustomerFolders{Order: entities.DriveFolder{ID: "f1", URL: "https://drive/f1"}}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.AssignableToTypeOf(interfaces.OrderUpdate{})).DoAndReturn(
			func(_ context.Context, _ string, upd interfaces.OrderUpdate) (entities.Order, error) {
				if upd.Notes == nil || !strings.Contains(*upd.Notes, "https://drive/f1") {
					t.Fatalf("expected folder link note, got %+v", upd)
				}
				return entities.Order{ID: "any"}, nil
			},
		)

		order, quote, err := uc.Create(context.Background(), customerActor, CreateOrderCommand{
			CustomerName:  "Ali",
			ServiceType:   "full-service",
			Pages:         3,
			Certification: true,
			NumDocs:       1,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if quote.Total != 50000 || order.FinalQuotation != 50000 {
			t.Fatalf("expected 50000, got quote %d order %d", quote.Total, order.FinalQuotation)
		}
	})

	t.Run("drive failure does not fail creation", func(t *testing.T) {
		uc, repo, drive := newOrderUC(t, false)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) { return o, nil },
		)
		drive.EXPECT().CreateCustomerFolders(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.CustomerFolders{}, errors.New("drive down"))

		_, _, err := uc.Create(context.Background(), customerActor, CreateOrderCommand{ServiceType: "self-translation", Pages: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestOrderUseCase_GetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, repo, _ := newOrderUC(t, false)
		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Order{}, nil)

		_, err := uc.GetByID(context.Background(), customerActor, "missing")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("other customer's order is hidden", func(t *testing.T) {
		uc, repo, _ := newOrderUC(t, false)
		repo.EXPECT().GetByID(gomock.Any(), "o-1").
			Return(entities.Order{ID: "o-1", Phone: "+9647700000002"}, nil)

		_, err := uc.GetByID(context.Background(), customerActor, "o-1")
		if !errors.Is(err, ErrAccessDenied) {
			t.Fatalf("expected ErrAccessDenied, got %v", err)
		}
	})

	t.Run("admin sees any order", func(t *testing.T) {
		uc, repo, _ := newOrderUC(t, false)
		repo.EXPECT().GetByID(gomock.Any(), "o-1").
			Return(entities.Order{ID: "o-1", Phone: "+9647700000002"}, nil)

		order, err := uc.GetByID(context.Background(), adminActor, "o-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.ID != "o-1" {
			t.Fatalf("unexpected order: %+v", order)
		}
	})
}

func TestOrderUseCase_Update(t *testing.T) {
	t.Run("customer payload is filtered to notes and payment method", func(t *testing.T) {
		uc, repo, _ := newOrderUC(t, false)
		repo.EXPECT().GetByID(gomock.Any(), "o-1").
			Return(entities.Order{ID: "o-1", Phone: customerActor.Phone, Status: entities.StatusNewTicket}, nil)

		status := string(entities.StatusArchive)
		quotation := int64(1)
		notes := "please hurry"
		method := "ZainCash"

		repo.EXPECT().Update(gomock.Any(), "o-1", gomock.AssignableToTypeOf(interfaces.OrderUpdate{})).DoAndReturn(
			func(_ context.Context, _ string, upd interfaces.OrderUpdate) (entities.Order, error) {
				if upd.Status != nil || upd.PaymentStatus != nil || upd.FinalQuotation != nil {
					t.Fatalf("privileged fields leaked through: %+v", upd)
				}
				if upd.Notes == nil || *upd.Notes != notes {
					t.Fatalf("expected notes update, got %+v", upd)
				}
				if upd.PaymentMethod == nil || *upd.PaymentMethod != method {
					t.Fatalf("expected payment method update, got %+v", upd)
				}
				return entities.Order{ID: "o-1", Notes: notes, PaymentMethod: method}, nil
			},
		)

		_, err := uc.Update(context.Background(), customerActor, "o-1", UpdateOrderCommand{
			Status:         &status,
			FinalQuotation: &quotation,
			Notes:          &notes,
			PaymentMethod:  &method,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("customer-only payload with privileged fields is a no-op", func(t *testing.T) {
		uc, repo, _ := newOrderUC(t, false)
		order := entities.Order{ID: "o-1", Phone: customerActor.Phone, Status: entities.StatusNewTicket}
		repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(order, nil)

		quotation := int64(999999)
		got, err := uc.Update(context.Background(), customerActor, "o-1", UpdateOrderCommand{FinalQuotation: &quotation})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.FinalQuotation != 0 {
			t.Fatalf("quotation must not change, got %d", got.FinalQuotation)
		}
	})

	t.Run("admin status change goes through lifecycle policy", func(t *testing.T) {
		uc, repo, _ := newOrderUC(t, false)
		repo.EXPECT().GetByID(gomock.Any(), "o-1").
			Return(entities.Order{ID: "o-1", Phone: "+9647700000002", Status: entities.StatusArchive}, nil)

		status := string(entities.StatusTranslation)
		_, err := uc.Update(context.Background(), adminActor, "o-1", UpdateOrderCommand{Status: &status})
		if !errors.Is(err, lifecycle.ErrTerminalStatus) {
			t.Fatalf("expected ErrTerminalStatus, got %v", err)
		}
	})

	t.Run("unknown status value rejected", func(t *testing.T) {
		uc, repo, _ := newOrderUC(t, false)
		repo.EXPECT().GetByID(gomock.Any(), "o-1").
			Return(entities.Order{ID: "o-1", Phone: "+9647700000002", Status: entities.StatusNewTicket}, nil)

		status := "Completed"
		_, err := uc.Update(context.Background(), adminActor, "o-1", UpdateOrderCommand{Status: &status})
		if !errors.Is(err, ErrInvalidStatusValue) {
			t.Fatalf("expected ErrInvalidStatusValue, got %v", err)
		}
	})
}

func TestOrderUseCase_SetStatus(t *testing.T) {
	t.Run("customer cannot advance the pipeline", func(t *testing.T) {
		uc, repo, _ := newOrderUC(t, false)
		repo.EXPECT().GetByID(gomock.Any(), "o-1").
			Return(entities.Order{ID: "o-1", Phone: customerActor.Phone, Status: entities.StatusNewTicket}, nil)

		_, err := uc.SetStatus(context.Background(), customerActor, "o-1", string(entities.StatusTranslation))
		if !errors.Is(err, lifecycle.ErrAdminOnlyChange) {
			t.Fatalf("expected ErrAdminOnlyChange, got %v", err)
		}
	})

	t.Run("admin moves order forward", func(t *testing.T) {
		uc, repo, _ := newOrderUC(t, false)
		repo.EXPECT().GetByID(gomock.Any(), "o-1").
			Return(entities.Order{ID: "o-1", Phone: "+9647700000002", Status: entities.StatusNewTicket}, nil)
		repo.EXPECT().Update(gomock.Any(), "o-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, upd interfaces.OrderUpdate) (entities.Order, error) {
				if upd.Status == nil || *upd.Status != entities.StatusTranslation {
					t.Fatalf("unexpected update: %+v", upd)
				}
				return entities.Order{ID: "o-1", Status: *upd.Status}, nil
			},
		)

		order, err := uc.SetStatus(context.Background(), adminActor, "o-1", string(entities.StatusTranslation))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.Status != entities.StatusTranslation {
			t.Fatalf("unexpected status: %s", order.Status)
		}
	})
}

func TestOrderUseCase_Cancel(t *testing.T) {
	t.Run("customer cancels a new ticket", func(t *testing.T) {
		uc, repo, _ := newOrderUC(t, false)
		repo.EXPECT().GetByID(gomock.Any(), "o-1").
			Return(entities.Order{ID: "o-1", Phone: customerActor.Phone, Status: entities.StatusNewTicket, Notes: "n"}, nil)
		repo.EXPECT().Update(gomock.Any(), "o-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, upd interfaces.OrderUpdate) (entities.Order, error) {
				if upd.Status == nil || *upd.Status != entities.StatusLost {
					t.Fatalf("expected Lost, got %+v", upd)
				}
				if upd.Notes == nil || !strings.Contains(*upd.Notes, "Cancelled: changed my mind") {
					t.Fatalf("expected cancel note, got %+v", upd)
				}
				return entities.Order{ID: "o-1", Status: entities.StatusLost}, nil
			},
		)

		_, err := uc.Cancel(context.Background(), customerActor, "o-1", "changed my mind")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("customer cannot cancel once translation started", func(t *testing.T) {
		uc, repo, _ := newOrderUC(t, false)
		repo.EXPECT().GetByID(gomock.Any(), "o-1").
			Return(entities.Order{ID: "o-1", Phone: customerActor.Phone, Status: entities.StatusTranslation}, nil)

		_, err := uc.Cancel(context.Background(), customerActor, "o-1", "")
		if !errors.Is(err, lifecycle.ErrNotCancellable) {
			t.Fatalf("expected ErrNotCancellable, got %v", err)
		}
	})

	t.Run("missing reason gets the default note", func(t *testing.T) {
		uc, repo, _ := newOrderUC(t, false)
		repo.EXPECT().GetByID(gomock.Any(), "o-1").
			Return(entities.Order{ID: "o-1", Phone: "+9647700000002", Status: entities.StatusTranslation}, nil)
		repo.EXPECT().Update(gomock.Any(), "o-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, upd interfaces.OrderUpdate) (entities.Order, error) {
				if upd.Notes == nil || !strings.Contains(*upd.Notes, "Cancelled: No reason provided") {
					t.Fatalf("expected default cancel note, got %+v", upd)
				}
				return entities.Order{ID: "o-1", Status: entities.StatusLost}, nil
			},
		)

		_, err := uc.Cancel(context.Background(), adminActor, "o-1", "  ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestOrderUseCase_SetPayment(t *testing.T) {
	t.Run("admin only", func(t *testing.T) {
		uc, _, _ := newOrderUC(t, false)
		_, err := uc.SetPayment(context.Background(), customerActor, "o-1", string(entities.PaymentFullyPaid), "")
		if !errors.Is(err, ErrAccessDenied) {
			t.Fatalf("expected ErrAccessDenied, got %v", err)
		}
	})

	t.Run("payment does not touch workflow status", func(t *testing.T) {
		uc, repo, _ := newOrderUC(t, false)
		repo.EXPECT().Update(gomock.Any(), "o-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, upd interfaces.OrderUpdate) (entities.Order, error) {
				if upd.Status != nil {
					t.Fatalf("payment update must not carry status: %+v", upd)
				}
				if upd.PaymentStatus == nil || *upd.PaymentStatus != entities.PaymentPartiallyPaid {
					t.Fatalf("unexpected update: %+v", upd)
				}
				return entities.Order{ID: "o-1", Status: entities.StatusTranslation, PaymentStatus: *upd.PaymentStatus}, nil
			},
		)

		order, err := uc.SetPayment(context.Background(), adminActor, "o-1", string(entities.PaymentPartiallyPaid), "QiCard")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.Status != entities.StatusTranslation {
			t.Fatalf("workflow status changed: %s", order.Status)
		}
	})

	t.Run("unknown payment status rejected", func(t *testing.T) {
		uc, _, _ := newOrderUC(t, false)
		_, err := uc.SetPayment(context.Background(), adminActor, "o-1", "Paid In Full", "")
		if !errors.Is(err, ErrInvalidPaymentStatus) {
			t.Fatalf("expected ErrInvalidPaymentStatus, got %v", err)
		}
	})
}

func TestOrderUseCase_Timeline(t *testing.T) {
	uc, repo, _ := newOrderUC(t, false)
	repo.EXPECT().GetByID(gomock.Any(), "o-1").
		Return(entities.Order{ID: "o-1", Phone: customerActor.Phone, Status: entities.StatusDeliveryAndPayment, PaymentStatus: entities.PaymentPartiallyPaid}, nil)

	view, err := uc.Timeline(context.Background(), customerActor, "o-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Lost {
		t.Fatalf("order is not lost")
	}
	if len(view.Timeline) != len(entities.StatusOrder) {
		t.Fatalf("expected %d steps, got %d", len(entities.StatusOrder), len(view.Timeline))
	}
	if !view.Timeline[0].Completed || !view.Timeline[2].Current {
		t.Fatalf("unexpected timeline: %+v", view.Timeline)
	}
}

func TestOrderUseCase_Requote(t *testing.T) {
	t.Run("admin only", func(t *testing.T) {
		uc, _, _ := newOrderUC(t, false)
		_, _, err := uc.Requote(context.Background(), customerActor, "o-1")
		if !errors.Is(err, ErrAccessDenied) {
			t.Fatalf("expected ErrAccessDenied, got %v", err)
		}
	})

	t.Run("recomputes from stored attributes", func(t *testing.T) {
		uc, repo, _ := newOrderUC(t, false)
		repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Order{
			ID:              "o-1",
			Phone:           "+9647700000002",
			ServiceType:     "full-service",
			Pages:           2,
			RushTranslation: true,
			DeliveryMethod:  "Pickup",
			FinalQuotation:  1,
		}, nil)
		repo.EXPECT().Update(gomock.Any(), "o-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, upd interfaces.OrderUpdate) (entities.Order, error) {
				// 2 pages at 15000 plus 50% rush on the service line.
				if upd.FinalQuotation == nil || *upd.FinalQuotation != 45000 {
					t.Fatalf("unexpected quotation update: %+v", upd)
				}
				return entities.Order{ID: "o-1", FinalQuotation: *upd.FinalQuotation}, nil
			},
		)

		order, quote, err := uc.Requote(context.Background(), adminActor, "o-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if quote.Total != 45000 || order.FinalQuotation != 45000 {
			t.Fatalf("expected 45000, got quote %d order %d", quote.Total, order.FinalQuotation)
		}
	})
}

func TestOrderUseCase_ListByActor(t *testing.T) {
	uc, repo, _ := newOrderUC(t, false)
	repo.EXPECT().GetByPhone(gomock.Any(), customerActor.Phone).Return([]entities.Order{
		{ID: "a", Status: entities.StatusNewTicket},
		{ID: "b", Status: entities.StatusTranslation},
		{ID: "c", Status: entities.StatusNewTicket},
	}, nil)

	orders, total, err := uc.ListByActor(context.Background(), customerActor, string(entities.StatusNewTicket), 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected total 2, got %d", total)
	}
	if len(orders) != 1 || orders[0].ID != "a" {
		t.Fatalf("unexpected page: %+v", orders)
	}
}

func TestOrderUseCase_MarkPaidFromProvider(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, repo, _ := newOrderUC(t, false)
		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Order{}, nil)

		_, err := uc.MarkPaidFromProvider(context.Background(), "missing", "ZainCash", "tx-1", 50000)
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("records payment and audit note", func(t *testing.T) {
		uc, repo, _ := newOrderUC(t, false)
		repo.EXPECT().GetByID(gomock.Any(), "o-1").
			Return(entities.Order{ID: "o-1", Notes: "n"}, nil)
		repo.EXPECT().Update(gomock.Any(), "o-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, upd interfaces.OrderUpdate) (entities.Order, error) {
				if upd.PaymentStatus == nil || *upd.PaymentStatus != entities.PaymentFullyPaid {
					t.Fatalf("expected Fully Paid, got %+v", upd)
				}
				if upd.PaymentMethod == nil || *upd.PaymentMethod != "ZainCash" {
					t.Fatalf("expected provider as method, got %+v", upd)
				}
				if upd.Notes == nil || !strings.Contains(*upd.Notes, "tx-1") {
					t.Fatalf("expected transaction note, got %+v", upd)
				}
				return entities.Order{ID: "o-1", PaymentStatus: *upd.PaymentStatus}, nil
			},
		)

		order, err := uc.MarkPaidFromProvider(context.Background(), "o-1", "ZainCash", "tx-1", 50000)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.PaymentStatus != entities.PaymentFullyPaid {
			t.Fatalf("unexpected payment status: %s", order.PaymentStatus)
		}
	})
}
