package request

import (
	"encoding/json"
	"testing"

	"nct_portal/internal/domain/pricing"
)

func TestPricingFields_ResolvePricingInput(t *testing.T) {
	t.Run("empty payload gets the documented defaults", func(t *testing.T) {
		var f PricingFields
		in := f.ResolvePricingInput()

		if in.Pages != 1 || in.Words != 0 || in.NumDocs != 1 {
			t.Fatalf("unexpected defaults: %+v", in)
		}
		if in.Certification || in.RushTranslation {
			t.Fatalf("expected flags off by default: %+v", in)
		}
		if in.DeliveryMethod != pricing.DeliveryPickup {
			t.Fatalf("expected pickup, got %q", in.DeliveryMethod)
		}
		if in.Insurance != "" || in.InsuranceCount != 0 {
			t.Fatalf("expected no insurance, got %+v", in)
		}
	})

	t.Run("explicit zero pages survives", func(t *testing.T) {
		var f PricingFields
		if err := json.Unmarshal([]byte(`{"pages":0,"words":1200}`), &f); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		in := f.ResolvePricingInput()

		if in.Pages != 0 {
			t.Fatalf("expected explicit zero pages, got %d", in.Pages)
		}
		if in.Words != 1200 {
			t.Fatalf("expected words 1200, got %d", in.Words)
		}
	})

	t.Run("insurance implies one covered document", func(t *testing.T) {
		f := PricingFields{Insurance: "45days"}
		in := f.ResolvePricingInput()

		if in.Insurance != pricing.InsuranceTier("45days") || in.InsuranceCount != 1 {
			t.Fatalf("expected implied insurance count, got %+v", in)
		}
	})

	t.Run("insurance none is dropped entirely", func(t *testing.T) {
		two := 2
		f := PricingFields{Insurance: "none", InsuranceCount: &two}
		in := f.ResolvePricingInput()

		if in.Insurance != "" || in.InsuranceCount != 0 {
			t.Fatalf("expected insurance cleared, got %+v", in)
		}
	})
}

func TestCreateOrderRequest_ResolveCommand(t *testing.T) {
	t.Run("trims customer name and payment method", func(t *testing.T) {
		r := CreateOrderRequest{
			PricingFields: PricingFields{ServiceType: "full-service"},
			CustomerName:  "  Ali  ",
			PaymentMethod: " cash ",
		}
		cmd := r.ResolveCommand()

		if cmd.CustomerName != "Ali" || cmd.PaymentMethod != "cash" {
			t.Fatalf("expected trimmed fields, got %+v", cmd)
		}
		if cmd.ServiceType != "full-service" || cmd.Pages != 1 {
			t.Fatalf("expected resolved pricing fields, got %+v", cmd)
		}
	})
}
