package checkout

import (
	"context"
	"errors"
	"testing"

	"babyheaven-storefront/internal/cart"
	"babyheaven-storefront/internal/domain"
)

func testFlow(t *testing.T) (*Flow, *cart.Store) {
	t.Helper()
	store := cart.New(context.Background(), cart.NewMemoryStorage(), nil)
	return NewFlow(store), store
}

func addLine(t *testing.T, store *cart.Store, productID string, price float64, qty int) {
	t.Helper()
	err := store.AddItem(context.Background(), domain.CartLine{
		ProductID: productID,
		Name:      "Pijama de bebé",
		UnitPrice: price,
		MaxStock:  10,
	}, qty)
	if err != nil {
		t.Fatalf("add line: %v", err)
	}
}

func fillDraft(t *testing.T, store *cart.Store) {
	t.Helper()
	ctx := context.Background()
	name, phone := "Maria", "99887766"
	state, city, addr := "Atlántida", "La Ceiba", "Barrio El Centro"
	pm := domain.PaymentCash
	store.UpdateDraft(ctx, cart.DraftPatch{Name: &name, Phone: &phone, State: &state})
	store.UpdateDraft(ctx, cart.DraftPatch{City: &city})
	store.UpdateDraft(ctx, cart.DraftPatch{Address: &addr, PaymentMethod: &pm})
}

func TestFlowStartsReviewing(t *testing.T) {
	flow, _ := testFlow(t)
	if flow.Step() != StepReviewing {
		t.Fatalf("expected initial step %q, got %q", StepReviewing, flow.Step())
	}
}

func TestToDetailsRequiresNonEmptyCart(t *testing.T) {
	flow, store := testFlow(t)
	if err := flow.ToDetails(); !errors.Is(err, domain.ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}

	addLine(t, store, "p1", 150, 1)
	if err := flow.ToDetails(); err != nil {
		t.Fatalf("to details: %v", err)
	}
	if flow.Step() != StepDetails {
		t.Fatalf("expected details step, got %q", flow.Step())
	}
}

func TestReopenResetsToReviewing(t *testing.T) {
	flow, store := testFlow(t)
	addLine(t, store, "p1", 150, 1)
	if err := flow.ToDetails(); err != nil {
		t.Fatalf("to details: %v", err)
	}

	flow.Open()
	if flow.Step() != StepReviewing {
		t.Fatal("reopening must reset to the review step")
	}
}

func TestDeliveryFeeFallsBackWithoutCoords(t *testing.T) {
	flow, store := testFlow(t)
	if got := flow.DeliveryFee(); got != 105 {
		t.Fatalf("expected outside-zone fallback 105, got %v", got)
	}

	store.SetDeliveryLocation(context.Background(), "addr", domain.Coordinates{Lat: 15.76, Lng: -86.80})
	if got := flow.DeliveryFee(); got != 0 {
		t.Fatalf("expected free in-zone delivery, got %v", got)
	}
}

func TestCloseWipesCoordsAndQuote(t *testing.T) {
	flow, store := testFlow(t)
	store.SetDeliveryLocation(context.Background(), "addr", domain.Coordinates{Lat: 15.76, Lng: -86.80})
	flow.Close(context.Background())

	if got := flow.DeliveryFee(); got != 105 {
		t.Fatalf("expected fallback fee after close, got %v", got)
	}
}

func TestSubmitOnlyFromDetails(t *testing.T) {
	flow, store := testFlow(t)
	addLine(t, store, "p1", 150, 1)
	fillDraft(t, store)

	if _, err := flow.Submit(domain.SiteSettings{Phone: "99112233"}); err == nil {
		t.Fatal("submitting from the review step must fail")
	}
}

func TestSubmitRejectsCartEmptiedAfterDetails(t *testing.T) {
	flow, store := testFlow(t)
	addLine(t, store, "p1", 150, 1)
	fillDraft(t, store)
	if err := flow.ToDetails(); err != nil {
		t.Fatalf("to details: %v", err)
	}

	store.Clear(context.Background())

	if _, err := flow.Submit(domain.SiteSettings{Phone: "99112233"}); !errors.Is(err, domain.ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestSubmitCollectsAllFieldErrors(t *testing.T) {
	flow, store := testFlow(t)
	addLine(t, store, "p1", 150, 1)
	if err := flow.ToDetails(); err != nil {
		t.Fatalf("to details: %v", err)
	}

	_, err := flow.Submit(domain.SiteSettings{Phone: "99112233"})
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	for _, field := range []string{"name", "phone", "state", "city", "address", "paymentMethod"} {
		if _, ok := verr.Fields[field]; !ok {
			t.Fatalf("expected %q in the batch, got %v", field, verr.Fields)
		}
	}
}

func TestSubmitTransferRequiresReceipt(t *testing.T) {
	flow, store := testFlow(t)
	addLine(t, store, "p1", 150, 1)
	fillDraft(t, store)
	pm := domain.PaymentTransfer
	bank := "Banco Atlántida"
	store.UpdateDraft(context.Background(), cart.DraftPatch{PaymentMethod: &pm, SelectedBank: &bank})
	if err := flow.ToDetails(); err != nil {
		t.Fatalf("to details: %v", err)
	}

	_, err := flow.Submit(domain.SiteSettings{Phone: "99112233"})
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, ok := verr.Fields["transferImage"]; !ok {
		t.Fatalf("expected receipt requirement, got %v", verr.Fields)
	}

	receipt := "https://blob.example.com/receipts/r1.jpg"
	store.UpdateDraft(context.Background(), cart.DraftPatch{ReceiptURL: &receipt})
	if _, err := flow.Submit(domain.SiteSettings{Phone: "99112233"}); err != nil {
		t.Fatalf("submit with receipt: %v", err)
	}
}

func TestSubmitBuildsDispatchLink(t *testing.T) {
	flow, store := testFlow(t)
	addLine(t, store, "p1", 150, 2)
	fillDraft(t, store)
	if err := flow.ToDetails(); err != nil {
		t.Fatalf("to details: %v", err)
	}

	link, err := flow.Submit(domain.SiteSettings{Phone: "9911-2233"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	const prefix = "https://wa.me/50499112233?text="
	if len(link) < len(prefix) || link[:len(prefix)] != prefix {
		t.Fatalf("unexpected dispatch link %q", link)
	}
}
