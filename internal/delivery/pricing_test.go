package delivery

import "testing"

func TestPriceForInsideZone(t *testing.T) {
	if got := PriceFor(15.76, -86.80); got != FeeInside {
		t.Fatalf("expected free delivery inside zone, got %v", got)
	}
	// Saopin, the middle bridge, is inside the band.
	if got := PriceFor(15.7621218, -86.783392); got != FeeInside {
		t.Fatalf("expected free delivery at middle bridge, got %v", got)
	}
}

func TestPriceForOutsideZone(t *testing.T) {
	if got := PriceFor(15.76, -86.82); got != FeeOutside {
		t.Fatalf("expected outside fee west of zone, got %v", got)
	}
	if got := PriceFor(15.76, -86.77); got != FeeOutside {
		t.Fatalf("expected outside fee east of zone, got %v", got)
	}
}

func TestPriceForBoundariesAreExclusive(t *testing.T) {
	if got := PriceFor(15.7594158, -86.8149412); got != FeeOutside {
		t.Fatalf("west boundary must pay outside fee, got %v", got)
	}
	if got := PriceFor(15.7729232, -86.7797647); got != FeeOutside {
		t.Fatalf("east boundary must pay outside fee, got %v", got)
	}
}

func TestPriceForIgnoresLatitude(t *testing.T) {
	if PriceFor(0, -86.80) != PriceFor(90, -86.80) {
		t.Fatal("latitude must not affect the zone test")
	}
}

func TestFormatPrice(t *testing.T) {
	if got := FormatPrice(105); got != "L. 105.00" {
		t.Fatalf("unexpected formatting: %q", got)
	}
}
