package statement

import "testing"

func TestCheckWithinTolerance(t *testing.T) {
	if d := Check(dec("1000.00"), dec("1000.00"), DefaultTolerance); d != nil {
		t.Fatalf("identical sides flagged: %+v", d)
	}
	// Exactly one kuruş apart is still consistent.
	if d := Check(dec("1000.01"), dec("1000.00"), DefaultTolerance); d != nil {
		t.Fatalf("delta at tolerance flagged: %+v", d)
	}
	if d := Check(dec("999.99"), dec("1000.00"), DefaultTolerance); d != nil {
		t.Fatalf("negative delta at tolerance flagged: %+v", d)
	}
}

func TestCheckBeyondTolerance(t *testing.T) {
	d := Check(dec("1000.02"), dec("1000.00"), DefaultTolerance)
	if d == nil {
		t.Fatalf("expected discrepancy")
	}
	if !d.Delta.Equal(dec("0.02")) {
		t.Fatalf("delta = %s, expected 0.02", d.Delta)
	}
	if !d.Assets.Equal(dec("1000.02")) || !d.LiabEquity.Equal(dec("1000.00")) {
		t.Fatalf("discrepancy does not carry both sides: %+v", d)
	}
}
