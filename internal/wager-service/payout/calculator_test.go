package payout

import "testing"

func TestNetPayoutCents(t *testing.T) {
	// stake R$50.00, plano 1.5x, período 1.1x, taxa 10%:
	// bruto 8250, taxa 825, líquido 7425
	got := NetPayoutCents(5000, 1.5, 1.1, 0.10)
	if got != 7425 {
		t.Errorf("expected 7425, got %d", got)
	}
}

func TestNetPayoutDeterministic(t *testing.T) {
	first := NetPayoutCents(10000, 1.8, 1.25, 0.10)
	for i := 0; i < 100; i++ {
		if got := NetPayoutCents(10000, 1.8, 1.25, 0.10); got != first {
			t.Fatalf("non-deterministic result: %d != %d", got, first)
		}
	}
}

func TestNetPayoutMonotonicInStake(t *testing.T) {
	prev := int64(-1)
	for _, stake := range []int64{2500, 5000, 10000, 20000} {
		got := NetPayoutCents(stake, 1.5, 1.1, 0.10)
		if got <= prev {
			t.Errorf("payout should strictly increase with stake: %d after %d", got, prev)
		}
		prev = got
	}
}

func TestNetPayoutMonotonicInMultipliers(t *testing.T) {
	base := NetPayoutCents(5000, 1.2, 1.0, 0.10)
	if NetPayoutCents(5000, 1.5, 1.0, 0.10) <= base {
		t.Error("payout should increase with plan multiplier")
	}
	if NetPayoutCents(5000, 1.2, 1.4, 0.10) <= base {
		t.Error("payout should increase with period bonus")
	}
}

func TestGrossPayoutCents(t *testing.T) {
	if got := GrossPayoutCents(5000, 1.5, 1.1); got != 8250 {
		t.Errorf("expected 8250, got %d", got)
	}
}
