package tiers

import "testing"

func TestPlanByID(t *testing.T) {
	p, err := PlanByID("plus")
	if err != nil {
		t.Fatalf("PlanByID failed: %v", err)
	}
	if p.StakeCents != 5000 || p.PayoutMultiplier != 1.5 {
		t.Errorf("unexpected plan: %+v", p)
	}

	if _, err := PlanByID("platinum"); err != ErrUnknownPlan {
		t.Errorf("expected ErrUnknownPlan, got %v", err)
	}
}

func TestPeriodByWeeks(t *testing.T) {
	p, err := PeriodByWeeks(4)
	if err != nil {
		t.Fatalf("PeriodByWeeks failed: %v", err)
	}
	if p.Days != 28 || p.PayoutBonusMultiplier != 1.1 {
		t.Errorf("unexpected period: %+v", p)
	}

	if _, err := PeriodByWeeks(5); err != ErrUnknownPeriod {
		t.Errorf("expected ErrUnknownPeriod, got %v", err)
	}
}

func TestPlansAscendingAndBounded(t *testing.T) {
	var prevStake int64
	var prevMult float64
	for _, p := range Plans {
		if p.StakeCents <= prevStake || p.PayoutMultiplier <= prevMult {
			t.Errorf("plans must ascend in stake and multiplier: %+v", p)
		}
		if p.StakeCents < MinStakeCents || p.StakeCents > MaxStakeCents {
			t.Errorf("plan stake out of global bounds: %+v", p)
		}
		prevStake, prevMult = p.StakeCents, p.PayoutMultiplier
	}
}
