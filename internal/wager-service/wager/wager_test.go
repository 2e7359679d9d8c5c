package wager

import "testing"

func TestTransitionTable(t *testing.T) {
	allowed := []struct{ from, to Status }{
		{StatusActive, StatusVerifying},
		{StatusActive, StatusCancelled},
		{StatusActive, StatusWon},
		{StatusActive, StatusLost},
		{StatusVerifying, StatusCancelled},
		{StatusVerifying, StatusWon},
		{StatusVerifying, StatusLost},
	}
	for _, tr := range allowed {
		if !CanTransition(tr.from, tr.to) {
			t.Errorf("%s -> %s should be allowed", tr.from, tr.to)
		}
	}

	// nenhum estado terminal admite saída
	terminals := []Status{StatusWon, StatusLost, StatusCancelled, StatusRefunded}
	all := []Status{StatusActive, StatusVerifying, StatusWon, StatusLost, StatusCancelled, StatusRefunded}
	for _, from := range terminals {
		for _, to := range all {
			if CanTransition(from, to) {
				t.Errorf("terminal %s must not transition to %s", from, to)
			}
		}
	}

	// REFUNDED nunca é escrito pelo core
	for _, from := range all {
		if CanTransition(from, StatusRefunded) {
			t.Errorf("core must not transition %s -> REFUNDED", from)
		}
	}
}

func TestTerminal(t *testing.T) {
	for _, s := range []Status{StatusWon, StatusLost, StatusCancelled, StatusRefunded} {
		if !s.Terminal() {
			t.Errorf("%s should be terminal", s)
		}
	}
	for _, s := range []Status{StatusActive, StatusVerifying} {
		if s.Terminal() {
			t.Errorf("%s should not be terminal", s)
		}
	}
}

func TestAtGoal(t *testing.T) {
	w := &Wager{TargetWeightKg: 80}
	if !w.AtGoal(80) {
		t.Error("final weight equal to target counts as a win")
	}
	if !w.AtGoal(79.5) {
		t.Error("final weight below target counts as a win")
	}
	if w.AtGoal(80.1) {
		t.Error("final weight above target is a loss")
	}
}

func TestValidKind(t *testing.T) {
	for _, k := range []Kind{KindSolo, KindGroup, KindChallenge} {
		if !ValidKind(k) {
			t.Errorf("%s should be valid", k)
		}
	}
	if ValidKind(Kind("DUO")) {
		t.Error("unknown kind should be invalid")
	}
}
