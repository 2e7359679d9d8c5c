package wager

import (
	"testing"
	"time"
)

func progressWager() *Wager {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	return &Wager{
		ID:              "w1",
		InitialWeightKg: 90,
		TargetWeightKg:  80,
		StartDate:       start,
		DeadlineDate:    start.AddDate(0, 0, 28),
	}
}

func TestTrackProgressOnTrack(t *testing.T) {
	w := progressWager()
	now := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC) // dia 14 de 28

	snap := TrackProgress(w, 85, now) // 5 de 10 kg
	if snap.ElapsedDays != 14 || snap.TotalDays != 28 {
		t.Errorf("expected 14/28 days, got %d/%d", snap.ElapsedDays, snap.TotalDays)
	}
	if snap.PercentTimeElapsed != 50 {
		t.Errorf("expected 50%% time, got %.1f", snap.PercentTimeElapsed)
	}
	if snap.PercentWeightProgress != 50 {
		t.Errorf("expected 50%% weight, got %.1f", snap.PercentWeightProgress)
	}
	if !snap.OnTrack {
		t.Error("50/50 should be on track")
	}
	if snap.DaysRemaining != 14 {
		t.Errorf("expected 14 days remaining, got %.1f", snap.DaysRemaining)
	}
	if snap.KgRemaining != 5 {
		t.Errorf("expected 5 kg remaining, got %.1f", snap.KgRemaining)
	}
}

func TestTrackProgressBehind(t *testing.T) {
	w := progressWager()
	now := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

	snap := TrackProgress(w, 86, now) // 4 de 10 kg em 50% do tempo
	if snap.PercentWeightProgress != 40 {
		t.Errorf("expected 40%% weight, got %.1f", snap.PercentWeightProgress)
	}
	if snap.OnTrack {
		t.Error("40%% weight at 50%% time is behind")
	}
	if snap.KgRemaining != 6 {
		t.Errorf("expected 6 kg remaining, got %.1f", snap.KgRemaining)
	}
}

func TestTrackProgressClamps(t *testing.T) {
	w := progressWager()

	// já passou da meta: progresso de peso trava em 100 e não sobra kg
	snap := TrackProgress(w, 79, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC))
	if snap.PercentWeightProgress != 100 {
		t.Errorf("expected 100%% weight, got %.1f", snap.PercentWeightProgress)
	}
	if snap.KgRemaining != 0 {
		t.Errorf("expected 0 kg remaining, got %.1f", snap.KgRemaining)
	}

	// engordou: progresso de peso trava em 0
	snap = TrackProgress(w, 92, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC))
	if snap.PercentWeightProgress != 0 {
		t.Errorf("expected 0%% weight, got %.1f", snap.PercentWeightProgress)
	}

	// além do prazo: tempo trava em 100 e não sobram dias
	snap = TrackProgress(w, 85, time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC))
	if snap.PercentTimeElapsed != 100 {
		t.Errorf("expected 100%% time, got %.1f", snap.PercentTimeElapsed)
	}
	if snap.DaysRemaining != 0 {
		t.Errorf("expected 0 days remaining, got %.1f", snap.DaysRemaining)
	}

	// antes do início: nada decorrido
	snap = TrackProgress(w, 90, time.Date(2025, 2, 20, 0, 0, 0, 0, time.UTC))
	if snap.ElapsedDays != 0 || snap.PercentTimeElapsed != 0 {
		t.Errorf("expected zero elapsed, got %d days / %.1f%%", snap.ElapsedDays, snap.PercentTimeElapsed)
	}
}
