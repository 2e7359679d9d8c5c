package wager

import (
	"math"
	"time"
)

// Snapshot é a visão de progresso de uma aposta num instante. Somente leitura
// e somente exibição: a liquidação usa exclusivamente o peso final enviado
// pelo usuário, nunca este snapshot.
type Snapshot struct {
	WagerID               string  `json:"wagerId"`
	ElapsedDays           int     `json:"elapsed_days"`
	TotalDays             int     `json:"total_days"`
	DaysRemaining         float64 `json:"days_remaining"`
	PercentTimeElapsed    float64 `json:"percent_time_elapsed"`
	PercentWeightProgress float64 `json:"percent_weight_progress"`
	KgRemaining           float64 `json:"kg_remaining"`
	OnTrack               bool    `json:"on_track"`
}

// TrackProgress compara o percentual do prazo decorrido com o percentual da
// meta de peso já alcançada; o usuário está "on track" quando o progresso de
// peso acompanha ou supera o progresso do tempo.
func TrackProgress(w *Wager, currentWeightKg float64, now time.Time) Snapshot {
	elapsed := daysBetween(w.StartDate, now)
	if elapsed < 0 {
		elapsed = 0
	}
	total := daysBetween(w.StartDate, w.DeadlineDate)

	pctTime := 0.0
	if total > 0 {
		pctTime = clamp(float64(elapsed) / float64(total) * 100)
	}

	toLose := w.InitialWeightKg - w.TargetWeightKg
	lost := w.InitialWeightKg - currentWeightKg
	pctWeight := 0.0
	if toLose > 0 {
		pctWeight = clamp(lost / toLose * 100)
	}

	return Snapshot{
		WagerID:               w.ID,
		ElapsedDays:           elapsed,
		TotalDays:             total,
		DaysRemaining:         round1(math.Max(0, float64(total-elapsed))),
		PercentTimeElapsed:    pctTime,
		PercentWeightProgress: pctWeight,
		KgRemaining:           round1(math.Max(0, toLose-lost)),
		OnTrack:               pctWeight >= pctTime,
	}
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
