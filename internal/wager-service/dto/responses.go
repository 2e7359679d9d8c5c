package dto

import (
	"time"

	"github.com/fitstake/weight-wager-platform/internal/wager-service/wager"
)

type WagerResponse struct {
	WagerID           string    `json:"wagerId"`
	UserID            string    `json:"userId"`
	Kind              string    `json:"kind"`
	PlanID            string    `json:"planId"`
	StakeCents        int64     `json:"stake_cents"`
	InitialWeightKg   float64   `json:"initial_weight_kg"`
	TargetWeightKg    float64   `json:"target_weight_kg"`
	StartDate         string    `json:"start_date"`    // YYYY-MM-DD
	DeadlineDate      string    `json:"deadline_date"` // YYYY-MM-DD
	Status            string    `json:"status"`
	FinalWeightKg     *float64  `json:"final_weight_kg,omitempty"`
	PayoutCents       int64     `json:"payout_cents"`
	ActualPayoutCents int64     `json:"actual_payout_cents"`
	CreatedAt         time.Time `json:"created_at"`
}

// FromWager converte o modelo de domínio para a resposta HTTP
func FromWager(w *wager.Wager) WagerResponse {
	return WagerResponse{
		WagerID:           w.ID,
		UserID:            w.UserID,
		Kind:              string(w.Kind),
		PlanID:            w.PlanID,
		StakeCents:        w.StakeCents,
		InitialWeightKg:   w.InitialWeightKg,
		TargetWeightKg:    w.TargetWeightKg,
		StartDate:         w.StartDate.Format("2006-01-02"),
		DeadlineDate:      w.DeadlineDate.Format("2006-01-02"),
		Status:            string(w.Status),
		FinalWeightKg:     w.FinalWeightKg,
		PayoutCents:       w.PayoutCents,
		ActualPayoutCents: w.ActualPayoutCents,
		CreatedAt:         w.CreatedAt,
	}
}

type PlanResponse struct {
	ID               string  `json:"id"`
	StakeCents       int64   `json:"stake_cents"`
	PayoutMultiplier float64 `json:"payout_multiplier"`
}

type PeriodResponse struct {
	Weeks                 int     `json:"weeks"`
	Days                  int     `json:"days"`
	PayoutBonusMultiplier float64 `json:"payout_bonus_multiplier"`
}

type TiersResponse struct {
	Plans   []PlanResponse   `json:"plans"`
	Periods []PeriodResponse `json:"periods"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
