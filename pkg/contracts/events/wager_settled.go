package events

import "time"

// Evento publicado no tópico "wager_settled" quando uma aposta atinge estado
// terminal (WON, LOST ou CANCELLED). O wager-payout-worker consome este evento
// para acionar o pagamento ou estorno na carteira.
type WagerSettled struct {
	WagerID           string    `json:"wager_id"`
	UserID            string    `json:"user_id"`
	Status            string    `json:"status"` // "WON" | "LOST" | "CANCELLED"
	StakeCents        int64     `json:"stake_cents"`
	FinalWeightKg     *float64  `json:"final_weight_kg,omitempty"` // nulo quando CANCELLED
	ActualPayoutCents int64     `json:"actual_payout_cents"`
	Ts                time.Time `json:"ts"`
}
