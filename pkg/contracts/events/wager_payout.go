package events

import "time"

// Evento emitido pelo wager-payout-worker após acionar a carteira.
type WagerPayout struct {
	WagerID     string    `json:"wagerId"`
	UserID      string    `json:"userId"`
	Operation   string    `json:"operation"` // "PAYOUT" | "REFUND" | "NONE"
	AmountCents int64     `json:"amount_cents"`
	Reason      string    `json:"reason,omitempty"`
	Ts          time.Time `json:"ts"`
}
