package events

// Evento publicado no tópico "wager_created" quando uma aposta entra em ACTIVE.
type WagerCreated struct {
	WagerID              string  `json:"wager_id"`
	UserID               string  `json:"user_id"`
	Kind                 string  `json:"kind"` // "SOLO" | "GROUP" | "CHALLENGE"
	PlanID               string  `json:"plan_id"`
	StakeCents           int64   `json:"stake_cents"`
	InitialWeightKg      float64 `json:"initial_weight_kg"`
	TargetWeightKg       float64 `json:"target_weight_kg"`
	DeadlineDate         string  `json:"deadline_date"` // YYYY-MM-DD
	PotentialPayoutCents int64   `json:"potential_payout_cents"`
	ReservedRef          string  `json:"reserved_ref"` // external_ref usado na reserva da carteira (wagerID)
	TsUnixMs             int64   `json:"ts_unix_ms"`
}
