package topics

const (
	// Apostas
	WagerCreated = "wager_created"
	WagerSettled = "wager_settled"

	// Pagamentos
	WagerPayout = "wager_payout"

	// DLQs
	WagerSettledDLQ = "wager_settled_dlq"
)
