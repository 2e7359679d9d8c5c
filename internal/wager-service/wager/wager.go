package wager

import "time"

type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusVerifying Status = "VERIFYING"
	StatusWon       Status = "WON"
	StatusLost      Status = "LOST"
	StatusCancelled Status = "CANCELLED"
	StatusRefunded  Status = "REFUNDED"
)

type Kind string

const (
	KindSolo      Kind = "SOLO"
	KindGroup     Kind = "GROUP"
	KindChallenge Kind = "CHALLENGE"
)

// Wager é a aposta de meta de peso: o usuário compromete um valor (stake)
// contra atingir o peso alvo até o prazo. Nunca é deletada; estados terminais
// ficam retidos para histórico e auditoria.
type Wager struct {
	ID                string
	UserID            string
	Kind              Kind
	PlanID            string
	StakeCents        int64
	InitialWeightKg   float64
	TargetWeightKg    float64
	StartDate         time.Time // truncada para o dia (UTC)
	DeadlineDate      time.Time // StartDate + dias do período
	Status            Status
	FinalWeightKg     *float64 // preenchido só na liquidação
	PayoutCents       int64    // prêmio potencial, fixado na criação
	ActualPayoutCents int64    // PayoutCents se WON, 0 caso contrário
	CreatedAt         time.Time
}

// transitions é a tabela de transições legais da máquina de estados.
// REFUNDED não tem aresta de entrada aqui: só a reconciliação de pagamentos
// (externa ao core) marca uma aposta cancelada como estornada.
var transitions = map[Status][]Status{
	StatusActive:    {StatusVerifying, StatusCancelled, StatusWon, StatusLost},
	StatusVerifying: {StatusCancelled, StatusWon, StatusLost},
}

// CanTransition informa se a transição from→to é legal.
func CanTransition(from, to Status) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Terminal informa se o estado não admite mais transições.
func (s Status) Terminal() bool {
	switch s {
	case StatusWon, StatusLost, StatusCancelled, StatusRefunded:
		return true
	}
	return false
}

// ValidKind informa se o tipo de aposta é conhecido.
func ValidKind(k Kind) bool {
	switch k {
	case KindSolo, KindGroup, KindChallenge:
		return true
	}
	return false
}

// AtGoal aplica a regra de liquidação: peso final menor ou IGUAL ao alvo
// conta como vitória.
func (w *Wager) AtGoal(finalWeightKg float64) bool {
	return finalWeightKg <= w.TargetWeightKg
}
