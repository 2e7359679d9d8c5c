package goal

import (
	"errors"
	"math"
)

// Resultado da avaliação de realismo de uma meta de peso.
type Assessment struct {
	Realistic          bool    `json:"realistic"`
	Message            string  `json:"message"`
	WeeklyLossRequired float64 `json:"weekly_loss_required_kg"`
}

var ErrInvalidGoal = errors.New("invalid goal")

// Mensagens por faixa de perda semanal exigida (kg/semana).
const (
	MsgTooConservative = "too conservative"
	MsgConservative    = "conservative and healthy"
	MsgIdeal           = "ideal and realistic"
	MsgAggressive      = "aggressive but possible"
	MsgTooAggressive   = "too aggressive, consider more time"
)

// Assess classifica a meta (peso inicial, peso alvo, duração em semanas).
// A classificação usa a perda semanal arredondada para 1 casa, com limite
// superior inclusivo por faixa: acima de 1.5 kg/semana a meta é considerada
// irrealista e a criação da aposta deve ser recusada. O valor reportado
// mantém 2 casas para não esconder taxas como 1.25 do usuário.
func Assess(initialWeightKg, targetWeightKg float64, durationWeeks int) (Assessment, error) {
	if initialWeightKg <= 0 || targetWeightKg <= 0 || durationWeeks < 1 || targetWeightKg >= initialWeightKg {
		return Assessment{}, ErrInvalidGoal
	}

	raw := (initialWeightKg - targetWeightKg) / float64(durationWeeks)
	weekly := round1(raw)

	a := Assessment{WeeklyLossRequired: round2(raw)}
	switch {
	case weekly < 0.3:
		a.Realistic = true
		a.Message = MsgTooConservative
	case weekly <= 0.5:
		a.Realistic = true
		a.Message = MsgConservative
	case weekly <= 1.0:
		a.Realistic = true
		a.Message = MsgIdeal
	case weekly <= 1.5:
		a.Realistic = true
		a.Message = MsgAggressive
	default:
		a.Realistic = false
		a.Message = MsgTooAggressive
	}
	return a, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
