package tiers

import "errors"

// Tabelas estáticas de planos e períodos. Configuração consumida pelo core,
// nunca calculada — alterações aqui são mudança de produto, não de código.

// PlanTier define o valor da aposta e o multiplicador de prêmio de um plano.
type PlanTier struct {
	ID               string
	StakeCents       int64
	PayoutMultiplier float64
}

// PeriodTier define a duração da aposta e o bônus de prêmio do período.
type PeriodTier struct {
	Weeks                 int
	Days                  int
	PayoutBonusMultiplier float64
}

const (
	PlatformFeeRate        = 0.10
	MinStakeCents          = int64(2500)
	MaxStakeCents          = int64(20000)
	CancellationWindowDays = 3
	MaxSimultaneousWagers  = 3
)

var Plans = []PlanTier{
	{ID: "basic", StakeCents: 2500, PayoutMultiplier: 1.2},
	{ID: "plus", StakeCents: 5000, PayoutMultiplier: 1.5},
	{ID: "pro", StakeCents: 10000, PayoutMultiplier: 1.8},
	{ID: "elite", StakeCents: 20000, PayoutMultiplier: 2.0},
}

var Periods = []PeriodTier{
	{Weeks: 2, Days: 14, PayoutBonusMultiplier: 1.0},
	{Weeks: 4, Days: 28, PayoutBonusMultiplier: 1.1},
	{Weeks: 8, Days: 56, PayoutBonusMultiplier: 1.25},
	{Weeks: 12, Days: 84, PayoutBonusMultiplier: 1.4},
}

var (
	ErrUnknownPlan   = errors.New("unknown plan")
	ErrUnknownPeriod = errors.New("unknown period")
)

// PlanByID retorna o plano correspondente ao id informado.
func PlanByID(id string) (PlanTier, error) {
	for _, p := range Plans {
		if p.ID == id {
			return p, nil
		}
	}
	return PlanTier{}, ErrUnknownPlan
}

// PeriodByWeeks retorna o período correspondente à duração em semanas.
func PeriodByWeeks(weeks int) (PeriodTier, error) {
	for _, p := range Periods {
		if p.Weeks == weeks {
			return p, nil
		}
	}
	return PeriodTier{}, ErrUnknownPeriod
}
