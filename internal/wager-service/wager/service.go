package wager

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fitstake/weight-wager-platform/internal/wager-service/goal"
	"github.com/fitstake/weight-wager-platform/internal/wager-service/payout"
	"github.com/fitstake/weight-wager-platform/internal/wager-service/tiers"
)

// StatusPatch descreve a mutação aplicada numa transição de estado.
type StatusPatch struct {
	Status            Status
	FinalWeightKg     *float64
	ActualPayoutCents int64
}

// Store é o contrato de persistência consumido pelo core. CreateWithLimit
// precisa garantir atomicidade entre a contagem de apostas ativas e o insert;
// UpdateStatus é condicional ao status esperado, de forma que duas transições
// concorrentes sobre a mesma aposta nunca vençam as duas (a perdedora recebe
// ErrConflict ou observa o novo estado na releitura).
type Store interface {
	ListActiveOrVerifying(ctx context.Context, userID string) ([]Wager, error)
	ListByUser(ctx context.Context, userID string) ([]Wager, error)
	Get(ctx context.Context, userID, wagerID string) (*Wager, error)
	CreateWithLimit(ctx context.Context, w *Wager, maxActive int) error
	UpdateStatus(ctx context.Context, userID, wagerID string, expected Status, patch StatusPatch) (*Wager, error)
}

// Service implementa o ciclo de vida da aposta: criação, cancelamento,
// pedido de verificação e liquidação. Sem estado em memória entre requests;
// toda mutação passa pelo Store.
type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// WithClock troca a fonte de tempo (testes de janela de cancelamento).
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

type CreateParams struct {
	UserID          string
	Kind            Kind
	PlanID          string
	PeriodWeeks     int
	InitialWeightKg float64
	TargetWeightKg  float64
}

// Create valida a meta e os tiers, calcula o prêmio potencial e insere a
// aposta em ACTIVE respeitando o limite de apostas simultâneas do usuário.
func (s *Service) Create(ctx context.Context, p CreateParams) (*Wager, error) {
	if p.UserID == "" {
		return nil, fmt.Errorf("%w: userId required", goal.ErrInvalidGoal)
	}
	if !ValidKind(p.Kind) {
		return nil, fmt.Errorf("%w: unknown kind %q", goal.ErrInvalidGoal, p.Kind)
	}

	assessment, err := goal.Assess(p.InitialWeightKg, p.TargetWeightKg, p.PeriodWeeks)
	if err != nil {
		return nil, err
	}
	if !assessment.Realistic {
		return nil, fmt.Errorf("%w: %s (%.1f kg/week)", ErrUnrealisticGoal, assessment.Message, assessment.WeeklyLossRequired)
	}

	plan, err := tiers.PlanByID(p.PlanID)
	if err != nil {
		return nil, err
	}
	period, err := tiers.PeriodByWeeks(p.PeriodWeeks)
	if err != nil {
		return nil, err
	}
	if plan.StakeCents < tiers.MinStakeCents || plan.StakeCents > tiers.MaxStakeCents {
		return nil, fmt.Errorf("%w: stake out of bounds", tiers.ErrUnknownPlan)
	}

	now := s.now()
	start := truncateDay(now)
	w := &Wager{
		ID:              uuid.NewString(),
		UserID:          p.UserID,
		Kind:            p.Kind,
		PlanID:          plan.ID,
		StakeCents:      plan.StakeCents,
		InitialWeightKg: p.InitialWeightKg,
		TargetWeightKg:  p.TargetWeightKg,
		StartDate:       start,
		DeadlineDate:    start.AddDate(0, 0, period.Days),
		Status:          StatusActive,
		PayoutCents:     payout.NetPayoutCents(plan.StakeCents, plan.PayoutMultiplier, period.PayoutBonusMultiplier, tiers.PlatformFeeRate),
		CreatedAt:       now,
	}

	if err := s.store.CreateWithLimit(ctx, w, tiers.MaxSimultaneousWagers); err != nil {
		return nil, err
	}
	return w, nil
}

// RequestVerification move a aposta para VERIFYING: o usuário enviou a
// pesagem final e aguarda revisão do operador.
func (s *Service) RequestVerification(ctx context.Context, userID, wagerID string) (*Wager, error) {
	w, err := s.store.Get(ctx, userID, wagerID)
	if err != nil {
		return nil, err
	}
	if w.Status.Terminal() {
		return nil, ErrAlreadySettled
	}
	if w.Status == StatusVerifying {
		return nil, ErrAlreadyVerifying
	}
	return s.store.UpdateStatus(ctx, userID, wagerID, StatusActive, StatusPatch{Status: StatusVerifying})
}

// Cancel cancela a aposta dentro da janela de arrependimento. O dia 3 ainda
// é cancelável; o dia 4 não. O estorno do valor em si é responsabilidade do
// coletor de pagamentos, acionado pelo evento terminal.
func (s *Service) Cancel(ctx context.Context, userID, wagerID string) (*Wager, error) {
	w, err := s.store.Get(ctx, userID, wagerID)
	if err != nil {
		return nil, err
	}
	if w.Status.Terminal() {
		return nil, ErrAlreadySettled
	}
	if daysBetween(w.StartDate, s.now()) > tiers.CancellationWindowDays {
		return nil, ErrCancelWindowExpired
	}
	return s.store.UpdateStatus(ctx, userID, wagerID, w.Status, StatusPatch{Status: StatusCancelled})
}

// Settle liquida a aposta com o peso final informado. Peso final igual ao
// alvo conta como vitória. Releitura de uma aposta terminal sempre falha:
// nunca reavaliamos um peso melhor enviado depois da derrota.
func (s *Service) Settle(ctx context.Context, userID, wagerID string, finalWeightKg float64) (*Wager, error) {
	if finalWeightKg <= 0 {
		return nil, fmt.Errorf("%w: finalWeightKg must be positive", goal.ErrInvalidGoal)
	}

	w, err := s.store.Get(ctx, userID, wagerID)
	if err != nil {
		return nil, err
	}
	if w.Status.Terminal() {
		return nil, ErrAlreadySettled
	}

	patch := StatusPatch{FinalWeightKg: &finalWeightKg}
	if w.AtGoal(finalWeightKg) {
		patch.Status = StatusWon
		patch.ActualPayoutCents = w.PayoutCents
	} else {
		patch.Status = StatusLost
		patch.ActualPayoutCents = 0
	}
	return s.store.UpdateStatus(ctx, userID, wagerID, w.Status, patch)
}

// Get retorna uma aposta do usuário.
func (s *Service) Get(ctx context.Context, userID, wagerID string) (*Wager, error) {
	return s.store.Get(ctx, userID, wagerID)
}

// List retorna o histórico de apostas do usuário.
func (s *Service) List(ctx context.Context, userID string) ([]Wager, error) {
	return s.store.ListByUser(ctx, userID)
}

// Progress calcula o snapshot de progresso da aposta com o peso atual.
func (s *Service) Progress(w *Wager, currentWeightKg float64) Snapshot {
	return TrackProgress(w, currentWeightKg, s.now())
}
