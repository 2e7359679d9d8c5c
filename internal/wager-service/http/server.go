package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/fitstake/weight-wager-platform/internal/wager-service/dto"
	"github.com/fitstake/weight-wager-platform/internal/wager-service/goal"
	"github.com/fitstake/weight-wager-platform/internal/wager-service/tiers"
	"github.com/fitstake/weight-wager-platform/internal/wager-service/wager"
	"github.com/fitstake/weight-wager-platform/pkg/contracts/events"
)

// Publisher publica os eventos de ciclo de vida da aposta
type Publisher interface {
	PublishWagerCreated(context.Context, events.WagerCreated) error
	PublishWagerSettled(context.Context, events.WagerSettled) error
}

// Wallet é o coletor de pagamentos externo: só a reserva do stake acontece
// no caminho de criação; prêmio e estorno são acionados pelo worker
type Wallet interface {
	Reserve(ctx context.Context, userID string, cents int64, externalRef string) (string, error)
}

// ProgressCache guarda snapshots de progresso com TTL curto
type ProgressCache interface {
	GetProgress(ctx context.Context, wagerID string, currentWeightKg float64, dst any) (bool, error)
	SetProgress(ctx context.Context, wagerID string, currentWeightKg float64, v any, ttl time.Duration) error
}

type Server struct {
	log   *zap.Logger
	svc   *wager.Service
	wcli  Wallet
	publ  Publisher
	cache ProgressCache
}

func NewServer(log *zap.Logger, svc *wager.Service, w Wallet, p Publisher, c ProgressCache) *Server {
	return &Server{log: log, svc: svc, wcli: w, publ: p, cache: c}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Post("/v1/goals/validate", s.validateGoal)
	r.Get("/v1/plans", s.listPlans)
	r.Post("/v1/wagers", s.createWager)
	r.Get("/v1/wagers", s.listWagers)
	r.Route("/v1/wagers/{id}", func(r chi.Router) {
		r.Get("/", s.getWager)
		r.Post("/verify", s.verifyWager)
		r.Post("/cancel", s.cancelWager)
		r.Post("/settle", s.settleWager)
		r.Get("/progress", s.getProgress)
	})
	return r
}

// validateGoal é o pré-check de realismo usado pelo fluxo de criação no app
func (s *Server) validateGoal(w http.ResponseWriter, r *http.Request) {
	var req dto.ValidateGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	a, err := goal.Assess(req.InitialWeightKg, req.TargetWeightKg, req.DurationWeeks)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// listPlans expõe as tabelas estáticas de planos e períodos
func (s *Server) listPlans(w http.ResponseWriter, r *http.Request) {
	resp := dto.TiersResponse{}
	for _, p := range tiers.Plans {
		resp.Plans = append(resp.Plans, dto.PlanResponse{ID: p.ID, StakeCents: p.StakeCents, PayoutMultiplier: p.PayoutMultiplier})
	}
	for _, p := range tiers.Periods {
		resp.Periods = append(resp.Periods, dto.PeriodResponse{Weeks: p.Weeks, Days: p.Days, PayoutBonusMultiplier: p.PayoutBonusMultiplier})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) createWager(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateWagerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// 1) Cria aposta ACTIVE (valida meta, tiers e teto de simultâneas)
	wg, err := s.svc.Create(r.Context(), wager.CreateParams{
		UserID:          req.UserID,
		Kind:            wager.Kind(req.Kind),
		PlanID:          req.PlanID,
		PeriodWeeks:     req.PeriodWeeks,
		InitialWeightKg: req.InitialWeightKg,
		TargetWeightKg:  req.TargetWeightKg,
	})
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	// 2) Reserva o stake via wallet (external_ref = wagerID)
	if _, err := s.wcli.Reserve(r.Context(), wg.UserID, wg.StakeCents, wg.ID); err != nil {
		s.log.Error("wallet reserve", zap.String("wagerId", wg.ID), zap.Error(err))
		writeError(w, http.StatusConflict, "wallet reserve failed")
		return
	}

	// 3) Publica evento wager_created
	_ = s.publ.PublishWagerCreated(r.Context(), events.WagerCreated{
		WagerID:              wg.ID,
		UserID:               wg.UserID,
		Kind:                 string(wg.Kind),
		PlanID:               wg.PlanID,
		StakeCents:           wg.StakeCents,
		InitialWeightKg:      wg.InitialWeightKg,
		TargetWeightKg:       wg.TargetWeightKg,
		DeadlineDate:         wg.DeadlineDate.Format("2006-01-02"),
		PotentialPayoutCents: wg.PayoutCents,
		ReservedRef:          wg.ID,
	})

	writeJSON(w, http.StatusCreated, dto.FromWager(wg))
}

func (s *Server) listWagers(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "userId required")
		return
	}
	list, err := s.svc.List(r.Context(), userID)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	out := make([]dto.WagerResponse, 0, len(list))
	for i := range list {
		out = append(out, dto.FromWager(&list[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) getWager(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "userId required")
		return
	}
	wg, err := s.svc.Get(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.FromWager(wg))
}

func (s *Server) verifyWager(w http.ResponseWriter, r *http.Request) {
	var req dto.VerifyWagerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	wg, err := s.svc.RequestVerification(r.Context(), req.UserID, chi.URLParam(r, "id"))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.FromWager(wg))
}

func (s *Server) cancelWager(w http.ResponseWriter, r *http.Request) {
	var req dto.CancelWagerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	wg, err := s.svc.Cancel(r.Context(), req.UserID, chi.URLParam(r, "id"))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	// Evento terminal: o worker estorna o stake de apostas canceladas
	_ = s.publ.PublishWagerSettled(r.Context(), events.WagerSettled{
		WagerID:    wg.ID,
		UserID:     wg.UserID,
		Status:     string(wg.Status),
		StakeCents: wg.StakeCents,
	})

	writeJSON(w, http.StatusOK, dto.FromWager(wg))
}

func (s *Server) settleWager(w http.ResponseWriter, r *http.Request) {
	var req dto.SettleWagerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	wg, err := s.svc.Settle(r.Context(), req.UserID, chi.URLParam(r, "id"), req.FinalWeightKg)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	_ = s.publ.PublishWagerSettled(r.Context(), events.WagerSettled{
		WagerID:           wg.ID,
		UserID:            wg.UserID,
		Status:            string(wg.Status),
		StakeCents:        wg.StakeCents,
		FinalWeightKg:     wg.FinalWeightKg,
		ActualPayoutCents: wg.ActualPayoutCents,
	})

	writeJSON(w, http.StatusOK, dto.FromWager(wg))
}

func (s *Server) getProgress(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	currentStr := r.URL.Query().Get("currentWeightKg")
	if userID == "" || currentStr == "" {
		writeError(w, http.StatusBadRequest, "userId and currentWeightKg required")
		return
	}
	current, err := strconv.ParseFloat(currentStr, 64)
	if err != nil || current <= 0 {
		writeError(w, http.StatusBadRequest, "invalid currentWeightKg")
		return
	}

	// Resolve a aposta ANTES de olhar o cache: o dono é verificado aqui;
	// servir direto do cache deixaria qualquer um ler o snapshot pelo id
	id := chi.URLParam(r, "id")
	wg, err := s.svc.Get(r.Context(), userID, id)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	if s.cache != nil {
		var cached wager.Snapshot
		if ok, _ := s.cache.GetProgress(r.Context(), id, current, &cached); ok {
			writeJSON(w, http.StatusOK, cached)
			return
		}
	}

	snap := s.svc.Progress(wg, current)

	if s.cache != nil {
		_ = s.cache.SetProgress(r.Context(), id, current, snap, 30*time.Second)
	}
	writeJSON(w, http.StatusOK, snap)
}

// writeDomainError traduz o erro de domínio para o status HTTP:
// validação 400, inexistente 404, disputa de estado 409, resto 500
func (s *Server) writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, wager.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, wager.ErrWagerLimit),
		errors.Is(err, wager.ErrCancelWindowExpired),
		errors.Is(err, wager.ErrAlreadySettled),
		errors.Is(err, wager.ErrAlreadyVerifying),
		errors.Is(err, wager.ErrConflict):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, wager.ErrUnrealisticGoal),
		errors.Is(err, goal.ErrInvalidGoal),
		errors.Is(err, tiers.ErrUnknownPlan),
		errors.Is(err, tiers.ErrUnknownPeriod):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		s.log.Error("internal", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// writeJSON serializa e envia resposta JSON
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, dto.ErrorResponse{Error: msg})
}
