package repo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/fitstake/weight-wager-platform/internal/wager-service/wager"
)

// Postgres implementa o Store de apostas em banco Postgres
type Postgres struct{ db *sql.DB }

// NewPostgres retorna uma instância do repositório de apostas
func NewPostgres(db *sql.DB) *Postgres { return &Postgres{db: db} }

const wagerColumns = `id, user_id, kind, plan_id, stake_cents, initial_weight_kg, target_weight_kg,
	start_date, deadline_date, status, final_weight_kg, payout_cents, actual_payout_cents, created_at`

// CreateWithLimit insere a aposta garantindo o teto de apostas simultâneas
// do usuário. Contagem e insert rodam na mesma transação SERIALIZABLE: duas
// criações concorrentes não conseguem ambas observar "2 ativas" e inserir —
// a perdedora falha com erro de serialização, mapeado para ErrConflict.
func (p *Postgres) CreateWithLimit(ctx context.Context, w *wager.Wager, maxActive int) error {
	tx, err := p.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var active int
	if err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM wagers WHERE user_id=$1 AND status IN ('ACTIVE','VERIFYING')`,
		w.UserID).Scan(&active); err != nil {
		return err
	}
	if active >= maxActive {
		return wager.ErrWagerLimit
	}

	if _, err = tx.ExecContext(ctx, `
		INSERT INTO wagers (id, user_id, kind, plan_id, stake_cents, initial_weight_kg, target_weight_kg,
			start_date, deadline_date, status, payout_cents, actual_payout_cents, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,0,$12)`,
		w.ID, w.UserID, string(w.Kind), w.PlanID, w.StakeCents, w.InitialWeightKg, w.TargetWeightKg,
		w.StartDate, w.DeadlineDate, string(w.Status), w.PayoutCents, w.CreatedAt,
	); err != nil {
		return mapSerialization(err)
	}

	return mapSerialization(tx.Commit())
}

// Get retorna a aposta do usuário pelo id
func (p *Postgres) Get(ctx context.Context, userID, wagerID string) (*wager.Wager, error) {
	row := p.db.QueryRowContext(ctx,
		`SELECT `+wagerColumns+` FROM wagers WHERE id=$1 AND user_id=$2`, wagerID, userID)
	w, err := scanWager(row)
	if err == sql.ErrNoRows {
		return nil, wager.ErrNotFound
	}
	return w, err
}

// ListActiveOrVerifying retorna as apostas do usuário em ACTIVE ou VERIFYING
func (p *Postgres) ListActiveOrVerifying(ctx context.Context, userID string) ([]wager.Wager, error) {
	return p.list(ctx,
		`SELECT `+wagerColumns+` FROM wagers WHERE user_id=$1 AND status IN ('ACTIVE','VERIFYING') ORDER BY created_at`,
		userID)
}

// ListByUser retorna o histórico completo de apostas do usuário
func (p *Postgres) ListByUser(ctx context.Context, userID string) ([]wager.Wager, error) {
	return p.list(ctx,
		`SELECT `+wagerColumns+` FROM wagers WHERE user_id=$1 ORDER BY created_at DESC`,
		userID)
}

// UpdateStatus aplica a transição condicionada ao status esperado. Se a linha
// não estiver mais no status esperado, a transição concorrente venceu e o
// chamador recebe ErrConflict; se a linha não existir para o usuário,
// ErrNotFound.
func (p *Postgres) UpdateStatus(ctx context.Context, userID, wagerID string, expected wager.Status, patch wager.StatusPatch) (*wager.Wager, error) {
	row := p.db.QueryRowContext(ctx, `
		UPDATE wagers
		SET status=$1, final_weight_kg=COALESCE($2, final_weight_kg),
			actual_payout_cents=$3, updated_at=NOW()
		WHERE id=$4 AND user_id=$5 AND status=$6
		RETURNING `+wagerColumns,
		string(patch.Status), patch.FinalWeightKg, patch.ActualPayoutCents,
		wagerID, userID, string(expected))

	w, err := scanWager(row)
	if err == sql.ErrNoRows {
		// Distingue corrida perdida de id desconhecido
		var exists bool
		if qerr := p.db.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM wagers WHERE id=$1 AND user_id=$2)`,
			wagerID, userID).Scan(&exists); qerr != nil {
			return nil, qerr
		}
		if exists {
			return nil, wager.ErrConflict
		}
		return nil, wager.ErrNotFound
	}
	return w, err
}

func (p *Postgres) list(ctx context.Context, query, userID string) ([]wager.Wager, error) {
	rows, err := p.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []wager.Wager
	for rows.Next() {
		w, err := scanWager(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *w)
	}
	return out, rows.Err()
}

// mapSerialization traduz falha de serialização do Postgres (40001) para o
// erro de conflito do domínio ("tente novamente")
func mapSerialization(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "40001" {
		return wager.ErrConflict
	}
	return err
}
