package repo

import (
	"database/sql"

	"github.com/fitstake/weight-wager-platform/internal/wager-service/wager"
)

type rowScanner interface {
	Scan(dest ...any) error
}

// scanWager materializa uma linha da tabela wagers no modelo de domínio
func scanWager(row rowScanner) (*wager.Wager, error) {
	var (
		w           wager.Wager
		kind        string
		status      string
		finalWeight sql.NullFloat64
	)
	err := row.Scan(
		&w.ID, &w.UserID, &kind, &w.PlanID, &w.StakeCents,
		&w.InitialWeightKg, &w.TargetWeightKg,
		&w.StartDate, &w.DeadlineDate, &status, &finalWeight,
		&w.PayoutCents, &w.ActualPayoutCents, &w.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	w.Kind = wager.Kind(kind)
	w.Status = wager.Status(status)
	if finalWeight.Valid {
		v := finalWeight.Float64
		w.FinalWeightKg = &v
	}
	return &w, nil
}
