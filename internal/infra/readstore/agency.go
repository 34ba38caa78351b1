package readstore

import (
	"context"

	"sejour/internal/infra"
	"sejour/internal/infra/db"
	"sejour/internal/pkg/pgconv"
	"sejour/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

const findAgencyByIDSQL = `
SELECT id, name, contact, ranking
FROM agencies
WHERE id = $1`

type AgencyReadStore struct {
	db db.DBTX
}

func NewAgencyReadStore(db db.DBTX) *AgencyReadStore {
	return &AgencyReadStore{db: db}
}

func (r *AgencyReadStore) FindByID(ctx context.Context, id int64) (*queries.AgencyView, error) {
	var (
		view    queries.AgencyView
		contact pgtype.Text
		ranking pgtype.Numeric
	)
	err := r.db.QueryRow(ctx, findAgencyByIDSQL, id).Scan(&view.ID, &view.Name, &contact, &ranking)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("agency not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find agency by ID", err)
	}

	view.Contact = pgconv.StringPtrFromPgtype(contact)
	if view.Ranking, err = pgconv.Float64PtrFromNumeric(ranking); err != nil {
		return nil, infra.WrapRepoErr("failed to convert agency ranking", err)
	}

	return &view, nil
}
