package readstore

import (
	"context"
	"fmt"

	"sejour/internal/infra"
	"sejour/internal/infra/db"
	"sejour/internal/pkg/pgconv"
	"sejour/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

const findPropertyByIDSQL = `
SELECT pr.id, pr.agency_id, a.name, pr.title, pr.description, pr.type, pr.capacity,
       pr.status, pr.tariff_amount, pr.tariff_unit, pr.currency, pr.created_at, pr.updated_at
FROM properties pr
JOIN agencies a ON a.id = pr.agency_id
WHERE pr.id = $1`

const listActivePropertiesSQL = `
SELECT pr.id, pr.agency_id, pr.title, pr.type, pr.capacity,
       pr.tariff_amount, pr.tariff_unit, pr.currency
FROM properties pr
WHERE pr.status = 'active'`

type PropertyReadStore struct {
	db db.DBTX
}

func NewPropertyReadStore(db db.DBTX) *PropertyReadStore {
	return &PropertyReadStore{db: db}
}

func (r *PropertyReadStore) FindByID(ctx context.Context, id int64) (*queries.PropertyView, error) {
	var (
		view         queries.PropertyView
		description  pgtype.Text
		tariffAmount pgtype.Numeric
	)
	err := r.db.QueryRow(ctx, findPropertyByIDSQL, id).Scan(
		&view.ID, &view.AgencyID, &view.AgencyName, &view.Title, &description,
		&view.Type, &view.Capacity, &view.Status, &tariffAmount,
		&view.TariffUnit, &view.Currency, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("property not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find property by ID", err)
	}

	view.Description = pgconv.StringPtrFromPgtype(description)
	if view.TariffAmount, err = pgconv.Float64FromNumeric(tariffAmount); err != nil {
		return nil, infra.WrapRepoErr("invalid tariff amount", err)
	}

	return &view, nil
}

func (r *PropertyReadStore) FindActive(ctx context.Context, filter queries.PropertyFilter, limit int32) ([]*queries.PropertyListItem, error) {
	sql := listActivePropertiesSQL
	args := make([]any, 0, 3)

	if filter.Type != nil {
		args = append(args, *filter.Type)
		sql += fmt.Sprintf(" AND pr.type = $%d", len(args))
	}
	if filter.MinCapacity != nil {
		args = append(args, *filter.MinCapacity)
		sql += fmt.Sprintf(" AND pr.capacity >= $%d", len(args))
	}

	args = append(args, limit)
	sql += fmt.Sprintf(" ORDER BY pr.id LIMIT $%d", len(args))

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list properties", err)
	}
	defer rows.Close()

	result := make([]*queries.PropertyListItem, 0)
	for rows.Next() {
		var (
			item         queries.PropertyListItem
			tariffAmount pgtype.Numeric
		)
		if err = rows.Scan(
			&item.ID, &item.AgencyID, &item.Title, &item.Type, &item.Capacity,
			&tariffAmount, &item.TariffUnit, &item.Currency,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan property row", err)
		}
		if item.TariffAmount, err = pgconv.Float64FromNumeric(tariffAmount); err != nil {
			return nil, infra.WrapRepoErr("invalid tariff amount", err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate property rows", err)
	}

	return result, nil
}
