//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestAgency(t *testing.T, db DBLike, name string) int64 {
	t.Helper()

	ctx := context.Background()

	var agencyID int64
	err := db.QueryRow(ctx,
		"INSERT INTO agencies (name, contact) VALUES ($1, $2) RETURNING id",
		name, name+"@example.com").Scan(&agencyID)
	require.NoError(t, err)

	return agencyID
}

func CreateRankedAgency(t *testing.T, db DBLike, name string, ranking float64) int64 {
	t.Helper()

	ctx := context.Background()

	var agencyID int64
	err := db.QueryRow(ctx,
		"INSERT INTO agencies (name, contact, ranking) VALUES ($1, $2, $3) RETURNING id",
		name, name+"@example.com", ranking).Scan(&agencyID)
	require.NoError(t, err)

	return agencyID
}

func CreateTestUser(t *testing.T, db DBLike, email, role string) int64 {
	t.Helper()

	ctx := context.Background()

	var userID int64
	err := db.QueryRow(ctx,
		"INSERT INTO users (email, role) VALUES ($1, $2) ON CONFLICT (email) DO UPDATE SET role = EXCLUDED.role RETURNING id",
		email, role).Scan(&userID)
	require.NoError(t, err)

	return userID
}

func CreateTestProperty(t *testing.T, db DBLike, agencyID int64, title string, tariffAmount float64) int64 {
	t.Helper()

	ctx := context.Background()

	var propertyID int64
	err := db.QueryRow(ctx,
		`INSERT INTO properties (agency_id, title, type, capacity, status, tariff_amount, tariff_unit, currency)
		 VALUES ($1, $2, 'house', 4, 'active', $3, 'day', 'EUR') RETURNING id`,
		agencyID, title, tariffAmount).Scan(&propertyID)
	require.NoError(t, err)

	return propertyID
}

func CreateInactiveProperty(t *testing.T, db DBLike, agencyID int64, title string) int64 {
	t.Helper()

	ctx := context.Background()

	var propertyID int64
	err := db.QueryRow(ctx,
		`INSERT INTO properties (agency_id, title, type, capacity, status, tariff_amount, tariff_unit, currency)
		 VALUES ($1, $2, 'studio', 2, 'inactive', 50, 'day', 'EUR') RETURNING id`,
		agencyID, title).Scan(&propertyID)
	require.NoError(t, err)

	return propertyID
}

func CreateTestReservation(t *testing.T, db DBLike, userID, propertyID int64, startsAt, endsAt time.Time, status string, totalAmount float64) int64 {
	t.Helper()

	ctx := context.Background()

	var reservationID int64
	err := db.QueryRow(ctx,
		`INSERT INTO reservations (user_id, property_id, starts_at, ends_at, guest_count, status, total_amount)
		 VALUES ($1, $2, $3, $4, 2, $5, $6) RETURNING id`,
		userID, propertyID, startsAt, endsAt, status, totalAmount).Scan(&reservationID)
	require.NoError(t, err)

	return reservationID
}

func CreateTestPayment(t *testing.T, db DBLike, reservationID int64, amount float64, status, reference string) int64 {
	t.Helper()

	ctx := context.Background()

	var paymentID int64
	err := db.QueryRow(ctx,
		`INSERT INTO payments (reservation_id, mode, amount, paid_at, status, reference)
		 VALUES ($1, 'online', $2, now(), $3, $4) RETURNING id`,
		reservationID, amount, status, reference).Scan(&paymentID)
	require.NoError(t, err)

	return paymentID
}

func CreateTestReview(t *testing.T, db DBLike, userID, agencyID int64, rating int, comment string, reviewDate time.Time) int64 {
	t.Helper()

	ctx := context.Background()

	var reviewID int64
	err := db.QueryRow(ctx,
		`INSERT INTO reviews (user_id, agency_id, rating, comment, review_date)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		userID, agencyID, rating, comment, reviewDate).Scan(&reviewID)
	require.NoError(t, err)

	return reviewID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between sub-tests
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
