package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/timesheet-service/internal/domain"
)

const entryColumns = `id, timesheet_id, to_char(entry_date, 'YYYY-MM-DD'), project_name, work_type, description, hours`

type postgresEntryRepository struct {
	pool *pgxpool.Pool
	ids  IDGenerator
}

// NewPostgresEntryRepository returns a Postgres-backed entry store.
// Collections are tracked in entry_collections so that an emptied collection
// still exists.
func NewPostgresEntryRepository(pool *pgxpool.Pool, ids IDGenerator) EntryRepository {
	if ids == nil {
		ids = UUIDGenerator{}
	}
	return &postgresEntryRepository{pool: pool, ids: ids}
}

func (r *postgresEntryRepository) List(ctx context.Context, timesheetID string) ([]domain.TimesheetEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM timesheet_entries WHERE timesheet_id=$1 ORDER BY seq`

	rows, err := r.pool.Query(ctx, query, timesheetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]domain.TimesheetEntry, 0)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}
	return entries, rows.Err()
}

func (r *postgresEntryRepository) Create(ctx context.Context, timesheetID string, input domain.EntryInput) (*domain.TimesheetEntry, error) {
	entry := &domain.TimesheetEntry{
		ID:          r.ids.NewID(),
		TimesheetID: timesheetID,
		Date:        input.Date,
		ProjectName: input.ProjectName,
		WorkType:    input.WorkType,
		Description: input.Description,
		Hours:       input.Hours,
	}

	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`INSERT INTO entry_collections (timesheet_id) VALUES ($1) ON CONFLICT DO NOTHING`,
			timesheetID,
		); err != nil {
			return fmt.Errorf("ensure collection: %w", err)
		}
		_, err := tx.Exec(ctx, `
            INSERT INTO timesheet_entries (id, timesheet_id, entry_date, project_name, work_type, description, hours)
            VALUES ($1, $2, $3::date, $4, $5, $6, $7)`,
			entry.ID,
			entry.TimesheetID,
			entry.Date,
			entry.ProjectName,
			entry.WorkType,
			entry.Description,
			entry.Hours,
		)
		return err
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (r *postgresEntryRepository) Update(ctx context.Context, timesheetID, entryID string, patch domain.EntryPatch) (*domain.TimesheetEntry, error) {
	var updated domain.TimesheetEntry
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if err := ensureCollection(ctx, tx, timesheetID); err != nil {
			return err
		}

		query := `SELECT ` + entryColumns + ` FROM timesheet_entries WHERE timesheet_id=$1 AND id=$2 FOR UPDATE`
		current, err := scanEntry(tx.QueryRow(ctx, query, timesheetID, entryID))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrEntryNotFound
			}
			return err
		}

		updated = patch.Apply(*current)
		_, err = tx.Exec(ctx, `
            UPDATE timesheet_entries
            SET entry_date=$1::date, project_name=$2, work_type=$3, description=$4, hours=$5
            WHERE timesheet_id=$6 AND id=$7`,
			updated.Date,
			updated.ProjectName,
			updated.WorkType,
			updated.Description,
			updated.Hours,
			timesheetID,
			entryID,
		)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *postgresEntryRepository) Delete(ctx context.Context, timesheetID, entryID string) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if err := ensureCollection(ctx, tx, timesheetID); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, `DELETE FROM timesheet_entries WHERE timesheet_id=$1 AND id=$2`, timesheetID, entryID)
		return err
	})
}

func ensureCollection(ctx context.Context, tx pgx.Tx, timesheetID string) error {
	var exists int
	err := tx.QueryRow(ctx, `SELECT 1 FROM entry_collections WHERE timesheet_id=$1`, timesheetID).Scan(&exists)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrTimesheetNotFound
	}
	return err
}

func scanEntry(row pgx.Row) (*domain.TimesheetEntry, error) {
	var entry domain.TimesheetEntry
	if err := row.Scan(
		&entry.ID,
		&entry.TimesheetID,
		&entry.Date,
		&entry.ProjectName,
		&entry.WorkType,
		&entry.Description,
		&entry.Hours,
	); err != nil {
		return nil, err
	}
	return &entry, nil
}
