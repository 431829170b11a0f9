package report

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/labrecon/labrecon/internal/domain/recon"
	"github.com/labrecon/labrecon/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) conn(ctx context.Context) queryable {
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

const reportCols = `id, subject_id, file_name, note, created_at`

const obsCols = `analyte, display, unrecognized, value, unit,
	reference_low, reference_high, status, sources, conflict, alternate_value`

// Create inserts the report and its observation rows in a single
// transaction so a partial report never becomes visible.
func (r *repoPG) Create(ctx context.Context, rep *Report) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := r.create(ctx, tx, rep); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *repoPG) create(ctx context.Context, q queryable, rep *Report) error {
	rep.ID = uuid.New()
	if err := q.QueryRow(ctx, `
		INSERT INTO report (id, subject_id, file_name, note)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`,
		rep.ID, rep.SubjectID, rep.FileName, rep.Note).Scan(&rep.CreatedAt); err != nil {
		return err
	}
	for i, o := range rep.Observations {
		sources := make([]string, len(o.Sources))
		for j, s := range o.Sources {
			sources[j] = string(s)
		}
		if _, err := q.Exec(ctx, `
			INSERT INTO report_observation (report_id, position, `+obsCols+`)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
			rep.ID, i, o.Analyte, o.Display, o.Unrecognized, o.Value, o.Unit,
			o.ReferenceLow, o.ReferenceHigh, string(o.Status), sources, o.Conflict, o.AlternateValue); err != nil {
			return err
		}
	}
	return nil
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Report, error) {
	var rep Report
	err := r.conn(ctx).QueryRow(ctx, `SELECT `+reportCols+` FROM report WHERE id = $1`, id).
		Scan(&rep.ID, &rep.SubjectID, &rep.FileName, &rep.Note, &rep.CreatedAt)
	if err != nil {
		return nil, err
	}

	rows, err := r.conn(ctx).Query(ctx, `
		SELECT `+obsCols+` FROM report_observation
		WHERE report_id = $1 ORDER BY position`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var o recon.Observation
		var status string
		var sources []string
		if err := rows.Scan(&o.Analyte, &o.Display, &o.Unrecognized, &o.Value, &o.Unit,
			&o.ReferenceLow, &o.ReferenceHigh, &status, &sources, &o.Conflict, &o.AlternateValue); err != nil {
			return nil, err
		}
		o.Status = recon.Status(status)
		o.Sources = make([]recon.Source, len(sources))
		for j, s := range sources {
			o.Sources[j] = recon.Source(s)
		}
		rep.Observations = append(rep.Observations, o)
	}
	return &rep, rows.Err()
}

const summaryCols = `r.id, r.subject_id, r.file_name, r.created_at,
	COUNT(o.report_id) AS observation_count,
	COUNT(o.report_id) FILTER (WHERE o.status IN ('LOW','HIGH')) AS abnormal_count,
	COUNT(o.report_id) FILTER (WHERE o.conflict) AS conflict_count`

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Summary, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM report`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT `+summaryCols+`
		FROM report r LEFT JOIN report_observation o ON o.report_id = r.id
		GROUP BY r.id ORDER BY r.created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return collectSummaries(rows, total)
}

func (r *repoPG) ListBySubject(ctx context.Context, subjectID uuid.UUID, limit, offset int) ([]*Summary, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM report WHERE subject_id = $1`, subjectID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT `+summaryCols+`
		FROM report r LEFT JOIN report_observation o ON o.report_id = r.id
		WHERE r.subject_id = $1
		GROUP BY r.id ORDER BY r.created_at DESC LIMIT $2 OFFSET $3`, subjectID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return collectSummaries(rows, total)
}

func collectSummaries(rows pgx.Rows, total int) ([]*Summary, int, error) {
	defer rows.Close()
	var items []*Summary
	for rows.Next() {
		var s Summary
		if err := rows.Scan(&s.ID, &s.SubjectID, &s.FileName, &s.CreatedAt,
			&s.ObservationCount, &s.AbnormalCount, &s.ConflictCount); err != nil {
			return nil, 0, err
		}
		items = append(items, &s)
	}
	return items, total, rows.Err()
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM report WHERE id = $1`, id)
	return err
}
