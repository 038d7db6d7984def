package repository

import (
	"context"
	"database/sql"
)

// SubjectRepo handles subjects.
type SubjectRepo struct {
	db *sql.DB
}

func NewSubjectRepo(db *sql.DB) *SubjectRepo { return &SubjectRepo{db: db} }

func (r *SubjectRepo) Upsert(ctx context.Context, s Subject) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO subjects(id, name, semester_id, position, created_at, updated_at)
	VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	ON CONFLICT(id) DO UPDATE SET
	 name=excluded.name,
	 semester_id=excluded.semester_id,
	 position=excluded.position,
	 updated_at=CURRENT_TIMESTAMP;
	`, s.ID, s.Name, s.SemesterID, s.Position)
	return err
}

// List returns every subject, dangling semester ids included.
func (r *SubjectRepo) List(ctx context.Context) ([]Subject, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, semester_id, position, created_at, updated_at FROM subjects ORDER BY position, rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Subject
	for rows.Next() {
		var s Subject
		if err := rows.Scan(&s.ID, &s.Name, &s.SemesterID, &s.Position, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
