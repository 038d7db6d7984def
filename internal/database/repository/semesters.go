package repository

import (
	"context"
	"database/sql"
)

// SemesterRepo handles semesters.
type SemesterRepo struct {
	db *sql.DB
}

func NewSemesterRepo(db *sql.DB) *SemesterRepo { return &SemesterRepo{db: db} }

func (r *SemesterRepo) Upsert(ctx context.Context, s Semester) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO semesters(id, name, department_id, position, created_at, updated_at)
	VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	ON CONFLICT(id) DO UPDATE SET
	 name=excluded.name,
	 department_id=excluded.department_id,
	 position=excluded.position,
	 updated_at=CURRENT_TIMESTAMP;
	`, s.ID, s.Name, s.DepartmentID, s.Position)
	return err
}

func (r *SemesterRepo) List(ctx context.Context) ([]Semester, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, department_id, position, created_at, updated_at FROM semesters ORDER BY position, rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Semester
	for rows.Next() {
		var s Semester
		if err := rows.Scan(&s.ID, &s.Name, &s.DepartmentID, &s.Position, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
