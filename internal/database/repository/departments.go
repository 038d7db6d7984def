package repository

import (
	"context"
	"database/sql"
)

// DepartmentRepo handles departments.
type DepartmentRepo struct {
	db *sql.DB
}

func NewDepartmentRepo(db *sql.DB) *DepartmentRepo {
	return &DepartmentRepo{db: db}
}

func (r *DepartmentRepo) Upsert(ctx context.Context, d Department) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO departments(id, name, code, position, created_at, updated_at)
	VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	ON CONFLICT(id) DO UPDATE SET
	 name=excluded.name,
	 code=excluded.code,
	 position=excluded.position,
	 updated_at=CURRENT_TIMESTAMP;
	`, d.ID, d.Name, d.Code, d.Position)
	return err
}

func (r *DepartmentRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM departments`).Scan(&n)
	return n, err
}

func (r *DepartmentRepo) List(ctx context.Context) ([]Department, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, code, position, created_at, updated_at FROM departments ORDER BY position, rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Department
	for rows.Next() {
		var d Department
		if err := rows.Scan(&d.ID, &d.Name, &d.Code, &d.Position, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
