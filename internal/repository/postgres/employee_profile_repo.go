package postgres

import (
	"context"

	"edudesk/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EmployeeProfileRepo struct{ db *pgxpool.Pool }

func NewEmployeeProfileRepo(db *pgxpool.Pool) *EmployeeProfileRepo {
	return &EmployeeProfileRepo{db: db}
}

const employeeProfileCols = `
	id, user_id, name, email, department, designation, active, created_at, updated_at`

func scanEmployeeProfile(row pgx.Row, p *models.EmployeeProfile) error {
	return row.Scan(
		&p.ID, &p.UserID, &p.Name, &p.Email, &p.Department, &p.Designation,
		&p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
}

func (r *EmployeeProfileRepo) GetByUser(ctx context.Context, userID string) (*models.EmployeeProfile, error) {
	var p models.EmployeeProfile
	err := scanEmployeeProfile(r.db.QueryRow(ctx, `
		SELECT `+employeeProfileCols+`
		FROM employee_profiles WHERE user_id=$1
	`, userID), &p)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *EmployeeProfileRepo) Create(ctx context.Context, p *models.EmployeeProfile) error {
	return scanEmployeeProfile(r.db.QueryRow(ctx, `
		INSERT INTO employee_profiles (user_id, name, email, department)
		VALUES ($1,$2,$3,$4)
		RETURNING `+employeeProfileCols+`
	`, p.UserID, p.Name, p.Email, p.Department), p)
}

func (r *EmployeeProfileRepo) Upsert(ctx context.Context, p *models.EmployeeProfile) error {
	return scanEmployeeProfile(r.db.QueryRow(ctx, `
		INSERT INTO employee_profiles (user_id, name, email, department, designation, active)
		VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (user_id) DO UPDATE SET
			name=EXCLUDED.name, email=EXCLUDED.email,
			department=EXCLUDED.department, designation=EXCLUDED.designation,
			active=EXCLUDED.active, updated_at=now()
		RETURNING `+employeeProfileCols+`
	`, p.UserID, p.Name, p.Email, p.Department, p.Designation, p.Active), p)
}
