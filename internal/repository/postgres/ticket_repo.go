package postgres

import (
	"context"
	"time"

	"edudesk/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TicketRepo struct{ db *pgxpool.Pool }

func NewTicketRepo(db *pgxpool.Pool) *TicketRepo { return &TicketRepo{db: db} }

// -----------------------------------------------------------------------------
// Create / single fetch / field updates
// -----------------------------------------------------------------------------

func (r *TicketRepo) Create(ctx context.Context, t *models.Ticket) error {
	now := time.Now()
	return r.db.QueryRow(ctx, `
		INSERT INTO tickets (student_id, title, description, status, assigned_to, created_at, updated_at)
		VALUES ($1,$2,$3,$4,NULL,$5,$6)
		RETURNING id, created_at, updated_at
	`, t.Student, t.Title, t.Description, t.Status, now, now).
		Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

func (r *TicketRepo) Get(ctx context.Context, id string) (*models.Ticket, error) {
	var t models.Ticket
	err := r.db.QueryRow(ctx, `
		SELECT id, student_id, title, description, status,
		       COALESCE(assigned_to::text, ''), created_at, updated_at
		FROM tickets WHERE id=$1
	`, id).Scan(
		&t.ID, &t.Student, &t.Title, &t.Description, &t.Status,
		&t.AssignedTo, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

// UpdateStatus writes the status field unconditionally and returns the
// updated row, or (nil, nil) when the id matches no ticket.
func (r *TicketRepo) UpdateStatus(ctx context.Context, id, status string) (*models.Ticket, error) {
	var t models.Ticket
	err := r.db.QueryRow(ctx, `
		UPDATE tickets SET status=$1, updated_at=now()
		WHERE id=$2
		RETURNING id, student_id, title, description, status,
		          COALESCE(assigned_to::text, ''), created_at, updated_at
	`, status, id).Scan(
		&t.ID, &t.Student, &t.Title, &t.Description, &t.Status,
		&t.AssignedTo, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

// Assign points assigned_to at the given employee id. The id is stored as
// supplied; it is not checked against the users table.
func (r *TicketRepo) Assign(ctx context.Context, id, employeeID string) (*models.Ticket, error) {
	var t models.Ticket
	err := r.db.QueryRow(ctx, `
		UPDATE tickets SET assigned_to=NULLIF($1,'')::uuid, updated_at=now()
		WHERE id=$2
		RETURNING id, student_id, title, description, status,
		          COALESCE(assigned_to::text, ''), created_at, updated_at
	`, employeeID, id).Scan(
		&t.ID, &t.Student, &t.Title, &t.Description, &t.Status,
		&t.AssignedTo, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

// -----------------------------------------------------------------------------
// Listings, newest first; employee/admin views join the owning student
// -----------------------------------------------------------------------------

func (r *TicketRepo) ListByStudent(ctx context.Context, studentID string) ([]models.Ticket, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, student_id, title, description, status,
		       COALESCE(assigned_to::text, ''), created_at, updated_at
		FROM tickets
		WHERE student_id=$1
		ORDER BY created_at DESC
	`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Ticket
	for rows.Next() {
		var t models.Ticket
		if err := rows.Scan(
			&t.ID, &t.Student, &t.Title, &t.Description, &t.Status,
			&t.AssignedTo, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *TicketRepo) ListByAssignee(ctx context.Context, employeeID string) ([]models.Ticket, error) {
	rows, err := r.db.Query(ctx, `
		SELECT t.id, t.student_id, t.title, t.description, t.status,
		       COALESCE(t.assigned_to::text, ''), t.created_at, t.updated_at,
		       COALESCE(u.name, ''), COALESCE(u.email, '')
		FROM tickets t
		LEFT JOIN users u ON u.id = t.student_id
		WHERE t.assigned_to = $1
		ORDER BY t.created_at DESC
	`, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Ticket
	for rows.Next() {
		var t models.Ticket
		if err := rows.Scan(
			&t.ID, &t.Student, &t.Title, &t.Description, &t.Status,
			&t.AssignedTo, &t.CreatedAt, &t.UpdatedAt,
			&t.StudentName, &t.StudentEmail,
		); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *TicketRepo) ListAll(ctx context.Context) ([]models.Ticket, error) {
	rows, err := r.db.Query(ctx, `
		SELECT t.id, t.student_id, t.title, t.description, t.status,
		       COALESCE(t.assigned_to::text, ''), t.created_at, t.updated_at,
		       COALESCE(u.name, ''), COALESCE(u.email, ''), COALESCE(u.role, '')
		FROM tickets t
		LEFT JOIN users u ON u.id = t.student_id
		ORDER BY t.created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Ticket
	for rows.Next() {
		var t models.Ticket
		if err := rows.Scan(
			&t.ID, &t.Student, &t.Title, &t.Description, &t.Status,
			&t.AssignedTo, &t.CreatedAt, &t.UpdatedAt,
			&t.StudentName, &t.StudentEmail, &t.StudentRole,
		); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
