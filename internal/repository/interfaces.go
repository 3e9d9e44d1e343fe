package repository

import (
	"context"
	"errors"

	"edudesk/internal/models"
)

// Repositories return (nil, nil) when a lookup matches no row, so callers
// can tell absence apart from a storage failure.

// ErrDuplicateEmail is returned by UserRepository.Create when the email is
// already registered, so callers can treat it as a client error rather than
// a storage failure.
var ErrDuplicateEmail = errors.New("email already registered")

type UserRepository interface {
	Create(ctx context.Context, email, name, role, passwordHash string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, string /*passwordHash*/, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	List(ctx context.Context, role string, active *bool, limit, offset int) ([]models.User, int, error)
	SetActive(ctx context.Context, id string, active bool) (*models.User, error)
}

type StudentProfileRepository interface {
	GetByUser(ctx context.Context, userID string) (*models.StudentProfile, error)
	Create(ctx context.Context, p *models.StudentProfile) error
	Upsert(ctx context.Context, p *models.StudentProfile) error
}

type EmployeeProfileRepository interface {
	GetByUser(ctx context.Context, userID string) (*models.EmployeeProfile, error)
	Create(ctx context.Context, p *models.EmployeeProfile) error
	Upsert(ctx context.Context, p *models.EmployeeProfile) error
}

type TicketRepository interface {
	Create(ctx context.Context, t *models.Ticket) error
	Get(ctx context.Context, id string) (*models.Ticket, error)
	UpdateStatus(ctx context.Context, id, status string) (*models.Ticket, error)
	Assign(ctx context.Context, id, employeeID string) (*models.Ticket, error)
	ListByStudent(ctx context.Context, studentID string) ([]models.Ticket, error)
	ListByAssignee(ctx context.Context, employeeID string) ([]models.Ticket, error)
	ListAll(ctx context.Context) ([]models.Ticket, error)
}

type CommentRepository interface {
	Create(ctx context.Context, c *models.TicketComment) error
	ListByTicket(ctx context.Context, ticketID string) ([]models.TicketComment, error)
}
