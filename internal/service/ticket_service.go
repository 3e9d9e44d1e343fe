package service

import (
	"context"
	"strings"

	"edudesk/internal/models"
	"edudesk/internal/repository"
)

// TicketService owns the support-ticket lifecycle and its comment thread.
// Identity is threaded in explicitly as (actorID, actorRole) rather than
// read from ambient request state.
type TicketService struct {
	tickets  repository.TicketRepository
	comments repository.CommentRepository
}

func NewTicketService(tickets repository.TicketRepository, comments repository.CommentRepository) *TicketService {
	return &TicketService{tickets: tickets, comments: comments}
}

// Create opens a ticket for the student. New tickets always start open and
// unassigned; the owning student is set once here and never changes.
func (s *TicketService) Create(ctx context.Context, studentID, title, description string) (*models.Ticket, error) {
	t := &models.Ticket{
		Student:     studentID,
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Status:      models.StatusOpen,
	}
	if err := s.tickets.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// UpdateStatus sets the status field unconditionally. There is no transition
// table: any of open/in-progress/closed may follow any other, so a closed
// ticket can be reopened.
func (s *TicketService) UpdateStatus(ctx context.Context, ticketID, status string) (*models.Ticket, error) {
	t, err := s.tickets.UpdateStatus(ctx, ticketID, status)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTicketNotFound
	}
	return t, nil
}

// Assign hands the ticket to an employee. The employee id is stored as
// given; it is not validated against the users table, so callers own the
// responsibility of supplying a real employee.
func (s *TicketService) Assign(ctx context.Context, ticketID, employeeID string) (*models.Ticket, error) {
	t, err := s.tickets.Assign(ctx, ticketID, employeeID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTicketNotFound
	}
	return t, nil
}

func (s *TicketService) StudentTickets(ctx context.Context, studentID string) ([]models.Ticket, error) {
	return s.tickets.ListByStudent(ctx, studentID)
}

func (s *TicketService) EmployeeTickets(ctx context.Context, employeeID string) ([]models.Ticket, error) {
	return s.tickets.ListByAssignee(ctx, employeeID)
}

func (s *TicketService) AllTickets(ctx context.Context) ([]models.Ticket, error) {
	return s.tickets.ListAll(ctx)
}

// AddComment appends to the ticket's thread. The ticket must exist
// (not-found wins over forbidden) and the actor must pass CanAccessTicket.
// The actor's role is stamped on the comment at post time. The parent
// ticket is left untouched: commenting never bumps its updated_at or status.
func (s *TicketService) AddComment(ctx context.Context, actorID, actorRole, ticketID, message string) (*models.TicketComment, error) {
	t, err := s.tickets.Get(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTicketNotFound
	}
	if err := CanAccessTicket(actorID, actorRole, t); err != nil {
		return nil, err
	}

	c := &models.TicketComment{
		TicketID: t.ID,
		UserID:   actorID,
		Role:     actorRole,
		Message:  strings.TrimSpace(message),
	}
	if err := s.comments.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// CommentsByTicket returns the thread oldest first. Read access mirrors
// write access exactly; there is no read-only observer role.
func (s *TicketService) CommentsByTicket(ctx context.Context, actorID, actorRole, ticketID string) ([]models.TicketComment, error) {
	t, err := s.tickets.Get(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTicketNotFound
	}
	if err := CanAccessTicket(actorID, actorRole, t); err != nil {
		return nil, err
	}
	return s.comments.ListByTicket(ctx, ticketID)
}
