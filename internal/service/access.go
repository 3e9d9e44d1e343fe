package service

import (
	"errors"

	"edudesk/internal/models"
)

var (
	ErrTicketNotFound = errors.New("ticket not found")
	ErrAccessDenied   = errors.New("access denied")
	ErrNotAssigned    = errors.New("ticket not assigned to you")
	ErrUserNotFound   = errors.New("user not found")
)

// CanAccessTicket decides whether the actor may read or write the ticket's
// comment thread. Students must own the ticket, employees must be its current
// assignee (an unassigned ticket denies every employee), admins may access
// any ticket. Callers must resolve the ticket first: existence is checked
// before authorization, so a missing ticket is not-found, never forbidden.
func CanAccessTicket(actorID, actorRole string, t *models.Ticket) error {
	switch actorRole {
	case models.RoleStudent:
		if t.Student != actorID {
			return ErrAccessDenied
		}
	case models.RoleEmployee:
		if t.AssignedTo != actorID {
			return ErrNotAssigned
		}
	case models.RoleAdmin:
		// unrestricted
	default:
		// route-level role gates keep other roles out; deny here as well
		return ErrAccessDenied
	}
	return nil
}
