package models

import "time"

const (
	StatusOpen       = "open"
	StatusInProgress = "in-progress"
	StatusClosed     = "closed"
)

type Ticket struct {
	ID          string    `json:"id"`
	Student     string    `json:"student"` // owning student's user id, set once at creation
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	AssignedTo  string    `json:"assignedTo,omitempty"` // empty = unassigned
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// Populated by list joins for display.
	StudentName  string `json:"studentName,omitempty"`
	StudentEmail string `json:"studentEmail,omitempty"`
	StudentRole  string `json:"studentRole,omitempty"`
}

// TicketComment is an append-only entry in a ticket's thread. Role is a
// snapshot of the commenter's role at post time; it is stored, not derived,
// so historic comments stay stable if the user's role later changes.
type TicketComment struct {
	ID        string    `json:"id"`
	TicketID  string    `json:"ticketId"`
	UserID    string    `json:"user"`
	Role      string    `json:"role"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`

	UserName  string `json:"userName,omitempty"`
	UserEmail string `json:"userEmail,omitempty"`
}
