package service

import (
	"testing"

	"edudesk/internal/models"
)

func TestCanAccessTicket(t *testing.T) {
	ticket := &models.Ticket{
		ID:         "t1",
		Student:    "stu-1",
		AssignedTo: "emp-1",
	}
	unassigned := &models.Ticket{
		ID:      "t2",
		Student: "stu-1",
	}

	tests := []struct {
		name    string
		actorID string
		role    string
		ticket  *models.Ticket
		want    error
	}{
		{"owning student", "stu-1", models.RoleStudent, ticket, nil},
		{"other student", "stu-2", models.RoleStudent, ticket, ErrAccessDenied},
		{"assigned employee", "emp-1", models.RoleEmployee, ticket, nil},
		{"other employee", "emp-2", models.RoleEmployee, ticket, ErrNotAssigned},
		{"employee on unassigned ticket", "emp-1", models.RoleEmployee, unassigned, ErrNotAssigned},
		{"admin on any ticket", "adm-1", models.RoleAdmin, ticket, nil},
		{"admin on unassigned ticket", "adm-1", models.RoleAdmin, unassigned, nil},
		{"unknown role", "x-1", "guest", ticket, ErrAccessDenied},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanAccessTicket(tc.actorID, tc.role, tc.ticket); got != tc.want {
				t.Fatalf("CanAccessTicket(%q, %q) = %v, want %v", tc.actorID, tc.role, got, tc.want)
			}
		})
	}
}
