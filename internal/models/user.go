package models

import "time"

const (
	RoleStudent  = "student"
	RoleEmployee = "employee"
	RoleAdmin    = "admin"
)

type User struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Role          string    `json:"role"` // student | employee | admin
	EmailVerified bool      `json:"isEmailVerified"`
	Active        bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
