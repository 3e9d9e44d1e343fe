package service

import (
	"context"

	"edudesk/internal/models"
	"edudesk/internal/repository"
)

type ProfileService struct {
	users     repository.UserRepository
	students  repository.StudentProfileRepository
	employees repository.EmployeeProfileRepository
}

func NewProfileService(
	users repository.UserRepository,
	students repository.StudentProfileRepository,
	employees repository.EmployeeProfileRepository,
) *ProfileService {
	return &ProfileService{users: users, students: students, employees: employees}
}

// StudentProfile returns the user's profile, creating an empty one seeded
// with the user's name/email on first fetch. At most one profile exists per
// user (unique user_id).
func (s *ProfileService) StudentProfile(ctx context.Context, userID string) (*models.StudentProfile, error) {
	p, err := s.students.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p != nil {
		return p, nil
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}

	p = &models.StudentProfile{UserID: u.ID, Name: u.Name, Email: u.Email}
	if err := s.students.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// SaveStudentProfile replaces the whole profile document for the user.
func (s *ProfileService) SaveStudentProfile(ctx context.Context, userID string, p *models.StudentProfile) (*models.StudentProfile, error) {
	p.UserID = userID
	if err := s.students.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// EmployeeProfile lazily creates with department defaulted to admissions.
func (s *ProfileService) EmployeeProfile(ctx context.Context, userID string) (*models.EmployeeProfile, error) {
	p, err := s.employees.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p != nil {
		return p, nil
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}

	p = &models.EmployeeProfile{
		UserID:     u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Department: models.DeptAdmissions,
	}
	if err := s.employees.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProfileService) SaveEmployeeProfile(ctx context.Context, userID string, p *models.EmployeeProfile) (*models.EmployeeProfile, error) {
	p.UserID = userID
	if p.Department == "" {
		p.Department = models.DeptAdmissions
	}
	if err := s.employees.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
