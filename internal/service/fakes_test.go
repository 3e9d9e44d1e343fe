package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"edudesk/internal/models"
	"edudesk/internal/repository"
)

var errStorage = errors.New("storage offline")

// fakeTicketRepo keeps tickets in insertion order so "newest first" listings
// are deterministic without depending on wall-clock resolution.
type fakeTicketRepo struct {
	tickets []*models.Ticket
	failAll bool
}

func (f *fakeTicketRepo) find(id string) *models.Ticket {
	for _, t := range f.tickets {
		if t.ID == id {
			return t
		}
	}
	return nil
}

func (f *fakeTicketRepo) Create(ctx context.Context, t *models.Ticket) error {
	if f.failAll {
		return errStorage
	}
	t.ID = uuid.NewString()
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	cp := *t
	f.tickets = append(f.tickets, &cp)
	return nil
}

func (f *fakeTicketRepo) Get(ctx context.Context, id string) (*models.Ticket, error) {
	if f.failAll {
		return nil, errStorage
	}
	t := f.find(id)
	if t == nil {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (f *fakeTicketRepo) UpdateStatus(ctx context.Context, id, status string) (*models.Ticket, error) {
	if f.failAll {
		return nil, errStorage
	}
	t := f.find(id)
	if t == nil {
		return nil, nil
	}
	t.Status = status
	t.UpdatedAt = time.Now()
	cp := *t
	return &cp, nil
}

func (f *fakeTicketRepo) Assign(ctx context.Context, id, employeeID string) (*models.Ticket, error) {
	if f.failAll {
		return nil, errStorage
	}
	t := f.find(id)
	if t == nil {
		return nil, nil
	}
	t.AssignedTo = employeeID
	t.UpdatedAt = time.Now()
	cp := *t
	return &cp, nil
}

func (f *fakeTicketRepo) ListByStudent(ctx context.Context, studentID string) ([]models.Ticket, error) {
	if f.failAll {
		return nil, errStorage
	}
	var out []models.Ticket
	for i := len(f.tickets) - 1; i >= 0; i-- {
		if f.tickets[i].Student == studentID {
			out = append(out, *f.tickets[i])
		}
	}
	return out, nil
}

func (f *fakeTicketRepo) ListByAssignee(ctx context.Context, employeeID string) ([]models.Ticket, error) {
	if f.failAll {
		return nil, errStorage
	}
	var out []models.Ticket
	for i := len(f.tickets) - 1; i >= 0; i-- {
		if f.tickets[i].AssignedTo == employeeID {
			out = append(out, *f.tickets[i])
		}
	}
	return out, nil
}

func (f *fakeTicketRepo) ListAll(ctx context.Context) ([]models.Ticket, error) {
	if f.failAll {
		return nil, errStorage
	}
	var out []models.Ticket
	for i := len(f.tickets) - 1; i >= 0; i-- {
		out = append(out, *f.tickets[i])
	}
	return out, nil
}

type fakeCommentRepo struct {
	comments []models.TicketComment
	failAll  bool
}

func (f *fakeCommentRepo) Create(ctx context.Context, c *models.TicketComment) error {
	if f.failAll {
		return errStorage
	}
	c.ID = uuid.NewString()
	c.CreatedAt = time.Now()
	f.comments = append(f.comments, *c)
	return nil
}

func (f *fakeCommentRepo) ListByTicket(ctx context.Context, ticketID string) ([]models.TicketComment, error) {
	if f.failAll {
		return nil, errStorage
	}
	var out []models.TicketComment
	for _, c := range f.comments {
		if c.TicketID == ticketID {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	users  []*models.User
	hashes map[string]string // user id -> password hash
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{hashes: map[string]string{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, email, name, role, passwordHash string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return nil, repository.ErrDuplicateEmail
		}
	}
	u := &models.User{
		ID:        uuid.NewString(),
		Email:     email,
		Name:      name,
		Role:      role,
		Active:    true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	f.users = append(f.users, u)
	f.hashes[u.ID] = passwordHash
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, string, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, f.hashes[u.ID], nil
		}
	}
	return nil, "", nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) List(ctx context.Context, role string, active *bool, limit, offset int) ([]models.User, int, error) {
	var out []models.User
	for _, u := range f.users {
		if role != "" && u.Role != role {
			continue
		}
		if active != nil && u.Active != *active {
			continue
		}
		out = append(out, *u)
	}
	return out, len(out), nil
}

func (f *fakeUserRepo) SetActive(ctx context.Context, id string, active bool) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			u.Active = active
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

type fakeStudentProfileRepo struct {
	byUser  map[string]*models.StudentProfile
	creates int
}

func newFakeStudentProfileRepo() *fakeStudentProfileRepo {
	return &fakeStudentProfileRepo{byUser: map[string]*models.StudentProfile{}}
}

func (f *fakeStudentProfileRepo) GetByUser(ctx context.Context, userID string) (*models.StudentProfile, error) {
	p, ok := f.byUser[userID]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeStudentProfileRepo) Create(ctx context.Context, p *models.StudentProfile) error {
	f.creates++
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	if p.PreferredCountries == nil {
		p.PreferredCountries = []string{}
	}
	cp := *p
	f.byUser[p.UserID] = &cp
	return nil
}

func (f *fakeStudentProfileRepo) Upsert(ctx context.Context, p *models.StudentProfile) error {
	if old, ok := f.byUser[p.UserID]; ok {
		p.ID = old.ID
		p.CreatedAt = old.CreatedAt
	} else {
		p.ID = uuid.NewString()
		p.CreatedAt = time.Now()
	}
	p.UpdatedAt = time.Now()
	cp := *p
	f.byUser[p.UserID] = &cp
	return nil
}

type fakeEmployeeProfileRepo struct {
	byUser  map[string]*models.EmployeeProfile
	creates int
}

func newFakeEmployeeProfileRepo() *fakeEmployeeProfileRepo {
	return &fakeEmployeeProfileRepo{byUser: map[string]*models.EmployeeProfile{}}
}

func (f *fakeEmployeeProfileRepo) GetByUser(ctx context.Context, userID string) (*models.EmployeeProfile, error) {
	p, ok := f.byUser[userID]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeEmployeeProfileRepo) Create(ctx context.Context, p *models.EmployeeProfile) error {
	f.creates++
	p.ID = uuid.NewString()
	p.Active = true
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	cp := *p
	f.byUser[p.UserID] = &cp
	return nil
}

func (f *fakeEmployeeProfileRepo) Upsert(ctx context.Context, p *models.EmployeeProfile) error {
	if old, ok := f.byUser[p.UserID]; ok {
		p.ID = old.ID
		p.CreatedAt = old.CreatedAt
	} else {
		p.ID = uuid.NewString()
		p.CreatedAt = time.Now()
	}
	p.UpdatedAt = time.Now()
	cp := *p
	f.byUser[p.UserID] = &cp
	return nil
}
