package service

import (
	"context"
	"errors"
	"testing"

	"edudesk/internal/models"
)

func newProfileService() (*ProfileService, *fakeUserRepo, *fakeStudentProfileRepo, *fakeEmployeeProfileRepo) {
	ur := newFakeUserRepo()
	sr := newFakeStudentProfileRepo()
	er := newFakeEmployeeProfileRepo()
	return NewProfileService(ur, sr, er), ur, sr, er
}

func TestStudentProfileLazyCreate(t *testing.T) {
	svc, ur, sr, _ := newProfileService()
	ctx := context.Background()

	u, _ := ur.Create(ctx, "asha@example.com", "Asha", models.RoleStudent, "hash")

	p, err := svc.StudentProfile(ctx, u.ID)
	if err != nil {
		t.Fatalf("StudentProfile() error: %v", err)
	}
	if p.Name != "Asha" || p.Email != "asha@example.com" {
		t.Errorf("profile seeded with %q/%q, want user name/email", p.Name, p.Email)
	}
	if p.Phone != "" || p.HasRefusal || len(p.PreferredCountries) != 0 {
		t.Errorf("fresh profile not empty: %+v", p)
	}

	// second fetch reuses the row
	again, err := svc.StudentProfile(ctx, u.ID)
	if err != nil {
		t.Fatalf("second StudentProfile() error: %v", err)
	}
	if sr.creates != 1 {
		t.Errorf("creates = %d, want exactly 1", sr.creates)
	}
	if again.ID != p.ID {
		t.Errorf("second fetch returned a different row")
	}
}

func TestStudentProfileUnknownUser(t *testing.T) {
	svc, _, _, _ := newProfileService()

	if _, err := svc.StudentProfile(context.Background(), "missing"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("StudentProfile(missing) error = %v, want ErrUserNotFound", err)
	}
}

func TestSaveStudentProfileRoundTrip(t *testing.T) {
	svc, ur, _, _ := newProfileService()
	ctx := context.Background()

	u, _ := ur.Create(ctx, "asha@example.com", "Asha", models.RoleStudent, "hash")

	in := &models.StudentProfile{
		Name:               "Asha",
		Email:              "asha@example.com",
		Phone:              "+91 98x",
		Nationality:        "Indian",
		PreferredCountries: []string{"Canada", "Australia"},
		VisaStatus:         "applied",
		HasRefusal:         true,
	}
	if _, err := svc.SaveStudentProfile(ctx, u.ID, in); err != nil {
		t.Fatalf("SaveStudentProfile() error: %v", err)
	}

	got, err := svc.StudentProfile(ctx, u.ID)
	if err != nil {
		t.Fatalf("StudentProfile() error: %v", err)
	}
	if got.Phone != "+91 98x" || !got.HasRefusal || len(got.PreferredCountries) != 2 {
		t.Errorf("round trip lost fields: %+v", got)
	}
	if got.UserID != u.ID {
		t.Errorf("profile user = %q, want %q", got.UserID, u.ID)
	}
}

func TestEmployeeProfileDefaults(t *testing.T) {
	svc, ur, _, er := newProfileService()
	ctx := context.Background()

	u, _ := ur.Create(ctx, "mira@example.com", "Mira", models.RoleEmployee, "hash")

	p, err := svc.EmployeeProfile(ctx, u.ID)
	if err != nil {
		t.Fatalf("EmployeeProfile() error: %v", err)
	}
	if p.Department != models.DeptAdmissions {
		t.Errorf("department = %q, want default %q", p.Department, models.DeptAdmissions)
	}
	if !p.Active {
		t.Error("fresh employee profile inactive")
	}
	if er.creates != 1 {
		t.Errorf("creates = %d, want 1", er.creates)
	}
}

func TestSaveEmployeeProfileDefaultsDepartment(t *testing.T) {
	svc, ur, _, _ := newProfileService()
	ctx := context.Background()

	u, _ := ur.Create(ctx, "mira@example.com", "Mira", models.RoleEmployee, "hash")

	p, err := svc.SaveEmployeeProfile(ctx, u.ID, &models.EmployeeProfile{Designation: "Counsellor"})
	if err != nil {
		t.Fatalf("SaveEmployeeProfile() error: %v", err)
	}
	if p.Department != models.DeptAdmissions {
		t.Errorf("department = %q, want %q when omitted", p.Department, models.DeptAdmissions)
	}

	p, err = svc.SaveEmployeeProfile(ctx, u.ID, &models.EmployeeProfile{Department: models.DeptSupport, Designation: "Counsellor", Active: true})
	if err != nil {
		t.Fatalf("SaveEmployeeProfile() error: %v", err)
	}
	if p.Department != models.DeptSupport {
		t.Errorf("department = %q, want %q", p.Department, models.DeptSupport)
	}
}
