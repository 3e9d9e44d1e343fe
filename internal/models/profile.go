package models

import "time"

const (
	DeptAdmissions = "admissions"
	DeptMarketing  = "marketing"
	DeptSupport    = "support"
	DeptLearning   = "learning"
)

// StudentProfile holds the application document a counsellor works from.
// At most one per user; created empty on first fetch and filled in by the
// student over time. Every field defaults to empty/false/empty list.
type StudentProfile struct {
	ID     string `json:"id"`
	UserID string `json:"user"`

	Name  string `json:"name"`
	Email string `json:"email"`

	Phone       string `json:"phone"`
	DateOfBirth string `json:"dateOfBirth"`
	Nationality string `json:"nationality"`
	PassportNo  string `json:"passportNumber"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Country     string `json:"country"`

	HighestQualification string `json:"highestQualification"`
	Institution          string `json:"institution"`
	GraduationYear       int    `json:"graduationYear"`
	GPA                  string `json:"gpa"`
	EnglishTest          string `json:"englishTest"` // IELTS/TOEFL/PTE/none
	EnglishScore         string `json:"englishScore"`

	PreferredCountries []string `json:"preferredCountries"`
	VisaType           string   `json:"visaType"`
	VisaStatus         string   `json:"visaStatus"`
	HasRefusal         bool     `json:"hasRefusal"` // prior visa refusal on record

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type EmployeeProfile struct {
	ID     string `json:"id"`
	UserID string `json:"user"`

	Name  string `json:"name"`
	Email string `json:"email"`

	Department  string `json:"department"` // admissions | marketing | support | learning
	Designation string `json:"designation"`
	Active      bool   `json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
