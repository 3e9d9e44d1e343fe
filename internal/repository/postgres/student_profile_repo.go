package postgres

import (
	"context"

	"edudesk/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type StudentProfileRepo struct{ db *pgxpool.Pool }

func NewStudentProfileRepo(db *pgxpool.Pool) *StudentProfileRepo {
	return &StudentProfileRepo{db: db}
}

const studentProfileCols = `
	id, user_id, name, email, phone, date_of_birth, nationality, passport_no,
	address, city, country, highest_qualification, institution, graduation_year,
	gpa, english_test, english_score, preferred_countries, visa_type, visa_status,
	has_refusal, created_at, updated_at`

func scanStudentProfile(row pgx.Row, p *models.StudentProfile) error {
	return row.Scan(
		&p.ID, &p.UserID, &p.Name, &p.Email, &p.Phone, &p.DateOfBirth,
		&p.Nationality, &p.PassportNo, &p.Address, &p.City, &p.Country,
		&p.HighestQualification, &p.Institution, &p.GraduationYear,
		&p.GPA, &p.EnglishTest, &p.EnglishScore, &p.PreferredCountries,
		&p.VisaType, &p.VisaStatus, &p.HasRefusal, &p.CreatedAt, &p.UpdatedAt,
	)
}

func (r *StudentProfileRepo) GetByUser(ctx context.Context, userID string) (*models.StudentProfile, error) {
	var p models.StudentProfile
	err := scanStudentProfile(r.db.QueryRow(ctx, `
		SELECT `+studentProfileCols+`
		FROM student_profiles WHERE user_id=$1
	`, userID), &p)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// Create inserts a fresh profile row; every unset field takes its column
// default. Used for the lazy create on first fetch.
func (r *StudentProfileRepo) Create(ctx context.Context, p *models.StudentProfile) error {
	return scanStudentProfile(r.db.QueryRow(ctx, `
		INSERT INTO student_profiles (user_id, name, email)
		VALUES ($1,$2,$3)
		RETURNING `+studentProfileCols+`
	`, p.UserID, p.Name, p.Email), p)
}

// Upsert replaces the whole document for the user, creating it if absent.
func (r *StudentProfileRepo) Upsert(ctx context.Context, p *models.StudentProfile) error {
	if p.PreferredCountries == nil {
		p.PreferredCountries = []string{}
	}
	return scanStudentProfile(r.db.QueryRow(ctx, `
		INSERT INTO student_profiles (
			user_id, name, email, phone, date_of_birth, nationality, passport_no,
			address, city, country, highest_qualification, institution,
			graduation_year, gpa, english_test, english_score, preferred_countries,
			visa_type, visa_status, has_refusal
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20)
		ON CONFLICT (user_id) DO UPDATE SET
			name=EXCLUDED.name, email=EXCLUDED.email, phone=EXCLUDED.phone,
			date_of_birth=EXCLUDED.date_of_birth, nationality=EXCLUDED.nationality,
			passport_no=EXCLUDED.passport_no, address=EXCLUDED.address,
			city=EXCLUDED.city, country=EXCLUDED.country,
			highest_qualification=EXCLUDED.highest_qualification,
			institution=EXCLUDED.institution, graduation_year=EXCLUDED.graduation_year,
			gpa=EXCLUDED.gpa, english_test=EXCLUDED.english_test,
			english_score=EXCLUDED.english_score,
			preferred_countries=EXCLUDED.preferred_countries,
			visa_type=EXCLUDED.visa_type, visa_status=EXCLUDED.visa_status,
			has_refusal=EXCLUDED.has_refusal, updated_at=now()
		RETURNING `+studentProfileCols+`
	`,
		p.UserID, p.Name, p.Email, p.Phone, p.DateOfBirth, p.Nationality,
		p.PassportNo, p.Address, p.City, p.Country, p.HighestQualification,
		p.Institution, p.GraduationYear, p.GPA, p.EnglishTest, p.EnglishScore,
		p.PreferredCountries, p.VisaType, p.VisaStatus, p.HasRefusal,
	), p)
}
