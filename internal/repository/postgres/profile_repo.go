package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/davidc77/devhub/internal/domain"
)

type ProfileRepo struct {
	pool *pgxpool.Pool
}

func NewProfileRepo(pool *pgxpool.Pool) *ProfileRepo {
	return &ProfileRepo{pool: pool}
}

const profileColumns = `
	p.id, p.user_id, p.company, p.website, p.location, p.bio, p.status, p.skills,
	p.social_youtube, p.social_twitter, p.social_facebook, p.social_linkedin, p.social_instagram,
	p.created_at, p.updated_at, u.name, u.avatar_url`

func (r *ProfileRepo) Upsert(ctx context.Context, profile *domain.Profile) error {
	query := `
		INSERT INTO profiles (id, user_id, company, website, location, bio, status, skills,
			social_youtube, social_twitter, social_facebook, social_linkedin, social_instagram,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (user_id) DO UPDATE SET
			company = EXCLUDED.company,
			website = EXCLUDED.website,
			location = EXCLUDED.location,
			bio = EXCLUDED.bio,
			status = EXCLUDED.status,
			skills = EXCLUDED.skills,
			social_youtube = EXCLUDED.social_youtube,
			social_twitter = EXCLUDED.social_twitter,
			social_facebook = EXCLUDED.social_facebook,
			social_linkedin = EXCLUDED.social_linkedin,
			social_instagram = EXCLUDED.social_instagram,
			updated_at = EXCLUDED.updated_at`

	_, err := r.pool.Exec(ctx, query,
		profile.ID, profile.UserID, profile.Company, profile.Website, profile.Location,
		profile.Bio, profile.Status, profile.Skills,
		profile.Social.YouTube, profile.Social.Twitter, profile.Social.Facebook,
		profile.Social.LinkedIn, profile.Social.Instagram,
		profile.CreatedAt, profile.UpdatedAt,
	)
	return err
}

func (r *ProfileRepo) GetByUser(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + `
		FROM profiles p JOIN users u ON p.user_id = u.id
		WHERE p.user_id = $1`

	var p domain.Profile
	err := r.scanProfile(r.pool.QueryRow(ctx, query, userID), &p)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := r.loadEntries(ctx, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProfileRepo) List(ctx context.Context) ([]domain.Profile, error) {
	query := `SELECT ` + profileColumns + `
		FROM profiles p JOIN users u ON p.user_id = u.id
		ORDER BY p.created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []domain.Profile
	for rows.Next() {
		var p domain.Profile
		if err := r.scanProfile(rows, &p); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

func (r *ProfileRepo) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM profiles WHERE user_id = $1`, userID)
	return err
}

func (r *ProfileRepo) AddExperience(ctx context.Context, exp *domain.Experience) error {
	query := `
		INSERT INTO profile_experience (id, profile_id, title, company, location,
			date_from, date_to, current, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.pool.Exec(ctx, query,
		exp.ID, exp.ProfileID, exp.Title, exp.Company, exp.Location,
		exp.From, exp.To, exp.Current, exp.Description, exp.CreatedAt,
	)
	return err
}

func (r *ProfileRepo) GetExperience(ctx context.Context, id uuid.UUID) (*domain.Experience, uuid.UUID, error) {
	query := `
		SELECT e.id, e.profile_id, e.title, e.company, e.location,
			e.date_from, e.date_to, e.current, e.description, e.created_at, p.user_id
		FROM profile_experience e JOIN profiles p ON e.profile_id = p.id
		WHERE e.id = $1`

	var exp domain.Experience
	var ownerID uuid.UUID
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&exp.ID, &exp.ProfileID, &exp.Title, &exp.Company, &exp.Location,
		&exp.From, &exp.To, &exp.Current, &exp.Description, &exp.CreatedAt, &ownerID,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, uuid.Nil, nil
	}
	if err != nil {
		return nil, uuid.Nil, err
	}
	return &exp, ownerID, nil
}

func (r *ProfileRepo) RemoveExperience(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM profile_experience WHERE id = $1`, id)
	return err
}

func (r *ProfileRepo) AddEducation(ctx context.Context, edu *domain.Education) error {
	query := `
		INSERT INTO profile_education (id, profile_id, school, degree, field_of_study,
			date_from, date_to, current, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.pool.Exec(ctx, query,
		edu.ID, edu.ProfileID, edu.School, edu.Degree, edu.FieldOfStudy,
		edu.From, edu.To, edu.Current, edu.Description, edu.CreatedAt,
	)
	return err
}

func (r *ProfileRepo) GetEducation(ctx context.Context, id uuid.UUID) (*domain.Education, uuid.UUID, error) {
	query := `
		SELECT e.id, e.profile_id, e.school, e.degree, e.field_of_study,
			e.date_from, e.date_to, e.current, e.description, e.created_at, p.user_id
		FROM profile_education e JOIN profiles p ON e.profile_id = p.id
		WHERE e.id = $1`

	var edu domain.Education
	var ownerID uuid.UUID
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&edu.ID, &edu.ProfileID, &edu.School, &edu.Degree, &edu.FieldOfStudy,
		&edu.From, &edu.To, &edu.Current, &edu.Description, &edu.CreatedAt, &ownerID,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, uuid.Nil, nil
	}
	if err != nil {
		return nil, uuid.Nil, err
	}
	return &edu, ownerID, nil
}

func (r *ProfileRepo) RemoveEducation(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM profile_education WHERE id = $1`, id)
	return err
}

type pgxRow interface {
	Scan(dest ...any) error
}

func (r *ProfileRepo) scanProfile(row pgxRow, p *domain.Profile) error {
	return row.Scan(
		&p.ID, &p.UserID, &p.Company, &p.Website, &p.Location, &p.Bio,
		&p.Status, &p.Skills,
		&p.Social.YouTube, &p.Social.Twitter, &p.Social.Facebook,
		&p.Social.LinkedIn, &p.Social.Instagram,
		&p.CreatedAt, &p.UpdatedAt, &p.UserName, &p.UserAvatarURL,
	)
}

// loadEntries fills experience and education, newest first.
func (r *ProfileRepo) loadEntries(ctx context.Context, p *domain.Profile) error {
	expQuery := `
		SELECT id, profile_id, title, company, location, date_from, date_to, current, description, created_at
		FROM profile_experience WHERE profile_id = $1 ORDER BY date_from DESC`

	rows, err := r.pool.Query(ctx, expQuery, p.ID)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var exp domain.Experience
		if err := rows.Scan(
			&exp.ID, &exp.ProfileID, &exp.Title, &exp.Company, &exp.Location,
			&exp.From, &exp.To, &exp.Current, &exp.Description, &exp.CreatedAt,
		); err != nil {
			return err
		}
		p.Experience = append(p.Experience, exp)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	eduQuery := `
		SELECT id, profile_id, school, degree, field_of_study, date_from, date_to, current, description, created_at
		FROM profile_education WHERE profile_id = $1 ORDER BY date_from DESC`

	rows, err = r.pool.Query(ctx, eduQuery, p.ID)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var edu domain.Education
		if err := rows.Scan(
			&edu.ID, &edu.ProfileID, &edu.School, &edu.Degree, &edu.FieldOfStudy,
			&edu.From, &edu.To, &edu.Current, &edu.Description, &edu.CreatedAt,
		); err != nil {
			return err
		}
		p.Education = append(p.Education, edu)
	}
	return rows.Err()
}
