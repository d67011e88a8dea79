package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/davidc77/devhub/internal/auth"
	"github.com/davidc77/devhub/internal/domain"
	"github.com/davidc77/devhub/internal/repository"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrEntryNotFound   = errors.New("profile entry not found")
	ErrNotEntryOwner   = errors.New("only the entry owner can remove it")
)

type ProfileService struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
	postRepo    repository.PostRepository
}

func NewProfileService(
	profileRepo repository.ProfileRepository,
	userRepo repository.UserRepository,
	postRepo repository.PostRepository,
) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		postRepo:    postRepo,
	}
}

type UpsertProfileInput struct {
	Company   string `json:"company"`
	Website   string `json:"website"`
	Location  string `json:"location"`
	Bio       string `json:"bio"`
	Status    string `json:"status"`
	Skills    string `json:"skills"`
	YouTube   string `json:"youtube"`
	Twitter   string `json:"twitter"`
	Facebook  string `json:"facebook"`
	LinkedIn  string `json:"linkedin"`
	Instagram string `json:"instagram"`
}

type ExperienceInput struct {
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location"`
	From        time.Time  `json:"from"`
	To          *time.Time `json:"to,omitempty"`
	Current     bool       `json:"current"`
	Description string     `json:"description"`
}

type EducationInput struct {
	School       string     `json:"school"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"field_of_study"`
	From         time.Time  `json:"from"`
	To           *time.Time `json:"to,omitempty"`
	Current      bool       `json:"current"`
	Description  string     `json:"description"`
}

func (s *ProfileService) GetMine(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	return s.getByUser(ctx, userID)
}

func (s *ProfileService) GetByUser(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	return s.getByUser(ctx, userID)
}

func (s *ProfileService) getByUser(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	profile, err := s.profileRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

func (s *ProfileService) List(ctx context.Context) ([]domain.Profile, error) {
	return s.profileRepo.List(ctx)
}

// Upsert creates the caller's profile or replaces its fields if one exists.
// Skills arrive as a comma-separated string and are stored as a list.
func (s *ProfileService) Upsert(ctx context.Context, userID uuid.UUID, input UpsertProfileInput) (*domain.Profile, error) {
	existing, err := s.profileRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	profile := &domain.Profile{
		ID:        uuid.New(),
		UserID:    userID,
		Status:    input.Status,
		Skills:    splitSkills(input.Skills),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if existing != nil {
		profile.ID = existing.ID
		profile.CreatedAt = existing.CreatedAt
	}

	profile.Company = optional(input.Company)
	profile.Website = optional(input.Website)
	profile.Location = optional(input.Location)
	profile.Bio = optional(input.Bio)
	profile.Social = domain.Social{
		YouTube:   optional(input.YouTube),
		Twitter:   optional(input.Twitter),
		Facebook:  optional(input.Facebook),
		LinkedIn:  optional(input.LinkedIn),
		Instagram: optional(input.Instagram),
	}

	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("upserting profile: %w", err)
	}

	return s.getByUser(ctx, userID)
}

func (s *ProfileService) AddExperience(ctx context.Context, userID uuid.UUID, input ExperienceInput) (*domain.Profile, error) {
	profile, err := s.getByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	exp := &domain.Experience{
		ID:          uuid.New(),
		ProfileID:   profile.ID,
		Title:       input.Title,
		Company:     input.Company,
		Location:    optional(input.Location),
		From:        input.From,
		To:          input.To,
		Current:     input.Current,
		Description: optional(input.Description),
		CreatedAt:   time.Now(),
	}

	if err := s.profileRepo.AddExperience(ctx, exp); err != nil {
		return nil, fmt.Errorf("adding experience: %w", err)
	}

	return s.getByUser(ctx, userID)
}

// RemoveExperience deletes the entry with the given id. The entry is looked
// up by its own id, never by position, so a stale or foreign id can not
// remove the wrong element.
func (s *ProfileService) RemoveExperience(ctx context.Context, userID, expID uuid.UUID) (*domain.Profile, error) {
	exp, ownerID, err := s.profileRepo.GetExperience(ctx, expID)
	if err != nil {
		return nil, err
	}
	if exp == nil {
		return nil, ErrEntryNotFound
	}
	if !auth.Authorize(userID, ownerID, auth.ActionDelete) {
		return nil, ErrNotEntryOwner
	}

	if err := s.profileRepo.RemoveExperience(ctx, expID); err != nil {
		return nil, fmt.Errorf("removing experience: %w", err)
	}

	return s.getByUser(ctx, userID)
}

func (s *ProfileService) AddEducation(ctx context.Context, userID uuid.UUID, input EducationInput) (*domain.Profile, error) {
	profile, err := s.getByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	edu := &domain.Education{
		ID:           uuid.New(),
		ProfileID:    profile.ID,
		School:       input.School,
		Degree:       input.Degree,
		FieldOfStudy: input.FieldOfStudy,
		From:         input.From,
		To:           input.To,
		Current:      input.Current,
		Description:  optional(input.Description),
		CreatedAt:    time.Now(),
	}

	if err := s.profileRepo.AddEducation(ctx, edu); err != nil {
		return nil, fmt.Errorf("adding education: %w", err)
	}

	return s.getByUser(ctx, userID)
}

func (s *ProfileService) RemoveEducation(ctx context.Context, userID, eduID uuid.UUID) (*domain.Profile, error) {
	edu, ownerID, err := s.profileRepo.GetEducation(ctx, eduID)
	if err != nil {
		return nil, err
	}
	if edu == nil {
		return nil, ErrEntryNotFound
	}
	if !auth.Authorize(userID, ownerID, auth.ActionDelete) {
		return nil, ErrNotEntryOwner
	}

	if err := s.profileRepo.RemoveEducation(ctx, eduID); err != nil {
		return nil, fmt.Errorf("removing education: %w", err)
	}

	return s.getByUser(ctx, userID)
}

// DeleteAccount removes the caller's posts, comments, likes, profile, and
// user record. Posts go first so nothing is left pointing at a gone user.
func (s *ProfileService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	if err := s.postRepo.DeleteByUser(ctx, userID); err != nil {
		return fmt.Errorf("deleting posts: %w", err)
	}
	if err := s.profileRepo.DeleteByUser(ctx, userID); err != nil {
		return fmt.Errorf("deleting profile: %w", err)
	}
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}
	return nil
}

func splitSkills(skills string) []string {
	parts := strings.Split(skills, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
