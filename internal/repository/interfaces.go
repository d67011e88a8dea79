package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/davidc77/devhub/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ProfileRepository interface {
	Upsert(ctx context.Context, profile *domain.Profile) error
	GetByUser(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	List(ctx context.Context) ([]domain.Profile, error)
	DeleteByUser(ctx context.Context, userID uuid.UUID) error

	AddExperience(ctx context.Context, exp *domain.Experience) error
	// GetExperience returns the entry together with the id of the user
	// owning the profile it belongs to.
	GetExperience(ctx context.Context, id uuid.UUID) (*domain.Experience, uuid.UUID, error)
	RemoveExperience(ctx context.Context, id uuid.UUID) error

	AddEducation(ctx context.Context, edu *domain.Education) error
	GetEducation(ctx context.Context, id uuid.UUID) (*domain.Education, uuid.UUID, error)
	RemoveEducation(ctx context.Context, id uuid.UUID) error
}

type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	List(ctx context.Context) ([]domain.Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByUser(ctx context.Context, userID uuid.UUID) error

	// AddLike and RemoveLike are atomic: the store resolves concurrent
	// calls on the same (post, user) pair and reports whether this call
	// changed anything.
	AddLike(ctx context.Context, postID, userID uuid.UUID) (bool, error)
	RemoveLike(ctx context.Context, postID, userID uuid.UUID) (bool, error)
	ListLikes(ctx context.Context, postID uuid.UUID) ([]domain.Like, error)

	AddComment(ctx context.Context, comment *domain.Comment) error
	GetComment(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	RemoveComment(ctx context.Context, id uuid.UUID) error
	ListComments(ctx context.Context, postID uuid.UUID) ([]domain.Comment, error)
}
