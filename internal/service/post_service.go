package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/davidc77/devhub/internal/auth"
	"github.com/davidc77/devhub/internal/domain"
	"github.com/davidc77/devhub/internal/repository"
)

var (
	ErrPostNotFound    = errors.New("post not found")
	ErrNotPostOwner    = errors.New("only the post owner can perform this action")
	ErrAlreadyLiked    = errors.New("post already liked")
	ErrNotLiked        = errors.New("post has not been liked yet")
	ErrCommentNotFound = errors.New("comment not found")
	ErrNotCommentOwner = errors.New("only the comment author can remove it")
)

// Notifier broadcasts feed events to connected clients.
type Notifier interface {
	NotifyNewPost(post *domain.Post)
	NotifyDeletedPost(postID uuid.UUID)
	NotifyLikes(postID uuid.UUID, likes []domain.Like)
	NotifyNewComment(comment *domain.Comment)
	NotifyDeletedComment(postID, commentID uuid.UUID)
}

type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
	notifier Notifier
}

func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

// SetNotifier sets the real-time notifier (optional dependency).
func (s *PostService) SetNotifier(n Notifier) {
	s.notifier = n
}

type CreatePostInput struct {
	Text string `json:"text"`
}

type CommentInput struct {
	Text string `json:"text"`
}

func (s *PostService) Create(ctx context.Context, userID uuid.UUID, input CreatePostInput) (*domain.Post, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	post := &domain.Post{
		ID:        uuid.New(),
		UserID:    userID,
		Text:      input.Text,
		Name:      user.Name,
		AvatarURL: user.AvatarURL,
		CreatedAt: time.Now(),
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("creating post: %w", err)
	}

	if s.notifier != nil {
		s.notifier.NotifyNewPost(post)
	}

	return post, nil
}

func (s *PostService) List(ctx context.Context) ([]domain.Post, error) {
	return s.postRepo.List(ctx)
}

func (s *PostService) GetByID(ctx context.Context, postID uuid.UUID) (*domain.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

func (s *PostService) Delete(ctx context.Context, userID, postID uuid.UUID) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if !auth.Authorize(userID, post.UserID, auth.ActionDelete) {
		return ErrNotPostOwner
	}

	if err := s.postRepo.Delete(ctx, postID); err != nil {
		return err
	}

	if s.notifier != nil {
		s.notifier.NotifyDeletedPost(postID)
	}

	return nil
}

// Like records the caller's like. A second like of the same post is a
// conflict, not a toggle: the store reports whether the insert changed
// anything and concurrent likes never lose updates.
func (s *PostService) Like(ctx context.Context, userID, postID uuid.UUID) ([]domain.Like, error) {
	if _, err := s.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	inserted, err := s.postRepo.AddLike(ctx, postID, userID)
	if err != nil {
		return nil, fmt.Errorf("adding like: %w", err)
	}
	if !inserted {
		return nil, ErrAlreadyLiked
	}

	likes, err := s.postRepo.ListLikes(ctx, postID)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.NotifyLikes(postID, likes)
	}

	return likes, nil
}

func (s *PostService) Unlike(ctx context.Context, userID, postID uuid.UUID) ([]domain.Like, error) {
	if _, err := s.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	removed, err := s.postRepo.RemoveLike(ctx, postID, userID)
	if err != nil {
		return nil, fmt.Errorf("removing like: %w", err)
	}
	if !removed {
		return nil, ErrNotLiked
	}

	likes, err := s.postRepo.ListLikes(ctx, postID)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.NotifyLikes(postID, likes)
	}

	return likes, nil
}

func (s *PostService) AddComment(ctx context.Context, userID, postID uuid.UUID, input CommentInput) ([]domain.Comment, error) {
	if _, err := s.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	comment := &domain.Comment{
		ID:        uuid.New(),
		PostID:    postID,
		UserID:    userID,
		Text:      input.Text,
		Name:      user.Name,
		AvatarURL: user.AvatarURL,
		CreatedAt: time.Now(),
	}

	if err := s.postRepo.AddComment(ctx, comment); err != nil {
		return nil, fmt.Errorf("adding comment: %w", err)
	}

	if s.notifier != nil {
		s.notifier.NotifyNewComment(comment)
	}

	return s.postRepo.ListComments(ctx, postID)
}

// RemoveComment deletes the comment identified by commentID. The comment is
// matched by its own id, not by scanning for the requester's comments.
func (s *PostService) RemoveComment(ctx context.Context, userID, postID, commentID uuid.UUID) ([]domain.Comment, error) {
	comment, err := s.postRepo.GetComment(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil || comment.PostID != postID {
		return nil, ErrCommentNotFound
	}
	if !auth.Authorize(userID, comment.UserID, auth.ActionDelete) {
		return nil, ErrNotCommentOwner
	}

	if err := s.postRepo.RemoveComment(ctx, commentID); err != nil {
		return nil, fmt.Errorf("removing comment: %w", err)
	}

	if s.notifier != nil {
		s.notifier.NotifyDeletedComment(postID, commentID)
	}

	return s.postRepo.ListComments(ctx, postID)
}
