package service

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/davidc77/devhub/internal/domain"
)

// In-memory repository fakes backing the service tests. Likes are kept
// newest-first, mirroring the store's read ordering.

type memUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[uuid.UUID]*domain.User)}
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u := *user
	r.users[user.ID] = &u
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

type memProfileRepo struct {
	mu         sync.Mutex
	profiles   map[uuid.UUID]*domain.Profile // keyed by user id
	experience map[uuid.UUID]*domain.Experience
	education  map[uuid.UUID]*domain.Education
}

func newMemProfileRepo() *memProfileRepo {
	return &memProfileRepo{
		profiles:   make(map[uuid.UUID]*domain.Profile),
		experience: make(map[uuid.UUID]*domain.Experience),
		education:  make(map[uuid.UUID]*domain.Education),
	}
}

func (r *memProfileRepo) Upsert(_ context.Context, profile *domain.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *profile
	r.profiles[profile.UserID] = &cp
	return nil
}

func (r *memProfileRepo) GetByUser(_ context.Context, userID uuid.UUID) (*domain.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[userID]
	if !ok {
		return nil, nil
	}
	cp := *p
	cp.Experience = nil
	cp.Education = nil
	for _, e := range r.experience {
		if e.ProfileID == p.ID {
			cp.Experience = append(cp.Experience, *e)
		}
	}
	for _, e := range r.education {
		if e.ProfileID == p.ID {
			cp.Education = append(cp.Education, *e)
		}
	}
	return &cp, nil
}

func (r *memProfileRepo) List(_ context.Context) ([]domain.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Profile
	for _, p := range r.profiles {
		out = append(out, *p)
	}
	return out, nil
}

func (r *memProfileRepo) DeleteByUser(_ context.Context, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.profiles[userID]; ok {
		for id, e := range r.experience {
			if e.ProfileID == p.ID {
				delete(r.experience, id)
			}
		}
		for id, e := range r.education {
			if e.ProfileID == p.ID {
				delete(r.education, id)
			}
		}
		delete(r.profiles, userID)
	}
	return nil
}

func (r *memProfileRepo) AddExperience(_ context.Context, exp *domain.Experience) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *exp
	r.experience[exp.ID] = &cp
	return nil
}

func (r *memProfileRepo) GetExperience(_ context.Context, id uuid.UUID) (*domain.Experience, uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	exp, ok := r.experience[id]
	if !ok {
		return nil, uuid.Nil, nil
	}
	cp := *exp
	return &cp, r.ownerOf(exp.ProfileID), nil
}

func (r *memProfileRepo) RemoveExperience(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.experience, id)
	return nil
}

func (r *memProfileRepo) AddEducation(_ context.Context, edu *domain.Education) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *edu
	r.education[edu.ID] = &cp
	return nil
}

func (r *memProfileRepo) GetEducation(_ context.Context, id uuid.UUID) (*domain.Education, uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	edu, ok := r.education[id]
	if !ok {
		return nil, uuid.Nil, nil
	}
	cp := *edu
	return &cp, r.ownerOf(edu.ProfileID), nil
}

func (r *memProfileRepo) RemoveEducation(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.education, id)
	return nil
}

func (r *memProfileRepo) ownerOf(profileID uuid.UUID) uuid.UUID {
	for _, p := range r.profiles {
		if p.ID == profileID {
			return p.UserID
		}
	}
	return uuid.Nil
}

type memPostRepo struct {
	mu       sync.Mutex
	posts    map[uuid.UUID]*domain.Post
	likes    map[uuid.UUID][]domain.Like // newest first
	comments map[uuid.UUID]*domain.Comment
}

func newMemPostRepo() *memPostRepo {
	return &memPostRepo{
		posts:    make(map[uuid.UUID]*domain.Post),
		likes:    make(map[uuid.UUID][]domain.Like),
		comments: make(map[uuid.UUID]*domain.Comment),
	}
}

func (r *memPostRepo) Create(_ context.Context, post *domain.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *post
	r.posts[post.ID] = &cp
	return nil
}

func (r *memPostRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	r.mu.Lock()
	p, ok := r.posts[id]
	if !ok {
		r.mu.Unlock()
		return nil, nil
	}
	cp := *p
	r.mu.Unlock()

	var err error
	if cp.Likes, err = r.ListLikes(ctx, id); err != nil {
		return nil, err
	}
	if cp.Comments, err = r.ListComments(ctx, id); err != nil {
		return nil, err
	}
	return &cp, nil
}

func (r *memPostRepo) List(_ context.Context) ([]domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Post
	for _, p := range r.posts {
		out = append(out, *p)
	}
	return out, nil
}

func (r *memPostRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.posts, id)
	delete(r.likes, id)
	for cid, c := range r.comments {
		if c.PostID == id {
			delete(r.comments, cid)
		}
	}
	return nil
}

func (r *memPostRepo) DeleteByUser(_ context.Context, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, p := range r.posts {
		if p.UserID == userID {
			delete(r.posts, id)
			delete(r.likes, id)
		}
	}
	for cid, c := range r.comments {
		if c.UserID == userID {
			delete(r.comments, cid)
		}
	}
	for pid, likes := range r.likes {
		kept := likes[:0]
		for _, l := range likes {
			if l.UserID != userID {
				kept = append(kept, l)
			}
		}
		r.likes[pid] = kept
	}
	return nil
}

func (r *memPostRepo) AddLike(_ context.Context, postID, userID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.likes[postID] {
		if l.UserID == userID {
			return false, nil
		}
	}
	r.likes[postID] = append([]domain.Like{{UserID: userID}}, r.likes[postID]...)
	return true, nil
}

func (r *memPostRepo) RemoveLike(_ context.Context, postID, userID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	likes := r.likes[postID]
	for i, l := range likes {
		if l.UserID == userID {
			r.likes[postID] = append(likes[:i:i], likes[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *memPostRepo) ListLikes(_ context.Context, postID uuid.UUID) ([]domain.Like, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Like, len(r.likes[postID]))
	copy(out, r.likes[postID])
	return out, nil
}

func (r *memPostRepo) AddComment(_ context.Context, comment *domain.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *comment
	r.comments[comment.ID] = &cp
	return nil
}

func (r *memPostRepo) GetComment(_ context.Context, id uuid.UUID) (*domain.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.comments[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memPostRepo) RemoveComment(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.comments, id)
	return nil
}

func (r *memPostRepo) ListComments(_ context.Context, postID uuid.UUID) ([]domain.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Comment
	for _, c := range r.comments {
		if c.PostID == postID {
			out = append(out, *c)
		}
	}
	return out, nil
}
