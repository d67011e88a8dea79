package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidc77/devhub/internal/domain"
)

func seedUser(t *testing.T, users *memUserRepo, name string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	err := users.Create(context.Background(), &domain.User{
		ID:        id,
		Email:     name + "@example.com",
		Name:      name,
		AvatarURL: "https://www.gravatar.com/avatar/x",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	})
	require.NoError(t, err)
	return id
}

func TestCreatePostSnapshotsAuthor(t *testing.T) {
	t.Parallel()

	users := newMemUserRepo()
	posts := newMemPostRepo()
	svc := NewPostService(posts, users)
	u1 := seedUser(t, users, "ada")

	post, err := svc.Create(context.Background(), u1, CreatePostInput{Text: "hello world"})
	require.NoError(t, err)
	assert.Equal(t, u1, post.UserID)
	assert.Equal(t, "ada", post.Name)
	assert.NotEqual(t, uuid.Nil, post.ID)

	_, err = svc.Create(context.Background(), uuid.New(), CreatePostInput{Text: "ghost"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDeletePostOwnerOnly(t *testing.T) {
	t.Parallel()

	users := newMemUserRepo()
	posts := newMemPostRepo()
	svc := NewPostService(posts, users)
	u1 := seedUser(t, users, "ada")
	u2 := seedUser(t, users, "grace")

	post, err := svc.Create(context.Background(), u1, CreatePostInput{Text: "mine"})
	require.NoError(t, err)

	err = svc.Delete(context.Background(), u2, post.ID)
	assert.ErrorIs(t, err, ErrNotPostOwner)

	// The post survives the forbidden attempt.
	got, err := svc.GetByID(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, post.ID, got.ID)

	require.NoError(t, svc.Delete(context.Background(), u1, post.ID))
	_, err = svc.GetByID(context.Background(), post.ID)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestLikeIdempotence(t *testing.T) {
	t.Parallel()

	users := newMemUserRepo()
	posts := newMemPostRepo()
	svc := NewPostService(posts, users)
	u1 := seedUser(t, users, "ada")

	post, err := svc.Create(context.Background(), u1, CreatePostInput{Text: "like me"})
	require.NoError(t, err)

	likes, err := svc.Like(context.Background(), u1, post.ID)
	require.NoError(t, err)
	require.Len(t, likes, 1)
	assert.Equal(t, u1, likes[0].UserID)

	_, err = svc.Like(context.Background(), u1, post.ID)
	assert.ErrorIs(t, err, ErrAlreadyLiked)

	// The first like is still the only one.
	got, err := svc.GetByID(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Len(t, got.Likes, 1)
}

func TestLikeUnlikeRoundTrip(t *testing.T) {
	t.Parallel()

	users := newMemUserRepo()
	posts := newMemPostRepo()
	svc := NewPostService(posts, users)
	u1 := seedUser(t, users, "ada")
	u2 := seedUser(t, users, "grace")
	u3 := seedUser(t, users, "edsger")

	post, err := svc.Create(context.Background(), u1, CreatePostInput{Text: "popular"})
	require.NoError(t, err)

	for _, u := range []uuid.UUID{u1, u2, u3} {
		_, err := svc.Like(context.Background(), u, post.ID)
		require.NoError(t, err)
	}

	// Unliking u2 removes exactly that entry, order of the rest intact.
	likes, err := svc.Unlike(context.Background(), u2, post.ID)
	require.NoError(t, err)
	require.Len(t, likes, 2)
	assert.Equal(t, u3, likes[0].UserID)
	assert.Equal(t, u1, likes[1].UserID)

	_, err = svc.Unlike(context.Background(), u2, post.ID)
	assert.ErrorIs(t, err, ErrNotLiked)
}

func TestUnlikeWithoutLike(t *testing.T) {
	t.Parallel()

	users := newMemUserRepo()
	posts := newMemPostRepo()
	svc := NewPostService(posts, users)
	u1 := seedUser(t, users, "ada")

	post, err := svc.Create(context.Background(), u1, CreatePostInput{Text: "unloved"})
	require.NoError(t, err)

	_, err = svc.Unlike(context.Background(), u1, post.ID)
	assert.ErrorIs(t, err, ErrNotLiked)
}

func TestLikeMissingPost(t *testing.T) {
	t.Parallel()

	users := newMemUserRepo()
	svc := NewPostService(newMemPostRepo(), users)
	u1 := seedUser(t, users, "ada")

	_, err := svc.Like(context.Background(), u1, uuid.New())
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestComments(t *testing.T) {
	t.Parallel()

	users := newMemUserRepo()
	posts := newMemPostRepo()
	svc := NewPostService(posts, users)
	u1 := seedUser(t, users, "ada")
	u2 := seedUser(t, users, "grace")

	post, err := svc.Create(context.Background(), u1, CreatePostInput{Text: "discuss"})
	require.NoError(t, err)

	comments, err := svc.AddComment(context.Background(), u2, post.ID, CommentInput{Text: "nice"})
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, u2, comments[0].UserID)
	assert.Equal(t, "grace", comments[0].Name)
	commentID := comments[0].ID

	// Only the comment author may remove it, even on their own post.
	_, err = svc.RemoveComment(context.Background(), u1, post.ID, commentID)
	assert.ErrorIs(t, err, ErrNotCommentOwner)

	comments, err = svc.RemoveComment(context.Background(), u2, post.ID, commentID)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

// Removal must resolve the comment by its id: a requester with comments on
// the post cannot delete someone else's comment by naming its id.
func TestRemoveCommentMatchesCommentID(t *testing.T) {
	t.Parallel()

	users := newMemUserRepo()
	posts := newMemPostRepo()
	svc := NewPostService(posts, users)
	u1 := seedUser(t, users, "ada")
	u2 := seedUser(t, users, "grace")

	post, err := svc.Create(context.Background(), u1, CreatePostInput{Text: "thread"})
	require.NoError(t, err)

	_, err = svc.AddComment(context.Background(), u1, post.ID, CommentInput{Text: "first"})
	require.NoError(t, err)
	theirs, err := svc.AddComment(context.Background(), u2, post.ID, CommentInput{Text: "second"})
	require.NoError(t, err)
	require.Len(t, theirs, 2)

	var foreignID uuid.UUID
	for _, c := range theirs {
		if c.UserID == u2 {
			foreignID = c.ID
		}
	}

	// u1 names u2's comment: forbidden, and nothing is removed.
	_, err = svc.RemoveComment(context.Background(), u1, post.ID, foreignID)
	assert.ErrorIs(t, err, ErrNotCommentOwner)

	got, err := svc.GetByID(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Len(t, got.Comments, 2)

	_, err = svc.RemoveComment(context.Background(), u1, post.ID, uuid.New())
	assert.ErrorIs(t, err, ErrCommentNotFound)
}

func TestRemoveCommentWrongPost(t *testing.T) {
	t.Parallel()

	users := newMemUserRepo()
	posts := newMemPostRepo()
	svc := NewPostService(posts, users)
	u1 := seedUser(t, users, "ada")

	p1, err := svc.Create(context.Background(), u1, CreatePostInput{Text: "one"})
	require.NoError(t, err)
	p2, err := svc.Create(context.Background(), u1, CreatePostInput{Text: "two"})
	require.NoError(t, err)

	comments, err := svc.AddComment(context.Background(), u1, p1.ID, CommentInput{Text: "on one"})
	require.NoError(t, err)

	_, err = svc.RemoveComment(context.Background(), u1, p2.ID, comments[0].ID)
	assert.ErrorIs(t, err, ErrCommentNotFound)
}
