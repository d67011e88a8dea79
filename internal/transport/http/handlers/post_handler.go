package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/davidc77/devhub/internal/domain"
	"github.com/davidc77/devhub/internal/service"
	"github.com/davidc77/devhub/internal/transport/http/middleware"
	"github.com/davidc77/devhub/pkg/validator"
)

type PostHandler struct {
	postService *service.PostService
}

func NewPostHandler(postService *service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var input service.CreatePostInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidateText(input.Text); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	post, err := h.postService.Create(r.Context(), userID, input)
	if err != nil {
		log.Printf("ERROR create post: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusCreated, post)
}

func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.postService.List(r.Context())
	if err != nil {
		log.Printf("ERROR list posts: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	if posts == nil {
		posts = []domain.Post{}
	}

	writeJSON(w, http.StatusOK, posts)
}

func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	postID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid post ID")
		return
	}

	post, err := h.postService.GetByID(r.Context(), postID)
	if err != nil {
		h.writePostError(w, "get post", err)
		return
	}

	writeJSON(w, http.StatusOK, post)
}

func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	postID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid post ID")
		return
	}

	if err := h.postService.Delete(r.Context(), userID, postID); err != nil {
		h.writePostError(w, "delete post", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"msg": "Post removed"})
}

func (h *PostHandler) Like(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	postID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid post ID")
		return
	}

	likes, err := h.postService.Like(r.Context(), userID, postID)
	if err != nil {
		h.writePostError(w, "like post", err)
		return
	}

	writeJSON(w, http.StatusOK, likes)
}

func (h *PostHandler) Unlike(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	postID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid post ID")
		return
	}

	likes, err := h.postService.Unlike(r.Context(), userID, postID)
	if err != nil {
		h.writePostError(w, "unlike post", err)
		return
	}

	if likes == nil {
		likes = []domain.Like{}
	}

	writeJSON(w, http.StatusOK, likes)
}

func (h *PostHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	postID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid post ID")
		return
	}

	var input service.CommentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidateText(input.Text); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	comments, err := h.postService.AddComment(r.Context(), userID, postID, input)
	if err != nil {
		h.writePostError(w, "add comment", err)
		return
	}

	writeJSON(w, http.StatusCreated, comments)
}

func (h *PostHandler) RemoveComment(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	postID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid post ID")
		return
	}
	commentID, err := uuid.Parse(r.PathValue("cid"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid comment ID")
		return
	}

	comments, err := h.postService.RemoveComment(r.Context(), userID, postID, commentID)
	if err != nil {
		h.writePostError(w, "remove comment", err)
		return
	}

	if comments == nil {
		comments = []domain.Comment{}
	}

	writeJSON(w, http.StatusOK, comments)
}

func (h *PostHandler) writePostError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, service.ErrPostNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Post not found")
	case errors.Is(err, service.ErrCommentNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Comment not found")
	case errors.Is(err, service.ErrNotPostOwner):
		writeError(w, http.StatusForbidden, "FORBIDDEN", "Only the post owner can do that")
	case errors.Is(err, service.ErrNotCommentOwner):
		writeError(w, http.StatusForbidden, "FORBIDDEN", "Only the comment author can do that")
	case errors.Is(err, service.ErrAlreadyLiked):
		writeError(w, http.StatusBadRequest, "ALREADY_LIKED", "Post already liked")
	case errors.Is(err, service.ErrNotLiked):
		writeError(w, http.StatusBadRequest, "NOT_LIKED", "Post has not been liked yet")
	default:
		log.Printf("ERROR %s: %v", op, err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
	}
}
