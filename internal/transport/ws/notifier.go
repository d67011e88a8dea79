package ws

import (
	"log"

	"github.com/google/uuid"

	"github.com/davidc77/devhub/internal/domain"
)

// HubNotifier implements service.Notifier using the WebSocket Hub.
type HubNotifier struct {
	hub *Hub
}

func NewHubNotifier(hub *Hub) *HubNotifier {
	return &HubNotifier{hub: hub}
}

func (n *HubNotifier) NotifyNewPost(post *domain.Post) {
	evt, err := NewEvent(EventTypePostNew, PostPayload{Post: *post})
	if err != nil {
		log.Printf("ws notifier: marshal error: %v", err)
		return
	}
	n.hub.Broadcast(evt)
}

func (n *HubNotifier) NotifyDeletedPost(postID uuid.UUID) {
	evt, err := NewEvent(EventTypePostDeleted, PostDeletedPayload{ID: postID})
	if err != nil {
		log.Printf("ws notifier: marshal error: %v", err)
		return
	}
	n.hub.Broadcast(evt)
}

func (n *HubNotifier) NotifyLikes(postID uuid.UUID, likes []domain.Like) {
	evt, err := NewEvent(EventTypePostLikes, LikesPayload{PostID: postID, Likes: likes})
	if err != nil {
		log.Printf("ws notifier: marshal error: %v", err)
		return
	}
	n.hub.Broadcast(evt)
}

func (n *HubNotifier) NotifyNewComment(comment *domain.Comment) {
	evt, err := NewEvent(EventTypeCommentNew, CommentPayload{Comment: *comment})
	if err != nil {
		log.Printf("ws notifier: marshal error: %v", err)
		return
	}
	n.hub.Broadcast(evt)
}

func (n *HubNotifier) NotifyDeletedComment(postID, commentID uuid.UUID) {
	evt, err := NewEvent(EventTypeCommentDeleted, CommentDeletedPayload{PostID: postID, ID: commentID})
	if err != nil {
		log.Printf("ws notifier: marshal error: %v", err)
		return
	}
	n.hub.Broadcast(evt)
}
