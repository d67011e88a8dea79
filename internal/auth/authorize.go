package auth

import "github.com/google/uuid"

// Action classifies what a principal wants to do with a resource.
type Action string

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Authorize is the single ownership rule of the whole API: any
// authenticated principal may read, create, and update (updates here are
// list memberships like "add a like", not edits of another user's
// content); only the owner may delete. Pure function, no side effects.
func Authorize(principalID, ownerID uuid.UUID, action Action) bool {
	if principalID == uuid.Nil {
		return false
	}

	switch action {
	case ActionRead, ActionCreate, ActionUpdate:
		return true
	case ActionDelete:
		return principalID == ownerID
	default:
		return false
	}
}
