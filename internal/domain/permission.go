package domain

import "github.com/google/uuid"

// Action is what the caller wants to do with a resource.
type Action string

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// ResourceKind identifies the kind of entity a permission check targets.
type ResourceKind string

const (
	ResourceCategory ResourceKind = "category"
	ResourceGenre    ResourceKind = "genre"
	ResourceTitle    ResourceKind = "title"
	ResourceReview   ResourceKind = "review"
	ResourceComment  ResourceKind = "comment"
	ResourceUser     ResourceKind = "user"
)

// Resource describes the target of a permission check. AuthorID is the owner
// of authored content (reviews, comments) or the subject account for user
// management; it is uuid.Nil for catalog entities, which have no owner.
type Resource struct {
	Kind     ResourceKind
	AuthorID uuid.UUID
}

// Allowed is the single permission decision function. actor is nil for
// anonymous callers. For update/delete of authored content the caller must
// pass the resource as persisted, not as submitted.
func Allowed(actor *User, action Action, res Resource) bool {
	switch res.Kind {
	case ResourceCategory, ResourceGenre, ResourceTitle:
		if action == ActionRead {
			return true
		}
		return actor != nil && actor.IsAdmin()

	case ResourceReview, ResourceComment:
		switch action {
		case ActionRead:
			return true
		case ActionCreate:
			return actor != nil
		default: // update, delete
			if actor == nil {
				return false
			}
			return actor.ID == res.AuthorID || actor.IsModerator() || actor.IsAdmin()
		}

	case ResourceUser:
		if actor == nil {
			return false
		}
		if actor.IsAdmin() {
			return true
		}
		// Anyone may read or update their own profile; the role field is
		// excluded from self-updates by the user service.
		return actor.ID == res.AuthorID && (action == ActionRead || action == ActionUpdate)
	}

	return false
}

// Require evaluates Allowed and converts a denial into the error the REST
// layer needs to keep the 401/403 distinction: ErrUnauthorized when there are
// no credentials at all, ErrForbidden when credentials are insufficient.
func Require(actor *User, action Action, res Resource) error {
	if Allowed(actor, action, res) {
		return nil
	}
	if actor == nil {
		return ErrUnauthorized
	}
	return ErrForbidden
}
