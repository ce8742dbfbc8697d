// Package access decides wallet permissions from plain ownership and share
// records. It performs no queries; callers load the rows and pass them in.
package access

const (
	RoleOwner  = "owner"
	RoleEditor = "editor"
	RoleViewer = "viewer"
	// RoleAdmin is honored by CanEdit but never assigned anywhere.
	RoleAdmin = "admin"
)

// Share is one (user, wallet) access grant.
type Share struct {
	UserID string
	Role   string
}

// CanRead reports whether userID may view the wallet: the owner or any
// share member, regardless of role.
func CanRead(userID, ownerID string, shares []Share) bool {
	if userID == ownerID {
		return true
	}
	for _, share := range shares {
		if share.UserID == userID {
			return true
		}
	}
	return false
}

// CanEdit reports whether userID may mutate the wallet: the owner or a
// member holding an editor or admin share.
func CanEdit(userID, ownerID string, shares []Share) bool {
	if userID == ownerID {
		return true
	}
	for _, share := range shares {
		if share.UserID == userID && (share.Role == RoleEditor || share.Role == RoleAdmin) {
			return true
		}
	}
	return false
}

// RoleOf resolves the role userID holds on the wallet, or "" for non-members.
func RoleOf(userID, ownerID string, shares []Share) string {
	if userID == ownerID {
		return RoleOwner
	}
	for _, share := range shares {
		if share.UserID == userID {
			return share.Role
		}
	}
	return ""
}

// ValidAssignableRole limits PATCH role updates to the two assignable roles.
func ValidAssignableRole(role string) bool {
	return role == RoleEditor || role == RoleViewer
}
