// Package entity contains the core business objects of the storefront.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a storefront customer. Identity is owned by Firebase Auth; the
// row is created the first time a verified ID token is seen.
type User struct {
	ID          uuid.UUID  `json:"id"`
	FirebaseUID string     `json:"firebaseUid"` // Subject of the Firebase ID token.
	Email       string     `json:"email"`
	DisplayName string     `json:"displayName"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	DeletedAt   *time.Time `json:"deletedAt,omitempty"`
}

// IsDeleted reports whether the user was soft deleted by an admin.
func (u *User) IsDeleted() bool {
	return u.DeletedAt != nil
}
