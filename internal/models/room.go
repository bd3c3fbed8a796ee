package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Member roles.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// ValidRole reports whether role is one of the known member roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleMember
}

// Member associates a user with a room. The User field is populated from
// the users collection on reads and is never stored on the room document.
type Member struct {
	UserID primitive.ObjectID `bson:"user" json:"user_id"`
	Role   string             `bson:"role" json:"role"`
	User   *User              `bson:"-" json:"user,omitempty"`
}

type Room struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	OwnerID   primitive.ObjectID `bson:"ownerId" json:"owner_id"`
	Members   []Member           `bson:"members" json:"members"`
	CreatedAt time.Time          `bson:"createdAt" json:"created_at"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updated_at"`
}
