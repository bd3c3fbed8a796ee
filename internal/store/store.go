package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"roomly/internal/models"
)

// RoomPatch is a partial update for a room. Nil fields are left untouched.
// The owner is immutable and deliberately has no patch field.
type RoomPatch struct {
	Name    *string
	Members *[]models.Member
}

// RoomStore defines room persistence. Implementations translate database
// errors into ErrRoomNotFound / ConflictError at this boundary.
type RoomStore interface {
	// Get returns the room with the given id, with members populated.
	// A malformed id is reported as ErrRoomNotFound, not an internal error.
	Get(ctx context.Context, id string) (*models.Room, error)
	// GetByName returns the room with the exact given name, populated.
	GetByName(ctx context.Context, name string) (*models.Room, error)
	// List returns rooms ordered by creation time descending, skipping
	// (page-1)*perPage and returning at most perPage rooms.
	List(ctx context.Context, page, perPage int) ([]models.Room, error)
	// ListByUser returns rooms where the user is the owner or a member,
	// newest first.
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Room, error)
	// Create persists a new room and returns it with id and timestamps set.
	Create(ctx context.Context, room *models.Room) (*models.Room, error)
	// Update applies a partial update and returns the post-update room.
	Update(ctx context.Context, id string, patch RoomPatch) (*models.Room, error)
	// Delete removes the room and reports whether a document was removed.
	Delete(ctx context.Context, id string) (bool, error)
}

// UserStore defines user persistence for auth and member population.
type UserStore interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetByIDs returns the users for the given ids, keyed by id. Missing
	// ids are simply absent from the result.
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*models.User, error)
}
