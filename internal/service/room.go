package service

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"roomly/internal/models"
	"roomly/internal/store"
)

var (
	ErrNameRequired  = errors.New("room name is required")
	ErrInvalidUserID = errors.New("invalid user id")
	ErrInvalidRole   = errors.New("invalid member role")
	// ErrNotRoomOwner signals an ownership mismatch. The HTTP layer renders
	// it as NotFound so non-owners cannot probe for a room's existence.
	ErrNotRoomOwner = errors.New("not the room owner")
)

// MemberInput is the wire shape for a room member.
type MemberInput struct {
	UserID string `json:"user_id"`
	Role   string `json:"role,omitempty"`
}

// RoomPatch is the service-level partial update. Nil fields are untouched.
type RoomPatch struct {
	Name    *string        `json:"name,omitempty"`
	Members *[]MemberInput `json:"members,omitempty"`
}

// RoomService enforces domain rules above raw storage: member
// deduplication, owner-gated deletion, and not-found semantics.
type RoomService struct {
	rooms store.RoomStore
}

func NewRoomService(rooms store.RoomStore) *RoomService {
	return &RoomService{rooms: rooms}
}

// CreateRoom builds a room for the given owner and delegates to the store.
// Conflict and not-found errors propagate unchanged.
func (s *RoomService) CreateRoom(ctx context.Context, name string, members []MemberInput, ownerID string) (*models.Room, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	owner, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, ErrInvalidUserID
	}
	ms, err := buildMembers(members)
	if err != nil {
		return nil, err
	}

	room := &models.Room{
		Name:    name,
		OwnerID: owner,
		Members: ms,
	}
	return s.rooms.Create(ctx, room)
}

func (s *RoomService) GetRoomByID(ctx context.Context, id string) (*models.Room, error) {
	return s.rooms.Get(ctx, id)
}

func (s *RoomService) GetRoomByName(ctx context.Context, name string) (*models.Room, error) {
	return s.rooms.GetByName(ctx, name)
}

// GetRoomsByUser returns rooms the user owns or is a member of.
func (s *RoomService) GetRoomsByUser(ctx context.Context, userID string) ([]models.Room, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrInvalidUserID
	}
	return s.rooms.ListByUser(ctx, uid)
}

func (s *RoomService) ListRooms(ctx context.Context, page, perPage int) ([]models.Room, error) {
	return s.rooms.List(ctx, page, perPage)
}

// UpdateRoom applies a partial update. The owner is immutable and not
// part of the patch.
func (s *RoomService) UpdateRoom(ctx context.Context, id string, patch RoomPatch) (*models.Room, error) {
	var sp store.RoomPatch
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, ErrNameRequired
		}
		sp.Name = &name
	}
	if patch.Members != nil {
		ms, err := buildMembers(*patch.Members)
		if err != nil {
			return nil, err
		}
		sp.Members = &ms
	}
	return s.rooms.Update(ctx, id, sp)
}

// AddMembers appends new members to a room. Only the owner or an admin
// member may add; anyone else gets ErrNotRoomOwner. Users already in the
// room are skipped.
func (s *RoomService) AddMembers(ctx context.Context, roomID, userID string, members []MemberInput) (*models.Room, error) {
	room, err := s.rooms.Get(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if !canManageMembers(room, userID) {
		return nil, ErrNotRoomOwner
	}

	incoming, err := buildMembers(members)
	if err != nil {
		return nil, err
	}
	merged := room.Members
	for _, m := range incoming {
		if hasMember(merged, m.UserID) {
			continue
		}
		m.User = nil
		merged = append(merged, m)
	}
	return s.rooms.Update(ctx, roomID, store.RoomPatch{Members: &merged})
}

// DeleteRoom removes a room if the acting user owns it. The returned bool
// reports whether a deletion occurred; ErrRoomNotFound and ErrNotRoomOwner
// let callers tell absence from an ownership mismatch even though the
// HTTP layer deliberately collapses the two.
func (s *RoomService) DeleteRoom(ctx context.Context, roomID, userID string) (bool, error) {
	room, err := s.rooms.Get(ctx, roomID)
	if err != nil {
		return false, err
	}
	if room.OwnerID.Hex() != userID {
		return false, ErrNotRoomOwner
	}

	deleted, err := s.rooms.Delete(ctx, roomID)
	if err != nil {
		return false, err
	}
	if !deleted {
		return false, store.ErrRoomNotFound
	}
	return true, nil
}

// buildMembers validates member inputs and drops duplicate user
// references. The first occurrence wins, so an explicit role is not
// overridden by a later default.
func buildMembers(inputs []MemberInput) ([]models.Member, error) {
	ms := make([]models.Member, 0, len(inputs))
	for _, in := range inputs {
		uid, err := primitive.ObjectIDFromHex(in.UserID)
		if err != nil {
			return nil, ErrInvalidUserID
		}
		role := in.Role
		if role == "" {
			role = models.RoleMember
		}
		if !models.ValidRole(role) {
			return nil, ErrInvalidRole
		}
		if hasMember(ms, uid) {
			continue
		}
		ms = append(ms, models.Member{UserID: uid, Role: role})
	}
	return ms, nil
}

func hasMember(ms []models.Member, uid primitive.ObjectID) bool {
	for _, m := range ms {
		if m.UserID == uid {
			return true
		}
	}
	return false
}

func canManageMembers(room *models.Room, userID string) bool {
	if room.OwnerID.Hex() == userID {
		return true
	}
	for _, m := range room.Members {
		if m.UserID.Hex() == userID && m.Role == models.RoleAdmin {
			return true
		}
	}
	return false
}
