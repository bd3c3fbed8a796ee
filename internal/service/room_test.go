package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"roomly/internal/models"
	"roomly/internal/store"
	"roomly/internal/testutil"
)

func newService() *RoomService {
	return NewRoomService(testutil.NewMockRoomStore(nil))
}

func TestCreateThenGet(t *testing.T) {
	t.Parallel()
	svc := newService()
	ctx := context.Background()

	owner := primitive.NewObjectID().Hex()
	alice := primitive.NewObjectID().Hex()
	bob := primitive.NewObjectID().Hex()

	created, err := svc.CreateRoom(ctx, "general", []MemberInput{
		{UserID: alice, Role: "admin"},
		{UserID: bob},
	}, owner)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.GetRoomByID(ctx, created.ID.Hex())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "general" {
		t.Errorf("expected name general, got %s", got.Name)
	}
	if got.OwnerID.Hex() != owner {
		t.Errorf("owner mismatch: %s vs %s", got.OwnerID.Hex(), owner)
	}
	if len(got.Members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(got.Members))
	}
	if got.Members[0].UserID.Hex() != alice || got.Members[0].Role != models.RoleAdmin {
		t.Errorf("first member wrong: %+v", got.Members[0])
	}
	if got.Members[1].Role != models.RoleMember {
		t.Errorf("expected default role member, got %s", got.Members[1].Role)
	}
}

func TestCreateTrimsName(t *testing.T) {
	t.Parallel()
	svc := newService()
	room, err := svc.CreateRoom(context.Background(), "  padded  ", nil, primitive.NewObjectID().Hex())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if room.Name != "padded" {
		t.Errorf("expected trimmed name, got %q", room.Name)
	}
}

func TestCreateValidation(t *testing.T) {
	t.Parallel()
	svc := newService()
	ctx := context.Background()
	owner := primitive.NewObjectID().Hex()

	if _, err := svc.CreateRoom(ctx, "  ", nil, owner); !errors.Is(err, ErrNameRequired) {
		t.Errorf("blank name: expected ErrNameRequired, got %v", err)
	}
	if _, err := svc.CreateRoom(ctx, "a", nil, "not-hex"); !errors.Is(err, ErrInvalidUserID) {
		t.Errorf("bad owner: expected ErrInvalidUserID, got %v", err)
	}
	bad := []MemberInput{{UserID: "nope"}}
	if _, err := svc.CreateRoom(ctx, "b", bad, owner); !errors.Is(err, ErrInvalidUserID) {
		t.Errorf("bad member id: expected ErrInvalidUserID, got %v", err)
	}
	badRole := []MemberInput{{UserID: primitive.NewObjectID().Hex(), Role: "owner"}}
	if _, err := svc.CreateRoom(ctx, "c", badRole, owner); !errors.Is(err, ErrInvalidRole) {
		t.Errorf("bad role: expected ErrInvalidRole, got %v", err)
	}
}

func TestCreateDedupesMembers(t *testing.T) {
	t.Parallel()
	svc := newService()
	ctx := context.Background()

	dup := primitive.NewObjectID().Hex()
	room, err := svc.CreateRoom(ctx, "dedupe", []MemberInput{
		{UserID: dup, Role: "admin"},
		{UserID: dup, Role: "member"},
	}, primitive.NewObjectID().Hex())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(room.Members) != 1 {
		t.Fatalf("expected 1 member after dedupe, got %d", len(room.Members))
	}
	// First occurrence wins, keeping its explicit role.
	if room.Members[0].Role != models.RoleAdmin {
		t.Errorf("expected admin role kept, got %s", room.Members[0].Role)
	}
}

func TestCreateDuplicateNameConflicts(t *testing.T) {
	t.Parallel()
	svc := newService()
	ctx := context.Background()
	owner := primitive.NewObjectID().Hex()

	first, err := svc.CreateRoom(ctx, "taken", nil, owner)
	if err != nil {
		t.Fatalf("first create: %v", err)
	}

	_, err = svc.CreateRoom(ctx, "taken", nil, primitive.NewObjectID().Hex())
	ce, ok := store.IsConflict(err)
	if !ok {
		t.Fatalf("expected conflict, got %v", err)
	}
	if ce.Field != "name" {
		t.Errorf("expected conflict on name, got %s", ce.Field)
	}

	// The first room is untouched.
	got, err := svc.GetRoomByID(ctx, first.ID.Hex())
	if err != nil {
		t.Fatalf("get after conflict: %v", err)
	}
	if got.OwnerID.Hex() != owner {
		t.Errorf("first room changed owner: %s", got.OwnerID.Hex())
	}
}

func TestGetMalformedID(t *testing.T) {
	t.Parallel()
	svc := newService()
	if _, err := svc.GetRoomByID(context.Background(), "definitely-not-an-object-id"); !errors.Is(err, store.ErrRoomNotFound) {
		t.Errorf("expected ErrRoomNotFound for malformed id, got %v", err)
	}
}

func TestGetRoomByName(t *testing.T) {
	t.Parallel()
	svc := newService()
	ctx := context.Background()

	if _, err := svc.CreateRoom(ctx, "lounge", nil, primitive.NewObjectID().Hex()); err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := svc.GetRoomByName(ctx, "lounge")
	if err != nil {
		t.Fatalf("get by name: %v", err)
	}
	if got.Name != "lounge" {
		t.Errorf("expected lounge, got %s", got.Name)
	}
	if _, err := svc.GetRoomByName(ctx, "missing"); !errors.Is(err, store.ErrRoomNotFound) {
		t.Errorf("expected ErrRoomNotFound, got %v", err)
	}
}

func TestDeleteByOwner(t *testing.T) {
	t.Parallel()
	svc := newService()
	ctx := context.Background()
	owner := primitive.NewObjectID().Hex()

	room, err := svc.CreateRoom(ctx, "doomed", nil, owner)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	deleted, err := svc.DeleteRoom(ctx, room.ID.Hex(), owner)
	if err != nil || !deleted {
		t.Fatalf("expected deletion, got deleted=%v err=%v", deleted, err)
	}
	if _, err := svc.GetRoomByID(ctx, room.ID.Hex()); !errors.Is(err, store.ErrRoomNotFound) {
		t.Errorf("expected ErrRoomNotFound after delete, got %v", err)
	}
}

func TestDeleteByNonOwner(t *testing.T) {
	t.Parallel()
	svc := newService()
	ctx := context.Background()
	owner := primitive.NewObjectID().Hex()

	room, err := svc.CreateRoom(ctx, "protected", nil, owner)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	deleted, err := svc.DeleteRoom(ctx, room.ID.Hex(), primitive.NewObjectID().Hex())
	if deleted {
		t.Error("non-owner must not delete")
	}
	if !errors.Is(err, ErrNotRoomOwner) {
		t.Errorf("expected ErrNotRoomOwner, got %v", err)
	}

	// Room still there.
	if _, err := svc.GetRoomByID(ctx, room.ID.Hex()); err != nil {
		t.Errorf("room should survive: %v", err)
	}
}

func TestDeleteMissingRoom(t *testing.T) {
	t.Parallel()
	svc := newService()
	_, err := svc.DeleteRoom(context.Background(), primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex())
	if !errors.Is(err, store.ErrRoomNotFound) {
		t.Errorf("expected ErrRoomNotFound, got %v", err)
	}
}

func TestListPagination(t *testing.T) {
	t.Parallel()
	svc := newService()
	ctx := context.Background()
	owner := primitive.NewObjectID().Hex()

	for i := 0; i < 25; i++ {
		if _, err := svc.CreateRoom(ctx, fmt.Sprintf("room-%02d", i), nil, owner); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	page, err := svc.ListRooms(ctx, 2, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(page) != 10 {
		t.Fatalf("expected 10 rooms on page 2, got %d", len(page))
	}
	// Newest first: page 2 holds items 11-20, i.e. room-14 down to room-05.
	if page[0].Name != "room-14" {
		t.Errorf("expected room-14 first, got %s", page[0].Name)
	}
	if page[9].Name != "room-05" {
		t.Errorf("expected room-05 last, got %s", page[9].Name)
	}
	for i := 1; i < len(page); i++ {
		if page[i].CreatedAt.After(page[i-1].CreatedAt) {
			t.Errorf("not sorted newest first at index %d", i)
		}
	}
}

func TestListDefaults(t *testing.T) {
	t.Parallel()
	svc := newService()
	ctx := context.Background()
	owner := primitive.NewObjectID().Hex()

	for i := 0; i < 15; i++ {
		if _, err := svc.CreateRoom(ctx, fmt.Sprintf("d-%02d", i), nil, owner); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	// Zero values fall back to page 1, perPage 10.
	page, err := svc.ListRooms(ctx, 0, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(page) != 10 {
		t.Errorf("expected default page size 10, got %d", len(page))
	}
}

func TestGetRoomsByUser(t *testing.T) {
	t.Parallel()
	svc := newService()
	ctx := context.Background()

	owner := primitive.NewObjectID().Hex()
	member := primitive.NewObjectID().Hex()
	stranger := primitive.NewObjectID().Hex()

	if _, err := svc.CreateRoom(ctx, "owned", nil, owner); err != nil {
		t.Fatalf("create owned: %v", err)
	}
	if _, err := svc.CreateRoom(ctx, "joined", []MemberInput{{UserID: member}}, owner); err != nil {
		t.Fatalf("create joined: %v", err)
	}

	ownerRooms, err := svc.GetRoomsByUser(ctx, owner)
	if err != nil {
		t.Fatalf("owner rooms: %v", err)
	}
	if len(ownerRooms) != 2 {
		t.Errorf("expected 2 rooms for owner, got %d", len(ownerRooms))
	}

	memberRooms, err := svc.GetRoomsByUser(ctx, member)
	if err != nil {
		t.Fatalf("member rooms: %v", err)
	}
	if len(memberRooms) != 1 || memberRooms[0].Name != "joined" {
		t.Errorf("expected only joined for member, got %+v", memberRooms)
	}

	none, err := svc.GetRoomsByUser(ctx, stranger)
	if err != nil {
		t.Fatalf("stranger rooms: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("expected no rooms for stranger, got %d", len(none))
	}

	if _, err := svc.GetRoomsByUser(ctx, "junk"); !errors.Is(err, ErrInvalidUserID) {
		t.Errorf("expected ErrInvalidUserID, got %v", err)
	}
}

func TestGetRoomPopulatesMembers(t *testing.T) {
	t.Parallel()
	users := testutil.NewMockUserStore()
	svc := NewRoomService(testutil.NewMockRoomStore(users))
	ctx := context.Background()

	alice, err := users.Create(ctx, &models.User{Name: "alice", Email: "alice@example.com"})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}

	room, err := svc.CreateRoom(ctx, "populated", []MemberInput{
		{UserID: alice.ID.Hex()},
		{UserID: primitive.NewObjectID().Hex()}, // no such user
	}, primitive.NewObjectID().Hex())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.GetRoomByID(ctx, room.ID.Hex())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Members[0].User == nil || got.Members[0].User.Name != "alice" {
		t.Errorf("expected alice populated, got %+v", got.Members[0].User)
	}
	// An unresolvable reference stays nil instead of failing the read.
	if got.Members[1].User != nil {
		t.Errorf("expected nil user for dangling reference, got %+v", got.Members[1].User)
	}
}

func TestUpdateRoom(t *testing.T) {
	t.Parallel()
	svc := newService()
	ctx := context.Background()
	owner := primitive.NewObjectID().Hex()

	room, err := svc.CreateRoom(ctx, "before", nil, owner)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	name := "after"
	updated, err := svc.UpdateRoom(ctx, room.ID.Hex(), RoomPatch{Name: &name})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "after" {
		t.Errorf("expected post-update name after, got %s", updated.Name)
	}
	if !updated.UpdatedAt.After(room.UpdatedAt) {
		t.Error("updatedAt did not advance")
	}

	blank := "   "
	if _, err := svc.UpdateRoom(ctx, room.ID.Hex(), RoomPatch{Name: &blank}); !errors.Is(err, ErrNameRequired) {
		t.Errorf("expected ErrNameRequired, got %v", err)
	}

	if _, err := svc.UpdateRoom(ctx, primitive.NewObjectID().Hex(), RoomPatch{Name: &name}); !errors.Is(err, store.ErrRoomNotFound) {
		t.Errorf("expected ErrRoomNotFound, got %v", err)
	}
}

func TestUpdateNameConflict(t *testing.T) {
	t.Parallel()
	svc := newService()
	ctx := context.Background()
	owner := primitive.NewObjectID().Hex()

	if _, err := svc.CreateRoom(ctx, "occupied", nil, owner); err != nil {
		t.Fatalf("create: %v", err)
	}
	room, err := svc.CreateRoom(ctx, "renameme", nil, owner)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	name := "occupied"
	_, err = svc.UpdateRoom(ctx, room.ID.Hex(), RoomPatch{Name: &name})
	if _, ok := store.IsConflict(err); !ok {
		t.Errorf("expected conflict, got %v", err)
	}
}

func TestAddMembers(t *testing.T) {
	t.Parallel()
	svc := newService()
	ctx := context.Background()

	owner := primitive.NewObjectID().Hex()
	existing := primitive.NewObjectID().Hex()
	newcomer := primitive.NewObjectID().Hex()

	room, err := svc.CreateRoom(ctx, "growing", []MemberInput{{UserID: existing}}, owner)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Owner adds a newcomer plus a user already present; only one joins.
	updated, err := svc.AddMembers(ctx, room.ID.Hex(), owner, []MemberInput{
		{UserID: newcomer, Role: "admin"},
		{UserID: existing},
	})
	if err != nil {
		t.Fatalf("add members: %v", err)
	}
	if len(updated.Members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(updated.Members))
	}

	// A plain member cannot add.
	_, err = svc.AddMembers(ctx, room.ID.Hex(), existing, []MemberInput{
		{UserID: primitive.NewObjectID().Hex()},
	})
	if !errors.Is(err, ErrNotRoomOwner) {
		t.Errorf("expected ErrNotRoomOwner for plain member, got %v", err)
	}

	// An admin member can.
	if _, err := svc.AddMembers(ctx, room.ID.Hex(), newcomer, []MemberInput{
		{UserID: primitive.NewObjectID().Hex()},
	}); err != nil {
		t.Errorf("admin member should add: %v", err)
	}
}
