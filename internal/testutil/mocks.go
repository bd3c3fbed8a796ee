package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"roomly/internal/models"
	"roomly/internal/store"
)

// MockRoomStore implements store.RoomStore in memory with the same error
// contract as the Mongo implementation.
type MockRoomStore struct {
	mu    sync.Mutex
	rooms map[primitive.ObjectID]models.Room
	users *MockUserStore
	clock time.Time
}

// NewMockRoomStore creates an empty mock store. users may be nil if the
// test does not care about member population.
func NewMockRoomStore(users *MockUserStore) *MockRoomStore {
	return &MockRoomStore{
		rooms: make(map[primitive.ObjectID]models.Room),
		users: users,
		clock: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (s *MockRoomStore) Get(ctx context.Context, id string) (*models.Room, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, store.ErrRoomNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	room, ok := s.rooms[oid]
	if !ok {
		return nil, store.ErrRoomNotFound
	}
	return s.populate(ctx, room)
}

func (s *MockRoomStore) GetByName(ctx context.Context, name string) (*models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, room := range s.rooms {
		if room.Name == name {
			return s.populate(ctx, room)
		}
	}
	return nil, store.ErrRoomNotFound
}

func (s *MockRoomStore) List(ctx context.Context, page, perPage int) ([]models.Room, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}
	all := s.sorted()
	start := (page - 1) * perPage
	if start >= len(all) {
		return []models.Room{}, nil
	}
	end := start + perPage
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], nil
}

func (s *MockRoomStore) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Room, error) {
	out := []models.Room{}
	for _, room := range s.sorted() {
		if room.OwnerID == userID {
			out = append(out, room)
			continue
		}
		for _, m := range room.Members {
			if m.UserID == userID {
				out = append(out, room)
				break
			}
		}
	}
	return out, nil
}

func (s *MockRoomStore) Create(ctx context.Context, room *models.Room) (*models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.rooms {
		if existing.Name == room.Name {
			return nil, &store.ConflictError{Field: "name", Message: `"name" already exists`}
		}
	}
	room.ID = primitive.NewObjectID()
	s.clock = s.clock.Add(time.Second)
	room.CreatedAt = s.clock
	room.UpdatedAt = s.clock
	if room.Members == nil {
		room.Members = []models.Member{}
	}
	s.rooms[room.ID] = *room
	return room, nil
}

func (s *MockRoomStore) Update(ctx context.Context, id string, patch store.RoomPatch) (*models.Room, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, store.ErrRoomNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	room, ok := s.rooms[oid]
	if !ok {
		return nil, store.ErrRoomNotFound
	}
	if patch.Name != nil {
		for otherID, other := range s.rooms {
			if otherID != oid && other.Name == *patch.Name {
				return nil, &store.ConflictError{Field: "name", Message: `"name" already exists`}
			}
		}
		room.Name = *patch.Name
	}
	if patch.Members != nil {
		room.Members = *patch.Members
	}
	s.clock = s.clock.Add(time.Second)
	room.UpdatedAt = s.clock
	s.rooms[oid] = room
	return s.populate(ctx, room)
}

func (s *MockRoomStore) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rooms[oid]; !ok {
		return false, nil
	}
	delete(s.rooms, oid)
	return true, nil
}

func (s *MockRoomStore) sorted() []models.Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	all := make([]models.Room, 0, len(s.rooms))
	for _, room := range s.rooms {
		all = append(all, room)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	return all
}

func (s *MockRoomStore) populate(ctx context.Context, room models.Room) (*models.Room, error) {
	cp := room
	cp.Members = make([]models.Member, len(room.Members))
	copy(cp.Members, room.Members)
	if s.users != nil {
		for i := range cp.Members {
			if u, err := s.users.GetByID(ctx, cp.Members[i].UserID); err == nil {
				cp.Members[i].User = u
			}
		}
	}
	return &cp, nil
}

// MockUserStore implements store.UserStore in memory.
type MockUserStore struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]models.User
}

func NewMockUserStore() *MockUserStore {
	return &MockUserStore{users: make(map[primitive.ObjectID]models.User)}
}

func (s *MockUserStore) Create(ctx context.Context, user *models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == user.Email {
			return nil, &store.ConflictError{Field: "email", Message: `"email" already exists`}
		}
	}
	user.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	s.users[user.ID] = *user
	return user, nil
}

func (s *MockUserStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	u := user
	return &u, nil
}

func (s *MockUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, store.ErrUserNotFound
}

func (s *MockUserStore) GetByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[primitive.ObjectID]*models.User, len(ids))
	for _, id := range ids {
		if user, ok := s.users[id]; ok {
			u := user
			out[id] = &u
		}
	}
	return out, nil
}
