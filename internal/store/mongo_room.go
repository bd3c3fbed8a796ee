package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"roomly/internal/models"
)

const (
	defaultPage    = 1
	defaultPerPage = 10
)

// MongoRoomStore implements RoomStore against a MongoDB collection.
type MongoRoomStore struct {
	rooms *mongo.Collection
	users UserStore
}

func NewMongoRoomStore(db *mongo.Database, users UserStore) *MongoRoomStore {
	return &MongoRoomStore{
		rooms: db.Collection("rooms"),
		users: users,
	}
}

func (s *MongoRoomStore) Get(ctx context.Context, id string) (*models.Room, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// Malformed ids are indistinguishable from absent rooms.
		return nil, ErrRoomNotFound
	}

	var room models.Room
	err = s.rooms.FindOne(ctx, bson.M{"_id": oid}).Decode(&room)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := s.populate(ctx, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

func (s *MongoRoomStore) GetByName(ctx context.Context, name string) (*models.Room, error) {
	var room models.Room
	err := s.rooms.FindOne(ctx, bson.M{"name": name}).Decode(&room)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := s.populate(ctx, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

func (s *MongoRoomStore) List(ctx context.Context, page, perPage int) ([]models.Room, error) {
	if page < 1 {
		page = defaultPage
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * perPage)).
		SetLimit(int64(perPage))

	cur, err := s.rooms.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	rooms := []models.Room{}
	if err := cur.All(ctx, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (s *MongoRoomStore) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Room, error) {
	filter := bson.M{"$or": []bson.M{
		{"ownerId": userID},
		{"members.user": userID},
	}}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cur, err := s.rooms.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	rooms := []models.Room{}
	if err := cur.All(ctx, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (s *MongoRoomStore) Create(ctx context.Context, room *models.Room) (*models.Room, error) {
	now := time.Now().UTC()
	room.CreatedAt = now
	room.UpdatedAt = now
	if room.Members == nil {
		room.Members = []models.Member{}
	}

	res, err := s.rooms.InsertOne(ctx, room)
	if mongo.IsDuplicateKeyError(err) {
		return nil, &ConflictError{Field: "name", Message: `"name" already exists`}
	}
	if err != nil {
		return nil, err
	}
	room.ID = res.InsertedID.(primitive.ObjectID)
	return room, nil
}

func (s *MongoRoomStore) Update(ctx context.Context, id string, patch RoomPatch) (*models.Room, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrRoomNotFound
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Members != nil {
		set["members"] = *patch.Members
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var room models.Room
	err = s.rooms.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&room)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrRoomNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return nil, &ConflictError{Field: "name", Message: `"name" already exists`}
	}
	if err != nil {
		return nil, err
	}
	if err := s.populate(ctx, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

func (s *MongoRoomStore) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	res, err := s.rooms.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// populate resolves member user references from the users collection.
// Unresolvable references are left with a nil User rather than failing the
// whole read.
func (s *MongoRoomStore) populate(ctx context.Context, room *models.Room) error {
	if len(room.Members) == 0 {
		return nil
	}
	ids := make([]primitive.ObjectID, 0, len(room.Members))
	for _, m := range room.Members {
		ids = append(ids, m.UserID)
	}
	users, err := s.users.GetByIDs(ctx, ids)
	if err != nil {
		return err
	}
	for i := range room.Members {
		room.Members[i].User = users[room.Members[i].UserID]
	}
	return nil
}
