package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const BookingColName = "bookings"

type BookingsRepo interface {
	CreateBooking(ctx context.Context, booking *Booking) (*Booking, error)
	GetBookingByID(ctx context.Context, id primitive.ObjectID) (*Booking, error)
	ListBookingsByVenue(ctx context.Context, venueId primitive.ObjectID, statuses []BookingStatus) ([]*Booking, error)
	ListBookingsByUser(ctx context.Context, userId primitive.ObjectID) ([]*Booking, error)
	FindActiveBooking(ctx context.Context, userId, venueId primitive.ObjectID) (*Booking, error)
	UpdateBookingStatus(ctx context.Context, id primitive.ObjectID, from, to BookingStatus, reason string) (*Booking, error)
	EnsureBookingIndexes(ctx context.Context) error
}

// EnsureBookingIndexes creates the partial unique index that enforces one
// active booking per user per venue. The partial filter keeps terminal
// bookings out of the uniqueness check so a user can re-book a venue after a
// rejection or completion.
func (mdb *MongodbRepo) EnsureBookingIndexes(ctx context.Context) error {
	col, err := mdb.GetCollection(ctx, DbName, BookingColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	activeStatuses := bson.A{BookingStatusPending, BookingStatusAccepted, BookingStatusRunning}
	_, err = col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user", Value: 1}, {Key: "venue", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"status": bson.M{"$in": activeStatuses}}),
	})
	if err != nil {
		return fmt.Errorf("error creating booking index: %v", err)
	}
	return nil
}

func (mdb *MongodbRepo) CreateBooking(ctx context.Context, booking *Booking) (*Booking, error) {
	if err := booking.BeforeCreate(); err != nil {
		return nil, err
	}
	col, err := mdb.GetCollection(ctx, DbName, BookingColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	if _, err := col.InsertOne(ctx, booking); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateBooking
		}
		return nil, fmt.Errorf("error inserting booking: %v", err)
	}
	return booking, nil
}

func (mdb *MongodbRepo) GetBookingByID(ctx context.Context, id primitive.ObjectID) (*Booking, error) {
	col, err := mdb.GetCollection(ctx, DbName, BookingColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var booking Booking
	err = col.FindOne(ctx, bson.M{"_id": id}).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding booking: %v", err)
	}
	return &booking, nil
}

func (mdb *MongodbRepo) ListBookingsByVenue(ctx context.Context, venueId primitive.ObjectID, statuses []BookingStatus) ([]*Booking, error) {
	filter := bson.M{"venue": venueId}
	if len(statuses) > 0 {
		filter["status"] = bson.M{"$in": statuses}
	}
	return mdb.listBookings(ctx, filter)
}

func (mdb *MongodbRepo) ListBookingsByUser(ctx context.Context, userId primitive.ObjectID) ([]*Booking, error) {
	return mdb.listBookings(ctx, bson.M{"user": userId})
}

func (mdb *MongodbRepo) listBookings(ctx context.Context, filter bson.M) ([]*Booking, error) {
	col, err := mdb.GetCollection(ctx, DbName, BookingColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding bookings: %v", err)
	}
	defer cursor.Close(ctx)

	var bookings []*Booking
	for cursor.Next(ctx) {
		var b Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("error decoding booking: %v", err)
		}
		bookings = append(bookings, &b)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return bookings, nil
}

func (mdb *MongodbRepo) FindActiveBooking(ctx context.Context, userId, venueId primitive.ObjectID) (*Booking, error) {
	col, err := mdb.GetCollection(ctx, DbName, BookingColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	filter := bson.M{
		"user":   userId,
		"venue":  venueId,
		"status": bson.M{"$in": bson.A{BookingStatusPending, BookingStatusAccepted, BookingStatusRunning}},
	}

	var booking Booking
	err = col.FindOne(ctx, filter).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding booking: %v", err)
	}
	return &booking, nil
}

// UpdateBookingStatus performs a compare-and-swap on the status field: the
// filter matches both the id and the expected current status, so a concurrent
// transition loses cleanly with ErrNotFound instead of clobbering.
func (mdb *MongodbRepo) UpdateBookingStatus(ctx context.Context, id primitive.ObjectID, from, to BookingStatus, reason string) (*Booking, error) {
	col, err := mdb.GetCollection(ctx, DbName, BookingColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	set := bson.M{
		"status":     to,
		"updated_at": time.Now(),
	}
	if reason != "" {
		set["rejection_reason"] = reason
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var booking Booking
	err = col.FindOneAndUpdate(ctx, bson.M{"_id": id, "status": from}, bson.M{"$set": set}, opts).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error updating booking status: %v", err)
	}
	return &booking, nil
}
