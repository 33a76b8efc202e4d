// Package store persists per-user liked-movie records in MongoDB.
package store

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/shop2008/movie-recommendation-app/internal/model"
	"github.com/shop2008/movie-recommendation-app/internal/store/mongo"
)

// CollectionLikes is the liked-movies collection name.
const CollectionLikes = "likes"

var (
	ErrUserIDRequired = errors.New("user id is required")
	ErrTitleRequired  = errors.New("title is required")
	ErrAlreadyLiked   = errors.New("movie already liked")
)

// LikeRepository stores liked movies keyed by (userId, title).
type LikeRepository struct {
	database   mongo.Database
	collection string
}

// NewLikeRepository creates a LikeRepository over the given database.
func NewLikeRepository(db mongo.Database, collection string) *LikeRepository {
	return &LikeRepository{database: db, collection: collection}
}

// Create records a like. Liking the same title twice is rejected so a
// user's history stays a set.
func (r *LikeRepository) Create(ctx context.Context, userID string, detail model.MovieDetail) (model.LikedMovie, error) {
	userID = strings.TrimSpace(userID)
	title := strings.TrimSpace(detail.Title)
	if userID == "" {
		return model.LikedMovie{}, ErrUserIDRequired
	}
	if title == "" {
		return model.LikedMovie{}, ErrTitleRequired
	}

	coll := r.database.Collection(r.collection)
	count, err := coll.CountDocuments(ctx, bson.M{"user_id": userID, "title": title})
	if err != nil {
		return model.LikedMovie{}, err
	}
	if count > 0 {
		return model.LikedMovie{}, ErrAlreadyLiked
	}

	like := model.LikedMovie{
		ID:      uuid.NewString(),
		UserID:  userID,
		Title:   title,
		Detail:  detail,
		LikedAt: time.Now().UTC(),
	}
	if _, err := coll.InsertOne(ctx, like); err != nil {
		return model.LikedMovie{}, err
	}
	return like, nil
}

// Delete removes one liked title for the user. Deleting a title that was
// never liked is not an error.
func (r *LikeRepository) Delete(ctx context.Context, userID, title string) error {
	userID = strings.TrimSpace(userID)
	title = strings.TrimSpace(title)
	if userID == "" {
		return ErrUserIDRequired
	}
	if title == "" {
		return ErrTitleRequired
	}

	_, err := r.database.Collection(r.collection).DeleteOne(ctx, bson.M{"user_id": userID, "title": title})
	return err
}

// ListByUser returns the user's liked movies, most recent first.
func (r *LikeRepository) ListByUser(ctx context.Context, userID string) ([]model.LikedMovie, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrUserIDRequired
	}

	cursor, err := r.database.Collection(r.collection).Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var likes []model.LikedMovie
	if err := cursor.All(ctx, &likes); err != nil {
		return nil, err
	}
	sort.Slice(likes, func(i, j int) bool {
		return likes[i].LikedAt.After(likes[j].LikedAt)
	})
	return likes, nil
}

// TitlesByUser returns just the liked titles, in liked order, for use as
// the recommendation exclusion list.
func (r *LikeRepository) TitlesByUser(ctx context.Context, userID string) ([]string, error) {
	likes, err := r.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	titles := make([]string, 0, len(likes))
	for _, like := range likes {
		titles = append(titles, like.Title)
	}
	return titles, nil
}
