package model

import "time"

// LikedMovie is one liked-movie record in the document store, keyed by
// (userId, title). The stored detail snapshot lets the UI render the
// liked list without re-querying the metadata provider.
type LikedMovie struct {
	ID      string      `json:"id" bson:"_id"`
	UserID  string      `json:"userId" bson:"user_id"`
	Title   string      `json:"title" bson:"title"`
	Detail  MovieDetail `json:"detail" bson:"detail"`
	LikedAt time.Time   `json:"likedAt" bson:"liked_at"`
}
