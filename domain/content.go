package domain

import (
	"context"
	"time"
)

// Video is the read-only projection of a video the engagement core needs.
type Video struct {
	ID          int64
	OwnerID     int64
	Title       string
	Description string
	VideoURL    string
	Thumbnail   string
	Duration    float64
	Views       int64
	IsPublished bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Comment on a video.
type Comment struct {
	ID        int64
	VideoID   int64
	OwnerID   int64
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Tweet is a short text post owned by a user.
type Tweet struct {
	ID        int64
	OwnerID   int64
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Playlist is a named list of videos owned by a user.
type Playlist struct {
	ID          int64
	OwnerID     int64
	Name        string
	Description string
	VideoIDs    []int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Collection names a listable content collection.
type Collection string

const (
	CollectionVideos    Collection = "videos"
	CollectionComments  Collection = "comments"
	CollectionTweets    Collection = "tweets"
	CollectionPlaylists Collection = "playlists"
)

// ListFilter narrows a listing. Zero values mean "no constraint".
type ListFilter struct {
	// OwnerID restricts to items owned by this user.
	OwnerID int64
	// VideoID restricts comments to one video.
	VideoID int64
	// Query is a case-insensitive substring match on the collection's text field.
	Query string
	// PublishedOnly drops unpublished videos.
	PublishedOnly bool
}

// ContentRepository reads the content store. CRUD on content lives elsewhere.
type ContentRepository interface {
	// Exists reports whether the target is present in the content store.
	Exists(ctx context.Context, target Target) (bool, error)

	ListVideos(ctx context.Context, filter ListFilter, q PageQuery) ([]Video, int64, error)
	ListComments(ctx context.Context, filter ListFilter, q PageQuery) ([]Comment, int64, error)
	ListTweets(ctx context.Context, filter ListFilter, q PageQuery) ([]Tweet, int64, error)
	ListPlaylists(ctx context.Context, filter ListFilter, q PageQuery) ([]Playlist, int64, error)

	// FetchIDs returns up to limit ids of the given kind greater than cursor, ascending.
	FetchIDs(ctx context.Context, kind TargetKind, cursor, limit int64) ([]int64, error)
}

// ContentUsecase serves the paginated listings.
type ContentUsecase interface {
	ListVideos(ctx context.Context, filter ListFilter, q PageQuery) (Page[Video], error)
	ListVideoComments(ctx context.Context, videoID int64, q PageQuery) (Page[Comment], error)
	ListUserTweets(ctx context.Context, userID int64, q PageQuery) (Page[Tweet], error)
	ListUserPlaylists(ctx context.Context, userID int64, q PageQuery) (Page[Playlist], error)
}
