package response

import (
	"time"

	"github.com/Guyuepp/go-tube-engagement/domain"
)

type Video struct {
	ID          int64     `json:"id"`
	OwnerID     int64     `json:"owner"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	VideoURL    string    `json:"videoFile"`
	Thumbnail   string    `json:"thumbnail"`
	Duration    float64   `json:"duration"`
	Views       int64     `json:"views"`
	IsPublished bool      `json:"isPublished"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func NewVideoFromDomain(v *domain.Video) Video {
	return Video{
		ID:          v.ID,
		OwnerID:     v.OwnerID,
		Title:       v.Title,
		Description: v.Description,
		VideoURL:    v.VideoURL,
		Thumbnail:   v.Thumbnail,
		Duration:    v.Duration,
		Views:       v.Views,
		IsPublished: v.IsPublished,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

type Comment struct {
	ID        int64     `json:"id"`
	VideoID   int64     `json:"video"`
	OwnerID   int64     `json:"owner"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewCommentFromDomain(c *domain.Comment) Comment {
	return Comment{
		ID:        c.ID,
		VideoID:   c.VideoID,
		OwnerID:   c.OwnerID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

type Tweet struct {
	ID        int64     `json:"id"`
	OwnerID   int64     `json:"owner"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewTweetFromDomain(t *domain.Tweet) Tweet {
	return Tweet{
		ID:        t.ID,
		OwnerID:   t.OwnerID,
		Content:   t.Content,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

type Playlist struct {
	ID          int64     `json:"id"`
	OwnerID     int64     `json:"owner"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Videos      []int64   `json:"videos"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func NewPlaylistFromDomain(p *domain.Playlist) Playlist {
	videos := p.VideoIDs
	if videos == nil {
		videos = []int64{}
	}
	return Playlist{
		ID:          p.ID,
		OwnerID:     p.OwnerID,
		Name:        p.Name,
		Description: p.Description,
		Videos:      videos,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// Page is the wire shape of a domain.Page.
type Page[T any] struct {
	Items       []T   `json:"items"`
	TotalCount  int64 `json:"totalCount"`
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	Limit       int   `json:"limit"`
}

// NewPage converts every item of p with conv.
func NewPage[D any, T any](p domain.Page[D], conv func(*D) T) Page[T] {
	items := make([]T, len(p.Items))
	for i := range p.Items {
		items[i] = conv(&p.Items[i])
	}
	return Page[T]{
		Items:       items,
		TotalCount:  p.TotalCount,
		CurrentPage: p.CurrentPage,
		TotalPages:  p.TotalPages,
		Limit:       p.Limit,
	}
}

// List converts a plain slice with conv.
func List[D any, T any](items []D, conv func(*D) T) []T {
	res := make([]T, len(items))
	for i := range items {
		res[i] = conv(&items[i])
	}
	return res
}
