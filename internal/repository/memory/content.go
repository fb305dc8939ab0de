package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/Guyuepp/go-tube-engagement/domain"
)

// sortKeys maps a logical sort field to a comparison over one collection.
type sortKeys[T any] map[string]func(a, b T) int

func byTime[T any](get func(T) time.Time) func(a, b T) int {
	return func(a, b T) int { return get(a).Compare(get(b)) }
}

var (
	videoSort = sortKeys[domain.Video]{
		"createdAt": byTime(func(v domain.Video) time.Time { return v.CreatedAt }),
		"updatedAt": byTime(func(v domain.Video) time.Time { return v.UpdatedAt }),
		"views":     func(a, b domain.Video) int { return cmp.Compare(a.Views, b.Views) },
		"title":     func(a, b domain.Video) int { return cmp.Compare(a.Title, b.Title) },
		"duration":  func(a, b domain.Video) int { return cmp.Compare(a.Duration, b.Duration) },
	}
	commentSort = sortKeys[domain.Comment]{
		"createdAt": byTime(func(c domain.Comment) time.Time { return c.CreatedAt }),
		"updatedAt": byTime(func(c domain.Comment) time.Time { return c.UpdatedAt }),
	}
	tweetSort = sortKeys[domain.Tweet]{
		"createdAt": byTime(func(t domain.Tweet) time.Time { return t.CreatedAt }),
		"updatedAt": byTime(func(t domain.Tweet) time.Time { return t.UpdatedAt }),
	}
	playlistSort = sortKeys[domain.Playlist]{
		"createdAt": byTime(func(p domain.Playlist) time.Time { return p.CreatedAt }),
		"updatedAt": byTime(func(p domain.Playlist) time.Time { return p.UpdatedAt }),
		"name":      func(a, b domain.Playlist) int { return cmp.Compare(a.Name, b.Name) },
	}
)

// window filters, sorts and slices items the same way the mysql listings do.
func window[T any](items []T, keep func(T) bool, keys sortKeys[T], id func(T) int64, q domain.PageQuery) ([]T, int64) {
	filtered := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			filtered = append(filtered, it)
		}
	}

	less, ok := keys[q.SortField]
	if !ok {
		less = keys[domain.DefaultSortField]
	}
	slices.SortFunc(filtered, func(a, b T) int {
		c := less(a, b)
		if c == 0 {
			c = cmp.Compare(id(a), id(b))
		}
		if q.Descending() {
			return -c
		}
		return c
	})

	total := int64(len(filtered))
	start := min(q.Offset(), len(filtered))
	end := min(start+q.Limit, len(filtered))
	return filtered[start:end], total
}

func containsFold(s, query string) bool {
	return query == "" || strings.Contains(strings.ToLower(s), strings.ToLower(query))
}

func ownedBy(filter domain.ListFilter, owner int64) bool {
	return filter.OwnerID <= 0 || filter.OwnerID == owner
}

func values[K comparable, V any](m map[K]V) []V {
	res := make([]V, 0, len(m))
	for _, v := range m {
		res = append(res, v)
	}
	return res
}

type contentRepository struct {
	s *Store
}

var _ domain.ContentRepository = (*contentRepository)(nil)

func (r *contentRepository) Exists(ctx context.Context, target domain.Target) (bool, error) {
	if !target.Kind.Valid() {
		return false, fmt.Errorf("%w: unknown target kind %q", domain.ErrInvalidIdentifier, target.Kind)
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, _, ok := r.s.owner(target)
	return ok, nil
}

func (r *contentRepository) ListVideos(ctx context.Context, filter domain.ListFilter, q domain.PageQuery) ([]domain.Video, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	items, total := window(values(r.s.videos), func(v domain.Video) bool {
		return ownedBy(filter, v.OwnerID) &&
			containsFold(v.Title, filter.Query) &&
			(!filter.PublishedOnly || v.IsPublished)
	}, videoSort, func(v domain.Video) int64 { return v.ID }, q)
	return items, total, nil
}

func (r *contentRepository) ListComments(ctx context.Context, filter domain.ListFilter, q domain.PageQuery) ([]domain.Comment, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	items, total := window(values(r.s.comments), func(c domain.Comment) bool {
		return (filter.VideoID <= 0 || c.VideoID == filter.VideoID) &&
			ownedBy(filter, c.OwnerID) &&
			containsFold(c.Content, filter.Query)
	}, commentSort, func(c domain.Comment) int64 { return c.ID }, q)
	return items, total, nil
}

func (r *contentRepository) ListTweets(ctx context.Context, filter domain.ListFilter, q domain.PageQuery) ([]domain.Tweet, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	items, total := window(values(r.s.tweets), func(t domain.Tweet) bool {
		return ownedBy(filter, t.OwnerID) && containsFold(t.Content, filter.Query)
	}, tweetSort, func(t domain.Tweet) int64 { return t.ID }, q)
	return items, total, nil
}

func (r *contentRepository) ListPlaylists(ctx context.Context, filter domain.ListFilter, q domain.PageQuery) ([]domain.Playlist, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	items, total := window(values(r.s.playlists), func(p domain.Playlist) bool {
		return ownedBy(filter, p.OwnerID) && containsFold(p.Name, filter.Query)
	}, playlistSort, func(p domain.Playlist) int64 { return p.ID }, q)
	for i := range items {
		items[i].VideoIDs = slices.Clone(items[i].VideoIDs)
	}
	return items, total, nil
}

func (r *contentRepository) FetchIDs(ctx context.Context, kind domain.TargetKind, cursor, limit int64) ([]int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var ids []int64
	switch kind {
	case domain.TargetVideo:
		ids = keysAfter(r.s.videos, cursor)
	case domain.TargetComment:
		ids = keysAfter(r.s.comments, cursor)
	case domain.TargetTweet:
		ids = keysAfter(r.s.tweets, cursor)
	default:
		return nil, fmt.Errorf("%w: unknown target kind %q", domain.ErrInvalidIdentifier, kind)
	}
	return ids[:min(int64(len(ids)), limit)], nil
}

// keysAfter returns the ids greater than cursor, ascending.
func keysAfter[V any](m map[int64]V, cursor int64) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		if id > cursor {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}

type userRepository struct {
	s *Store
}

var _ domain.UserRepository = (*userRepository)(nil)

func (r *userRepository) GetByID(ctx context.Context, id int64) (domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return u, nil
}

func (r *userRepository) Exists(ctx context.Context, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.users[id]
	return ok, nil
}

func (r *userRepository) GetByIDs(ctx context.Context, userIDs []int64) ([]domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	res := make([]domain.User, 0, len(userIDs))
	for _, id := range userIDs {
		if u, ok := r.s.users[id]; ok {
			res = append(res, u)
		}
	}
	return res, nil
}

func (r *userRepository) FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	ids := keysAfter(r.s.users, cursor)
	return ids[:min(int64(len(ids)), limit)], nil
}

type statsRepository struct {
	s *Store
}

var _ domain.StatsRepository = (*statsRepository)(nil)

func (r *statsRepository) CountVideos(ctx context.Context, ownerID int64) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for _, v := range r.s.videos {
		if v.OwnerID == ownerID {
			n++
		}
	}
	return n, nil
}

func (r *statsRepository) CountSubscribers(ctx context.Context, channelID int64) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for k := range r.s.subs {
		if k.channel == channelID {
			n++
		}
	}
	return n, nil
}

func (r *statsRepository) CountLikesOnOwner(ctx context.Context, ownerID int64, kind domain.TargetKind) (int64, error) {
	if !kind.Valid() {
		return 0, fmt.Errorf("%w: unknown target kind %q", domain.ErrInvalidIdentifier, kind)
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for k := range r.s.likes {
		if k.target.Kind != kind {
			continue
		}
		if owner, _, ok := r.s.owner(k.target); ok && owner == ownerID {
			n++
		}
	}
	return n, nil
}

func (r *statsRepository) SumViews(ctx context.Context, ownerID int64) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var total int64
	for _, v := range r.s.videos {
		if v.OwnerID == ownerID {
			total += v.Views
		}
	}
	return total, nil
}
