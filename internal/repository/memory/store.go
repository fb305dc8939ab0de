// Package memory keeps the whole graph in process memory behind one mutex.
// It backs STORE_DRIVER=memory and the race tests.
package memory

import (
	"sync"
	"time"

	"github.com/Guyuepp/go-tube-engagement/domain"
)

type likeKey struct {
	actor  int64
	target domain.Target
}

type subKey struct {
	subscriber, channel int64
}

// Store holds every table. Repositories are views over it.
type Store struct {
	mu sync.Mutex

	seq int64
	now func() time.Time

	users     map[int64]domain.User
	videos    map[int64]domain.Video
	comments  map[int64]domain.Comment
	tweets    map[int64]domain.Tweet
	playlists map[int64]domain.Playlist

	likes map[likeKey]domain.Like
	subs  map[subKey]domain.Subscription
}

func NewStore() *Store {
	return &Store{
		now:       time.Now,
		users:     make(map[int64]domain.User),
		videos:    make(map[int64]domain.Video),
		comments:  make(map[int64]domain.Comment),
		tweets:    make(map[int64]domain.Tweet),
		playlists: make(map[int64]domain.Playlist),
		likes:     make(map[likeKey]domain.Like),
		subs:      make(map[subKey]domain.Subscription),
	}
}

// nextID must be called with mu held.
func (s *Store) nextID() int64 {
	s.seq++
	return s.seq
}

// stamp fills id and timestamps when unset. Must be called with mu held.
func (s *Store) stamp(id *int64, created, updated *time.Time) {
	if *id == 0 {
		*id = s.nextID()
	} else if *id > s.seq {
		s.seq = *id
	}
	if created.IsZero() {
		*created = s.now()
	}
	if updated.IsZero() {
		*updated = *created
	}
}

func (s *Store) PutUser(u domain.User) domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stamp(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	s.users[u.ID] = u
	return u
}

func (s *Store) PutVideo(v domain.Video) domain.Video {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stamp(&v.ID, &v.CreatedAt, &v.UpdatedAt)
	s.videos[v.ID] = v
	return v
}

func (s *Store) PutComment(c domain.Comment) domain.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stamp(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	s.comments[c.ID] = c
	return c
}

func (s *Store) PutTweet(t domain.Tweet) domain.Tweet {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stamp(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	s.tweets[t.ID] = t
	return t
}

func (s *Store) PutPlaylist(p domain.Playlist) domain.Playlist {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stamp(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if p.VideoIDs == nil {
		p.VideoIDs = []int64{}
	}
	s.playlists[p.ID] = p
	return p
}

// DeleteContent removes a content item but leaves its like edges behind,
// the way an external content service would.
func (s *Store) DeleteContent(target domain.Target) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch target.Kind {
	case domain.TargetVideo:
		delete(s.videos, target.ID)
	case domain.TargetComment:
		delete(s.comments, target.ID)
	case domain.TargetTweet:
		delete(s.tweets, target.ID)
	}
}

// owner looks up a content item's owner. Must be called with mu held.
func (s *Store) owner(target domain.Target) (ownerID int64, createdAt time.Time, ok bool) {
	switch target.Kind {
	case domain.TargetVideo:
		v, ok := s.videos[target.ID]
		return v.OwnerID, v.CreatedAt, ok
	case domain.TargetComment:
		c, ok := s.comments[target.ID]
		return c.OwnerID, c.CreatedAt, ok
	case domain.TargetTweet:
		t, ok := s.tweets[target.ID]
		return t.OwnerID, t.CreatedAt, ok
	}
	return 0, time.Time{}, false
}

func (s *Store) Likes() *likeRepository {
	return &likeRepository{s}
}

func (s *Store) Subscriptions() *subscriptionRepository {
	return &subscriptionRepository{s}
}

func (s *Store) Content() *contentRepository {
	return &contentRepository{s}
}

func (s *Store) Users() *userRepository {
	return &userRepository{s}
}

func (s *Store) Stats() *statsRepository {
	return &statsRepository{s}
}
