package memory

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/Guyuepp/go-tube-engagement/domain"
)

// Fixtures is the JSON document LoadFixtures reads. Content normally lives in
// an external store; with STORE_DRIVER=memory this is the only way to fill it.
type Fixtures struct {
	Users []struct {
		ID       int64  `json:"id"`
		Name     string `json:"name"`
		Username string `json:"username"`
		Email    string `json:"email"`
		Avatar   string `json:"avatar"`
	} `json:"users"`
	Videos []struct {
		ID          int64   `json:"id"`
		OwnerID     int64   `json:"owner"`
		Title       string  `json:"title"`
		Description string  `json:"description"`
		Duration    float64 `json:"duration"`
		Views       int64   `json:"views"`
		IsPublished bool    `json:"isPublished"`
	} `json:"videos"`
	Comments []struct {
		ID      int64  `json:"id"`
		VideoID int64  `json:"video"`
		OwnerID int64  `json:"owner"`
		Content string `json:"content"`
	} `json:"comments"`
	Tweets []struct {
		ID      int64  `json:"id"`
		OwnerID int64  `json:"owner"`
		Content string `json:"content"`
	} `json:"tweets"`
	Playlists []struct {
		ID          int64   `json:"id"`
		OwnerID     int64   `json:"owner"`
		Name        string  `json:"name"`
		Description string  `json:"description"`
		Videos      []int64 `json:"videos"`
	} `json:"playlists"`
	Likes []struct {
		ActorID  int64             `json:"actor"`
		Kind     domain.TargetKind `json:"kind"`
		TargetID int64             `json:"target"`
	} `json:"likes"`
	Subscriptions []struct {
		SubscriberID int64 `json:"subscriber"`
		ChannelID    int64 `json:"channel"`
	} `json:"subscriptions"`
}

// LoadFixturesFile opens path and loads it into s.
func (s *Store) LoadFixturesFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open fixtures: %w", err)
	}
	defer f.Close()
	return s.LoadFixtures(f)
}

// LoadFixtures adds every record of the document to s. Edges must point at
// users and content defined before them; ids left at 0 are assigned.
func (s *Store) LoadFixtures(r io.Reader) error {
	var fx Fixtures
	if err := json.NewDecoder(r).Decode(&fx); err != nil {
		return fmt.Errorf("%w: fixtures: %v", domain.ErrBadParamInput, err)
	}

	for _, u := range fx.Users {
		s.PutUser(domain.User{ID: u.ID, Name: u.Name, Username: u.Username, Email: u.Email, Avatar: u.Avatar})
	}
	for _, v := range fx.Videos {
		s.PutVideo(domain.Video{
			ID: v.ID, OwnerID: v.OwnerID, Title: v.Title, Description: v.Description,
			Duration: v.Duration, Views: v.Views, IsPublished: v.IsPublished,
		})
	}
	for _, c := range fx.Comments {
		s.PutComment(domain.Comment{ID: c.ID, VideoID: c.VideoID, OwnerID: c.OwnerID, Content: c.Content})
	}
	for _, t := range fx.Tweets {
		s.PutTweet(domain.Tweet{ID: t.ID, OwnerID: t.OwnerID, Content: t.Content})
	}
	for _, p := range fx.Playlists {
		s.PutPlaylist(domain.Playlist{ID: p.ID, OwnerID: p.OwnerID, Name: p.Name, Description: p.Description, VideoIDs: p.Videos})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range fx.Likes {
		target := domain.Target{Kind: l.Kind, ID: l.TargetID}
		if _, _, ok := s.owner(target); !ok {
			return fmt.Errorf("%w: fixture like on %s", domain.ErrNotFound, target)
		}
		if _, ok := s.users[l.ActorID]; !ok {
			return fmt.Errorf("%w: fixture like by user %d", domain.ErrNotFound, l.ActorID)
		}
		s.likes[likeKey{l.ActorID, target}] = domain.Like{ID: s.nextID(), ActorID: l.ActorID, Target: target, CreatedAt: s.now()}
	}
	for _, sub := range fx.Subscriptions {
		if sub.SubscriberID == sub.ChannelID {
			return fmt.Errorf("%w: fixture subscription of user %d to itself", domain.ErrInvalidOperation, sub.ChannelID)
		}
		_, okSub := s.users[sub.SubscriberID]
		_, okCh := s.users[sub.ChannelID]
		if !okSub || !okCh {
			return fmt.Errorf("%w: fixture subscription %d -> %d", domain.ErrNotFound, sub.SubscriberID, sub.ChannelID)
		}
		s.subs[subKey{sub.SubscriberID, sub.ChannelID}] = domain.Subscription{
			ID: s.nextID(), SubscriberID: sub.SubscriberID, ChannelID: sub.ChannelID, CreatedAt: s.now(),
		}
	}
	return nil
}
