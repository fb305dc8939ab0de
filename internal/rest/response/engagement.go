package response

import (
	"time"

	"github.com/Guyuepp/go-tube-engagement/domain"
)

type LikeToggle struct {
	State      string `json:"state"`
	IsLiked    bool   `json:"isLiked"`
	TargetKind string `json:"targetKind"`
	TargetID   int64  `json:"targetId"`
}

func NewLikeToggleFromDomain(r domain.LikeToggleResult) LikeToggle {
	return LikeToggle{
		State:      string(r.State),
		IsLiked:    r.State == domain.StateAdded,
		TargetKind: string(r.Target.Kind),
		TargetID:   r.Target.ID,
	}
}

type SubscriptionToggle struct {
	State        string `json:"state"`
	IsSubscribed bool   `json:"isSubscribed"`
	ChannelID    int64  `json:"channelId"`
}

func NewSubscriptionToggleFromDomain(r domain.SubscriptionToggleResult) SubscriptionToggle {
	return SubscriptionToggle{
		State:        string(r.State),
		IsSubscribed: r.State == domain.StateAdded,
		ChannelID:    r.ChannelID,
	}
}

type LikedTarget struct {
	TargetKind string    `json:"targetKind"`
	TargetID   int64     `json:"targetId"`
	OwnerID    int64     `json:"ownerId"`
	LikedAt    time.Time `json:"likedAt"`
	CreatedAt  time.Time `json:"createdAt"`
}

func NewLikedTargetFromDomain(r *domain.ContentRef) LikedTarget {
	return LikedTarget{
		TargetKind: string(r.Target.Kind),
		TargetID:   r.Target.ID,
		OwnerID:    r.OwnerID,
		LikedAt:    r.LikedAt,
		CreatedAt:  r.CreatedAt,
	}
}

type Profile struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar,omitempty"`
}

func newProfile(p domain.Profile) Profile {
	return Profile{
		ID:       p.ID,
		Name:     p.Name,
		Username: p.Username,
		Email:    p.Email,
		Avatar:   p.Avatar,
	}
}

type Subscriber struct {
	Subscriber   Profile   `json:"subscriber"`
	SubscribedAt time.Time `json:"subscribedAt"`
}

func NewSubscriberFromDomain(s *domain.Subscriber) Subscriber {
	return Subscriber{Subscriber: newProfile(s.Profile), SubscribedAt: s.SubscribedAt}
}

type Channel struct {
	Channel      Profile   `json:"channel"`
	SubscribedAt time.Time `json:"subscribedAt"`
}

func NewChannelFromDomain(ch *domain.Channel) Channel {
	return Channel{Channel: newProfile(ch.Profile), SubscribedAt: ch.SubscribedAt}
}

type ChannelStats struct {
	TotalVideos      int64 `json:"totalVideos"`
	TotalSubscribers int64 `json:"totalSubscribers"`
	TotalLikes       int64 `json:"totalLikes"`
	TotalViews       int64 `json:"totalViews"`
}

func NewChannelStatsFromDomain(s domain.ChannelStats) ChannelStats {
	return ChannelStats(s)
}
