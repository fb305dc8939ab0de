package model

import (
	"time"

	"github.com/Guyuepp/go-tube-engagement/domain"
)

type Subscription struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	SubscriberID int64     `gorm:"column:subscriber_id;not null;uniqueIndex:uk_subscription_pair,priority:1"`
	ChannelID    int64     `gorm:"column:channel_id;not null;uniqueIndex:uk_subscription_pair,priority:2;index:idx_subscription_channel"`
	CreatedAt    time.Time `gorm:"type:datetime(6)"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}

func (m *Subscription) ToDomain() domain.Subscription {
	return domain.Subscription{
		ID:           m.ID,
		SubscriberID: m.SubscriberID,
		ChannelID:    m.ChannelID,
		CreatedAt:    m.CreatedAt,
	}
}

// SubscriptionProfile is a subscription joined with the user on the other side of the edge.
type SubscriptionProfile struct {
	UserID       int64     `gorm:"column:user_id"`
	Name         string    `gorm:"column:name"`
	Username     string    `gorm:"column:username"`
	Email        string    `gorm:"column:email"`
	Avatar       string    `gorm:"column:avatar"`
	SubscribedAt time.Time `gorm:"column:subscribed_at"`
}

func (p *SubscriptionProfile) Profile() domain.Profile {
	return domain.Profile{
		ID:       p.UserID,
		Name:     p.Name,
		Username: p.Username,
		Email:    p.Email,
		Avatar:   p.Avatar,
	}
}
