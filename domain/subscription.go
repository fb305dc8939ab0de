package domain

import (
	"context"
	"time"
)

// Subscription is a subscriber -> channel edge. SubscriberID never equals ChannelID.
type Subscription struct {
	ID           int64
	SubscriberID int64
	ChannelID    int64
	CreatedAt    time.Time
}

// SubscriptionToggleResult is returned to callers of ToggleSubscription.
type SubscriptionToggleResult struct {
	State     ToggleState
	ChannelID int64
}

// Subscriber is a user subscribed to a channel, with public profile fields.
type Subscriber struct {
	Profile
	SubscribedAt time.Time
}

// Channel is a channel some user subscribed to, with public profile fields.
type Channel struct {
	Profile
	SubscribedAt time.Time
}

// SubscriptionRepository is the engagement edge store for subscriptions.
type SubscriptionRepository interface {
	// Toggle removes the (subscriber, channel) edge if present, else inserts it, atomically.
	// Callers reject subscriber == channel before calling.
	Toggle(ctx context.Context, subscriberID, channelID int64) (ToggleState, error)

	Exists(ctx context.Context, subscriberID, channelID int64) (bool, error)

	// ListSubscribers returns users subscribed to channelID, newest first.
	ListSubscribers(ctx context.Context, channelID int64) ([]Subscriber, error)

	// ListSubscriptions returns channels subscriberID is subscribed to, newest first.
	ListSubscriptions(ctx context.Context, subscriberID int64) ([]Channel, error)
}
