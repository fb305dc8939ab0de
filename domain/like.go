package domain

import (
	"context"
	"fmt"
	"iter"
	"time"
)

// TargetKind discriminates what a Like points at.
type TargetKind string

const (
	TargetVideo   TargetKind = "video"
	TargetComment TargetKind = "comment"
	TargetTweet   TargetKind = "tweet"
)

// TargetKinds lists every likeable kind, in a stable order.
var TargetKinds = []TargetKind{TargetVideo, TargetComment, TargetTweet}

// ParseTargetKind accepts the full kind name or its one-letter route alias (v, c, t).
func ParseTargetKind(s string) (TargetKind, error) {
	switch s {
	case "video", "videos", "v":
		return TargetVideo, nil
	case "comment", "comments", "c":
		return TargetComment, nil
	case "tweet", "tweets", "t":
		return TargetTweet, nil
	default:
		return "", fmt.Errorf("%w: unknown target kind %q", ErrInvalidIdentifier, s)
	}
}

func (k TargetKind) Valid() bool {
	switch k {
	case TargetVideo, TargetComment, TargetTweet:
		return true
	}
	return false
}

// Target is the single content item a Like refers to.
// A Like holds exactly one Target, so it can never point at two kinds at once.
type Target struct {
	Kind TargetKind `validate:"required,oneof=video comment tweet"`
	ID   int64      `validate:"gt=0"`
}

func (t Target) String() string {
	return fmt.Sprintf("%s:%d", t.Kind, t.ID)
}

// Like is an immutable actor -> target edge.
type Like struct {
	ID        int64
	ActorID   int64
	Target    Target
	CreatedAt time.Time
}

// ToggleState is the outcome of a toggle call.
type ToggleState string

const (
	StateAdded   ToggleState = "added"
	StateRemoved ToggleState = "removed"
)

// MaxToggleAttempts bounds how often a toggle transaction is retried after losing a race.
const MaxToggleAttempts = 3

// LikeToggleResult is returned to callers of ToggleLike.
type LikeToggleResult struct {
	State  ToggleState
	Target Target
}

// ContentRef is a resolved like target: the edge joined with the content it points at.
type ContentRef struct {
	Target    Target
	OwnerID   int64
	LikedAt   time.Time
	CreatedAt time.Time
}

// LikeRepository is the engagement edge store for likes.
type LikeRepository interface {
	// Toggle removes the (actor, target) edge if present, else inserts it,
	// as one atomic step. Returns ErrConflict if the race could not be settled.
	Toggle(ctx context.Context, actorID int64, target Target) (ToggleState, error)

	// Exists reports whether the (actor, target) edge is present.
	Exists(ctx context.Context, actorID int64, target Target) (bool, error)

	// LikedTargets streams the actor's liked targets of one kind, newest like first.
	// Edges whose target no longer exists are skipped. Ranging again re-runs the query.
	LikedTargets(ctx context.Context, actorID int64, kind TargetKind) iter.Seq2[ContentRef, error]

	// LikedVideos streams the actor's liked videos, newest like first.
	LikedVideos(ctx context.Context, actorID int64) iter.Seq2[Video, error]
}

// EngagementUsecase is the toggle and graph-query surface used by the rest layer.
type EngagementUsecase interface {
	ToggleLike(ctx context.Context, actorID int64, target Target) (LikeToggleResult, error)
	ToggleSubscription(ctx context.Context, actorID, channelID int64) (SubscriptionToggleResult, error)
	LikedTargets(ctx context.Context, actorID int64, kind TargetKind) ([]ContentRef, error)
	LikedVideos(ctx context.Context, actorID int64) ([]Video, error)
	ListSubscribers(ctx context.Context, channelID int64) ([]Subscriber, error)
	ListSubscriptions(ctx context.Context, subscriberID int64) ([]Channel, error)
}
