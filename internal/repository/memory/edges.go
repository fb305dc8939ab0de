package memory

import (
	"cmp"
	"context"
	"fmt"
	"iter"
	"slices"

	"github.com/Guyuepp/go-tube-engagement/domain"
)

type likeRepository struct {
	s *Store
}

var _ domain.LikeRepository = (*likeRepository)(nil)

func (r *likeRepository) Toggle(ctx context.Context, actorID int64, target domain.Target) (domain.ToggleState, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := likeKey{actorID, target}
	if _, ok := r.s.likes[key]; ok {
		delete(r.s.likes, key)
		return domain.StateRemoved, nil
	}
	r.s.likes[key] = domain.Like{
		ID:        r.s.nextID(),
		ActorID:   actorID,
		Target:    target,
		CreatedAt: r.s.now(),
	}
	return domain.StateAdded, nil
}

func (r *likeRepository) Exists(ctx context.Context, actorID int64, target domain.Target) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.likes[likeKey{actorID, target}]
	return ok, nil
}

// newestFirst orders edges by creation time, then id, both descending.
func newestFirst(a, b domain.Like) int {
	if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
		return c
	}
	return cmp.Compare(b.ID, a.ID)
}

// snapshot collects the actor's likes of one kind. Must be called with mu held.
func (r *likeRepository) snapshot(actorID int64, kind domain.TargetKind) []domain.Like {
	var likes []domain.Like
	for k, l := range r.s.likes {
		if k.actor == actorID && k.target.Kind == kind {
			likes = append(likes, l)
		}
	}
	slices.SortFunc(likes, newestFirst)
	return likes
}

func (r *likeRepository) LikedTargets(ctx context.Context, actorID int64, kind domain.TargetKind) iter.Seq2[domain.ContentRef, error] {
	return func(yield func(domain.ContentRef, error) bool) {
		if !kind.Valid() {
			yield(domain.ContentRef{}, fmt.Errorf("%w: unknown target kind %q", domain.ErrInvalidIdentifier, kind))
			return
		}

		r.s.mu.Lock()
		likes := r.snapshot(actorID, kind)
		refs := make([]domain.ContentRef, 0, len(likes))
		for _, l := range likes {
			owner, created, ok := r.s.owner(l.Target)
			if !ok {
				continue
			}
			refs = append(refs, domain.ContentRef{Target: l.Target, OwnerID: owner, LikedAt: l.CreatedAt, CreatedAt: created})
		}
		r.s.mu.Unlock()

		for _, ref := range refs {
			if err := ctx.Err(); err != nil {
				yield(domain.ContentRef{}, err)
				return
			}
			if !yield(ref, nil) {
				return
			}
		}
	}
}

func (r *likeRepository) LikedVideos(ctx context.Context, actorID int64) iter.Seq2[domain.Video, error] {
	return func(yield func(domain.Video, error) bool) {
		r.s.mu.Lock()
		likes := r.snapshot(actorID, domain.TargetVideo)
		videos := make([]domain.Video, 0, len(likes))
		for _, l := range likes {
			if v, ok := r.s.videos[l.Target.ID]; ok {
				videos = append(videos, v)
			}
		}
		r.s.mu.Unlock()

		for _, v := range videos {
			if err := ctx.Err(); err != nil {
				yield(domain.Video{}, err)
				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}

type subscriptionRepository struct {
	s *Store
}

var _ domain.SubscriptionRepository = (*subscriptionRepository)(nil)

func (r *subscriptionRepository) Toggle(ctx context.Context, subscriberID, channelID int64) (domain.ToggleState, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if subscriberID == channelID {
		return "", fmt.Errorf("%w: cannot subscribe to own channel", domain.ErrInvalidOperation)
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := subKey{subscriberID, channelID}
	if _, ok := r.s.subs[key]; ok {
		delete(r.s.subs, key)
		return domain.StateRemoved, nil
	}
	r.s.subs[key] = domain.Subscription{
		ID:           r.s.nextID(),
		SubscriberID: subscriberID,
		ChannelID:    channelID,
		CreatedAt:    r.s.now(),
	}
	return domain.StateAdded, nil
}

func (r *subscriptionRepository) Exists(ctx context.Context, subscriberID, channelID int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.subs[subKey{subscriberID, channelID}]
	return ok, nil
}

// edges returns the subscriptions matching keep, newest first. Must be called with mu held.
func (r *subscriptionRepository) edges(keep func(subKey) bool) []domain.Subscription {
	var res []domain.Subscription
	for k, sub := range r.s.subs {
		if keep(k) {
			res = append(res, sub)
		}
	}
	slices.SortFunc(res, func(a, b domain.Subscription) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	return res
}

func (r *subscriptionRepository) ListSubscribers(ctx context.Context, channelID int64) ([]domain.Subscriber, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	res := []domain.Subscriber{}
	for _, sub := range r.edges(func(k subKey) bool { return k.channel == channelID }) {
		u, ok := r.s.users[sub.SubscriberID]
		if !ok {
			continue
		}
		res = append(res, domain.Subscriber{Profile: u.Profile(), SubscribedAt: sub.CreatedAt})
	}
	return res, nil
}

func (r *subscriptionRepository) ListSubscriptions(ctx context.Context, subscriberID int64) ([]domain.Channel, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	res := []domain.Channel{}
	for _, sub := range r.edges(func(k subKey) bool { return k.subscriber == subscriberID }) {
		u, ok := r.s.users[sub.ChannelID]
		if !ok {
			continue
		}
		res = append(res, domain.Channel{Profile: u.Profile(), SubscribedAt: sub.CreatedAt})
	}
	return res, nil
}
