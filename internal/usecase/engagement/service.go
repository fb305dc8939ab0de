package engagement

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/go-tube-engagement/domain"
)

// ToggleObserver is told about every settled toggle. Metrics hook in here.
type ToggleObserver interface {
	ObserveToggle(edge string, state domain.ToggleState)
}

type Service struct {
	likeRepo    domain.LikeRepository
	subRepo     domain.SubscriptionRepository
	contentRepo domain.ContentRepository
	userRepo    domain.UserRepository
	observer    ToggleObserver
	validate    *validator.Validate

	// EmptyGraphNotFound makes an empty subscriber or subscription list an ErrNotFound.
	EmptyGraphNotFound bool
}

var _ domain.EngagementUsecase = (*Service)(nil)

// NewService will create a new engagement service object
func NewService(l domain.LikeRepository, s domain.SubscriptionRepository, c domain.ContentRepository, u domain.UserRepository, o ToggleObserver) *Service {
	return &Service{
		likeRepo:           l,
		subRepo:            s,
		contentRepo:        c,
		userRepo:           u,
		observer:           o,
		validate:           validator.New(),
		EmptyGraphNotFound: true,
	}
}

func validID(id int64, what string) error {
	if id <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %d", domain.ErrInvalidIdentifier, what, id)
	}
	return nil
}

func (s *Service) observe(edge string, state domain.ToggleState) {
	if s.observer != nil {
		s.observer.ObserveToggle(edge, state)
	}
}

func (s *Service) userMustExist(ctx context.Context, id int64) error {
	ok, err := s.userRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: user %d", domain.ErrNotFound, id)
	}
	return nil
}

func (s *Service) ToggleLike(ctx context.Context, actorID int64, target domain.Target) (domain.LikeToggleResult, error) {
	if err := validID(actorID, "actor id"); err != nil {
		return domain.LikeToggleResult{}, err
	}
	if err := s.validate.StructCtx(ctx, target); err != nil {
		return domain.LikeToggleResult{}, fmt.Errorf("%w: target %s: %v", domain.ErrInvalidIdentifier, target, err)
	}

	ok, err := s.contentRepo.Exists(ctx, target)
	if err != nil {
		return domain.LikeToggleResult{}, err
	}
	if !ok {
		return domain.LikeToggleResult{}, fmt.Errorf("%w: %s", domain.ErrNotFound, target)
	}

	state, err := s.likeRepo.Toggle(ctx, actorID, target)
	if err != nil {
		return domain.LikeToggleResult{}, err
	}
	s.observe("like", state)
	logrus.WithFields(logrus.Fields{"actor_id": actorID, "target": target.String()}).Debugf("like %s", state)

	return domain.LikeToggleResult{State: state, Target: target}, nil
}

func (s *Service) ToggleSubscription(ctx context.Context, actorID, channelID int64) (domain.SubscriptionToggleResult, error) {
	if err := validID(actorID, "actor id"); err != nil {
		return domain.SubscriptionToggleResult{}, err
	}
	if err := validID(channelID, "channel id"); err != nil {
		return domain.SubscriptionToggleResult{}, err
	}
	// Rejected before any lookup, whatever the current state.
	if actorID == channelID {
		return domain.SubscriptionToggleResult{}, fmt.Errorf("%w: cannot subscribe to own channel", domain.ErrInvalidOperation)
	}
	if err := s.userMustExist(ctx, channelID); err != nil {
		return domain.SubscriptionToggleResult{}, err
	}

	state, err := s.subRepo.Toggle(ctx, actorID, channelID)
	if err != nil {
		return domain.SubscriptionToggleResult{}, err
	}
	s.observe("subscription", state)
	logrus.WithFields(logrus.Fields{"subscriber_id": actorID, "channel_id": channelID}).Debugf("subscription %s", state)

	return domain.SubscriptionToggleResult{State: state, ChannelID: channelID}, nil
}

func (s *Service) LikedTargets(ctx context.Context, actorID int64, kind domain.TargetKind) ([]domain.ContentRef, error) {
	if err := validID(actorID, "actor id"); err != nil {
		return nil, err
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown target kind %q", domain.ErrInvalidIdentifier, kind)
	}
	return collect(s.likeRepo.LikedTargets(ctx, actorID, kind))
}

func (s *Service) LikedVideos(ctx context.Context, actorID int64) ([]domain.Video, error) {
	if err := validID(actorID, "actor id"); err != nil {
		return nil, err
	}
	return collect(s.likeRepo.LikedVideos(ctx, actorID))
}

func (s *Service) ListSubscribers(ctx context.Context, channelID int64) ([]domain.Subscriber, error) {
	if err := validID(channelID, "channel id"); err != nil {
		return nil, err
	}
	res, err := s.subRepo.ListSubscribers(ctx, channelID)
	if err != nil {
		return nil, err
	}
	if len(res) == 0 && s.EmptyGraphNotFound {
		return nil, fmt.Errorf("%w: channel %d has no subscribers", domain.ErrNotFound, channelID)
	}
	return res, nil
}

func (s *Service) ListSubscriptions(ctx context.Context, subscriberID int64) ([]domain.Channel, error) {
	if err := validID(subscriberID, "subscriber id"); err != nil {
		return nil, err
	}
	res, err := s.subRepo.ListSubscriptions(ctx, subscriberID)
	if err != nil {
		return nil, err
	}
	if len(res) == 0 && s.EmptyGraphNotFound {
		return nil, fmt.Errorf("%w: user %d has no subscriptions", domain.ErrNotFound, subscriberID)
	}
	return res, nil
}
