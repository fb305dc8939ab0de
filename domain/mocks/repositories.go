package mocks

import (
	"context"
	"iter"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/go-tube-engagement/domain"
)

// LikeRepository is a mock of domain.LikeRepository
type LikeRepository struct {
	mock.Mock
}

func (m *LikeRepository) Toggle(ctx context.Context, actorID int64, target domain.Target) (domain.ToggleState, error) {
	args := m.Called(ctx, actorID, target)
	state, _ := args.Get(0).(domain.ToggleState)
	return state, args.Error(1)
}

func (m *LikeRepository) Exists(ctx context.Context, actorID int64, target domain.Target) (bool, error) {
	args := m.Called(ctx, actorID, target)
	return args.Bool(0), args.Error(1)
}

func (m *LikeRepository) LikedTargets(ctx context.Context, actorID int64, kind domain.TargetKind) iter.Seq2[domain.ContentRef, error] {
	args := m.Called(ctx, actorID, kind)
	return args.Get(0).(iter.Seq2[domain.ContentRef, error])
}

func (m *LikeRepository) LikedVideos(ctx context.Context, actorID int64) iter.Seq2[domain.Video, error] {
	args := m.Called(ctx, actorID)
	return args.Get(0).(iter.Seq2[domain.Video, error])
}

// SubscriptionRepository is a mock of domain.SubscriptionRepository
type SubscriptionRepository struct {
	mock.Mock
}

func (m *SubscriptionRepository) Toggle(ctx context.Context, subscriberID, channelID int64) (domain.ToggleState, error) {
	args := m.Called(ctx, subscriberID, channelID)
	state, _ := args.Get(0).(domain.ToggleState)
	return state, args.Error(1)
}

func (m *SubscriptionRepository) Exists(ctx context.Context, subscriberID, channelID int64) (bool, error) {
	args := m.Called(ctx, subscriberID, channelID)
	return args.Bool(0), args.Error(1)
}

func (m *SubscriptionRepository) ListSubscribers(ctx context.Context, channelID int64) ([]domain.Subscriber, error) {
	args := m.Called(ctx, channelID)
	res, _ := args.Get(0).([]domain.Subscriber)
	return res, args.Error(1)
}

func (m *SubscriptionRepository) ListSubscriptions(ctx context.Context, subscriberID int64) ([]domain.Channel, error) {
	args := m.Called(ctx, subscriberID)
	res, _ := args.Get(0).([]domain.Channel)
	return res, args.Error(1)
}

// ContentRepository is a mock of domain.ContentRepository
type ContentRepository struct {
	mock.Mock
}

func (m *ContentRepository) Exists(ctx context.Context, target domain.Target) (bool, error) {
	args := m.Called(ctx, target)
	return args.Bool(0), args.Error(1)
}

func (m *ContentRepository) ListVideos(ctx context.Context, filter domain.ListFilter, q domain.PageQuery) ([]domain.Video, int64, error) {
	args := m.Called(ctx, filter, q)
	res, _ := args.Get(0).([]domain.Video)
	return res, args.Get(1).(int64), args.Error(2)
}

func (m *ContentRepository) ListComments(ctx context.Context, filter domain.ListFilter, q domain.PageQuery) ([]domain.Comment, int64, error) {
	args := m.Called(ctx, filter, q)
	res, _ := args.Get(0).([]domain.Comment)
	return res, args.Get(1).(int64), args.Error(2)
}

func (m *ContentRepository) ListTweets(ctx context.Context, filter domain.ListFilter, q domain.PageQuery) ([]domain.Tweet, int64, error) {
	args := m.Called(ctx, filter, q)
	res, _ := args.Get(0).([]domain.Tweet)
	return res, args.Get(1).(int64), args.Error(2)
}

func (m *ContentRepository) ListPlaylists(ctx context.Context, filter domain.ListFilter, q domain.PageQuery) ([]domain.Playlist, int64, error) {
	args := m.Called(ctx, filter, q)
	res, _ := args.Get(0).([]domain.Playlist)
	return res, args.Get(1).(int64), args.Error(2)
}

func (m *ContentRepository) FetchIDs(ctx context.Context, kind domain.TargetKind, cursor, limit int64) ([]int64, error) {
	args := m.Called(ctx, kind, cursor, limit)
	res, _ := args.Get(0).([]int64)
	return res, args.Error(1)
}

// UserRepository is a mock of domain.UserRepository
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) GetByID(ctx context.Context, id int64) (domain.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(domain.User)
	return u, args.Error(1)
}

func (m *UserRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *UserRepository) GetByIDs(ctx context.Context, userIDs []int64) ([]domain.User, error) {
	args := m.Called(ctx, userIDs)
	res, _ := args.Get(0).([]domain.User)
	return res, args.Error(1)
}

func (m *UserRepository) FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error) {
	args := m.Called(ctx, cursor, limit)
	res, _ := args.Get(0).([]int64)
	return res, args.Error(1)
}

// StatsRepository is a mock of domain.StatsRepository
type StatsRepository struct {
	mock.Mock
}

func (m *StatsRepository) CountVideos(ctx context.Context, ownerID int64) (int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *StatsRepository) CountSubscribers(ctx context.Context, channelID int64) (int64, error) {
	args := m.Called(ctx, channelID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *StatsRepository) CountLikesOnOwner(ctx context.Context, ownerID int64, kind domain.TargetKind) (int64, error) {
	args := m.Called(ctx, ownerID, kind)
	return args.Get(0).(int64), args.Error(1)
}

func (m *StatsRepository) SumViews(ctx context.Context, ownerID int64) (int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

// BloomRepository is a mock of domain.BloomRepository
type BloomRepository struct {
	mock.Mock
}

func (m *BloomRepository) Add(ctx context.Context, namespace string, id int64) error {
	args := m.Called(ctx, namespace, id)
	return args.Error(0)
}

func (m *BloomRepository) Exists(ctx context.Context, namespace string, id int64) (bool, error) {
	args := m.Called(ctx, namespace, id)
	return args.Bool(0), args.Error(1)
}

func (m *BloomRepository) BulkAdd(ctx context.Context, namespace string, ids []int64) error {
	args := m.Called(ctx, namespace, ids)
	return args.Error(0)
}
