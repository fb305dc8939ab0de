package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/go-tube-engagement/domain"
)

// EngagementUsecase is a mock of domain.EngagementUsecase
type EngagementUsecase struct {
	mock.Mock
}

func (m *EngagementUsecase) ToggleLike(ctx context.Context, actorID int64, target domain.Target) (domain.LikeToggleResult, error) {
	args := m.Called(ctx, actorID, target)
	res, _ := args.Get(0).(domain.LikeToggleResult)
	return res, args.Error(1)
}

func (m *EngagementUsecase) ToggleSubscription(ctx context.Context, actorID, channelID int64) (domain.SubscriptionToggleResult, error) {
	args := m.Called(ctx, actorID, channelID)
	res, _ := args.Get(0).(domain.SubscriptionToggleResult)
	return res, args.Error(1)
}

func (m *EngagementUsecase) LikedTargets(ctx context.Context, actorID int64, kind domain.TargetKind) ([]domain.ContentRef, error) {
	args := m.Called(ctx, actorID, kind)
	res, _ := args.Get(0).([]domain.ContentRef)
	return res, args.Error(1)
}

func (m *EngagementUsecase) LikedVideos(ctx context.Context, actorID int64) ([]domain.Video, error) {
	args := m.Called(ctx, actorID)
	res, _ := args.Get(0).([]domain.Video)
	return res, args.Error(1)
}

func (m *EngagementUsecase) ListSubscribers(ctx context.Context, channelID int64) ([]domain.Subscriber, error) {
	args := m.Called(ctx, channelID)
	res, _ := args.Get(0).([]domain.Subscriber)
	return res, args.Error(1)
}

func (m *EngagementUsecase) ListSubscriptions(ctx context.Context, subscriberID int64) ([]domain.Channel, error) {
	args := m.Called(ctx, subscriberID)
	res, _ := args.Get(0).([]domain.Channel)
	return res, args.Error(1)
}

// DashboardUsecase is a mock of domain.DashboardUsecase
type DashboardUsecase struct {
	mock.Mock
}

func (m *DashboardUsecase) GetChannelStats(ctx context.Context, channelID int64) (domain.ChannelStats, error) {
	args := m.Called(ctx, channelID)
	res, _ := args.Get(0).(domain.ChannelStats)
	return res, args.Error(1)
}

func (m *DashboardUsecase) GetChannelVideos(ctx context.Context, channelID int64, q domain.PageQuery) (domain.Page[domain.Video], error) {
	args := m.Called(ctx, channelID, q)
	res, _ := args.Get(0).(domain.Page[domain.Video])
	return res, args.Error(1)
}

// ContentUsecase is a mock of domain.ContentUsecase
type ContentUsecase struct {
	mock.Mock
}

func (m *ContentUsecase) ListVideos(ctx context.Context, filter domain.ListFilter, q domain.PageQuery) (domain.Page[domain.Video], error) {
	args := m.Called(ctx, filter, q)
	res, _ := args.Get(0).(domain.Page[domain.Video])
	return res, args.Error(1)
}

func (m *ContentUsecase) ListVideoComments(ctx context.Context, videoID int64, q domain.PageQuery) (domain.Page[domain.Comment], error) {
	args := m.Called(ctx, videoID, q)
	res, _ := args.Get(0).(domain.Page[domain.Comment])
	return res, args.Error(1)
}

func (m *ContentUsecase) ListUserTweets(ctx context.Context, userID int64, q domain.PageQuery) (domain.Page[domain.Tweet], error) {
	args := m.Called(ctx, userID, q)
	res, _ := args.Get(0).(domain.Page[domain.Tweet])
	return res, args.Error(1)
}

func (m *ContentUsecase) ListUserPlaylists(ctx context.Context, userID int64, q domain.PageQuery) (domain.Page[domain.Playlist], error) {
	args := m.Called(ctx, userID, q)
	res, _ := args.Get(0).(domain.Page[domain.Playlist])
	return res, args.Error(1)
}
