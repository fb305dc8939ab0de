package dashboard_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/go-tube-engagement/domain"
	"github.com/Guyuepp/go-tube-engagement/domain/mocks"
	"github.com/Guyuepp/go-tube-engagement/internal/usecase/dashboard"
)

func TestGetChannelStats(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		stats := new(mocks.StatsRepository)
		stats.On("CountVideos", mock.Anything, int64(7)).Return(int64(3), nil)
		stats.On("CountSubscribers", mock.Anything, int64(7)).Return(int64(12), nil)
		stats.On("SumViews", mock.Anything, int64(7)).Return(int64(940), nil)
		stats.On("CountLikesOnOwner", mock.Anything, int64(7), domain.TargetVideo).Return(int64(5), nil)
		stats.On("CountLikesOnOwner", mock.Anything, int64(7), domain.TargetComment).Return(int64(2), nil)
		stats.On("CountLikesOnOwner", mock.Anything, int64(7), domain.TargetTweet).Return(int64(1), nil)

		svc := dashboard.NewService(stats, new(mocks.ContentRepository))
		res, err := svc.GetChannelStats(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, domain.ChannelStats{TotalVideos: 3, TotalSubscribers: 12, TotalLikes: 8, TotalViews: 940}, res)
		stats.AssertExpectations(t)
	})

	t.Run("fresh channel is all zeros", func(t *testing.T) {
		stats := new(mocks.StatsRepository)
		stats.On("CountVideos", mock.Anything, int64(7)).Return(int64(0), nil)
		stats.On("CountSubscribers", mock.Anything, int64(7)).Return(int64(0), nil)
		stats.On("SumViews", mock.Anything, int64(7)).Return(int64(0), nil)
		stats.On("CountLikesOnOwner", mock.Anything, int64(7), mock.Anything).Return(int64(0), nil)

		svc := dashboard.NewService(stats, new(mocks.ContentRepository))
		res, err := svc.GetChannelStats(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, domain.ChannelStats{}, res)
	})

	t.Run("one failing aggregate fails the call", func(t *testing.T) {
		stats := new(mocks.StatsRepository)
		boom := errors.New("boom")
		stats.On("CountVideos", mock.Anything, int64(7)).Return(int64(3), nil).Maybe()
		stats.On("CountSubscribers", mock.Anything, int64(7)).Return(int64(0), boom)
		stats.On("SumViews", mock.Anything, int64(7)).Return(int64(1), nil).Maybe()
		stats.On("CountLikesOnOwner", mock.Anything, int64(7), mock.Anything).Return(int64(1), nil).Maybe()

		svc := dashboard.NewService(stats, new(mocks.ContentRepository))
		res, err := svc.GetChannelStats(context.Background(), 7)
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, domain.ChannelStats{}, res)
	})

	t.Run("id nobody owns counts zero", func(t *testing.T) {
		stats := new(mocks.StatsRepository)
		stats.On("CountVideos", mock.Anything, int64(404)).Return(int64(0), nil)
		stats.On("CountSubscribers", mock.Anything, int64(404)).Return(int64(0), nil)
		stats.On("SumViews", mock.Anything, int64(404)).Return(int64(0), nil)
		stats.On("CountLikesOnOwner", mock.Anything, int64(404), mock.Anything).Return(int64(0), nil)

		svc := dashboard.NewService(stats, new(mocks.ContentRepository))
		res, err := svc.GetChannelStats(context.Background(), 404)
		require.NoError(t, err)
		assert.Equal(t, domain.ChannelStats{}, res)
	})

	t.Run("non-positive id", func(t *testing.T) {
		svc := dashboard.NewService(new(mocks.StatsRepository), new(mocks.ContentRepository))
		_, err := svc.GetChannelStats(context.Background(), 0)
		assert.ErrorIs(t, err, domain.ErrInvalidIdentifier)
	})
}

// One caller giving up must not fail the callers sharing its computation.
func TestGetChannelStatsSharedFlightOutlivesCaller(t *testing.T) {
	stats := new(mocks.StatsRepository)
	started := make(chan struct{})
	release := make(chan struct{})

	stats.On("CountVideos", mock.Anything, int64(7)).Return(int64(2), nil).Once().Run(func(mock.Arguments) {
		close(started)
		<-release
	})
	stats.On("CountSubscribers", mock.Anything, int64(7)).Return(int64(1), nil)
	stats.On("SumViews", mock.Anything, int64(7)).Return(int64(9), nil)
	stats.On("CountLikesOnOwner", mock.Anything, int64(7), mock.Anything).Return(int64(0), nil)

	svc := dashboard.NewService(stats, new(mocks.ContentRepository))

	ctxA, cancelA := context.WithCancel(context.Background())
	errA := make(chan error, 1)
	go func() {
		_, err := svc.GetChannelStats(ctxA, 7)
		errA <- err
	}()
	<-started

	type result struct {
		stats domain.ChannelStats
		err   error
	}
	resB := make(chan result, 1)
	go func() {
		st, err := svc.GetChannelStats(context.Background(), 7)
		resB <- result{st, err}
	}()
	time.Sleep(20 * time.Millisecond)

	cancelA()
	assert.ErrorIs(t, <-errA, context.Canceled)

	close(release)
	b := <-resB
	require.NoError(t, b.err)
	assert.Equal(t, domain.ChannelStats{TotalVideos: 2, TotalSubscribers: 1, TotalViews: 9}, b.stats)
	stats.AssertNumberOfCalls(t, "CountVideos", 1)
}

func TestGetChannelVideos(t *testing.T) {
	content := new(mocks.ContentRepository)

	q := domain.PageQuery{Page: 2, Limit: 2}
	normalized := q.Normalize()
	videos := []domain.Video{{ID: 3, OwnerID: 7}, {ID: 2, OwnerID: 7}}
	content.On("ListVideos", mock.Anything, domain.ListFilter{OwnerID: 7}, normalized).Return(videos, int64(5), nil)

	svc := dashboard.NewService(new(mocks.StatsRepository), content)
	page, err := svc.GetChannelVideos(context.Background(), 7, q)
	require.NoError(t, err)
	assert.Equal(t, videos, page.Items)
	assert.Equal(t, int64(5), page.TotalCount)
	assert.Equal(t, 2, page.CurrentPage)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 2, page.Limit)
}
