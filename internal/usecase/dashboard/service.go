package dashboard

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/Guyuepp/go-tube-engagement/domain"
	"github.com/Guyuepp/go-tube-engagement/internal/flight"
)

type Service struct {
	statsRepo   domain.StatsRepository
	contentRepo domain.ContentRepository
	statsGroup  singleflight.Group
}

var _ domain.DashboardUsecase = (*Service)(nil)

// NewService will create a new dashboard service object
func NewService(st domain.StatsRepository, c domain.ContentRepository) *Service {
	return &Service{
		statsRepo:   st,
		contentRepo: c,
	}
}

// validChannel only checks the id. An id no user owns has nothing to count,
// so it gets zeros and empty pages rather than NotFound.
func validChannel(channelID int64) error {
	if channelID <= 0 {
		return fmt.Errorf("%w: channel id must be positive, got %d", domain.ErrInvalidIdentifier, channelID)
	}
	return nil
}

// GetChannelStats recomputes every total from the edge and content stores.
// Identical calls in flight at the same moment share one computation, which
// outlives a caller that gives up.
func (s *Service) GetChannelStats(ctx context.Context, channelID int64) (domain.ChannelStats, error) {
	if err := validChannel(channelID); err != nil {
		return domain.ChannelStats{}, err
	}

	res, err := flight.Do(ctx, &s.statsGroup, strconv.FormatInt(channelID, 10), func(ctx context.Context) (domain.ChannelStats, error) {
		return s.computeStats(ctx, channelID)
	})
	if err != nil {
		logrus.WithField("channel_id", channelID).Errorf("failed to compute channel stats: %v", err)
		return domain.ChannelStats{}, err
	}
	return res, nil
}

/*
* The sub-aggregates do not depend on each other, so they run on an errgroup.
* The first failure cancels the rest and fails the whole call: a partial
* ChannelStats is never returned.
 */
func (s *Service) computeStats(ctx context.Context, channelID int64) (domain.ChannelStats, error) {
	g, ctx := errgroup.WithContext(ctx)

	var stats domain.ChannelStats
	likes := make([]int64, len(domain.TargetKinds))

	g.Go(func() (err error) {
		stats.TotalVideos, err = s.statsRepo.CountVideos(ctx, channelID)
		return
	})
	g.Go(func() (err error) {
		stats.TotalSubscribers, err = s.statsRepo.CountSubscribers(ctx, channelID)
		return
	})
	g.Go(func() (err error) {
		stats.TotalViews, err = s.statsRepo.SumViews(ctx, channelID)
		return
	})
	for i, kind := range domain.TargetKinds {
		g.Go(func() (err error) {
			likes[i], err = s.statsRepo.CountLikesOnOwner(ctx, channelID, kind)
			return
		})
	}

	if err := g.Wait(); err != nil {
		return domain.ChannelStats{}, err
	}
	for _, n := range likes {
		stats.TotalLikes += n
	}
	return stats, nil
}

// GetChannelVideos pages through the channel's videos, newest first unless asked otherwise.
func (s *Service) GetChannelVideos(ctx context.Context, channelID int64, q domain.PageQuery) (domain.Page[domain.Video], error) {
	if err := validChannel(channelID); err != nil {
		return domain.Page[domain.Video]{}, err
	}
	return domain.ListPage(ctx, s.contentRepo.ListVideos, domain.ListFilter{OwnerID: channelID}, q)
}
