package domain

import "context"

// ChannelStats is derived on every read and never stored.
type ChannelStats struct {
	TotalVideos      int64
	TotalSubscribers int64
	TotalLikes       int64
	TotalViews       int64
}

// StatsRepository computes the independent sub-aggregates of ChannelStats.
type StatsRepository interface {
	// CountVideos counts videos owned by the channel, published or not.
	CountVideos(ctx context.Context, ownerID int64) (int64, error)

	// CountSubscribers counts subscription edges pointing at the channel.
	CountSubscribers(ctx context.Context, channelID int64) (int64, error)

	// CountLikesOnOwner counts like edges on targets of the given kind owned by ownerID.
	CountLikesOnOwner(ctx context.Context, ownerID int64, kind TargetKind) (int64, error)

	// SumViews sums views over videos owned by the channel; 0 for none.
	SumViews(ctx context.Context, ownerID int64) (int64, error)
}

// DashboardUsecase serves the channel dashboard.
type DashboardUsecase interface {
	GetChannelStats(ctx context.Context, channelID int64) (ChannelStats, error)
	GetChannelVideos(ctx context.Context, channelID int64, q PageQuery) (Page[Video], error)
}
