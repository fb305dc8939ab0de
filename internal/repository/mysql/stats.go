package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/Guyuepp/go-tube-engagement/domain"
	"github.com/Guyuepp/go-tube-engagement/internal/repository/mysql/model"
)

// statsRepository recomputes every aggregate from the edge and content tables.
// Nothing here is stored or incremented.
type statsRepository struct {
	DB *gorm.DB
}

var _ domain.StatsRepository = (*statsRepository)(nil)

func NewStatsRepository(db *gorm.DB) *statsRepository {
	return &statsRepository{db}
}

func (m *statsRepository) CountVideos(ctx context.Context, ownerID int64) (n int64, err error) {
	err = m.DB.WithContext(ctx).Model(&model.Video{}).Where("owner_id = ?", ownerID).Count(&n).Error
	return
}

func (m *statsRepository) CountSubscribers(ctx context.Context, channelID int64) (n int64, err error) {
	err = m.DB.WithContext(ctx).Model(&model.Subscription{}).Where("channel_id = ?", channelID).Count(&n).Error
	return
}

func (m *statsRepository) CountLikesOnOwner(ctx context.Context, ownerID int64, kind domain.TargetKind) (n int64, err error) {
	table, err := contentTable(kind)
	if err != nil {
		return 0, err
	}
	err = m.DB.WithContext(ctx).
		Table("likes AS l").
		Joins("JOIN "+table+" AS c ON c.id = l.target_id").
		Where("l.target_kind = ? AND c.owner_id = ?", string(kind), ownerID).
		Count(&n).Error
	return
}

func (m *statsRepository) SumViews(ctx context.Context, ownerID int64) (total int64, err error) {
	err = m.DB.WithContext(ctx).
		Model(&model.Video{}).
		Select("COALESCE(SUM(views), 0)").
		Where("owner_id = ?", ownerID).
		Scan(&total).Error
	return
}
