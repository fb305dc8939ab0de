package mysql

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Guyuepp/go-tube-engagement/domain"
	"github.com/Guyuepp/go-tube-engagement/internal/repository/mysql/model"
)

type subscriptionRepository struct {
	DB *gorm.DB
}

var _ domain.SubscriptionRepository = (*subscriptionRepository)(nil)

func NewSubscriptionRepository(db *gorm.DB) *subscriptionRepository {
	return &subscriptionRepository{db}
}

func (m *subscriptionRepository) Toggle(ctx context.Context, subscriberID, channelID int64) (domain.ToggleState, error) {
	fields := logrus.Fields{"subscriber_id": subscriberID, "channel_id": channelID}
	return toggleEdge(ctx, m.DB, fields, func(tx *gorm.DB) (domain.ToggleState, error) {
		result := tx.
			Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
			Delete(&model.Subscription{})
		if result.Error != nil {
			return "", result.Error
		}
		if result.RowsAffected > 0 {
			return domain.StateRemoved, nil
		}

		sub := model.Subscription{
			SubscriberID: subscriberID,
			ChannelID:    channelID,
			CreatedAt:    time.Now(),
		}
		if err := tx.Create(&sub).Error; err != nil {
			return "", err
		}
		return domain.StateAdded, nil
	})
}

func (m *subscriptionRepository) Exists(ctx context.Context, subscriberID, channelID int64) (bool, error) {
	var n int64
	err := m.DB.WithContext(ctx).
		Model(&model.Subscription{}).
		Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		Count(&n).Error
	return n > 0, err
}

// listProfiles loads the users on the far side of the edges matching where, newest edge first.
func (m *subscriptionRepository) listProfiles(ctx context.Context, joinOn, where string, id int64) ([]model.SubscriptionProfile, error) {
	var rows []model.SubscriptionProfile
	err := m.DB.WithContext(ctx).
		Table("subscriptions AS s").
		Select("u.id AS user_id, u.name, u.username, u.email, u.avatar, s.created_at AS subscribed_at").
		Joins("JOIN users AS u ON u.id = "+joinOn).
		Where(where, id).
		Order("s.created_at DESC, s.id DESC").
		Scan(&rows).Error
	return rows, err
}

func (m *subscriptionRepository) ListSubscribers(ctx context.Context, channelID int64) ([]domain.Subscriber, error) {
	rows, err := m.listProfiles(ctx, "s.subscriber_id", "s.channel_id = ?", channelID)
	if err != nil {
		return nil, err
	}
	res := make([]domain.Subscriber, len(rows))
	for i := range rows {
		res[i] = domain.Subscriber{Profile: rows[i].Profile(), SubscribedAt: rows[i].SubscribedAt}
	}
	return res, nil
}

func (m *subscriptionRepository) ListSubscriptions(ctx context.Context, subscriberID int64) ([]domain.Channel, error) {
	rows, err := m.listProfiles(ctx, "s.channel_id", "s.subscriber_id = ?", subscriberID)
	if err != nil {
		return nil, err
	}
	res := make([]domain.Channel, len(rows))
	for i := range rows {
		res[i] = domain.Channel{Profile: rows[i].Profile(), SubscribedAt: rows[i].SubscribedAt}
	}
	return res, nil
}
