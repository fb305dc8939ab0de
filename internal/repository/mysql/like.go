package mysql

import (
	"context"
	"fmt"
	"iter"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Guyuepp/go-tube-engagement/domain"
	"github.com/Guyuepp/go-tube-engagement/internal/repository/mysql/model"
)

// contentTables maps each like target kind to the table holding its content.
var contentTables = map[domain.TargetKind]string{
	domain.TargetVideo:   "videos",
	domain.TargetComment: "comments",
	domain.TargetTweet:   "tweets",
}

func contentTable(kind domain.TargetKind) (string, error) {
	table, ok := contentTables[kind]
	if !ok {
		return "", fmt.Errorf("%w: unknown target kind %q", domain.ErrInvalidIdentifier, kind)
	}
	return table, nil
}

type likeRepository struct {
	DB *gorm.DB
}

var _ domain.LikeRepository = (*likeRepository)(nil)

// NewLikeRepository will create the mysql backed like edge store
func NewLikeRepository(db *gorm.DB) *likeRepository {
	return &likeRepository{db}
}

func (m *likeRepository) Toggle(ctx context.Context, actorID int64, target domain.Target) (domain.ToggleState, error) {
	fields := logrus.Fields{"actor_id": actorID, "target": target.String()}
	return toggleEdge(ctx, m.DB, fields, func(tx *gorm.DB) (domain.ToggleState, error) {
		result := tx.
			Where("actor_id = ? AND target_kind = ? AND target_id = ?", actorID, string(target.Kind), target.ID).
			Delete(&model.Like{})
		if result.Error != nil {
			return "", result.Error
		}
		if result.RowsAffected > 0 {
			return domain.StateRemoved, nil
		}

		like := model.NewLikeFromDomain(domain.Like{
			ActorID:   actorID,
			Target:    target,
			CreatedAt: time.Now(),
		})
		if err := tx.Create(&like).Error; err != nil {
			return "", err
		}
		return domain.StateAdded, nil
	})
}

func (m *likeRepository) Exists(ctx context.Context, actorID int64, target domain.Target) (bool, error) {
	var n int64
	err := m.DB.WithContext(ctx).
		Model(&model.Like{}).
		Where("actor_id = ? AND target_kind = ? AND target_id = ?", actorID, string(target.Kind), target.ID).
		Count(&n).Error
	return n > 0, err
}

// likedQuery joins the actor's likes of one kind with the content table, so
// likes on deleted content drop out.
func (m *likeRepository) likedQuery(ctx context.Context, actorID int64, kind domain.TargetKind, table, selects string) *gorm.DB {
	return m.DB.WithContext(ctx).
		Table("likes AS l").
		Select(selects).
		Joins("JOIN "+table+" AS c ON c.id = l.target_id").
		Where("l.actor_id = ? AND l.target_kind = ?", actorID, string(kind)).
		Order("l.created_at DESC, l.id DESC")
}

func (m *likeRepository) LikedTargets(ctx context.Context, actorID int64, kind domain.TargetKind) iter.Seq2[domain.ContentRef, error] {
	return func(yield func(domain.ContentRef, error) bool) {
		table, err := contentTable(kind)
		if err != nil {
			yield(domain.ContentRef{}, err)
			return
		}

		rows, err := m.likedQuery(ctx, actorID, kind, table,
			"l.target_id, c.owner_id, l.created_at AS liked_at, c.created_at").Rows()
		if err != nil {
			yield(domain.ContentRef{}, err)
			return
		}
		defer rows.Close()

		for rows.Next() {
			var ref model.LikedRef
			if err := m.DB.ScanRows(rows, &ref); err != nil {
				yield(domain.ContentRef{}, err)
				return
			}
			if !yield(ref.ToDomain(kind), nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(domain.ContentRef{}, err)
		}
	}
}

func (m *likeRepository) LikedVideos(ctx context.Context, actorID int64) iter.Seq2[domain.Video, error] {
	return func(yield func(domain.Video, error) bool) {
		rows, err := m.likedQuery(ctx, actorID, domain.TargetVideo, "videos", "c.*").Rows()
		if err != nil {
			yield(domain.Video{}, err)
			return
		}
		defer rows.Close()

		for rows.Next() {
			var v model.Video
			if err := m.DB.ScanRows(rows, &v); err != nil {
				yield(domain.Video{}, err)
				return
			}
			if !yield(v.ToDomain(), nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(domain.Video{}, err)
		}
	}
}
