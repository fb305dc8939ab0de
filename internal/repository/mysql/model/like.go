package model

import (
	"time"

	"github.com/Guyuepp/go-tube-engagement/domain"
)

// Like is one row of the likes table. The composite unique index is what makes
// the toggle safe under concurrent requests.
type Like struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	ActorID    int64     `gorm:"column:actor_id;not null;uniqueIndex:uk_like_actor_target,priority:1"`
	TargetKind string    `gorm:"column:target_kind;type:varchar(16);not null;uniqueIndex:uk_like_actor_target,priority:2;index:idx_like_target,priority:1"`
	TargetID   int64     `gorm:"column:target_id;not null;uniqueIndex:uk_like_actor_target,priority:3;index:idx_like_target,priority:2"`
	CreatedAt  time.Time `gorm:"type:datetime(6)"`
}

func (Like) TableName() string {
	return "likes"
}

func NewLikeFromDomain(l domain.Like) Like {
	return Like{
		ID:         l.ID,
		ActorID:    l.ActorID,
		TargetKind: string(l.Target.Kind),
		TargetID:   l.Target.ID,
		CreatedAt:  l.CreatedAt,
	}
}

func (m *Like) ToDomain() domain.Like {
	return domain.Like{
		ID:      m.ID,
		ActorID: m.ActorID,
		Target: domain.Target{
			Kind: domain.TargetKind(m.TargetKind),
			ID:   m.TargetID,
		},
		CreatedAt: m.CreatedAt,
	}
}

// LikedRef is the row shape of a like joined with its target.
type LikedRef struct {
	TargetID  int64     `gorm:"column:target_id"`
	OwnerID   int64     `gorm:"column:owner_id"`
	LikedAt   time.Time `gorm:"column:liked_at"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (r *LikedRef) ToDomain(kind domain.TargetKind) domain.ContentRef {
	return domain.ContentRef{
		Target:    domain.Target{Kind: kind, ID: r.TargetID},
		OwnerID:   r.OwnerID,
		LikedAt:   r.LikedAt,
		CreatedAt: r.CreatedAt,
	}
}
