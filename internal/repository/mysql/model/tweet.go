package model

import (
	"time"

	"github.com/Guyuepp/go-tube-engagement/domain"
)

type Tweet struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	OwnerID   int64     `gorm:"column:owner_id;not null;index"`
	Content   string    `gorm:"type:varchar(280);not null"`
	CreatedAt time.Time `gorm:"type:datetime(6)"`
	UpdatedAt time.Time `gorm:"type:datetime(6)"`
}

func (Tweet) TableName() string {
	return "tweets"
}

func (m *Tweet) ToDomain() domain.Tweet {
	return domain.Tweet{
		ID:        m.ID,
		OwnerID:   m.OwnerID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
