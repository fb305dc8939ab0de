package model

import (
	"time"

	"github.com/Guyuepp/go-tube-engagement/domain"
)

type Comment struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	VideoID   int64     `gorm:"column:video_id;not null;index"`
	OwnerID   int64     `gorm:"column:owner_id;not null;index"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"type:datetime(6)"`
	UpdatedAt time.Time `gorm:"type:datetime(6)"`
}

func (Comment) TableName() string {
	return "comments"
}

func (m *Comment) ToDomain() domain.Comment {
	return domain.Comment{
		ID:        m.ID,
		VideoID:   m.VideoID,
		OwnerID:   m.OwnerID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
