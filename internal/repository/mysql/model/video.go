package model

import (
	"time"

	"github.com/Guyuepp/go-tube-engagement/domain"
)

type Video struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	OwnerID     int64     `gorm:"column:owner_id;not null;index"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	VideoURL    string    `gorm:"column:video_url;type:varchar(512)"`
	Thumbnail   string    `gorm:"type:varchar(512)"`
	Duration    float64   `gorm:"default:0"`
	Views       int64     `gorm:"default:0"`
	IsPublished bool      `gorm:"column:is_published;default:true"`
	CreatedAt   time.Time `gorm:"type:datetime(6)"`
	UpdatedAt   time.Time `gorm:"type:datetime(6)"`
}

func (Video) TableName() string {
	return "videos"
}

func (m *Video) ToDomain() domain.Video {
	return domain.Video{
		ID:          m.ID,
		OwnerID:     m.OwnerID,
		Title:       m.Title,
		Description: m.Description,
		VideoURL:    m.VideoURL,
		Thumbnail:   m.Thumbnail,
		Duration:    m.Duration,
		Views:       m.Views,
		IsPublished: m.IsPublished,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
