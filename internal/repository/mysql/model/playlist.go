package model

import (
	"time"

	"github.com/Guyuepp/go-tube-engagement/domain"
)

type Playlist struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	OwnerID     int64     `gorm:"column:owner_id;not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"type:datetime(6)"`
	UpdatedAt   time.Time `gorm:"type:datetime(6)"`
}

func (Playlist) TableName() string {
	return "playlists"
}

func (m *Playlist) ToDomain() domain.Playlist {
	return domain.Playlist{
		ID:          m.ID,
		OwnerID:     m.OwnerID,
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// PlaylistVideo links a playlist to one of its videos.
type PlaylistVideo struct {
	PlaylistID int64     `gorm:"column:playlist_id;primaryKey"`
	VideoID    int64     `gorm:"column:video_id;primaryKey"`
	Position   int       `gorm:"column:position;not null;default:0"`
	CreatedAt  time.Time `gorm:"type:datetime(6)"`
}

func (PlaylistVideo) TableName() string {
	return "playlist_videos"
}
