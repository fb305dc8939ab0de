package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/Guyuepp/go-tube-engagement/domain"
	"github.com/Guyuepp/go-tube-engagement/internal/repository/mysql/model"
)

type contentRepository struct {
	DB *gorm.DB
}

// mysql层只负责数据库操作
var _ domain.ContentRepository = (*contentRepository)(nil)

// NewContentDBRepository creates the database side of the content store
func NewContentDBRepository(db *gorm.DB) *contentRepository {
	return &contentRepository{db}
}

func (m *contentRepository) Exists(ctx context.Context, target domain.Target) (bool, error) {
	table, err := contentTable(target.Kind)
	if err != nil {
		return false, err
	}
	var n int64
	err = m.DB.WithContext(ctx).Table(table).Where("id = ?", target.ID).Count(&n).Error
	return n > 0, err
}

func (m *contentRepository) ListVideos(ctx context.Context, filter domain.ListFilter, q domain.PageQuery) ([]domain.Video, int64, error) {
	published := func(db *gorm.DB) *gorm.DB {
		if !filter.PublishedOnly {
			return db
		}
		return db.Where("is_published = ?", true)
	}
	return findPage(ctx, m.DB, q, videoSortColumns, (*model.Video).ToDomain,
		ownedBy(filter.OwnerID), containsFold("title", filter.Query), published)
}

func (m *contentRepository) ListComments(ctx context.Context, filter domain.ListFilter, q domain.PageQuery) ([]domain.Comment, int64, error) {
	onVideo := func(db *gorm.DB) *gorm.DB {
		if filter.VideoID <= 0 {
			return db
		}
		return db.Where("video_id = ?", filter.VideoID)
	}
	return findPage(ctx, m.DB, q, commentSortColumns, (*model.Comment).ToDomain,
		onVideo, ownedBy(filter.OwnerID), containsFold("content", filter.Query))
}

func (m *contentRepository) ListTweets(ctx context.Context, filter domain.ListFilter, q domain.PageQuery) ([]domain.Tweet, int64, error) {
	return findPage(ctx, m.DB, q, tweetSortColumns, (*model.Tweet).ToDomain,
		ownedBy(filter.OwnerID), containsFold("content", filter.Query))
}

func (m *contentRepository) ListPlaylists(ctx context.Context, filter domain.ListFilter, q domain.PageQuery) ([]domain.Playlist, int64, error) {
	playlists, total, err := findPage(ctx, m.DB, q, playlistSortColumns, (*model.Playlist).ToDomain,
		ownedBy(filter.OwnerID), containsFold("name", filter.Query))
	if err != nil || len(playlists) == 0 {
		return playlists, total, err
	}

	ids := make([]int64, len(playlists))
	for i := range playlists {
		ids[i] = playlists[i].ID
	}
	var links []model.PlaylistVideo
	err = m.DB.WithContext(ctx).
		Where("playlist_id IN ?", ids).
		Order("playlist_id, position").
		Find(&links).Error
	if err != nil {
		return nil, 0, err
	}

	videos := make(map[int64][]int64, len(playlists))
	for _, l := range links {
		videos[l.PlaylistID] = append(videos[l.PlaylistID], l.VideoID)
	}
	for i := range playlists {
		playlists[i].VideoIDs = videos[playlists[i].ID]
		if playlists[i].VideoIDs == nil {
			playlists[i].VideoIDs = []int64{}
		}
	}
	return playlists, total, nil
}

func (m *contentRepository) FetchIDs(ctx context.Context, kind domain.TargetKind, cursor, limit int64) (ids []int64, err error) {
	table, err := contentTable(kind)
	if err != nil {
		return nil, err
	}
	err = m.DB.WithContext(ctx).
		Table(table).
		Select("id").
		Where("id > ?", cursor).
		Order("id").
		Limit(int(limit)).
		Find(&ids).Error
	return
}
