package repository

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/Guyuepp/go-tube-engagement/domain"
	"github.com/Guyuepp/go-tube-engagement/internal/flight"
)

// contentRepository 协调层，布隆过滤器在前，数据库在后
type contentRepository struct {
	db          domain.ContentRepository
	bloom       domain.BloomRepository
	existsGroup singleflight.Group
}

var _ domain.ContentRepository = (*contentRepository)(nil)

// NewContentRepository wraps the database store with the bloom filter.
// bloom may be nil, then every existence check goes to the database.
func NewContentRepository(db domain.ContentRepository, bloom domain.BloomRepository) *contentRepository {
	return &contentRepository{
		db:    db,
		bloom: bloom,
	}
}

// Exists asks the database, coalescing concurrent checks of the same target.
// The bloom filter is consulted first; a "definitely absent" answer is still
// verified, since rows are created outside this service and may not be in the
// filter yet. A row found that way is added to the filter.
func (r *contentRepository) Exists(ctx context.Context, target domain.Target) (bool, error) {
	inFilter := mayExist(ctx, r.bloom, string(target.Kind), target.ID)

	ok, err := flight.Do(ctx, &r.existsGroup, "exists:"+target.String(), func(ctx context.Context) (bool, error) {
		return r.db.Exists(ctx, target)
	})
	if err != nil {
		return false, err
	}
	if ok && !inFilter {
		repair(ctx, r.bloom, string(target.Kind), target.ID)
	}
	return ok, nil
}

func (r *contentRepository) ListVideos(ctx context.Context, filter domain.ListFilter, q domain.PageQuery) ([]domain.Video, int64, error) {
	return r.db.ListVideos(ctx, filter, q)
}

func (r *contentRepository) ListComments(ctx context.Context, filter domain.ListFilter, q domain.PageQuery) ([]domain.Comment, int64, error) {
	return r.db.ListComments(ctx, filter, q)
}

func (r *contentRepository) ListTweets(ctx context.Context, filter domain.ListFilter, q domain.PageQuery) ([]domain.Tweet, int64, error) {
	return r.db.ListTweets(ctx, filter, q)
}

func (r *contentRepository) ListPlaylists(ctx context.Context, filter domain.ListFilter, q domain.PageQuery) ([]domain.Playlist, int64, error) {
	return r.db.ListPlaylists(ctx, filter, q)
}

func (r *contentRepository) FetchIDs(ctx context.Context, kind domain.TargetKind, cursor, limit int64) ([]int64, error) {
	return r.db.FetchIDs(ctx, kind, cursor, limit)
}

// mayExist reports false only when the filter is certain the id is absent.
// A redis failure is logged and treated as "maybe".
func mayExist(ctx context.Context, bloom domain.BloomRepository, namespace string, id int64) bool {
	if bloom == nil {
		return true
	}
	ok, err := bloom.Exists(ctx, namespace, id)
	if err != nil {
		logrus.WithFields(logrus.Fields{"namespace": namespace, "id": id}).Warnf("bloom filter unavailable: %v", err)
		return true
	}
	return ok
}

// repair adds an id the filter missed. Ids committed out of order or after the
// last refresh end up here.
func repair(ctx context.Context, bloom domain.BloomRepository, namespace string, id int64) {
	if bloom == nil {
		return
	}
	log := logrus.WithFields(logrus.Fields{"namespace": namespace, "id": id})
	if err := bloom.Add(ctx, namespace, id); err != nil {
		log.Warnf("failed to add missed id to bloom filter: %v", err)
		return
	}
	log.Debug("bloom filter missed an existing id")
}
