package content

import (
	"context"
	"fmt"

	"github.com/Guyuepp/go-tube-engagement/domain"
)

type Service struct {
	contentRepo domain.ContentRepository
	userRepo    domain.UserRepository
}

var _ domain.ContentUsecase = (*Service)(nil)

func NewService(c domain.ContentRepository, u domain.UserRepository) *Service {
	return &Service{
		contentRepo: c,
		userRepo:    u,
	}
}

func (s *Service) ListVideos(ctx context.Context, filter domain.ListFilter, q domain.PageQuery) (domain.Page[domain.Video], error) {
	if filter.OwnerID < 0 {
		return domain.Page[domain.Video]{}, fmt.Errorf("%w: user id must be positive, got %d", domain.ErrInvalidIdentifier, filter.OwnerID)
	}
	return domain.ListPage(ctx, s.contentRepo.ListVideos, filter, q)
}

func (s *Service) ListVideoComments(ctx context.Context, videoID int64, q domain.PageQuery) (domain.Page[domain.Comment], error) {
	video := domain.Target{Kind: domain.TargetVideo, ID: videoID}
	if videoID <= 0 {
		return domain.Page[domain.Comment]{}, fmt.Errorf("%w: video id must be positive, got %d", domain.ErrInvalidIdentifier, videoID)
	}
	ok, err := s.contentRepo.Exists(ctx, video)
	if err != nil {
		return domain.Page[domain.Comment]{}, err
	}
	if !ok {
		return domain.Page[domain.Comment]{}, fmt.Errorf("%w: %s", domain.ErrNotFound, video)
	}
	return domain.ListPage(ctx, s.contentRepo.ListComments, domain.ListFilter{VideoID: videoID}, q)
}

// ListUserTweets fails with ErrNotFound for an unknown user; a known user
// without tweets gets an empty page.
func (s *Service) ListUserTweets(ctx context.Context, userID int64, q domain.PageQuery) (domain.Page[domain.Tweet], error) {
	if err := s.userMustExist(ctx, userID); err != nil {
		return domain.Page[domain.Tweet]{}, err
	}
	return domain.ListPage(ctx, s.contentRepo.ListTweets, domain.ListFilter{OwnerID: userID}, q)
}

func (s *Service) ListUserPlaylists(ctx context.Context, userID int64, q domain.PageQuery) (domain.Page[domain.Playlist], error) {
	if err := s.userMustExist(ctx, userID); err != nil {
		return domain.Page[domain.Playlist]{}, err
	}
	return domain.ListPage(ctx, s.contentRepo.ListPlaylists, domain.ListFilter{OwnerID: userID}, q)
}

func (s *Service) userMustExist(ctx context.Context, userID int64) error {
	if userID <= 0 {
		return fmt.Errorf("%w: user id must be positive, got %d", domain.ErrInvalidIdentifier, userID)
	}
	ok, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: user %d", domain.ErrNotFound, userID)
	}
	return nil
}
