package content_test

import (
	"context"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/go-tube-engagement/domain"
	"github.com/Guyuepp/go-tube-engagement/domain/mocks"
	"github.com/Guyuepp/go-tube-engagement/internal/usecase/content"
)

func TestListVideos(t *testing.T) {
	repo := new(mocks.ContentRepository)
	filter := domain.ListFilter{Query: "go", PublishedOnly: true}
	q := domain.ParsePageQuery("1", "500", "views", "asc")
	require.Equal(t, domain.MaxPageLimit, q.Limit)

	videos := []domain.Video{{ID: 1, Title: faker.Sentence()}}
	repo.On("ListVideos", mock.Anything, filter, q).Return(videos, int64(1), nil)

	svc := content.NewService(repo, new(mocks.UserRepository))
	page, err := svc.ListVideos(context.Background(), filter, q)
	require.NoError(t, err)
	assert.Equal(t, videos, page.Items)
	assert.Equal(t, 1, page.TotalPages)

	_, err = svc.ListVideos(context.Background(), domain.ListFilter{OwnerID: -1}, q)
	assert.ErrorIs(t, err, domain.ErrInvalidIdentifier)
}

func TestListVideoComments(t *testing.T) {
	video := domain.Target{Kind: domain.TargetVideo, ID: 4}

	t.Run("unknown video", func(t *testing.T) {
		repo := new(mocks.ContentRepository)
		repo.On("Exists", mock.Anything, video).Return(false, nil)

		svc := content.NewService(repo, new(mocks.UserRepository))
		_, err := svc.ListVideoComments(context.Background(), 4, domain.PageQuery{})
		assert.ErrorIs(t, err, domain.ErrNotFound)
		repo.AssertNotCalled(t, "ListComments", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("past the last page is empty", func(t *testing.T) {
		repo := new(mocks.ContentRepository)
		repo.On("Exists", mock.Anything, video).Return(true, nil)
		repo.On("ListComments", mock.Anything, domain.ListFilter{VideoID: 4}, mock.Anything).
			Return([]domain.Comment(nil), int64(3), nil)

		svc := content.NewService(repo, new(mocks.UserRepository))
		page, err := svc.ListVideoComments(context.Background(), 4, domain.PageQuery{Page: 9, Limit: 10})
		require.NoError(t, err)
		assert.NotNil(t, page.Items)
		assert.Empty(t, page.Items)
		assert.Equal(t, int64(3), page.TotalCount)
		assert.Equal(t, 9, page.CurrentPage)
		assert.Equal(t, 1, page.TotalPages)
	})
}

func TestListUserTweets(t *testing.T) {
	t.Run("unknown user", func(t *testing.T) {
		users := new(mocks.UserRepository)
		users.On("Exists", mock.Anything, int64(2)).Return(false, nil)

		svc := content.NewService(new(mocks.ContentRepository), users)
		_, err := svc.ListUserTweets(context.Background(), 2, domain.PageQuery{})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("known user without tweets", func(t *testing.T) {
		users := new(mocks.UserRepository)
		repo := new(mocks.ContentRepository)
		users.On("Exists", mock.Anything, int64(2)).Return(true, nil)
		repo.On("ListTweets", mock.Anything, domain.ListFilter{OwnerID: 2}, mock.Anything).
			Return([]domain.Tweet{}, int64(0), nil)

		svc := content.NewService(repo, users)
		page, err := svc.ListUserTweets(context.Background(), 2, domain.PageQuery{})
		require.NoError(t, err)
		assert.Empty(t, page.Items)
		assert.Equal(t, 0, page.TotalPages)
		assert.Equal(t, domain.DefaultLimit, page.Limit)
	})
}

func TestListUserPlaylists(t *testing.T) {
	users := new(mocks.UserRepository)
	repo := new(mocks.ContentRepository)
	users.On("Exists", mock.Anything, int64(2)).Return(true, nil)
	lists := []domain.Playlist{{ID: 1, OwnerID: 2, Name: faker.Word(), VideoIDs: []int64{4, 5}}}
	repo.On("ListPlaylists", mock.Anything, domain.ListFilter{OwnerID: 2}, mock.Anything).Return(lists, int64(1), nil)

	svc := content.NewService(repo, users)
	page, err := svc.ListUserPlaylists(context.Background(), 2, domain.PageQuery{})
	require.NoError(t, err)
	assert.Equal(t, lists, page.Items)

	_, err = svc.ListUserPlaylists(context.Background(), 0, domain.PageQuery{})
	assert.ErrorIs(t, err, domain.ErrInvalidIdentifier)
}
