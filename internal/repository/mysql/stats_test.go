package mysql

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"

	"github.com/Guyuepp/go-tube-engagement/domain"
)

func TestStatsRepository(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStatsRepository(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `videos` WHERE owner_id = \\?").
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(3))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `subscriptions` WHERE channel_id = \\?").
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(12))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM likes AS l JOIN comments AS c ON c.id = l.target_id").
		WithArgs("comment", int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(5))
	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(views\\), 0\\) FROM `videos`").
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"COALESCE(SUM(views), 0)"}).AddRow(0))

	n, err := repo.CountVideos(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	n, err = repo.CountSubscribers(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(12), n)

	n, err = repo.CountLikesOnOwner(ctx, 4, domain.TargetComment)
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)

	n, err = repo.SumViews(ctx, 4)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCountLikesOnOwnerUnknownKind(t *testing.T) {
	db, _ := newMockDB(t)
	_, err := NewStatsRepository(db).CountLikesOnOwner(context.Background(), 4, domain.TargetKind("playlist"))
	assert.ErrorIs(t, err, domain.ErrInvalidIdentifier)
}
