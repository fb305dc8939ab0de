package mysql

import (
	"context"
	"testing"
	"time"

	"github.com/go-faker/faker/v4"
	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"

	"github.com/Guyuepp/go-tube-engagement/domain"
)

func TestSubscriptionToggle(t *testing.T) {
	t.Run("adds", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM `subscriptions`").
			WithArgs(int64(1), int64(2)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("INSERT INTO `subscriptions`").WillReturnResult(sqlmock.NewResult(5, 1))
		mock.ExpectCommit()

		state, err := NewSubscriptionRepository(db).Toggle(context.Background(), 1, 2)
		require.NoError(t, err)
		assert.Equal(t, domain.StateAdded, state)
	})

	t.Run("removes", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM `subscriptions`").
			WithArgs(int64(1), int64(2)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		state, err := NewSubscriptionRepository(db).Toggle(context.Background(), 1, 2)
		require.NoError(t, err)
		assert.Equal(t, domain.StateRemoved, state)
	})

	t.Run("lock wait timeout is retried", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM `subscriptions`").
			WillReturnError(&mysqldriver.MySQLError{Number: erLockWaitTimeout, Message: "Lock wait timeout exceeded"})
		mock.ExpectRollback()
		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM `subscriptions`").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("INSERT INTO `subscriptions`").WillReturnResult(sqlmock.NewResult(6, 1))
		mock.ExpectCommit()

		state, err := NewSubscriptionRepository(db).Toggle(context.Background(), 1, 2)
		require.NoError(t, err)
		assert.Equal(t, domain.StateAdded, state)
	})
}

func TestListSubscribers(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Now().UTC().Truncate(time.Second)
	name, email := faker.Name(), faker.Email()

	mock.ExpectQuery("SELECT u.id AS user_id, u.name, u.username, u.email, u.avatar, s.created_at AS subscribed_at FROM subscriptions AS s JOIN users AS u ON u.id = s.subscriber_id").
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "name", "username", "email", "avatar", "subscribed_at"}).
			AddRow(1, name, "someone", email, "", now))

	subs, err := NewSubscriptionRepository(db).ListSubscribers(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, int64(1), subs[0].ID)
	assert.Equal(t, name, subs[0].Name)
	assert.Equal(t, email, subs[0].Email)
	assert.Equal(t, now, subs[0].SubscribedAt)
}

func TestListSubscriptionsEmpty(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("FROM subscriptions AS s JOIN users AS u ON u.id = s.channel_id").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "name", "username", "email", "avatar", "subscribed_at"}))

	channels, err := NewSubscriptionRepository(db).ListSubscriptions(context.Background(), 1)
	require.NoError(t, err)
	assert.NotNil(t, channels)
	assert.Empty(t, channels)
}
