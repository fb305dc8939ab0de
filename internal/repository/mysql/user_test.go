package mysql

import (
	"context"
	"testing"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"

	"github.com/Guyuepp/go-tube-engagement/domain"
)

var userColumns = []string{"id", "name", "username", "email", "avatar", "created_at", "updated_at"}

func TestUserGetByID(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Now().UTC().Truncate(time.Second)
	name, username, email := faker.Name(), faker.Username(), faker.Email()

	mock.ExpectQuery("SELECT \\* FROM `users` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(1, name, username, email, "", now, now))

	u, err := NewUserRepository(db).GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, name, u.Name)
	assert.Equal(t, email, u.Profile().Email)
}

func TestUserGetByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("SELECT \\* FROM `users` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows(userColumns))

	_, err := NewUserRepository(db).GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserExists(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `users` WHERE id = \\?").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))

	ok, err := NewUserRepository(db).Exists(context.Background(), 5)
	require.NoError(t, err)
	assert.True(t, ok)
}
