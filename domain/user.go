package domain

import (
	"context"
	"time"
)

// User represents a user entity in the system.
// Every user is also a channel others can subscribe to.
type User struct {
	ID        int64     // Unique identifier
	Name      string    // Display name
	Username  string    // Login username (unique)
	Email     string    // Contact email
	Avatar    string    // Avatar url
	CreatedAt time.Time // Account creation timestamp
	UpdatedAt time.Time // Last profile update timestamp
}

// Profile is the public part of a User.
type Profile struct {
	ID       int64
	Name     string
	Username string
	Email    string
	Avatar   string
}

func (u User) Profile() Profile {
	return Profile{
		ID:       u.ID,
		Name:     u.Name,
		Username: u.Username,
		Email:    u.Email,
		Avatar:   u.Avatar,
	}
}

// UserRepository defines the contract for user data reads.
type UserRepository interface {
	// GetByID retrieves a user by their ID.
	// Returns ErrNotFound if the user doesn't exist.
	GetByID(ctx context.Context, id int64) (User, error)

	// Exists reports whether a user with this id is present.
	Exists(ctx context.Context, id int64) (bool, error)

	GetByIDs(ctx context.Context, userIDs []int64) ([]User, error)

	// FetchIDs returns up to limit user ids greater than cursor, ascending.
	FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error)
}
