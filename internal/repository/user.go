package repository

import (
	"context"
	"strconv"

	"golang.org/x/sync/singleflight"

	"github.com/Guyuepp/go-tube-engagement/domain"
	"github.com/Guyuepp/go-tube-engagement/internal/flight"
)

type userRepository struct {
	db          domain.UserRepository
	bloom       domain.BloomRepository
	existsGroup singleflight.Group
}

var _ domain.UserRepository = (*userRepository)(nil)

func NewUserRepository(db domain.UserRepository, bloom domain.BloomRepository) *userRepository {
	return &userRepository{
		db:    db,
		bloom: bloom,
	}
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (domain.User, error) {
	inFilter := mayExist(ctx, r.bloom, domain.BloomUsers, id)
	u, err := r.db.GetByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	if !inFilter {
		repair(ctx, r.bloom, domain.BloomUsers, id)
	}
	return u, nil
}

func (r *userRepository) Exists(ctx context.Context, id int64) (bool, error) {
	inFilter := mayExist(ctx, r.bloom, domain.BloomUsers, id)

	ok, err := flight.Do(ctx, &r.existsGroup, strconv.FormatInt(id, 10), func(ctx context.Context) (bool, error) {
		return r.db.Exists(ctx, id)
	})
	if err != nil {
		return false, err
	}
	if ok && !inFilter {
		repair(ctx, r.bloom, domain.BloomUsers, id)
	}
	return ok, nil
}

func (r *userRepository) GetByIDs(ctx context.Context, userIDs []int64) ([]domain.User, error) {
	return r.db.GetByIDs(ctx, userIDs)
}

func (r *userRepository) FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error) {
	return r.db.FetchIDs(ctx, cursor, limit)
}
