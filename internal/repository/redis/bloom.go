package redis

import (
	"context"
	"fmt"
	"hash/crc32"
	"hash/fnv"

	"github.com/redis/go-redis/v9"

	"github.com/Guyuepp/go-tube-engagement/domain"
)

// KeyBloom holds one bitmap per namespace (user, video, comment, tweet).
const KeyBloom = "bloom:%s:ids"

type redisBloomRepo struct {
	client       *redis.Client
	BloomBitSize uint64
}

var _ domain.BloomRepository = (*redisBloomRepo)(nil)

func NewRedisBloomRepo(client *redis.Client, bitSize uint64) *redisBloomRepo {
	return &redisBloomRepo{
		client:       client,
		BloomBitSize: bitSize,
	}
}

func bloomKey(namespace string) string {
	return fmt.Sprintf(KeyBloom, namespace)
}

func (r *redisBloomRepo) Add(ctx context.Context, namespace string, id int64) error {
	key := bloomKey(namespace)
	pipe := r.client.Pipeline()
	for _, offset := range r.getOffset(id) {
		pipe.SetBit(ctx, key, int64(offset), 1)
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (r *redisBloomRepo) Exists(ctx context.Context, namespace string, id int64) (bool, error) {
	key := bloomKey(namespace)
	pipe := r.client.Pipeline()
	for _, offset := range r.getOffset(id) {
		pipe.GetBit(ctx, key, int64(offset))
	}
	cmds, err := pipe.Exec(ctx)
	if err != nil {
		return false, err
	}

	for _, cmd := range cmds {
		val, err := cmd.(*redis.IntCmd).Result()
		if err != nil {
			return false, err
		}
		if val == 0 {
			return false, nil
		}
	}

	return true, nil
}

func (r *redisBloomRepo) getOffset(id int64) []uint64 {
	data := fmt.Appendf(nil, "%d", id)
	offsets := make([]uint64, 3) // k=3

	offsets[0] = uint64(crc32.ChecksumIEEE(data)) % r.BloomBitSize

	h := fnv.New64()
	h.Write(data)
	offsets[1] = h.Sum64() % r.BloomBitSize

	offsets[2] = (offsets[0] + offsets[1] + 0xABC) % r.BloomBitSize

	return offsets
}

func (r *redisBloomRepo) BulkAdd(ctx context.Context, namespace string, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	key := bloomKey(namespace)
	pipe := r.client.Pipeline()
	for _, id := range ids {
		for _, offset := range r.getOffset(id) {
			pipe.SetBit(ctx, key, int64(offset), 1)
		}
	}

	_, err := pipe.Exec(ctx)
	return err
}
