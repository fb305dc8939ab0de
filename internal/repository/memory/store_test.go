package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/go-tube-engagement/domain"
)

func newUser(s *Store) domain.User {
	return s.PutUser(domain.User{Name: faker.Name(), Username: faker.Username(), Email: faker.Email()})
}

func TestLikeToggleParity(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	owner := newUser(s)
	actor := newUser(s)
	video := s.PutVideo(domain.Video{OwnerID: owner.ID, Title: faker.Sentence()})
	target := domain.Target{Kind: domain.TargetVideo, ID: video.ID}
	likes := s.Likes()

	for i := 1; i <= 5; i++ {
		state, err := likes.Toggle(ctx, actor.ID, target)
		require.NoError(t, err)

		exists, err := likes.Exists(ctx, actor.ID, target)
		require.NoError(t, err)
		if i%2 == 1 {
			assert.Equal(t, domain.StateAdded, state)
			assert.True(t, exists)
		} else {
			assert.Equal(t, domain.StateRemoved, state)
			assert.False(t, exists)
		}
	}
}

func TestConcurrentTogglesSettleOnParity(t *testing.T) {
	ctx := context.Background()
	for _, n := range []int{1, 2, 7, 16, 33} {
		s := NewStore()
		owner := newUser(s)
		actor := newUser(s)
		video := s.PutVideo(domain.Video{OwnerID: owner.ID, Title: faker.Sentence()})
		target := domain.Target{Kind: domain.TargetVideo, ID: video.ID}

		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			added   int
			removed int
		)
		for range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				state, err := s.Likes().Toggle(ctx, actor.ID, target)
				assert.NoError(t, err)
				mu.Lock()
				defer mu.Unlock()
				if state == domain.StateAdded {
					added++
				} else {
					removed++
				}
			}()
		}
		wg.Wait()

		exists, err := s.Likes().Exists(ctx, actor.ID, target)
		require.NoError(t, err)
		assert.Equal(t, n%2 == 1, exists, "n=%d", n)
		assert.Equal(t, n, added+removed)
		assert.Equal(t, n%2, added-removed)

		got, err := s.Stats().CountLikesOnOwner(ctx, owner.ID, domain.TargetVideo)
		require.NoError(t, err)
		assert.Equal(t, int64(n%2), got)
	}
}

func TestLikedTargetsSkipsDeletedContent(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	s.now = func() time.Time { return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) }
	owner := newUser(s)
	actor := newUser(s)
	t1 := s.PutTweet(domain.Tweet{OwnerID: owner.ID, Content: faker.Sentence()})
	t2 := s.PutTweet(domain.Tweet{OwnerID: owner.ID, Content: faker.Sentence()})
	t3 := s.PutTweet(domain.Tweet{OwnerID: owner.ID, Content: faker.Sentence()})
	for _, tw := range []domain.Tweet{t1, t2, t3} {
		_, err := s.Likes().Toggle(ctx, actor.ID, domain.Target{Kind: domain.TargetTweet, ID: tw.ID})
		require.NoError(t, err)
	}
	s.DeleteContent(domain.Target{Kind: domain.TargetTweet, ID: t2.ID})

	var ids []int64
	for ref, err := range s.Likes().LikedTargets(ctx, actor.ID, domain.TargetTweet) {
		require.NoError(t, err)
		assert.Equal(t, owner.ID, ref.OwnerID)
		ids = append(ids, ref.Target.ID)
	}
	// Same timestamp everywhere, so the newer edge id wins.
	assert.Equal(t, []int64{t3.ID, t1.ID}, ids)

	// ranging twice re-reads the store
	count := 0
	for range s.Likes().LikedTargets(ctx, actor.ID, domain.TargetTweet) {
		count++
	}
	assert.Equal(t, 2, count)
}

func TestSubscriptionGraph(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	channel := newUser(s)
	alice := newUser(s)
	bob := newUser(s)
	subs := s.Subscriptions()

	_, err := subs.Toggle(ctx, channel.ID, channel.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidOperation)

	list, err := subs.ListSubscribers(ctx, channel.ID)
	require.NoError(t, err)
	assert.Empty(t, list)

	for _, u := range []domain.User{alice, bob} {
		state, err := subs.Toggle(ctx, u.ID, channel.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StateAdded, state)
	}

	list, err = subs.ListSubscribers(ctx, channel.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, bob.Email, list[0].Email)
	assert.Equal(t, alice.Name, list[1].Name)

	channels, err := subs.ListSubscriptions(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, channels, 1)
	assert.Equal(t, channel.ID, channels[0].ID)

	n, err := s.Stats().CountSubscribers(ctx, channel.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	channel := newUser(s)
	fan := newUser(s)
	st := s.Stats()

	n, err := st.CountVideos(ctx, channel.ID)
	require.NoError(t, err)
	assert.Zero(t, n)
	views, err := st.SumViews(ctx, channel.ID)
	require.NoError(t, err)
	assert.Zero(t, views)

	v := s.PutVideo(domain.Video{OwnerID: channel.ID, Views: 40, Title: faker.Sentence()})
	s.PutVideo(domain.Video{OwnerID: channel.ID, Views: 2, IsPublished: false})
	s.PutVideo(domain.Video{OwnerID: fan.ID, Views: 1000})

	target := domain.Target{Kind: domain.TargetVideo, ID: v.ID}
	_, err = s.Likes().Toggle(ctx, fan.ID, target)
	require.NoError(t, err)

	n, _ = st.CountVideos(ctx, channel.ID)
	assert.Equal(t, int64(2), n)
	views, _ = st.SumViews(ctx, channel.ID)
	assert.Equal(t, int64(42), views)
	likes, _ := st.CountLikesOnOwner(ctx, channel.ID, domain.TargetVideo)
	assert.Equal(t, int64(1), likes)

	_, err = s.Likes().Toggle(ctx, fan.ID, target)
	require.NoError(t, err)
	likes, _ = st.CountLikesOnOwner(ctx, channel.ID, domain.TargetVideo)
	assert.Zero(t, likes)
}

func TestListVideosPaging(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	owner := newUser(s)
	other := newUser(s)
	for i := range 23 {
		s.PutVideo(domain.Video{OwnerID: owner.ID, Title: "Cat video", Views: int64(i), CreatedAt: base.Add(time.Duration(i) * time.Minute)})
	}
	s.PutVideo(domain.Video{OwnerID: other.ID, Title: "dog video", CreatedAt: base})

	repo := s.Content()
	q := domain.PageQuery{Page: 3, Limit: 10}.Normalize()
	items, total, err := repo.ListVideos(ctx, domain.ListFilter{OwnerID: owner.ID}, q)
	require.NoError(t, err)
	assert.Equal(t, int64(23), total)
	require.Len(t, items, 3)
	assert.Equal(t, int64(2), items[0].Views)
	assert.Equal(t, int64(0), items[2].Views)

	items, total, err = repo.ListVideos(ctx, domain.ListFilter{Query: "CAT"}, domain.PageQuery{Page: 1, Limit: 5, SortField: "views", SortDir: "asc"})
	require.NoError(t, err)
	assert.Equal(t, int64(23), total)
	assert.Equal(t, int64(0), items[0].Views)

	ids, err := repo.FetchIDs(ctx, domain.TargetVideo, 0, 5)
	require.NoError(t, err)
	assert.Len(t, ids, 5)
	assert.IsIncreasing(t, ids)
}
