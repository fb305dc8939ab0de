package domain_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/go-tube-engagement/domain"
)

func TestParseTargetKind(t *testing.T) {
	for in, want := range map[string]domain.TargetKind{
		"v": domain.TargetVideo, "video": domain.TargetVideo, "videos": domain.TargetVideo,
		"c": domain.TargetComment, "comment": domain.TargetComment,
		"t": domain.TargetTweet, "tweets": domain.TargetTweet,
	} {
		got, err := domain.ParseTargetKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
		assert.True(t, got.Valid())
	}

	_, err := domain.ParseTargetKind("playlist")
	assert.ErrorIs(t, err, domain.ErrInvalidIdentifier)
	assert.False(t, domain.TargetKind("playlist").Valid())
}

func TestErrorKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("%w: video:1", domain.ErrNotFound), domain.KindNotFound},
		{fmt.Errorf("%w: id", domain.ErrInvalidIdentifier), domain.KindInvalidIdentifier},
		{domain.ErrInvalidOperation, domain.KindInvalidOperation},
		{domain.ErrBadParamInput, domain.KindInvalidOperation},
		{domain.ErrConflict, domain.KindConflict},
		{fmt.Errorf("driver: bad connection"), domain.KindInternal},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.ErrorKind(tt.err), tt.err.Error())
	}
}
