package idx_test

import (
	"testing"

	"github.com/lanternhq/authd/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestNewAndParse(t *testing.T) {
	id := idx.New()
	require.NotEmpty(t, id.String())
	require.False(t, id.IsZero())

	parsed, err := idx.Parse(id.String())
	require.NoError(t, err)
	require.Equal(t, id, parsed)
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "   ", "not-a-ulid", "01HQ7T3Z1M"} {
		_, err := idx.Parse(s)
		require.ErrorIs(t, err, idx.ErrInvalid, "input %q", s)
	}
}

func TestNewIsUnique(t *testing.T) {
	seen := make(map[idx.ID]struct{})
	for range 1000 {
		id := idx.MustNew()
		_, dup := seen[id]
		require.False(t, dup)
		seen[id] = struct{}{}
	}
}
