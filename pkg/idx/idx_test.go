package idx_test

import (
	"testing"
	"time"

	"github.com/stratusworks/rollcall/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestNewIsSortable(t *testing.T) {
	t.Parallel()

	a := idx.NewAt(time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC))
	b := idx.NewAt(time.Date(2024, 5, 1, 9, 0, 1, 0, time.UTC))

	require.True(t, a.String() < b.String())
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("round trips generated ids", func(t *testing.T) {
		id := idx.New()
		parsed, err := idx.Parse(id.String())
		require.NoError(t, err)
		require.Equal(t, id, parsed)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		_, err := idx.Parse("   ")
		require.ErrorIs(t, err, idx.ErrInvalid)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := idx.Parse("not-a-ulid")
		require.ErrorIs(t, err, idx.ErrInvalid)
	})
}

func TestTime(t *testing.T) {
	t.Parallel()

	at := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	id := idx.NewAt(at)

	require.WithinDuration(t, at, id.Time(), time.Millisecond)
	require.True(t, idx.Zero.Time().IsZero())
}
