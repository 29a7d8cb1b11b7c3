package dedupe_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DeafMist/es-cli/internal/dedupe"
)

func TestSetSeenDuplicate(t *testing.T) {
	set := dedupe.NewSet[string](10)
	require.False(t, set.IsSeen("alpha"))
	require.True(t, set.Add("alpha"))
	require.True(t, set.IsSeen("alpha"))
	require.False(t, set.Add("alpha"))
	require.Len(t, set.Items(), 1)
}

func TestSetKeepsFirstInsertionOrder(t *testing.T) {
	set := dedupe.NewSet[string](0)
	for _, k := range []string{"b", "a", "b", "c", "a"} {
		set.Add(k)
	}
	require.Equal(t, []string{"b", "a", "c"}, set.Items())
}

func TestSetStructKeys(t *testing.T) {
	type pair struct{ path, kind string }

	set := dedupe.NewSet[pair](-1)
	require.True(t, set.Add(pair{"message", "text"}))
	require.True(t, set.Add(pair{"message", "keyword"}))
	require.False(t, set.Add(pair{"message", "text"}))
	require.Len(t, set.Items(), 2)
}
