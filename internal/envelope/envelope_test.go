package envelope

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ara/pkg/requestcontext"
)

var identity = Identity{Title: "ARA Standard", Version: "1.0.0", Publisher: "Council"}

func TestNewMetaUsesRequestTime(t *testing.T) {
	at := time.Date(2026, 3, 2, 9, 30, 0, 0, time.FixedZone("CET", 3600))
	ctx := requestcontext.WithTime(context.Background(), at)

	meta := NewMeta(ctx, identity)

	assert.Equal(t, "2026-03-02T08:30:00Z", meta.Generated)
	assert.Equal(t, "ARA Standard", meta.Standard)
	assert.Nil(t, meta.Count)
	assert.Nil(t, meta.TotalInStandard)
}

func TestListSetsCount(t *testing.T) {
	meta := NewMeta(context.Background(), identity).WithTotal(174)

	t.Run("count matches data length", func(t *testing.T) {
		resp := List(meta, []string{"a", "b"})
		require.NotNil(t, resp.Meta.Count)
		assert.Equal(t, 2, *resp.Meta.Count)
		assert.Equal(t, 174, *resp.Meta.TotalInStandard)
	})

	t.Run("nil data encodes as empty array", func(t *testing.T) {
		raw, err := json.Marshal(List[string](meta, nil))
		require.NoError(t, err)
		assert.Contains(t, string(raw), `"data":[]`)
		assert.Contains(t, string(raw), `"count":0`)
	})
}

func TestOptionalFieldsOmitted(t *testing.T) {
	raw, err := json.Marshal(NewMeta(context.Background(), identity))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "count")
	assert.NotContains(t, string(raw), "totalInStandard")
}
