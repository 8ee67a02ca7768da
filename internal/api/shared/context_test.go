package shared

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityRoundTrip(t *testing.T) {
	t.Parallel()

	id := Identity{UserID: uuid.New(), Roles: []string{"staff"}}
	ctx := WithIdentity(context.Background(), id)

	got, ok := IdentityFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, id, got)
}

func TestIdentityFromEmptyContext(t *testing.T) {
	t.Parallel()

	_, ok := IdentityFromContext(context.Background())
	assert.False(t, ok)
}

func TestIdentityHasRole(t *testing.T) {
	t.Parallel()

	id := Identity{UserID: uuid.New(), Roles: []string{"staff", "customer"}}

	assert.True(t, id.HasRole("staff"))
	assert.True(t, id.HasRole("customer"))
	assert.False(t, id.HasRole("admin"))
	assert.False(t, Identity{}.HasRole("staff"))
}

func TestTraceID(t *testing.T) {
	t.Parallel()

	assert.Empty(t, GetTraceID(context.Background()))

	ctx := SetTraceID(context.Background())
	traceID := GetTraceID(ctx)
	assert.Len(t, traceID, TraceIDLength*2)

	other := GetTraceID(SetTraceID(context.Background()))
	assert.NotEqual(t, traceID, other)
}
