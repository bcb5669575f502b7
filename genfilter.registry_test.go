package genfilter

import (
	"context"
	"errors"
	"testing"

	"github.com/itsatony/go-cuserr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopAction struct {
	BaseAction
}

func (a *noopAction) WriteResult(ctx context.Context, out ContentHandler) error {
	return nil
}

func TestRegistry_RegisterAndResolve(t *testing.T) {
	registry := NewRegistry(nil)
	require.NoError(t, registry.Register("test.noop", func() Action { return &noopAction{} }))

	assert.True(t, registry.Has("test.noop"))
	assert.Equal(t, 1, registry.Count())

	action, err := registry.Resolve("test.noop")
	require.NoError(t, err)
	assert.IsType(t, &noopAction{}, action)
}

func TestRegistry_ResolveProducesFreshInstances(t *testing.T) {
	registry := NewRegistry(nil)
	require.NoError(t, registry.Register("test.noop", func() Action { return &noopAction{} }))

	first, err := registry.Resolve("test.noop")
	require.NoError(t, err)
	second, err := registry.Resolve("test.noop")
	require.NoError(t, err)

	assert.NotSame(t, first, second)

	// State set on one instance must not leak into the other.
	first.AddParam("k", "v")
	_, ok := second.(*noopAction).Param("k")
	assert.False(t, ok)
}

func TestRegistry_UnknownIdentifier(t *testing.T) {
	registry := NewRegistry(nil)

	action, err := registry.Resolve("no.such.action")
	require.Error(t, err)
	assert.Nil(t, action)
	assert.Contains(t, err.Error(), ErrMsgUnknownAction)

	var customErr *cuserr.CustomError
	require.True(t, errors.As(err, &customErr))
	id, ok := customErr.GetMetadata(MetaKeyAction)
	assert.True(t, ok)
	assert.Equal(t, "no.such.action", id)
}

func TestRegistry_FirstComeWins(t *testing.T) {
	registry := NewRegistry(nil)
	require.NoError(t, registry.Register("test.noop", func() Action { return &noopAction{} }))

	err := registry.Register("test.noop", func() Action { return &trackedAction{} })
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgActionExists)

	// The original registration survives.
	action, err := registry.Resolve("test.noop")
	require.NoError(t, err)
	assert.IsType(t, &noopAction{}, action)
}

func TestRegistry_RejectsInvalidRegistrations(t *testing.T) {
	registry := NewRegistry(nil)

	err := registry.Register("", func() Action { return &noopAction{} })
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgEmptyActionID)

	err = registry.Register("test.nil", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgNilActionFactory)
}

func TestRegistry_NilProducingFactory(t *testing.T) {
	registry := NewRegistry(nil)
	require.NoError(t, registry.Register("test.broken", func() Action { return nil }))

	_, err := registry.Resolve("test.broken")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgNilAction)
}

func TestRegistry_List(t *testing.T) {
	registry := NewRegistry(nil)
	require.NoError(t, registry.Register("b", func() Action { return &noopAction{} }))
	require.NoError(t, registry.Register("a", func() Action { return &noopAction{} }))

	assert.Equal(t, []string{"a", "b"}, registry.List())
}

func TestRegistry_MustRegisterPanicsOnCollision(t *testing.T) {
	registry := NewRegistry(nil)
	registry.MustRegister("test.noop", func() Action { return &noopAction{} })

	assert.Panics(t, func() {
		registry.MustRegister("test.noop", func() Action { return &noopAction{} })
	})
}

func TestRegisterBuiltinActions(t *testing.T) {
	registry := NewRegistry(nil)
	RegisterBuiltinActions(registry)

	assert.True(t, registry.Has(ActionNameInsert))
	assert.True(t, registry.Has(ActionNameText))
	assert.True(t, registry.Has(ActionNameJoin))
}
