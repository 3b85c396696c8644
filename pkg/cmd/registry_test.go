package cmd

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryLastRegistrationWins(t *testing.T) {
	r := NewRegistry()
	var hit string

	assert.False(t, r.Register(Func("trade", "first", func(context.Context, *Invocation) error {
		hit = "first"
		return nil
	})))
	assert.True(t, r.Register(Func("trade", "second", func(context.Context, *Invocation) error {
		hit = "second"
		return nil
	})))

	c, ok := r.Lookup("trade")
	require.True(t, ok)
	require.NoError(t, c.Run(context.Background(), &Invocation{}))
	assert.Equal(t, "second", hit)
	assert.Equal(t, 1, r.Len())
}

func TestRegistryCaseInsensitive(t *testing.T) {
	r := NewRegistry()
	r.Register(Func("Slice-UI", "", func(context.Context, *Invocation) error { return nil }))

	_, ok := r.Lookup("slice-ui")
	assert.True(t, ok)
	_, ok = r.Lookup("SLICE-UI")
	assert.True(t, ok)
	assert.Equal(t, []string{"slice-ui"}, r.Names())
}

func TestRegistryMissingIsNotAnError(t *testing.T) {
	r := NewRegistry()
	c, ok := r.Lookup("nonexistent")
	assert.False(t, ok)
	assert.Nil(t, c)
	assert.Nil(t, r.Get("nonexistent"))
}

func TestInvocable(t *testing.T) {
	noop := func(context.Context, *Invocation) error { return nil }

	assert.False(t, Invocable(nil))
	assert.False(t, Invocable(Func("x", "", nil)))
	assert.True(t, Invocable(Func("x", "", noop)))

	wrapped := Wrap(Func("x", "", nil), noop)
	assert.False(t, Invocable(wrapped), "wrappers are looked through")
}

func TestApplyOrder(t *testing.T) {
	var order []string
	tag := func(name string) Middleware {
		return func(c Command) Command {
			return Wrap(c, func(ctx context.Context, inv *Invocation) error {
				order = append(order, name)
				return c.Run(ctx, inv)
			})
		}
	}

	c := Apply(Func("x", "desc", func(context.Context, *Invocation) error {
		order = append(order, "inner")
		return nil
	}), tag("a"), nil, tag("b"))

	require.NoError(t, c.Run(context.Background(), &Invocation{}))
	assert.Equal(t, []string{"b", "a", "inner"}, order)
	assert.Equal(t, "x", c.Name())
	assert.Equal(t, "desc", c.Description())
	assert.Equal(t, "x", Root(c).Name())
}

func TestInvocationArgs(t *testing.T) {
	inv := &Invocation{Args: []string{"sword", "100", "x"}}

	assert.Equal(t, "sword", inv.Arg(0))
	assert.Equal(t, "", inv.Arg(5))

	n, err := inv.Int(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 100, n)

	n, err = inv.Int(7, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = inv.Int(2, 0)
	assert.Error(t, err)

	assert.Equal(t, "100 x", inv.Rest(1))
	assert.Equal(t, "", inv.Rest(3))
}
