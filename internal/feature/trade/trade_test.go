package trade

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keshon/swrpg-bot/internal/chat/chattest"
	"github.com/keshon/swrpg-bot/internal/display"
)

func newService() *Service {
	return &Service{Dice: display.New(display.Symbols{Difficulty: "d", Advantage: "a"})}
}

func TestItem(t *testing.T) {
	rec := &chattest.Recorder{}
	require.NoError(t, newService().Item(context.Background(), rec.Invocation("c", "sword", "100")))

	out := rec.Last()
	assert.Contains(t, out, "Trade: sword")
	assert.Contains(t, out, "100 credits")
	assert.Contains(t, out, "Negotiation (Simple)")
	assert.Contains(t, out, "**Sells for**: 25 credits")
}

func TestItemRarityAndModifiers(t *testing.T) {
	rec := &chattest.Recorder{}
	require.NoError(t, newService().Item(context.Background(), rec.Invocation("c", "Blaster", "500", "5", "+2", "-1")))

	out := rec.Last()
	assert.Contains(t, out, "5 (modified 6)")
	assert.Contains(t, out, "Negotiation (Hard) ddd")
}

func TestItemUsage(t *testing.T) {
	svc := newService()
	for _, args := range [][]string{
		{},
		{"sword"},
		{"sword", "cheap"},
		{"sword", "100", "-3"},
		{"sword", "100", "2", "far"},
	} {
		rec := &chattest.Recorder{}
		require.NoError(t, svc.Item(context.Background(), rec.Invocation("c", args...)))
		assert.Contains(t, rec.Last(), "Usage", args)
		assert.Contains(t, rec.Last(), display.TradeLocation, args)
	}
}
