package nav

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keshon/swrpg-bot/internal/chat/chattest"
	"github.com/keshon/swrpg-bot/internal/display"
)

func newService() *Service {
	return &Service{Dice: display.New(display.Symbols{Difficulty: "d", Setback: "s", Boost: "b", Success: "S"})}
}

func TestMainAddsSetbackForSpeed(t *testing.T) {
	rec := &chattest.Recorder{}
	require.NoError(t, newService().Main(context.Background(), rec.Invocation("c", "4", "2", "3")))
	assert.Contains(t, rec.Last(), "Piloting (Hard) dddss")

	require.NoError(t, newService().Main(context.Background(), rec.Invocation("c", "1", "3")))
	assert.Contains(t, rec.Last(), "Piloting (Average) dd\n")
}

func TestMainUsage(t *testing.T) {
	rec := &chattest.Recorder{}
	require.NoError(t, newService().Main(context.Background(), rec.Invocation("c", "fast")))
	assert.Contains(t, rec.Last(), "Usage")

	require.NoError(t, newService().Main(context.Background(), rec.Invocation("c", "2", "2", "7")))
	assert.Contains(t, rec.Last(), "hazard must be 0-5")
}

func TestChaseBoostsFasterSide(t *testing.T) {
	rec := &chattest.Recorder{}
	require.NoError(t, newService().Chase(context.Background(), rec.Invocation("c", "5", "3")))

	out := rec.Last()
	assert.Contains(t, out, "Pursuer Piloting (Average) ddbb")
	assert.Contains(t, out, "Quarry Piloting (Average) dd\n")
}

func TestHugeSpeedsGetUsage(t *testing.T) {
	ctx := context.Background()
	rec := &chattest.Recorder{}

	require.NoError(t, newService().Main(ctx, rec.Invocation("c", "3000000000000000000", "0")))
	assert.Contains(t, rec.Last(), "Usage")
	assert.NotContains(t, rec.Last(), "Piloting")

	require.NoError(t, newService().Chase(ctx, rec.Invocation("c", "3000000000000000000", "0")))
	assert.Contains(t, rec.Last(), "Usage")

	require.NoError(t, newService().Chase(ctx, rec.Invocation("c", "0", "100000000000")))
	assert.Contains(t, rec.Last(), "Usage")

	require.NoError(t, newService().Chase(ctx, rec.Invocation("c", "120", "100")))
	assert.Contains(t, rec.Last(), "Pursuer Piloting (Average) dd"+strings.Repeat("b", 20))
}
