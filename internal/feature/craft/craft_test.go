package craft

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keshon/swrpg-bot/internal/chat/chattest"
	"github.com/keshon/swrpg-bot/internal/display"
	"github.com/keshon/swrpg-bot/internal/storage"
)

func newService(t *testing.T) *Service {
	t.Helper()
	store, err := storage.New(filepath.Join(t.TempDir(), "craft.json"), 0)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return &Service{Dice: display.New(display.Symbols{Difficulty: "d"}), Store: store}
}

func TestMainListsModes(t *testing.T) {
	rec := &chattest.Recorder{}
	require.NoError(t, newService(t).Main(context.Background(), rec.Invocation("c")))
	assert.Contains(t, rec.Last(), display.CraftLightsaber.String())
	assert.Contains(t, rec.Last(), "!swrpg-craft-mode 5")
}

func TestModeValidation(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	for _, arg := range []string{"", "-1", "7", "armor"} {
		rec := &chattest.Recorder{}
		require.NoError(t, svc.Mode(ctx, rec.Invocation("c", arg)))
		assert.Contains(t, rec.Last(), "Usage", arg)
	}

	rec := &chattest.Recorder{}
	require.NoError(t, svc.Mode(ctx, rec.Invocation("c", "3")))
	assert.Contains(t, rec.Last(), "Crafting: Vehicle")
	assert.Contains(t, rec.Last(), "craft-assemble")

	sess, err := svc.Store.Session("c")
	require.NoError(t, err)
	assert.Equal(t, display.CraftVehicle, sess.CraftMode)
}

func TestTemplateValidation(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	rec := &chattest.Recorder{}

	require.NoError(t, svc.Template(ctx, rec.Invocation("c", "2", "100", "1", "Vest")))
	assert.Contains(t, rec.Last(), "Pick a crafting mode first")

	require.NoError(t, svc.Mode(ctx, rec.Invocation("c", "0")))
	for _, args := range [][]string{
		{"9", "100", "1", "Vest"},
		{"2", "-5", "1", "Vest"},
		{"2", "100", "x", "Vest"},
		{"2", "100", "1"},
	} {
		require.NoError(t, svc.Template(ctx, rec.Invocation("c", args...)))
		assert.Contains(t, rec.Last(), "Usage", args)
	}

	require.NoError(t, svc.Template(ctx, rec.Invocation("c", "2", "100", "1", "Padded", "Vest")))
	assert.Contains(t, rec.Last(), "**Name**: Padded Vest")
	assert.Contains(t, rec.Last(), "**Difficulty**: dd")
}

func TestVehicleAssembly(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	rec := &chattest.Recorder{}

	require.NoError(t, svc.Mode(ctx, rec.Invocation("c", "3")))
	require.NoError(t, svc.Assemble(ctx, rec.Invocation("c", "5")))
	assert.Contains(t, rec.Last(), "Mechanics (Daunting)")

	require.NoError(t, svc.Program(ctx, rec.Invocation("c", "Astrogation")))
	assert.Contains(t, rec.Last(), "Droid crafting only")
}

func TestCyberneticsUseMedicine(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	rec := &chattest.Recorder{}

	require.NoError(t, svc.Mode(ctx, rec.Invocation("c", "6")))
	require.NoError(t, svc.Template(ctx, rec.Invocation("c", "4", "5000", "8", "Cyber", "Arm")))
	require.NoError(t, svc.Construct(ctx, rec.Invocation("c")))
	assert.Contains(t, rec.Last(), "Medicine (Daunting)")

	require.NoError(t, svc.Acquire(ctx, rec.Invocation("c")))
	assert.Contains(t, rec.Last(), "Negotiation or Streetwise (Daunting)")
}

func TestDroidProgrammingDifficulty(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	rec := &chattest.Recorder{}

	require.NoError(t, svc.Mode(ctx, rec.Invocation("c", "1")))
	require.NoError(t, svc.Program(ctx, rec.Invocation("c", "Astrogation")))
	assert.Contains(t, rec.Last(), "Computers (Average) dd")

	require.NoError(t, svc.Program(ctx, rec.Invocation("c", "Astrogation", "3")))
	assert.Contains(t, rec.Last(), "Computers (Daunting) dddd")

	require.NoError(t, svc.Program(ctx, rec.Invocation("c", "Astrogation", "9223372036854775807")))
	assert.Contains(t, rec.Last(), "Computers (Formidable) ddddd")

	require.NoError(t, svc.Program(ctx, rec.Invocation("c", "Astrogation", "0")))
	assert.Contains(t, rec.Last(), "Usage")
}
