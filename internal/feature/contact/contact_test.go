package contact

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keshon/swrpg-bot/internal/chat/chattest"
	"github.com/keshon/swrpg-bot/internal/display"
)

func TestInvestigate(t *testing.T) {
	svc := &Service{Dice: display.New(display.Symbols{Difficulty: "d", Boost: "b"})}
	rec := &chattest.Recorder{}

	require.NoError(t, svc.Investigate(context.Background(), rec.Invocation("c", "7", "2")))
	assert.Contains(t, rec.Last(), "Streetwise (Hard) dddbb")

	require.NoError(t, svc.Investigate(context.Background(), rec.Invocation("c")))
	assert.Contains(t, rec.Last(), display.ContactInvestigate)
}

func TestInvestigateWithoutReplyContext(t *testing.T) {
	svc := &Service{Dice: display.New(display.DefaultSymbols())}
	assert.Error(t, svc.Investigate(context.Background(), nil))
}

func TestInvestigateTooManyContacts(t *testing.T) {
	svc := &Service{Dice: display.New(display.Symbols{Difficulty: "d", Boost: "b"})}
	rec := &chattest.Recorder{}

	require.NoError(t, svc.Investigate(context.Background(), rec.Invocation("c", "1", "3000000000000000000")))
	assert.Contains(t, rec.Last(), "Usage")
	assert.NotContains(t, rec.Last(), "Streetwise")
}
