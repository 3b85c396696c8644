package chat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keshon/swrpg-bot/pkg/cmd"
)

type sink struct{ got []string }

func (s *sink) Send(_ context.Context, channelID, content string) error {
	s.got = append(s.got, channelID+"|"+content)
	return nil
}

func TestClassify(t *testing.T) {
	assert.Equal(t, TypeAPI, Classify("!swrpg-ui"))
	assert.Equal(t, TypeAPI, Classify("!roll 2d6"))
	assert.Equal(t, TypeGeneral, Classify("hello !swrpg-ui"))
	assert.Equal(t, TypeGeneral, Classify(""))
}

func TestFrom(t *testing.T) {
	_, err := From(nil)
	assert.ErrorIs(t, err, ErrNoContext)

	_, err = From(&cmd.Invocation{Data: "nope"})
	assert.ErrorIs(t, err, ErrNoContext)

	s := &sink{}
	c, err := From(&cmd.Invocation{Data: &Context{Sender: s, Message: &Message{ChannelID: "c1"}}})
	require.NoError(t, err)
	require.NoError(t, c.Reply(context.Background(), "hi"))
	assert.Equal(t, []string{"c1|hi"}, s.got)
	assert.Equal(t, "c1", c.ChannelID())
}

func TestCard(t *testing.T) {
	card := NewCard("Trade").Field("Item", "sword").Line("plain")
	assert.Equal(t, "__**Trade**__\n**Item**: sword\nplain", card.String())

	assert.Equal(t, "a\nb", (&Card{Lines: []string{"a", "b"}}).String())
	assert.Equal(t, "__**Usage**__\n`trade <item>`\nmissing item", Usage("trade", "<item>", "missing item"))
}
