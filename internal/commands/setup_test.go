package commands

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keshon/swrpg-bot/internal/config"
	"github.com/keshon/swrpg-bot/internal/console"
	"github.com/keshon/swrpg-bot/internal/display"
)

func TestSetupRoutesThroughConsole(t *testing.T) {
	path := filepath.Join(t.TempDir(), "datastore.json")
	cfg := &config.Config{StoragePath: path, Symbols: display.DefaultSymbols()}

	table, store, err := Setup(cfg)
	require.NoError(t, err)
	assert.Equal(t, len(allNames), table.Len())

	var out bytes.Buffer
	c := console.New(table, &out, "gm")
	require.NoError(t, c.Exec(context.Background(), "!swrpg-slice-security-inc"))
	require.NoError(t, store.Close())
	assert.NotEmpty(t, out.String())
	assert.FileExists(t, path)

	// Encounter state survives a restart.
	_, store, err = Setup(cfg)
	require.NoError(t, err)
	defer store.Close()
	sess, err := store.Session(console.DefaultChannel)
	require.NoError(t, err)
	assert.Equal(t, display.Hard, sess.SecurityLevel)
}
