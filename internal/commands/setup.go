package commands

import (
	"github.com/rs/zerolog/log"

	"github.com/keshon/swrpg-bot/internal/config"
	"github.com/keshon/swrpg-bot/internal/display"
	"github.com/keshon/swrpg-bot/internal/middleware"
	"github.com/keshon/swrpg-bot/internal/storage"
	"github.com/keshon/swrpg-bot/pkg/cmd"
)

// Setup opens encounter storage and builds the logged dispatch table from cfg.
// The caller owns the returned storage and must Close it.
func Setup(cfg *config.Config) (*cmd.Registry, *storage.Storage, error) {
	store, err := storage.New(cfg.StoragePath, cfg.StorageAutoSave)
	if err != nil {
		return nil, nil, err
	}
	deps := Deps{Dice: display.New(cfg.Symbols), Store: store}
	table := NewTable(Entries(deps), middleware.WithCommandLogger(log.Logger))
	return table, store, nil
}
