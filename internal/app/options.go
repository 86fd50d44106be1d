package app

import (
	"log/slog"

	"biome-painter/internal/store"
)

// Options carries the optional collaborators of a Game.
type Options struct {
	HUDWidth int
	Store    *store.DB
	MapName  string
	Logger   *slog.Logger
}
