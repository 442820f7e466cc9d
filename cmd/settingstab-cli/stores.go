package main

import (
	"fmt"
	"io"

	"github.com/goliatone/go-settingstab/pkg/host"
	"github.com/goliatone/go-settingstab/pkg/store"
	"github.com/goliatone/go-settingstab/pkg/store/sqlite"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// openStore returns the configured option store and a closer for it.
func openStore(cfg StoreConfig) (host.OptionStore, io.Closer, error) {
	switch cfg.Driver {
	case "memory":
		return store.NewMemoryStore(), nopCloser{}, nil
	case "file":
		st, err := store.OpenFile(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		return st, nopCloser{}, nil
	case "sqlite":
		st, err := sqlite.Open(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		return st, st, nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}
