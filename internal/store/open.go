package store

import (
	"fmt"
	"log"

	"bakehouse/internal/config"
)

// Open picks the persistence variant named in the config. The choice is
// static for the process lifetime and logged; there is no silent
// fallback from one variant to the other.
func Open(cfg config.Config) (Store, error) {
	switch cfg.StoreBackend {
	case config.BackendLocal:
		log.Printf("[store] backend=local dir=%s", cfg.DataDir)
		return NewLocal(cfg.DataDir)
	case config.BackendRemote:
		log.Printf("[store] backend=remote base=%s", cfg.APIBaseURL)
		return NewRemote(cfg.APIBaseURL, nil), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}
