package store_test

import (
	"testing"

	"bakehouse/internal/config"
	"bakehouse/internal/store"
)

func TestOpen_SelectsConfiguredVariant(t *testing.T) {
	s, err := store.Open(config.Config{StoreBackend: config.BackendLocal, DataDir: t.TempDir()})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.(*store.Local); !ok {
		t.Fatalf("want *store.Local, got %T", s)
	}

	s, err = store.Open(config.Config{StoreBackend: config.BackendRemote, APIBaseURL: "http://localhost:3000/api"})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.(*store.Remote); !ok {
		t.Fatalf("want *store.Remote, got %T", s)
	}

	if _, err := store.Open(config.Config{StoreBackend: "carrier-pigeon"}); err == nil {
		t.Fatal("unknown backend must be rejected, not silently defaulted")
	}
}
