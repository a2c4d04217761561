package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"importflow/internal/dossier"
)

// Fixed keys of the key-value state store.
const (
	keyDossiers = "dossiers"
	keyRole     = "role"
)

// ErrNoState reports that a key has never been written. Callers fall back
// to seed data.
var ErrNoState = errors.New("no stored state")

// Store is the persistence port of the workflow service. The engine never
// touches it; the service loads at startup and saves after every mutation.
type Store interface {
	LoadDossiers() ([]*dossier.Dossier, error)
	SaveDossiers(dossiers []*dossier.Dossier) error
	LoadRole() (dossier.Role, error)
	SaveRole(role dossier.Role) error
	Close() error
}

// kv is the byte-string surface both backends implement; the JSON codec
// above it is shared.
type kv interface {
	get(key string) ([]byte, error)
	put(key string, value []byte) error
}

func loadDossiers(backend kv) ([]*dossier.Dossier, error) {
	raw, err := backend.get(keyDossiers)
	if err != nil {
		return nil, err
	}
	var dossiers []*dossier.Dossier
	if err := json.Unmarshal(raw, &dossiers); err != nil {
		return nil, fmt.Errorf("decode dossiers: %w", err)
	}
	return dossiers, nil
}

func saveDossiers(backend kv, dossiers []*dossier.Dossier) error {
	raw, err := json.Marshal(dossiers)
	if err != nil {
		return fmt.Errorf("encode dossiers: %w", err)
	}
	return backend.put(keyDossiers, raw)
}

func loadRole(backend kv) (dossier.Role, error) {
	raw, err := backend.get(keyRole)
	if err != nil {
		return "", err
	}
	role, ok := dossier.ParseRole(string(raw))
	if !ok {
		return "", fmt.Errorf("decode role: unknown role %q", raw)
	}
	return role, nil
}

func saveRole(backend kv, role dossier.Role) error {
	return backend.put(keyRole, []byte(role))
}
