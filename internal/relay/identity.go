package relay

import (
	"crypto/sha256"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/xeruf/mostr-go/internal/event"
)

// LoadOrCreateIdentity derives the author public key as the SHA-256 of
// the identity seed stored at path; on first use it writes a fresh UUID
// there as the seed. There
// is no real key-pair/signing scheme here — this module is a local
// stand-in for the relay client, not a transport implementation (spec
// §1 Non-goals).
func LoadOrCreateIdentity(path string) (event.PubKey, error) {
	if b, err := os.ReadFile(path); err == nil {
		return event.PubKey(sha256.Sum256(b)), nil
	}
	id := uuid.New()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return event.PubKey{}, err
	}
	if err := os.WriteFile(path, []byte(id.String()), 0o600); err != nil {
		return event.PubKey{}, err
	}
	return event.PubKey(sha256.Sum256([]byte(id.String()))), nil
}
