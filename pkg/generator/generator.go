package generator

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
)

const sessionIDPrefix = "sess_"

// IDSource mints opaque session identifiers. Uniqueness against live
// sessions is enforced by the registry, which retries on collision.
type IDSource interface {
	NewSessionID() string
}

// Legacy produces ids in the historical wire format: a millisecond
// wall-clock stamp and a 4-digit random suffix, e.g. "sess_1724800000000_0417".
type Legacy struct{}

func (Legacy) NewSessionID() string {
	now := time.Now()
	suffix := now.UnixNano() % 10000
	if n, err := rand.Int(rand.Reader, big.NewInt(10000)); err == nil {
		suffix = n.Int64()
	}
	return fmt.Sprintf("%s%d_%04d", sessionIDPrefix, now.UnixMilli(), suffix)
}

// UUID produces "sess_" + a random UUIDv4, for deployments that want
// unguessable session ids.
type UUID struct{}

func (UUID) NewSessionID() string {
	return sessionIDPrefix + uuid.NewString()
}

// FromMode maps a configuration value to an IDSource. Anything other
// than "uuid" selects the legacy format.
func FromMode(mode string) IDSource {
	if mode == "uuid" {
		return UUID{}
	}
	return Legacy{}
}
