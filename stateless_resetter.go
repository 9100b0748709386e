package quicwire

import (
	"crypto/rand"
	"crypto/sha256"
	"io"
	"sync"

	"golang.org/x/crypto/hkdf"

	"github.com/quicwire/quicwire/internal/protocol"
)

// A StatelessResetKey is the static key stateless reset tokens are derived from.
type StatelessResetKey [32]byte

// statelessResetter derives the stateless reset token carried in
// NEW_CONNECTION_ID frames for locally issued connection IDs.
type statelessResetter struct {
	enabled bool
	mx      sync.Mutex
	key     *StatelessResetKey
}

// newStatelessResetter creates a new stateless resetter.
// A nil key disables deterministic token derivation; tokens are then random,
// which still satisfies the wire format but doesn't allow resetting the
// connection after a restart.
func newStatelessResetter(key *StatelessResetKey) *statelessResetter {
	return &statelessResetter{
		enabled: key != nil,
		key:     key,
	}
}

func (r *statelessResetter) Enabled() bool {
	return r.enabled
}

// GetStatelessResetToken derives the token for a connection ID.
func (r *statelessResetter) GetStatelessResetToken(connID protocol.ConnectionID) protocol.StatelessResetToken {
	var token protocol.StatelessResetToken
	if !r.enabled {
		rand.Read(token[:])
		return token
	}
	r.mx.Lock()
	defer r.mx.Unlock()
	kdf := hkdf.New(sha256.New, r.key[:], connID.Bytes(), []byte("stateless_reset"))
	if _, err := io.ReadFull(kdf, token[:]); err != nil {
		// only possible if the HKDF output is exhausted, which it can't be
		// for a 16-byte read
		panic(err)
	}
	return token
}
