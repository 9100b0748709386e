package quicwire

import (
	"fmt"

	"github.com/quicwire/quicwire/internal/protocol"
	"github.com/quicwire/quicwire/internal/qerr"
)

// A ConnIDEntry is one issued or received connection ID, ordered by its
// sequence number.
type ConnIDEntry struct {
	SequenceNumber      uint64
	ConnectionID        protocol.ConnectionID
	StatelessResetToken protocol.StatelessResetToken
}

// A ConnectionIDSet holds the connection IDs of one direction (source or
// destination). Entries are dense: sequence numbers are consecutive, and
// only the oldest entry can be retired.
type ConnectionIDSet struct {
	entries  []ConnIDEntry
	maxCount int
}

// NewConnectionIDSet creates a set holding at most maxCount IDs.
func NewConnectionIDSet(maxCount int) *ConnectionIDSet {
	return &ConnectionIDSet{maxCount: maxCount}
}

// Len returns the number of connection IDs in the set.
func (s *ConnectionIDSet) Len() int { return len(s.entries) }

// MaxCount is the capacity negotiated via active_connection_id_limit.
func (s *ConnectionIDSet) MaxCount() int { return s.maxCount }

// LastNumber returns the highest sequence number in the set.
func (s *ConnectionIDSet) LastNumber() uint64 {
	if len(s.entries) == 0 {
		return 0
	}
	return s.entries[len(s.entries)-1].SequenceNumber
}

// FirstNumber returns the lowest sequence number in the set.
func (s *ConnectionIDSet) FirstNumber() uint64 {
	if len(s.entries) == 0 {
		return 0
	}
	return s.entries[0].SequenceNumber
}

// Get returns the entry with the given sequence number, or nil.
func (s *ConnectionIDSet) Get(seq uint64) *ConnIDEntry {
	first := s.FirstNumber()
	if len(s.entries) == 0 || seq < first || seq > s.LastNumber() {
		return nil
	}
	return &s.entries[seq-first]
}

// Append adds a new connection ID. The sequence number must directly follow
// the highest one in the set.
func (s *ConnectionIDSet) Append(e ConnIDEntry) error {
	if len(s.entries) != 0 && e.SequenceNumber != s.LastNumber()+1 {
		return fmt.Errorf("connection ID sequence number %d does not follow %d", e.SequenceNumber, s.LastNumber())
	}
	if len(s.entries) >= s.maxCount {
		return &qerr.TransportError{
			ErrorCode:    qerr.ConnectionIDLimitError,
			ErrorMessage: "too many connection IDs",
		}
	}
	s.entries = append(s.entries, e)
	return nil
}

// Remove retires the connection ID with the given sequence number.
// Only the oldest entry can be removed.
func (s *ConnectionIDSet) Remove(seq uint64) error {
	if len(s.entries) == 0 || seq != s.FirstNumber() {
		return fmt.Errorf("connection ID %d is not the oldest in the set", seq)
	}
	s.entries = s.entries[1:]
	return nil
}
