package wire

import (
	"github.com/quicwire/quicwire/quicvarint"
)

func encodeVarInt(i uint64) []byte {
	return quicvarint.Append(nil, i)
}
