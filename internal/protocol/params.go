package protocol

// DefaultAckDelayExponent is the default ack delay exponent
const DefaultAckDelayExponent = 3

// MaxAckGaps is the maximum number of gap blocks carried in a single ACK frame.
// Emission is bounded here at compile time; the receive-side limit defaults to
// the same value but is configurable.
const MaxAckGaps = 16

// MaxReasonPhraseLen is the maximum accepted length of a CONNECTION_CLOSE
// reason phrase, including its trailing NUL.
const MaxReasonPhraseLen = 80

// ConnectionIDLen is the length of locally issued connection IDs.
const ConnectionIDLen = 16

// PathEntropyLen is the length of the PATH_CHALLENGE / PATH_RESPONSE payload.
const PathEntropyLen = 8

// MaxNewConnectionIDLen is the highest connection ID length a
// NEW_CONNECTION_ID frame may carry.
const MaxNewConnectionIDLen = maxConnectionIDLen

// MaxCryptoStreamOffset is the maximum offset allowed on the crypto stream.
// This core only carries session tickets at offset zero.
const MaxCryptoStreamOffset = 16 * (1 << 10)
