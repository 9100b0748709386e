package wire

import (
	"errors"
	"math"
	"sort"
	"time"

	"github.com/quicwire/quicwire/internal/protocol"
	"github.com/quicwire/quicwire/quicvarint"
)

var errInvalidAckRanges = errors.New("AckFrame: ACK frame contains invalid ACK ranges")

// An AckFrame is an ACK frame
type AckFrame struct {
	AckRanges []AckRange // has to be ordered. The highest ACK range goes first, the lowest ACK range goes last
	DelayTime time.Duration

	// AckDelayExponent scales the ACK Delay field when the frame is appended.
	// The zero value means the protocol default.
	AckDelayExponent uint8

	ECT0, ECT1, ECNCE uint64
}

// Reset clears the frame for reuse.
func (f *AckFrame) Reset() {
	f.AckRanges = f.AckRanges[:0]
	f.DelayTime = 0
	f.AckDelayExponent = 0
	f.ECT0 = 0
	f.ECT1 = 0
	f.ECNCE = 0
}

// parseAckFrame reads an ACK frame into f.
// The type byte must already be stripped from b.
// maxAckRanges bounds the number of additional ACK ranges accepted on receive.
func parseAckFrame(f *AckFrame, b []byte, typ FrameType, ackDelayExponent uint8, maxAckRanges int) (int, error) {
	startLen := len(b)
	ecn := typ == AckECNFrameType

	la, l, err := quicvarint.Parse(b)
	if err != nil {
		return 0, replaceUnexpectedEOF(err)
	}
	b = b[l:]
	largestAcked := protocol.PacketNumber(la)

	delay, l, err := quicvarint.Parse(b)
	if err != nil {
		return 0, replaceUnexpectedEOF(err)
	}
	b = b[l:]

	delayTime := time.Duration(delay*1<<ackDelayExponent) * time.Microsecond
	if delayTime < 0 {
		// If the delay time overflows, set it to the maximum encodable value.
		delayTime = math.MaxInt64
	}
	f.DelayTime = delayTime
	f.AckDelayExponent = ackDelayExponent

	numBlocks, l, err := quicvarint.Parse(b)
	if err != nil {
		return 0, replaceUnexpectedEOF(err)
	}
	b = b[l:]
	if numBlocks > uint64(maxAckRanges) {
		return 0, errors.New("AckFrame: too many ACK ranges")
	}

	// read the first ACK range
	ab, l, err := quicvarint.Parse(b)
	if err != nil {
		return 0, replaceUnexpectedEOF(err)
	}
	b = b[l:]
	ackBlock := protocol.PacketNumber(ab)
	if ackBlock > largestAcked {
		return 0, errors.New("invalid first ACK range")
	}
	smallest := largestAcked - ackBlock
	f.AckRanges = append(f.AckRanges, AckRange{Smallest: smallest, Largest: largestAcked})

	// read all the other ACK ranges
	for i := uint64(0); i < numBlocks; i++ {
		g, l, err := quicvarint.Parse(b)
		if err != nil {
			return 0, replaceUnexpectedEOF(err)
		}
		b = b[l:]
		gap := protocol.PacketNumber(g)
		if smallest < gap+2 {
			return 0, errInvalidAckRanges
		}
		largest := smallest - gap - 2

		ab, l, err := quicvarint.Parse(b)
		if err != nil {
			return 0, replaceUnexpectedEOF(err)
		}
		b = b[l:]
		ackBlock := protocol.PacketNumber(ab)
		if ackBlock > largest {
			return 0, errInvalidAckRanges
		}
		smallest = largest - ackBlock
		f.AckRanges = append(f.AckRanges, AckRange{Smallest: smallest, Largest: largest})
	}

	if !f.validateAckRanges() {
		return 0, errInvalidAckRanges
	}

	if ecn {
		ect0, l, err := quicvarint.Parse(b)
		if err != nil {
			return 0, replaceUnexpectedEOF(err)
		}
		b = b[l:]
		f.ECT0 = ect0
		ect1, l, err := quicvarint.Parse(b)
		if err != nil {
			return 0, replaceUnexpectedEOF(err)
		}
		b = b[l:]
		f.ECT1 = ect1
		ecnce, l, err := quicvarint.Parse(b)
		if err != nil {
			return 0, replaceUnexpectedEOF(err)
		}
		b = b[l:]
		f.ECNCE = ecnce
	}

	return startLen - len(b), nil
}

// Append appends an ACK frame.
// ECN counts are never emitted by this core, so the type byte is always 0x02.
func (f *AckFrame) Append(b []byte) ([]byte, error) {
	b = append(b, byte(AckFrameType))
	b = quicvarint.Append(b, uint64(f.LargestAcked()))
	b = quicvarint.Append(b, f.encodedAckDelay())

	numRanges := len(f.AckRanges)
	b = quicvarint.Append(b, uint64(numRanges-1))

	// write the first range
	firstRange := f.AckRanges[0]
	b = quicvarint.Append(b, uint64(firstRange.Largest-firstRange.Smallest))

	// write all the other range
	lowest := firstRange.Smallest
	for _, r := range f.AckRanges[1:] {
		b = quicvarint.Append(b, uint64(lowest-r.Largest-2)) // gap
		b = quicvarint.Append(b, uint64(r.Largest-r.Smallest))
		lowest = r.Smallest
	}
	return b, nil
}

// Length of a written frame
func (f *AckFrame) Length() protocol.ByteCount {
	largestAcked := f.AckRanges[0].Largest
	numRanges := len(f.AckRanges)

	length := 1 + quicvarint.Len(uint64(largestAcked)) + quicvarint.Len(f.encodedAckDelay())
	length += quicvarint.Len(uint64(numRanges - 1))

	lowestInFirstRange := f.AckRanges[0].Smallest
	length += quicvarint.Len(uint64(largestAcked - lowestInFirstRange))

	lowest := lowestInFirstRange
	for _, r := range f.AckRanges[1:] {
		length += quicvarint.Len(uint64(lowest - r.Largest - 2))
		length += quicvarint.Len(uint64(r.Largest - r.Smallest))
		lowest = r.Smallest
	}
	return protocol.ByteCount(length)
}

func (f *AckFrame) encodedAckDelay() uint64 {
	exponent := f.AckDelayExponent
	if exponent == 0 {
		exponent = protocol.DefaultAckDelayExponent
	}
	return uint64(f.DelayTime.Microseconds()) >> exponent
}

// HasMissingRanges returns if this frame reports any missing packets
func (f *AckFrame) HasMissingRanges() bool {
	return len(f.AckRanges) > 1
}

func (f *AckFrame) validateAckRanges() bool {
	if len(f.AckRanges) == 0 {
		return false
	}

	// check the validity of every single ACK range
	for _, ackRange := range f.AckRanges {
		if ackRange.Smallest > ackRange.Largest {
			return false
		}
	}

	// check the consistency for ACK with multiple NACK ranges
	for i, ackRange := range f.AckRanges {
		if i == 0 {
			continue
		}
		lastAckRange := f.AckRanges[i-1]
		if lastAckRange.Smallest <= ackRange.Smallest {
			return false
		}
		if lastAckRange.Smallest <= ackRange.Largest+1 {
			return false
		}
	}

	return true
}

// LargestAcked is the largest acked packet number
func (f *AckFrame) LargestAcked() protocol.PacketNumber {
	return f.AckRanges[0].Largest
}

// LowestAcked is the lowest acked packet number
func (f *AckFrame) LowestAcked() protocol.PacketNumber {
	return f.AckRanges[len(f.AckRanges)-1].Smallest
}

// AcksPacket determines if this ACK frame acks a certain packet number
func (f *AckFrame) AcksPacket(p protocol.PacketNumber) bool {
	if p < f.LowestAcked() || p > f.LargestAcked() {
		return false
	}

	i := sort.Search(len(f.AckRanges), func(i int) bool {
		return p >= f.AckRanges[i].Smallest
	})
	// i will always be < len(f.AckRanges), since we checked above that p is not bigger than the largest acked
	return p <= f.AckRanges[i].Largest
}
