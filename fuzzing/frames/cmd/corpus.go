package main

import (
	"log"

	"golang.org/x/exp/rand"

	"github.com/quicwire/quicwire/fuzzing/frames"
	"github.com/quicwire/quicwire/fuzzing/internal/helper"
	"github.com/quicwire/quicwire/internal/protocol"
	"github.com/quicwire/quicwire/internal/wire"
)

func getRandomData(l int) []byte {
	b := make([]byte, l)
	rand.Read(b)
	return b
}

func getRandomNumber() uint64 {
	switch 1 << uint8(rand.Intn(3)) {
	case 1:
		return uint64(rand.Int63n(64))
	case 2:
		return uint64(rand.Int63n(16384))
	case 4:
		return uint64(rand.Int63n(1073741824))
	case 8:
		return uint64(rand.Int63n(4611686018427387904))
	default:
		panic("unexpected length")
	}
}

func getRandomNumberLowerOrEqual(target uint64) uint64 {
	if target == 0 {
		return 0
	}
	return uint64(rand.Int63n(int64(target)))
}

// returns a *maximum* number of num ACK ranges
func getAckRanges(num int) []wire.AckRange {
	var ranges []wire.AckRange

	prevSmallest := uint64(rand.Int63n(4611686018427387904))
	for i := 0; i < num; i++ {
		if prevSmallest <= 2 {
			break
		}
		largest := getRandomNumberLowerOrEqual(prevSmallest - 2)
		smallest := getRandomNumberLowerOrEqual(largest)

		ranges = append(ranges, wire.AckRange{
			Smallest: protocol.PacketNumber(smallest),
			Largest:  protocol.PacketNumber(largest),
		})
		prevSmallest = smallest
	}
	return ranges
}

func getFrames() []wire.Frame {
	frames := []wire.Frame{
		&wire.StreamFrame{ // STREAM frame at 0 offset, with FIN bit
			StreamID: protocol.StreamID(getRandomNumber()),
			Fin:      true,
		},
		&wire.StreamFrame{ // STREAM frame at 0 offset, with data and FIN bit
			StreamID: protocol.StreamID(getRandomNumber()),
			Fin:      true,
			Data:     getRandomData(100),
		},
		&wire.StreamFrame{ // STREAM frame at non-zero offset, with data
			StreamID: protocol.StreamID(getRandomNumber()),
			Offset:   protocol.ByteCount(getRandomNumber()),
			Data:     getRandomData(50),
		},
		&wire.StreamFrame{ // STREAM frame at non-zero offset, with data and LEN bit
			StreamID:       protocol.StreamID(getRandomNumber()),
			Offset:         protocol.ByteCount(getRandomNumber()),
			Data:           getRandomData(50),
			DataLenPresent: true,
		},
		&wire.AckFrame{
			AckRanges: getAckRanges(1),
			DelayTime: 1337,
		},
		&wire.AckFrame{
			AckRanges: getAckRanges(5),
			DelayTime: 1e9,
		},
		&wire.PingFrame{},
		&wire.ResetStreamFrame{
			StreamID:  protocol.StreamID(getRandomNumber()),
			ErrorCode: protocol.StreamErrorCode(getRandomNumber()),
			FinalSize: protocol.ByteCount(getRandomNumber()),
		},
		&wire.StopSendingFrame{
			StreamID:  protocol.StreamID(getRandomNumber()),
			ErrorCode: protocol.StreamErrorCode(getRandomNumber()),
		},
		&wire.CryptoFrame{
			Data: getRandomData(100),
		},
		&wire.NewTokenFrame{
			Token: getRandomData(20),
		},
		&wire.MaxDataFrame{
			MaximumData: protocol.ByteCount(getRandomNumber()),
		},
		&wire.MaxStreamDataFrame{
			StreamID:          protocol.StreamID(getRandomNumber()),
			MaximumStreamData: protocol.ByteCount(getRandomNumber()),
		},
		&wire.MaxStreamsFrame{
			Type:         protocol.StreamTypeBidi,
			MaxStreamNum: getRandomNumber(),
		},
		&wire.MaxStreamsFrame{
			Type:         protocol.StreamTypeUni,
			MaxStreamNum: getRandomNumber(),
		},
		&wire.DataBlockedFrame{
			MaximumData: protocol.ByteCount(getRandomNumber()),
		},
		&wire.StreamDataBlockedFrame{
			StreamID:          protocol.StreamID(getRandomNumber()),
			MaximumStreamData: protocol.ByteCount(getRandomNumber()),
		},
		&wire.StreamsBlockedFrame{
			Type:        protocol.StreamTypeBidi,
			StreamLimit: getRandomNumber(),
		},
		&wire.StreamsBlockedFrame{
			Type:        protocol.StreamTypeUni,
			StreamLimit: getRandomNumber(),
		},
		&wire.RetireConnectionIDFrame{
			SequenceNumber: getRandomNumber(),
		},
		&wire.ConnectionCloseFrame{ // application error
			IsApplicationError: true,
			ErrorCode:          getRandomNumber(),
			ReasonPhrase:       "closed",
		},
		&wire.ConnectionCloseFrame{ // transport error
			ErrorCode:    getRandomNumber(),
			FrameType:    getRandomNumber(),
			ReasonPhrase: "closed",
		},
		&wire.HandshakeDoneFrame{},
	}
	ncid := &wire.NewConnectionIDFrame{
		SequenceNumber: getRandomNumber(),
		ConnectionID:   protocol.ConnectionID(getRandomData(protocol.ConnectionIDLen)),
	}
	ncid.RetirePriorTo = getRandomNumberLowerOrEqual(ncid.SequenceNumber)
	copy(ncid.StatelessResetToken[:], getRandomData(16))
	frames = append(frames, ncid)

	pc := &wire.PathChallengeFrame{}
	copy(pc.Data[:], getRandomData(8))
	frames = append(frames, pc)

	pr := &wire.PathResponseFrame{}
	copy(pr.Data[:], getRandomData(8))
	frames = append(frames, pr)

	return frames
}

func main() {
	for i := 0; i < 30; i++ {
		var b []byte
		for _, f := range getFrames() {
			var err error
			b, err = f.Append(b)
			if err != nil {
				log.Fatal(err)
			}
		}
		if err := helper.WriteCorpusFile("corpus", append(make([]byte, frames.PrefixLen), b...)); err != nil {
			log.Fatal(err)
		}
	}
}
