package j1939

import (
	"bytes"
	"testing"

	"go.viam.com/test"
)

func TestFrameBuildPartial(t *testing.T) {
	frame := NewFrameBuilder(IDBuilderFromPGN(PGNRequest).Destination(0x20).Source(0x10).Build()).
		CopyFrom([]byte{0x1, 0x2, 0x3}).
		Build()

	test.That(t, frame.ID(), test.ShouldResemble, NewID(0x18EA2010))
	test.That(t, frame.PDU(), test.ShouldResemble, []byte{0x1, 0x2, 0x3})
	test.That(t, frame.Len(), test.ShouldEqual, 3)
	test.That(t, frame.IsEmpty(), test.ShouldBeFalse)
}

func TestFrameBuildFull(t *testing.T) {
	notAvailable := bytes.Repeat([]byte{PDUNotAvailable}, PDUMaxLength)

	frame := NewFrameBuilder(IDBuilderFromPGN(PGNAddressClaimed).Priority(3).Source(0x10).Build()).
		CopyFrom(notAvailable).
		Build()

	test.That(t, frame.ID(), test.ShouldResemble, NewID(0x0CEE0010))
	test.That(t, frame.PDU(), test.ShouldResemble, notAvailable)
	test.That(t, frame.Len(), test.ShouldEqual, PDUMaxLength)
	test.That(t, frame.IsEmpty(), test.ShouldBeFalse)
}

func TestFrameBuildEmpty(t *testing.T) {
	frame := NewFrameBuilder(IDBuilderFromPGN(PGNTransfer).Build()).Build()

	test.That(t, frame.ID(), test.ShouldResemble, NewID(0x18CA0000))
	test.That(t, frame.PDU(), test.ShouldHaveLength, 0)
	test.That(t, frame.Len(), test.ShouldEqual, 0)
	test.That(t, frame.IsEmpty(), test.ShouldBeTrue)
}

func TestFrameBuildSetID(t *testing.T) {
	frame := NewFrameBuilder(ID{}).
		ID(IDBuilderFromPGN(PGNTransfer).Build()).
		CopyFrom([]byte{0x8, 0x7, 0x6, 0x5, 0x4, 0x3, 0x2, 0x1}).
		SetLen(8).
		Build()

	test.That(t, frame.ID(), test.ShouldResemble, NewID(0x18CA0000))
	test.That(t, frame.PDU(), test.ShouldResemble, []byte{0x8, 0x7, 0x6, 0x5, 0x4, 0x3, 0x2, 0x1})
	test.That(t, frame.Len(), test.ShouldEqual, PDUMaxLength)
	test.That(t, frame.IsEmpty(), test.ShouldBeFalse)
}

func TestFrameBuildGrownTailIsNotAvailable(t *testing.T) {
	// Growing the length past the copied data exposes the not-available
	// fill, never zeros.
	frame := NewFrameBuilder(IDBuilderFromPGN(PGNTransfer).Build()).
		CopyFrom([]byte{0x1, 0x2, 0x3}).
		SetLen(8).
		Build()

	test.That(t, frame.PDU(), test.ShouldResemble,
		[]byte{0x1, 0x2, 0x3, PDUNotAvailable, PDUNotAvailable, PDUNotAvailable, PDUNotAvailable, PDUNotAvailable})
}

func TestFrameBuildNotAvailableTail(t *testing.T) {
	frame := NewFrameBuilder(IDBuilderFromPGN(PGNElectronicEngineController2).Build()).
		SetLen(8).
		Build()

	test.That(t, frame.PDU(), test.ShouldResemble, bytes.Repeat([]byte{PDUNotAvailable}, PDUMaxLength))
	test.That(t, frame.Len(), test.ShouldEqual, PDUMaxLength)
	test.That(t, frame.IsEmpty(), test.ShouldBeFalse)
}

func TestFrameBuildTruncates(t *testing.T) {
	frame := NewFrameBuilder(IDBuilderFromPGN(PGNTransfer).Build()).
		CopyFrom(bytes.Repeat([]byte{0xAB}, 12)).
		Build()

	test.That(t, frame.Len(), test.ShouldEqual, PDUMaxLength)
	test.That(t, frame.PDU(), test.ShouldResemble, bytes.Repeat([]byte{0xAB}, PDUMaxLength))
}

func TestNewFrameFromRaw(t *testing.T) {
	frame := NewFrameFromRaw(0x18FEE6EE, [PDUMaxLength]byte{0x24, 0x34, 0x12, 0x02, 0x40, 0x29, 0x83, 0x7D})

	test.That(t, frame.ID().PGN(), test.ShouldEqual, PGNTimeDate)
	test.That(t, frame.Len(), test.ShouldEqual, PDUMaxLength)
	test.That(t, frame.PDU()[0], test.ShouldEqual, 0x24)
}
