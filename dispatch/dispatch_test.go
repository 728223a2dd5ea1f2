package dispatch

import (
	"bytes"
	"testing"

	"go.viam.com/test"

	"github.com/erh/goj1939/j1939"
	"github.com/erh/goj1939/spn"
)

func TestDecodeKnownGroup(t *testing.T) {
	// 0x18FEE6EE#243412024029837D
	data := []byte{0x24, 0x34, 0x12, 0x02, 0x40, 0x29, 0x83, 0x7D}

	msg, ok, err := Decode(j1939.PGNTimeDate, data)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, msg.PGN(), test.ShouldEqual, j1939.PGNTimeDate)
	test.That(t, msg.MarshalPDU(), test.ShouldResemble, data)

	_, isTimeDate := msg.(spn.TimeDate)
	test.That(t, isTimeDate, test.ShouldBeTrue)
}

func TestDecodeUnregisteredGroup(t *testing.T) {
	// Recognized tags without codecs and arbitrary numeric groups both
	// come back not-ok, with no error.
	for _, pgn := range []j1939.PGN{
		j1939.PGNTransportProtocolDataTransfer,
		j1939.PGNAddressClaimed,
		j1939.PGN(126720),
		j1939.PGN(0xFFFFFF),
	} {
		msg, ok, err := Decode(pgn, []byte{1, 2, 3, 4, 5, 6, 7, 8})
		test.That(t, err, test.ShouldBeNil)
		test.That(t, ok, test.ShouldBeFalse)
		test.That(t, msg, test.ShouldBeNil)
	}
}

func TestDecodeShortPDU(t *testing.T) {
	msg, ok, err := Decode(j1939.PGNEngineTemperature1, []byte{1, 2, 3})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, msg, test.ShouldBeNil)
}

func TestDecodeDiagnosticMalformed(t *testing.T) {
	_, ok, err := Decode(j1939.PGNDiagnosticMessage1, []byte{0x44, 0xFF, 0x12})
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestDecodeVariableLengthGroups(t *testing.T) {
	msg, ok, err := Decode(j1939.PGNVehicleIdentification, []byte("1M2AX09C88M046540*"))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, ok, test.ShouldBeTrue)
	vi, isVI := msg.(spn.VehicleIdentification)
	test.That(t, isVI, test.ShouldBeTrue)
	test.That(t, vi.VehicleIdentificationNumber, test.ShouldEqual, "1M2AX09C88M046540")

	_, ok, err = Decode(j1939.PGNSoftwareIdentification, nil)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestDecodeNeverPanics(t *testing.T) {
	pdus := [][]byte{
		nil,
		{},
		{0xFF},
		bytes.Repeat([]byte{0xFE}, 8),
		bytes.Repeat([]byte{0x00}, 3),
	}
	for pgn := range decoders {
		for _, pdu := range pdus {
			_, ok, _ := Decode(pgn, pdu)
			test.That(t, ok, test.ShouldBeTrue)
		}
	}
}

func TestDecodeFrame(t *testing.T) {
	id := j1939.IDBuilderFromPGN(j1939.PGNEngineTemperature1).Source(0xEE).Build()
	frame := j1939.NewFrameBuilder(id).
		CopyFrom(bytes.Repeat([]byte{0xFF}, 8)).
		Build()

	msg, ok, err := DecodeFrame(frame)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, ok, test.ShouldBeTrue)

	et1, isET1 := msg.(spn.EngineTemperature1)
	test.That(t, isET1, test.ShouldBeTrue)
	test.That(t, et1.CoolantTemperature.IsNotAvailable(), test.ShouldBeTrue)
}
