package diagnostic

import (
	"errors"
	"testing"

	"go.viam.com/test"

	"github.com/erh/goj1939/j1939"
)

func TestDecodeMessage1(t *testing.T) {
	// MIL on, amber warning on, one active code: SPN 157 FMI 4, seen 3 times.
	pdu := []byte{
		0x44, 0xFF,
		0x9D, 0x00, 0x04, 0x03,
	}

	m, err := DecodeMessage1(pdu)
	test.That(t, err, test.ShouldBeNil)

	test.That(t, m.MalfunctionIndicatorLamp, test.ShouldEqual, LampOn)
	test.That(t, m.AmberWarningLamp, test.ShouldEqual, LampOn)
	test.That(t, m.RedStopLamp, test.ShouldEqual, LampOff)
	test.That(t, m.ProtectLamp, test.ShouldEqual, LampOff)
	test.That(t, m.FlashMalfunctionIndicatorLamp, test.ShouldEqual, FlashUnavailable)

	test.That(t, m.Codes, test.ShouldHaveLength, 1)
	test.That(t, m.Codes[0].SuspectParameterNumber, test.ShouldEqual, uint32(157))
	test.That(t, m.Codes[0].FailureMode, test.ShouldEqual, 4)
	test.That(t, m.Codes[0].ConversionMethod, test.ShouldEqual, 0)
	test.That(t, m.Codes[0].OccurrenceCount, test.ShouldEqual, 3)

	test.That(t, m.PGN(), test.ShouldEqual, j1939.PGNDiagnosticMessage1)
	test.That(t, m.MarshalPDU(), test.ShouldResemble, pdu)
}

func TestDecodeMessage1MultipleCodes(t *testing.T) {
	pdu := []byte{
		0x10, 0x00,
		0x9D, 0x00, 0x04, 0x03,
		0x6F, 0x03, 0x1F, 0x7F,
		0xFF, 0xFF, 0xE3, 0x81,
	}

	m, err := DecodeMessage1(pdu)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, m.Codes, test.ShouldHaveLength, 3)

	test.That(t, m.Codes[1].SuspectParameterNumber, test.ShouldEqual, uint32(879))
	test.That(t, m.Codes[1].FailureMode, test.ShouldEqual, 31)
	test.That(t, m.Codes[1].OccurrenceCount, test.ShouldEqual, 127)

	// Top SPN fragment comes from the high 3 bits of the FMI byte.
	test.That(t, m.Codes[2].SuspectParameterNumber, test.ShouldEqual, uint32(0xFFFF|0x7<<16))
	test.That(t, m.Codes[2].FailureMode, test.ShouldEqual, 3)
	test.That(t, m.Codes[2].ConversionMethod, test.ShouldEqual, 1)
	test.That(t, m.Codes[2].OccurrenceCount, test.ShouldEqual, 1)

	test.That(t, m.MarshalPDU(), test.ShouldResemble, pdu)
}

func TestDecodeMessage1LampsOnly(t *testing.T) {
	m, err := DecodeMessage1([]byte{0x00, 0xFF})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, m.Codes, test.ShouldHaveLength, 0)
	test.That(t, m.MarshalPDU(), test.ShouldResemble, []byte{0x00, 0xFF})
}

func TestDecodeMessage1MalformedLength(t *testing.T) {
	// One stray byte after a whole record is an error, not a truncation.
	pdu := []byte{
		0x44, 0xFF,
		0x9D, 0x00, 0x04, 0x03,
		0x12,
	}

	_, err := DecodeMessage1(pdu)
	test.That(t, errors.Is(err, ErrMalformedLength), test.ShouldBeTrue)

	_, err = DecodeMessage1([]byte{0x44})
	test.That(t, errors.Is(err, ErrMalformedLength), test.ShouldBeTrue)

	_, err = DecodeMessage1(nil)
	test.That(t, errors.Is(err, ErrMalformedLength), test.ShouldBeTrue)
}

func TestDecodeMessage2(t *testing.T) {
	pdu := []byte{
		0x01, 0xFF,
		0x6F, 0x03, 0x1F, 0x7F,
	}

	m, err := DecodeMessage2(pdu)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, m.ProtectLamp, test.ShouldEqual, LampOn)
	test.That(t, m.Codes, test.ShouldHaveLength, 1)
	test.That(t, m.PGN(), test.ShouldEqual, j1939.PGNDiagnosticMessage2)
	test.That(t, m.MarshalPDU(), test.ShouldResemble, pdu)
}

func TestTroubleCodeSPNSplit(t *testing.T) {
	// SPN 520192 = 0x7F000 exercises all three byte fragments.
	tc := TroubleCode{
		SuspectParameterNumber: 0x7F000,
		FailureMode:            12,
		ConversionMethod:       1,
		OccurrenceCount:        5,
	}

	var rec [4]byte
	encodeTroubleCode(rec[:], tc)
	test.That(t, decodeTroubleCode(rec[:]), test.ShouldResemble, tc)
}
