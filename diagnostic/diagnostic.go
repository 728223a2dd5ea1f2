// Package diagnostic decodes and encodes the J1939 diagnostic message
// parameter groups: DM1 (active trouble codes, PGN 65226) and DM2
// (previously active trouble codes, PGN 65227). Both carry a two-byte lamp
// status header followed by zero or more four-byte trouble code records.
package diagnostic

import (
	"fmt"
	"strings"

	"github.com/erh/goj1939/j1939"
)

const (
	headerLength = 2
	recordLength = 4
)

// ErrMalformedLength reports a PDU whose post-header remainder does not
// divide into whole trouble code records. Partial trailing records are
// never silently dropped.
var ErrMalformedLength = fmt.Errorf("diagnostic: trailing bytes do not form a whole trouble code record")

// LampStatus is a 2-bit lamp state: off, on, error indicator, or not
// available.
type LampStatus uint8

const (
	LampOff LampStatus = iota
	LampOn
	LampError
	LampNotAvailable
)

func (s LampStatus) String() string {
	switch s {
	case LampOff:
		return "off"
	case LampOn:
		return "on"
	case LampError:
		return "<error>"
	default:
		return "-"
	}
}

// FlashStatus is a 2-bit lamp flash code: slow flash, fast flash, reserved,
// or unavailable/do not flash.
type FlashStatus uint8

const (
	FlashSlow FlashStatus = iota
	FlashFast
	FlashReserved
	FlashUnavailable
)

// TroubleCode is one diagnostic trouble code record: a 19-bit suspect
// parameter number, a 5-bit failure mode identifier, the SPN conversion
// method bit, and a 7-bit occurrence count.
type TroubleCode struct {
	SuspectParameterNumber uint32
	FailureMode            uint8
	ConversionMethod       uint8
	OccurrenceCount        uint8
}

// decodeTroubleCode unpacks one 4-byte record. The SPN is reassembled from
// its low byte, mid byte, and the high 3 bits of the FMI byte.
func decodeTroubleCode(rec []byte) TroubleCode {
	return TroubleCode{
		SuspectParameterNumber: uint32(rec[0]) | uint32(rec[1])<<8 | uint32(rec[2]>>5)<<16,
		FailureMode:            rec[2] & 0x1f,
		ConversionMethod:       rec[3] >> 7,
		OccurrenceCount:        rec[3] & 0x7f,
	}
}

// encodeTroubleCode is the exact inverse of decodeTroubleCode, re-splitting
// the 19-bit SPN across its byte fragments.
func encodeTroubleCode(rec []byte, tc TroubleCode) {
	spn := tc.SuspectParameterNumber & 0x7ffff
	rec[0] = byte(spn)
	rec[1] = byte(spn >> 8)
	rec[2] = byte(spn>>16)<<5 | tc.FailureMode&0x1f
	rec[3] = tc.ConversionMethod<<7 | tc.OccurrenceCount&0x7f
}

func (tc TroubleCode) String() string {
	return fmt.Sprintf("SPN %d FMI %d (x%d)", tc.SuspectParameterNumber, tc.FailureMode, tc.OccurrenceCount)
}

// lamps is the 2-byte lamp status header shared by DM1 and DM2.
type lamps struct {
	ProtectLamp              LampStatus
	AmberWarningLamp         LampStatus
	RedStopLamp              LampStatus
	MalfunctionIndicatorLamp LampStatus

	FlashProtectLamp              FlashStatus
	FlashAmberWarningLamp         FlashStatus
	FlashRedStopLamp              FlashStatus
	FlashMalfunctionIndicatorLamp FlashStatus
}

func decodeLamps(pdu []byte) lamps {
	return lamps{
		ProtectLamp:              LampStatus(pdu[0] & 0x3),
		AmberWarningLamp:         LampStatus(pdu[0] >> 2 & 0x3),
		RedStopLamp:              LampStatus(pdu[0] >> 4 & 0x3),
		MalfunctionIndicatorLamp: LampStatus(pdu[0] >> 6 & 0x3),

		FlashProtectLamp:              FlashStatus(pdu[1] & 0x3),
		FlashAmberWarningLamp:         FlashStatus(pdu[1] >> 2 & 0x3),
		FlashRedStopLamp:              FlashStatus(pdu[1] >> 4 & 0x3),
		FlashMalfunctionIndicatorLamp: FlashStatus(pdu[1] >> 6 & 0x3),
	}
}

func (l lamps) encode(pdu []byte) {
	pdu[0] = byte(l.ProtectLamp)&0x3 |
		byte(l.AmberWarningLamp)&0x3<<2 |
		byte(l.RedStopLamp)&0x3<<4 |
		byte(l.MalfunctionIndicatorLamp)&0x3<<6
	pdu[1] = byte(l.FlashProtectLamp)&0x3 |
		byte(l.FlashAmberWarningLamp)&0x3<<2 |
		byte(l.FlashRedStopLamp)&0x3<<4 |
		byte(l.FlashMalfunctionIndicatorLamp)&0x3<<6
}

func (l lamps) describe() string {
	return fmt.Sprintf("Protect: %s; Amber: %s; Red: %s; MIL: %s",
		l.ProtectLamp, l.AmberWarningLamp, l.RedStopLamp, l.MalfunctionIndicatorLamp)
}

// decode unpacks a lamp header plus trouble code records. The record count
// is (len(pdu)-2)/4; a remainder is a malformed-length condition.
func decode(pdu []byte) (lamps, []TroubleCode, error) {
	if len(pdu) < headerLength {
		return lamps{}, nil, ErrMalformedLength
	}
	rest := pdu[headerLength:]
	if len(rest)%recordLength != 0 {
		return lamps{}, nil, ErrMalformedLength
	}

	var codes []TroubleCode
	for at := 0; at < len(rest); at += recordLength {
		codes = append(codes, decodeTroubleCode(rest[at:at+recordLength]))
	}
	return decodeLamps(pdu), codes, nil
}

func encode(l lamps, codes []TroubleCode) []byte {
	pdu := make([]byte, headerLength+recordLength*len(codes))
	l.encode(pdu)
	for i, tc := range codes {
		encodeTroubleCode(pdu[headerLength+i*recordLength:], tc)
	}
	return pdu
}

func describe(l lamps, codes []TroubleCode) string {
	var b strings.Builder
	b.WriteString(l.describe())
	for _, tc := range codes {
		fmt.Fprintf(&b, "; %s", tc)
	}
	return b.String()
}

// Message1 is DM1, the active diagnostic trouble codes.
type Message1 struct {
	lamps
	Codes []TroubleCode
}

// DecodeMessage1 decodes a DM1 PDU of length 2+4k.
func DecodeMessage1(pdu []byte) (Message1, error) {
	l, codes, err := decode(pdu)
	if err != nil {
		return Message1{}, err
	}
	return Message1{lamps: l, Codes: codes}, nil
}

func (m Message1) PGN() j1939.PGN {
	return j1939.PGNDiagnosticMessage1
}

func (m Message1) MarshalPDU() []byte {
	return encode(m.lamps, m.Codes)
}

func (m Message1) String() string {
	return describe(m.lamps, m.Codes)
}

// Message2 is DM2, the previously active diagnostic trouble codes. It
// shares the DM1 wire layout.
type Message2 struct {
	lamps
	Codes []TroubleCode
}

// DecodeMessage2 decodes a DM2 PDU of length 2+4k.
func DecodeMessage2(pdu []byte) (Message2, error) {
	l, codes, err := decode(pdu)
	if err != nil {
		return Message2{}, err
	}
	return Message2{lamps: l, Codes: codes}, nil
}

func (m Message2) PGN() j1939.PGN {
	return j1939.PGNDiagnosticMessage2
}

func (m Message2) MarshalPDU() []byte {
	return encode(m.lamps, m.Codes)
}

func (m Message2) String() string {
	return describe(m.lamps, m.Codes)
}
