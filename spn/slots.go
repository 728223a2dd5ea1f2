package spn

import (
	"math"
	"strings"

	"github.com/erh/goj1939/j1939"
)

// slot is a linear scaling between raw counts and a physical unit, after the
// J1939-71 SLOT tables: physical = raw*resolution + offset. Raw values are
// little-endian and one to four bytes wide.
type slot struct {
	resolution float64
	offset     float64
	width      int
}

// Scalings shared across parameter groups.
var (
	slotPercent       = slot{0.4, 0, 1}          // %
	slotPercentTorque = slot{1, -125, 1}         // %
	slotRotVelocity   = slot{0.125, 0, 2}        // rpm
	slotVelocity      = slot{1.0 / 256, 0, 2}    // km/h
	slotTemp8         = slot{1, -40, 1}          // deg C
	slotTemp16        = slot{0.03125, -273, 2}   // deg C
	slotPressure05    = slot{0.5, 0, 1}          // kPa
	slotPressure2     = slot{2, 0, 1}            // kPa
	slotPressure4     = slot{4, 0, 1}            // kPa
	slotPressureFine  = slot{0.05, 0, 1}         // kPa
	slotPressureWide  = slot{1.0 / 128, -250, 2} // kPa
	slotRailPressure  = slot{1.0 / 256, 0, 2}    // MPa
	slotPotential     = slot{0.05, 0, 2}         // V
	slotCurrent       = slot{1, -125, 1}         // A
	slotCurrentUns    = slot{1, 0, 1}            // A
	slotFuelUsage     = slot{0.5, 0, 4}          // L
	slotFuelRate      = slot{0.05, 0, 2}         // L/h
	slotFuelEconomy   = slot{1.0 / 512, 0, 2}    // km/L
	slotDistance      = slot{0.125, 0, 4}        // km
	slotDistanceHiRes = slot{5, 0, 4}            // m
	slotPosition      = slot{1e-7, -210, 4}      // deg
	slotHours         = slot{0.05, 0, 4}         // h
	slotSeconds       = slot{0.25, 0, 1}         // s
	slotDays          = slot{0.25, 0, 1}         // d
	slotCount8        = slot{1, 0, 1}            // raw count
	slotYear          = slot{1, 1985, 1}         // a
	slotMinuteOffset  = slot{1, -125, 1}         // min
	slotHourOffset    = slot{1, -125, 1}         // h
)

// errPattern returns the raw value whose bytes are all PDUError for the
// width, i.e. the error-indicator sentinel. The not-available sentinel is
// naPattern, all bytes PDUNotAvailable.
func errPattern(width int) uint32 {
	var v uint32
	for i := 0; i < width; i++ {
		v = v<<8 | uint32(j1939.PDUError)
	}
	return v
}

func naPattern(width int) uint32 {
	var v uint32
	for i := 0; i < width; i++ {
		v = v<<8 | uint32(j1939.PDUNotAvailable)
	}
	return v
}

// readRaw reads a little-endian raw value of the given width.
func readRaw(pdu []byte, at, width int) uint32 {
	var v uint32
	for i := width - 1; i >= 0; i-- {
		v = v<<8 | uint32(pdu[at+i])
	}
	return v
}

// writeRaw writes a little-endian raw value of the given width.
func writeRaw(pdu []byte, at, width int, v uint32) {
	for i := 0; i < width; i++ {
		pdu[at+i] = byte(v >> (8 * i))
	}
}

// dec decodes the slot's raw field at the byte offset. The exact all-0xFE
// and all-0xFF patterns surface as the error and not-available states; every
// other pattern reports the linear value, unclamped.
func (s slot) dec(pdu []byte, at int) Value[float64] {
	raw := readRaw(pdu, at, s.width)
	switch raw {
	case naPattern(s.width):
		return NotAvailable[float64]()
	case errPattern(s.width):
		return ErrorIndicator[float64]()
	}
	return Available(float64(raw)*s.resolution + s.offset)
}

// enc encodes the value at the byte offset. The two sentinel states write
// back their exact byte patterns. A reading is rounded to the nearest raw
// count and clamped to the sentinel-free range, so an out-of-range physical
// value saturates at the boundary instead of wrapping or aliasing a
// sentinel.
func (s slot) enc(pdu []byte, at int, v Value[float64]) {
	switch {
	case v.IsNotAvailable():
		writeRaw(pdu, at, s.width, naPattern(s.width))
	case v.IsErrorIndicator():
		writeRaw(pdu, at, s.width, errPattern(s.width))
	default:
		value, _ := v.Get()
		r := math.Round((value - s.offset) / s.resolution)
		max := float64(naPattern(s.width) - 1)
		if r < 0 {
			r = 0
		}
		if r > max {
			r = max
		}
		raw := uint32(r)
		if raw == errPattern(s.width) {
			raw--
		}
		writeRaw(pdu, at, s.width, raw)
	}
}

// decRaw decodes an unscaled little-endian integer field of the given width
// with the same sentinel handling as scaled fields.
func decRaw(pdu []byte, at, width int) Value[uint32] {
	raw := readRaw(pdu, at, width)
	switch raw {
	case naPattern(width):
		return NotAvailable[uint32]()
	case errPattern(width):
		return ErrorIndicator[uint32]()
	}
	return Available(raw)
}

// encRaw encodes an unscaled integer field. Readings clamp to the
// sentinel-free range for the width.
func encRaw(pdu []byte, at, width int, v Value[uint32]) {
	switch {
	case v.IsNotAvailable():
		writeRaw(pdu, at, width, naPattern(width))
	case v.IsErrorIndicator():
		writeRaw(pdu, at, width, errPattern(width))
	default:
		raw, _ := v.Get()
		if max := naPattern(width) - 1; raw > max {
			raw = max
		}
		if raw == errPattern(width) {
			raw--
		}
		writeRaw(pdu, at, width, raw)
	}
}

// decBits extracts width bits of b starting at the given bit position.
func decBits(b byte, at, width uint) uint8 {
	return (b >> at) & (1<<width - 1)
}

// encBits writes width bits into *b at the given position with
// read-modify-write, leaving the other bits of the host byte untouched;
// several signals may share one byte.
func encBits(b *byte, v uint8, at, width uint) {
	mask := byte(1<<width-1) << at
	*b = (*b &^ mask) | (v << at & mask)
}

// decText reads ASCII up to the field delimiter or the end of the buffer.
func decText(pdu []byte) string {
	for i, b := range pdu {
		if b == j1939.FieldDelimiter {
			return string(pdu[:i])
		}
	}
	return string(pdu)
}

// splitText splits a buffer of delimited ASCII fields. A trailing delimiter
// does not produce an empty final field.
func splitText(pdu []byte) []string {
	s := strings.TrimSuffix(string(pdu), string(j1939.FieldDelimiter))
	if s == "" {
		return nil
	}
	return strings.Split(s, string(j1939.FieldDelimiter))
}

// appendText appends the field's bytes followed by the delimiter.
func appendText(pdu []byte, s string) []byte {
	pdu = append(pdu, s...)
	return append(pdu, j1939.FieldDelimiter)
}

// newPDU returns a PDU of the given length filled with the not-available
// byte, the conventional pattern for reserved and unused space.
func newPDU(length int) []byte {
	pdu := make([]byte, length)
	for i := range pdu {
		pdu[i] = j1939.PDUNotAvailable
	}
	return pdu
}
