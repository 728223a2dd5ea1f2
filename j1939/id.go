package j1939

import "fmt"

// PDUFormat is the PDU format byte of an identifier. Values below 0xF0 are
// PDU1 format (peer-to-peer capable, the PDU-specific byte carries a
// destination address); values of 0xF0 and above are PDU2 format
// (broadcast-only, the PDU-specific byte is a group extension).
type PDUFormat uint8

// IsPDU1 reports whether the format byte classifies as PDU1.
func (f PDUFormat) IsPDU1() bool {
	return f < 0xf0
}

// IsPDU2 reports whether the format byte classifies as PDU2.
func (f PDUFormat) IsPDU2() bool {
	return f >= 0xf0
}

func (f PDUFormat) String() string {
	if f.IsPDU1() {
		return fmt.Sprintf("PDU1(%d)", uint8(f))
	}
	return fmt.Sprintf("PDU2(%d)", uint8(f))
}

// ID is a 29-bit J1939 frame identifier. It is an immutable value; all
// projections are derived from the raw integer.
type ID struct {
	raw uint32
}

// NewID constructs a frame ID from a raw integer. The value is masked to
// 29 bits, so construction never fails.
func NewID(raw uint32) ID {
	return ID{raw & IDBitMask}
}

// Raw returns the identifier as a raw integer.
func (id ID) Raw() uint32 {
	return id.raw
}

// Priority returns the frame priority, 0 (highest) through 7 (lowest).
//
// The default priority for informational, proprietary, request and
// acknowledgement frames is 6. The default for control frames is 3.
func (id ID) Priority() uint8 {
	return uint8(id.raw >> 26)
}

// DataPage returns the data page bit.
func (id ID) DataPage() uint8 {
	return uint8((id.raw >> 24) & 0x1)
}

// PDUFormat returns the PDU format byte.
func (id ID) PDUFormat() PDUFormat {
	return PDUFormat((id.raw >> 16) & 0xff)
}

// PGN returns the parameter group number of the frame ID.
func (id ID) PGN() PGN {
	return PGN(id.PGNRaw())
}

// PGNRaw returns the raw parameter group number. Under PDU1 the PDU-specific
// byte is a destination address and is masked out of the PGN; under PDU2 it
// is part of the group number.
func (id ID) PGNRaw() uint32 {
	if id.PDUFormat().IsPDU1() {
		return (id.raw >> 8) & 0xff00
	}
	return (id.raw >> 8) & 0xffff
}

// PDUSpecific returns the PDU-specific byte without interpreting it.
func (id ID) PDUSpecific() uint8 {
	return uint8((id.raw >> 8) & 0xff)
}

// DestinationAddress returns the destination address. It is only present on
// PDU1 frames; on PDU2 frames the same byte is a group extension.
func (id ID) DestinationAddress() (uint8, bool) {
	if id.PDUFormat().IsPDU1() {
		return id.PDUSpecific(), true
	}
	return 0, false
}

// GroupExtension returns the group extension. It is only present on PDU2
// frames.
func (id ID) GroupExtension() (uint8, bool) {
	if id.PDUFormat().IsPDU2() {
		return id.PDUSpecific(), true
	}
	return 0, false
}

// SourceAddress returns the sending device address.
func (id ID) SourceAddress() uint8 {
	return uint8(id.raw & 0xff)
}

// IsBroadcast reports whether the frame addresses all nodes. PDU2 frames are
// always broadcasts; a PDU1 frame is a broadcast when its destination is the
// global address.
func (id ID) IsBroadcast() bool {
	if da, ok := id.DestinationAddress(); ok {
		return da == BroadcastAddress
	}
	return true
}

func (id ID) String() string {
	if da, ok := id.DestinationAddress(); ok {
		return fmt.Sprintf("[%08X] Prio: %d PGN: %d DA: 0x%X", id.raw, id.Priority(), id.PGNRaw(), da)
	}
	return fmt.Sprintf("[%08X] Prio: %d PGN: %d", id.raw, id.Priority(), id.PGNRaw())
}

// IDBuilder composes a frame ID from a PGN and independently optional
// addressing pieces. The builder is a value; each setter returns an updated
// copy so a partially-built ID is never visible outside the method chain.
type IDBuilder struct {
	priority    uint8
	pgn         uint32
	source      uint8
	destination uint8
}

// IDBuilderFromPGN starts a builder for the given PGN with priority 6 and
// zeroed addresses.
func IDBuilderFromPGN(pgn PGN) IDBuilder {
	return IDBuilder{priority: 6, pgn: uint32(pgn)}
}

// Priority sets the frame priority, clamped to the valid 0-7 range.
func (b IDBuilder) Priority(priority uint8) IDBuilder {
	if priority > 7 {
		priority = 7
	}
	b.priority = priority
	return b
}

// Source sets the source address.
func (b IDBuilder) Source(address uint8) IDBuilder {
	b.source = address
	return b
}

// Destination sets the destination address. It only takes effect when the
// built ID classifies as PDU1; writing it into a PDU2 identifier would
// corrupt the group extension.
func (b IDBuilder) Destination(address uint8) IDBuilder {
	b.destination = address
	return b
}

// Build composes the frame ID. Malformed inputs have been clamped by the
// setters, so Build cannot fail.
func (b IDBuilder) Build() ID {
	raw := uint32(b.priority)<<26 | b.pgn<<8 | uint32(b.source)

	if NewID(raw).PDUFormat().IsPDU1() {
		raw |= uint32(b.destination) << 8
	}

	return NewID(raw)
}
