// Package j1939 models the SAE J1939 application layer as carried over a CAN
// bus: the 29-bit extended frame identifier, the Parameter Group Number (PGN)
// addressing scheme, and the up-to-8-byte Protocol Data Unit (PDU).
//
// Everything in this package is a pure transformation over its inputs. No
// function blocks, allocates shared state, or performs I/O, so all operations
// are safe to call concurrently.
package j1939

const (
	// PGNMaxLength is the maximum number of bytes in an encoded PGN.
	PGNMaxLength = 3
	// PDUMaxLength is the maximum number of bytes in a PDU.
	PDUMaxLength = 8
)

const (
	// PDUError is the error indicator byte.
	PDUError byte = 0xfe
	// PDUNotAvailable is the not-available byte. Unused PDU space is
	// conventionally filled with it.
	PDUNotAvailable byte = 0xff
)

// FieldDelimiter terminates variable length ASCII fields.
const FieldDelimiter byte = '*'

// IDBitMask is the 29-bit identifier mask.
const IDBitMask uint32 = 0x1fffffff

// BroadcastAddress is the global destination address.
const BroadcastAddress uint8 = 0xff
