package j1939

import "fmt"

// Frame is a data frame: a 29-bit identifier plus a PDU of at most
// PDUMaxLength bytes with an explicit length.
type Frame struct {
	id     ID
	pdu    [PDUMaxLength]byte
	length int
}

// NewFrame constructs a full-length frame from an ID and a complete PDU.
func NewFrame(id ID, pdu [PDUMaxLength]byte) Frame {
	return Frame{id: id, pdu: pdu, length: PDUMaxLength}
}

// NewFrameFromRaw constructs a full-length frame from a raw ID and a
// complete PDU.
func NewFrameFromRaw(raw uint32, pdu [PDUMaxLength]byte) Frame {
	return NewFrame(NewID(raw), pdu)
}

// ID returns the frame identifier.
func (f Frame) ID() ID {
	return f.id
}

// PDU returns the used portion of the protocol data unit.
func (f Frame) PDU() []byte {
	return f.pdu[:f.length]
}

// Len returns the PDU length.
func (f Frame) Len() int {
	return f.length
}

// IsEmpty reports whether the PDU carries no data.
func (f Frame) IsEmpty() bool {
	return f.length == 0
}

func (f Frame) String() string {
	return fmt.Sprintf("%s    % X", f.id, f.PDU())
}

// FrameBuilder accumulates a frame. The PDU starts filled with the
// not-available byte so unused tail bytes carry the conventional pattern.
// Always start with NewFrameBuilder; a zero FrameBuilder lacks the fill.
type FrameBuilder struct {
	id     ID
	pdu    [PDUMaxLength]byte
	length int
}

// NewFrameBuilder starts a builder for the given ID.
func NewFrameBuilder(id ID) FrameBuilder {
	b := FrameBuilder{id: id}
	for i := range b.pdu {
		b.pdu[i] = PDUNotAvailable
	}
	return b
}

// ID sets the frame ID.
func (b FrameBuilder) ID(id ID) FrameBuilder {
	b.id = id
	return b
}

// CopyFrom copies PDU data from the source slice. Anything beyond
// PDUMaxLength bytes is dropped.
func (b FrameBuilder) CopyFrom(src []byte) FrameBuilder {
	n := len(src)
	if n > PDUMaxLength {
		n = PDUMaxLength
	}
	copy(b.pdu[:n], src[:n])
	b.length = n
	return b
}

// SetLen sets the PDU length, clamped to PDUMaxLength.
func (b FrameBuilder) SetLen(n int) FrameBuilder {
	if n > PDUMaxLength {
		n = PDUMaxLength
	}
	if n < 0 {
		n = 0
	}
	b.length = n
	return b
}

// Build constructs the frame.
func (b FrameBuilder) Build() Frame {
	return Frame{id: b.id, pdu: b.pdu, length: b.length}
}
