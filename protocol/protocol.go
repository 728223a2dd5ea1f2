// Package protocol implements the J1939-21 network management PDUs that sit
// next to the application parameter groups: the Request (PGN 59904) and the
// Acknowledgment (PGN 59392).
package protocol

import (
	"fmt"

	"github.com/erh/goj1939/j1939"
)

const (
	requestLength        = 3
	acknowledgmentLength = 8
)

// Control is the acknowledgment control byte.
type Control uint8

const (
	ControlAcknowledged Control = iota
	ControlNegative
	ControlAccessDenied
	ControlCannotRespond
)

func (c Control) String() string {
	switch c {
	case ControlAcknowledged:
		return "ACK"
	case ControlNegative:
		return "NACK"
	case ControlAccessDenied:
		return "AccessDenied"
	case ControlCannotRespond:
		return "CannotRespond"
	default:
		return fmt.Sprintf("Control(%d)", uint8(c))
	}
}

// decodePGN reads a 3-byte little-endian parameter group number.
func decodePGN(b []byte) j1939.PGN {
	return j1939.PGN(uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16)
}

func encodePGN(b []byte, pgn j1939.PGN) {
	raw := pgn.Raw()
	b[0] = byte(raw)
	b[1] = byte(raw >> 8)
	b[2] = byte(raw >> 16)
}

// Request asks another node to transmit the named parameter group.
type Request struct {
	Requested j1939.PGN
}

// DecodeRequest decodes the 3-byte request payload.
func DecodeRequest(pdu []byte) (Request, error) {
	if len(pdu) < requestLength {
		return Request{}, fmt.Errorf("protocol: request needs %d bytes, have %d", requestLength, len(pdu))
	}
	return Request{Requested: decodePGN(pdu)}, nil
}

func (m Request) PGN() j1939.PGN {
	return j1939.PGNRequest
}

func (m Request) MarshalPDU() []byte {
	pdu := make([]byte, requestLength)
	encodePGN(pdu, m.Requested)
	return pdu
}

func (m Request) String() string {
	return fmt.Sprintf("Request %v", m.Requested)
}

// NewRequestFrame builds a complete request frame from source to
// destination. Use j1939.BroadcastAddress to request from all nodes.
func NewRequestFrame(requested j1939.PGN, source, destination uint8) j1939.Frame {
	id := j1939.IDBuilderFromPGN(j1939.PGNRequest).
		Source(source).
		Destination(destination).
		Build()
	return j1939.NewFrameBuilder(id).CopyFrom(Request{Requested: requested}.MarshalPDU()).Build()
}

// Acknowledgment answers a request or command, positively or negatively.
// Bytes 2-3 of the PDU are reserved and transmit as ones.
type Acknowledgment struct {
	Control       Control
	GroupFunction uint8
	Address       uint8
	Acknowledged  j1939.PGN
}

// DecodeAcknowledgment decodes the 8-byte acknowledgment payload.
func DecodeAcknowledgment(pdu []byte) (Acknowledgment, error) {
	if len(pdu) < acknowledgmentLength {
		return Acknowledgment{}, fmt.Errorf("protocol: acknowledgment needs %d bytes, have %d", acknowledgmentLength, len(pdu))
	}
	return Acknowledgment{
		Control:       Control(pdu[0]),
		GroupFunction: pdu[1],
		Address:       pdu[4],
		Acknowledged:  decodePGN(pdu[5:]),
	}, nil
}

func (m Acknowledgment) PGN() j1939.PGN {
	return j1939.PGNAcknowledgment
}

func (m Acknowledgment) MarshalPDU() []byte {
	pdu := []byte{byte(m.Control), m.GroupFunction, 0xff, 0xff, m.Address, 0, 0, 0}
	encodePGN(pdu[5:], m.Acknowledged)
	return pdu
}

func (m Acknowledgment) String() string {
	return fmt.Sprintf("%v %v for %d", m.Control, m.Acknowledged, m.Address)
}

// NewAcknowledgmentFrame builds a complete acknowledgment frame. Per
// J1939-21 the acknowledgment is sent to the global address.
func NewAcknowledgmentFrame(m Acknowledgment, source uint8) j1939.Frame {
	id := j1939.IDBuilderFromPGN(j1939.PGNAcknowledgment).
		Source(source).
		Destination(j1939.BroadcastAddress).
		Build()
	return j1939.NewFrameBuilder(id).CopyFrom(m.MarshalPDU()).Build()
}
