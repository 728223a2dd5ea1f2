package spn

import (
	"fmt"

	"github.com/erh/goj1939/j1939"
)

// Identification messages carry variable length ASCII fields terminated by
// the '*' delimiter. Their PDUs routinely exceed 8 bytes and arrive through
// the transport protocol collaborator already reassembled; the codecs here
// accept a buffer of any length.

// VehicleIdentification (VI, PGN 65260).
type VehicleIdentification struct {
	VehicleIdentificationNumber string
}

// DecodeVehicleIdentification decodes a VI buffer of any length.
func DecodeVehicleIdentification(pdu []byte) VehicleIdentification {
	return VehicleIdentification{
		VehicleIdentificationNumber: decText(pdu),
	}
}

func (m VehicleIdentification) PGN() j1939.PGN {
	return j1939.PGNVehicleIdentification
}

func (m VehicleIdentification) MarshalPDU() []byte {
	return appendText(nil, m.VehicleIdentificationNumber)
}

func (m VehicleIdentification) String() string {
	return fmt.Sprintf("VIN: %s", m.VehicleIdentificationNumber)
}

// ComponentIdentification (CI, PGN 65259). Four delimited fields in fixed
// order; absent trailing fields decode as empty strings.
type ComponentIdentification struct {
	Make         string
	Model        string
	SerialNumber string
	UnitNumber   string
}

// DecodeComponentIdentification decodes a CI buffer of any length.
func DecodeComponentIdentification(pdu []byte) ComponentIdentification {
	var m ComponentIdentification
	fields := splitText(pdu)
	if len(fields) > 0 {
		m.Make = fields[0]
	}
	if len(fields) > 1 {
		m.Model = fields[1]
	}
	if len(fields) > 2 {
		m.SerialNumber = fields[2]
	}
	if len(fields) > 3 {
		m.UnitNumber = fields[3]
	}
	return m
}

func (m ComponentIdentification) PGN() j1939.PGN {
	return j1939.PGNComponentIdentification
}

func (m ComponentIdentification) MarshalPDU() []byte {
	pdu := appendText(nil, m.Make)
	pdu = appendText(pdu, m.Model)
	pdu = appendText(pdu, m.SerialNumber)
	return appendText(pdu, m.UnitNumber)
}

func (m ComponentIdentification) String() string {
	return fmt.Sprintf("Component: %s %s; Serial: %s; Unit: %s", m.Make, m.Model, m.SerialNumber, m.UnitNumber)
}

// SoftwareIdentification (SOFT, PGN 65242). A count byte followed by that
// many delimited identification fields.
type SoftwareIdentification struct {
	Fields []string
}

// DecodeSoftwareIdentification decodes a SOFT buffer. The buffer must carry
// at least the count byte.
func DecodeSoftwareIdentification(pdu []byte) SoftwareIdentification {
	fields := splitText(pdu[1:])
	if n := int(pdu[0]); n < len(fields) {
		fields = fields[:n]
	}
	return SoftwareIdentification{Fields: fields}
}

func (m SoftwareIdentification) PGN() j1939.PGN {
	return j1939.PGNSoftwareIdentification
}

func (m SoftwareIdentification) MarshalPDU() []byte {
	pdu := []byte{byte(len(m.Fields))}
	for _, f := range m.Fields {
		pdu = appendText(pdu, f)
	}
	return pdu
}

func (m SoftwareIdentification) String() string {
	return fmt.Sprintf("Software: %v", m.Fields)
}
