// Package dispatch routes a PDU to the codec for its parameter group.
package dispatch

import (
	"fmt"

	"github.com/erh/goj1939/diagnostic"
	"github.com/erh/goj1939/j1939"
	"github.com/erh/goj1939/protocol"
	"github.com/erh/goj1939/spn"
)

// Message is any decoded parameter group. MarshalPDU reproduces the bytes
// the message was decoded from.
type Message interface {
	PGN() j1939.PGN
	MarshalPDU() []byte
}

type decoder func(pdu []byte) (Message, error)

// fixed wraps a full-PDU decoder that assumes all eight data bytes are
// present; the length check happens here so the codec itself never panics
// through Decode.
func fixed[M Message](dec func(pdu []byte) M) decoder {
	return func(pdu []byte) (Message, error) {
		if len(pdu) < j1939.PDUMaxLength {
			return nil, fmt.Errorf("dispatch: need %d bytes, have %d", j1939.PDUMaxLength, len(pdu))
		}
		return dec(pdu), nil
	}
}

// variable wraps a decoder that does its own length validation.
func variable[M Message](dec func(pdu []byte) (M, error)) decoder {
	return func(pdu []byte) (Message, error) {
		return dec(pdu)
	}
}

// text wraps a delimited-text decoder, which accepts any length.
func text[M Message](dec func(pdu []byte) M) decoder {
	return func(pdu []byte) (Message, error) {
		return dec(pdu), nil
	}
}

var decoders = map[j1939.PGN]decoder{
	j1939.PGNTorqueSpeedControl1:           fixed(spn.DecodeTorqueSpeedControl1),
	j1939.PGNRequest:                       variable(protocol.DecodeRequest),
	j1939.PGNAcknowledgment:                variable(protocol.DecodeAcknowledgment),
	j1939.PGNElectronicBrakeController1:    fixed(spn.DecodeElectronicBrakeController1),
	j1939.PGNElectronicEngineController2:   fixed(spn.DecodeElectronicEngineController2),
	j1939.PGNElectronicEngineController1:   fixed(spn.DecodeElectronicEngineController1),
	j1939.PGNTankInformation1:              fixed(spn.DecodeTankInformation1),
	j1939.PGNTachograph:                    fixed(spn.DecodeTachograph),
	j1939.PGNECUHistory:                    fixed(spn.DecodeECUHistory),
	j1939.PGNFanDrive:                      fixed(spn.DecodeFanDrive),
	j1939.PGNHighResolutionVehicleDistance: fixed(spn.DecodeHighResolutionVehicleDistance),
	j1939.PGNDiagnosticMessage1:            variable(diagnostic.DecodeMessage1),
	j1939.PGNDiagnosticMessage2:            variable(diagnostic.DecodeMessage2),
	j1939.PGNAuxiliaryInputOutputStatus:    fixed(spn.DecodeAuxiliaryInputOutputStatus),
	j1939.PGNSoftwareIdentification:        variable(decodeSoftwareIdentification),
	j1939.PGNEngineFluidLevelPressure2:     fixed(spn.DecodeEngineFluidLevelPressure2),
	j1939.PGNElectronicEngineController3:   fixed(spn.DecodeElectronicEngineController3),
	j1939.PGNVehicleDistance:               fixed(spn.DecodeVehicleDistance),
	j1939.PGNShutdown:                      fixed(spn.DecodeShutdown),
	j1939.PGNTimeDate:                      fixed(spn.DecodeTimeDate),
	j1939.PGNFuelConsumption:               fixed(spn.DecodeFuelConsumption),
	j1939.PGNComponentIdentification:       text(spn.DecodeComponentIdentification),
	j1939.PGNVehicleIdentification:         text(spn.DecodeVehicleIdentification),
	j1939.PGNEngineTemperature1:            fixed(spn.DecodeEngineTemperature1),
	j1939.PGNEngineFluidLevelPressure1:     fixed(spn.DecodeEngineFluidLevelPressure1),
	j1939.PGNPowerTakeoffInformation:       fixed(spn.DecodePowerTakeoffInformation),
	j1939.PGNFuelEconomy:                   fixed(spn.DecodeFuelEconomy),
	j1939.PGNVehiclePosition:               fixed(spn.DecodeVehiclePosition),
	j1939.PGNAmbientConditions:             fixed(spn.DecodeAmbientConditions),
	j1939.PGNInletExhaustConditions1:       fixed(spn.DecodeInletExhaustConditions1),
	j1939.PGNVehicleElectricalPower1:       fixed(spn.DecodeVehicleElectricalPower1),
}

func decodeSoftwareIdentification(pdu []byte) (spn.SoftwareIdentification, error) {
	if len(pdu) < 1 {
		return spn.SoftwareIdentification{}, fmt.Errorf("dispatch: software identification needs a count byte")
	}
	return spn.DecodeSoftwareIdentification(pdu), nil
}

// Decode looks up and runs the codec for pgn. The second return is false
// when no codec is registered for the group, which covers every PGN value
// outside the table. A registered codec handed a wrong-length PDU returns
// an error rather than panicking.
func Decode(pgn j1939.PGN, pdu []byte) (Message, bool, error) {
	dec, ok := decoders[pgn]
	if !ok {
		return nil, false, nil
	}
	msg, err := dec(pdu)
	if err != nil {
		return nil, true, err
	}
	return msg, true, nil
}

// DecodeFrame decodes the frame's payload using its identifier's PGN.
func DecodeFrame(frame j1939.Frame) (Message, bool, error) {
	return Decode(frame.ID().PGN(), frame.PDU())
}
