package j1939

import "fmt"

// PGN is a Parameter Group Number. The supported groups form a closed set of
// named constants; any other numeric value is carried through unchanged, so
// the raw-to-PGN-to-raw conversion is the identity for every 24-bit input.
type PGN uint32

// Supported parameter groups.
const (
	PGNTorqueSpeedControl1                   PGN = 0
	PGNTransfer                              PGN = 51712
	PGNAcknowledgment                        PGN = 59392
	PGNRequest                               PGN = 59904
	PGNTransportProtocolDataTransfer         PGN = 60160
	PGNTransportProtocolConnectionManagement PGN = 60416
	PGNAddressClaimed                        PGN = 60928
	PGNProprietaryA                          PGN = 61184
	PGNElectronicBrakeController1            PGN = 61441
	PGNElectronicEngineController2           PGN = 61443
	PGNElectronicEngineController1           PGN = 61444
	PGNTankInformation1                      PGN = 65110
	PGNTachograph                            PGN = 65132
	PGNECUHistory                            PGN = 65201
	PGNFanDrive                              PGN = 65213
	PGNHighResolutionVehicleDistance         PGN = 65217
	PGNDiagnosticMessage1                    PGN = 65226
	PGNDiagnosticMessage2                    PGN = 65227
	PGNCommandedAddress                      PGN = 65240
	PGNAuxiliaryInputOutputStatus            PGN = 65241
	PGNSoftwareIdentification                PGN = 65242
	PGNEngineFluidLevelPressure2             PGN = 65243
	PGNElectronicEngineController3           PGN = 65247
	PGNVehicleDistance                       PGN = 65248
	PGNShutdown                              PGN = 65252
	PGNTimeDate                              PGN = 65254
	PGNFuelConsumption                       PGN = 65257
	PGNComponentIdentification               PGN = 65259
	PGNVehicleIdentification                 PGN = 65260
	PGNEngineTemperature1                    PGN = 65262
	PGNEngineFluidLevelPressure1             PGN = 65263
	PGNPowerTakeoffInformation               PGN = 65264
	PGNFuelEconomy                           PGN = 65266
	PGNVehiclePosition                       PGN = 65267
	PGNAmbientConditions                     PGN = 65269
	PGNInletExhaustConditions1               PGN = 65270
	PGNVehicleElectricalPower1               PGN = 65271
)

// pgnNames is the closed registry of supported groups. Lookups are exact;
// PGNs are discrete group identifiers, not address ranges.
var pgnNames = map[PGN]string{
	PGNTorqueSpeedControl1:                   "TorqueSpeedControl1",
	PGNTransfer:                              "Transfer",
	PGNAcknowledgment:                        "Acknowledgment",
	PGNRequest:                               "Request",
	PGNTransportProtocolDataTransfer:         "TransportProtocolDataTransfer",
	PGNTransportProtocolConnectionManagement: "TransportProtocolConnectionManagement",
	PGNAddressClaimed:                        "AddressClaimed",
	PGNProprietaryA:                          "ProprietaryA",
	PGNElectronicBrakeController1:            "ElectronicBrakeController1",
	PGNElectronicEngineController2:           "ElectronicEngineController2",
	PGNElectronicEngineController1:           "ElectronicEngineController1",
	PGNTankInformation1:                      "TankInformation1",
	PGNTachograph:                            "Tachograph",
	PGNECUHistory:                            "ECUHistory",
	PGNFanDrive:                              "FanDrive",
	PGNHighResolutionVehicleDistance:         "HighResolutionVehicleDistance",
	PGNDiagnosticMessage1:                    "DiagnosticMessage1",
	PGNDiagnosticMessage2:                    "DiagnosticMessage2",
	PGNCommandedAddress:                      "CommandedAddress",
	PGNAuxiliaryInputOutputStatus:            "AuxiliaryInputOutputStatus",
	PGNSoftwareIdentification:                "SoftwareIdentification",
	PGNEngineFluidLevelPressure2:             "EngineFluidLevelPressure2",
	PGNElectronicEngineController3:           "ElectronicEngineController3",
	PGNVehicleDistance:                       "VehicleDistance",
	PGNShutdown:                              "Shutdown",
	PGNTimeDate:                              "TimeDate",
	PGNFuelConsumption:                       "FuelConsumption",
	PGNComponentIdentification:               "ComponentIdentification",
	PGNVehicleIdentification:                 "VehicleIdentification",
	PGNEngineTemperature1:                    "EngineTemperature1",
	PGNEngineFluidLevelPressure1:             "EngineFluidLevelPressure1",
	PGNPowerTakeoffInformation:               "PowerTakeoffInformation",
	PGNFuelEconomy:                           "FuelEconomy",
	PGNVehiclePosition:                       "VehiclePosition",
	PGNAmbientConditions:                     "AmbientConditions",
	PGNInletExhaustConditions1:               "InletExhaustConditions1",
	PGNVehicleElectricalPower1:               "VehicleElectricalPower1",
}

// Known reports whether the PGN is one of the supported named groups.
func (p PGN) Known() bool {
	_, ok := pgnNames[p]
	return ok
}

// Raw returns the PGN as a raw integer.
func (p PGN) Raw() uint32 {
	return uint32(p)
}

func (p PGN) String() string {
	if name, ok := pgnNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Other(%d)", uint32(p))
}
