package spn

import (
	"fmt"

	"github.com/erh/goj1939/j1939"
)

// TorqueSpeedControl1 commands engine speed and torque limits (TSC1,
// PGN 0).
type TorqueSpeedControl1 struct {
	OverrideControlMode    uint8          // 2-bit mode code
	SpeedControlConditions uint8          // 2-bit condition code
	ControlModePriority    uint8          // 2-bit priority code
	RequestedSpeed         Value[float64] // rpm
	RequestedTorque        Value[float64] // %
}

// DecodeTorqueSpeedControl1 decodes an 8-byte TSC1 PDU.
func DecodeTorqueSpeedControl1(pdu []byte) TorqueSpeedControl1 {
	return TorqueSpeedControl1{
		OverrideControlMode:    decBits(pdu[0], 0, 2),
		SpeedControlConditions: decBits(pdu[0], 2, 2),
		ControlModePriority:    decBits(pdu[0], 4, 2),
		RequestedSpeed:         slotRotVelocity.dec(pdu, 1),
		RequestedTorque:        slotPercentTorque.dec(pdu, 3),
	}
}

func (m TorqueSpeedControl1) PGN() j1939.PGN {
	return j1939.PGNTorqueSpeedControl1
}

// MarshalPDU encodes the message into an 8-byte PDU.
func (m TorqueSpeedControl1) MarshalPDU() []byte {
	pdu := newPDU(j1939.PDUMaxLength)
	encBits(&pdu[0], m.OverrideControlMode, 0, 2)
	encBits(&pdu[0], m.SpeedControlConditions, 2, 2)
	encBits(&pdu[0], m.ControlModePriority, 4, 2)
	slotRotVelocity.enc(pdu, 1, m.RequestedSpeed)
	slotPercentTorque.enc(pdu, 3, m.RequestedTorque)
	return pdu
}

func (m TorqueSpeedControl1) String() string {
	return fmt.Sprintf("Control mode: %d; Requested speed: %s rpm; Requested torque: %s%%",
		m.OverrideControlMode, m.RequestedSpeed, m.RequestedTorque)
}

// ElectronicEngineController1 reports engine speed and torque status (EEC1,
// PGN 61444).
type ElectronicEngineController1 struct {
	EngineTorqueMode          uint8 // 4-bit mode code
	DriverDemandPercentTorque Value[float64]
	ActualEnginePercentTorque Value[float64]
	EngineSpeed               Value[float64] // rpm
	SourceAddress             Value[uint32]  // controlling device
	StarterMode               uint8          // 4-bit mode code
	EngineDemandPercentTorque Value[float64]
}

// DecodeElectronicEngineController1 decodes an 8-byte EEC1 PDU.
func DecodeElectronicEngineController1(pdu []byte) ElectronicEngineController1 {
	return ElectronicEngineController1{
		EngineTorqueMode:          decBits(pdu[0], 0, 4),
		DriverDemandPercentTorque: slotPercentTorque.dec(pdu, 1),
		ActualEnginePercentTorque: slotPercentTorque.dec(pdu, 2),
		EngineSpeed:               slotRotVelocity.dec(pdu, 3),
		SourceAddress:             decRaw(pdu, 5, 1),
		StarterMode:               decBits(pdu[6], 0, 4),
		EngineDemandPercentTorque: slotPercentTorque.dec(pdu, 7),
	}
}

func (m ElectronicEngineController1) PGN() j1939.PGN {
	return j1939.PGNElectronicEngineController1
}

func (m ElectronicEngineController1) MarshalPDU() []byte {
	pdu := newPDU(j1939.PDUMaxLength)
	encBits(&pdu[0], m.EngineTorqueMode, 0, 4)
	slotPercentTorque.enc(pdu, 1, m.DriverDemandPercentTorque)
	slotPercentTorque.enc(pdu, 2, m.ActualEnginePercentTorque)
	slotRotVelocity.enc(pdu, 3, m.EngineSpeed)
	encRaw(pdu, 5, 1, m.SourceAddress)
	encBits(&pdu[6], m.StarterMode, 0, 4)
	slotPercentTorque.enc(pdu, 7, m.EngineDemandPercentTorque)
	return pdu
}

func (m ElectronicEngineController1) String() string {
	return fmt.Sprintf("Engine speed: %s rpm; Driver demand: %s%%; Actual torque: %s%%; Demand torque: %s%%",
		m.EngineSpeed, m.DriverDemandPercentTorque, m.ActualEnginePercentTorque, m.EngineDemandPercentTorque)
}

// ElectronicEngineController2 reports accelerator pedal and engine load
// status (EEC2, PGN 61443).
type ElectronicEngineController2 struct {
	PedalLowIdleSwitch        uint8 // 2-bit switch state
	PedalKickdownSwitch       uint8
	RoadSpeedLimitStatus      uint8
	Pedal2LowIdleSwitch       uint8
	PedalPosition             Value[float64] // %
	PercentLoadAtCurrentSpeed Value[float64] // %
	RemotePedalPosition       Value[float64] // %
	Pedal2Position            Value[float64] // %
	VehicleAccelRateLimit     uint8          // 2-bit switch state
	MaxAvailablePercentTorque Value[float64] // %
}

// DecodeElectronicEngineController2 decodes an 8-byte EEC2 PDU.
func DecodeElectronicEngineController2(pdu []byte) ElectronicEngineController2 {
	return ElectronicEngineController2{
		PedalLowIdleSwitch:        decBits(pdu[0], 0, 2),
		PedalKickdownSwitch:       decBits(pdu[0], 2, 2),
		RoadSpeedLimitStatus:      decBits(pdu[0], 4, 2),
		Pedal2LowIdleSwitch:       decBits(pdu[0], 6, 2),
		PedalPosition:             slotPercent.dec(pdu, 1),
		PercentLoadAtCurrentSpeed: slotCount8.dec(pdu, 2),
		RemotePedalPosition:       slotPercent.dec(pdu, 3),
		Pedal2Position:            slotPercent.dec(pdu, 4),
		VehicleAccelRateLimit:     decBits(pdu[5], 0, 2),
		MaxAvailablePercentTorque: slotPercent.dec(pdu, 6),
	}
}

func (m ElectronicEngineController2) PGN() j1939.PGN {
	return j1939.PGNElectronicEngineController2
}

func (m ElectronicEngineController2) MarshalPDU() []byte {
	pdu := newPDU(j1939.PDUMaxLength)
	encBits(&pdu[0], m.PedalLowIdleSwitch, 0, 2)
	encBits(&pdu[0], m.PedalKickdownSwitch, 2, 2)
	encBits(&pdu[0], m.RoadSpeedLimitStatus, 4, 2)
	encBits(&pdu[0], m.Pedal2LowIdleSwitch, 6, 2)
	slotPercent.enc(pdu, 1, m.PedalPosition)
	slotCount8.enc(pdu, 2, m.PercentLoadAtCurrentSpeed)
	slotPercent.enc(pdu, 3, m.RemotePedalPosition)
	slotPercent.enc(pdu, 4, m.Pedal2Position)
	encBits(&pdu[5], m.VehicleAccelRateLimit, 0, 2)
	slotPercent.enc(pdu, 6, m.MaxAvailablePercentTorque)
	return pdu
}

func (m ElectronicEngineController2) String() string {
	return fmt.Sprintf("Pedal: %s%%; Load: %s%%; Max torque: %s%%",
		m.PedalPosition, m.PercentLoadAtCurrentSpeed, m.MaxAvailablePercentTorque)
}

// ElectronicEngineController3 reports desired operating speed and friction
// torque (EEC3, PGN 65247).
type ElectronicEngineController3 struct {
	NominalFrictionPercentTorque Value[float64] // %
	DesiredOperatingSpeed        Value[float64] // rpm
	SpeedAsymmetryAdjustment     Value[uint32]
	ParasiticLossesPercentTorque Value[float64] // %
}

// DecodeElectronicEngineController3 decodes an 8-byte EEC3 PDU.
func DecodeElectronicEngineController3(pdu []byte) ElectronicEngineController3 {
	return ElectronicEngineController3{
		NominalFrictionPercentTorque: slotPercentTorque.dec(pdu, 0),
		DesiredOperatingSpeed:        slotRotVelocity.dec(pdu, 1),
		SpeedAsymmetryAdjustment:     decRaw(pdu, 3, 1),
		ParasiticLossesPercentTorque: slotPercentTorque.dec(pdu, 4),
	}
}

func (m ElectronicEngineController3) PGN() j1939.PGN {
	return j1939.PGNElectronicEngineController3
}

func (m ElectronicEngineController3) MarshalPDU() []byte {
	pdu := newPDU(j1939.PDUMaxLength)
	slotPercentTorque.enc(pdu, 0, m.NominalFrictionPercentTorque)
	slotRotVelocity.enc(pdu, 1, m.DesiredOperatingSpeed)
	encRaw(pdu, 3, 1, m.SpeedAsymmetryAdjustment)
	slotPercentTorque.enc(pdu, 4, m.ParasiticLossesPercentTorque)
	return pdu
}

func (m ElectronicEngineController3) String() string {
	return fmt.Sprintf("Desired speed: %s rpm; Friction torque: %s%%",
		m.DesiredOperatingSpeed, m.NominalFrictionPercentTorque)
}

// EngineTemperature1 (ET1, PGN 65262).
type EngineTemperature1 struct {
	CoolantTemperature           Value[float64] // deg C
	FuelTemperature              Value[float64] // deg C
	OilTemperature               Value[float64] // deg C
	TurbochargerOilTemperature   Value[float64] // deg C
	IntercoolerTemperature       Value[float64] // deg C
	IntercoolerThermostatOpening Value[float64] // %
}

// DecodeEngineTemperature1 decodes an 8-byte ET1 PDU.
func DecodeEngineTemperature1(pdu []byte) EngineTemperature1 {
	return EngineTemperature1{
		CoolantTemperature:           slotTemp8.dec(pdu, 0),
		FuelTemperature:              slotTemp8.dec(pdu, 1),
		OilTemperature:               slotTemp16.dec(pdu, 2),
		TurbochargerOilTemperature:   slotTemp16.dec(pdu, 4),
		IntercoolerTemperature:       slotTemp8.dec(pdu, 6),
		IntercoolerThermostatOpening: slotPercent.dec(pdu, 7),
	}
}

func (m EngineTemperature1) PGN() j1939.PGN {
	return j1939.PGNEngineTemperature1
}

func (m EngineTemperature1) MarshalPDU() []byte {
	pdu := newPDU(j1939.PDUMaxLength)
	slotTemp8.enc(pdu, 0, m.CoolantTemperature)
	slotTemp8.enc(pdu, 1, m.FuelTemperature)
	slotTemp16.enc(pdu, 2, m.OilTemperature)
	slotTemp16.enc(pdu, 4, m.TurbochargerOilTemperature)
	slotTemp8.enc(pdu, 6, m.IntercoolerTemperature)
	slotPercent.enc(pdu, 7, m.IntercoolerThermostatOpening)
	return pdu
}

func (m EngineTemperature1) String() string {
	return fmt.Sprintf("Coolant: %s C; Fuel: %s C; Oil: %s C",
		m.CoolantTemperature, m.FuelTemperature, m.OilTemperature)
}

// EngineFluidLevelPressure1 (EFL/P1, PGN 65263).
type EngineFluidLevelPressure1 struct {
	FuelDeliveryPressure Value[float64] // kPa
	BlowByPressure       Value[float64] // kPa, extended crankcase blow-by
	OilLevel             Value[float64] // %
	OilPressure          Value[float64] // kPa
	CrankcasePressure    Value[float64] // kPa
	CoolantPressure      Value[float64] // kPa
	CoolantLevel         Value[float64] // %
}

// DecodeEngineFluidLevelPressure1 decodes an 8-byte EFL/P1 PDU.
func DecodeEngineFluidLevelPressure1(pdu []byte) EngineFluidLevelPressure1 {
	return EngineFluidLevelPressure1{
		FuelDeliveryPressure: slotPressure4.dec(pdu, 0),
		BlowByPressure:       slotPressureFine.dec(pdu, 1),
		OilLevel:             slotPercent.dec(pdu, 2),
		OilPressure:          slotPressure4.dec(pdu, 3),
		CrankcasePressure:    slotPressureWide.dec(pdu, 4),
		CoolantPressure:      slotPressure2.dec(pdu, 6),
		CoolantLevel:         slotPercent.dec(pdu, 7),
	}
}

func (m EngineFluidLevelPressure1) PGN() j1939.PGN {
	return j1939.PGNEngineFluidLevelPressure1
}

func (m EngineFluidLevelPressure1) MarshalPDU() []byte {
	pdu := newPDU(j1939.PDUMaxLength)
	slotPressure4.enc(pdu, 0, m.FuelDeliveryPressure)
	slotPressureFine.enc(pdu, 1, m.BlowByPressure)
	slotPercent.enc(pdu, 2, m.OilLevel)
	slotPressure4.enc(pdu, 3, m.OilPressure)
	slotPressureWide.enc(pdu, 4, m.CrankcasePressure)
	slotPressure2.enc(pdu, 6, m.CoolantPressure)
	slotPercent.enc(pdu, 7, m.CoolantLevel)
	return pdu
}

func (m EngineFluidLevelPressure1) String() string {
	return fmt.Sprintf("Oil pressure: %s kPa; Oil level: %s%%; Coolant level: %s%%",
		m.OilPressure, m.OilLevel, m.CoolantLevel)
}

// EngineFluidLevelPressure2 carries the injector rail pressures (EFL/P2,
// PGN 65243).
type EngineFluidLevelPressure2 struct {
	InjectorControlPressure       Value[float64] // MPa
	InjectorMeteringRailPressure  Value[float64] // MPa
	InjectorTimingRailPressure    Value[float64] // MPa
	InjectorMeteringRail2Pressure Value[float64] // MPa
}

// DecodeEngineFluidLevelPressure2 decodes an 8-byte EFL/P2 PDU.
func DecodeEngineFluidLevelPressure2(pdu []byte) EngineFluidLevelPressure2 {
	return EngineFluidLevelPressure2{
		InjectorControlPressure:       slotRailPressure.dec(pdu, 0),
		InjectorMeteringRailPressure:  slotRailPressure.dec(pdu, 2),
		InjectorTimingRailPressure:    slotRailPressure.dec(pdu, 4),
		InjectorMeteringRail2Pressure: slotRailPressure.dec(pdu, 6),
	}
}

func (m EngineFluidLevelPressure2) PGN() j1939.PGN {
	return j1939.PGNEngineFluidLevelPressure2
}

func (m EngineFluidLevelPressure2) MarshalPDU() []byte {
	pdu := newPDU(j1939.PDUMaxLength)
	slotRailPressure.enc(pdu, 0, m.InjectorControlPressure)
	slotRailPressure.enc(pdu, 2, m.InjectorMeteringRailPressure)
	slotRailPressure.enc(pdu, 4, m.InjectorTimingRailPressure)
	slotRailPressure.enc(pdu, 6, m.InjectorMeteringRail2Pressure)
	return pdu
}

func (m EngineFluidLevelPressure2) String() string {
	return fmt.Sprintf("Metering rail: %s MPa; Timing rail: %s MPa",
		m.InjectorMeteringRailPressure, m.InjectorTimingRailPressure)
}

// InletExhaustConditions1 (IC1, PGN 65270).
type InletExhaustConditions1 struct {
	ParticulateTrapInletPressure      Value[float64] // kPa
	BoostPressure                     Value[float64] // kPa
	IntakeManifoldTemperature         Value[float64] // deg C
	AirInletPressure                  Value[float64] // kPa
	AirFilterDifferentialPressure     Value[float64] // kPa
	ExhaustGasTemperature             Value[float64] // deg C
	CoolantFilterDifferentialPressure Value[float64] // kPa
}

// DecodeInletExhaustConditions1 decodes an 8-byte IC1 PDU.
func DecodeInletExhaustConditions1(pdu []byte) InletExhaustConditions1 {
	return InletExhaustConditions1{
		ParticulateTrapInletPressure:      slotPressure05.dec(pdu, 0),
		BoostPressure:                     slotPressure2.dec(pdu, 1),
		IntakeManifoldTemperature:         slotTemp8.dec(pdu, 2),
		AirInletPressure:                  slotPressure2.dec(pdu, 3),
		AirFilterDifferentialPressure:     slotPressureFine.dec(pdu, 4),
		ExhaustGasTemperature:             slotTemp16.dec(pdu, 5),
		CoolantFilterDifferentialPressure: slotPressure05.dec(pdu, 7),
	}
}

func (m InletExhaustConditions1) PGN() j1939.PGN {
	return j1939.PGNInletExhaustConditions1
}

func (m InletExhaustConditions1) MarshalPDU() []byte {
	pdu := newPDU(j1939.PDUMaxLength)
	slotPressure05.enc(pdu, 0, m.ParticulateTrapInletPressure)
	slotPressure2.enc(pdu, 1, m.BoostPressure)
	slotTemp8.enc(pdu, 2, m.IntakeManifoldTemperature)
	slotPressure2.enc(pdu, 3, m.AirInletPressure)
	slotPressureFine.enc(pdu, 4, m.AirFilterDifferentialPressure)
	slotTemp16.enc(pdu, 5, m.ExhaustGasTemperature)
	slotPressure05.enc(pdu, 7, m.CoolantFilterDifferentialPressure)
	return pdu
}

func (m InletExhaustConditions1) String() string {
	return fmt.Sprintf("Boost: %s kPa; Intake manifold: %s C; Exhaust gas: %s C",
		m.BoostPressure, m.IntakeManifoldTemperature, m.ExhaustGasTemperature)
}

// Shutdown reports the idle shutdown and engine protection systems
// (PGN 65252).
type Shutdown struct {
	IdleShutdownActive            uint8 // 2-bit state
	IdleShutdownDriverAlert       uint8
	IdleShutdownTimerOverride     uint8
	IdleShutdownTimerState        uint8
	IdleShutdownTimerFunction     uint8
	ACHighPressureFanSwitch       uint8
	RefrigerantHighPressureSwitch uint8
	RefrigerantLowPressureSwitch  uint8
	WaitToStartLamp               uint8
	ProtectionTimerState          uint8
	ProtectionTimerOverride       uint8
	ProtectionApproachingShutdown uint8
	ProtectionHasShutdownEngine   uint8
}

// DecodeShutdown decodes an 8-byte Shutdown PDU.
func DecodeShutdown(pdu []byte) Shutdown {
	return Shutdown{
		IdleShutdownActive:            decBits(pdu[0], 0, 2),
		IdleShutdownDriverAlert:       decBits(pdu[0], 2, 2),
		IdleShutdownTimerOverride:     decBits(pdu[0], 4, 2),
		IdleShutdownTimerState:        decBits(pdu[0], 6, 2),
		IdleShutdownTimerFunction:     decBits(pdu[1], 6, 2),
		ACHighPressureFanSwitch:       decBits(pdu[2], 0, 2),
		RefrigerantHighPressureSwitch: decBits(pdu[2], 2, 2),
		RefrigerantLowPressureSwitch:  decBits(pdu[2], 4, 2),
		WaitToStartLamp:               decBits(pdu[3], 0, 2),
		ProtectionTimerState:          decBits(pdu[4], 0, 2),
		ProtectionTimerOverride:       decBits(pdu[4], 2, 2),
		ProtectionApproachingShutdown: decBits(pdu[4], 4, 2),
		ProtectionHasShutdownEngine:   decBits(pdu[4], 6, 2),
	}
}

func (m Shutdown) PGN() j1939.PGN {
	return j1939.PGNShutdown
}

func (m Shutdown) MarshalPDU() []byte {
	pdu := newPDU(j1939.PDUMaxLength)
	encBits(&pdu[0], m.IdleShutdownActive, 0, 2)
	encBits(&pdu[0], m.IdleShutdownDriverAlert, 2, 2)
	encBits(&pdu[0], m.IdleShutdownTimerOverride, 4, 2)
	encBits(&pdu[0], m.IdleShutdownTimerState, 6, 2)
	encBits(&pdu[1], m.IdleShutdownTimerFunction, 6, 2)
	encBits(&pdu[2], m.ACHighPressureFanSwitch, 0, 2)
	encBits(&pdu[2], m.RefrigerantHighPressureSwitch, 2, 2)
	encBits(&pdu[2], m.RefrigerantLowPressureSwitch, 4, 2)
	encBits(&pdu[3], m.WaitToStartLamp, 0, 2)
	encBits(&pdu[4], m.ProtectionTimerState, 0, 2)
	encBits(&pdu[4], m.ProtectionTimerOverride, 2, 2)
	encBits(&pdu[4], m.ProtectionApproachingShutdown, 4, 2)
	encBits(&pdu[4], m.ProtectionHasShutdownEngine, 6, 2)
	return pdu
}

func (m Shutdown) String() string {
	return fmt.Sprintf("Idle shutdown active: %d; Protection shutdown: %d; Wait to start lamp: %d",
		m.IdleShutdownActive, m.ProtectionHasShutdownEngine, m.WaitToStartLamp)
}

// FanDrive (FD, PGN 65213).
type FanDrive struct {
	EstimatedPercentSpeed Value[float64] // %
	DriveState            uint8          // 4-bit state code
	Speed                 Value[float64] // rpm
}

// DecodeFanDrive decodes an 8-byte FD PDU.
func DecodeFanDrive(pdu []byte) FanDrive {
	return FanDrive{
		EstimatedPercentSpeed: slotPercent.dec(pdu, 0),
		DriveState:            decBits(pdu[1], 0, 4),
		Speed:                 slotRotVelocity.dec(pdu, 2),
	}
}

func (m FanDrive) PGN() j1939.PGN {
	return j1939.PGNFanDrive
}

func (m FanDrive) MarshalPDU() []byte {
	pdu := newPDU(j1939.PDUMaxLength)
	slotPercent.enc(pdu, 0, m.EstimatedPercentSpeed)
	encBits(&pdu[1], m.DriveState, 0, 4)
	slotRotVelocity.enc(pdu, 2, m.Speed)
	return pdu
}

func (m FanDrive) String() string {
	return fmt.Sprintf("Fan speed: %s rpm (%s%%); State: %d", m.Speed, m.EstimatedPercentSpeed, m.DriveState)
}
