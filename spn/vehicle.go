package spn

import (
	"fmt"

	"github.com/erh/goj1939/j1939"
)

// ElectronicBrakeController1 (EBC1, PGN 61441).
type ElectronicBrakeController1 struct {
	ASREngineControlActive  uint8 // 2-bit state
	ASRBrakeControlActive   uint8
	ABSActive               uint8
	EBSBrakeSwitch          uint8
	BrakePedalPosition      Value[float64] // %
	ABSOffRoadSwitch        uint8
	ASROffRoadSwitch        uint8
	ASRHillHolderSwitch     uint8
	TractionControlOverride uint8
	RetarderSelection       Value[float64] // %
	ABSFullyOperational     uint8
	EBSRedWarningSignal     uint8
	ABSEBSAmberWarning      uint8
	SourceAddress           Value[uint32] // controlling device
}

// DecodeElectronicBrakeController1 decodes an 8-byte EBC1 PDU.
func DecodeElectronicBrakeController1(pdu []byte) ElectronicBrakeController1 {
	return ElectronicBrakeController1{
		ASREngineControlActive:  decBits(pdu[0], 0, 2),
		ASRBrakeControlActive:   decBits(pdu[0], 2, 2),
		ABSActive:               decBits(pdu[0], 4, 2),
		EBSBrakeSwitch:          decBits(pdu[0], 6, 2),
		BrakePedalPosition:      slotPercent.dec(pdu, 1),
		ABSOffRoadSwitch:        decBits(pdu[2], 0, 2),
		ASROffRoadSwitch:        decBits(pdu[2], 2, 2),
		ASRHillHolderSwitch:     decBits(pdu[2], 4, 2),
		TractionControlOverride: decBits(pdu[2], 6, 2),
		RetarderSelection:       slotPercent.dec(pdu, 4),
		ABSFullyOperational:     decBits(pdu[5], 0, 2),
		EBSRedWarningSignal:     decBits(pdu[5], 2, 2),
		ABSEBSAmberWarning:      decBits(pdu[5], 4, 2),
		SourceAddress:           decRaw(pdu, 6, 1),
	}
}

func (m ElectronicBrakeController1) PGN() j1939.PGN {
	return j1939.PGNElectronicBrakeController1
}

func (m ElectronicBrakeController1) MarshalPDU() []byte {
	pdu := newPDU(j1939.PDUMaxLength)
	encBits(&pdu[0], m.ASREngineControlActive, 0, 2)
	encBits(&pdu[0], m.ASRBrakeControlActive, 2, 2)
	encBits(&pdu[0], m.ABSActive, 4, 2)
	encBits(&pdu[0], m.EBSBrakeSwitch, 6, 2)
	slotPercent.enc(pdu, 1, m.BrakePedalPosition)
	encBits(&pdu[2], m.ABSOffRoadSwitch, 0, 2)
	encBits(&pdu[2], m.ASROffRoadSwitch, 2, 2)
	encBits(&pdu[2], m.ASRHillHolderSwitch, 4, 2)
	encBits(&pdu[2], m.TractionControlOverride, 6, 2)
	slotPercent.enc(pdu, 4, m.RetarderSelection)
	encBits(&pdu[5], m.ABSFullyOperational, 0, 2)
	encBits(&pdu[5], m.EBSRedWarningSignal, 2, 2)
	encBits(&pdu[5], m.ABSEBSAmberWarning, 4, 2)
	encRaw(pdu, 6, 1, m.SourceAddress)
	return pdu
}

func (m ElectronicBrakeController1) String() string {
	return fmt.Sprintf("Brake pedal: %s%%; ABS active: %d; EBS brake switch: %d",
		m.BrakePedalPosition, m.ABSActive, m.EBSBrakeSwitch)
}

// AmbientConditions (AMB, PGN 65269).
type AmbientConditions struct {
	BarometricPressure     Value[float64] // kPa
	CabInteriorTemperature Value[float64] // deg C
	AmbientAirTemperature  Value[float64] // deg C
	AirInletTemperature    Value[float64] // deg C
	RoadSurfaceTemperature Value[float64] // deg C
}

// DecodeAmbientConditions decodes an 8-byte AMB PDU.
func DecodeAmbientConditions(pdu []byte) AmbientConditions {
	return AmbientConditions{
		BarometricPressure:     slotPressure05.dec(pdu, 0),
		CabInteriorTemperature: slotTemp16.dec(pdu, 1),
		AmbientAirTemperature:  slotTemp16.dec(pdu, 3),
		AirInletTemperature:    slotTemp8.dec(pdu, 5),
		RoadSurfaceTemperature: slotTemp16.dec(pdu, 6),
	}
}

func (m AmbientConditions) PGN() j1939.PGN {
	return j1939.PGNAmbientConditions
}

func (m AmbientConditions) MarshalPDU() []byte {
	pdu := newPDU(j1939.PDUMaxLength)
	slotPressure05.enc(pdu, 0, m.BarometricPressure)
	slotTemp16.enc(pdu, 1, m.CabInteriorTemperature)
	slotTemp16.enc(pdu, 3, m.AmbientAirTemperature)
	slotTemp8.enc(pdu, 5, m.AirInletTemperature)
	slotTemp16.enc(pdu, 6, m.RoadSurfaceTemperature)
	return pdu
}

func (m AmbientConditions) String() string {
	return fmt.Sprintf("Ambient air: %s C; Barometric: %s kPa", m.AmbientAirTemperature, m.BarometricPressure)
}

// VehiclePosition (VP, PGN 65267).
type VehiclePosition struct {
	Latitude  Value[float64] // deg
	Longitude Value[float64] // deg
}

// DecodeVehiclePosition decodes an 8-byte VP PDU.
func DecodeVehiclePosition(pdu []byte) VehiclePosition {
	return VehiclePosition{
		Latitude:  slotPosition.dec(pdu, 0),
		Longitude: slotPosition.dec(pdu, 4),
	}
}

func (m VehiclePosition) PGN() j1939.PGN {
	return j1939.PGNVehiclePosition
}

func (m VehiclePosition) MarshalPDU() []byte {
	pdu := newPDU(j1939.PDUMaxLength)
	slotPosition.enc(pdu, 0, m.Latitude)
	slotPosition.enc(pdu, 4, m.Longitude)
	return pdu
}

func (m VehiclePosition) String() string {
	return fmt.Sprintf("Position: %s, %s", m.Latitude, m.Longitude)
}

// FuelEconomy (LFE, PGN 65266).
type FuelEconomy struct {
	FuelRate                 Value[float64] // L/h
	InstantaneousFuelEconomy Value[float64] // km/L
	AverageFuelEconomy       Value[float64] // km/L
	ThrottlePosition         Value[float64] // %
}

// DecodeFuelEconomy decodes an 8-byte LFE PDU.
func DecodeFuelEconomy(pdu []byte) FuelEconomy {
	return FuelEconomy{
		FuelRate:                 slotFuelRate.dec(pdu, 0),
		InstantaneousFuelEconomy: slotFuelEconomy.dec(pdu, 2),
		AverageFuelEconomy:       slotFuelEconomy.dec(pdu, 4),
		ThrottlePosition:         slotPercent.dec(pdu, 6),
	}
}

func (m FuelEconomy) PGN() j1939.PGN {
	return j1939.PGNFuelEconomy
}

func (m FuelEconomy) MarshalPDU() []byte {
	pdu := newPDU(j1939.PDUMaxLength)
	slotFuelRate.enc(pdu, 0, m.FuelRate)
	slotFuelEconomy.enc(pdu, 2, m.InstantaneousFuelEconomy)
	slotFuelEconomy.enc(pdu, 4, m.AverageFuelEconomy)
	slotPercent.enc(pdu, 6, m.ThrottlePosition)
	return pdu
}

func (m FuelEconomy) String() string {
	return fmt.Sprintf("Fuel rate: %s L/h; Economy: %s km/L", m.FuelRate, m.InstantaneousFuelEconomy)
}

// FuelConsumption (LFC, PGN 65257).
type FuelConsumption struct {
	TripFuel  Value[float64] // L
	TotalFuel Value[float64] // L
}

// DecodeFuelConsumption decodes an 8-byte LFC PDU.
func DecodeFuelConsumption(pdu []byte) FuelConsumption {
	return FuelConsumption{
		TripFuel:  slotFuelUsage.dec(pdu, 0),
		TotalFuel: slotFuelUsage.dec(pdu, 4),
	}
}

func (m FuelConsumption) PGN() j1939.PGN {
	return j1939.PGNFuelConsumption
}

func (m FuelConsumption) MarshalPDU() []byte {
	pdu := newPDU(j1939.PDUMaxLength)
	slotFuelUsage.enc(pdu, 0, m.TripFuel)
	slotFuelUsage.enc(pdu, 4, m.TotalFuel)
	return pdu
}

func (m FuelConsumption) String() string {
	return fmt.Sprintf("Trip fuel: %s L; Total fuel: %s L", m.TripFuel, m.TotalFuel)
}

// VehicleDistance (VD, PGN 65248).
type VehicleDistance struct {
	TripDistance  Value[float64] // km
	TotalDistance Value[float64] // km
}

// DecodeVehicleDistance decodes an 8-byte VD PDU.
func DecodeVehicleDistance(pdu []byte) VehicleDistance {
	return VehicleDistance{
		TripDistance:  slotDistance.dec(pdu, 0),
		TotalDistance: slotDistance.dec(pdu, 4),
	}
}

func (m VehicleDistance) PGN() j1939.PGN {
	return j1939.PGNVehicleDistance
}

func (m VehicleDistance) MarshalPDU() []byte {
	pdu := newPDU(j1939.PDUMaxLength)
	slotDistance.enc(pdu, 0, m.TripDistance)
	slotDistance.enc(pdu, 4, m.TotalDistance)
	return pdu
}

func (m VehicleDistance) String() string {
	return fmt.Sprintf("Trip: %s km; Total: %s km", m.TripDistance, m.TotalDistance)
}

// HighResolutionVehicleDistance (VDHR, PGN 65217). Distances count in 5 m
// increments, unlike the 0.125 km counts of VehicleDistance.
type HighResolutionVehicleDistance struct {
	TotalDistance Value[float64] // m
	TripDistance  Value[float64] // m
}

// DecodeHighResolutionVehicleDistance decodes an 8-byte VDHR PDU.
func DecodeHighResolutionVehicleDistance(pdu []byte) HighResolutionVehicleDistance {
	return HighResolutionVehicleDistance{
		TotalDistance: slotDistanceHiRes.dec(pdu, 0),
		TripDistance:  slotDistanceHiRes.dec(pdu, 4),
	}
}

func (m HighResolutionVehicleDistance) PGN() j1939.PGN {
	return j1939.PGNHighResolutionVehicleDistance
}

func (m HighResolutionVehicleDistance) MarshalPDU() []byte {
	pdu := newPDU(j1939.PDUMaxLength)
	slotDistanceHiRes.enc(pdu, 0, m.TotalDistance)
	slotDistanceHiRes.enc(pdu, 4, m.TripDistance)
	return pdu
}

func (m HighResolutionVehicleDistance) String() string {
	return fmt.Sprintf("Total: %s m; Trip: %s m", m.TotalDistance, m.TripDistance)
}

// VehicleElectricalPower1 (VEP1, PGN 65271).
type VehicleElectricalPower1 struct {
	NetBatteryCurrent         Value[float64] // A
	AlternatorCurrent         Value[float64] // A
	ChargingSystemPotential   Value[float64] // V
	BatteryPotential          Value[float64] // V
	KeyswitchBatteryPotential Value[float64] // V
}

// DecodeVehicleElectricalPower1 decodes an 8-byte VEP1 PDU.
func DecodeVehicleElectricalPower1(pdu []byte) VehicleElectricalPower1 {
	return VehicleElectricalPower1{
		NetBatteryCurrent:         slotCurrent.dec(pdu, 0),
		AlternatorCurrent:         slotCurrentUns.dec(pdu, 1),
		ChargingSystemPotential:   slotPotential.dec(pdu, 2),
		BatteryPotential:          slotPotential.dec(pdu, 4),
		KeyswitchBatteryPotential: slotPotential.dec(pdu, 6),
	}
}

func (m VehicleElectricalPower1) PGN() j1939.PGN {
	return j1939.PGNVehicleElectricalPower1
}

func (m VehicleElectricalPower1) MarshalPDU() []byte {
	pdu := newPDU(j1939.PDUMaxLength)
	slotCurrent.enc(pdu, 0, m.NetBatteryCurrent)
	slotCurrentUns.enc(pdu, 1, m.AlternatorCurrent)
	slotPotential.enc(pdu, 2, m.ChargingSystemPotential)
	slotPotential.enc(pdu, 4, m.BatteryPotential)
	slotPotential.enc(pdu, 6, m.KeyswitchBatteryPotential)
	return pdu
}

func (m VehicleElectricalPower1) String() string {
	return fmt.Sprintf("Battery: %s V; Charging: %s V; Net current: %s A",
		m.BatteryPotential, m.ChargingSystemPotential, m.NetBatteryCurrent)
}

// ECUHistory reports the accumulated distance and run time of the sending
// ECU (EH, PGN 65201).
type ECUHistory struct {
	TotalDistance Value[float64] // km
	TotalRunTime  Value[float64] // h
}

// DecodeECUHistory decodes an 8-byte EH PDU.
func DecodeECUHistory(pdu []byte) ECUHistory {
	return ECUHistory{
		TotalDistance: slotDistance.dec(pdu, 0),
		TotalRunTime:  slotHours.dec(pdu, 4),
	}
}

func (m ECUHistory) PGN() j1939.PGN {
	return j1939.PGNECUHistory
}

func (m ECUHistory) MarshalPDU() []byte {
	pdu := newPDU(j1939.PDUMaxLength)
	slotDistance.enc(pdu, 0, m.TotalDistance)
	slotHours.enc(pdu, 4, m.TotalRunTime)
	return pdu
}

func (m ECUHistory) String() string {
	return fmt.Sprintf("ECU distance: %s km; ECU run time: %s h", m.TotalDistance, m.TotalRunTime)
}

// TankInformation1 reports the aftertreatment catalyst tank (TI1, PGN 65110).
type TankInformation1 struct {
	CatalystTankLevel       Value[float64] // %
	CatalystTankTemperature Value[float64] // deg C
}

// DecodeTankInformation1 decodes an 8-byte TI1 PDU.
func DecodeTankInformation1(pdu []byte) TankInformation1 {
	return TankInformation1{
		CatalystTankLevel:       slotPercent.dec(pdu, 0),
		CatalystTankTemperature: slotTemp8.dec(pdu, 1),
	}
}

func (m TankInformation1) PGN() j1939.PGN {
	return j1939.PGNTankInformation1
}

func (m TankInformation1) MarshalPDU() []byte {
	pdu := newPDU(j1939.PDUMaxLength)
	slotPercent.enc(pdu, 0, m.CatalystTankLevel)
	slotTemp8.enc(pdu, 1, m.CatalystTankTemperature)
	return pdu
}

func (m TankInformation1) String() string {
	return fmt.Sprintf("Catalyst tank: %s%% at %s C", m.CatalystTankLevel, m.CatalystTankTemperature)
}

// PowerTakeoffInformation (PTO, PGN 65264).
type PowerTakeoffInformation struct {
	OilTemperature            Value[float64] // deg C
	Speed                     Value[float64] // rpm
	SetSpeed                  Value[float64] // rpm
	EnableSwitch              uint8          // 2-bit switch state
	RemotePreprogrammedSwitch uint8
	RemoteVariableSpeedSwitch uint8
	AccelerateSwitch          uint8
	ResumeSwitch              uint8
	CoastDecelerateSwitch     uint8
	SetSwitch                 uint8
}

// DecodePowerTakeoffInformation decodes an 8-byte PTO PDU.
func DecodePowerTakeoffInformation(pdu []byte) PowerTakeoffInformation {
	return PowerTakeoffInformation{
		OilTemperature:            slotTemp8.dec(pdu, 0),
		Speed:                     slotRotVelocity.dec(pdu, 1),
		SetSpeed:                  slotRotVelocity.dec(pdu, 3),
		EnableSwitch:              decBits(pdu[5], 0, 2),
		RemotePreprogrammedSwitch: decBits(pdu[5], 2, 2),
		RemoteVariableSpeedSwitch: decBits(pdu[5], 4, 2),
		AccelerateSwitch:          decBits(pdu[6], 0, 2),
		ResumeSwitch:              decBits(pdu[6], 2, 2),
		CoastDecelerateSwitch:     decBits(pdu[6], 4, 2),
		SetSwitch:                 decBits(pdu[6], 6, 2),
	}
}

func (m PowerTakeoffInformation) PGN() j1939.PGN {
	return j1939.PGNPowerTakeoffInformation
}

func (m PowerTakeoffInformation) MarshalPDU() []byte {
	pdu := newPDU(j1939.PDUMaxLength)
	slotTemp8.enc(pdu, 0, m.OilTemperature)
	slotRotVelocity.enc(pdu, 1, m.Speed)
	slotRotVelocity.enc(pdu, 3, m.SetSpeed)
	encBits(&pdu[5], m.EnableSwitch, 0, 2)
	encBits(&pdu[5], m.RemotePreprogrammedSwitch, 2, 2)
	encBits(&pdu[5], m.RemoteVariableSpeedSwitch, 4, 2)
	encBits(&pdu[6], m.AccelerateSwitch, 0, 2)
	encBits(&pdu[6], m.ResumeSwitch, 2, 2)
	encBits(&pdu[6], m.CoastDecelerateSwitch, 4, 2)
	encBits(&pdu[6], m.SetSwitch, 6, 2)
	return pdu
}

func (m PowerTakeoffInformation) String() string {
	return fmt.Sprintf("PTO speed: %s rpm; Set speed: %s rpm; Enabled: %d", m.Speed, m.SetSpeed, m.EnableSwitch)
}

// AuxiliaryInputOutputStatus (AUXIO, PGN 65241).
type AuxiliaryInputOutputStatus struct {
	Channel1     uint8 // 2-bit I/O state
	Channel2     uint8
	Channel3     uint8
	Channel4     uint8
	Channel5     uint8
	Channel6     uint8
	Channel7     uint8
	Channel8     uint8
	AnalogInput1 Value[uint32]
	AnalogInput2 Value[uint32]
	AnalogInput3 Value[uint32]
}

// DecodeAuxiliaryInputOutputStatus decodes an 8-byte AUXIO PDU.
func DecodeAuxiliaryInputOutputStatus(pdu []byte) AuxiliaryInputOutputStatus {
	return AuxiliaryInputOutputStatus{
		Channel1:     decBits(pdu[0], 0, 2),
		Channel2:     decBits(pdu[0], 2, 2),
		Channel3:     decBits(pdu[0], 4, 2),
		Channel4:     decBits(pdu[0], 6, 2),
		Channel5:     decBits(pdu[1], 0, 2),
		Channel6:     decBits(pdu[1], 2, 2),
		Channel7:     decBits(pdu[1], 4, 2),
		Channel8:     decBits(pdu[1], 6, 2),
		AnalogInput1: decRaw(pdu, 2, 2),
		AnalogInput2: decRaw(pdu, 4, 2),
		AnalogInput3: decRaw(pdu, 6, 2),
	}
}

func (m AuxiliaryInputOutputStatus) PGN() j1939.PGN {
	return j1939.PGNAuxiliaryInputOutputStatus
}

func (m AuxiliaryInputOutputStatus) MarshalPDU() []byte {
	pdu := newPDU(j1939.PDUMaxLength)
	encBits(&pdu[0], m.Channel1, 0, 2)
	encBits(&pdu[0], m.Channel2, 2, 2)
	encBits(&pdu[0], m.Channel3, 4, 2)
	encBits(&pdu[0], m.Channel4, 6, 2)
	encBits(&pdu[1], m.Channel5, 0, 2)
	encBits(&pdu[1], m.Channel6, 2, 2)
	encBits(&pdu[1], m.Channel7, 4, 2)
	encBits(&pdu[1], m.Channel8, 6, 2)
	encRaw(pdu, 2, 2, m.AnalogInput1)
	encRaw(pdu, 4, 2, m.AnalogInput2)
	encRaw(pdu, 6, 2, m.AnalogInput3)
	return pdu
}

func (m AuxiliaryInputOutputStatus) String() string {
	return fmt.Sprintf("Channels: %d%d%d%d%d%d%d%d; Analog: %s %s %s",
		m.Channel1, m.Channel2, m.Channel3, m.Channel4, m.Channel5, m.Channel6, m.Channel7, m.Channel8,
		m.AnalogInput1, m.AnalogInput2, m.AnalogInput3)
}

// TimeDate (TD, PGN 65254). Seconds and days count in quarter units; the
// year counts from 1985 and the local offsets from -125.
type TimeDate struct {
	Seconds           Value[float64]
	Minutes           Value[float64]
	Hours             Value[float64]
	Month             Value[float64]
	Day               Value[float64]
	Year              Value[float64]
	LocalMinuteOffset Value[float64]
	LocalHourOffset   Value[float64]
}

// DecodeTimeDate decodes an 8-byte TD PDU.
func DecodeTimeDate(pdu []byte) TimeDate {
	return TimeDate{
		Seconds:           slotSeconds.dec(pdu, 0),
		Minutes:           slotCount8.dec(pdu, 1),
		Hours:             slotCount8.dec(pdu, 2),
		Month:             slotCount8.dec(pdu, 3),
		Day:               slotDays.dec(pdu, 4),
		Year:              slotYear.dec(pdu, 5),
		LocalMinuteOffset: slotMinuteOffset.dec(pdu, 6),
		LocalHourOffset:   slotHourOffset.dec(pdu, 7),
	}
}

func (m TimeDate) PGN() j1939.PGN {
	return j1939.PGNTimeDate
}

func (m TimeDate) MarshalPDU() []byte {
	pdu := newPDU(j1939.PDUMaxLength)
	slotSeconds.enc(pdu, 0, m.Seconds)
	slotCount8.enc(pdu, 1, m.Minutes)
	slotCount8.enc(pdu, 2, m.Hours)
	slotCount8.enc(pdu, 3, m.Month)
	slotDays.enc(pdu, 4, m.Day)
	slotYear.enc(pdu, 5, m.Year)
	slotMinuteOffset.enc(pdu, 6, m.LocalMinuteOffset)
	slotHourOffset.enc(pdu, 7, m.LocalHourOffset)
	return pdu
}

// Tachograph (TCO1, PGN 65132).
type Tachograph struct {
	Driver1WorkingState uint8          // 3-bit state
	Driver2WorkingState uint8          // 3-bit state
	VehicleMotion       uint8          // 2-bit state
	Driver1TimeState    uint8          // 4-bit state
	Driver1Card         uint8          // 2-bit state
	VehicleOverspeed    uint8          // 2-bit state
	Driver2TimeState    uint8          // 4-bit state
	Driver2Card         uint8          // 2-bit state
	SystemEvent         uint8          // 2-bit state
	HandlingInformation uint8          // 2-bit state
	Performance         uint8          // 2-bit state
	DirectionIndicator  uint8          // 2-bit state
	OutputShaftSpeed    Value[float64] // rpm
	VehicleSpeed        Value[float64] // km/h
}

// DecodeTachograph decodes an 8-byte TCO1 PDU.
func DecodeTachograph(pdu []byte) Tachograph {
	return Tachograph{
		Driver1WorkingState: decBits(pdu[0], 0, 3),
		Driver2WorkingState: decBits(pdu[0], 3, 3),
		VehicleMotion:       decBits(pdu[0], 6, 2),
		Driver1TimeState:    decBits(pdu[1], 0, 4),
		Driver1Card:         decBits(pdu[1], 4, 2),
		VehicleOverspeed:    decBits(pdu[1], 6, 2),
		Driver2TimeState:    decBits(pdu[2], 0, 4),
		Driver2Card:         decBits(pdu[2], 4, 2),
		SystemEvent:         decBits(pdu[3], 0, 2),
		HandlingInformation: decBits(pdu[3], 2, 2),
		Performance:         decBits(pdu[3], 4, 2),
		DirectionIndicator:  decBits(pdu[3], 6, 2),
		OutputShaftSpeed:    slotRotVelocity.dec(pdu, 4),
		VehicleSpeed:        slotVelocity.dec(pdu, 6),
	}
}

func (m Tachograph) PGN() j1939.PGN {
	return j1939.PGNTachograph
}

func (m Tachograph) MarshalPDU() []byte {
	pdu := newPDU(j1939.PDUMaxLength)
	encBits(&pdu[0], m.Driver1WorkingState, 0, 3)
	encBits(&pdu[0], m.Driver2WorkingState, 3, 3)
	encBits(&pdu[0], m.VehicleMotion, 6, 2)
	encBits(&pdu[1], m.Driver1TimeState, 0, 4)
	encBits(&pdu[1], m.Driver1Card, 4, 2)
	encBits(&pdu[1], m.VehicleOverspeed, 6, 2)
	encBits(&pdu[2], m.Driver2TimeState, 0, 4)
	encBits(&pdu[2], m.Driver2Card, 4, 2)
	encBits(&pdu[3], m.SystemEvent, 0, 2)
	encBits(&pdu[3], m.HandlingInformation, 2, 2)
	encBits(&pdu[3], m.Performance, 4, 2)
	encBits(&pdu[3], m.DirectionIndicator, 6, 2)
	slotRotVelocity.enc(pdu, 4, m.OutputShaftSpeed)
	slotVelocity.enc(pdu, 6, m.VehicleSpeed)
	return pdu
}

func (m Tachograph) String() string {
	return fmt.Sprintf("Vehicle speed: %s km/h; Motion: %d; Driver 1 working state: %d",
		m.VehicleSpeed, m.VehicleMotion, m.Driver1WorkingState)
}
