package j1939

import (
	"testing"

	"go.viam.com/test"
)

func TestIDDecodeRequestBroadcast(t *testing.T) {
	id := NewID(0x18EAFF00)

	test.That(t, id.Raw(), test.ShouldEqual, uint32(0x18EAFF00))
	test.That(t, id.Priority(), test.ShouldEqual, 6)
	test.That(t, id.DataPage(), test.ShouldEqual, 0)
	test.That(t, id.PGNRaw(), test.ShouldEqual, uint32(59904))
	test.That(t, id.PGN(), test.ShouldEqual, PGNRequest)
	test.That(t, id.PDUFormat(), test.ShouldEqual, PDUFormat(234))
	test.That(t, id.PDUFormat().IsPDU1(), test.ShouldBeTrue)
	test.That(t, id.IsBroadcast(), test.ShouldBeTrue)
	test.That(t, id.PDUSpecific(), test.ShouldEqual, 255)

	da, ok := id.DestinationAddress()
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, da, test.ShouldEqual, 255)

	_, ok = id.GroupExtension()
	test.That(t, ok, test.ShouldBeFalse)

	test.That(t, id.SourceAddress(), test.ShouldEqual, 0)
}

func TestIDDecodeRequestAddressed(t *testing.T) {
	id := NewID(0x18EA687A)

	test.That(t, id.Raw(), test.ShouldEqual, uint32(0x18EA687A))
	test.That(t, id.Priority(), test.ShouldEqual, 6)
	test.That(t, id.DataPage(), test.ShouldEqual, 0)
	test.That(t, id.PGNRaw(), test.ShouldEqual, uint32(59904))
	test.That(t, id.PGN(), test.ShouldEqual, PGNRequest)
	test.That(t, id.PDUFormat(), test.ShouldEqual, PDUFormat(234))
	test.That(t, id.IsBroadcast(), test.ShouldBeFalse)
	test.That(t, id.PDUSpecific(), test.ShouldEqual, 104)

	da, ok := id.DestinationAddress()
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, da, test.ShouldEqual, 0x68)

	_, ok = id.GroupExtension()
	test.That(t, ok, test.ShouldBeFalse)

	test.That(t, id.SourceAddress(), test.ShouldEqual, 0x7A)
}

func TestIDDecodeTachograph(t *testing.T) {
	id := NewID(0x0CFE6CEE)

	test.That(t, id.Raw(), test.ShouldEqual, uint32(0x0CFE6CEE))
	test.That(t, id.Priority(), test.ShouldEqual, 3)
	test.That(t, id.DataPage(), test.ShouldEqual, 0)
	test.That(t, id.PGNRaw(), test.ShouldEqual, uint32(65132))
	test.That(t, id.PGN(), test.ShouldEqual, PGNTachograph)
	test.That(t, id.PDUFormat(), test.ShouldEqual, PDUFormat(254))
	test.That(t, id.PDUFormat().IsPDU2(), test.ShouldBeTrue)
	test.That(t, id.IsBroadcast(), test.ShouldBeTrue)
	test.That(t, id.PDUSpecific(), test.ShouldEqual, 108)

	_, ok := id.DestinationAddress()
	test.That(t, ok, test.ShouldBeFalse)

	ge, ok := id.GroupExtension()
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, ge, test.ShouldEqual, 108)

	test.That(t, id.SourceAddress(), test.ShouldEqual, 238)
}

func TestIDDecodeDataPage(t *testing.T) {
	id := NewID(0x0DFE6CEE)

	test.That(t, id.Raw(), test.ShouldEqual, uint32(0x0DFE6CEE))
	test.That(t, id.Priority(), test.ShouldEqual, 3)
	test.That(t, id.DataPage(), test.ShouldEqual, 1)
	test.That(t, id.PGNRaw(), test.ShouldEqual, uint32(65132))
	test.That(t, id.PDUFormat(), test.ShouldEqual, PDUFormat(254))
	test.That(t, id.IsBroadcast(), test.ShouldBeTrue)
	test.That(t, id.SourceAddress(), test.ShouldEqual, 238)
}

func TestIDBuildNoDestination(t *testing.T) {
	id := IDBuilderFromPGN(PGNTransfer).
		Priority(3).
		Source(139).
		Build()

	test.That(t, id, test.ShouldResemble, NewID(0x0CCA008B))
}

func TestIDBuildWithDestination(t *testing.T) {
	id := IDBuilderFromPGN(PGNTransfer).
		Priority(3).
		Destination(0x34).
		Source(139).
		Build()

	test.That(t, id, test.ShouldResemble, NewID(0x0CCA348B))
}

func TestIDBuildPDU1Zero(t *testing.T) {
	id := IDBuilderFromPGN(PGNElectronicEngineController1).
		Priority(3).
		Destination(0).
		Source(12).
		Build()

	test.That(t, id, test.ShouldResemble, NewID(0x0CF0040C))
	test.That(t, id.PGNRaw(), test.ShouldEqual, uint32(61444))
}

func TestIDBuildDefaultPriority(t *testing.T) {
	id := IDBuilderFromPGN(PGNVehicleElectricalPower1).
		Source(234).
		Build()

	test.That(t, id, test.ShouldResemble, NewID(0x18FEF7EA))
}

func TestIDBuildOtherPGN(t *testing.T) {
	id := IDBuilderFromPGN(PGN(126720)).Source(234).Build()

	test.That(t, id, test.ShouldResemble, NewID(0x19EF00EA))
}

func TestIDBuildPriorityClamp(t *testing.T) {
	id := IDBuilderFromPGN(PGNRequest).Priority(12).Build()

	test.That(t, id.Priority(), test.ShouldEqual, 7)
}

func TestNewIDMasksTo29Bits(t *testing.T) {
	id := NewID(0xFFFFFFFF)

	test.That(t, id.Raw(), test.ShouldEqual, IDBitMask)
}
