package common

import (
	"testing"

	"go.viam.com/test"

	"github.com/erh/goj1939/j1939"
)

func TestParseCANID(t *testing.T) {
	id, err := ParseCANID("0x18EAFF00")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, id, test.ShouldResemble, j1939.NewID(0x18EAFF00))

	id, err = ParseCANID("0CFE6CEE")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, id, test.ShouldResemble, j1939.NewID(0x0CFE6CEE))

	_, err = ParseCANID("zzzz")
	test.That(t, err, test.ShouldNotBeNil)

	_, err = ParseCANID("0xFFFFFFFF")
	test.That(t, err, test.ShouldNotBeNil)
}

func TestParseFrameText(t *testing.T) {
	frame, err := ParseFrameText("0x18FEE6EE#243412024029837D")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, frame.ID().PGN(), test.ShouldEqual, j1939.PGNTimeDate)
	test.That(t, frame.Len(), test.ShouldEqual, 8)
	test.That(t, frame.PDU(), test.ShouldResemble, []byte{0x24, 0x34, 0x12, 0x02, 0x40, 0x29, 0x83, 0x7D})

	frame, err = ParseFrameText("18EAFF00#DAFE00")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, frame.Len(), test.ShouldEqual, 3)

	_, err = ParseFrameText("18EAFF00")
	test.That(t, err, test.ShouldNotBeNil)

	_, err = ParseFrameText("18EAFF00#DAFE0")
	test.That(t, err, test.ShouldNotBeNil)

	_, err = ParseFrameText("18EAFF00#XXYY")
	test.That(t, err, test.ShouldNotBeNil)

	_, err = ParseFrameText("18EAFF00#000102030405060708")
	test.That(t, err, test.ShouldNotBeNil)
}

func TestParseCandumpLine(t *testing.T) {
	frame, err := ParseCandumpLine("(1436509053.249713) can0 18FEF100#FFFFFF3F00FFFFFF")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, frame.ID().PGNRaw(), test.ShouldEqual, uint32(65265))
	test.That(t, frame.Len(), test.ShouldEqual, 8)

	frame, err = ParseCandumpLine("18FEE6EE#243412024029837D")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, frame.ID().PGN(), test.ShouldEqual, j1939.PGNTimeDate)

	_, err = ParseCandumpLine("   ")
	test.That(t, err, test.ShouldNotBeNil)
}
