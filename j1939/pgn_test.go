package j1939

import (
	"testing"

	"go.viam.com/test"
)

func TestPGNKnown(t *testing.T) {
	test.That(t, PGNTimeDate.Known(), test.ShouldBeTrue)
	test.That(t, PGNTorqueSpeedControl1.Known(), test.ShouldBeTrue)
	test.That(t, PGN(126720).Known(), test.ShouldBeFalse)
}

func TestPGNRawIdentity(t *testing.T) {
	// Raw-to-PGN-to-raw must be the identity for every value, named or not.
	for _, raw := range []uint32{0, 51712, 59904, 61444, 65132, 65254, 65535, 126720, 0xFFFFFF} {
		test.That(t, PGN(raw).Raw(), test.ShouldEqual, raw)
	}
}

func TestPGNString(t *testing.T) {
	test.That(t, PGNTimeDate.String(), test.ShouldEqual, "TimeDate")
	test.That(t, PGNDiagnosticMessage1.String(), test.ShouldEqual, "DiagnosticMessage1")
	test.That(t, PGN(126720).String(), test.ShouldEqual, "Other(126720)")
}

func TestPGNNamesAreDistinct(t *testing.T) {
	seen := map[string]PGN{}
	for pgn, name := range pgnNames {
		_, dup := seen[name]
		test.That(t, dup, test.ShouldBeFalse)
		seen[name] = pgn
	}
	test.That(t, len(seen), test.ShouldEqual, len(pgnNames))
}
