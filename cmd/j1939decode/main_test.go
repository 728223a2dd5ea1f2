package main

import (
	"bytes"
	"errors"
	"testing"

	"go.viam.com/test"

	"github.com/erh/goj1939/common"
)

func TestRunBadIDIsExitError(t *testing.T) {
	var buf bytes.Buffer
	logger := common.NewLogger(&buf)

	err := run([]string{"j1939decode", "zzzz"}, logger)
	var exitErr *common.ExitError
	test.That(t, errors.As(err, &exitErr), test.ShouldBeTrue)
	test.That(t, exitErr.Code, test.ShouldEqual, 2)
	test.That(t, buf.String(), test.ShouldContainSubstring, "bad CAN identifier")
}

func TestRunBadPayloadIsExitError(t *testing.T) {
	var buf bytes.Buffer
	logger := common.NewLogger(&buf)

	err := run([]string{"j1939decode", "18FEE6EE#2434120"}, logger)
	var exitErr *common.ExitError
	test.That(t, errors.As(err, &exitErr), test.ShouldBeTrue)
	test.That(t, buf.String(), test.ShouldContainSubstring, "odd number of hex digits")
}

func TestRunMalformedDiagnosticIsExitError(t *testing.T) {
	var buf bytes.Buffer
	logger := common.NewLogger(&buf)

	err := run([]string{"j1939decode", "18FECAEE#44FF12"}, logger)
	var exitErr *common.ExitError
	test.That(t, errors.As(err, &exitErr), test.ShouldBeTrue)
	test.That(t, buf.String(), test.ShouldContainSubstring, "trouble code record")
}

func TestRunDecodesFrame(t *testing.T) {
	var buf bytes.Buffer
	logger := common.NewLogger(&buf)

	err := run([]string{"j1939decode", "0x18FEE6EE#243412024029837D"}, logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, buf.Len(), test.ShouldEqual, 0)
}
