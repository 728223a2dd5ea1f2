// Package main decodes a single frame given on the command line.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go.viam.com/rdk/logging"

	"github.com/erh/goj1939/common"
	"github.com/erh/goj1939/dispatch"
	"github.com/erh/goj1939/j1939"
)

func usage() {
	fmt.Println("Usage: j1939decode <input>")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  <input>     29-bit CAN ID in hexadecimal format (0x18EAFF00)")
	fmt.Println("              or CAN ID and data separated by '#' (0x18FEE6EE#243412024029837D)")
}

func printID(id j1939.ID) {
	fmt.Println("ID")
	fmt.Printf(" Hex: 0x%08X\n", id.Raw())
	fmt.Printf(" Dec: %d\n", id.Raw())
	fmt.Printf(" Bin: %029b\n", id.Raw())
	fmt.Printf("Priority: %d\n", id.Priority())
	fmt.Printf("Data Page (DP): %d\n", id.DataPage())
	fmt.Printf("Parameter Group Number (PGN): %v\n", id.PGN())
	fmt.Printf(" Hex: 0x%04X\n", id.PGNRaw())
	fmt.Printf(" Dec: %d\n", id.PGNRaw())
	fmt.Printf("PDU Format: %v\n", id.PDUFormat())
	fmt.Printf("Broadcast: %t\n", id.IsBroadcast())

	if ge, ok := id.GroupExtension(); ok {
		fmt.Printf("Group Extension (GE)/PDU Specific (PS): 0x%02X (%d)\n", ge, ge)
	}
	if da, ok := id.DestinationAddress(); ok {
		fmt.Printf("Destination Address (DA): 0x%02X (%d)\n", da, da)
	}
	fmt.Printf("Source Address (SA): 0x%02X (%d)\n", id.SourceAddress(), id.SourceAddress())
}

func printData(pgn j1939.PGN, pdu []byte) error {
	fmt.Println()
	fmt.Printf("Data Hex: % X\n", pdu)
	if len(pdu) == 0 {
		return nil
	}

	fmt.Println("Data Decoded:")
	msg, ok, err := dispatch.Decode(pgn, pdu)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("  Unknown PGN for data decoding.")
		return nil
	}
	fmt.Printf("  %v\n", msg)
	return nil
}

func run(args []string, logger logging.Logger) error {
	if len(args) < 2 {
		usage()
		return nil
	}
	input := args[1]

	if !strings.Contains(input, "#") {
		id, err := common.ParseCANID(input)
		if err != nil {
			return common.Error(logger, true, "%s", err)
		}
		printID(id)
		return nil
	}

	frame, err := common.ParseFrameText(input)
	if err != nil {
		return common.Error(logger, true, "%s", err)
	}
	printID(frame.ID())
	if err := printData(frame.ID().PGN(), frame.PDU()); err != nil {
		return common.Error(logger, true, "%s", err)
	}
	return nil
}

func main() {
	logger := common.NewLogger(os.Stderr)
	defer func() {
		//nolint:errcheck
		logger.Sync()
	}()
	handleErr(run(os.Args, logger))
}

func handleErr(err error) {
	if err == nil {
		return
	}
	var exitErr *common.ExitError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.Code)
	}
	fmt.Fprintln(os.Stderr, err.Error())
	os.Exit(1)
}
