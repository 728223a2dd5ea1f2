package common

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/erh/goj1939/j1939"
)

// ParseCANID parses a 29-bit CAN identifier written in hex, with or
// without a 0x prefix.
func ParseCANID(s string) (j1939.ID, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	raw, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return j1939.ID{}, fmt.Errorf("bad CAN identifier %q: %w", s, err)
	}
	if raw > uint64(j1939.IDBitMask) {
		return j1939.ID{}, fmt.Errorf("CAN identifier %#x wider than 29 bits", raw)
	}
	return j1939.NewID(uint32(raw)), nil
}

// ParseFrameText parses the cansend text form ID#HEXDATA, e.g.
// 18FEE500#E0FFFFFFFFFFFFFF. The data part must be an even number of hex
// digits and at most eight bytes.
func ParseFrameText(s string) (j1939.Frame, error) {
	idPart, dataPart, found := strings.Cut(strings.TrimSpace(s), "#")
	if !found {
		return j1939.Frame{}, fmt.Errorf("frame %q missing # separator", s)
	}

	id, err := ParseCANID(idPart)
	if err != nil {
		return j1939.Frame{}, err
	}

	if len(dataPart)%2 != 0 {
		return j1939.Frame{}, fmt.Errorf("frame data %q has an odd number of hex digits", dataPart)
	}
	data, err := hex.DecodeString(dataPart)
	if err != nil {
		return j1939.Frame{}, fmt.Errorf("bad frame data %q: %w", dataPart, err)
	}
	if len(data) > j1939.PDUMaxLength {
		return j1939.Frame{}, fmt.Errorf("frame data is %d bytes, max is %d", len(data), j1939.PDUMaxLength)
	}

	return j1939.NewFrameBuilder(id).CopyFrom(data).Build(), nil
}

// ParseCandumpLine parses one line of `candump -L` style output:
//
//	(1436509053.249713) can0 18FEF100#FFFFFF3F00FFFFFF
//
// The timestamp and interface columns are optional; a bare ID#DATA line
// parses too.
func ParseCandumpLine(line string) (j1939.Frame, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return j1939.Frame{}, fmt.Errorf("empty line")
	}
	return ParseFrameText(fields[len(fields)-1])
}
