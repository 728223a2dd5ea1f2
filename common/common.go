// Package common holds logging and CLI plumbing shared by the command
// line tools.
package common

// Originally from https://github.com/canboat/canboat (Apache License, Version 2.0)
// (C) 2009-2023, Kees Verruijt, Harlingen, The Netherlands.

// This file is part of CANboat.

// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at

//     http://www.apache.org/licenses/LICENSE-2.0

// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.viam.com/rdk/logging"
)

// NewLogger returns a new logger that appends to the given writer.
func NewLogger(writer io.Writer, opts ...zap.Option) logging.Logger {
	logger := logging.NewBlankLogger("")
	logger.AddAppender(logging.ConsoleAppender{Writer: writer})
	return logger
}

// Error logs a message at the ERROR level. The returned
// error may be used to propagate upwards.
func Error(logger logging.Logger, isCLI bool, format string, v ...any) error {
	logger.Errorf(format, v...)
	err := fmt.Errorf(format, v...)
	if !isCLI {
		return err
	}
	return &ExitError{Code: 2, Cause: err}
}

// Abort logs a message at the "FATAL" level. The returned
// error may be used to propagate upwards and if running
// as a CLI, it may os.Exit.
func Abort(logger logging.Logger, isCLI bool, format string, v ...any) error {
	logger.Errorf("FATAL: "+format, v...)
	err := fmt.Errorf(format, v...)
	if !isCLI {
		return err
	}
	return &ExitError{Code: 2, Cause: err}
}

// ExitError is an error for exit codes.
type ExitError struct {
	Code  int
	Cause error
}

// Error returns the underlying error and cause.
func (e ExitError) Error() string {
	return fmt.Sprintf("exit code %d; cause=%s", e.Code, e.Cause)
}

// Unwrap returns the cause, if present.
func (e ExitError) Unwrap() error {
	return e.Cause
}
