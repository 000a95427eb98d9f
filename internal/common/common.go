// Package common defines data structures and functions that are used by
// multiple application commands, e.g., plot, batch, fields.
package common

// Copyright (C) 2025 dstatplot authors
// SPDX-License-Identifier: BSD-3-Clause

import (
	"os"
	"path/filepath"
)

// AppName is the invoked binary name, used in logs and usage text.
var AppName = filepath.Base(os.Args[0])

// AppContext represents the application context that can be accessed from
// all commands.
type AppContext struct {
	OutputDir string // OutputDir is the directory where charts land unless an explicit output path is given.
	Version   string // Version is the version of the application.
	Debug     bool   // Debug is true when debug logging was requested.
}

// Flag associates a flag name with its help text for grouped usage output.
type Flag struct {
	Name string
	Help string
}

// FlagGroup is a named group of flags shown together in usage output.
type FlagGroup struct {
	GroupName string
	Flags     []Flag
}
