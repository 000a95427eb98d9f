// Package fields is a subcommand of the root command. It lists the
// categories and fields available in a CSV log's header.
package fields

// Copyright (C) 2025 dstatplot authors
// SPDX-License-Identifier: BSD-3-Clause

import (
	"fmt"
	"os"
	"strings"

	"dstatplot/internal/common"
	"dstatplot/internal/dstat"

	"github.com/spf13/cobra"
)

const cmdName = "fields"

var examples = []string{
	fmt.Sprintf("  List the columns available in a log:  $ %s %s dstat.csv", common.AppName, cmdName),
}

var Cmd = &cobra.Command{
	Use:           cmdName + " <file>",
	Short:         "List the categories and fields in a CSV log",
	Long:          "",
	Example:       strings.Join(examples, "\n"),
	RunE:          runCmd,
	PreRunE:       validateArgs,
	GroupID:       "primary",
	Args:          cobra.ArbitraryArgs,
	SilenceErrors: true,
}

func validateArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		err := fmt.Errorf("exactly one CSV file is required")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

func runCmd(cmd *cobra.Command, args []string) error {
	file, err := dstat.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	fmt.Printf("columns in %s (%d data rows):\n", args[0], file.Samples())
	for _, category := range file.Schema.CategoryNames() {
		categoryFields, _ := file.Schema.CategoryFields(category)
		fmt.Printf("  %s: %s\n", category, strings.Join(categoryFields, ", "))
	}
	if meta := file.Metadata; meta.Present() {
		fmt.Printf("recorded on host %s by user %s, %s\n", meta.Host, meta.User, meta.Date)
	}
	return nil
}
