// Package plot is a subcommand of the root command. It renders one chart
// from one or more dstat CSV logs.
package plot

// Copyright (C) 2025 dstatplot authors
// SPDX-License-Identifier: BSD-3-Clause

import (
	"fmt"
	"os"
	"strings"

	"dstatplot/internal/chart"
	"dstatplot/internal/common"
	"dstatplot/internal/dstat"
	"dstatplot/internal/pipeline"
	"dstatplot/internal/transform"
	"dstatplot/internal/util"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const cmdName = "plot"

var examples = []string{
	fmt.Sprintf("  Plot one column from one log:        $ %s %s --category cpu --field usr dstat.csv", common.AppName, cmdName),
	fmt.Sprintf("  Overlay every log in a directory:    $ %s %s --category cpu --field sys ./logs", common.AppName, cmdName),
	fmt.Sprintf("  Select a column by raw index:        $ %s %s --column 3 dstat.csv", common.AppName, cmdName),
	fmt.Sprintf("  Invert idle time about 100%%:         $ %s %s --category cpu --field idl --invert 100 dstat.csv", common.AppName, cmdName),
	fmt.Sprintf("  Average groups of 10 samples:        $ %s %s --category cpu --field usr --average 10 dstat.csv", common.AppName, cmdName),
	fmt.Sprintf("  Plot a derived expression:           $ %s %s --category cpu --expr \"usr + sys\" dstat.csv", common.AppName, cmdName),
	fmt.Sprintf("  Export the series to a workbook:     $ %s %s --category cpu --field usr --format xlsx dstat.csv", common.AppName, cmdName),
}

var Cmd = &cobra.Command{
	Use:           cmdName,
	Short:         "Render a line chart from one or more CSV logs",
	Long:          "",
	Example:       strings.Join(examples, "\n"),
	RunE:          runCmd,
	PreRunE:       validateFlags,
	GroupID:       "primary",
	Args:          cobra.ArbitraryArgs,
	SilenceErrors: true,
}

var (
	// column selection options
	flagCategory string
	flagField    string
	flagColumn   int
	flagExpr     string
	// transform options
	flagInvert  float64
	flagAverage int
	flagSmooth  string
	// output options
	flagTitle    string
	flagYMax     float64
	flagNoLegend bool
	flagDryRun   bool
	flagFormat   string
	flagOut      string

	// positional arguments
	argsInputs []string
)

const (
	flagCategoryName = "category"
	flagFieldName    = "field"
	flagColumnName   = "column"
	flagExprName     = "expr"

	flagInvertName  = "invert"
	flagAverageName = "average"
	flagSmoothName  = "smooth"

	flagTitleName    = "title"
	flagYMaxName     = "ymax"
	flagNoLegendName = "no-legend"
	flagDryRunName   = "dry-run"
	flagFormatName   = "format"
	flagOutName      = "out"
)

func init() {
	Cmd.Flags().StringVar(&flagCategory, flagCategoryName, "", "")
	Cmd.Flags().StringVar(&flagField, flagFieldName, "", "")
	Cmd.Flags().IntVar(&flagColumn, flagColumnName, -1, "")
	Cmd.Flags().StringVar(&flagExpr, flagExprName, "", "")

	Cmd.Flags().Float64Var(&flagInvert, flagInvertName, 0, "")
	Cmd.Flags().IntVar(&flagAverage, flagAverageName, 0, "")
	Cmd.Flags().StringVar(&flagSmooth, flagSmoothName, "", "")

	Cmd.Flags().StringVar(&flagTitle, flagTitleName, "", "")
	Cmd.Flags().Float64Var(&flagYMax, flagYMaxName, 0, "")
	Cmd.Flags().BoolVar(&flagNoLegend, flagNoLegendName, false, "")
	Cmd.Flags().BoolVar(&flagDryRun, flagDryRunName, false, "")
	Cmd.Flags().StringVar(&flagFormat, flagFormatName, chart.FormatPNG, "")
	Cmd.Flags().StringVar(&flagOut, flagOutName, "", "")

	Cmd.SetUsageFunc(usageFunc)
}

func usageFunc(cmd *cobra.Command) error {
	cmd.Printf("Usage: %s [flags] <file|directory>...\n\n", cmd.CommandPath())
	cmd.Printf("Examples:\n%s\n\n", cmd.Example)
	cmd.Println("Arguments:")
	cmd.Printf("  files and/or directories: CSV logs to plot; directories are scanned for *.csv in sorted order\n\n")
	cmd.Println("Flags:")
	for _, group := range getFlagGroups() {
		cmd.Printf("  %s:\n", group.GroupName)
		for _, flag := range group.Flags {
			flagDefault := ""
			if cmd.Flags().Lookup(flag.Name).DefValue != "" {
				flagDefault = fmt.Sprintf(" (default: %s)", cmd.Flags().Lookup(flag.Name).DefValue)
			}
			cmd.Printf("    --%-20s %s%s\n", flag.Name, flag.Help, flagDefault)
		}
	}
	cmd.Println("\nGlobal Flags:")
	cmd.Parent().PersistentFlags().VisitAll(func(pf *pflag.Flag) {
		flagDefault := ""
		if cmd.Parent().PersistentFlags().Lookup(pf.Name).DefValue != "" {
			flagDefault = fmt.Sprintf(" (default: %s)", cmd.Parent().PersistentFlags().Lookup(pf.Name).DefValue)
		}
		cmd.Printf("  --%-20s %s%s\n", pf.Name, pf.Usage, flagDefault)
	})
	return nil
}

func getFlagGroups() []common.FlagGroup {
	var groups []common.FlagGroup
	// selection options
	flags := []common.Flag{
		{
			Name: flagCategoryName,
			Help: "category label from the log's header, e.g., \"total cpu usage\"",
		},
		{
			Name: flagFieldName,
			Help: "field label within the category, e.g., \"usr\"",
		},
		{
			Name: flagColumnName,
			Help: "raw column index, an alternative to category/field selection",
		},
		{
			Name: flagExprName,
			Help: fmt.Sprintf("expression over the fields of --%s, e.g., \"usr + sys\"", flagCategoryName),
		},
	}
	groups = append(groups, common.FlagGroup{
		GroupName: "Selection Options",
		Flags:     flags,
	})
	// transform options
	flags = []common.Flag{
		{
			Name: flagInvertName,
			Help: "invert values about the given pivot, plotting abs(value - pivot)",
		},
		{
			Name: flagAverageName,
			Help: "average consecutive groups of N samples to reduce noise and chart density",
		},
		{
			Name: flagSmoothName,
			Help: fmt.Sprintf("smoothing algorithm applied by the renderer, options: %s", strings.Join(transform.SmoothingOptions, ", ")),
		},
	}
	groups = append(groups, common.FlagGroup{
		GroupName: "Transform Options",
		Flags:     flags,
	})
	// output options
	flags = []common.Flag{
		{
			Name: flagTitleName,
			Help: "explicit chart title, overrides the generated one",
		},
		{
			Name: flagYMaxName,
			Help: "fixed y-axis max; values beyond it switch the renderer to autoscale",
		},
		{
			Name: flagNoLegendName,
			Help: "suppress the legend",
		},
		{
			Name: flagDryRunName,
			Help: "resolve, extract, and transform, but do not write any output file",
		},
		{
			Name: flagFormatName,
			Help: fmt.Sprintf("output format, options: %s", strings.Join(chart.FormatOptions, ", ")),
		},
		{
			Name: flagOutName,
			Help: "output file, or an existing directory to receive the generated file name",
		},
	}
	groups = append(groups, common.FlagGroup{
		GroupName: "Output Options",
		Flags:     flags,
	})
	return groups
}

func validateFlags(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		err := fmt.Errorf("at least one CSV file or directory is required")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	argsInputs = args
	// exactly one selection mode
	byIndex := cmd.Flags().Changed(flagColumnName)
	byExpr := flagExpr != ""
	byField := flagField != ""
	switch {
	case byIndex:
		if byExpr || byField || flagCategory != "" {
			err := fmt.Errorf("--%s cannot be combined with --%s, --%s, or --%s", flagColumnName, flagCategoryName, flagFieldName, flagExprName)
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return err
		}
		if flagColumn < 0 {
			err := fmt.Errorf("column index must be non-negative")
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return err
		}
	case byExpr:
		if byField {
			err := fmt.Errorf("--%s cannot be combined with --%s", flagExprName, flagFieldName)
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return err
		}
		if flagCategory == "" {
			err := fmt.Errorf("--%s requires --%s", flagExprName, flagCategoryName)
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return err
		}
	default:
		if flagCategory == "" || !byField {
			err := fmt.Errorf("select a column with --%s and --%s, with --%s, or with --%s", flagCategoryName, flagFieldName, flagColumnName, flagExprName)
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return err
		}
	}
	// confirm valid group size
	if cmd.Flags().Changed(flagAverageName) && flagAverage < 1 {
		err := fmt.Errorf("average group size must be a positive integer")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	// confirm valid smoothing algorithm
	if flagSmooth != "" && !util.StringInList(flagSmooth, transform.SmoothingOptions) {
		err := fmt.Errorf("invalid smoothing algorithm: %s, valid options are: %s", flagSmooth, strings.Join(transform.SmoothingOptions, ", "))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	// confirm valid format
	if !util.StringInList(flagFormat, chart.FormatOptions) {
		err := fmt.Errorf("invalid format: %s, valid options are: %s", flagFormat, strings.Join(chart.FormatOptions, ", "))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

func runCmd(cmd *cobra.Command, args []string) error {
	appContext := cmd.Parent().Context().Value(common.AppContext{}).(common.AppContext)
	transforms, err := transform.NewConfig(cmd.Flags().Changed(flagInvertName), flagInvert, flagAverage, flagSmooth)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	request := pipeline.Request{
		Inputs:        argsInputs,
		Ref:           selectionRef(cmd),
		Expr:          flagExpr,
		Transforms:    transforms,
		ExplicitTitle: flagTitle,
		YAxisMax:      flagYMax,
		YAxisMaxSet:   cmd.Flags().Changed(flagYMaxName),
		NoLegend:      flagNoLegend,
		DryRun:        flagDryRun,
		Format:        flagFormat,
		Output:        flagOut,
		TargetDir:     appContext.OutputDir,
	}
	result, err := pipeline.Run(request)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	printer := message.NewPrinter(language.English)
	if flagDryRun {
		printer.Printf("dry run: would write %s (%d samples across %d files)\n", result.OutputPath, result.Dataset.Samples(), result.FileCount)
	} else {
		printer.Printf("wrote %s (%d samples across %d files)\n", result.OutputPath, result.Dataset.Samples(), result.FileCount)
	}
	return nil
}

func selectionRef(cmd *cobra.Command) dstat.ColumnRef {
	if cmd.Flags().Changed(flagColumnName) {
		return dstat.NewIndexRef(flagColumn)
	}
	if flagExpr != "" {
		return dstat.ColumnRef{Category: flagCategory}
	}
	return dstat.NewFieldRef(flagCategory, flagField)
}
