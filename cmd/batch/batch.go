// Package batch is a subcommand of the root command. It renders several
// charts from one YAML definition file.
package batch

// Copyright (C) 2025 dstatplot authors
// SPDX-License-Identifier: BSD-3-Clause

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"dstatplot/internal/chart"
	"dstatplot/internal/common"
	"dstatplot/internal/dstat"
	"dstatplot/internal/pipeline"
	"dstatplot/internal/transform"
	"dstatplot/internal/util"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v2"
)

const cmdName = "batch"

var examples = []string{
	fmt.Sprintf("  Render every chart in a definition file:  $ %s %s --config charts.yaml", common.AppName, cmdName),
}

var Cmd = &cobra.Command{
	Use:           cmdName,
	Short:         "Render several charts from a YAML definition file",
	Long:          "",
	Example:       strings.Join(examples, "\n"),
	RunE:          runCmd,
	PreRunE:       validateFlags,
	GroupID:       "primary",
	SilenceErrors: true,
}

var flagConfig string

const flagConfigName = "config"

func init() {
	Cmd.Flags().StringVar(&flagConfig, flagConfigName, "", "YAML chart definition file")
	_ = Cmd.MarkFlagRequired(flagConfigName)
}

// ChartDefinition is one chart entry in the YAML definition file. Optional
// numeric knobs are pointers so an absent key can be told apart from zero.
type ChartDefinition struct {
	Category string   `yaml:"category"`
	Field    string   `yaml:"field"`
	Column   *int     `yaml:"column"`
	Expr     string   `yaml:"expr"`
	Inputs   []string `yaml:"inputs"`
	Invert   *float64 `yaml:"invert"`
	Average  int      `yaml:"average"`
	Smooth   string   `yaml:"smooth"`
	Title    string   `yaml:"title"`
	YMax     *float64 `yaml:"ymax"`
	NoLegend bool     `yaml:"nolegend"`
	Format   string   `yaml:"format"`
	Out      string   `yaml:"out"`
}

// Definition is the YAML definition file: a list of charts plus default
// inputs applied to charts that name none.
type Definition struct {
	Inputs []string          `yaml:"inputs"`
	Charts []ChartDefinition `yaml:"charts"`
}

func validateFlags(cmd *cobra.Command, args []string) error {
	exists, err := util.FileExists(flagConfig)
	if err == nil && !exists {
		err = fmt.Errorf("config file not found: %s", flagConfig)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

func runCmd(cmd *cobra.Command, args []string) error {
	appContext := cmd.Parent().Context().Value(common.AppContext{}).(common.AppContext)
	definition, err := loadDefinition(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	if len(definition.Charts) == 0 {
		err := fmt.Errorf("no charts defined in %s", flagConfig)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	printer := message.NewPrinter(language.English)
	for i, def := range definition.Charts {
		request, err := def.toRequest(definition.Inputs, appContext.OutputDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: chart %d: %v\n", i+1, err)
			return err
		}
		slog.Info("rendering batch chart", slog.Int("chart", i+1), slog.String("prefix", request.Prefix()))
		result, err := pipeline.Run(request)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: chart %d: %v\n", i+1, err)
			return err
		}
		printer.Printf("wrote %s (%d samples across %d files)\n", result.OutputPath, result.Dataset.Samples(), result.FileCount)
	}
	return nil
}

func loadDefinition(path string) (Definition, error) {
	var definition Definition
	content, err := os.ReadFile(path) // #nosec G304
	if err != nil {
		return definition, fmt.Errorf("failed to read config file: %w", err)
	}
	if err = yaml.UnmarshalStrict(content, &definition); err != nil {
		return definition, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return definition, nil
}

func (def ChartDefinition) toRequest(defaultInputs []string, targetDir string) (pipeline.Request, error) {
	inputs := def.Inputs
	if len(inputs) == 0 {
		inputs = defaultInputs
	}
	if len(inputs) == 0 {
		return pipeline.Request{}, fmt.Errorf("no inputs given and no top-level inputs to fall back on")
	}
	var ref dstat.ColumnRef
	switch {
	case def.Column != nil:
		if def.Category != "" || def.Field != "" || def.Expr != "" {
			return pipeline.Request{}, fmt.Errorf("column cannot be combined with category, field, or expr")
		}
		ref = dstat.NewIndexRef(*def.Column)
	case def.Expr != "":
		if def.Category == "" || def.Field != "" {
			return pipeline.Request{}, fmt.Errorf("expr requires a category and no field")
		}
		ref = dstat.ColumnRef{Category: def.Category}
	case def.Category != "" && def.Field != "":
		ref = dstat.NewFieldRef(def.Category, def.Field)
	default:
		return pipeline.Request{}, fmt.Errorf("select a column with category+field, column, or category+expr")
	}
	var pivot float64
	if def.Invert != nil {
		pivot = *def.Invert
	}
	transforms, err := transform.NewConfig(def.Invert != nil, pivot, def.Average, def.Smooth)
	if err != nil {
		return pipeline.Request{}, err
	}
	format := def.Format
	if format == "" {
		format = chart.FormatPNG
	} else if !util.StringInList(format, chart.FormatOptions) {
		return pipeline.Request{}, fmt.Errorf("invalid format: %s, valid options are: %s", format, strings.Join(chart.FormatOptions, ", "))
	}
	var yMax float64
	if def.YMax != nil {
		yMax = *def.YMax
	}
	return pipeline.Request{
		Inputs:        inputs,
		Ref:           ref,
		Expr:          def.Expr,
		Transforms:    transforms,
		ExplicitTitle: def.Title,
		YAxisMax:      yMax,
		YAxisMaxSet:   def.YMax != nil,
		NoLegend:      def.NoLegend,
		Format:        format,
		Output:        def.Out,
		TargetDir:     targetDir,
	}, nil
}
