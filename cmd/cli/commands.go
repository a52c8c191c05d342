package main

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"frauddash/app"
	"frauddash/domain/dataset"
	"frauddash/internal/analysis"
	"frauddash/internal/config"
	"frauddash/internal/container"
	"frauddash/internal/synth"

	"github.com/spf13/cobra"
)

// buildContainer loads configuration and applies flag overrides
func buildContainer(opts *rootOptions) (*container.Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := opts.apply(cfg); err != nil {
		return nil, err
	}
	return container.New(cfg)
}

// apply copies the root flags that were set onto cfg and revalidates it
func (o *rootOptions) apply(cfg *config.Config) error {
	if o.file != "" {
		cfg.Data.File = o.file
	}
	if o.sheet != "" {
		cfg.Data.Sheet = o.sheet
	}
	if o.flagColumn != "" {
		cfg.Data.FlagColumn = o.flagColumn
	}
	return cfg.Validate()
}

func newSummarizeCmd(opts *rootOptions) *cobra.Command {
	var sel dataset.Selection

	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Print the overview, both feature summaries and the correlation matrix",
		Long: `Run one dashboard render pass and print every section as a text table.

Example: frauddash-cli summarize --file Cleaned.csv --numerical transaction_amount --categorical device_type`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := buildContainer(opts)
			if err != nil {
				return err
			}
			dash, err := c.Dashboard.Render(cmd.Context(), sel)
			if err != nil {
				return err
			}
			return printDashboard(cmd.OutOrStdout(), dash)
		},
	}

	cmd.Flags().StringVar(&sel.Numerical, "numerical", "", "Numerical feature ("+strings.Join(dataset.NumericalFeatures, ", ")+")")
	cmd.Flags().StringVar(&sel.Categorical, "categorical", "", "Categorical feature ("+strings.Join(dataset.CategoricalFeatures, ", ")+")")
	return cmd
}

func newFeaturesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "features",
		Short: "List selectable features and whether the data file supports them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := buildContainer(opts)
			if err != nil {
				return err
			}
			features, err := c.Dashboard.Features(cmd.Context())
			if err != nil {
				return err
			}
			return printFeatures(cmd.OutOrStdout(), features)
		},
	}
}

func newGenerateCmd() *cobra.Command {
	var out string
	genConfig := synth.DefaultTransactionConfig()

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic fraud-labelled transaction table",
		Long: `Generate a deterministic transaction table with the columns the dashboard expects.

Example: frauddash-cli generate --out Cleaned.csv --rows 5000 --fraud-rate 0.1 --seed 7`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := synth.NewTransactionGenerator(genConfig).GenerateRecords()
			if err != nil {
				return err
			}
			if err := synth.WriteRecords(out, records); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d rows, %d columns)\n", out, len(records)-1, len(records[0]))
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "Cleaned.csv", "Output file (.csv or .xlsx)")
	cmd.Flags().IntVar(&genConfig.Rows, "rows", genConfig.Rows, "Number of data rows")
	cmd.Flags().Float64Var(&genConfig.FraudRate, "fraud-rate", genConfig.FraudRate, "Share of rows flagged as fraud")
	cmd.Flags().Float64Var(&genConfig.NullRate, "null-rate", genConfig.NullRate, "Share of feature cells left empty")
	cmd.Flags().Int64Var(&genConfig.Seed, "seed", genConfig.Seed, "Random seed for deterministic output")
	return cmd
}

func printDashboard(w io.Writer, dash *app.Dashboard) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	ov := dash.Overview
	fmt.Fprintf(tw, "Dataset Overview (%s)\n", ov.Source)
	fmt.Fprintf(tw, "Number of rows: %d, Number of columns: %d\n\n", ov.Rows, ov.Columns)
	fmt.Fprintln(tw, strings.Join(ov.Header, "\t"))
	for _, row := range ov.Head {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	fmt.Fprintf(tw, "\nLegitimate rows: %d, Fraud rows: %d\n\n", dash.Partitions.Legitimate, dash.Partitions.Fraud)

	fmt.Fprintf(tw, "Density Plot for %s\n", dash.Numerical.Feature)
	if dash.Numerical.Err != nil {
		fmt.Fprintf(tw, "error: %v\n", dash.Numerical.Err)
	} else {
		fmt.Fprintln(tw, "group\tn\tnulls\tmin\tmedian\tmean\tmax\tstd\tbandwidth")
		for i, g := range dash.Numerical.Series.Groups {
			bw := math.NaN()
			if i < len(dash.Numerical.Curves) && !dash.Numerical.Curves[i].Curve.IsEmpty() {
				bw = dash.Numerical.Curves[i].Curve.Bandwidth
			}
			d := analysis.Describe(g.Values)
			if d == nil {
				fmt.Fprintf(tw, "%s\t0\t%d\t-\t-\t-\t-\t-\t-\n", g.Label, g.Nulls)
				continue
			}
			fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%s\t%s\t%s\t%s\t%s\n", g.Label, len(g.Values), g.Nulls,
				num(d.Min), num(d.Median), num(d.Mean), num(d.Max), num(d.StdDev), num(bw))
		}
	}
	fmt.Fprintln(tw)

	fmt.Fprintf(tw, "%s Distribution by Fraud Status\n", dash.Categorical.Feature)
	if dash.Categorical.Err != nil {
		fmt.Fprintf(tw, "error: %v\n", dash.Categorical.Err)
	} else {
		table := dash.Categorical.Table
		header := []string{table.Column}
		for _, g := range table.Groups {
			header = append(header, string(g.Label))
		}
		fmt.Fprintln(tw, strings.Join(header, "\t"))
		for i, category := range table.Categories {
			cells := []string{category}
			for _, g := range table.Groups {
				cells = append(cells, strconv.Itoa(g.Counts[i]))
			}
			fmt.Fprintln(tw, strings.Join(cells, "\t"))
		}
		nulls := []string{"(null)"}
		for _, g := range table.Groups {
			nulls = append(nulls, strconv.Itoa(g.Nulls))
		}
		fmt.Fprintln(tw, strings.Join(nulls, "\t"))
	}
	fmt.Fprintln(tw)

	m := dash.Correlation.Matrix
	fmt.Fprintln(tw, "Feature Correlation Heatmap")
	fmt.Fprintln(tw, "\t"+strings.Join(m.Columns, "\t"))
	for i, name := range m.Columns {
		cells := []string{name}
		for _, v := range m.Values[i] {
			cells = append(cells, num(v))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}

	return tw.Flush()
}

func printFeatures(w io.Writer, features []app.FeatureStatus) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "feature\tselector\tcolumn\tavailable")
	for _, f := range features {
		column := "missing"
		if f.Present {
			column = string(f.Column)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%t\n", f.Name, f.Kind, column, f.Available)
	}
	return tw.Flush()
}

func num(v float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	return strconv.FormatFloat(v, 'f', 3, 64)
}
