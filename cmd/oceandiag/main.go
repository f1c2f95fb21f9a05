package main

import (
	"fmt"
	"os"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/oceandiag/internal/compare"
	"github.com/san-kum/oceandiag/internal/config"
	"github.com/san-kum/oceandiag/internal/dataset"
	"github.com/san-kum/oceandiag/internal/geo"
	"github.com/spf13/cobra"
)

var configFile string

// main registers the oceandiag commands and executes the root command.
// It exits the process with status 1 if command execution returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:          "oceandiag",
		Short:        "sea surface salinity model-observation comparison figures",
		SilenceUsage: true,
	}

	annualCmd := &cobra.Command{
		Use:   "annual [model1] [model2|''] [obs] [var] [obs_var] [outdir] [projection] [latmin,latmax] [lonmin,lonmax]",
		Short: "render annual mean comparison figure",
		Args:  cobra.ExactArgs(9),
		RunE:  runAnnual,
	}
	annualCmd.Flags().StringVar(&configFile, "config", "", "render options file (yaml)")

	seasonalCmd := &cobra.Command{
		Use:   "seasonal [model1] [model2|''] [obs] [var] [obs_var] [outdir] [projection] [latmin,latmax] [lonmin,lonmax] [season]",
		Short: "render seasonal mean comparison figure",
		Args:  cobra.ExactArgs(10),
		RunE:  runSeasonal,
	}
	seasonalCmd.Flags().StringVar(&configFile, "config", "", "render options file (yaml)")

	infoCmd := &cobra.Command{
		Use:   "info [dataset]",
		Short: "list dataset variables and dimensions",
		Args:  cobra.ExactArgs(1),
		RunE:  describeDataset,
	}

	previewCmd := &cobra.Command{
		Use:   "preview [dataset] [var]",
		Short: "terminal zonal mean quick look",
		Args:  cobra.ExactArgs(2),
		RunE:  previewField,
	}

	projectionsCmd := &cobra.Command{
		Use:   "projections",
		Short: "list recognized projections",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("available projections:")
			for _, name := range geo.Names() {
				fmt.Printf("  %s\n", name)
			}
			return nil
		},
	}

	rootCmd.AddCommand(annualCmd, seasonalCmd, infoCmd, previewCmd, projectionsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runAnnual(cmd *cobra.Command, args []string) error {
	job, err := newJob(compare.Annual, args)
	if err != nil {
		return err
	}
	_, err = job.Run()
	return err
}

func runSeasonal(cmd *cobra.Command, args []string) error {
	job, err := newJob(compare.Seasonal, args)
	if err != nil {
		return err
	}
	job.Season = args[9]
	_, err = job.Run()
	return err
}

func newJob(mode compare.Mode, args []string) (*compare.Job, error) {
	opts := config.Default()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		opts = loaded
	}

	return &compare.Job{
		Mode:       mode,
		Model1:     args[0],
		Model2:     args[1],
		Obs:        args[2],
		Var:        args[3],
		ObsVar:     args[4],
		OutDir:     args[5],
		Projection: args[6],
		LatRange:   args[7],
		LonRange:   args[8],
		Opts:       opts,
		Stdout:     os.Stdout,
	}, nil
}

func describeDataset(cmd *cobra.Command, args []string) error {
	ds, err := dataset.Open(args[0])
	if err != nil {
		return err
	}
	defer ds.Close()

	fmt.Printf("dataset: %s\n\n", args[0])
	return ds.Describe(os.Stdout)
}

func previewField(cmd *cobra.Command, args []string) error {
	ds, err := dataset.Open(args[0])
	if err != nil {
		return err
	}
	defer ds.Close()

	f, err := ds.Field(args[1])
	if err != nil {
		return err
	}

	means := f.ZonalMean()
	if len(means) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("zonal mean of %s (south to north)\n\n", args[1])
	graph := asciigraph.Plot(means,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("%s zonal mean", args[1])),
	)
	fmt.Println(graph)

	return nil
}
