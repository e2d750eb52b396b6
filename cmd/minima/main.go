// Command minima runs the repository's solvers from the command line: the
// minimum point cover over a segment file, the triangle minimum path sum on
// generated input, the shortest full-alphabet window, and the odd recurrence
// term. All orchestration (file paths, exit codes, sink construction) lives
// here; the solver packages stay pure.
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/lowerbound/minima/alphaseg"
	"github.com/lowerbound/minima/gen"
	"github.com/lowerbound/minima/segcover"
	"github.com/lowerbound/minima/segio"
	"github.com/lowerbound/minima/trace"
	"github.com/lowerbound/minima/tripath"
)

var (
	// Persistent flags.
	verbose    bool
	logFile    string
	configPath string

	// Built once in PersistentPreRunE, injected into every solver call.
	sink trace.Sink
)

var rootCmd = &cobra.Command{
	Use:   "minima",
	Short: "minima - minimum point cover and minimum path sum solvers",
	Long: `minima bundles small combinatorial solvers behind one binary:

  cover     minimum set of points covering every segment in a file
  triangle  minimum top-to-bottom path sum over a generated triangle
  alphaseg  shortest window of a code sequence containing all 26 letters
  oddterm   k-th odd value of f(n) = 5*f(n-1) + f(n-2)

Progress is reported through a timestamped console/file trace; pass
--log-file for a dual sink or a YAML config for full control.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := defaultConfig()
		if configPath != "" {
			var err error
			if cfg, err = loadConfig(configPath); err != nil {
				return err
			}
		}
		// Flags take precedence over the config file.
		if verbose {
			cfg.Logging.Level = "debug"
		}
		if logFile != "" {
			cfg.Logging.File = logFile
		}

		var err error
		sink, err = buildSink(cfg.Logging)

		return err
	},
}

// buildSink maps a LoggingConfig onto one of the trace sink variants.
func buildSink(cfg LoggingConfig) (trace.Sink, error) {
	debug := cfg.Level == "debug"
	switch {
	case cfg.File != "" && cfg.Console:
		return trace.NewDual(cfg.File, debug)
	case cfg.File != "":
		return trace.NewFile(cfg.File, debug)
	case cfg.Console:
		return trace.NewConsole(debug), nil
	default:
		return trace.Nop(), nil
	}
}

var coverInput string

var coverCmd = &cobra.Command{
	Use:   "cover",
	Short: "Compute the minimum point cover for a segment file",
	RunE: func(cmd *cobra.Command, args []string) error {
		segments, err := segio.LoadIntervals(coverInput, sink)
		if err != nil {
			return err
		}

		res, err := segcover.Cover(segments, sink)
		if err != nil {
			return err
		}

		fmt.Printf("segments: %d\npoints:   %d\nlocations: %v\n", len(segments), res.Count, res.Points)

		return nil
	},
}

var (
	triRows int
	triSeed int64
	triMin  int
	triMax  int
)

var triangleCmd = &cobra.Command{
	Use:   "triangle",
	Short: "Solve the minimum path sum over a generated triangle",
	RunE: func(cmd *cobra.Command, args []string) error {
		if triRows < 1 {
			return fmt.Errorf("rows must be at least 1, got %d", triRows)
		}
		if triMin > triMax {
			return fmt.Errorf("min %d exceeds max %d", triMin, triMax)
		}

		rng := rand.New(rand.NewSource(triSeed))
		tri := gen.Triangle(rng, triRows, triMin, triMax)

		sol := tripath.Solve(tri, sink)
		if sol.Failed() {
			return fmt.Errorf("triangle computation failed")
		}

		fmt.Printf("rows:  %d\ntotal: %d\npath:  %v\n", triRows, sol.Total, sol.Path)

		return nil
	},
}

var alphasegInput string

var alphasegCmd = &cobra.Command{
	Use:   "alphaseg",
	Short: "Find the shortest window containing the full alphabet",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(alphasegInput)
		if err != nil {
			return err
		}
		defer f.Close()

		seq, err := segio.ReadSequence(f, sink)
		if err != nil {
			return err
		}

		length, err := alphaseg.Shortest(seq, sink)
		if err != nil {
			fmt.Println("NONE")

			return nil
		}
		fmt.Println(length)

		return nil
	},
}

var oddIndex int

var oddtermCmd = &cobra.Command{
	Use:   "oddterm",
	Short: "Print the k-th odd value of f(n) = 5*f(n-1) + f(n-2)",
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := alphaseg.OddTerm(oddIndex, sink)
		if err != nil {
			return err
		}
		fmt.Println(v)

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "emit debug-level trace output")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "mirror trace output to this file")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")

	coverCmd.Flags().StringVarP(&coverInput, "input", "i", "", "segment input file")
	_ = coverCmd.MarkFlagRequired("input")

	triangleCmd.Flags().IntVar(&triRows, "rows", 10, "triangle rows")
	triangleCmd.Flags().Int64Var(&triSeed, "seed", 1, "generator seed")
	triangleCmd.Flags().IntVar(&triMin, "min", -10, "minimum cell value")
	triangleCmd.Flags().IntVar(&triMax, "max", 10, "maximum cell value")

	alphasegCmd.Flags().StringVarP(&alphasegInput, "input", "i", "", "sequence input file")
	_ = alphasegCmd.MarkFlagRequired("input")

	oddtermCmd.Flags().IntVarP(&oddIndex, "index", "k", 39, "0-based odd-term index")

	rootCmd.AddCommand(coverCmd, triangleCmd, alphasegCmd, oddtermCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
