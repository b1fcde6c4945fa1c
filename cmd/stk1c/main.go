// Command stk1c compresses a file with the stk1 codec and reports the
// resulting size and ratio, mirroring the upstream comptest tool this
// package's algorithm was ported from.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/hidekawai/stk1"
	"github.com/hidekawai/stk1/internal/reportlog"
)

var (
	dryRun     bool
	tinyConfig bool
	maxConfig  bool
)

var rootCmd = &cobra.Command{
	Use:   "stk1c INFILE [OUTFILE]",
	Short: "compress a file with the stk1 dictionary codec",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runCompress,
}

func main() {
	rootCmd.AddCommand(batchCmd)

	flags := rootCmd.Flags()
	flags.BoolVar(&dryRun, "dry", false, "compress and verify, but do not write OUTFILE")
	flags.BoolVar(&tinyConfig, "tiny", false, "use the 16KB tiny dictionary configuration")
	flags.BoolVar(&maxConfig, "max", false, "use the maximum-window configuration")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func resolveConfig(flags *pflag.FlagSet) (stk1.Configuration, error) {
	tiny, _ := flags.GetBool("tiny")
	max, _ := flags.GetBool("max")
	switch {
	case tiny && max:
		return stk1.Configuration{}, errors.New("--tiny and --max are mutually exclusive")
	case tiny:
		return stk1.TinyConfiguration, nil
	case max:
		return stk1.MaxConfiguration, nil
	default:
		return stk1.DefaultConfiguration, nil
	}
}

func runCompress(cmd *cobra.Command, args []string) error {
	config, err := resolveConfig(cmd.Flags())
	if err != nil {
		return err
	}

	inPath := args[0]
	var outPath string
	if len(args) == 2 {
		outPath = args[1]
	} else if !dryRun {
		return errors.New("OUTFILE is required unless --dry is set")
	}

	src, err := os.ReadFile(inPath)
	if err != nil {
		return errors.Wrapf(err, "reading %s", inPath)
	}

	start := time.Now()
	dst, err := stk1.EncodeWithTest(src, config)
	elapsed := time.Since(start)
	if err != nil {
		reportlog.Failure(inPath, err)
		return errors.Wrapf(err, "compressing %s", inPath)
	}

	reportlog.Result(inPath, len(src), len(dst), elapsed.Seconds())

	if outPath != "" && !dryRun {
		if err := os.WriteFile(outPath, dst, 0o644); err != nil {
			return errors.Wrapf(err, "writing %s", outPath)
		}
	}
	return nil
}
