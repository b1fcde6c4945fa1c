package main

import (
	"os"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/hidekawai/stk1"
	"github.com/hidekawai/stk1/internal/reportlog"
)

var batchCmd = &cobra.Command{
	Use:   "batch FILE...",
	Short: "compress and verify a round trip for every FILE, without writing output",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runBatch,
}

func init() {
	batchCmd.Flags().BoolVar(&tinyConfig, "tiny", false, "use the 16KB tiny dictionary configuration")
	batchCmd.Flags().BoolVar(&maxConfig, "max", false, "use the maximum-window configuration")
}

// runBatch compresses every listed file independently and keeps going past
// per-file failures, reporting all of them together at the end instead of
// stopping at the first bad file in the list.
func runBatch(cmd *cobra.Command, args []string) error {
	config, err := resolveConfig(cmd.Flags())
	if err != nil {
		return err
	}

	var failures *multierror.Error
	succeeded := 0

	for _, path := range args {
		src, err := os.ReadFile(path)
		if err != nil {
			failures = multierror.Append(failures, errors.Wrapf(err, "reading %s", path))
			continue
		}

		start := time.Now()
		dst, err := stk1.EncodeWithTest(src, config)
		elapsed := time.Since(start)
		if err != nil {
			reportlog.Failure(path, err)
			failures = multierror.Append(failures, errors.Wrapf(err, "compressing %s", path))
			continue
		}

		reportlog.Result(path, len(src), len(dst), elapsed.Seconds())
		succeeded++
	}

	reportlog.Logger.Infof("batch complete: %d succeeded, %d failed", succeeded, len(args)-succeeded)

	if failures != nil {
		failures.ErrorFormat = func(errs []error) string {
			msg := ""
			for i, e := range errs {
				if i > 0 {
					msg += "\n"
				}
				msg += e.Error()
			}
			return msg
		}
		return failures.ErrorOrNil()
	}
	return nil
}
