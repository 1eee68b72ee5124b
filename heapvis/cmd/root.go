// Package cmd provides the command-line interface for heapvis.
package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/heapvis/accesslog"
	"github.com/sarchlab/heapvis/frame"
	"github.com/sarchlab/heapvis/hooking"
	"github.com/sarchlab/heapvis/render"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "heapvis <dump.txt>",
	Short: "heapvis renders memory access logs into a sequence of BMP frames.",
	Long: `heapvis renders memory access logs into a sequence of BMP frames ` +
		`named heap<N>.bmp in the current directory. Each line of the log ` +
		`has the form "a <buffer> <row> <col>"; a blank line ends the log. ` +
		`The frames can be combined into an animation, for example with ` +
		`"convert -delay 10 -loop 0 *.bmp video.gif".`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		stats, err := visualize(args[0], ".", cmd.OutOrStdout())
		if stats != nil {
			atexit.Register(func() {
				fmt.Fprintln(cmd.OutOrStdout(), stats.Summary())
			})
		}

		return err
	},
}

// Execute runs the root command and exits the process.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		log.Printf("Error: %v", err)
		atexit.Exit(1)
	}

	atexit.Exit(0)
}

// visualize renders the log at logPath into frames under outDir. Every
// painted access is echoed to out.
func visualize(
	logPath, outDir string,
	out io.Writer,
) (*hooking.StatsHook, error) {
	f, err := os.Open(logPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	stats := hooking.NewStatsHook()

	r := render.MakeBuilder().
		WithFrameWriter(frame.NewBMPWriter(outDir)).
		Build()
	r.AcceptHook(hooking.NewAccessLogger(log.New(out, "", 0)))
	r.AcceptHook(stats)

	err = r.Run(accesslog.NewReader(f))
	if err != nil {
		return stats, fmt.Errorf("%s: %w", logPath, err)
	}

	return stats, nil
}
