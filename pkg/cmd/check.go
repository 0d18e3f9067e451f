package cmd

import (
	"fmt"
	"os"

	"github.com/consensys/karamul/pkg/sim"
	"github.com/consensys/karamul/pkg/trace"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [flags] trace_file",
	Short: "Check a recorded trace against the registered multiplier.",
	Long: `Check a recorded trace against the registered multiplier.  The
	trace must carry an OUT column; the stimulus is re-simulated and the
	simulated register contents compared against OUT on every tick.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		configureLogging(cmd)
		//
		tr := readTraceFile(args[0])
		if !tr.HasOut() {
			fmt.Printf("trace %s carries no %s column to check against\n", args[0], trace.ColOut)
			os.Exit(2)
		}
		//
		out := sim.Run(tr)
		//
		for i := range out {
			if out[i] != tr.Out[i] {
				reportDivergence(tr, out[i], i, GetUint(cmd, "report-context"))
				os.Exit(1)
			}
		}
		//
		fmt.Printf("trace accepted (%d ticks)\n", tr.Height())
	},
}

// Report the first divergent tick, along with a window of surrounding rows
// for context.
func reportDivergence(tr *trace.Trace, simulated uint32, tick int, radius uint) {
	fmt.Printf("tick %d: simulated %d, but trace records %d (x=%d, y=%d, en=%v)\n",
		tick, simulated, tr.Out[tick], tr.X[tick], tr.Y[tick], tr.Enable[tick])
	// Clip the context window to the terminal, where applicable.
	radius = min(radius, maxContext())
	start := max(tick-int(radius), 0)
	end := min(tick+int(radius)+1, tr.Height())
	//
	trace.PrintRange(tr, start, end)
}

// maxContext bounds the context radius such that the printed table fits the
// terminal width.  Each tick occupies at most 13 characters (a 32-bit value
// plus padding), with one extra cell for the column names.
func maxContext() uint {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return ^uint(0)
	}
	//
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 26 {
		return ^uint(0)
	}
	//
	return uint((width - 13) / 13 / 2)
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().Uint("report-context", 2, "how many surrounding ticks to print on divergence")
}
