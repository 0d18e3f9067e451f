package cmd

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/consensys/karamul/pkg/sim"
	"github.com/consensys/karamul/pkg/trace"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/sha3"
)

// simulateCmd represents the simulate command
var simulateCmd = &cobra.Command{
	Use:   "simulate [flags] trace_file",
	Short: "Run a stimulus trace through the registered multiplier.",
	Long: `Run a stimulus trace through the registered multiplier, one tick
	per row.  Traces can be given either as JSON or binary cbor files.  The
	recorded trace (stimulus plus output column) is printed, or written to
	--output with the format chosen by its extension.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		configureLogging(cmd)
		//
		tr := readTraceFile(args[0])
		recorded := sim.Record(tr)
		//
		if GetFlag(cmd, "digest") {
			fmt.Printf("%x\n", outputDigest(recorded.Out))
		}
		//
		if output := GetString(cmd, "output"); output != "" {
			writeTraceFile(recorded, output)
		} else if !GetFlag(cmd, "quiet") {
			trace.Print(recorded)
		}
	},
}

// outputDigest produces a signature of the output column, for comparing
// simulation runs without storing the full trace.
func outputDigest(out []uint32) [32]byte {
	bytes := make([]byte, 4*len(out))
	//
	for i, v := range out {
		binary.BigEndian.PutUint32(bytes[4*i:], v)
	}
	//
	return sha3.Sum256(bytes)
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	simulateCmd.Flags().StringP("output", "o", "", "write the recorded trace to this file")
	simulateCmd.Flags().Bool("digest", false, "print a SHA3-256 signature of the output column")
	simulateCmd.Flags().BoolP("quiet", "q", false, "suppress the trace printout")
}
