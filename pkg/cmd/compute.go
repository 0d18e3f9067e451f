package cmd

import (
	"fmt"
	"os"

	"github.com/consensys/karamul/pkg/logic"
	"github.com/spf13/cobra"
)

// computeCmd represents the compute command
var computeCmd = &cobra.Command{
	Use:   "compute [flags] x y",
	Short: "Compute the product of two 16-bit operands.",
	Long: `Compute the 32-bit product of two 16-bit operands using the
	combinational datapath.  Operands are given in decimal, or in
	hexadecimal with an 0x prefix.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		configureLogging(cmd)
		//
		x := parseOperand(args[0])
		y := parseOperand(args[1])
		//
		d := logic.Decompose16(x, y)
		//
		if GetFlag(cmd, "expand") {
			printDecomposition(d)
		}
		//
		fmt.Printf("0x%08X (%d)\n", d.Product, d.Product)
	},
}

// Print every intermediate term of the datapath, one per line.
func printDecomposition(d logic.Decomposition) {
	fmt.Printf("x_hi    = 0x%02X, x_lo = 0x%02X\n", d.XHi, d.XLo)
	fmt.Printf("y_hi    = 0x%02X, y_lo = 0x%02X\n", d.YHi, d.YLo)
	fmt.Printf("p1      = 0x%04X (%d)\n", d.P1, d.P1)
	fmt.Printf("p2      = 0x%04X (%d)\n", d.P2, d.P2)
	fmt.Printf("ab_sum  = 0x%03X (%d)\n", d.ABSum, d.ABSum)
	fmt.Printf("cd_sum  = 0x%03X (%d)\n", d.CDSum, d.CDSum)
	fmt.Printf("p3_mult = 0x%05X (%d)\n", d.P3Mult, d.P3Mult)
	fmt.Printf("p3      = 0x%05X (%d)\n", d.P3, d.P3)
}

func init() {
	rootCmd.AddCommand(computeCmd)
	computeCmd.Flags().Bool("expand", false, "print the intermediate datapath terms")
}
