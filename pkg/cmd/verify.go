package cmd

import (
	"fmt"
	"math/big"
	"os"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/karamul/pkg/logic"
	"github.com/consensys/karamul/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify [flags]",
	Short: "Self-check the combinational datapath (e.g. using random inputs).",
	Long: `Self-check the combinational datapath: the prefix adder is swept
	exhaustively, whilst the multiplier is exercised on a corner set plus
	randomly sampled operands and compared against a reference product
	computed over a large prime field (which shares none of the unit's
	modular arithmetic).  Counterexamples are reported, never patched.`,
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		stats := util.NewPerfStats()
		failures := verifyAdder()
		failures += verifyMultiplier(GetUint(cmd, "samples"), GetUint64(cmd, "seed"))
		stats.Log("Verification")
		//
		if failures != 0 {
			fmt.Printf("%d failure(s)\n", failures)
			os.Exit(1)
		}
		//
		fmt.Println("OK")
	},
}

// Sweep the full 8-bit input space of the adder.
func verifyAdder() uint {
	var failures uint
	//
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			sum, carry := logic.Add8(uint8(a), uint8(b))
			//
			if sum != uint8(a+b) || carry != (a+b >= 256) {
				fmt.Printf("add8(%d, %d) = (%d, %v), expected (%d, %v)\n",
					a, b, sum, carry, uint8(a+b), a+b >= 256)
				failures++
			}
		}
	}
	//
	log.Debugf("adder sweep complete (65536 cases)")
	//
	return failures
}

// Check the multiplier on the corner set plus n random samples.
func verifyMultiplier(n uint, seed uint64) uint {
	var failures uint
	// Operand values sitting on byte and word boundaries.
	corners := []uint16{0, 1, 2, 255, 256, 257, 32767, 32768, 65534, 65535}
	//
	for _, x := range corners {
		for _, y := range corners {
			failures += checkProduct(x, y)
		}
	}
	//
	for _, p := range util.GenerateRandomOperands(n, seed) {
		failures += checkProduct(p[0], p[1])
	}
	//
	log.Debugf("multiplier sweep complete (%d random samples, seed %d)", n, seed)
	//
	return failures
}

func checkProduct(x, y uint16) uint {
	d := logic.Decompose16(x, y)
	// An 18-bit wraparound in the cross-term subtraction is well-defined
	// behaviour, but no input is known to trigger one; flag it as a design
	// note if ever observed.
	if d.P3Mult < uint32(d.P1)+uint32(d.P2) {
		log.Warnf("cross term wraps for (%d, %d): %d < %d + %d", x, y, d.P3Mult, d.P1, d.P2)
	}
	//
	if want := referenceProduct(x, y); d.Product != want {
		fmt.Printf("multiply16(%d, %d) = %d, expected %d\n", x, y, d.Product, want)
		printDecomposition(d)
		//
		return 1
	}
	//
	return 0
}

// referenceProduct computes x * y over the BLS12-377 scalar field.  Since the
// field modulus far exceeds 2^32 the result is the exact integer product,
// obtained without the fixed-width machinery under test.
func referenceProduct(x, y uint16) uint32 {
	var (
		a, b fr.Element
		bi   big.Int
	)
	//
	a.SetUint64(uint64(x))
	b.SetUint64(uint64(y))
	a.Mul(&a, &b)
	a.BigInt(&bi)
	//
	return uint32(bi.Uint64())
}

func init() {
	rootCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().Uint("samples", 1<<20, "number of random operand pairs to check")
	verifyCmd.Flags().Uint64("seed", 0, "seed for random operand generation")
}
