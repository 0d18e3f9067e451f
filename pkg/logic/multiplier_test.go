package logic

import (
	"testing"

	"github.com/consensys/karamul/pkg/util"
)

// Operand values sitting on byte and word boundaries.
var corners = []uint16{0, 1, 2, 255, 256, 257, 4660, 22136, 32767, 32768, 65534, 65535}

func Test_Mul16_00(t *testing.T) {
	checkMul16(t, 0, 0)
	checkMul16(t, 65535, 65535)
	checkMul16(t, 1, 65535)
	checkMul16(t, 0, 65535)
	checkMul16(t, 1234, 5678)
	checkMul16(t, 3647, 6738)
}

func Test_Mul16_01(t *testing.T) {
	for _, x := range corners {
		for _, y := range corners {
			checkMul16(t, x, y)
		}
	}
}

func Test_Mul16_02(t *testing.T) {
	// Random sweep across the full input space.
	for _, p := range util.GenerateRandomOperands(1<<16, 42) {
		checkMul16(t, p[0], p[1])
	}
}

func Test_Mul16_03(t *testing.T) {
	// The 18-bit cross-term subtraction must never underflow.  Any input for
	// which it does is surfaced here as a counterexample, not patched over.
	check := func(x, y uint16) {
		d := Decompose16(x, y)
		if d.P3Mult < uint32(d.P1)+uint32(d.P2) {
			t.Errorf("cross term wraps for (%d, %d): %d < %d + %d",
				x, y, d.P3Mult, d.P1, d.P2)
		}
	}
	//
	for _, x := range corners {
		for _, y := range corners {
			check(x, y)
		}
	}
	//
	for _, p := range util.GenerateRandomOperands(1<<16, 7) {
		check(p[0], p[1])
	}
}

func Test_Decompose16_00(t *testing.T) {
	// Hand-computed datapath for 0x1234 * 0x5678.
	d := Decompose16(0x1234, 0x5678)
	//
	if d.XHi != 0x12 || d.XLo != 0x34 || d.YHi != 0x56 || d.YLo != 0x78 {
		t.Errorf("unexpected operand split: %+v", d)
	}
	//
	if d.P1 != 1548 || d.P2 != 6240 {
		t.Errorf("unexpected partial products: p1=%d, p2=%d", d.P1, d.P2)
	}
	//
	if d.ABSum != 70 || d.CDSum != 206 {
		t.Errorf("unexpected byte sums: ab=%d, cd=%d", d.ABSum, d.CDSum)
	}
	//
	if d.P3Mult != 14420 || d.P3 != 6632 {
		t.Errorf("unexpected cross term: p3mult=%d, p3=%d", d.P3Mult, d.P3)
	}
	//
	if d.Product != 103153760 {
		t.Errorf("unexpected product: %d", d.Product)
	}
}

func Test_Decompose16_01(t *testing.T) {
	// Both byte sums carry, exercising bit 8 of the 9-bit sums.
	d := Decompose16(0xFFFF, 0xFFFF)
	//
	if d.ABSum != 510 || d.CDSum != 510 {
		t.Errorf("unexpected byte sums: ab=%d, cd=%d", d.ABSum, d.CDSum)
	}
	//
	if d.P3Mult != 260100 || d.P3 != 130050 {
		t.Errorf("unexpected cross term: p3mult=%d, p3=%d", d.P3Mult, d.P3)
	}
	//
	if d.Product != 4294836225 {
		t.Errorf("unexpected product: %d", d.Product)
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

func checkMul16(t *testing.T, x uint16, y uint16) {
	got := Multiply16(x, y)
	want := uint32(x) * uint32(y)
	//
	if got != want {
		t.Errorf("Multiply16(%d, %d) was %d, expected %d", x, y, got, want)
	}
}
