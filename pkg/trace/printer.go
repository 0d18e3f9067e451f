package trace

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// Print prints a trace in a human-friendly fashion, one horizontal row per
// column with ticks running left to right.
func Print(tr *Trace) {
	PrintRange(tr, 0, tr.Height())
}

// PrintRange prints the ticks in the half-open range [start, end), keeping
// the original tick numbering in the header row.
func PrintRange(tr *Trace, start int, end int) {
	rows := [][]string{tickHeader(start, end)}
	rows = append(rows, columnData(ColX, tr.X[start:end]))
	rows = append(rows, columnData(ColY, tr.Y[start:end]))
	rows = append(rows, enableData(tr.Enable[start:end]))
	//
	if tr.HasOut() {
		rows = append(rows, columnData(ColOut, tr.Out[start:end]))
	}
	//
	widths := rowWidths(rows)
	//
	printHorizontalRule(widths)
	//
	for _, r := range rows {
		printRow(r, widths)
		printHorizontalRule(widths)
	}
}

func tickHeader(start int, end int) []string {
	data := make([]string, end-start+1)
	data[0] = "#"

	for i := start; i < end; i++ {
		data[i-start+1] = strconv.Itoa(i)
	}

	return data
}

func columnData[T uint16 | uint32](name string, values []T) []string {
	data := make([]string, len(values)+1)
	data[0] = name

	for i, v := range values {
		data[i+1] = strconv.FormatUint(uint64(v), 10)
	}

	return data
}

func enableData(values []bool) []string {
	data := make([]string, len(values)+1)
	data[0] = ColEnable

	for i, v := range values {
		if v {
			data[i+1] = "1"
		} else {
			data[i+1] = "0"
		}
	}

	return data
}

func rowWidths(rows [][]string) []int {
	widths := make([]int, len(rows[0]))

	for _, row := range rows {
		for i, col := range row {
			w := utf8.RuneCountInString(col)
			widths[i] = max(w, widths[i])
		}
	}

	return widths
}

func printRow(row []string, widths []int) {
	for i, col := range row {
		fmt.Printf(" %*s |", widths[i], col)
	}

	fmt.Println()
}

func printHorizontalRule(widths []int) {
	for _, w := range widths {
		fmt.Print("-")

		for i := 0; i < w; i++ {
			fmt.Print("-")
		}
		fmt.Print("-+")
	}

	fmt.Println()
}
