package cmd

import (
	"fmt"
	"os"
	"path"
	"strconv"

	"github.com/consensys/karamul/pkg/trace"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or panic if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected uint, or panic if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint64 gets an expected uint64, or panic if an error arises.
func GetUint64(cmd *cobra.Command, flag string) uint64 {
	r, err := cmd.Flags().GetUint64(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string, or panic if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Configure the log level from the persistent verbosity flag.
func configureLogging(cmd *cobra.Command) {
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
}

// Parse a 16-bit operand given on the command line, either in decimal or
// (with an 0x prefix) in hexadecimal.
func parseOperand(arg string) uint16 {
	v, err := strconv.ParseUint(arg, 0, 16)
	if err != nil {
		fmt.Printf("invalid 16-bit operand %s: %s\n", arg, err)
		os.Exit(2)
	}
	// unreachable on error
	return uint16(v)
}

// Parse a trace file using a parser based on the extension of the filename.
func readTraceFile(filename string) *trace.Trace {
	bytes, err := os.ReadFile(filename)
	if err == nil {
		var tr *trace.Trace
		// Check file extension
		switch path.Ext(filename) {
		case ".json":
			tr, err = trace.FromJsonBytes(bytes)
		case ".cbor":
			tr, err = trace.FromCborBytes(bytes)
		default:
			err = fmt.Errorf("unknown trace file format: %s", path.Ext(filename))
		}
		//
		if err == nil {
			log.Debugf("read %d ticks from %s", tr.Height(), filename)
			return tr
		}
	}
	// Handle error
	fmt.Println(err)
	os.Exit(2)
	// unreachable
	return nil
}

// Write a trace file using an encoder based on the extension of the filename.
func writeTraceFile(tr *trace.Trace, filename string) {
	var (
		bytes []byte
		err   error
	)
	// Check file extension
	switch path.Ext(filename) {
	case ".json":
		bytes, err = trace.ToJsonBytes(tr)
	case ".cbor":
		bytes, err = trace.ToCborBytes(tr)
	default:
		err = fmt.Errorf("unknown trace file format: %s", path.Ext(filename))
	}
	//
	if err == nil {
		err = os.WriteFile(filename, bytes, 0644)
	}
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	log.Debugf("wrote %d ticks to %s", tr.Height(), filename)
}
