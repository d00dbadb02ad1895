package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Maneesh-s-k/networks-lab/pkg/measurement"
	"github.com/Maneesh-s-k/networks-lab/pkg/report"
	"github.com/Maneesh-s-k/networks-lab/pkg/settings"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run generates the report and returns the exit status. Failures other than
// a missing or unreadable input are not expected and panic.
func run(args []string, stdout, stderr io.Writer) int {
	defer klog.Flush()

	if len(args) > 1 {
		fmt.Fprintln(stderr, "usage: throughput-report [settings.yml]")
		return 1
	}

	// Settings parsing
	s := settings.Default()
	if len(args) == 1 {
		loaded, err := settings.Load(args[0])
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		s = loaded
	}

	err := report.Run(s, stdout)
	if err == nil {
		return 0
	}

	var notFound *measurement.FileNotFoundError
	var readErr *measurement.ReadError
	switch {
	case errors.As(err, &notFound):
		fmt.Fprintln(stderr, "\nError: Could not find a file. Make sure your CSV files are in the same directory.")
		fmt.Fprintf(stderr, "File not found: %s\n", notFound.Path)
		return 1
	case errors.As(err, &readErr):
		fmt.Fprintf(stderr, "\nAn error occurred while reading the CSV files. The file might still be corrupted: %v\n", readErr)
		return 1
	}
	klog.Errorf("report generation failed: %+v", err)
	panic(err)
}
