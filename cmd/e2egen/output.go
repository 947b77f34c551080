package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/hairizuan-noorazman/e2egen/report"
)

func init() {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}
}

// printSummary prints the run's aggregate counts to stdout.
func printSummary(s report.Summary) {
	pass := color.New(color.FgGreen).SprintFunc()
	fail := color.New(color.FgRed).SprintFunc()

	fmt.Printf("Tests: %d  Passed: %s  Failed: %s  Pass rate: %d%%\n",
		s.Total, pass(s.Passed), fail(s.Failed), s.PassRate)
	if s.DurationMs > 0 {
		fmt.Printf("Duration: %d ms\n", s.DurationMs)
	}

	if s.Failed > 0 {
		fmt.Println(fail("FAILED"))
	} else {
		fmt.Println(pass("PASSED"))
	}
}
