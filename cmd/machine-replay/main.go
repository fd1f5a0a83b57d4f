package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/lixenwraith/goldberg/config"
	"github.com/lixenwraith/goldberg/machines"
	"github.com/lixenwraith/goldberg/parameter"
)

var (
	machineFlag = flag.Int("machine", parameter.DefaultMachineNumber, "Machine number (0 replays every machine)")
	rateFlag    = flag.Float64("rate", parameter.DefaultFrameRate, "Frame rate")
	secondsFlag = flag.Float64("seconds", 10, "Machine time to replay")
	trackFlag   = flag.String("track", "ball1", "Component whose height is plotted")
	heightFlag  = flag.Int("height", 12, "Plot height in rows")
	widthFlag   = flag.Int("width", 100, "Plot width in columns")
	checkFlag   = flag.Int("check", 30, "Determinism checkpoint interval in frames (0 skips the check)")
	verboseFlag = flag.Bool("v", false, "Log to stderr")
)

func main() {
	flag.Parse()
	log.SetOutput(os.Stderr)
	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	if !config.ValidFrameRate(*rateFlag) {
		fmt.Fprintf(os.Stderr, "Invalid frame rate %v\n", *rateFlag)
		os.Exit(2)
	}
	frames := int(*secondsFlag * *rateFlag)

	numbers := []int{*machineFlag}
	if *machineFlag == 0 {
		numbers = machines.Numbers()
	}

	failed := false
	for _, n := range numbers {
		if !replay(n, frames) {
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

// replay prints the report for one machine and reports whether it passed
func replay(number, frames int) bool {
	fmt.Printf("== machine %d, %d frames at %g fps ==\n", number, frames, *rateFlag)

	drives, err := DriveReport(number)
	if err != nil {
		fmt.Printf("drive graph: %v\n", err)
		return false
	}
	fmt.Print(drives)

	tr, err := Run(number, *rateFlag, frames, *trackFlag)
	if err != nil {
		fmt.Printf("trace: %v\n", err)
		return false
	}
	fmt.Println(tr.Plot(*heightFlag, *widthFlag))
	fmt.Println()
	fmt.Print(tr.EventLog())
	fmt.Println(strings.Join(tr.Metrics.Lines(), "\n"))

	if *checkFlag <= 0 {
		return true
	}
	mismatches := CheckDeterminism(number, *rateFlag, frames, *checkFlag)
	for _, m := range mismatches {
		fmt.Printf("determinism: %s\n", m)
	}
	if len(mismatches) == 0 {
		fmt.Println("determinism: ok")
	}
	return len(mismatches) == 0
}
