package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/goldberg/audio"
	"github.com/lixenwraith/goldberg/config"
	"github.com/lixenwraith/goldberg/core"
	"github.com/lixenwraith/goldberg/engine"
	"github.com/lixenwraith/goldberg/parameter"
)

var (
	machineFlag = flag.Int("machine", 0, "Machine number to show (0 keeps the saved one)")
	rateFlag    = flag.Float64("rate", 0, "Frame rate (0 keeps the saved one)")
	startFlag   = flag.Float64("start", -1, "Seconds before the machine starts (-1 keeps the saved value)")
	stateFlag   = flag.String("state", "machine-viewer.toml", "State file")
	aspectFlag  = flag.Float64("aspect", 2, "Terminal cell height over width")
	pausedFlag  = flag.Bool("paused", false, "Start paused")
	muteFlag    = flag.Bool("mute", false, "Disable audio cues")
	debugFlag   = flag.Bool("debug", false, "Write logs to "+logDir+"/"+logFileName)
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	st, err := config.Load(*stateFlag)
	if err != nil {
		log.Printf("machine-viewer: %v", err)
	}
	if *machineFlag > 0 {
		st.MachineNumber = *machineFlag
	}
	if *rateFlag > 0 {
		st.FrameRate = *rateFlag
	}
	if *startFlag >= 0 {
		st.StartTime = *startFlag
	}
	if _, statErr := os.Stat(*stateFlag); statErr != nil {
		// First launch plays
		st.Running = true
	}
	if *pausedFlag {
		st.Running = false
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashTerminal(screen)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	cues := audio.NewCuePlayer()
	if *muteFlag {
		cues.SetMuted(true)
	} else if err := cues.Initialize(); err != nil {
		// Non-fatal, the viewer runs without sound
		log.Printf("machine-viewer: audio initialization failed: %v", err)
	}
	defer cues.Cleanup()

	clock := engine.NewPausableClock(nil)
	viewer := NewViewer(screen, clock, cues, *aspectFlag)
	viewer.Restore(st)

	run(screen, viewer)

	core.SetCrashTerminal(nil)
	screen.Fini()

	if err := config.Save(*stateFlag, viewer.State()); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to save state: %v\n", err)
	}
}

// run is the viewer loop; input arrives from a polling goroutine over a channel
func run(screen tcell.Screen, viewer *Viewer) {
	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-quit:
				return
			}
		}
	})

	viewer.Draw()
	for {
		select {
		case ev := <-eventChan:
			if !viewer.HandleEvent(ev) {
				return
			}
			viewer.Draw()

		case <-ticker.C:
			for _, e := range viewer.Tick() {
				log.Printf("machine-viewer: %s", e)
			}
			viewer.Draw()
		}
	}
}
