package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/bounce-fighter/audio"
	"github.com/lixenwraith/bounce-fighter/config"
	"github.com/lixenwraith/bounce-fighter/constants"
	"github.com/lixenwraith/bounce-fighter/core"
	"github.com/lixenwraith/bounce-fighter/engine"
	"github.com/lixenwraith/bounce-fighter/input"
	"github.com/lixenwraith/bounce-fighter/render"
)

var (
	configFlag = flag.String("config", "", "Path to a YAML tunables file")
	muteFlag   = flag.Bool("mute", false, "Start with audio muted")
	seedFlag   = flag.Int64("seed", 0, "RNG seed (0 = time-based)")
)

// actions adapts input signals onto the orchestrator and loop control.
type actions struct {
	orch *engine.Orchestrator
	quit bool
}

func (a *actions) StartJump() { a.orch.StartJump() }
func (a *actions) EndJump()   { a.orch.EndJump() }
func (a *actions) Shoot()     { a.orch.Shoot() }

func (a *actions) SetMousePosition(x, screenWidth float64) { a.orch.SetMousePosition(x, screenWidth) }

func (a *actions) ToggleMute() { a.orch.ToggleMute() }
func (a *actions) Restart()    { a.orch.Reset() }
func (a *actions) Quit()       { a.quit = true }

func main() {
	flag.Parse()

	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
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
	screen.EnableMouse()
	defer screen.Fini()

	// Panic recovery: restore the terminal before printing the trace
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nBOUNCE-FIGHTER CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	// Audio is optional: a failed backend degrades to silence
	var sound core.SoundPlayer
	sm := audio.NewSoundManager()
	if err := sm.Initialize(); err != nil {
		sound = core.NopPlayer{}
	} else {
		sm.SetMuted(*muteFlag)
		defer sm.Cleanup()
		sound = sm
	}

	orch := engine.NewOrchestrator(cfg, engine.NewMonotonicTimeProvider(), seed, sound)

	width, height := screen.Size()
	renderer := render.NewRenderer(cfg, width, height)

	act := &actions{orch: orch}
	handler := input.NewHandler(act, width)

	eventChan := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	lastFrame := time.Now()

	for !act.quit {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return
			}
			if resize, isResize := ev.(*tcell.EventResize); isResize {
				w, h := resize.Size()
				renderer.Resize(w, h)
				screen.Sync()
			}
			if !handler.HandleEvent(ev) {
				return
			}

		case now := <-frameTicker.C:
			handler.Tick(now)
			dt := now.Sub(lastFrame)
			lastFrame = now
			orch.Update(dt)
			renderer.Draw(screen, orch.Snapshot())
		}
	}
}
