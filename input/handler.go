package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// Actions is what the handler drives: the four discrete simulation signals
// plus the front-end controls. No raw device events cross this boundary.
type Actions interface {
	StartJump()
	EndJump()
	SetMousePosition(x, screenWidth float64)
	Shoot()
	ToggleMute()
	Restart()
	Quit()
}

// keyHoldGap is how long after the last repeated space key the press gesture
// is considered released. Terminals deliver no key-up events; autorepeat
// keeps the gesture alive while the key is physically down.
const keyHoldGap = 150 * time.Millisecond

// Handler translates tcell events into simulation signals. Mouse buttons map
// directly to press/release; the space key emulates press/release through
// autorepeat timing.
type Handler struct {
	actions Actions

	screenWidth  int
	targetCells  float64 // arrow-key target in cell space
	arrowStep    float64
	spaceHeld    bool
	lastSpace    time.Time
	mouseWasDown bool
}

// NewHandler creates a handler for the given screen width in cells.
func NewHandler(actions Actions, screenWidth int) *Handler {
	return &Handler{
		actions:     actions,
		screenWidth: screenWidth,
		targetCells: float64(screenWidth) / 4,
		arrowStep:   float64(screenWidth) / 24,
	}
}

// Resize updates the cell-space width used for position mapping.
func (h *Handler) Resize(screenWidth int) {
	h.screenWidth = screenWidth
}

// HandleEvent processes one terminal event. Returns false to quit.
func (h *Handler) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKey(ev)
	case *tcell.EventMouse:
		h.handleMouse(ev)
	case *tcell.EventResize:
		w, _ := ev.Size()
		h.Resize(w)
	}
	return true
}

func (h *Handler) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		h.actions.Quit()
		return false
	case tcell.KeyLeft:
		h.targetCells -= h.arrowStep
		if h.targetCells < 0 {
			h.targetCells = 0
		}
		h.actions.SetMousePosition(h.targetCells, float64(h.screenWidth))
	case tcell.KeyRight:
		h.targetCells += h.arrowStep
		if h.targetCells > float64(h.screenWidth) {
			h.targetCells = float64(h.screenWidth)
		}
		h.actions.SetMousePosition(h.targetCells, float64(h.screenWidth))
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			if !h.spaceHeld {
				h.spaceHeld = true
				h.actions.StartJump()
			}
			h.lastSpace = ev.When()
		case 'f':
			h.actions.Shoot()
		case 'm':
			h.actions.ToggleMute()
		case 'r':
			h.actions.Restart()
		case 'q':
			h.actions.Quit()
			return false
		}
	}
	return true
}

func (h *Handler) handleMouse(ev *tcell.EventMouse) {
	x, _ := ev.Position()
	h.actions.SetMousePosition(float64(x), float64(h.screenWidth))

	down := ev.Buttons()&tcell.Button1 != 0
	if down && !h.mouseWasDown {
		h.actions.StartJump()
	}
	if !down && h.mouseWasDown {
		h.actions.EndJump()
	}
	h.mouseWasDown = down

	if ev.Buttons()&tcell.Button2 != 0 {
		h.actions.Shoot()
	}
}

// Tick releases the emulated space hold once autorepeat stops arriving.
// Called once per frame with the current time.
func (h *Handler) Tick(now time.Time) {
	if h.spaceHeld && now.Sub(h.lastSpace) > keyHoldGap {
		h.spaceHeld = false
		h.actions.EndJump()
	}
}
