package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/bounce-fighter/config"
	"github.com/lixenwraith/bounce-fighter/engine"
)

// Renderer maps the simulation's world space onto terminal cells and draws
// one frame from a snapshot. It never mutates simulation state.
type Renderer struct {
	cfg    *config.Tunables
	bg     *Background
	width  int
	height int
}

// NewRenderer creates a renderer for the current screen size.
func NewRenderer(cfg *config.Tunables, width, height int) *Renderer {
	return &Renderer{
		cfg:    cfg,
		bg:     NewBackground(width, height),
		width:  width,
		height: height,
	}
}

// Resize adapts the mapping to a new terminal size.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
	r.bg.Resize(width, height)
}

// cell converts world coordinates to a terminal cell.
func (r *Renderer) cell(wx, wy float64) (int, int) {
	x := int(wx / r.cfg.WorldWidth * float64(r.width))
	y := int(wy / r.cfg.WorldHeight * float64(r.height))
	return x, y
}

// Draw renders one frame.
func (r *Renderer) Draw(screen tcell.Screen, snap engine.Snapshot) {
	screen.Clear()

	_, groundRow := r.cell(0, r.cfg.FloorY)
	if groundRow >= r.height {
		groundRow = r.height - 1
	}
	r.bg.Draw(screen, snap.FrameNumber, groundRow+1)

	r.drawLasers(screen, snap)
	r.drawProjectiles(screen, snap)
	r.drawPlayer(screen, snap)
	r.drawEnemy(screen, snap)
	r.drawHUD(screen, snap)

	if snap.GameOver {
		r.drawGameOver(screen, snap)
	}

	screen.Show()
}

// drawBody renders a filled block around a world-space center. Growth and
// squash-stretch scale the block extents.
func (r *Renderer) drawBody(screen tcell.Screen, wx, wy, size, scaleX, scaleY float64, glyph rune, style tcell.Style) {
	halfW := size / 2 * scaleX
	halfH := size / 2 * scaleY
	x0, y0 := r.cell(wx-halfW, wy-halfH)
	x1, y1 := r.cell(wx+halfW, wy+halfH)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if x < 0 || x >= r.width || y < 0 || y >= r.height {
				continue
			}
			screen.SetContent(x, y, glyph, nil, style)
		}
	}
}

func (r *Renderer) drawPlayer(screen tcell.Screen, snap engine.Snapshot) {
	style := tcell.StyleDefault.Foreground(tcell.ColorAqua)
	r.drawBody(screen, snap.Player.Pos.X, snap.Player.Pos.Y,
		r.cfg.PlayerSize*snap.PlayerScale, snap.Player.ScaleX, snap.Player.ScaleY,
		'●', style)
}

func (r *Renderer) drawEnemy(screen tcell.Screen, snap engine.Snapshot) {
	color := tcell.ColorRed
	if snap.EnemyDisabled {
		color = tcell.ColorDarkGray
	} else if snap.EnemyBouncing {
		color = tcell.ColorOrange
	}
	style := tcell.StyleDefault.Foreground(color)
	r.drawBody(screen, snap.Enemy.Pos.X, snap.Enemy.Pos.Y,
		r.cfg.EnemySize*snap.EnemyScale, snap.Enemy.ScaleX, snap.Enemy.ScaleY,
		'▓', style)
}

func (r *Renderer) drawLasers(screen tcell.Screen, snap engine.Snapshot) {
	style := tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
	for _, l := range snap.Lasers {
		if l.X < 0 {
			continue // parked in the pool
		}
		x0, y := r.cell(l.X, l.Y)
		x1, _ := r.cell(l.X+l.Width, l.Y)
		if x1 <= x0 {
			x1 = x0 + 1
		}
		glyph := '═'
		if l.Width > r.cfg.LaserWidth {
			glyph = '█'
		}
		for x := x0; x < x1; x++ {
			if x < 0 || x >= r.width || y < 0 || y >= r.height {
				continue
			}
			screen.SetContent(x, y, glyph, nil, style)
		}
	}
}

func (r *Renderer) drawProjectiles(screen tcell.Screen, snap engine.Snapshot) {
	style := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	for _, p := range snap.Projectiles {
		x, y := r.cell(p.X, p.Y)
		if x < 0 || x >= r.width || y < 0 || y >= r.height {
			continue
		}
		screen.SetContent(x, y, '•', nil, style)
	}
}

func (r *Renderer) drawHUD(screen tcell.Screen, snap engine.Snapshot) {
	mute := ""
	if snap.Muted {
		mute = "  [muted]"
	}
	shoot := ""
	if snap.ShootUnlocked {
		shoot = "  shoot:f"
	}
	line := fmt.Sprintf("score %d  energy %3.0f%%  outs %d:%d  growth %d:%d%s%s",
		snap.Score, snap.Energy, snap.PlayerOuts, snap.EnemyOuts,
		snap.PlayerGrowth, snap.EnemyGrowth, shoot, mute)
	r.drawText(screen, 1, 0, line, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	// Energy bar under the text line
	barWidth := r.width / 3
	filled := int(snap.Energy / 100 * float64(barWidth))
	barStyle := tcell.StyleDefault.Foreground(tcell.ColorLime)
	for x := 0; x < barWidth && x+1 < r.width; x++ {
		g := '─'
		if x < filled {
			g = '━'
		}
		screen.SetContent(x+1, 1, g, nil, barStyle)
	}
}

func (r *Renderer) drawGameOver(screen tcell.Screen, snap engine.Snapshot) {
	msg := "GAME OVER"
	if snap.ShootGameOver {
		msg = "ENEMY DOWN - YOU WIN"
	}
	sub := "r to restart, q to quit"
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	r.drawText(screen, (r.width-len(msg))/2, r.height/2, msg, style)
	r.drawText(screen, (r.width-len(sub))/2, r.height/2+1, sub, tcell.StyleDefault)
}

func (r *Renderer) drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, c := range text {
		if x+i < 0 || x+i >= r.width || y < 0 || y >= r.height {
			continue
		}
		screen.SetContent(x+i, y, c, nil, style)
	}
}
