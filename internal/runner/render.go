package runner

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/neon-fracture/internal/core"
)

// Projection scale. Terminal cells are about twice as tall as wide.
const (
	cellsPerUnitX = 2.0
	cellsPerUnitZ = 1.0
	lookAhead     = 4.0 // World units the camera leads the runner by
	introSeconds  = 2.5 // How long the sector description stays up
)

// Glyphs
const (
	GoalChar = '◎'
	// Platform fill by height relative to the runner's feet
	AboveChar = '▓'
	LevelChar = '█'
	BelowChar = '▒'
	DeepChar  = '░'
)

// Minimum screen size the projection is drawn at.
const (
	MinWidth  = 40
	MinHeight = 10
)

var footerHelp = " WASD move  SPACE jump  E dash  P pause  R restart  Q quit"

// view maps world X/Z onto a screen area centred on (cx, cz).
type view struct {
	area   core.Rect
	cx, cz float64
}

func (v view) col(x float64) int {
	return v.area.X + v.area.W/2 + int(math.Floor((x-v.cx)*cellsPerUnitX))
}

func (v view) row(z float64) int {
	return v.area.Y + v.area.H/2 + int(math.Floor((z-v.cz)*cellsPerUnitZ))
}

// Render draws the sector as seen from above, the HUD and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinWidth || dst.Height() < MinHeight {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", core.ColorRed)
		return
	}
	if g.sim == nil {
		return
	}

	area := core.NewRect(0, 1, dst.Width(), dst.Height()-2)
	agent := g.state.Agent
	dx, dy := g.shake.offset(g.frame)
	v := view{
		area: area,
		cx:   agent.Position.X() + float64(dx)/cellsPerUnitX,
		cz:   agent.Position.Z() - lookAhead + float64(dy)/cellsPerUnitZ,
	}

	g.drawPlatforms(dst, v, agent.Position.Y())
	g.drawGoal(dst, v)
	dst.SetColored(v.col(agent.Position.X()), v.row(agent.Position.Z()), g.character.Glyph(), g.character.Color())

	g.drawHUD(dst)
	g.drawFooter(dst)

	if g.state.Clock < introSeconds && !g.over() {
		dst.DrawTextCentered(2, g.level.Description, core.ColorGray)
	}

	switch {
	case g.won:
		drawMessage(dst, "SECTOR CLEARED",
			fmt.Sprintf("+%d CR in %s  |  N next  R replay", g.reward, FormatDuration(g.Elapsed())),
			core.ColorCyan)
	case g.dead:
		drawMessage(dst, "SIGNAL LOST", "Press R to reboot the sector", core.ColorRed)
	case g.paused:
		drawMessage(dst, "PAUSED", "Press P to resume", core.ColorWhite)
	}
}

// drawPlatforms paints lower platforms first so higher ones stay visible.
func (g *Game) drawPlatforms(dst *core.Screen, v view, feetY float64) {
	order := make([]int, len(g.level.Platforms))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return g.sim.World.Platforms[order[a]].Top() < g.sim.World.Platforms[order[b]].Top()
	})

	for _, i := range order {
		p := g.sim.World.Platforms[i]
		hx, hz := p.Size.X()/2, p.Size.Z()/2
		c0, c1 := v.col(p.Position.X()-hx), v.col(p.Position.X()+hx)
		r0, r1 := v.row(p.Position.Z()-hz), v.row(p.Position.Z()+hz)
		rect := core.NewRect(c0, r0, max(c1-c0, 1), max(r1-r0, 1))
		if !rect.Intersects(v.area) {
			continue
		}
		dst.DrawRect(rect.Clip(v.area), platformGlyph(p.Top()-feetY), platformColor(g.level.Platforms[i].Color))
	}
}

func platformGlyph(heightDiff float64) rune {
	switch {
	case heightDiff > 1:
		return AboveChar
	case heightDiff >= -1:
		return LevelChar
	case heightDiff >= -8:
		return BelowChar
	default:
		return DeepChar
	}
}

// platformColor keeps a platform's own colour unless it is too dark to read
// on a terminal background.
func platformColor(hex string) core.Color {
	if len(hex) != 7 || hex[0] != '#' {
		return core.ColorGray
	}
	rgb, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return core.ColorGray
	}
	r, g, b := float64(rgb>>16&0xff), float64(rgb>>8&0xff), float64(rgb&0xff)
	if 0.2126*r+0.7152*g+0.0722*b < 60 {
		return core.ColorGray
	}
	return core.Color(hex)
}

// drawGoal marks the goal, or points at it from the edge of the view.
func (g *Game) drawGoal(dst *core.Screen, v view) {
	goal := g.level.Goal
	c, r := v.col(goal.X()), v.row(goal.Z())
	if v.area.Contains(c, r) {
		dst.SetColored(c, r, GoalChar, core.ColorYellow)
		return
	}

	arrow := '▲'
	switch {
	case r >= v.area.Bottom():
		arrow = '▼'
	case r >= v.area.Y && c < v.area.X:
		arrow = '◀'
	case r >= v.area.Y && c >= v.area.Right():
		arrow = '▶'
	}
	c = core.Clamp(c, v.area.X, v.area.Right()-1)
	r = core.Clamp(r, v.area.Y, v.area.Bottom()-1)
	dst.SetColored(c, r, arrow, core.ColorYellow)
}

// pen writes consecutive HUD fragments along one row.
type pen struct {
	dst  *core.Screen
	x, y int
}

func (p *pen) write(text string, c core.Color) {
	p.dst.DrawTextColored(p.x, p.y, text, c)
	p.x += utf8.RuneCountInString(text)
}

func (g *Game) drawHUD(dst *core.Screen) {
	p := &pen{dst: dst, x: 1}
	sep := func() { p.write(" │ ", core.ColorDim) }

	p.write(g.level.Name, core.ColorCyan)
	sep()

	maxHP := g.cfg.Session.MaxHealth
	p.write("HP ", core.ColorGray)
	p.write(healthBar(g.health, maxHP, 6), healthColor(g.health, maxHP, g.last.Damage > 0))
	p.write(fmt.Sprintf(" %3d", g.health), core.ColorWhite)
	sep()

	p.write(fmt.Sprintf("SPD %3d", g.speed), core.ColorWhite)
	sep()
	p.write(fmt.Sprintf("ALT %5.1f", g.state.Agent.Position.Y()), core.ColorWhite)
	sep()

	if g.state.Agent.DashReady(g.state.Clock, g.sim.Tuning) {
		p.write("DASH ●", core.ColorGreen)
	} else {
		p.write("DASH ○", core.ColorDim)
	}
	sep()
	p.write(FormatDuration(g.Elapsed()), core.ColorGray)
}

func (g *Game) drawFooter(dst *core.Screen) {
	y := dst.Height() - 1
	help := footerHelp
	if g.won {
		help = " N next sector  R replay  Q quit"
	}
	dst.DrawTextColored(0, y, help, core.ColorDim)

	right := g.character.Name
	if g.muted {
		right = "MUTED  " + right
	}
	x := dst.Width() - utf8.RuneCountInString(right) - 1
	dst.DrawTextColored(x, y, right, g.character.Color())
}

func healthBar(health, maxHP, width int) string {
	maxHP = max(maxHP, 1)
	filled := core.Clamp(int(math.Ceil(float64(health)*float64(width)/float64(maxHP))), 0, width)
	bar := make([]rune, width)
	for i := range bar {
		if i < filled {
			bar[i] = '█'
		} else {
			bar[i] = '░'
		}
	}
	return string(bar)
}

func healthColor(health, maxHP int, hurt bool) core.Color {
	switch {
	case hurt || health*100 <= maxHP*30:
		return core.ColorRed
	case health*100 <= maxHP*60:
		return core.ColorYellow
	default:
		return core.ColorGreen
	}
}

// drawMessage draws a message box in the center of the screen.
func drawMessage(dst *core.Screen, title, subtitle string, c core.Color) {
	boxW := max(utf8.RuneCountInString(title), utf8.RuneCountInString(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)
	dst.DrawTextColored(box.X+(boxW-utf8.RuneCountInString(title))/2, box.Y+1, title, c)
	dst.DrawHLine(box.X+1, box.Y+2, boxW-2, '┄', core.ColorDim)
	dst.DrawTextColored(box.X+(boxW-utf8.RuneCountInString(subtitle))/2, box.Y+3, subtitle, core.ColorWhite)
}

// FormatDuration renders a clear time as m:ss.cc.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	cs := d.Milliseconds() / 10
	return fmt.Sprintf("%d:%02d.%02d", cs/6000, cs/100%60, cs%100)
}
