package runner

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/snack-runner/internal/core"
)

// Visual elements
const (
	GroundChar     = '─'
	GroundMarkChar = '┴'
	FoodChar       = '●'
	GoldenChar     = '★'
	EnemyChar      = '▲'
	HeartFull      = '♥'
	HeartEmpty     = '♡'
)

// groundMarkEvery is the spacing of the scrolling ground marks in cells.
const groundMarkEvery = 8

// Render draws the game into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	groundY := g.groundRow(dst)
	g.drawGround(dst, groundY)

	g.world.Each(func(e Entity) {
		g.drawEntity(dst, groundY, e)
	})
	g.drawPlayer(dst, groundY)
	g.drawHUD(dst)

	if g.introPanel != nil && g.introPanel.Visible() && g.session.State() == StateIntro {
		drawPanel(dst, []string{
			"SNACK RUNNER",
			"",
			"eat " + string(FoodChar) + "  grab " + string(GoldenChar) + "  dodge " + string(EnemyChar),
			"[SPACE] start   [Q] quit",
		}, core.ColorCyan)
	}
	if g.deathPanel != nil && g.deathPanel.Visible() {
		drawPanel(dst, g.deathPanel.Lines(), core.ColorRed)
	}
}

func (g *Game) groundRow(dst *core.Screen) int {
	return core.Clamp(dst.Height()-g.cfg.View.GroundOffset, 1, dst.Height()-1)
}

// column maps a world x-coordinate to a screen column.
func (g *Game) column(dst *core.Screen, x float64) int {
	return dst.Width()/2 + int(math.Round(x*g.cfg.View.CellsPerUnit))
}

// row maps a height above the ground to the screen row just above groundY.
func (g *Game) row(groundY int, y float64) int {
	return groundY - 1 - int(math.Round(y*g.cfg.View.RowsPerUnit))
}

func (g *Game) cells(w float64) int {
	return max(1, int(math.Round(w*g.cfg.View.CellsPerUnit)))
}

func (g *Game) rows(h float64) int {
	return max(1, int(math.Round(h*g.cfg.View.RowsPerUnit)))
}

func (g *Game) drawGround(dst *core.Screen, groundY int) {
	dst.DrawHLine(0, groundY, dst.Width(), GroundChar, core.ColorGray)
	offset := int(g.scroll * g.cfg.View.CellsPerUnit)
	for x := 0; x < dst.Width(); x++ {
		if (x+offset)%groundMarkEvery == 0 {
			dst.SetColored(x, groundY, GroundMarkChar, core.ColorGray)
		}
	}
}

func (g *Game) drawEntity(dst *core.Screen, groundY int, e Entity) {
	var (
		ch    rune
		color core.Color
	)
	switch e.Kind {
	case KindFood:
		ch, color = FoodChar, core.ColorGreen
	case KindGoldenFood:
		ch, color = GoldenChar, core.ColorBrightYellow
	default:
		ch, color = EnemyChar, core.ColorRed
	}

	w := g.cells(e.Width)
	h := g.rows(e.Height)
	left := g.column(dst, e.X) - w/2
	bottom := g.row(groundY, e.Y)
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			dst.SetColored(left+dx, bottom-dy, ch, color)
		}
	}
}

// drawPlayer renders the runner as a 3x2 sprite picked by pose.
//
//	(•)
//	╱ ╲
func (g *Game) drawPlayer(dst *core.Screen, groundY int) {
	pose := g.player.Anim()
	legFrame := 0
	if g.sprite != nil {
		pose = g.sprite.Pose()
		legFrame = g.sprite.LegFrame()
	}

	head := "(•)"
	var legs string
	switch pose {
	case AnimJump:
		legs = "╲_╱"
	case AnimLand:
		legs = "▀▀▀"
	default:
		if legFrame == 0 {
			legs = "╱ ╲"
		} else {
			legs = " │ "
		}
	}

	color := core.ColorCyan
	if g.player.IsInvincible() {
		color = core.ColorBrightYellow
		if int(g.player.InvincibleTimer()*8)%2 == 1 {
			color = core.ColorMagenta
		}
	}

	x := g.column(dst, g.cfg.Player.X) - 1
	bottom := g.row(groundY, g.player.Body().Y)
	dst.DrawTextColored(x, bottom, legs, color)
	dst.DrawTextColored(x, bottom-1, head, color)
}

func (g *Game) drawHUD(dst *core.Screen) {
	score := fmt.Sprintf(" Score: %.0f  Best: %.0f ", g.session.Score(), g.session.HighScore())
	dst.DrawTextColored(1, 0, score, core.ColorWhite)

	var hearts strings.Builder
	for i := 0; i < g.player.MaxHealth(); i++ {
		if i < g.player.Health() {
			hearts.WriteRune(HeartFull)
		} else {
			hearts.WriteRune(HeartEmpty)
		}
	}
	right := fmt.Sprintf(" Spd: %.1f ", g.session.Speed())
	x := dst.Width() - len([]rune(right)) - 1
	dst.DrawTextColored(x, 0, right, core.ColorGray)
	x -= g.player.MaxHealth() + 1
	dst.DrawTextColored(x, 0, hearts.String(), core.ColorRed)

	if g.player.IsInvincible() {
		inv := fmt.Sprintf(" %c x%.0f %.1fs ", GoldenChar, g.session.ScoreMultiplier(), g.player.InvincibleTimer())
		dst.DrawTextCentered(0, inv, core.ColorBrightYellow)
	}
}

// drawPanel draws a boxed block of centered lines in the middle of the screen.
func drawPanel(dst *core.Screen, lines []string, border core.Color) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	boxW := width + 4
	boxH := len(lines) + 2
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, border)
	for i, l := range lines {
		x := box.X + (boxW-len([]rune(l)))/2
		color := core.ColorWhite
		if i == 0 {
			color = border
		}
		dst.DrawTextColored(x, box.Y+1+i, l, color)
	}
}
