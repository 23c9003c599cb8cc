// Package breakout implements the brick-breaker variant: one horizontal
// paddle, an open bottom, a brick wall and falling power-ups.
package breakout

import (
	"math"
	"strings"

	"github.com/vovakirdan/paddle-arcade/internal/config"
	"github.com/vovakirdan/paddle-arcade/internal/core"
)

// Brick is one brick of a level, placed in arena units.
type Brick struct {
	Box    core.Box
	Points int  // awarded when destroyed
	HP     int  // hits left, 0 when destroyed
	Solid  bool // indestructible
	Row    int
}

// Alive reports whether the brick is still standing.
func (b *Brick) Alive() bool {
	return b.Solid || b.HP > 0
}

// Level is a playable brick layout.
type Level struct {
	Name   string
	Bricks []*Brick
}

// CountAlive returns the number of remaining destroyable bricks.
func (l *Level) CountAlive() int {
	count := 0
	for _, b := range l.Bricks {
		if !b.Solid && b.HP > 0 {
			count++
		}
	}
	return count
}

// Layout is a level map. Characters:
//
//	'#' = normal brick
//	'.' = empty
//	'1'-'9' = brick worth digit times the base points
//	'H' = hard brick (2 hits, double points)
//	'X' = solid/indestructible brick
type Layout struct {
	Name  string
	Lines []string
}

// GridLayout returns a full rows x cols wall of normal bricks.
func GridLayout(rows, cols int) []string {
	lines := make([]string, rows)
	for i := range lines {
		lines[i] = strings.Repeat("#", cols)
	}
	return lines
}

// Layouts returns the built-in levels in play order. The first one is the
// configured grid.
func Layouts(cfg config.BrickConfig) []Layout {
	return []Layout{
		{Name: "Classic", Lines: GridLayout(cfg.Rows, cfg.Cols)},
		{Name: "Pyramid", Lines: []string{
			"......##......",
			"....######....",
			"..##########..",
			"##############",
		}},
		{Name: "Checkerboard", Lines: []string{
			"#.#.#.#.#.#.#.",
			".#.#.#.#.#.#.#",
			"#.#.#.#.#.#.#.",
			".#.#.#.#.#.#.#",
		}},
		{Name: "Fortress", Lines: []string{
			"HHHHHHHHHHHHHH",
			"H.####55####.H",
			"H.####55####.H",
			"HHHHHHHHHHHHHH",
		}},
		{Name: "Castle", Lines: []string{
			"X..X..XX..X..X",
			"##############",
			"##HH##HH##HH##",
			"##############",
		}},
	}
}

// ParseLevel lays a map out in the arena. The grid is centered
// horizontally and starts at cfg.Top; columns that do not fit the arena
// width are cut evenly from both sides and rows are kept within the upper
// half of the arena.
func ParseLevel(layout Layout, cfg config.BrickConfig, arenaW, arenaH float64) *Level {
	level := &Level{Name: layout.Name}

	width := 0
	for _, line := range layout.Lines {
		width = max(width, len(line))
	}
	if width == 0 || cfg.Width <= 0 || cfg.Height <= 0 {
		return level
	}

	stepX := cfg.Width + cfg.Gap
	stepY := cfg.Height + cfg.Gap
	fitCols := int(math.Floor((arenaW + cfg.Gap) / stepX))
	fitRows := int(math.Floor((arenaH/2 - cfg.Top + cfg.Gap) / stepY))

	cols := min(width, fitCols)
	rows := min(len(layout.Lines), fitRows)
	if cols <= 0 || rows <= 0 {
		return level
	}

	skip := (width - cols) / 2
	left := (arenaW - (float64(cols)*stepX - cfg.Gap)) / 2

	for row := 0; row < rows; row++ {
		line := layout.Lines[row]
		for col := 0; col < cols; col++ {
			ch := byte('.')
			if i := col + skip; i < len(line) {
				ch = line[i]
			}

			brick := &Brick{
				Box: core.Box{
					X: left + float64(col)*stepX,
					Y: cfg.Top + float64(row)*stepY,
					W: cfg.Width,
					H: cfg.Height,
				},
				Row: row,
			}

			switch {
			case ch == '#':
				brick.Points = cfg.Points
				brick.HP = 1
			case ch >= '1' && ch <= '9':
				brick.Points = int(ch-'0') * cfg.Points
				brick.HP = 1
			case ch == 'H' || ch == 'h':
				brick.Points = 2 * cfg.Points
				brick.HP = 2
			case ch == 'X' || ch == 'x':
				brick.Solid = true
			default:
				continue
			}
			level.Bricks = append(level.Bricks, brick)
		}
	}

	return level
}
