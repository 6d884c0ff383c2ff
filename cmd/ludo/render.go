package main

import (
	"fmt"
	"strings"

	"github.com/yola1107/ludo/internal/biz/match"
	"github.com/yola1107/ludo/internal/geometry"
	"github.com/yola1107/ludo/internal/model"
)

var colorLetters = [model.PlayerCount]string{"R", "G", "B", "Y"}

// Render draws the board as text, three columns per cell. Pieces show as
// colour letter and slot; a trailing + marks a stack.
func Render(t *geometry.Table, s *match.Snapshot) string {
	var grid [geometry.BoardSize][geometry.BoardSize]string
	for y := range grid {
		for x := range grid[y] {
			grid[y][x] = "   "
		}
	}
	for i := int32(0); i < model.TotalPositions; i++ {
		c := t.Shared(i)
		grid[c.Y][c.X] = " . "
	}
	for owner := int32(0); owner < model.PlayerCount; owner++ {
		for j := int32(0); j < model.GoalLaneIndex; j++ {
			c := t.Lane(owner, j)
			grid[c.Y][c.X] = " " + strings.ToLower(colorLetters[owner]) + " "
		}
		c := t.Goal(owner)
		grid[c.Y][c.X] = " * "
	}

	var count [geometry.BoardSize][geometry.BoardSize]int
	for _, pc := range s.Pieces {
		c := t.Locate(pc.Owner, pc.Slot, pc.Position())
		count[c.Y][c.X]++
		if count[c.Y][c.X] == 1 {
			grid[c.Y][c.X] = fmt.Sprintf("%s%d ", colorLetters[pc.Owner], pc.Slot)
		} else {
			grid[c.Y][c.X] = grid[c.Y][c.X][:2] + "+"
		}
	}

	var sb strings.Builder
	for y := range grid {
		sb.WriteString(strings.Join(grid[y][:], ""))
		sb.WriteString("\n")
	}
	for _, p := range s.Players {
		fmt.Fprintf(&sb, "%-7s arrived:%d progress:%d", p.Color, p.Arrived, p.Progress)
		for _, pc := range s.PiecesOf(p.ID) {
			fmt.Fprintf(&sb, " %s%d:%v", colorLetters[pc.Owner], pc.Slot, pc.Position())
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
