package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/yola1107/ludo/internal/biz"
	"github.com/yola1107/ludo/internal/biz/match"
	"github.com/yola1107/ludo/internal/geometry"
	"github.com/yola1107/ludo/internal/model"
	"github.com/yola1107/ludo/library/xgo"
)

const help = `commands:
  r          roll the die
  m <slot>   move your piece 0-3
  l          legal moves
  s          show the board
  w          win table
  n          new match
  h          help
  q          quit`

// App drives matches from a line based terminal.
type App struct {
	uc    *biz.Usecase
	table *geometry.Table
	log   *log.Helper
	m     *match.Match
}

func newApp(uc *biz.Usecase, table *geometry.Table, logger log.Logger) *App {
	return &App{
		uc:    uc,
		table: table,
		log:   log.NewHelper(log.With(logger, "module", "cli")),
	}
}

// Run reads commands from in until q, EOF or ctx is done.
func (a *App) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	a.newMatch(ctx, out)
	defer func() { _ = a.m.Close() }()

	lines := make(chan string)
	done := make(chan struct{})
	defer close(done)
	// 读 stdin 的协程在 Scan 中阻塞时无法中断, ctx 取消后留给进程退出回收
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-done:
				return
			}
		}
	}()

	a.prompt(out)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			if a.exec(ctx, strings.TrimSpace(line), out) {
				return nil
			}
			a.prompt(out)
		}
	}
}

// exec runs one command and reports whether the loop should stop.
func (a *App) exec(ctx context.Context, line string, out io.Writer) (quit bool) {
	defer xgo.RecoverFromError(func(e any) {
		fmt.Fprintf(out, "internal error: %v\n", e)
	})

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	switch fields[0] {
	case "q", "quit", "exit":
		return true
	case "h", "help":
		fmt.Fprintln(out, help)
	case "s":
		fmt.Fprint(out, Render(a.table, a.m.Snapshot()))
	case "l":
		a.legal(out)
	case "w":
		a.wins(ctx, out)
	case "n":
		_ = a.m.Close()
		a.newMatch(ctx, out)
	case "r":
		a.roll(ctx, out)
	case "m":
		if len(fields) < 2 {
			fmt.Fprintln(out, "usage: m <slot>")
			return false
		}
		slot, err := strconv.Atoi(fields[1])
		if err != nil || slot < 0 || slot >= model.PiecesPerPlayer {
			fmt.Fprintf(out, "bad slot %q\n", fields[1])
			return false
		}
		a.move(ctx, int32(slot), out)
	default:
		fmt.Fprintf(out, "unknown command %q, h for help\n", fields[0])
	}
	return false
}

func (a *App) newMatch(ctx context.Context, out io.Writer) {
	a.m = a.uc.NewMatch(ctx)
	fmt.Fprintf(out, "new match %s\n", a.m.ID())
}

func (a *App) roll(ctx context.Context, out io.Writer) {
	ro, err := a.uc.Roll(ctx, a.m)
	if err != nil {
		fmt.Fprintf(out, "roll: %v\n", err)
		return
	}
	fmt.Fprintf(out, "%s rolled %d\n", model.ColorName(ro.Player), ro.Value)
	if ro.Skipped {
		fmt.Fprintf(out, "no legal move, %s to roll\n", model.ColorName(ro.Next))
		return
	}
	a.legal(out)
}

func (a *App) move(ctx context.Context, slot int32, out io.Writer) {
	id := model.PieceID(a.m.Active(), slot)
	mo, err := a.uc.Select(ctx, a.m, id)
	if err != nil {
		fmt.Fprintf(out, "move: %v\n", err)
		return
	}
	fmt.Fprintf(out, "%s piece %d: %v -> %v\n", model.ColorName(mo.Player), slot, mo.From, mo.To)
	for _, id := range mo.Captured {
		pc := a.m.Board().GetPieceByID(id)
		fmt.Fprintf(out, "captured %s piece %d\n", model.ColorName(pc.Owner()), pc.Slot())
	}
	switch {
	case mo.HasWinner():
		fmt.Fprintf(out, "%s wins after %d rolls! n for a new match\n", model.ColorName(mo.Winner), a.m.Turns())
	case mo.BonusTurn:
		fmt.Fprintf(out, "rolled a six, %s rolls again\n", model.ColorName(mo.Next))
	}
}

func (a *App) legal(out io.Writer) {
	ids := a.m.LegalMoves()
	if len(ids) == 0 {
		fmt.Fprintln(out, "no legal moves")
		return
	}
	slots := make([]string, 0, len(ids))
	for _, id := range ids {
		slots = append(slots, strconv.Itoa(int(id%model.PiecesPerPlayer)))
	}
	fmt.Fprintf(out, "movable slots: %s\n", strings.Join(slots, " "))
}

func (a *App) wins(ctx context.Context, out io.Writer) {
	wins, err := a.uc.Wins(ctx)
	if err != nil {
		a.log.WithContext(ctx).Errorf("load wins failed: %v", err)
		fmt.Fprintf(out, "wins: %v\n", err)
		return
	}
	ids := make([]int32, 0, model.PlayerCount)
	for id := int32(0); id < model.PlayerCount; id++ {
		ids = append(ids, id)
	}
	sort.SliceStable(ids, func(i, j int) bool { return wins[ids[i]] > wins[ids[j]] })
	for _, id := range ids {
		fmt.Fprintf(out, "%-7s %d\n", model.ColorName(id), wins[id])
	}
}

func (a *App) prompt(out io.Writer) {
	if a.m.IsOver() {
		fmt.Fprint(out, "> ")
		return
	}
	st := "roll"
	if a.m.Stage() == match.StAwaitMove {
		st = fmt.Sprintf("move (rolled %d)", a.m.CurrentRoll())
	}
	fmt.Fprintf(out, "[%s] %s> ", model.ColorName(a.m.Active()), st)
}
