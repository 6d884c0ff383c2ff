package main

import (
	"bytes"
	"context"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/require"

	"github.com/yola1107/ludo/internal/biz/match"
	"github.com/yola1107/ludo/internal/conf"
	"github.com/yola1107/ludo/internal/geometry"
	"github.com/yola1107/ludo/internal/model"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	c := conf.Default()
	app, cleanup, err := wireApp(c.Match, c.Data, log.DefaultLogger)
	require.NoError(t, err)
	t.Cleanup(cleanup)
	return app
}

func TestAppCommands(t *testing.T) {
	app := newTestApp(t)
	in := strings.NewReader("h\ns\nl\nm 0\nm\nm 9\nw\nfoo\n\nq\nr\n")
	var out bytes.Buffer

	require.NoError(t, app.Run(context.Background(), in, &out))

	got := out.String()
	require.Contains(t, got, "new match")
	require.Contains(t, got, "commands:")
	require.Contains(t, got, "R0")
	require.Contains(t, got, "no legal moves")
	require.Contains(t, got, "INVALID_STATE_TRANSITION")
	require.Contains(t, got, "usage: m <slot>")
	require.Contains(t, got, `bad slot "9"`)
	require.Contains(t, got, "Red     0")
	require.Contains(t, got, `unknown command "foo"`)
	require.NotContains(t, got, "rolled", "input after q is ignored")
}

func TestAppPlaysToTheEnd(t *testing.T) {
	app := newTestApp(t)
	var out bytes.Buffer
	app.m = app.uc.NewMatch(context.Background(), match.WithDice(match.NewRandomDice(3)))

	for i := 0; i < 100000 && !app.m.IsOver(); i++ {
		app.exec(context.Background(), "r", &out)
		if legal := app.m.LegalMoves(); len(legal) > 0 {
			app.exec(context.Background(), "m "+strconv.Itoa(int(legal[0]%4)), &out)
		}
	}
	require.True(t, app.m.IsOver())
	require.Contains(t, out.String(), "wins after")

	out.Reset()
	app.exec(context.Background(), "w", &out)
	require.Contains(t, out.String(), " 1\n")
}

func TestAppStopsOnContext(t *testing.T) {
	app := newTestApp(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	pr, pw := io.Pipe()
	defer pw.Close()
	err := app.Run(ctx, pr, &bytes.Buffer{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestRender(t *testing.T) {
	m := match.New(match.WithDice(match.NewScriptedDice(6)))
	_, err := m.Roll()
	require.NoError(t, err)
	_, err = m.Select(0)
	require.NoError(t, err)

	s := Render(geometry.NewTable(), m.Snapshot())
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	require.Len(t, lines, geometry.BoardSize+4)
	for _, l := range lines[:geometry.BoardSize] {
		require.Len(t, l, geometry.BoardSize*3)
	}
	require.Equal(t, "R0 ", lines[6][3:6], "red enters at (1,6)")
	require.Equal(t, 4, strings.Count(s, " * "))
	require.Contains(t, s, "Red     arrived:0 progress:0 R0:"+model.Position{Zone: model.ZoneShared}.String())
	require.Contains(t, lines[geometry.BoardSize+1], "G3:"+model.BasePosition.String())
}
