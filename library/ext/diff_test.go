package ext

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type sample struct {
	Level string
	Keys  []string
}

func TestDiffLog(t *testing.T) {
	a := &sample{Level: "debug", Keys: []string{"a"}}
	b := &sample{Level: "warn", Keys: []string{"a"}}

	changes, text, err := DiffLog(a, b)
	require.NoError(t, err)
	require.Len(t, changes, 1)
	require.Contains(t, text, "Level: debug -> warn")

	changes, text, err = DiffLog(a, a)
	require.NoError(t, err)
	require.Empty(t, changes)
	require.Empty(t, text)
}

func TestDeepCopy(t *testing.T) {
	src := &sample{Level: "info", Keys: []string{"password"}}
	dst := &sample{}
	require.NoError(t, DeepCopy(dst, src))
	require.Equal(t, src, dst)

	src.Keys[0] = "token"
	require.Equal(t, "password", dst.Keys[0])
}
