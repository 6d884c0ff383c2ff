package xgo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToJSON(t *testing.T) {
	require.Equal(t, `{"a":1}`, ToJSON(map[string]int{"a": 1}))
	require.Contains(t, ToJSON(make(chan int)), "json error")
}

func TestRecoverFromError(t *testing.T) {
	var got any
	func() {
		defer RecoverFromError(func(e any) { got = e })
		panic("boom")
	}()
	require.Equal(t, "boom", got)
}
