package xredis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

func TestNewClientOptions(t *testing.T) {
	rdb := NewClient(WithAddress("10.0.0.1:6380"), WithPassword("pw"), WithDB(2))
	defer rdb.Close()
	require.Equal(t, "10.0.0.1:6380", rdb.Options().Addr)
	require.Equal(t, "pw", rdb.Options().Password)
	require.Equal(t, 2, rdb.Options().DB)
}

func TestNewClientIgnoresBadValues(t *testing.T) {
	rdb := NewClient(WithAddress("no-port"), WithDB(-1))
	defer rdb.Close()
	require.Equal(t, "127.0.0.1:6379", rdb.Options().Addr)
	require.Equal(t, 0, rdb.Options().DB)
}

func TestPing(t *testing.T) {
	s := miniredis.RunT(t)
	rdb := NewClient(WithAddress(s.Addr()))
	defer rdb.Close()
	require.NoError(t, Ping(context.Background(), rdb))
}
