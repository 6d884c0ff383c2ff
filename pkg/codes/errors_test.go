package codes

import (
	"fmt"
	"testing"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/stretchr/testify/require"
)

func TestReasons(t *testing.T) {
	err := ErrIllegalSelection.WithMetadata(map[string]string{"piece": "3"})
	require.True(t, IsIllegalSelection(err))
	require.False(t, IsGameAlreadyOver(err))
	require.True(t, errors.Is(err, ErrIllegalSelection))

	wrapped := fmt.Errorf("select: %w", ErrGameAlreadyOver)
	require.True(t, IsGameAlreadyOver(wrapped))
	require.True(t, IsInvalidStateTransition(ErrInvalidStateTransition))
	require.False(t, IsInvalidStateTransition(nil))

	bad := ErrBadDice.WithMetadata(map[string]string{"value": "7"})
	require.True(t, IsBadDice(bad))
	require.Equal(t, int32(500), errors.Code(bad))
	require.False(t, IsIllegalSelection(bad))
}
