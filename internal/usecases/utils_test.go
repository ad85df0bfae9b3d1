package usecases

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNullStringFrom(t *testing.T) {
	require.False(t, nullStringFrom("").Valid)

	v := nullStringFrom("999111222")
	require.True(t, v.Valid)
	require.Equal(t, "999111222", v.String)
}
