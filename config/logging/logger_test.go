package logging

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestSetupLevel(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	Setup("debug", false)
	require.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	Setup("not-a-level", false)
	require.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

	Setup("", false)
	require.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
