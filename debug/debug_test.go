package debug

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestInitLevels(t *testing.T) {
	t.Setenv("SWITCHAPPS_DEBUG", "")

	Init(false)
	if got := Logger().GetLevel(); got != zerolog.WarnLevel {
		t.Errorf("quiet level = %v, want %v", got, zerolog.WarnLevel)
	}

	Init(true)
	if got := Logger().GetLevel(); got != zerolog.DebugLevel {
		t.Errorf("verbose level = %v, want %v", got, zerolog.DebugLevel)
	}

	Init(false)
	if got := Logger().GetLevel(); got != zerolog.WarnLevel {
		t.Errorf("level did not reset: %v", got)
	}
}

func TestInitEnvOverride(t *testing.T) {
	t.Setenv("SWITCHAPPS_DEBUG", "1")

	Init(false)
	if got := Logger().GetLevel(); got != zerolog.DebugLevel {
		t.Errorf("env-enabled level = %v, want %v", got, zerolog.DebugLevel)
	}
}
