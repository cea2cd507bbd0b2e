package logging_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/damonallison/swift-fundamentals-sub000/internal/config"
	"github.com/damonallison/swift-fundamentals-sub000/logging"
	"github.com/stretchr/testify/require"
)

func TestAuto_File(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	path := filepath.Join(t.TempDir(), "stackfun.log")

	c := logging.Auto(config.Config{LogFile: path})

	slog.Debug("hidden")
	slog.Info("popped", slog.Int("value", 200))

	require.NoError(t, c.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	require.Contains(t, string(content), "popped")
	require.Contains(t, string(content), "value=200")
	require.NotContains(t, string(content), "hidden")
}
