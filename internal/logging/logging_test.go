package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/misopt/internal/logging"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"":        slog.LevelInfo,
		" warn ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"Error":   slog.LevelError,
	}
	for in, want := range cases {
		got, err := logging.ParseLevel(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := logging.ParseLevel("loud")
	require.ErrorIs(t, err, logging.ErrUnknownLevel)
}

func TestNew_JSONAndLevel(t *testing.T) {
	var buf bytes.Buffer
	l := logging.New(logging.Config{
		Level:     slog.LevelWarn,
		Format:    logging.FormatJSON,
		Writer:    &buf,
		Component: "brkga",
	})

	l.Info("dropped")
	require.Zero(t, buf.Len())

	l.Warn("kept", slog.Int("fitness", 7))
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "kept", rec["msg"])
	require.Equal(t, "brkga", rec["component"])
	require.EqualValues(t, 7, rec["fitness"])
}

func TestNew_TextDefault(t *testing.T) {
	var buf bytes.Buffer
	logging.New(logging.Config{Writer: &buf}).Info("hello", slog.String("k", "v"))
	require.Contains(t, buf.String(), "msg=hello")
	require.Contains(t, buf.String(), "k=v")

	logging.Discard().Error("nothing")
}
