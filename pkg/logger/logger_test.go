package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestNewWithOutputJSON(t *testing.T) {
	req := require.New(t)
	var buf bytes.Buffer
	l := NewWithOutput(&buf, "debug", "json")
	req.Equal(logrus.DebugLevel, l.GetLevel())

	l.WithField("table", "Message").Warn("query failed")

	var entry map[string]any
	req.NoError(json.Unmarshal(buf.Bytes(), &entry))
	req.Equal("query failed", entry["msg"])
	req.Equal("Message", entry["table"])
	req.Equal("warning", entry["level"])
}

func TestNewWithOutputFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithOutput(&buf, "loud", "text")
	require.Equal(t, logrus.InfoLevel, l.GetLevel())

	l.Debug("hidden")
	require.Empty(t, buf.String())
}
