package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupJSON(t *testing.T) {
	var buf bytes.Buffer
	Setup(Options{Level: "debug", JSON: true, Output: &buf})
	defer Setup(Options{})

	For("relay").WithField("url", "https://cdn.example/a.jpg").Debug("relaying")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "relay", line["component"])
	assert.Equal(t, "relaying", line["msg"])
	assert.Equal(t, "debug", line["level"])
}

func TestSetupUnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	Setup(Options{Level: "chatty", Output: &buf})
	defer Setup(Options{})

	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
	assert.Contains(t, buf.String(), "unknown log level")
}
