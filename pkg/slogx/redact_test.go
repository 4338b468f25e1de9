package slogx_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/lanternhq/authd/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func redactedLogger(buf *bytes.Buffer, fields []string) *slog.Logger {
	inner := slog.NewJSONHandler(buf, nil)
	return slog.New(slogx.NewRedactHandler(inner, fields))
}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m))
	return m
}

func TestRedactsConfiguredFields(t *testing.T) {
	var buf bytes.Buffer
	log := redactedLogger(&buf, slogx.DefaultPIIFields)

	log.Info("user seen", "email", "guillaume@holberton.io", "password", "b4l0u", "user_id", "u-1")

	m := decode(t, &buf)
	require.Equal(t, slogx.Redaction, m["email"])
	require.Equal(t, slogx.Redaction, m["password"])
	require.Equal(t, "u-1", m["user_id"])
	require.Equal(t, "user seen", m["msg"])
}

func TestRedactsInsideGroups(t *testing.T) {
	var buf bytes.Buffer
	log := redactedLogger(&buf, []string{"ssn"})

	log.Info("record", slog.Group("user", slog.String("ssn", "123-45-6789"), slog.String("id", "u-2")))

	m := decode(t, &buf)
	user, ok := m["user"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, slogx.Redaction, user["ssn"])
	require.Equal(t, "u-2", user["id"])
}

func TestRedactsWithAttrs(t *testing.T) {
	var buf bytes.Buffer
	log := redactedLogger(&buf, []string{"email"})

	log.With("email", "secret@example.com").Info("hello")

	m := decode(t, &buf)
	require.Equal(t, slogx.Redaction, m["email"])
}
