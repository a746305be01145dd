// Copyright (c) 2026 Pharmav2 Dashboard
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestInitAndGet(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var buf bytes.Buffer
	log := Init(Options{Level: "debug", Output: &buf})
	log.Debug().Str("k", "v").Msg("hello")

	if !strings.Contains(buf.String(), `"hello"`) {
		t.Errorf("log output = %q, want the message recorded", buf.String())
	}

	// Get hands back the same configured instance.
	shared := Get()
	shared.Info().Msg("again")
	if !strings.Contains(buf.String(), `"again"`) {
		t.Errorf("log output = %q, want Get() to share the writer", buf.String())
	}
}

func TestInitOnlyFirstCallWins(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var first, second bytes.Buffer
	Init(Options{Level: "info", Output: &first})
	Init(Options{Level: "debug", Output: &second})

	log := Get()
	log.Info().Msg("routed")
	if !strings.Contains(first.String(), `"routed"`) {
		t.Errorf("first writer = %q, want the message", first.String())
	}
	if second.Len() != 0 {
		t.Errorf("second writer = %q, want empty: later Init calls are no-ops", second.String())
	}
}

func TestGetBeforeInitIsNoop(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	// Must not panic; the returned logger discards everything.
	log := Get()
	log.Error().Msg("dropped")
}

func TestLevelFiltering(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var buf bytes.Buffer
	Init(Options{Level: "warn", Output: &buf})

	log := Get()
	log.Info().Msg("quiet")
	log.Warn().Msg("loud")

	out := buf.String()
	if strings.Contains(out, `"quiet"`) {
		t.Error("info message logged despite warn level")
	}
	if !strings.Contains(out, `"loud"`) {
		t.Error("warn message missing")
	}
}
