package logging_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/blackwell-systems/libraryctl/internal/logging"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want zerolog.Level
	}{
		{"", zerolog.WarnLevel},
		{"debug", zerolog.DebugLevel},
		{" INFO ", zerolog.InfoLevel},
		{"error", zerolog.ErrorLevel},
		{"disabled", zerolog.Disabled},
	}
	for _, c := range cases {
		got, err := logging.ParseLevel(c.in)
		if err != nil {
			t.Errorf("ParseLevel(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseLevel_Invalid(t *testing.T) {
	if _, err := logging.ParseLevel("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestNew_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New("warn", &buf, false)
	if err != nil {
		t.Fatal(err)
	}
	log.Info().Msg("quiet")
	log.Warn().Str("book", "BookOne").Msg("loud")

	out := buf.String()
	if strings.Contains(out, "quiet") {
		t.Errorf("info line written at warn level: %s", out)
	}
	if !strings.Contains(out, `"book":"BookOne"`) || !strings.Contains(out, `"level":"warn"`) {
		t.Errorf("warn line missing: %s", out)
	}
}

func TestNew_Pretty(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New("info", &buf, true)
	if err != nil {
		t.Fatal(err)
	}
	log.Info().Msg("hello")
	if strings.Contains(buf.String(), `"message"`) {
		t.Errorf("pretty output should not be JSON: %s", buf.String())
	}
	if !strings.Contains(buf.String(), "hello") {
		t.Errorf("message missing: %s", buf.String())
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	if _, err := logging.New("nope", &bytes.Buffer{}, false); err == nil {
		t.Error("expected error")
	}
}
