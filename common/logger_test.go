package common

import (
	"testing"

	"github.com/sirupsen/logrus"
)

// TestParseLogLevel tests level parsing, case folding and the error path for
// unknown levels
func TestParseLogLevel(t *testing.T) {
	valid := map[string]logrus.Level{
		"debug":   logrus.DebugLevel,
		"info":    logrus.InfoLevel,
		"warn":    logrus.WarnLevel,
		"warning": logrus.WarnLevel,
		"error":   logrus.ErrorLevel,
		"DEBUG":   logrus.DebugLevel,
		"Info":    logrus.InfoLevel,
	}
	for input, expected := range valid {
		level, err := ParseLogLevel(input)
		if err != nil {
			t.Errorf("Unexpected error for %q: %v", input, err)
			continue
		}
		if level != expected {
			t.Errorf("ParseLogLevel(%q) = %v, expected %v", input, level, expected)
		}
	}

	for _, input := range []string{"", "verbose", "trace", "42"} {
		if _, err := ParseLogLevel(input); err == nil {
			t.Errorf("Expected an error for %q", input)
		}
	}
}

// TestInitLoggerInvalidLevel tests that a bad level is reported instead of
// panicking
func TestInitLoggerInvalidLevel(t *testing.T) {
	if err := InitLogger(ServerConfig{LogLevel: "bogus"}); err == nil {
		t.Error("Expected an error for an invalid log level")
	}
	if err := InitLogger(ServerConfig{LogLevel: "info"}); err != nil {
		t.Errorf("Unexpected error for a valid log level: %v", err)
	}
}
