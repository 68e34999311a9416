package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"info", LevelInfo, false},
		{"", LevelInfo, false},
		{"WARN", LevelWarn, false},
		{"warning", LevelWarn, false},
		{"Error", LevelError, false},
		{"verbose", LevelInfo, true},
	}
	for _, tc := range cases {
		got, err := ParseLevel(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %t", tc.in, err, tc.wantErr)
		}
		if err == nil && got != tc.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestLogger_FiltersBelowMinLevel(t *testing.T) {
	var out, errOut bytes.Buffer
	logger := NewWithWriters(&out, &errOut, LevelInfo)

	logger.Debugf("hidden %d", 1)
	logger.Infof("shown %d", 2)
	logger.Warnf("warned %d", 3)

	if strings.Contains(out.String(), "hidden") {
		t.Error("debug message should be filtered at info level")
	}
	if !strings.Contains(out.String(), "shown 2") {
		t.Errorf("info message missing, got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "warned 3") {
		t.Errorf("warn message missing, got %q", errOut.String())
	}
}

func TestLogger_ErrorAlwaysEmits(t *testing.T) {
	var out, errOut bytes.Buffer
	logger := NewWithWriters(&out, &errOut, LevelError)

	logger.Info("quiet")
	logger.Error("loud")

	if out.Len() != 0 {
		t.Errorf("info should be filtered at error level, got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "loud") {
		t.Errorf("error message missing, got %q", errOut.String())
	}
}

func TestNopLogger_DiscardsEverything(t *testing.T) {
	logger := NewNop()
	logger.Error("a")
	logger.Errorf("%d", 1)
	logger.Warn("b")
	logger.Warnf("%d", 2)
	logger.Info("c")
	logger.Infof("%d", 3)
	logger.Debug("d")
	logger.Debugf("%d", 4)
}
