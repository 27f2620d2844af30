package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestLogger_Levels(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name     string
		verbose  bool
		log      func(l *Logger)
		contains string
		empty    bool
	}{
		{name: "info", log: func(l *Logger) { l.Infof("created #%d", 7) }, contains: "INFO: "},
		{name: "warn", log: func(l *Logger) { l.Warnf("no tag") }, contains: "WARN: "},
		{name: "error", log: func(l *Logger) { l.Errorf("boom") }, contains: "ERROR: "},
		{name: "debug hidden", log: func(l *Logger) { l.Debugf("details") }, empty: true},
		{name: "debug verbose", verbose: true, log: func(l *Logger) { l.Debugf("details") }, contains: "DEBUG: "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(New(&buf, tt.verbose))
			if tt.empty {
				if buf.Len() != 0 {
					t.Errorf("expected no output, got %q", buf.String())
				}
				return
			}
			if !strings.Contains(buf.String(), tt.contains) {
				t.Errorf("output %q should contain %q", buf.String(), tt.contains)
			}
		})
	}
}

func TestLogger_NilIsSilent(t *testing.T) {
	var l *Logger
	l.Infof("ignored")
	l.Warnf("ignored")
	l.Errorf("ignored")
	l.Debugf("ignored")
}
