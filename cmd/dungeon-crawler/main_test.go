package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestCloseLoggerReportsCloseErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantLog bool
	}{
		{name: "clean close", err: nil, wantLog: false},
		{name: "failed close", err: errors.New("disk gone"), wantLog: true},
	}
	for _, tc := range tests {
		var buf bytes.Buffer
		log := logrus.New()
		log.SetOutput(&buf)

		closed := false
		closeLogger(log, func() error {
			closed = true
			return tc.err
		})

		if !closed {
			t.Fatalf("%s: expected close func to run", tc.name)
		}
		out := buf.String()
		if got := strings.Contains(out, "close log file"); got != tc.wantLog {
			t.Fatalf("%s: expected logged=%v, got %q", tc.name, tc.wantLog, out)
		}
		if tc.wantLog && !strings.Contains(out, "disk gone") {
			t.Fatalf("%s: expected error text in log, got %q", tc.name, out)
		}
	}
}

func TestRunRejectsUnknownFrontend(t *testing.T) {
	t.Setenv("DUNGEON_FRONTEND", "")
	err := run("web")
	if err == nil || !strings.Contains(err.Error(), "web") {
		t.Fatalf("expected invalid frontend error, got %v", err)
	}
}
