package log

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestStreamLoggerLevels(t *testing.T) {
	buffer := &bytes.Buffer{}
	logger := NewStreamLogger(buffer, logrus.InfoLevel)

	logger.Debug("not visible")
	if strings.Contains(buffer.String(), "not visible") {
		t.Fatal("Debug message was printed on info level")
	}

	logger.Info("hello")
	if !strings.Contains(buffer.String(), "hello") {
		t.Fatal("Info message was not printed on info level")
	}

	logger.SetLevel(logrus.DebugLevel)
	logger.Debugf("now %s", "visible")
	if !strings.Contains(buffer.String(), "now visible") {
		t.Fatal("Debug message was not printed on debug level")
	}

	logger.SetLevel(logrus.ErrorLevel)
	logger.Warn("silenced")
	if strings.Contains(buffer.String(), "silenced") {
		t.Fatal("Warn message was printed on error level")
	}

	logger.Errorf("broken: %d", 42)
	if !strings.Contains(buffer.String(), "broken: 42") {
		t.Fatal("Error message was not printed on error level")
	}
}

func TestStreamLoggerDoneAndFail(t *testing.T) {
	buffer := &bytes.Buffer{}
	logger := NewStreamLogger(buffer, logrus.InfoLevel)

	logger.Done("installed")
	logger.Fail("failed")

	out := buffer.String()
	if !strings.Contains(out, "installed") || !strings.Contains(out, "[done]") {
		t.Fatalf("Done message missing from output: %s", out)
	}
	if !strings.Contains(out, "failed") || !strings.Contains(out, "[fail]") {
		t.Fatalf("Fail message missing from output: %s", out)
	}
}
