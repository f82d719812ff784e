package trace

import (
	"log"
	"os"
	"strings"
	"testing"
)

func resetGlobals(t *testing.T) {
	t.Helper()
	enableAssert = false
	if logfile != nil {
		_ = logfile.Close()
	}
	logfile = nil
	logger = nil
}

func TestAssertPanicsWhenEnabled(t *testing.T) {
	resetGlobals(t)
	enableAssert = true
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic when assertions enabled")
		}
	}()
	Assert(false, "boom")
}

func TestAssertNoOpWhenConditionTrue(t *testing.T) {
	resetGlobals(t)
	enableAssert = true
	Assert(true, "should not panic")
}

func TestAssertDisabledDoesNotPanic(t *testing.T) {
	resetGlobals(t)
	enableAssert = false
	Assert(false, "should log, not panic")
}

func TestAssertNoErrorNilIsNoop(t *testing.T) {
	resetGlobals(t)
	enableAssert = true
	AssertNoError(nil)
}

func TestLogWritesWhenLoggerPresent(t *testing.T) {
	resetGlobals(t)
	tmp, err := os.CreateTemp("", "trace-test-*.log")
	if err != nil {
		t.Fatalf("temp file: %v", err)
	}
	t.Cleanup(func() { os.Remove(tmp.Name()) })
	logfile = tmp
	logger = log.New(tmp, "", 0)

	Log("hello-world")
	_ = logfile.Sync()

	data, err := os.ReadFile(tmp.Name())
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if !strings.Contains(string(data), "hello-world") {
		t.Fatalf("log output missing message, got %q", string(data))
	}
}

func TestLogNoopWhenDisabled(t *testing.T) {
	resetGlobals(t)
	// Should not panic even though no logger is configured.
	Log("dropped on the floor")
}

func TestCloseWithNoLogfileIsNoop(t *testing.T) {
	resetGlobals(t)
	Close()
}
