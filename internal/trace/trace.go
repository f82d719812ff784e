// Package trace is a minimal, opt-in diagnostic logger and assertion
// helper, ported from the teacher's internal debug package. It is
// deliberately not a structured-logging framework: an embedded target
// wants a log sink that costs nothing when disabled, not a dependency
// tree (see AMBIENT STACK in SPEC_FULL.md).
package trace

import (
	"fmt"
	"log"
	"os"
)

const (
	envEnableLog   = "ECLI_ENABLE_LOG"
	envAssertPanic = "ECLI_ASSERT_PANIC"
)

var (
	logger       *log.Logger
	logfile      *os.File
	enableAssert bool
)

func init() {
	loadLoggerEnv()
	loadAssertEnv()
}

func loadLoggerEnv() {
	if os.Getenv(envEnableLog) == "" {
		return
	}
	f, err := os.CreateTemp("", "ecli-trace-*.log")
	if err != nil {
		return
	}
	logfile = f
	logger = log.New(f, "", log.LstdFlags|log.Lmicroseconds)
}

func loadAssertEnv() {
	switch os.Getenv(envAssertPanic) {
	case "1", "true", "TRUE", "True":
		enableAssert = true
	default:
		enableAssert = false
	}
}

// Log writes msg to the trace log file, if logging was enabled via
// ECLI_ENABLE_LOG. It is a no-op otherwise, so call sites never need to
// guard it.
func Log(msg string) {
	if logger == nil {
		return
	}
	logger.Println(msg)
}

// Logf is the formatted form of Log.
func Logf(format string, args ...any) {
	if logger == nil {
		return
	}
	logger.Printf(format, args...)
}

// Assert panics with msg when cond is false and ECLI_ASSERT_PANIC is set;
// otherwise it writes msg to stderr and continues, matching the teacher's
// "never abort the process" error-handling policy (spec.md §7).
func Assert(cond bool, msg string) {
	if cond {
		return
	}
	if enableAssert {
		panic(msg)
	}
	fmt.Fprintln(os.Stderr, "ecli: assertion failed:", msg)
}

// AssertNoError is Assert(err == nil, err.Error()).
func AssertNoError(err error) {
	if err == nil {
		return
	}
	Assert(false, err.Error())
}

// Close releases the trace log file, if one was opened.
func Close() {
	if logfile == nil {
		return
	}
	_ = logfile.Close()
	logfile = nil
}
