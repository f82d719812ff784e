package ecli

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDirectCommandInvokesBinding(t *testing.T) {
	c, _ := newTestCLI(t)
	var gotArgs string
	c.AddBinding(Binding{
		Name: "set",
		Handler: func(handle any, args string, ctx any) ResultCode {
			gotArgs = args
			return 7
		},
	})
	code, err := c.ParseDirectCommand(nil, []byte("set 1"))
	require.NoError(t, err)
	require.EqualValues(t, 7, code)
	require.Equal(t, "1", gotArgs)
}

func TestParseDirectCommandUnmatchedReturnsSentinel(t *testing.T) {
	c, _ := newTestCLI(t)
	code, err := c.ParseDirectCommand(nil, []byte("nope"))
	require.ErrorIs(t, err, ErrNoSuchBinding)
	require.EqualValues(t, 1, code)
}

func TestParseDirectCommandDoesNotTouchHistory(t *testing.T) {
	c, _ := newTestCLI(t)
	c.AddBinding(Binding{Name: "set", Handler: func(any, string, any) ResultCode { return 0 }})
	c.ParseDirectCommand(nil, []byte("set 1"))
	if c.hist.itemsCount != 0 {
		t.Fatalf("direct-mode dispatch must not insert history entries")
	}
}

func TestParseDirectCommandAllWhitespaceIsNoop(t *testing.T) {
	c, _ := newTestCLI(t)
	code, err := c.ParseDirectCommand(nil, []byte("   "))
	if err != nil || code != 0 {
		t.Fatalf("code,err = %d,%v want 0,nil", code, err)
	}
}

func TestDispatchTokenizesArgsWhenRequested(t *testing.T) {
	c, _ := newTestCLI(t)
	var gotCount int
	c.AddBinding(Binding{
		Name:         "set",
		TokenizeArgs: true,
		Handler: func(handle any, args string, ctx any) ResultCode {
			gotCount = countTokens([]byte(args))
			return 0
		},
	})
	feedString(c, nil, "set a \"b c\"\r")
	if gotCount != 2 {
		t.Fatalf("tokenized arg count = %d, want 2", gotCount)
	}
}

func TestDispatchUnmatchedPrintsDefaultMessage(t *testing.T) {
	c, out := newTestCLI(t)
	feedString(c, nil, "bogus\r")
	if !contains(out.String(), `Unknown command: "bogus"`) {
		t.Fatalf("output %q should contain the unknown-command message", out.String())
	}
}

func TestDispatchUnmatchedUsesOnCommandHookInstead(t *testing.T) {
	var gotName, gotArgs string
	c, out := newTestCLI(t, WithOnCommand(func(name, args string) {
		gotName, gotArgs = name, args
	}))
	feedString(c, nil, "bogus foo\r")
	if gotName != "bogus" || gotArgs != "foo" {
		t.Fatalf("onCommand got (%q,%q), want (bogus,foo)", gotName, gotArgs)
	}
	if contains(out.String(), "Unknown command") {
		t.Fatalf("the default message must not fire when on-command is set")
	}
}

func contains(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
