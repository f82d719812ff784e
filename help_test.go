package ecli

import "testing"

func TestHelpNoArgsListsEveryBinding(t *testing.T) {
	c, out := newTestCLI(t)
	c.AddBinding(Binding{Name: "set", Help: "assign a value"})
	c.AddBinding(Binding{Name: "get"})

	feedString(c, nil, "help\r")
	got := out.String()
	for _, want := range []string{" * help", " * set", "\tassign a value", " * get"} {
		if !contains(got, want) {
			t.Fatalf("help output %q missing %q", got, want)
		}
	}
}

func TestHelpWithKnownNameShowsItsHelp(t *testing.T) {
	c, out := newTestCLI(t)
	c.AddBinding(Binding{Name: "set", Help: "assign a value"})
	feedString(c, nil, "help set\r")
	if !contains(out.String(), "assign a value") {
		t.Fatalf("output %q should contain the command's help text", out.String())
	}
}

func TestHelpWithUnknownNameReportsUnknownCommand(t *testing.T) {
	c, out := newTestCLI(t)
	feedString(c, nil, "help bogus\r")
	if !contains(out.String(), `Unknown command: "bogus"`) {
		t.Fatalf("output %q should report the unknown command", out.String())
	}
}

func TestHelpWithTooManyArgsReportsUsage(t *testing.T) {
	c, out := newTestCLI(t)
	feedString(c, nil, "help a b\r")
	if !contains(out.String(), `receives one or zero arguments`) {
		t.Fatalf("output %q should report the usage error", out.String())
	}
}

func TestHelpWithoutHelpTextReportsUnavailable(t *testing.T) {
	c, out := newTestCLI(t)
	c.AddBinding(Binding{Name: "raw"})
	feedString(c, nil, "help raw\r")
	if !contains(out.String(), "Help is not available") {
		t.Fatalf("output %q should say help is unavailable", out.String())
	}
}
