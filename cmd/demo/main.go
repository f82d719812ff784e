// Command demo is a tiny host program exercising the engine over a real
// terminal: it puts stdin into raw mode, feeds every byte to the engine,
// and registers a handful of bindings loosely modeled on the worked
// examples throughout spec.md (a simulated LED and ADC).
package main

import (
	"fmt"
	"os"

	colorable "github.com/mattn/go-colorable"

	ecli "github.com/embedcli/go-embedded-cli"
	"github.com/embedcli/go-embedded-cli/examples/hostterm"
)

func main() {
	if restore, err := hostterm.MakeRaw(os.Stdin); err != nil {
		fmt.Fprintln(os.Stderr, "hostterm: raw mode unavailable, falling back to line mode:", err)
	} else {
		defer restore()
	}

	out := colorable.NewColorableStdout()

	var ledOn bool
	adc := 512

	cli, err := ecli.New(
		ecli.WithInvitation("demo> "),
		ecli.WithWriteChar(func(b byte) { out.Write([]byte{b}) }),
		ecli.WithWriteString(func(s string) { fmt.Fprint(out, s) }),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ecli:", err)
		os.Exit(1)
	}

	cli.AddBinding(ecli.Binding{
		Name: "get-led",
		Help: "print the current simulated LED state",
		Handler: func(handle any, args string, ctx any) ecli.ResultCode {
			if ledOn {
				cli.Print("led: on")
			} else {
				cli.Print("led: off")
			}
			return 0
		},
	})

	cli.AddBinding(ecli.Binding{
		Name:         "set-led",
		Help:         "set-led <on|off>",
		TokenizeArgs: true,
		Handler: func(handle any, args string, ctx any) ecli.ResultCode {
			tok := []byte(args)
			name, ok := ecli.GetToken(tok, 1)
			if !ok || ecli.CountTokens(tok) != 1 {
				cli.Print("usage: set-led <on|off>")
				return 1
			}
			switch name {
			case "on":
				ledOn = true
			case "off":
				ledOn = false
			default:
				cli.Print("usage: set-led <on|off>")
				return 1
			}
			return 0
		},
	})

	cli.AddBinding(ecli.Binding{
		Name: "get-adc",
		Help: "print the last simulated ADC reading",
		Handler: func(handle any, args string, ctx any) ecli.ResultCode {
			cli.Print(fmt.Sprintf("adc: %d", adc))
			return 0
		},
	})

	buf := make([]byte, 1)
	for {
		n, err := os.Stdin.Read(buf)
		if n > 0 {
			cli.ReceiveChar(buf[0])
			cli.Process(nil)
		}
		if err != nil {
			return
		}
	}
}
