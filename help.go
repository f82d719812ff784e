package ecli

import "fmt"

// registerHelp installs the engine's one internal binding, per spec.md
// §4.9. It closes over c directly rather than threading the engine through
// Context, since "help" needs the whole binding table, not a single
// command's worth of state.
func (c *CLI) registerHelp() bool {
	return c.bindings.add(Binding{
		Name:         "help",
		Help:         "List every command, or show help for one command",
		TokenizeArgs: true,
		Handler: func(handle any, args string, ctx any) ResultCode {
			return c.helpHandler(args)
		},
	})
}

func (c *CLI) helpHandler(args string) ResultCode {
	buf := []byte(args)
	switch countTokens(buf) {
	case 0:
		for i := range c.bindings.entries {
			b := c.bindings.entries[i].Binding
			msg := " * " + b.Name
			if b.Help != "" {
				msg += "\n\t" + b.Help
			}
			c.Print(msg)
		}
		return 0

	case 1:
		name, _ := tokenAt(buf, 1)
		entry := c.bindings.find(name)
		if entry == nil {
			c.Print(fmt.Sprintf("Unknown command: %q. Write \"help\" for a list of available commands", name))
			return 1
		}
		if entry.Help == "" {
			c.Print("Help is not available")
			return 1
		}
		c.Print(entry.Help)
		return 0

	default:
		c.Print(`Command "help" receives one or zero arguments`)
		return 0
	}
}
