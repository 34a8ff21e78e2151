// Package cmd implements the CLI command structure for todo.
package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"todoapp/internal/config"
	"todoapp/internal/logging"
	"todoapp/internal/settings"
	"todoapp/internal/todo"
	"todoapp/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Run executes the todo CLI. The first argument is the action, the rest
// are passed to it verbatim; with no arguments the action is "list".
func Run(ctx context.Context, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	return runWith(ctx, cfg, args, os.Stdin, os.Stdout)
}

func runWith(ctx context.Context, cfg *config.Config, args []string, stdin io.Reader, stdout io.Writer) error {
	logger := logging.New(cfg.LogLevel)

	action := "list"
	var params []string
	if len(args) > 0 {
		action = args[0]
		params = args[1:]
	}

	settingsPath, st, err := settings.Load(cfg.ConfigDir)
	if err != nil {
		return err
	}

	dataPath, list, err := todo.Load(cfg.DataDir)
	if err != nil {
		return err
	}
	logger.Debug("loaded record file", "path", dataPath, "items", len(list))

	// mutate runs one mutating operation, persists the whole list, and
	// reprints it unless silent mode is on.
	mutate := func(op func() error) error {
		if err := op(); err != nil {
			return err
		}
		if err := todo.Save(list, dataPath); err != nil {
			return err
		}
		logger.Debug("saved record file", "path", dataPath, "items", len(list))
		if st.Silent == "off" {
			ui.RenderList(stdout, list, cfg.NoColor)
		}
		return nil
	}

	switch action {
	case "add":
		if err := requireParams(action, params); err != nil {
			return err
		}
		return mutate(func() error {
			list.Add(params)
			return nil
		})
	case "list":
		ui.RenderList(stdout, list, cfg.NoColor)
		return nil
	case "remove":
		if err := requireParams(action, params); err != nil {
			return err
		}
		return mutate(func() error { return list.Remove(params) })
	case "clear":
		return mutate(func() error { return list.Remove([]string{"all"}) })
	case "check":
		if err := requireParams(action, params); err != nil {
			return err
		}
		return mutate(func() error { return list.Check(params) })
	case "uncheck":
		if err := requireParams(action, params); err != nil {
			return err
		}
		return mutate(func() error { return list.Uncheck(params) })
	case "sort":
		// Parameters are accepted but unused, reserved for future
		// ordering options.
		return mutate(func() error {
			list.Sort()
			return nil
		})
	case "edit":
		if err := requireParams(action, params); err != nil {
			return err
		}
		return mutate(func() error {
			return list.Edit(params, bufio.NewReader(stdin), stdout)
		})
	case "set":
		return settings.Set(&st, settingsPath, params, stdout)
	case "tui":
		return ui.RunTUI(ctx, dataPath, list)
	case "help":
		printUsage(stdout)
		return nil
	case "version":
		fmt.Fprintf(stdout, "todo %s\n", Version)
		return nil
	default:
		fmt.Fprintf(stdout, "Invalid action: %s\n", action)
		return nil
	}
}

// requireParams enforces the shared precondition that selector-taking
// actions need at least one parameter.
func requireParams(action string, params []string) error {
	if len(params) == 0 {
		return fmt.Errorf("Invalid use of `%s`. See `todo help` for options", action)
	}
	return nil
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "add <items...>")
	fmt.Fprintln(w, "        Add item(s) to the todo list")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "edit <item_positions...>")
	fmt.Fprintln(w, "        Edit item(s) in the todo list")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "list")
	fmt.Fprintln(w, "        Print the todo list. Use the numeric positions listed for commands with <item_positions...> parameters")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "remove <item_positions...> | \"all\" | \"checked\" | \"completed\"")
	fmt.Fprintln(w, "        Remove item(s) from the todo list")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "clear")
	fmt.Fprintln(w, "        Clears all items from the todo list (equivalent to \"remove all\")")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "check <item_positions...> | \"all\"")
	fmt.Fprintln(w, "        Mark item(s) as completed")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "uncheck <item_positions...> | \"all\"")
	fmt.Fprintln(w, "        Mark item(s) as incomplete")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "sort")
	fmt.Fprintln(w, "        Sort items such that completed items appear last")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "tui")
	fmt.Fprintln(w, "        Browse and update the todo list interactively")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "set(?) <setting> <option>")
	fmt.Fprintln(w, "        Change config setting to have value <option>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Any parameters with <...> signify that you can use multiple space-separated parameters.")
	fmt.Fprintln(w, "Any action marked with a (?) has further documentation (i.e, run `todo set help`)")
}
