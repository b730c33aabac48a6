// Package main provides a terminal playground for interact containers.
// It builds a container around a demo function and drives it from stdin,
// so control wiring and presets can be exercised without a UI host.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-drift/interact/pkg/controls"
	"github.com/go-drift/interact/pkg/display"
	"github.com/go-drift/interact/pkg/interact"
)

func main() {
	presetPath := flag.String("preset", "", "YAML preset file with control overrides")
	manual := flag.Bool("manual", false, "require an explicit run command instead of reacting to changes")
	watch := flag.Bool("watch", false, "rebuild the container when the preset file changes")
	flag.Parse()

	var preset *interact.Preset
	if *presetPath != "" {
		var err error
		preset, err = interact.LoadPreset(*presetPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading preset: %v\n", err)
			os.Exit(1)
		}
	}

	iv, err := build(preset, *manual)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building container: %v\n", err)
		os.Exit(1)
	}

	updates := make(chan *interact.Preset, 1)
	if *watch {
		if *presetPath == "" {
			fmt.Fprintln(os.Stderr, "Error: -watch needs -preset")
			os.Exit(1)
		}
		stop, err := interact.WatchPreset(*presetPath, func(p *interact.Preset, err error) {
			if err != nil {
				fmt.Fprintf(os.Stderr, "preset reload: %v\n", err)
				return
			}
			select {
			case updates <- p:
			default:
			}
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error watching preset: %v\n", err)
			os.Exit(1)
		}
		defer stop()
	}

	fmt.Println("Commands: show | set <param> <value> | run | quit")
	repl(iv, *manual, updates)
}

// build assembles the demo container, applying preset overrides when given.
func build(preset *interact.Preset, manual bool) (*interact.Interactive, error) {
	overrides := map[string]any{}
	if preset != nil {
		var err error
		overrides, err = preset.Overrides()
		if err != nil {
			return nil, err
		}
	}
	if manual {
		overrides[interact.OptManual] = true
	}
	// A byte stream cannot clear, so keep every result visible.
	overrides[interact.OptClearOutput] = false

	sig := interact.Signature{
		interact.Param{Name: "greeting"}.WithDefault("Hello"),
		interact.Param{Name: "name"}.WithDefault("World"),
		interact.Param{Name: "repeat"}.WithAnnotation([3]int{1, 5, 1}),
		interact.Param{Name: "shout"}.WithDefault(false),
	}
	return interact.Interact(demo, sig, overrides, display.NewWriter(os.Stdout))
}

// demo is the playground's target function.
func demo(args interact.Args) (any, error) {
	line := fmt.Sprintf("%v, %v!", args["greeting"], args["name"])
	if args["shout"].(bool) {
		line = strings.ToUpper(line)
	}
	return strings.Repeat(line+" ", args["repeat"].(int)), nil
}

// repl reads commands from stdin until quit or EOF. Preset updates queued
// by the watcher are applied between commands, on this goroutine.
func repl(iv *interact.Interactive, manual bool, updates <-chan *interact.Preset) {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		select {
		case p := <-updates:
			next, err := build(p, manual)
			if err != nil {
				fmt.Printf("preset reload: %v\n", err)
				break
			}
			iv.Dispose()
			iv = next
			fmt.Println("preset reloaded")
		default:
		}

		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "quit", "exit":
			return
		case "show":
			for _, c := range iv.Controls() {
				fmt.Printf("  %-10s %v\n", c.Key(), c.Value())
			}
		case "run":
			if iv.Manual() {
				iv.RunButton().Click()
			} else {
				fmt.Println("reactive mode runs on every change; use set")
			}
		case "set":
			if len(fields) != 3 {
				fmt.Println("usage: set <param> <value>")
				continue
			}
			if err := setControl(iv, fields[1], fields[2]); err != nil {
				fmt.Printf("cannot set %s: %v\n", fields[1], err)
			}
		default:
			fmt.Printf("unknown command %q\n", fields[0])
		}
	}
}

// setControl parses raw according to the control's value type and applies it.
func setControl(iv *interact.Interactive, key, raw string) error {
	for _, c := range iv.Controls() {
		if c.Key() != key {
			continue
		}
		v, err := parseValue(c, raw)
		if err != nil {
			return err
		}
		return c.SetValue(v)
	}
	return fmt.Errorf("no control named %q", key)
}

func parseValue(c controls.Control, raw string) (any, error) {
	switch c.Value().(type) {
	case int:
		return strconv.Atoi(raw)
	case float64:
		return strconv.ParseFloat(raw, 64)
	case bool:
		return strconv.ParseBool(raw)
	default:
		return raw, nil
	}
}
