// tether-repl is an interactive demo of the tether library: it keeps one
// proxy over a swappable string array and prints every change notification
// the proxy re-broadcasts.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/phroun/tether"
)

// REPL holds the state of the interactive session.
type REPL struct {
	proxy    *tether.Proxy[string]
	content  *tether.Array[string]
	rl       *readline.Instance
	watcher  *printObserver
	watching bool
}

// printObserver prints each of the proxy's notifications as it fires.
type printObserver struct{}

func (printObserver) ArrayWillChange(_ tether.Sequence[string], start, removed, added int) {
	fmt.Printf("  event: will(start=%d removed=%s added=%s)\n",
		start, formatCount(removed), formatCount(added))
}

func (printObserver) ArrayDidChange(_ tether.Sequence[string], start, removed, added int) {
	fmt.Printf("  event: did(start=%d removed=%s added=%s)\n",
		start, formatCount(removed), formatCount(added))
}

func formatCount(n int) string {
	if n == tether.Unknown {
		return "?"
	}
	return strconv.Itoa(n)
}

func main() {
	fmt.Println("Tether REPL - Observable Array Proxy Demo")
	fmt.Println("Type 'help' for available commands, 'quit' to exit")
	fmt.Println()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "tether> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Printf("Error initializing readline: %v\n", err)
		os.Exit(1)
	}
	defer rl.Close()

	repl := &REPL{rl: rl, watcher: &printObserver{}}

	for {
		input, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			if errors.Is(err, io.EOF) {
				fmt.Println("Goodbye!")
				break
			}
			break
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if !repl.handleCommand(input) {
			break
		}
	}

	if repl.proxy != nil {
		repl.proxy.Destroy()
	}
}

func (r *REPL) handleCommand(input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return true
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help":
		r.printHelp()

	case "quit", "exit":
		fmt.Println("Goodbye!")
		return false

	case "new":
		r.cmdNew(args)

	case "swap":
		r.cmdSwap(args)

	case "show", "dump":
		r.cmdShow()

	case "len":
		r.cmdLen()

	case "at":
		r.cmdAt(args)

	case "replace":
		r.cmdReplace(args)

	case "append":
		r.cmdAppend(args)

	case "insert":
		r.cmdInsert(args)

	case "removeat":
		r.cmdRemoveAt(args)

	case "set":
		r.cmdSet(args)

	case "watch":
		r.cmdWatch(args)

	case "destroy":
		r.cmdDestroy()

	default:
		fmt.Printf("Unknown command: %s. Type 'help' for available commands.\n", cmd)
	}

	return true
}

func (r *REPL) printHelp() {
	help := `
Available Commands:
-------------------

PROXY LIFECYCLE:
  new <elems...>            Create a proxy over a new array of elements
  swap <elems...>           Swap the content for a new array (full-range bracket)
  destroy                   Destroy the proxy (detaches its subscription)

READ OPERATIONS:
  show                      Print the elements the proxy exposes
  len                       Print the proxy's length
  at <i>                    Print the element at index i

EDIT OPERATIONS (through the proxy):
  replace <start> <n> <elems...>  Splice n elements out at start, insert elems
  append <elems...>               Append elements to the content
  insert <i> <elem>               Insert elem at index i
  removeat <i>                    Remove the element at index i
  set <i> <elem>                  Replace the element at index i

OBSERVATION:
  watch on|off              Print the proxy's change notifications as they fire

OTHER:
  help                      Show this help message
  quit, exit                Exit the REPL
`
	fmt.Println(help)
}

func (r *REPL) cmdNew(args []string) {
	if r.proxy != nil {
		r.proxy.Destroy()
	}

	r.content = tether.NewArray(args...)
	proxy, err := tether.NewProxy[string](r.content)
	if err != nil {
		fmt.Printf("Error creating proxy: %v\n", err)
		return
	}
	r.proxy = proxy
	if r.watching {
		r.proxy.AddArrayObserver(r.watcher)
	}
	fmt.Printf("Created proxy over %d element(s)\n", r.proxy.Len())
}

func (r *REPL) cmdSwap(args []string) {
	if !r.requireProxy() {
		return
	}
	next := tether.NewArray(args...)
	if err := r.proxy.SetContent(next); err != nil {
		fmt.Printf("Error swapping content: %v\n", err)
		return
	}
	r.content = next
	fmt.Printf("Swapped content, length is now %d\n", r.proxy.Len())
}

func (r *REPL) cmdShow() {
	if !r.requireProxy() {
		return
	}
	n := r.proxy.Len()
	if n == 0 {
		fmt.Println("(empty)")
		return
	}
	for i := 0; i < n; i++ {
		v, _ := r.proxy.ObjectAt(i)
		fmt.Printf("%4d: %s\n", i, v)
	}
}

func (r *REPL) cmdLen() {
	if !r.requireProxy() {
		return
	}
	fmt.Printf("Length: %d\n", r.proxy.Len())
}

func (r *REPL) cmdAt(args []string) {
	if !r.requireProxy() {
		return
	}
	if len(args) != 1 {
		fmt.Println("Usage: at <index>")
		return
	}
	i, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Printf("Invalid index: %s\n", args[0])
		return
	}
	v, ok := r.proxy.ObjectAt(i)
	if !ok {
		fmt.Printf("Index %d is out of range\n", i)
		return
	}
	fmt.Printf("%4d: %s\n", i, v)
}

func (r *REPL) cmdReplace(args []string) {
	if !r.requireProxy() {
		return
	}
	if len(args) < 2 {
		fmt.Println("Usage: replace <start> <remove> <elems...>")
		return
	}
	start, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Printf("Invalid start: %s\n", args[0])
		return
	}
	remove, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Printf("Invalid remove count: %s\n", args[1])
		return
	}
	if err := r.proxy.Replace(start, remove, args[2:]); err != nil {
		fmt.Printf("Error replacing: %v\n", err)
	}
}

func (r *REPL) cmdAppend(args []string) {
	if !r.requireProxy() {
		return
	}
	r.content.Append(args...)
}

func (r *REPL) cmdInsert(args []string) {
	if !r.requireProxy() {
		return
	}
	if len(args) != 2 {
		fmt.Println("Usage: insert <index> <elem>")
		return
	}
	i, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Printf("Invalid index: %s\n", args[0])
		return
	}
	if err := r.content.Insert(i, args[1]); err != nil {
		fmt.Printf("Error inserting: %v\n", err)
	}
}

func (r *REPL) cmdRemoveAt(args []string) {
	if !r.requireProxy() {
		return
	}
	if len(args) != 1 {
		fmt.Println("Usage: removeat <index>")
		return
	}
	i, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Printf("Invalid index: %s\n", args[0])
		return
	}
	removed, err := r.content.RemoveAt(i)
	if err != nil {
		fmt.Printf("Error removing: %v\n", err)
		return
	}
	fmt.Printf("Removed %q\n", removed)
}

func (r *REPL) cmdSet(args []string) {
	if !r.requireProxy() {
		return
	}
	if len(args) != 2 {
		fmt.Println("Usage: set <index> <elem>")
		return
	}
	i, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Printf("Invalid index: %s\n", args[0])
		return
	}
	if err := r.content.Set(i, args[1]); err != nil {
		fmt.Printf("Error setting: %v\n", err)
	}
}

func (r *REPL) cmdWatch(args []string) {
	if !r.requireProxy() {
		return
	}
	if len(args) != 1 {
		fmt.Println("Usage: watch on|off")
		return
	}
	switch strings.ToLower(args[0]) {
	case "on":
		r.proxy.AddArrayObserver(r.watcher)
		r.watching = true
		fmt.Println("Watching proxy notifications")
	case "off":
		r.proxy.RemoveArrayObserver(r.watcher)
		r.watching = false
		fmt.Println("Stopped watching")
	default:
		fmt.Println("Usage: watch on|off")
	}
}

func (r *REPL) cmdDestroy() {
	if !r.requireProxy() {
		return
	}
	r.proxy.Destroy()
	fmt.Println("Proxy destroyed")
}

func (r *REPL) requireProxy() bool {
	if r.proxy == nil {
		fmt.Println("No proxy. Use 'new <elems...>' first.")
		return false
	}
	return true
}
