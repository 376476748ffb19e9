package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for REPL output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to.
type execIface interface {
	List(ctx context.Context, args []string) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, args []string) error
	Remove(ctx context.Context, args []string) error
	Import(ctx context.Context, args []string) error
	Assets(ctx context.Context) error
	Messages(ctx context.Context) error
}

// runREPL reads commands from reader until EOF, "exit" or "quit". The first
// token selects the command; the rest are its arguments. Handlers report
// their own errors, so returned errors are ignored here.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	interactive := isInteractive()
	for {
		if interactive {
			fmt.Print(strings.TrimSpace("ledger "+statusFn()) + "> ")
		}
		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printlnFn("Available commands: (l)ist, add, edit <id>, remove <id>, import <file>, assets, messages, exit")

		case "l", "list":
			_ = a.List(ctx, args)

		case "add":
			_ = a.Add(ctx)

		case "edit":
			_ = a.Edit(ctx, args)

		case "rm", "remove":
			_ = a.Remove(ctx, args)

		case "import":
			_ = a.Import(ctx, args)

		case "assets":
			_ = a.Assets(ctx)

		case "messages":
			_ = a.Messages(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
