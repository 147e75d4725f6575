package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	List(ctx context.Context) error
	Get(ctx context.Context, id uint32) error
	Create(ctx context.Context) error
	Update(ctx context.Context, id uint32) error
	Delete(ctx context.Context, id uint32) error
}

const helpText = "Available commands: (l)ist, get <id>, create, update <id>, delete <id>, exit"

// runREPL reads commands line by line from reader and dispatches them to a.
// It shares reader with the command prompts so buffered input is never lost.
// The loop exits on EOF, on "exit"/"quit" or when ctx is done.
//
// Errors returned by command handlers are ignored here; handlers report
// their own errors.
func runREPL(ctx context.Context, a execIface, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}

		printlnFn("usuarios> ")
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printlnFn(helpText)

		case "l", "list":
			_ = a.List(ctx)

		case "create":
			_ = a.Create(ctx)

		case "get", "update", "delete":
			id, ok := parseIDArg(cmd, args)
			if !ok {
				continue
			}
			switch cmd {
			case "get":
				_ = a.Get(ctx, id)
			case "update":
				_ = a.Update(ctx, id)
			case "delete":
				_ = a.Delete(ctx, id)
			}

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func parseIDArg(cmd string, args []string) (uint32, bool) {
	if len(args) == 0 {
		printlnFn(fmt.Sprintf("Usage: %s <id>", cmd))
		return 0, false
	}
	id, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		printlnFn("Invalid id:", args[0])
		return 0, false
	}
	return uint32(id), true
}
