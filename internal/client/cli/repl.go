package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Refresh(ctx context.Context) error
	Stats(ctx context.Context) error
	News(ctx context.Context, args []string) error
	Programs(ctx context.Context, args []string) error
	UMKM(ctx context.Context, args []string) error
	Awards(ctx context.Context, args []string) error
	OilPrices(ctx context.Context, args []string) error
	Instagram(ctx context.Context, args []string) error
	WorkAreas(ctx context.Context, args []string) error
	Settings(ctx context.Context, args []string) error
}

const helpLoggedOut = "Available commands: login, exit"

const helpLoggedIn = `Available commands:
  whoami | refresh | stats | logout | exit
  news      list|show|add|update|delete|publish|unpublish
  program   list|show|add|update|delete
  umkm      list|show|add|update|delete|feature|unfeature
  award     list|add|delete
  oilprice  list|add|import|delete
  instagram list|sync|feature|unfeature|hide|unhide
  workarea  list|show|add|update|delete
  settings  show|edit|logo
Resource verbs that target one item take its id, e.g. "news delete 3".`

// runREPL starts a read–eval–print loop for the admin console.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers render
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		fmt.Printf("tjsl%s> ", statusFn())
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "refresh":
			_ = a.Refresh(ctx)

		case "stats":
			_ = a.Stats(ctx)

		case "news":
			_ = a.News(ctx, args)

		case "program", "programs":
			_ = a.Programs(ctx, args)

		case "umkm":
			_ = a.UMKM(ctx, args)

		case "award", "awards":
			_ = a.Awards(ctx, args)

		case "oilprice", "oilprices":
			_ = a.OilPrices(ctx, args)

		case "instagram", "ig":
			_ = a.Instagram(ctx, args)

		case "workarea", "workareas":
			_ = a.WorkAreas(ctx, args)

		case "settings":
			_ = a.Settings(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
