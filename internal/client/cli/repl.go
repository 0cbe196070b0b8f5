package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/foorum/internal/client/services"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	SignIn(ctx context.Context) error
	SignUp(ctx context.Context) error
	SignOut(ctx context.Context) error
	Post(ctx context.Context) error
	Feed(ctx context.Context) error
	Interact(ctx context.Context, action services.Action) error
	WhoAmI(ctx context.Context) error
	Storage(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the feed client.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF, when ctx is done, or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Always:
//	  - help                     show available commands
//	  - feed | list              show the feed
//	  - post                     write a post (asks to sign in first)
//	  - like | comment | share   post actions, followed by a post id
//	  - tool <name>              editor toolbar action, e.g. "tool bold"
//	  - whoami                   show the current identity
//	  - storage                  show what is stored locally
//	  - exit | quit              leave the program
//
//	Not signed in:
//	  - signin | login           sign in
//	  - signup | register        create an account
//
//	Signed in:
//	  - signout | logout         sign out
//
// Errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the loop focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}

		printlnFn(fmt.Sprintf("foo-rum (%s)> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: feed, post, like|comment|share <id>, tool <name>, whoami, storage, signout, exit")
			} else {
				printlnFn("Available commands: feed, post, like|comment|share <id>, tool <name>, whoami, storage, signin, signup, exit")
			}

		case "signin", "login":
			_ = a.SignIn(ctx)

		case "signup", "register":
			_ = a.SignUp(ctx)

		case "signout", "logout":
			_ = a.SignOut(ctx)

		case "post":
			_ = a.Post(ctx)

		case "feed", "list", "l":
			_ = a.Feed(ctx)

		case "like", "comment", "share":
			if len(args) == 0 {
				printlnFn("Usage:", cmd, "<post id>")
				continue
			}
			action, _ := services.ParseAction(cmd)
			_ = a.Interact(ctx, action)

		case "tool":
			if len(args) == 0 {
				printlnFn("Usage: tool <name>")
				continue
			}
			action, ok := services.ParseAction(strings.Join(args, " "))
			if !ok {
				printlnFn("Unknown tool:", strings.Join(args, " "))
				continue
			}
			_ = a.Interact(ctx, action)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "storage":
			_ = a.Storage(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
