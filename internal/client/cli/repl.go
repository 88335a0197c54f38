package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/navbug/compintel-cli/internal/client/gateway"
	"github.com/navbug/compintel-cli/internal/client/validation"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error

	Dashboard(ctx context.Context) error
	Compare(ctx context.Context) error

	Competitors(ctx context.Context) error
	ShowCompetitor(ctx context.Context, id string) error
	AddCompetitor(ctx context.Context) error
	EditCompetitor(ctx context.Context, id string) error
	RemoveCompetitor(ctx context.Context, id string) error
	Scrape(ctx context.Context, id string) error

	Updates(ctx context.Context, args []string) error
	Review(ctx context.Context, id string) error

	Trends(ctx context.Context, args []string) error

	Notifications(ctx context.Context, args []string) error
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error

	Settings(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the compintel CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current account (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help                 — show available commands
//	  - register             — create an account
//	  - login                — authenticate
//	  - exit | quit          — leave the program
//
//	Logged in:
//	  - help                 — show available commands
//	  - dashboard            — overview counters and recent updates
//	  - compare              — competitors side by side with recent activity
//	  - competitors          — list monitored companies
//	  - competitor <id>      — show one competitor with its stats
//	  - add                  — add a competitor (interactive form)
//	  - edit <id>            — edit a competitor (interactive form)
//	  - remove <id>          — stop monitoring a competitor
//	  - scrape <id>          — trigger an immediate re-check
//	  - updates [k=v ...]    — update feed (category, impact, status, competitor, limit)
//	  - review <id>          — mark an update reviewed
//	  - trends [status]      — detected patterns, optionally by status
//	  - notifications        — alerts ("notifications unread" for unread only)
//	  - read <id> | read-all — acknowledge alerts
//	  - settings             — edit notification preferences
//	  - whoami               — show the current account
//	  - logout               — end the session
//	  - exit | quit          — leave the program
//
// Command handlers return their errors here, where they are rendered once
// through errText. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("ci> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: dashboard, compare, competitors, competitor <id>, add, edit <id>, remove <id>, scrape <id>, updates, review <id>, trends, notifications, read <id>, read-all, settings, whoami, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			report(a.Register(ctx))

		case "login":
			report(a.Login(ctx))

		case "logout":
			report(a.Logout(ctx))

		case "whoami":
			report(a.Whoami(ctx))

		case "d", "dashboard":
			report(a.Dashboard(ctx))

		case "compare":
			report(a.Compare(ctx))

		case "c", "competitors":
			report(a.Competitors(ctx))

		case "competitor":
			withID(args, cmd, func(id string) error { return a.ShowCompetitor(ctx, id) })

		case "add":
			report(a.AddCompetitor(ctx))

		case "edit":
			withID(args, cmd, func(id string) error { return a.EditCompetitor(ctx, id) })

		case "remove":
			withID(args, cmd, func(id string) error { return a.RemoveCompetitor(ctx, id) })

		case "scrape":
			withID(args, cmd, func(id string) error { return a.Scrape(ctx, id) })

		case "u", "updates":
			report(a.Updates(ctx, args))

		case "review":
			withID(args, cmd, func(id string) error { return a.Review(ctx, id) })

		case "t", "trends":
			report(a.Trends(ctx, args))

		case "n", "notifications":
			report(a.Notifications(ctx, args))

		case "read":
			withID(args, cmd, func(id string) error { return a.MarkRead(ctx, id) })

		case "read-all":
			report(a.MarkAllRead(ctx))

		case "settings":
			report(a.Settings(ctx))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

// withID dispatches a command that needs a single id argument.
func withID(args []string, cmd string, fn func(id string) error) {
	if len(args) != 1 {
		printlnFn(fmt.Sprintf("Usage: %s <id>", cmd))
		return
	}
	report(fn(args[0]))
}

func report(err error) {
	if err != nil {
		printlnFn(errText(err))
	}
}

// errText renders an error for the terminal. Gateway and validation errors
// carry user-facing text already; anything else is shown as-is.
func errText(err error) string {
	var fieldErrs validation.FieldErrors
	if errors.As(err, &fieldErrs) {
		return "Invalid input. " + fieldErrs.Error()
	}
	return gateway.UserMessage(err)
}
