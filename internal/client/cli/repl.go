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
	isAdmin() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Forgot(ctx context.Context) error
	List(ctx context.Context, args []string) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Export(ctx context.Context, args []string) error
	Overview(ctx context.Context) error
	Stats(ctx context.Context) error
	Check(ctx context.Context, args []string) error
	Top(ctx context.Context) error
	Profile(ctx context.Context) error
	Rename(ctx context.Context) error
	Passwd(ctx context.Context) error
	DeleteAcc(ctx context.Context) error
	Draws(ctx context.Context) error
	AddDraw(ctx context.Context) error
	EditDraw(ctx context.Context, args []string) error
	DelDraw(ctx context.Context, args []string) error
	Logout(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: register, login, forgot, exit"
	helpLoggedIn  = "Available commands: (l)ist, add, edit, delete, export csv|pdf|charts, " +
		"overview, stats, check <digits>, top, profile, rename, passwd, deleteacc, logout, exit"
	helpAdmin = "Admin commands: draws, adddraw, editdraw <id>, deldraw <id>"
)

// runREPL starts a simple read–eval–print loop for the LotteRich CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands requiring a signed-in session are rejected up front while logged
// out, and the admin commands additionally require the admin role.
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("lotterich %s> ", statusFn()))
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
				if a.isAdmin() {
					printlnFn(helpAdmin)
				}
			} else {
				printlnFn(helpLoggedOut)
			}
			continue

		case "exit", "quit":
			printlnFn("Bye!")
			return

		case "register":
			_ = a.Register(ctx)
			continue

		case "login":
			_ = a.Login(ctx)
			continue

		case "forgot":
			_ = a.Forgot(ctx)
			continue
		}

		if !a.isLoggedIn() {
			printlnFn("Please login first (type 'help' for commands)")
			continue
		}

		switch cmd {
		case "l", "list":
			_ = a.List(ctx, args)

		case "add":
			_ = a.Add(ctx)

		case "edit", "update":
			_ = a.Edit(ctx, args)

		case "delete":
			_ = a.Delete(ctx, args)

		case "export":
			_ = a.Export(ctx, args)

		case "overview":
			_ = a.Overview(ctx)

		case "stats":
			_ = a.Stats(ctx)

		case "check":
			_ = a.Check(ctx, args)

		case "top":
			_ = a.Top(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "rename":
			_ = a.Rename(ctx)

		case "passwd":
			_ = a.Passwd(ctx)

		case "deleteacc":
			_ = a.DeleteAcc(ctx)

		case "draws", "adddraw", "editdraw", "deldraw":
			if !a.isAdmin() {
				printlnFn("Admin commands require an administrator account")
				continue
			}
			switch cmd {
			case "draws":
				_ = a.Draws(ctx)
			case "adddraw":
				_ = a.AddDraw(ctx)
			case "editdraw":
				_ = a.EditDraw(ctx, args)
			case "deldraw":
				_ = a.DelDraw(ctx, args)
			}

		case "logout":
			_ = a.Logout(ctx)

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
