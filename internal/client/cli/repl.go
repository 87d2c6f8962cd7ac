package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface is the command surface the REPL needs. App satisfies it; tests
// can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Refresh(ctx context.Context) error
	List(ctx context.Context, args []string) error
	Add(ctx context.Context, args []string) error
	Edit(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	Read(ctx context.Context, args []string) error
	Contact(ctx context.Context) error
	Upload(ctx context.Context, args []string) error
}

const (
	helpLoggedOut = "Available commands: login, contact, show project <id>, exit"
	helpLoggedIn  = "Available commands: (l)ist <kind>, add <kind>, edit <kind> <id>, delete <kind> <id>, " +
		"show project <id>, read <message id>, upload <file> [profile|project <id>], refresh, contact, logout, exit\n" +
		"Kinds: profile, educations, skills, projects, experiences, links, messages"
)

// runREPL reads commands from scanner until EOF or "exit"/"quit" and
// dispatches them to a. Command errors are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("portfolio %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "login":
			err = a.Login(ctx)
		case "contact":
			err = a.Contact(ctx)
		case "show":
			err = a.Show(ctx, args)

		case "logout", "refresh", "l", "list", "add", "edit", "delete", "read", "upload":
			if !a.isLoggedIn() {
				printlnFn("Please log in first")
				continue
			}
			err = dispatchAuthenticated(ctx, a, cmd, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err)
		}
	}
}

func dispatchAuthenticated(ctx context.Context, a execIface, cmd string, args []string) error {
	switch cmd {
	case "logout":
		return a.Logout(ctx)
	case "refresh":
		return a.Refresh(ctx)
	case "l", "list":
		return a.List(ctx, args)
	case "add":
		return a.Add(ctx, args)
	case "edit":
		return a.Edit(ctx, args)
	case "delete":
		return a.Delete(ctx, args)
	case "read":
		return a.Read(ctx, args)
	case "upload":
		return a.Upload(ctx, args)
	}
	return fmt.Errorf("unknown command %q", cmd)
}
