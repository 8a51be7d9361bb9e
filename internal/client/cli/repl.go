package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// runREPL reads commands line by line and dispatches them through the
// navigator, so the route guard covers every destination. The loop exits on
// EOF, context cancellation, or "exit"/"quit".
//
// Errors returned by views are shown to the user and the loop continues;
// a failed call requires an explicit user-initiated retry.
func (a *App) runREPL(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}

		fmt.Fprintf(a.out, "st %s> ", a.status(ctx))
		line, err := a.reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				return
			}
			fmt.Fprintln(a.out, "input error:", err)
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if cmd == "exit" || cmd == "quit" {
			fmt.Fprintln(a.out, "Bye!")
			return
		}

		if err := a.execute(ctx, cmd, args); err != nil {
			fmt.Fprintln(a.out, "error:", err)
		}
	}
}

// execute maps a REPL command onto a navigation path. Commands taking an id
// print a usage hint when it is missing.
func (a *App) execute(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "help":
		a.printHelp(ctx)
		return nil

	case "login", "register", "dashboard", "subjects", "tasks", "account", "theme":
		return a.nav.Go(ctx, cmd)

	case "addsubject":
		return a.nav.Go(ctx, "subjects/add")
	case "delsubject":
		return a.goWithID(ctx, cmd, args, "subjects/%s/delete")
	case "files":
		return a.goWithID(ctx, cmd, args, "subjects/%s")
	case "upload":
		return a.goWithID(ctx, cmd, args, "subjects/%s/upload")

	case "rename":
		return a.goWithTwoIDs(ctx, cmd, args, "subjects/%s/files/%s/rename")
	case "download":
		return a.goWithTwoIDs(ctx, cmd, args, "subjects/%s/files/%s/download")
	case "delfile":
		return a.goWithID(ctx, cmd, args, "files/%s/delete")

	case "addtask":
		return a.nav.Go(ctx, "tasks/add")
	case "edittask":
		return a.goWithID(ctx, cmd, args, "tasks/%s/edit")
	case "deltask":
		return a.goWithID(ctx, cmd, args, "tasks/%s/delete")

	case "editaccount":
		return a.nav.Go(ctx, "account/edit")
	case "delaccount":
		return a.nav.Go(ctx, "account/delete")

	case "logout":
		return a.logout(ctx)

	default:
		fmt.Fprintln(a.out, "Unknown command:", cmd)
		return nil
	}
}

func (a *App) goWithID(ctx context.Context, cmd string, args []string, pattern string) error {
	if len(args) == 0 {
		fmt.Fprintf(a.out, "Usage: %s <id>\n", cmd)
		return nil
	}
	return a.nav.Go(ctx, fmt.Sprintf(pattern, args[0]))
}

func (a *App) goWithTwoIDs(ctx context.Context, cmd string, args []string, pattern string) error {
	if len(args) < 2 {
		fmt.Fprintf(a.out, "Usage: %s <subjectId> <fileId>\n", cmd)
		return nil
	}
	return a.nav.Go(ctx, fmt.Sprintf(pattern, args[0], args[1]))
}

func (a *App) printHelp(ctx context.Context) {
	if a.auth.IsLoggedIn(ctx) {
		fmt.Fprintln(a.out, "Available commands:")
		fmt.Fprintln(a.out, "  dashboard                     today's tasks and learning time")
		fmt.Fprintln(a.out, "  subjects | addsubject | delsubject <id>")
		fmt.Fprintln(a.out, "  files <subjectId> | upload <subjectId>")
		fmt.Fprintln(a.out, "  rename <subjectId> <fileId> | download <subjectId> <fileId> | delfile <fileId>")
		fmt.Fprintln(a.out, "  tasks | addtask | edittask <id> | deltask <id>")
		fmt.Fprintln(a.out, "  account | editaccount | delaccount | theme")
		fmt.Fprintln(a.out, "  logout | exit")
	} else {
		fmt.Fprintln(a.out, "Available commands: login, register, exit")
	}
}

func (a *App) logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
