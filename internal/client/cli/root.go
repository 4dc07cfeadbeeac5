package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"profilectl/internal/client/profile"
)

func (a *App) getStatus(ctx context.Context) string {
	if a.isLoggedIn(ctx) {
		if name := a.view.Record().UserName; name != "" {
			return fmt.Sprintf("(%s)", name)
		}
		return "(authenticated)"
	}
	return ""
}

// Root runs the interactive command loop until the user exits or stdin is
// closed.
func (a *App) Root(ctx context.Context) {
	fmt.Println("Welcome to profilectl (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("profilectl %s> ", a.getStatus(ctx))
		if !scanner.Scan() {
			break
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
			if a.isLoggedIn(ctx) {
				fmt.Println("Available commands: profile, edit <alias|email|mobile>, password, refresh, status, logout, exit")
			} else {
				fmt.Println("Available commands: login, status, exit")
			}

		case "login":
			_ = a.Login(ctx)
		case "profile":
			_ = a.ShowProfile(ctx)
		case "edit":
			if len(args) == 0 {
				fmt.Println("Usage: edit <alias|email|mobile>")
				continue
			}
			_ = a.EditField(ctx, editField(args[0]))
		case "password":
			_ = a.ChangePassword(ctx)
		case "refresh":
			_ = a.Refresh(ctx)
		case "status":
			_ = a.Status(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "exit", "quit":
			fmt.Println("Bye!")
			return

		default:
			fmt.Println("Unknown command:", cmd)
		}
	}
}

// editField maps a command argument to a profile field name. Unknown
// arguments pass through so EditField can report them.
func editField(arg string) profile.Field {
	switch strings.ToLower(arg) {
	case "alias", "aliasname":
		return profile.FieldAlias
	case "email":
		return profile.FieldEmail
	case "mobile", "phone":
		return profile.FieldMobile
	default:
		return profile.Field(arg)
	}
}
