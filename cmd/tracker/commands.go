package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/jrsteele09/employee-tracker/gateway"
	"github.com/jrsteele09/employee-tracker/identity"
	"github.com/jrsteele09/employee-tracker/internal/config"
	"github.com/jrsteele09/employee-tracker/session"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/ssh/terminal"
)

type cli struct {
	config  config.Config
	gateway *gateway.Client
	store   *session.Store
	log     zerolog.Logger
}

func (c *cli) dispatch(command string, args []string) error {
	ctx := context.Background()

	switch command {
	case "status":
		return c.status(ctx)
	case "signup":
		return c.signup(ctx, args)
	case "login":
		return c.login(ctx, args)
	case "logout":
		return c.logout(ctx)
	case "whoami":
		return c.whoami(ctx)
	case "dashboard":
		return c.dashboard(ctx)
	case "profile":
		return c.profile(ctx, args)
	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func (c *cli) status(ctx context.Context) error {
	status, err := c.gateway.Status(ctx)
	if err != nil {
		return fmt.Errorf("backend unreachable: %w", err)
	}
	fmt.Printf("%s %s: %s%s%s\n", status.API, status.Version, Green, status.Status, ResetColor)
	if status.Message != "" {
		fmt.Println(status.Message)
	}
	return nil
}

func (c *cli) signup(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("signup", flag.ExitOnError)
	email := flags.String("email", "", "email address")
	forename := flags.String("forename", "", "first name")
	lastname := flags.String("lastname", "", "last name")
	if err := flags.Parse(args); err != nil {
		return err
	}

	password, err := promptPassword("Password: ")
	if err != nil {
		return err
	}
	confirm, err := promptPassword("Confirm password: ")
	if err != nil {
		return err
	}

	result, err := c.store.Signup(ctx, identity.Registration{
		Forename:        *forename,
		Lastname:        *lastname,
		Email:           *email,
		Password:        password,
		ConfirmPassword: confirm,
	})
	if err != nil {
		return fmt.Errorf("%s", c.store.Snapshot().Err)
	}

	if c.store.Authenticated() {
		fmt.Printf("Welcome, %s!\n", result.User.FullName())
		return nil
	}
	// Email confirmation flows return no session token
	fmt.Println(result.Message)
	fmt.Println("Check your email to confirm the account, then run: tracker login")
	return nil
}

func (c *cli) login(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("login", flag.ExitOnError)
	email := flags.String("email", "", "email address")
	if err := flags.Parse(args); err != nil {
		return err
	}

	password, err := promptPassword("Password: ")
	if err != nil {
		return err
	}

	result, err := c.store.Login(ctx, identity.Credentials{Email: *email, Password: password})
	if err != nil {
		return fmt.Errorf("%s", c.store.Snapshot().Err)
	}
	if !c.store.Authenticated() {
		return fmt.Errorf("%s", result.Message)
	}

	fmt.Printf("Welcome back, %s!\n", result.User.FullName())
	return nil
}

func (c *cli) logout(ctx context.Context) error {
	if err := c.store.Logout(ctx); err != nil {
		return err
	}
	fmt.Println("Logged out")
	return nil
}

func (c *cli) whoami(ctx context.Context) error {
	if err := c.requireAuth(ctx); err != nil {
		return err
	}

	user := c.store.Snapshot().User
	fmt.Printf("%s <%s>\n", user.FullName(), user.Email)
	if !user.CreatedAt.IsZero() {
		fmt.Printf("Member since %s\n", user.CreatedAt.Format("2 January 2006"))
	}
	return nil
}

// requireAuth restores the session from the persisted token and refuses
// when it ends up anonymous. The protected-route check of the original UI.
func (c *cli) requireAuth(ctx context.Context) error {
	if err := c.store.Restore(ctx); err != nil {
		return err
	}
	if !c.store.Authenticated() {
		return fmt.Errorf("not logged in, run: tracker login -email you@example.com")
	}
	return nil
}

func promptPassword(label string) (string, error) {
	fmt.Print(label)
	fd := int(os.Stdin.Fd())
	if terminal.IsTerminal(fd) {
		password, err := terminal.ReadPassword(fd)
		fmt.Println()
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(password), nil
	}

	// Piped input (tests, scripts)
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return "", fmt.Errorf("read password: %w", scanner.Err())
	}
	return strings.TrimSpace(scanner.Text()), nil
}
