package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/joho/godotenv"
	"github.com/jrsteele09/employee-tracker/gateway"
	"github.com/jrsteele09/employee-tracker/internal/config"
	"github.com/jrsteele09/employee-tracker/session"
	"github.com/jrsteele09/employee-tracker/tokenstore"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %s\n", err)
	}
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from panic: %v\n", r)
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	_ = godotenv.Load()
	c := config.New()

	logger := newLogger(c.GetLogLevel())

	flag.Usage = usage
	flag.Parse()
	if flag.NArg() == 0 {
		displayAppname(c.GetAppName())
		usage()
		return nil
	}

	tokens := tokenstore.NewFileRepo(c.GetTokenFile())
	client := gateway.New(
		c.GetBaseURL(),
		tokens,
		gateway.WithTimeout(time.Duration(c.GetRequestTimeoutSeconds())*time.Second),
		gateway.WithLogger(logger),
	)
	store, err := session.NewStore(client, tokens, session.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("session.NewStore: %w", err)
	}

	cli := &cli{config: c, gateway: client, store: store, log: logger}
	return cli.dispatch(flag.Arg(0), flag.Args()[1:])
}

func newLogger(level string) zerolog.Logger {
	logLevel, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		logLevel = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(logLevel).
		With().Timestamp().Logger()
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}

func usage() {
	fmt.Println("Usage: tracker <command> [flags]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  status               Check the backend is reachable")
	fmt.Println("  signup               Create an account")
	fmt.Println("  login                Log in and persist the session token")
	fmt.Println("  logout               Log out and clear the session token")
	fmt.Println("  whoami               Show the logged-in user")
	fmt.Println("  dashboard            Show where everyone is today")
	fmt.Println("  profile [user-id]    Show a profile (yours when no id is given)")
}
