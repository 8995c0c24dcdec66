package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/MKhiriev/go-insight-keeper/internal/service"
	"github.com/MKhiriev/go-insight-keeper/models"
)

var (
	errEmailRequired    = errors.New("-email is required")
	errNegativeLimit    = errors.New("-limit must not be negative")
	errEmptyPassword    = errors.New("password must not be empty")
	errPasswordMismatch = errors.New("passwords do not match")
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

type options struct {
	email string
	name  string
	admin bool
	limit int
}

func parseOptions(fs *flag.FlagSet, args []string) (options, error) {
	var opts options

	fs.StringVar(&opts.email, "email", "", "account email (required)")
	fs.StringVar(&opts.name, "name", "", "display name (defaults to the email)")
	fs.BoolVar(&opts.admin, "admin", false, "mark the account as admin")
	fs.IntVar(&opts.limit, "limit", 0, "daily analysis limit (default 50, admin 999)")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if strings.TrimSpace(opts.email) == "" {
		return options{}, errEmailRequired
	}
	if opts.limit < 0 {
		return options{}, errNegativeLimit
	}

	return opts, nil
}

// promptPassword asks twice without echo on a terminal; otherwise it reads
// the first line of in, so the tool can be scripted.
func promptPassword(in *bufio.Reader, w io.Writer, isTerminal bool) (string, error) {
	if !isTerminal {
		line, err := in.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return "", fmt.Errorf("reading password from stdin: %w", err)
		}
		password := strings.TrimRight(line, "\r\n")
		if password == "" {
			return "", errEmptyPassword
		}
		return password, nil
	}

	first, err := promptHidden(w, "Password: ")
	if err != nil {
		return "", err
	}
	if first == "" {
		return "", errEmptyPassword
	}

	second, err := promptHidden(w, "Repeat password: ")
	if err != nil {
		return "", err
	}
	if first != second {
		return "", errPasswordMismatch
	}

	return first, nil
}

func promptHidden(w io.Writer, prompt string) (string, error) {
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return "", err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return string(pw), nil
}

func provision(ctx context.Context, auth service.AuthService, opts options, password string) (models.User, error) {
	user := models.User{
		Email:       opts.email,
		DisplayName: opts.name,
		IsAdmin:     opts.admin,
		DailyLimit:  opts.limit,
	}

	return auth.RegisterUser(ctx, user, password)
}
