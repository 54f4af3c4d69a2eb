// Package useradmin implements the interactive account-creation tool.
// It prompts for an email and a password (read without echo), validates
// them with the same rules the web signup uses, and creates the account
// directly through the user service.
package useradmin

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/dmaltsev/journal/internal/common"
	"github.com/dmaltsev/journal/internal/server/models"
	"github.com/dmaltsev/journal/internal/validation"
)

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// UserCreator is the slice of the user service this tool needs.
type UserCreator interface {
	SignUp(ctx context.Context, email string, password string) (*models.User, error)
}

type App struct {
	users UserCreator
	in    *bufio.Reader
	out   io.Writer
}

func NewApp(users UserCreator, in io.Reader, out io.Writer) *App {
	return &App{users: users, in: bufio.NewReader(in), out: out}
}

// getSimpleText prints a prompt and reads a single line of input.
// The trailing newline is trimmed. If EOF occurs after some input was
// read, the partial line is returned.
func (a *App) getSimpleText(prompt string) (string, error) {
	if _, err := fmt.Fprint(a.out, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := a.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// getPassword prints a password prompt and reads a password from the
// terminal without echo. A newline is printed after the read to keep
// the UI tidy.
func (a *App) getPassword(prompt string) ([]byte, error) {
	if _, err := fmt.Fprint(a.out, prompt); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(a.out)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// Run walks the operator through creating one account.
func (a *App) Run(ctx context.Context) error {

	email, err := a.getSimpleText("Email")
	if err != nil {
		return err
	}

	password, err := a.getPassword("Enter password: ")
	if err != nil {
		return err
	}

	confirmation, err := a.getPassword("Repeat password: ")
	if err != nil {
		return err
	}

	if string(password) != string(confirmation) {
		return errors.New("passwords do not match")
	}

	if fe := validation.Credentials(email, string(password)); fe.Any() {
		for field, msg := range fe {
			fmt.Fprintf(a.out, "%s: %s\n", field, msg)
		}
		return errors.New("invalid input")
	}

	user, err := a.users.SignUp(ctx, email, string(password))
	if err != nil {
		if errors.Is(err, common.ErrEmailTaken) {
			return fmt.Errorf("an account with this email already exists")
		}
		return fmt.Errorf("creating account: %w", err)
	}

	fmt.Fprintf(a.out, "Account created: %s (%s)\n", user.Email, user.ID)
	return nil
}
