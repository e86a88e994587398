package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rrwood/hive-schedule-mgr/internal/core/domain"
)

// mfaAttempts bounds the SMS code retries within one challenge session.
const mfaAttempts = 3

var (
	loginUsername     string
	loginRefreshToken string
	loginStaticToken  string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate against Hive and store the tokens",
	Long: `Performs the one-time initial authentication for the configured
method and stores the resulting tokens locally. Afterwards every command
refreshes them automatically; login is only needed again if the refresh
token is rejected.

The cognito method (default) prompts for username and password and
handles the SMS second factor when the account has one. The
refresh-only method takes a refresh token obtained from another Hive
client; the static method takes an externally managed id token.`,
	RunE: runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored tokens",
	RunE:  runLogout,
}

func init() {
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "Hive account email (prompted if omitted)")
	loginCmd.Flags().StringVar(&loginRefreshToken, "refresh-token", "", "out-of-band refresh token (refresh-only method)")
	loginCmd.Flags().StringVar(&loginStaticToken, "token", "", "externally managed id token (static method)")
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
}

func runLogin(cmd *cobra.Command, _ []string) error {
	if authService == nil {
		return errors.New("auth service not configured")
	}

	req := domain.LoginRequest{
		Username:     loginUsername,
		RefreshToken: loginRefreshToken,
		StaticToken:  loginStaticToken,
	}
	if err := collectCredentials(cmd, &req); err != nil {
		return err
	}

	ctx := context.Background()
	result, err := authService.Login(ctx, req)
	if err != nil {
		return err
	}

	if result.Challenge != nil {
		result, err = answerMFAChallenge(ctx, cmd, *result.Challenge)
		if err != nil {
			return err
		}
	}

	tokens := result.Tokens
	cmd.Printf("Authenticated as %s\n", tokens.AccountID)
	cmd.Printf("Token valid until %s\n", tokens.ExpiresAt.Local().Format("15:04:05"))
	return nil
}

// collectCredentials prompts for whatever the configured method needs and
// was not supplied via flags. Passwords are never taken from flags.
func collectCredentials(cmd *cobra.Command, req *domain.LoginRequest) error {
	method := domain.AuthMethodCognito
	if account != nil {
		method = account.settings.Auth.Method
	}

	switch method {
	case domain.AuthMethodRefreshOnly:
		if req.RefreshToken == "" {
			token, err := promptLine(cmd, "Refresh token: ")
			if err != nil {
				return err
			}
			req.RefreshToken = token
		}
	case domain.AuthMethodStatic:
		if req.StaticToken == "" {
			token, err := promptLine(cmd, "Id token: ")
			if err != nil {
				return err
			}
			req.StaticToken = token
		}
	default:
		if req.Username == "" {
			username, err := promptLine(cmd, "Username (email): ")
			if err != nil {
				return err
			}
			req.Username = username
		}
		password, err := promptPassword(cmd, "Password: ")
		if err != nil {
			return err
		}
		req.Password = password
	}
	return nil
}

// answerMFAChallenge reads the SMS code and completes the login, allowing a
// few retries within the same challenge session.
func answerMFAChallenge(ctx context.Context, cmd *cobra.Command, challenge domain.MFAChallenge) (*domain.LoginResult, error) {
	destination := challenge.Destination
	if destination == "" {
		destination = "your registered phone"
	}
	cmd.Printf("An SMS code was sent to %s.\n", destination)

	for attempt := 1; attempt <= mfaAttempts; attempt++ {
		code, err := promptLine(cmd, "SMS code: ")
		if err != nil {
			return nil, err
		}
		result, err := authService.CompleteMFA(ctx, challenge, code)
		if err == nil {
			return result, nil
		}
		if !errors.Is(err, domain.ErrAuthRequired) {
			return nil, err
		}
		if attempt < mfaAttempts {
			cmd.Println("Code rejected, try again.")
		}
	}
	return nil, fmt.Errorf("%w: too many failed attempts", domain.ErrAuthRequired)
}

func runLogout(cmd *cobra.Command, _ []string) error {
	if authService == nil {
		return errors.New("auth service not configured")
	}
	if err := authService.Logout(context.Background()); err != nil {
		return err
	}
	cmd.Println("Stored tokens removed.")
	return nil
}

// One buffered reader per input source. A fresh bufio.Reader per prompt
// would swallow whatever it read ahead, losing the next prompt's line on
// piped input.
var (
	lineReader *bufio.Reader
	lineSource io.Reader
)

// promptLine reads one trimmed line from the command's input.
func promptLine(cmd *cobra.Command, label string) (string, error) {
	cmd.Print(label)
	if in := cmd.InOrStdin(); lineReader == nil || lineSource != in {
		lineReader = bufio.NewReader(in)
		lineSource = in
	}
	input, err := lineReader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(input), nil
}

// promptPassword reads a line without echoing when stdin is a terminal,
// falling back to a plain read otherwise (tests, pipes).
func promptPassword(cmd *cobra.Command, label string) (string, error) {
	if file, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		cmd.Print(label)
		password, err := term.ReadPassword(int(file.Fd()))
		cmd.Println()
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(password), nil
	}
	return promptLine(cmd, label)
}
