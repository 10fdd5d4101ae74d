package cmd

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gravitrone/classdesk/internal/api"
	"github.com/gravitrone/classdesk/internal/config"
)

// RunInteractiveLogin prompts for credentials, exchanges them for a token at
// baseURL, and persists the config.
func RunInteractiveLogin(in io.Reader, out io.Writer, baseURL string) error {
	reader := bufio.NewReader(in)

	fmt.Fprint(out, "username: ")
	username, _ := reader.ReadString('\n')
	username = strings.TrimSpace(username)
	if username == "" {
		return fmt.Errorf("username is required")
	}

	fmt.Fprint(out, "password: ")
	password, _ := reader.ReadString('\n')
	password = strings.TrimRight(password, "\r\n")

	if strings.TrimSpace(baseURL) == "" {
		baseURL = (*config.Config)(nil).APIBaseURL()
	}
	client := api.NewClient(baseURL, "")
	token, err := client.Login(username, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	client.SetAPIKey(token.AccessToken)
	if _, err := client.ListClassrooms(0, 1); err != nil {
		return fmt.Errorf("verify token: %w", err)
	}

	cfg := &config.Config{
		APIKey:   token.AccessToken,
		Username: username,
		BaseURL:  baseURL,
	}
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	slog.Info("logged in", "user", username, "base_url", baseURL)
	fmt.Fprintf(out, "logged in as %s\n", username)
	fmt.Fprintf(out, "config saved to %s\n", config.Path())
	return nil
}

// LoginCmd returns the `classdesk login` command.
func LoginCmd() *cobra.Command {
	var baseURL string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate with a classroom API server",
		RunE: func(c *cobra.Command, _ []string) error {
			return RunInteractiveLogin(os.Stdin, c.OutOrStdout(), baseURL)
		},
	}
	cmd.Flags().StringVar(&baseURL, "url", "", "API base URL (default $"+config.EnvAPIURL+" or "+api.DefaultBaseURL+")")
	return cmd
}
