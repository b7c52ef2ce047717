package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chromatic-tools/datapoint-cli/internal/api"
	"github.com/chromatic-tools/datapoint-cli/internal/config"
)

// RunInteractiveLogin prompts for username, calls the login API, and
// persists the config. An empty serverURL means the default store address.
func RunInteractiveLogin(in io.Reader, out io.Writer, serverURL string) error {
	reader := bufio.NewReader(in)

	fmt.Fprint(out, "username: ")
	username, _ := reader.ReadString('\n')
	username = strings.TrimSpace(username)

	if username == "" {
		return fmt.Errorf("username is required")
	}

	baseURL := serverURL
	if baseURL == "" {
		baseURL = api.DefaultBaseURL
	}
	client := api.NewClient(baseURL, "")
	resp, err := client.Login(username)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	cfg := &config.Config{
		APIKey:    resp.APIKey,
		ServerURL: serverURL,
		Username:  resp.Username,
		Theme:     "dark",
		VimKeys:   true,
	}

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	fmt.Fprintf(out, "logged in as %s\n", resp.Username)
	fmt.Fprintf(out, "config saved to %s\n", config.Path())
	return nil
}

// LoginCmd returns the `datapoint login` command.
func LoginCmd() *cobra.Command {
	var server string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate with a datapoint store",
		RunE: func(_ *cobra.Command, _ []string) error {
			return RunInteractiveLogin(os.Stdin, os.Stdout, server)
		},
	}
	cmd.Flags().StringVarP(&server, "server", "s", "", "store URL (default "+api.DefaultBaseURL+")")
	return cmd
}
