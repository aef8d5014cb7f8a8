package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"

	"journal-ripples/pkg/gcalendar"
)

var (
	credentialsPath string
	tokenPath       string
)

func init() {
	rootCmd.AddCommand(calendarAuthCmd)

	calendarAuthCmd.Flags().StringVar(&credentialsPath, "credentials", "google-credentials.json", "OAuth desktop app credentials file")
	calendarAuthCmd.Flags().StringVar(&tokenPath, "token", gcalendar.TokenFile, "where to write the token")
}

var calendarAuthCmd = &cobra.Command{
	Use:   "calendar-auth",
	Short: "Authorize Google Calendar access and save token.json",
	Long: `Run the OAuth consent flow for installed-app credentials once, locally,
and save the resulting token. The API server reads it from its working
directory when google_calendar.credentials_path points at the same
credentials file.

Examples:
  ripplectl calendar-auth --credentials google-credentials.json`,
	RunE: runCalendarAuth,
}

func runCalendarAuth(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return fmt.Errorf("reading credentials file %q: %w", credentialsPath, err)
	}
	cfg, err := gcalendar.AuthConfig(data)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "1. Open this URL in a browser and sign in:")
	fmt.Fprintln(out)
	fmt.Fprintln(out, cfg.AuthCodeURL("state-token", oauth2.AccessTypeOffline))
	fmt.Fprintln(out)
	fmt.Fprint(out, "2. Paste the authorization code here: ")

	var code string
	if _, err := fmt.Fscan(cmd.InOrStdin(), &code); err != nil {
		return fmt.Errorf("reading authorization code: %w", err)
	}
	tok, err := cfg.Exchange(cmd.Context(), strings.TrimSpace(code))
	if err != nil {
		return fmt.Errorf("exchanging authorization code: %w", err)
	}
	if err := gcalendar.SaveToken(tokenPath, tok); err != nil {
		return err
	}
	fmt.Fprintf(out, "\nToken saved to %s\n", tokenPath)
	return nil
}
