package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Veraticus/ewaste-impact/internal/cli"
	"github.com/Veraticus/ewaste-impact/internal/config"
	"github.com/Veraticus/ewaste-impact/internal/sheets"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func authCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authenticate with external services",
	}
	cmd.AddCommand(authSheetsCmd())
	return cmd
}

func authSheetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sheets",
		Short: "Authenticate with Google Sheets",
		Long: `Authenticate with Google Sheets using OAuth2.

This command will:
1. Print a URL to open in your browser
2. Wait for Google to redirect back to a local listener
3. Save the token and store the refresh token in your config file

You'll need to run this once before 'impact export'.`,
		RunE: runAuthSheets,
	}

	cmd.Flags().String("client-id", "", "OAuth2 Client ID (overrides config)")
	cmd.Flags().String("client-secret", "", "OAuth2 Client Secret (overrides config)")

	return cmd
}

func runAuthSheets(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	oauthConfig := config.LoadOAuth2Config()

	if flagID, _ := cmd.Flags().GetString("client-id"); flagID != "" {
		oauthConfig.ClientID = flagID
	}
	if flagSecret, _ := cmd.Flags().GetString("client-secret"); flagSecret != "" {
		oauthConfig.ClientSecret = flagSecret
	}
	if oauthConfig.ClientID == "" || oauthConfig.ClientSecret == "" {
		return fmt.Errorf("OAuth2 credentials not found. Please set sheets.client_id and sheets.client_secret in config or use --client-id and --client-secret flags")
	}

	slog.Info("Starting Google Sheets authentication", "token_file", oauthConfig.TokenFile)

	token, err := sheets.GetOrCreateToken(ctx, oauthConfig)
	if err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}

	out := cmd.OutOrStdout()
	viper.Set("sheets.client_id", oauthConfig.ClientID)
	viper.Set("sheets.client_secret", oauthConfig.ClientSecret)
	viper.Set("sheets.refresh_token", token.RefreshToken)

	if err := saveConfig(); err != nil {
		slog.Warn("Failed to update config file with refresh token", "error", err)
		_, err = fmt.Fprintf(out, "%s\nsheets:\n  refresh_token: %q\n",
			cli.FormatWarning("Could not save the refresh token. Add this to your config.yaml:"), token.RefreshToken)
		return err
	}

	_, err = fmt.Fprintln(out, cli.FormatSuccess("Google Sheets is configured. Run 'impact export --donor ID' to publish a report."))
	return err
}

func saveConfig() error {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		configFile = filepath.Join(config.DefaultDir(), "config.yaml")
	}

	if err := os.MkdirAll(filepath.Dir(configFile), 0750); err != nil {
		return err
	}
	return viper.WriteConfigAs(configFile)
}
