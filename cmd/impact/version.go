package main

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/Veraticus/ewaste-impact/internal/policy"
	"github.com/Veraticus/ewaste-impact/internal/storage"
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "0.0.0-dev"

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), versionInfo(version))
			return err
		},
	}
}

func versionInfo(raw string) string {
	shown := raw
	if v, err := semver.NewVersion(raw); err == nil {
		shown = v.String()
		if v.Prerelease() != "" {
			shown += " (pre-release)"
		}
	}
	return fmt.Sprintf("impact %s\nschema version %d\npolicy versions %s\n",
		shown, storage.ExpectedSchemaVersion, policy.SupportedVersions)
}
