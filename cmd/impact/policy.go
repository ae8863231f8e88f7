package main

import (
	"fmt"

	"github.com/Veraticus/ewaste-impact/internal/cli"
	"github.com/Veraticus/ewaste-impact/internal/config"
	"github.com/Veraticus/ewaste-impact/internal/policy"
	"github.com/spf13/cobra"
)

func policyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "policy",
		Short: "Inspect the material and emissions coefficient tables",
	}
	cmd.AddCommand(policyShowCmd())
	cmd.AddCommand(policyValidateCmd())
	return cmd
}

func policyShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the active policy as YAML",
		Long: `Print the active policy as YAML. The output is a valid policy file and
can be edited and passed back with --policy.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := policy.LoadOrDefault(config.PolicyPath())
			if err != nil {
				return err
			}
			data, err := policy.Marshal(p)
			if err != nil {
				return fmt.Errorf("failed to encode policy: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func policyValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE",
		Short: "Check a policy file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := policy.Load(config.ExpandPath(args[0]))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("%s is a valid policy (version %s)", args[0], p.Version)))
			return err
		},
	}
}
