package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/Veraticus/ewaste-impact/internal/cli"
	"github.com/Veraticus/ewaste-impact/internal/model"
	"github.com/spf13/cobra"
)

func donorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "donor",
		Short: "Manage donors",
	}
	cmd.AddCommand(donorAddCmd())
	cmd.AddCommand(donorListCmd())
	return cmd
}

func donorAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Register a donor",
		Long: `Register a donor and print the ID used by submit, history and export.

When no name is given it is read from the terminal.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runDonorAdd,
	}
	cmd.Flags().String("email", "", "contact email")
	return cmd
}

func runDonorAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	email, _ := cmd.Flags().GetString("email")

	var name string
	if len(args) == 1 {
		name = args[0]
	} else {
		var err error
		if name, err = promptName(ctx, cmd); err != nil {
			return err
		}
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("donor name is required")
	}

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	donor := &model.Donor{Name: name, Email: email}
	if err := store.CreateDonor(ctx, donor); err != nil {
		return fmt.Errorf("failed to create donor: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Created donor %s (%s)", donor.Name, donor.ID)))
	return err
}

func promptName(ctx context.Context, cmd *cobra.Command) (string, error) {
	if _, err := fmt.Fprint(cmd.OutOrStdout(), cli.FormatPrompt("Donor name")); err != nil {
		return "", err
	}
	return cli.NewLineReader(cmd.InOrStdin()).ReadLine(ctx)
}

func donorListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List donors",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			donors, err := store.ListDonors(ctx)
			if err != nil {
				return fmt.Errorf("failed to list donors: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(donors) == 0 {
				_, err = fmt.Fprintln(out, cli.FormatInfo("No donors yet. Add one with: impact donor add NAME"))
				return err
			}
			_, err = fmt.Fprintln(out, cli.RenderBox(fmt.Sprintf("%d donors", len(donors)), formatDonors(donors)))
			return err
		},
	}
}

func formatDonors(donors []model.Donor) string {
	var b strings.Builder
	for i, d := range donors {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s  %s", cli.SubtleStyle.Render(d.ID), cli.BoldStyle.Render(d.Name))
		if d.Email != "" {
			fmt.Fprintf(&b, " <%s>", d.Email)
		}
		if !d.CreatedAt.IsZero() {
			fmt.Fprintf(&b, "  since %s", d.CreatedAt.Format("2006-01-02"))
		}
	}
	return b.String()
}
