package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/pkgup/internal/app"
)

func (c *CLI) newUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [packages...]",
		Short: "Update packages and plan their migrations",
		Long: `Update resolves the requested packages against the registry, checks peer
compatibility, rewrites the project manifest and prints the migrations to
run afterwards. Without arguments it reports which packages could be
updated and changes nothing.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all, _ := cmd.Flags().GetBool("all")
			next, _ := cmd.Flags().GetBool("next")
			force, _ := cmd.Flags().GetBool("force")
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			migrateOnly, _ := cmd.Flags().GetBool("migrate-only")
			from, _ := cmd.Flags().GetString("from")
			to, _ := cmd.Flags().GetString("to")
			registry, _ := cmd.Flags().GetString("registry")

			return c.app.Update(cmd.Context(), ".", app.UpdateOptions{
				Packages:    args,
				All:         all,
				Next:        next,
				Force:       force,
				DryRun:      dryRun,
				MigrateOnly: migrateOnly,
				From:        from,
				To:          to,
				Registry:    registry,
			})
		},
	}

	cmd.Flags().Bool("all", false, "Update every updatable package in the manifest")
	cmd.Flags().Bool("next", false, "Use the 'next' dist-tag instead of 'latest'")
	cmd.Flags().Bool("force", false, "Proceed despite peer dependency conflicts")
	cmd.Flags().Bool("dry-run", false, "Compute the plan without writing the manifest")
	cmd.Flags().Bool("migrate-only", false, "Only run migrations, do not touch the manifest")
	cmd.Flags().String("from", "", "Version to migrate from (with --migrate-only)")
	cmd.Flags().String("to", "", "Version to migrate to (defaults to the installed version)")
	cmd.Flags().String("registry", "", "Registry endpoint to resolve packages against")

	return cmd
}
