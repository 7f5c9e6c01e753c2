package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func catalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the datasets",
	}

	var dir string
	check := &cobra.Command{
		Use:   "check",
		Short: "Load and validate a dataset directory",
		Long: `Loads standard.yaml, controls.yaml and registry.yaml and reports every
invariant violation. Without --dir the embedded dataset is checked.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := loadCatalog(dir)
			if err != nil {
				return err
			}
			std := cat.Standard()
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %d domains, %d controls (%d in standard), %d registry entries\n",
				std.ShortName, std.Version,
				len(cat.Domains()), len(cat.Controls()), cat.TotalControls(), len(cat.RegistryEntries()),
			)
			return nil
		},
	}
	check.Flags().StringVar(&dir, "dir", "", "dataset directory (default: embedded)")

	cmd.AddCommand(check)
	return cmd
}
