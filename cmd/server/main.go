// Package main is the ara-api binary: it serves the read-only ARA reference
// API and offers offline badge rendering and dataset checks.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const (
	Version = "0.1.0"
	appName = "ara-api"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   appName,
		Short: "Autonomous Reliability Assurance reference API",
		Long: `ara-api serves the public, read-only ARA reference API: control
requirement and registry queries, certification verification, the standard
description, and certification badges.

Configuration is read from ARA_* environment variables; flags on the serve
command override them.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(serveCmd(), badgeCmd(), catalogCmd())
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
		},
	})
	return cmd
}
