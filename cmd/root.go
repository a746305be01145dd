// Copyright (c) 2026 Pharmav2 Dashboard
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface of pharmactl, the
// pharmacy-network client. Every command is a screen with a path identity;
// protected screens are gated by the shared route guard and redirect to the
// login screen (or a designated fallback) when access is denied.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is the CLI version, overridden at build time.
var Version = "dev"

var showVersion bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:           "pharmactl",
	Short:         "Client en ligne de commande du réseau de pharmacies",
	Long:          `pharmactl pilote le backend du réseau de pharmacies : tableaux de bord par rôle, gestion des produits, pharmacies et stocks, et recherche de produits à proximité.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("pharmactl %s\n", Version)
			return nil
		}
		return cmd.Help()
	},
}

// Execute runs the CLI application.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Affiche la version du CLI")
}
