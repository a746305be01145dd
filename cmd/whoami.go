// Copyright (c) 2026 Pharmav2 Dashboard
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// whoamiCmd shows the identity bound to the current session, if any. It
// bootstraps the session exactly like a screen would, so a missing or
// expired cookie simply resolves to "not logged in".
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Afficher le compte actuellement connecté",

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		app, err := newApp(ctx)
		if err != nil {
			return err
		}

		app.Session.Bootstrap(ctx)
		snap := app.Session.Snapshot()
		if !snap.Authenticated || snap.User == nil {
			fmt.Println("🔒 Vous n'êtes pas connecté.")
			fmt.Println("   Lancez 'pharmactl login' pour vous authentifier.")
			return nil
		}

		fmt.Printf("👤 %s <%s> (rôle %s)\n", snap.User.Nom, snap.User.Email, snap.User.Role)
		if snap.User.Pharmacie != nil {
			fmt.Printf("🏥 Pharmacie : %s\n", snap.User.Pharmacie.Nom)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
