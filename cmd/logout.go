// Copyright (c) 2026 Pharmav2 Dashboard
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/naimlawani01/pharmav2-dashboard/internal/ui"
)

// logoutCmd clears the session: best-effort server-side invalidation, then
// unconditional removal of the local tokens.
var logoutCmd = &cobra.Command{
	Use:     "logout",
	Aliases: []string{"deconnexion"},
	Short:   "Fermer la session et supprimer les jetons locaux",
	Long: `La commande logout invalide la session côté serveur (au mieux, sans bloquer
en cas d'échec) puis supprime systématiquement les jetons enregistrés dans le
trousseau du système.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		app.Session.Logout(cmd.Context())
		ui.Success("Session fermée, jetons supprimés.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
