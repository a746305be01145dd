// Copyright (c) 2026 Pharmav2 Dashboard
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/naimlawani01/pharmav2-dashboard/internal/guard"
	"github.com/naimlawani01/pharmav2-dashboard/internal/pharmanet"
	"github.com/naimlawani01/pharmav2-dashboard/internal/ui"
	"github.com/naimlawani01/pharmav2-dashboard/internal/validate"
)

var (
	registerNom         string
	registerEmail       string
	registerRole        string
	registerPharmacieID int
)

// registerCmd creates an account then chains into login, mirroring the web
// client's registration flow.
var registerCmd = &cobra.Command{
	Use:     "register",
	Aliases: []string{"inscription"},
	Short:   "Créer un compte puis ouvrir une session",

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		app, err := newApp(ctx)
		if err != nil {
			return err
		}

		ui.Header("Inscription")

		in := pharmanet.UserCreate{
			Nom:   registerNom,
			Email: registerEmail,
			Role:  pharmanet.Role(registerRole),
		}
		if in.Nom == "" {
			in.Nom = ui.PromptText("Nom", "")
		}
		if in.Email == "" {
			in.Email = promptLine("Email : ")
		}
		in.MotDePasse = ui.PromptPassword("Mot de passe")
		if registerRole == "" || !in.Role.Valid() {
			in.Role = pharmanet.Role(ui.PromptSelect("Rôle", []string{
				string(pharmanet.RoleClient),
				string(pharmanet.RolePharmacien),
			}))
		}
		if in.Role == pharmanet.RolePharmacien {
			if registerPharmacieID > 0 {
				in.PharmacieID = &registerPharmacieID
			} else if v := ui.PromptText("Identifiant de la pharmacie (optionnel)", ""); v != "" {
				if id, err := strconv.Atoi(v); err == nil && id > 0 {
					in.PharmacieID = &id
				}
			}
		}

		if err := validate.Struct(in); err != nil {
			showCallError(err, "Erreur lors de l'inscription")
			return nil
		}

		if _, err := app.API.Register(ctx, in); err != nil {
			showCallError(err, "Erreur lors de l'inscription")
			return nil
		}
		if _, err := app.API.Login(ctx, in.Email, in.MotDePasse); err != nil {
			showCallError(err, "Erreur de connexion")
			return nil
		}
		me, err := app.API.Me(ctx)
		if err != nil {
			showCallError(err, "Erreur de connexion")
			return nil
		}
		app.Session.RecordLogin(me)
		cacheIdentity(me)
		ui.Success("Compte créé, session ouverte.")

		return app.Router.Open(ctx, guard.DashboardPath(me.Role))
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
	registerCmd.Flags().StringVar(&registerNom, "nom", "", "Nom complet")
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "Email du compte")
	registerCmd.Flags().StringVar(&registerRole, "role", "", "Rôle (client ou pharmacien)")
	registerCmd.Flags().IntVar(&registerPharmacieID, "pharmacie", 0, "Identifiant de la pharmacie rattachée")
}
