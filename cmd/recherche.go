// Copyright (c) 2026 Pharmav2 Dashboard
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/naimlawani01/pharmav2-dashboard/internal/nav"
	"github.com/naimlawani01/pharmav2-dashboard/internal/ui"
)

var (
	rechercheNom string
	rechercheLat float64
	rechercheLon float64
)

// rechercheCmd looks a product up across the network. With a position the
// backend sorts results by distance; the client only displays what it gets.
var rechercheCmd = &cobra.Command{
	Use:     "recherche [nom]",
	Aliases: []string{"search"},
	Short:   "Chercher où un produit est disponible",
	Long: `La commande recherche interroge le backend pour savoir dans quelles
pharmacies un produit est disponible. Avec --lat et --lon, le backend calcule
la distance de chaque pharmacie et trie les résultats par proximité.`,
	Args: cobra.MaximumNArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			rechercheNom = args[0]
		}
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		return app.Router.Open(cmd.Context(), "/recherche")
	},
}

func init() {
	rootCmd.AddCommand(rechercheCmd)
	rechercheCmd.Flags().Float64Var(&rechercheLat, "lat", 0, "Latitude de votre position")
	rechercheCmd.Flags().Float64Var(&rechercheLon, "lon", 0, "Longitude de votre position")
}

// rechercheScreen is public: looking a product up requires no session.
type rechercheScreen struct {
	app *App
}

func (s *rechercheScreen) Path() string { return "/recherche" }

func (s *rechercheScreen) Run(ctx context.Context, _ *nav.Router) error {
	ui.Header("Recherche de produits")

	nom := strings.TrimSpace(rechercheNom)
	if nom == "" {
		nom = ui.PromptText("Produit recherché", "")
	}
	if nom == "" {
		ui.Info("Aucun produit à chercher.")
		return nil
	}

	var lat, lon *float64
	if rechercheLat != 0 || rechercheLon != 0 {
		lat, lon = &rechercheLat, &rechercheLon
	}

	stopSpinner := startInlineSpinner("Recherche en cours")
	results, err := s.app.API.SearchProduit(ctx, nom, lat, lon)
	stopSpinner()
	if err != nil {
		showCallError(err, "Erreur lors de la recherche")
		return nil
	}

	if len(results) == 0 {
		ui.Info("Aucune pharmacie ne propose « " + nom + " ».")
		return nil
	}

	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{
			r.ProduitNom,
			r.PharmacieNom,
			r.PharmacieAdresse,
			strconv.Itoa(r.QuantiteDisponible),
			ui.FormatPrix(r.Prix),
			ui.FormatDistance(r.DistanceKM),
		})
	}
	ui.Table([]string{"Produit", "Pharmacie", "Adresse", "Quantité", "Prix", "Distance"}, rows)
	return nil
}
