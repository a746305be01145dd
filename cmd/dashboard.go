// Copyright (c) 2026 Pharmav2 Dashboard
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/naimlawani01/pharmav2-dashboard/internal/api"
	"github.com/naimlawani01/pharmav2-dashboard/internal/guard"
	"github.com/naimlawani01/pharmav2-dashboard/internal/nav"
	"github.com/naimlawani01/pharmav2-dashboard/internal/pharmanet"
	"github.com/naimlawani01/pharmav2-dashboard/internal/ui"
)

// dashboardCmd opens the home screen, which resolves the session and lands
// on the role-appropriate dashboard, or on the login screen when signed out.
var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"tableau-de-bord"},
	Short:   "Ouvrir le tableau de bord correspondant à votre rôle",

	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		return app.Router.Open(cmd.Context(), "/")
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

// homeScreen is the unconditional dispatcher at "/": wait for the identity
// check, then redirect once by state. It never renders content of its own.
type homeScreen struct {
	app        *App
	redirected bool
}

func (s *homeScreen) Path() string { return "/" }

func (s *homeScreen) Run(ctx context.Context, r *nav.Router) error {
	stop := r.Spinner("Vérification de la session")
	s.app.Session.Bootstrap(ctx)
	stop()

	if s.redirected {
		return nil
	}
	snap := s.app.Session.Snapshot()
	if !snap.Fetched || snap.Loading {
		return ctx.Err()
	}
	s.redirected = true

	if snap.Authenticated && snap.User != nil {
		return r.Open(ctx, guard.DashboardPath(snap.User.Role))
	}
	return r.Open(ctx, guard.LoginPath)
}

// dashboardScreen factors the three role dashboards: same guard shape, a
// render function per role.
type dashboardScreen struct {
	app    *App
	guard  *guard.Guard
	render func(ctx context.Context, s *dashboardScreen) error

	loaded bool
}

func (s *dashboardScreen) Path() string { return s.guard.Path() }

func (s *dashboardScreen) Guard() *guard.Guard { return s.guard }

func (s *dashboardScreen) Run(ctx context.Context, _ *nav.Router) error {
	// Initial data load happens once per mount; a re-run of the same screen
	// instance renders from scratch only if the first load never happened.
	if s.loaded {
		return nil
	}
	s.loaded = true
	return s.render(ctx, s)
}

func newDashboardAdmin(app *App) *dashboardScreen {
	return &dashboardScreen{
		app:    app,
		guard:  guard.New("/dashboard/admin", []pharmanet.Role{pharmanet.RoleAdmin}, guard.LoginPath),
		render: renderAdminDashboard,
	}
}

func newDashboardPharmacien(app *App) *dashboardScreen {
	return &dashboardScreen{
		app:    app,
		guard:  guard.New("/dashboard/pharmacien", []pharmanet.Role{pharmanet.RolePharmacien}, guard.LoginPath),
		render: renderPharmacienDashboard,
	}
}

func newDashboardClient(app *App) *dashboardScreen {
	return &dashboardScreen{
		app:    app,
		guard:  guard.New("/dashboard/client", []pharmanet.Role{pharmanet.RoleClient}, guard.LoginPath),
		render: renderClientDashboard,
	}
}

func renderAdminDashboard(ctx context.Context, s *dashboardScreen) error {
	app := s.app
	ui.Header("Dashboard Administrateur")

	stopSpinner := startInlineSpinner("Chargement des données")
	produits, errP := app.API.ListProduits(ctx, 0, app.Cfg.PageLimit)
	pharmacies, errPh := app.API.ListPharmacies(ctx, 0, app.Cfg.PageLimit)
	stocks, errS := app.API.ListStocks(ctx, 0, app.Cfg.PageLimit, api.StockFilter{})
	stopSpinner()

	for _, err := range []error{errP, errPh, errS} {
		if err != nil {
			showCallError(err, "Erreur lors du chargement")
			return nil
		}
	}

	ui.Table([]string{"Produits", "Pharmacies", "Stocks"}, [][]string{{
		strconv.Itoa(len(produits)),
		strconv.Itoa(len(pharmacies)),
		strconv.Itoa(len(stocks)),
	}})
	ui.Info("Gérez le catalogue avec 'pharmactl produits', 'pharmactl pharmacies' et 'pharmactl stocks'.")
	return nil
}

func renderPharmacienDashboard(ctx context.Context, s *dashboardScreen) error {
	app := s.app
	snap := app.Session.Snapshot()
	ui.Header("Dashboard Pharmacien")

	pharmacieID, ok := snap.User.PharmacieID()
	if !ok {
		ui.Info("Aucune pharmacie rattachée à ce compte.")
		return nil
	}
	if snap.User.Pharmacie != nil {
		fmt.Printf("🏥 %s\n", snap.User.Pharmacie.Nom)
	}

	stopSpinner := startInlineSpinner("Chargement des stocks")
	stocks, err := app.API.ListStocks(ctx, 0, app.Cfg.PageLimit, api.StockFilter{PharmacieID: pharmacieID})
	produits, errP := app.API.ListProduits(ctx, 0, app.Cfg.PageLimit)
	stopSpinner()

	if err != nil {
		showCallError(err, "Erreur lors du chargement des stocks")
		return nil
	}

	nomParProduit := map[int]string{}
	if errP == nil {
		for _, p := range produits {
			nomParProduit[p.ID] = p.Nom
		}
	}

	low, totalQty := 0, 0
	rows := make([][]string, 0, len(stocks))
	for _, st := range stocks {
		totalQty += st.QuantiteDisponible
		if st.QuantiteDisponible < 10 {
			low++
		}
		nom := nomParProduit[st.ProduitID]
		if nom == "" {
			nom = fmt.Sprintf("Produit #%d", st.ProduitID)
		}
		rows = append(rows, []string{
			strconv.Itoa(st.ID), nom,
			strconv.Itoa(st.QuantiteDisponible), ui.FormatPrix(st.Prix),
		})
	}

	fmt.Printf("📦 %d références, %d unités, %d en stock faible (<10)\n", len(stocks), totalQty, low)
	ui.Table([]string{"ID", "Produit", "Quantité", "Prix"}, rows)
	return nil
}

func renderClientDashboard(ctx context.Context, s *dashboardScreen) error {
	app := s.app
	snap := app.Session.Snapshot()
	ui.Header("Bienvenue, " + snap.User.Nom)

	stopSpinner := startInlineSpinner("Chargement du catalogue")
	produits, err := app.API.ListProduits(ctx, 0, 10)
	stopSpinner()
	if err != nil {
		showCallError(err, "Erreur lors du chargement du catalogue")
		return nil
	}

	rows := make([][]string, 0, len(produits))
	for _, p := range produits {
		rows = append(rows, []string{strconv.Itoa(p.ID), p.Nom, p.Categorie,
			strconv.FormatFloat(p.PrixUnitaire, 'f', 2, 64)})
	}
	ui.Table([]string{"ID", "Nom", "Catégorie", "Prix unitaire"}, rows)
	ui.Info("Cherchez un produit près de chez vous avec 'pharmactl recherche'.")
	return nil
}
