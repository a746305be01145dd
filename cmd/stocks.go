// Copyright (c) 2026 Pharmav2 Dashboard
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/naimlawani01/pharmav2-dashboard/internal/api"
	"github.com/naimlawani01/pharmav2-dashboard/internal/guard"
	"github.com/naimlawani01/pharmav2-dashboard/internal/nav"
	"github.com/naimlawani01/pharmav2-dashboard/internal/pharmanet"
	"github.com/naimlawani01/pharmav2-dashboard/internal/ui"
	"github.com/naimlawani01/pharmav2-dashboard/internal/validate"
)

var (
	stockID              int
	stockProduitID       int
	stockPharmacieID     int
	stockQuantite        int
	stockPrix            float64
	stockFilterProduit   int
	stockFilterPharmacie int
)

// stocksRoles are the roles allowed on the stock management screens; a
// pharmacist manages the stock of their own pharmacy, an admin manages all.
var stocksRoles = []pharmanet.Role{pharmanet.RolePharmacien, pharmanet.RoleAdmin}

var stocksCmd = &cobra.Command{
	Use:   "stocks",
	Short: "Consulter et gérer les stocks",
}

var stocksListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lister les stocks",
	RunE:  openScreen("/stocks"),
}

var stocksNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Créer un stock (pharmacien ou admin)",
	RunE:  openScreen("/stocks/new"),
}

var stocksEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Modifier un stock (pharmacien ou admin)",
	Args:  cobra.ExactArgs(1),
	RunE:  openScreenWithID("/stocks/edit", &stockID),
}

var stocksDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Supprimer un stock (pharmacien ou admin)",
	Args:  cobra.ExactArgs(1),
	RunE:  openScreenWithID("/stocks/delete", &stockID),
}

func init() {
	rootCmd.AddCommand(stocksCmd)
	stocksCmd.AddCommand(stocksListCmd, stocksNewCmd, stocksEditCmd, stocksDeleteCmd)

	stocksListCmd.Flags().IntVar(&stockFilterProduit, "produit", 0, "Filtrer par produit")
	stocksListCmd.Flags().IntVar(&stockFilterPharmacie, "pharmacie", 0, "Filtrer par pharmacie")

	stocksNewCmd.Flags().IntVar(&stockProduitID, "produit", 0, "Identifiant du produit")
	stocksNewCmd.Flags().IntVar(&stockPharmacieID, "pharmacie", 0, "Identifiant de la pharmacie (admin)")
	stocksNewCmd.Flags().IntVar(&stockQuantite, "quantite", 0, "Quantité disponible")
	stocksNewCmd.Flags().Float64Var(&stockPrix, "prix", 0, "Prix en pharmacie")
}

type stocksListScreen struct {
	app   *App
	guard *guard.Guard
}

func newStocksList(app *App) *stocksListScreen {
	return &stocksListScreen{app: app, guard: guard.New("/stocks", nil, guard.LoginPath)}
}

func (s *stocksListScreen) Path() string { return s.guard.Path() }

func (s *stocksListScreen) Guard() *guard.Guard { return s.guard }

func (s *stocksListScreen) Run(ctx context.Context, _ *nav.Router) error {
	ui.Header("Stocks")

	stopSpinner := startInlineSpinner("Chargement des stocks")
	stocks, err := s.app.API.ListStocks(ctx, 0, s.app.Cfg.PageLimit, api.StockFilter{
		ProduitID:   stockFilterProduit,
		PharmacieID: stockFilterPharmacie,
	})
	stopSpinner()
	if err != nil {
		showCallError(err, "Erreur lors du chargement")
		return nil
	}

	rows := make([][]string, 0, len(stocks))
	for _, st := range stocks {
		rows = append(rows, []string{
			strconv.Itoa(st.ID),
			strconv.Itoa(st.ProduitID),
			strconv.Itoa(st.PharmacieID),
			strconv.Itoa(st.QuantiteDisponible),
			ui.FormatPrix(st.Prix),
		})
	}
	ui.Table([]string{"ID", "Produit", "Pharmacie", "Quantité", "Prix"}, rows)
	return nil
}

type stocksNewScreen struct {
	app   *App
	guard *guard.Guard
}

func newStocksNew(app *App) *stocksNewScreen {
	return &stocksNewScreen{app: app, guard: guard.New("/stocks/new", stocksRoles, "/")}
}

func (s *stocksNewScreen) Path() string { return s.guard.Path() }

func (s *stocksNewScreen) Guard() *guard.Guard { return s.guard }

func (s *stocksNewScreen) Run(ctx context.Context, _ *nav.Router) error {
	ui.Header("Nouveau stock")

	snap := s.app.Session.Snapshot()
	in := pharmanet.StockCreate{
		ProduitID:          stockProduitID,
		PharmacieID:        stockPharmacieID,
		QuantiteDisponible: stockQuantite,
	}

	if in.ProduitID == 0 {
		in.ProduitID = promptInt("Identifiant du produit", 0)
	}

	// A pharmacist records stock for their own pharmacy only; the choice
	// exists for admins.
	if ownID, ok := snap.User.PharmacieID(); ok && snap.User.Role == pharmanet.RolePharmacien {
		in.PharmacieID = ownID
	} else if in.PharmacieID == 0 {
		in.PharmacieID = promptInt("Identifiant de la pharmacie", 0)
	}

	if in.QuantiteDisponible == 0 {
		in.QuantiteDisponible = promptInt("Quantité disponible", 0)
	}
	if stockPrix > 0 {
		prix := stockPrix
		in.Prix = &prix
	} else if v := promptFloat("Prix en pharmacie (optionnel)", 0); v > 0 {
		in.Prix = &v
	}

	if err := validate.Struct(in); err != nil {
		showCallError(err, "Erreur lors de la création")
		return nil
	}

	created, err := s.app.API.CreateStock(ctx, in)
	if err != nil {
		showCallError(err, "Erreur lors de la création")
		return nil
	}
	ui.Success("Stock #" + strconv.Itoa(created.ID) + " créé.")
	return nil
}

type stocksEditScreen struct {
	app   *App
	guard *guard.Guard
}

func newStocksEdit(app *App) *stocksEditScreen {
	return &stocksEditScreen{app: app, guard: guard.New("/stocks/edit", stocksRoles, "/")}
}

func (s *stocksEditScreen) Path() string { return s.guard.Path() }

func (s *stocksEditScreen) Guard() *guard.Guard { return s.guard }

func (s *stocksEditScreen) Run(ctx context.Context, _ *nav.Router) error {
	current, err := s.app.API.GetStock(ctx, stockID)
	if err != nil {
		showCallError(err, "Stock introuvable")
		return nil
	}
	ui.Header("Modifier le stock #" + strconv.Itoa(current.ID))

	quantite := promptInt("Quantité disponible", current.QuantiteDisponible)
	in := pharmanet.StockUpdate{QuantiteDisponible: &quantite}

	currentPrix := 0.0
	if current.Prix != nil {
		currentPrix = *current.Prix
	}
	if v := promptFloat("Prix en pharmacie", currentPrix); v > 0 {
		in.Prix = &v
	}

	if err := validate.Struct(in); err != nil {
		showCallError(err, "Erreur lors de la modification")
		return nil
	}

	updated, err := s.app.API.UpdateStock(ctx, stockID, in)
	if err != nil {
		showCallError(err, "Erreur lors de la modification")
		return nil
	}
	ui.Success("Stock #" + strconv.Itoa(updated.ID) + " mis à jour.")
	return nil
}

type stocksDeleteScreen struct {
	app   *App
	guard *guard.Guard
}

func newStocksDelete(app *App) *stocksDeleteScreen {
	return &stocksDeleteScreen{app: app, guard: guard.New("/stocks/delete", stocksRoles, "/")}
}

func (s *stocksDeleteScreen) Path() string { return s.guard.Path() }

func (s *stocksDeleteScreen) Guard() *guard.Guard { return s.guard }

func (s *stocksDeleteScreen) Run(ctx context.Context, _ *nav.Router) error {
	if !ui.PromptConfirm("Supprimer le stock #" + strconv.Itoa(stockID) + " ?") {
		return nil
	}
	if err := s.app.API.DeleteStock(ctx, stockID); err != nil {
		showCallError(err, "Erreur lors de la suppression")
		return nil
	}
	ui.Success("Stock supprimé.")
	return nil
}

// promptInt asks for an integer value, keeping the default on bad input.
func promptInt(label string, defaultValue int) int {
	def := ""
	if defaultValue != 0 {
		def = strconv.Itoa(defaultValue)
	}
	v := ui.PromptText(label, def)
	if v == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue
	}
	return n
}
