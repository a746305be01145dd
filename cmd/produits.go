// Copyright (c) 2026 Pharmav2 Dashboard
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/naimlawani01/pharmav2-dashboard/internal/guard"
	"github.com/naimlawani01/pharmav2-dashboard/internal/nav"
	"github.com/naimlawani01/pharmav2-dashboard/internal/pharmanet"
	"github.com/naimlawani01/pharmav2-dashboard/internal/ui"
	"github.com/naimlawani01/pharmav2-dashboard/internal/validate"
)

var (
	produitID        int
	produitNom       string
	produitDesc      string
	produitCategorie string
	produitPrix      float64
)

var produitsCmd = &cobra.Command{
	Use:   "produits",
	Short: "Consulter et gérer le catalogue de produits",
}

var produitsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lister les produits",
	RunE:  openScreen("/produits"),
}

var produitsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Afficher le détail d'un produit",
	Args:  cobra.ExactArgs(1),
	RunE:  openScreenWithID("/produits/show", &produitID),
}

var produitsNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Créer un produit (admin)",
	RunE:  openScreen("/produits/new"),
}

var produitsEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Modifier un produit (admin)",
	Args:  cobra.ExactArgs(1),
	RunE:  openScreenWithID("/produits/edit", &produitID),
}

var produitsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Supprimer un produit (admin)",
	Args:  cobra.ExactArgs(1),
	RunE:  openScreenWithID("/produits/delete", &produitID),
}

func init() {
	rootCmd.AddCommand(produitsCmd)
	produitsCmd.AddCommand(produitsListCmd, produitsShowCmd, produitsNewCmd, produitsEditCmd, produitsDeleteCmd)

	produitsNewCmd.Flags().StringVar(&produitNom, "nom", "", "Nom du produit")
	produitsNewCmd.Flags().StringVar(&produitDesc, "description", "", "Description")
	produitsNewCmd.Flags().StringVar(&produitCategorie, "categorie", "", "Catégorie")
	produitsNewCmd.Flags().Float64Var(&produitPrix, "prix", 0, "Prix unitaire")
}

// openScreen returns a RunE that wires the app and opens one screen.
func openScreen(path string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		return app.Router.Open(cmd.Context(), path)
	}
}

// openScreenWithID is openScreen for screens addressing one record; the
// positional id argument is parsed into dest before the screen opens.
func openScreenWithID(path string, dest *int) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil || id <= 0 {
			return fmt.Errorf("identifiant invalide : %q", args[0])
		}
		*dest = id
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		return app.Router.Open(cmd.Context(), path)
	}
}

// produitsListScreen is public: the catalogue is browsable without a session,
// same as the search screen.
type produitsListScreen struct {
	app *App
}

func newProduitsList(app *App) *produitsListScreen {
	return &produitsListScreen{app: app}
}

func (s *produitsListScreen) Path() string { return "/produits" }

func (s *produitsListScreen) Run(ctx context.Context, _ *nav.Router) error {
	ui.Header("Produits")

	stopSpinner := startInlineSpinner("Chargement des produits")
	produits, err := s.app.API.ListProduits(ctx, 0, s.app.Cfg.PageLimit)
	stopSpinner()
	if err != nil {
		showCallError(err, "Erreur lors du chargement")
		return nil
	}

	rows := make([][]string, 0, len(produits))
	for _, p := range produits {
		rows = append(rows, []string{
			strconv.Itoa(p.ID), p.Nom, p.Categorie,
			strconv.FormatFloat(p.PrixUnitaire, 'f', 2, 64),
		})
	}
	ui.Table([]string{"ID", "Nom", "Catégorie", "Prix unitaire"}, rows)
	return nil
}

type produitsShowScreen struct {
	app *App
}

func newProduitsShow(app *App) *produitsShowScreen {
	return &produitsShowScreen{app: app}
}

func (s *produitsShowScreen) Path() string { return "/produits/show" }

func (s *produitsShowScreen) Run(ctx context.Context, _ *nav.Router) error {
	p, err := s.app.API.GetProduit(ctx, produitID)
	if err != nil {
		showCallError(err, "Produit introuvable")
		return nil
	}
	ui.Header(p.Nom)
	ui.Table([]string{"Champ", "Valeur"}, [][]string{
		{"ID", strconv.Itoa(p.ID)},
		{"Nom", p.Nom},
		{"Description", p.Description},
		{"Catégorie", p.Categorie},
		{"Prix unitaire", strconv.FormatFloat(p.PrixUnitaire, 'f', 2, 64)},
	})
	return nil
}

type produitsNewScreen struct {
	app   *App
	guard *guard.Guard
}

func newProduitsNew(app *App) *produitsNewScreen {
	return &produitsNewScreen{app: app, guard: guard.New("/produits/new", []pharmanet.Role{pharmanet.RoleAdmin}, "/produits")}
}

func (s *produitsNewScreen) Path() string { return s.guard.Path() }

func (s *produitsNewScreen) Guard() *guard.Guard { return s.guard }

func (s *produitsNewScreen) Run(ctx context.Context, _ *nav.Router) error {
	ui.Header("Nouveau produit")

	in := pharmanet.ProduitCreate{
		Nom:          produitNom,
		Description:  produitDesc,
		Categorie:    produitCategorie,
		PrixUnitaire: produitPrix,
	}
	if in.Nom == "" {
		in.Nom = ui.PromptText("Nom du produit", "")
	}
	if in.Description == "" {
		in.Description = ui.PromptText("Description", "")
	}
	if in.Categorie == "" {
		in.Categorie = ui.PromptText("Catégorie", "")
	}
	if in.PrixUnitaire == 0 {
		in.PrixUnitaire = promptFloat("Prix unitaire", 0)
	}

	if err := validate.Struct(in); err != nil {
		showCallError(err, "Erreur lors de la création")
		return nil
	}

	created, err := s.app.API.CreateProduit(ctx, in)
	if err != nil {
		showCallError(err, "Erreur lors de la création")
		return nil
	}
	ui.Success("Produit #" + strconv.Itoa(created.ID) + " créé : " + created.Nom)
	return nil
}

type produitsEditScreen struct {
	app   *App
	guard *guard.Guard
}

func newProduitsEdit(app *App) *produitsEditScreen {
	return &produitsEditScreen{app: app, guard: guard.New("/produits/edit", []pharmanet.Role{pharmanet.RoleAdmin}, "/produits")}
}

func (s *produitsEditScreen) Path() string { return s.guard.Path() }

func (s *produitsEditScreen) Guard() *guard.Guard { return s.guard }

func (s *produitsEditScreen) Run(ctx context.Context, _ *nav.Router) error {
	current, err := s.app.API.GetProduit(ctx, produitID)
	if err != nil {
		showCallError(err, "Produit introuvable")
		return nil
	}
	ui.Header("Modifier " + current.Nom)

	nom := ui.PromptText("Nom du produit", current.Nom)
	desc := ui.PromptText("Description", current.Description)
	cat := ui.PromptText("Catégorie", current.Categorie)
	prix := promptFloat("Prix unitaire", current.PrixUnitaire)

	in := pharmanet.ProduitUpdate{Nom: &nom, Description: &desc, Categorie: &cat, PrixUnitaire: &prix}
	if err := validate.Struct(in); err != nil {
		showCallError(err, "Erreur lors de la modification")
		return nil
	}

	updated, err := s.app.API.UpdateProduit(ctx, produitID, in)
	if err != nil {
		showCallError(err, "Erreur lors de la modification")
		return nil
	}
	ui.Success("Produit #" + strconv.Itoa(updated.ID) + " mis à jour.")
	return nil
}

type produitsDeleteScreen struct {
	app   *App
	guard *guard.Guard
}

func newProduitsDelete(app *App) *produitsDeleteScreen {
	return &produitsDeleteScreen{app: app, guard: guard.New("/produits/delete", []pharmanet.Role{pharmanet.RoleAdmin}, "/produits")}
}

func (s *produitsDeleteScreen) Path() string { return s.guard.Path() }

func (s *produitsDeleteScreen) Guard() *guard.Guard { return s.guard }

func (s *produitsDeleteScreen) Run(ctx context.Context, _ *nav.Router) error {
	if !ui.PromptConfirm("Supprimer le produit #" + strconv.Itoa(produitID) + " ?") {
		return nil
	}
	if err := s.app.API.DeleteProduit(ctx, produitID); err != nil {
		showCallError(err, "Erreur lors de la suppression")
		return nil
	}
	ui.Success("Produit supprimé.")
	return nil
}

// promptFloat asks for a decimal value, keeping the default on bad input.
func promptFloat(label string, defaultValue float64) float64 {
	def := ""
	if defaultValue != 0 {
		def = strconv.FormatFloat(defaultValue, 'f', -1, 64)
	}
	v := ui.PromptText(label, def)
	if v == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return defaultValue
	}
	return f
}
