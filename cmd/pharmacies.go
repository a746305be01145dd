// Copyright (c) 2026 Pharmav2 Dashboard
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/naimlawani01/pharmav2-dashboard/internal/guard"
	"github.com/naimlawani01/pharmav2-dashboard/internal/nav"
	"github.com/naimlawani01/pharmav2-dashboard/internal/pharmanet"
	"github.com/naimlawani01/pharmav2-dashboard/internal/ui"
	"github.com/naimlawani01/pharmav2-dashboard/internal/validate"
)

var (
	pharmacieID        int
	pharmacieNom       string
	pharmacieAdresse   string
	pharmacieTelephone string
	pharmacieLat       float64
	pharmacieLon       float64
)

var pharmaciesCmd = &cobra.Command{
	Use:   "pharmacies",
	Short: "Consulter et gérer les pharmacies du réseau",
}

var pharmaciesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lister les pharmacies",
	RunE:  openScreen("/pharmacies"),
}

var pharmaciesShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Afficher le détail d'une pharmacie",
	Args:  cobra.ExactArgs(1),
	RunE:  openScreenWithID("/pharmacies/show", &pharmacieID),
}

var pharmaciesNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Créer une pharmacie (admin)",
	RunE:  openScreen("/pharmacies/new"),
}

var pharmaciesEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Modifier une pharmacie (admin)",
	Args:  cobra.ExactArgs(1),
	RunE:  openScreenWithID("/pharmacies/edit", &pharmacieID),
}

var pharmaciesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Supprimer une pharmacie (admin)",
	Args:  cobra.ExactArgs(1),
	RunE:  openScreenWithID("/pharmacies/delete", &pharmacieID),
}

func init() {
	rootCmd.AddCommand(pharmaciesCmd)
	pharmaciesCmd.AddCommand(pharmaciesListCmd, pharmaciesShowCmd, pharmaciesNewCmd, pharmaciesEditCmd, pharmaciesDeleteCmd)

	pharmaciesNewCmd.Flags().StringVar(&pharmacieNom, "nom", "", "Nom de la pharmacie")
	pharmaciesNewCmd.Flags().StringVar(&pharmacieAdresse, "adresse", "", "Adresse postale")
	pharmaciesNewCmd.Flags().StringVar(&pharmacieTelephone, "telephone", "", "Numéro de téléphone")
	pharmaciesNewCmd.Flags().Float64Var(&pharmacieLat, "lat", 0, "Latitude")
	pharmaciesNewCmd.Flags().Float64Var(&pharmacieLon, "lon", 0, "Longitude")
}

// pharmaciesListScreen is public: the pharmacy directory is browsable without
// a session.
type pharmaciesListScreen struct {
	app *App
}

func newPharmaciesList(app *App) *pharmaciesListScreen {
	return &pharmaciesListScreen{app: app}
}

func (s *pharmaciesListScreen) Path() string { return "/pharmacies" }

func (s *pharmaciesListScreen) Run(ctx context.Context, _ *nav.Router) error {
	ui.Header("Pharmacies")

	stopSpinner := startInlineSpinner("Chargement des pharmacies")
	pharmacies, err := s.app.API.ListPharmacies(ctx, 0, s.app.Cfg.PageLimit)
	stopSpinner()
	if err != nil {
		showCallError(err, "Erreur lors du chargement")
		return nil
	}

	rows := make([][]string, 0, len(pharmacies))
	for _, p := range pharmacies {
		rows = append(rows, []string{strconv.Itoa(p.ID), p.Nom, p.Adresse, p.Telephone})
	}
	ui.Table([]string{"ID", "Nom", "Adresse", "Téléphone"}, rows)
	return nil
}

type pharmaciesShowScreen struct {
	app *App
}

func newPharmaciesShow(app *App) *pharmaciesShowScreen {
	return &pharmaciesShowScreen{app: app}
}

func (s *pharmaciesShowScreen) Path() string { return "/pharmacies/show" }

func (s *pharmaciesShowScreen) Run(ctx context.Context, _ *nav.Router) error {
	p, err := s.app.API.GetPharmacie(ctx, pharmacieID)
	if err != nil {
		showCallError(err, "Pharmacie introuvable")
		return nil
	}
	ui.Header(p.Nom)
	ui.Table([]string{"Champ", "Valeur"}, [][]string{
		{"ID", strconv.Itoa(p.ID)},
		{"Nom", p.Nom},
		{"Adresse", p.Adresse},
		{"Téléphone", p.Telephone},
		{"Latitude", formatCoord(p.Latitude)},
		{"Longitude", formatCoord(p.Longitude)},
	})
	return nil
}

func formatCoord(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

type pharmaciesNewScreen struct {
	app   *App
	guard *guard.Guard
}

func newPharmaciesNew(app *App) *pharmaciesNewScreen {
	return &pharmaciesNewScreen{app: app, guard: guard.New("/pharmacies/new", []pharmanet.Role{pharmanet.RoleAdmin}, "/pharmacies")}
}

func (s *pharmaciesNewScreen) Path() string { return s.guard.Path() }

func (s *pharmaciesNewScreen) Guard() *guard.Guard { return s.guard }

func (s *pharmaciesNewScreen) Run(ctx context.Context, _ *nav.Router) error {
	ui.Header("Nouvelle pharmacie")

	in := pharmanet.PharmacieCreate{
		Nom:       pharmacieNom,
		Adresse:   pharmacieAdresse,
		Telephone: pharmacieTelephone,
	}
	if in.Nom == "" {
		in.Nom = ui.PromptText("Nom de la pharmacie", "")
	}
	if in.Adresse == "" {
		in.Adresse = ui.PromptText("Adresse", "")
	}
	if in.Telephone == "" {
		in.Telephone = ui.PromptText("Téléphone", "")
	}
	if pharmacieLat != 0 || pharmacieLon != 0 {
		lat, lon := pharmacieLat, pharmacieLon
		in.Latitude, in.Longitude = &lat, &lon
	}

	if err := validate.Struct(in); err != nil {
		showCallError(err, "Erreur lors de la création")
		return nil
	}

	created, err := s.app.API.CreatePharmacie(ctx, in)
	if err != nil {
		showCallError(err, "Erreur lors de la création")
		return nil
	}
	ui.Success("Pharmacie #" + strconv.Itoa(created.ID) + " créée : " + created.Nom)
	return nil
}

type pharmaciesEditScreen struct {
	app   *App
	guard *guard.Guard
}

func newPharmaciesEdit(app *App) *pharmaciesEditScreen {
	return &pharmaciesEditScreen{app: app, guard: guard.New("/pharmacies/edit", []pharmanet.Role{pharmanet.RoleAdmin}, "/pharmacies")}
}

func (s *pharmaciesEditScreen) Path() string { return s.guard.Path() }

func (s *pharmaciesEditScreen) Guard() *guard.Guard { return s.guard }

func (s *pharmaciesEditScreen) Run(ctx context.Context, _ *nav.Router) error {
	current, err := s.app.API.GetPharmacie(ctx, pharmacieID)
	if err != nil {
		showCallError(err, "Pharmacie introuvable")
		return nil
	}
	ui.Header("Modifier " + current.Nom)

	nom := ui.PromptText("Nom de la pharmacie", current.Nom)
	adresse := ui.PromptText("Adresse", current.Adresse)
	telephone := ui.PromptText("Téléphone", current.Telephone)

	in := pharmanet.PharmacieUpdate{Nom: &nom, Adresse: &adresse, Telephone: &telephone}
	in.Latitude, in.Longitude = current.Latitude, current.Longitude

	if err := validate.Struct(in); err != nil {
		showCallError(err, "Erreur lors de la modification")
		return nil
	}

	updated, err := s.app.API.UpdatePharmacie(ctx, pharmacieID, in)
	if err != nil {
		showCallError(err, "Erreur lors de la modification")
		return nil
	}
	ui.Success("Pharmacie #" + strconv.Itoa(updated.ID) + " mise à jour.")
	return nil
}

type pharmaciesDeleteScreen struct {
	app   *App
	guard *guard.Guard
}

func newPharmaciesDelete(app *App) *pharmaciesDeleteScreen {
	return &pharmaciesDeleteScreen{app: app, guard: guard.New("/pharmacies/delete", []pharmanet.Role{pharmanet.RoleAdmin}, "/pharmacies")}
}

func (s *pharmaciesDeleteScreen) Path() string { return s.guard.Path() }

func (s *pharmaciesDeleteScreen) Guard() *guard.Guard { return s.guard }

func (s *pharmaciesDeleteScreen) Run(ctx context.Context, _ *nav.Router) error {
	if !ui.PromptConfirm("Supprimer la pharmacie #" + strconv.Itoa(pharmacieID) + " ?") {
		return nil
	}
	if err := s.app.API.DeletePharmacie(ctx, pharmacieID); err != nil {
		showCallError(err, "Erreur lors de la suppression")
		return nil
	}
	ui.Success("Pharmacie supprimée.")
	return nil
}
