// Copyright (c) 2026 Pharmav2 Dashboard
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/naimlawani01/pharmav2-dashboard/internal/api"
	"github.com/naimlawani01/pharmav2-dashboard/internal/guard"
	"github.com/naimlawani01/pharmav2-dashboard/internal/nav"
	"github.com/naimlawani01/pharmav2-dashboard/internal/terminal"
	"github.com/naimlawani01/pharmav2-dashboard/internal/ui"
)

var loginEmail string

// loginCmd opens the login screen. An already authenticated user is sent
// straight to their dashboard instead of being asked for credentials again.
var loginCmd = &cobra.Command{
	Use:     "login",
	Aliases: []string{"connexion"},
	Short:   "S'authentifier auprès du réseau",
	Long: `La commande login demande un email et un mot de passe, ouvre une session
auprès du backend et enregistre les jetons de session dans le trousseau du
système. Un utilisateur déjà connecté est redirigé vers son tableau de bord.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		return app.Router.Open(cmd.Context(), guard.LoginPath)
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Email du compte")
}

// loginScreen is the credential form. It applies the inverse guard: when the
// session is already authenticated on arrival it redirects to the role
// dashboard, unless a submission is in flight (the submit path performs its
// own redirect).
type loginScreen struct {
	app        *App
	submitting bool
}

func (s *loginScreen) Path() string { return guard.LoginPath }

func (s *loginScreen) Run(ctx context.Context, r *nav.Router) error {
	stop := r.Spinner("Vérification de la session")
	s.app.Session.Bootstrap(ctx)
	stop()

	if target := guard.LoginRedirect(s.app.Session.Snapshot(), s.submitting); target != "" {
		ui.Info("Déjà connecté.")
		return r.Open(ctx, target)
	}

	ui.Header("Connexion")

	email := strings.TrimSpace(loginEmail)
	if email == "" {
		email = promptLine("Email : ")
	}
	if email == "" {
		return errors.New("email requis")
	}
	password := ui.PromptPassword("Mot de passe")
	if password == "" {
		return errors.New("mot de passe requis")
	}

	s.submitting = true
	defer func() { s.submitting = false }()

	if _, err := s.app.API.Login(ctx, email, password); err != nil {
		showCallError(err, "Erreur de connexion")
		return nil
	}
	me, err := s.app.API.Me(ctx)
	if err != nil {
		showCallError(err, "Erreur de connexion")
		return nil
	}
	s.app.Session.RecordLogin(me)
	cacheIdentity(me)
	ui.Success(fmt.Sprintf("Bienvenue, %s !", me.Nom))

	return r.Open(ctx, guard.DashboardPath(me.Role))
}

// promptLine reads one line from stdin then erases the prompt, so typed
// identifiers do not linger on screen.
func promptLine(prompt string) string {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	terminal.ClearPreviousLines(len(prompt) + len(line))
	return line
}

// showCallError renders a backend failure as an inline banner. Validation
// details are flattened to one line per field; transport errors fall back to
// the given context message.
func showCallError(err error, fallback string) {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		ui.ErrorBanner(apiErr.Message())
		return
	}
	ui.ErrorBanner(fallback + " : " + err.Error())
}
