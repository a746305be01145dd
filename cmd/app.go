// Copyright (c) 2026 Pharmav2 Dashboard
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/naimlawani01/pharmav2-dashboard/internal/api"
	"github.com/naimlawani01/pharmav2-dashboard/internal/config"
	"github.com/naimlawani01/pharmav2-dashboard/internal/keychain"
	"github.com/naimlawani01/pharmav2-dashboard/internal/logging"
	"github.com/naimlawani01/pharmav2-dashboard/internal/nav"
	"github.com/naimlawani01/pharmav2-dashboard/internal/session"
	"github.com/naimlawani01/pharmav2-dashboard/internal/ui"
)

// App bundles the wired core: configuration, gateway, session store, and the
// screen router. One App is built per invocation; the session it carries is
// the process-wide singleton every screen reads from.
type App struct {
	Cfg     config.Config
	Log     zerolog.Logger
	API     *api.Client
	Session *session.Store
	Router  *nav.Router
}

// newApp wires the application. The gateway's forced-logout callback is
// registered here, exactly once, before any screen can issue a call.
func newApp(ctx context.Context) (*App, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, err
	}
	log := logging.Init(logging.Options{Level: cfg.LogLevel})

	var creds api.CredentialStore
	if km, err := keychain.GetManager(); err == nil {
		creds = km
	} else {
		log.Warn().Err(err).Msg("keychain unavailable, continuing without stored tokens")
	}

	client := api.New(cfg.APIURL, creds, cfg.HTTPTimeout)
	sess := session.New(client, creds)
	client.SetLogoutCallback(sess.ForceLogout)

	router := nav.NewRouter(sess)
	router.Spinner = ui.Spinner

	a := &App{
		Cfg:     cfg,
		Log:     log,
		API:     client,
		Session: sess,
		Router:  router,
	}
	a.registerScreens()
	return a, nil
}

// registerScreens installs every screen on the router. Guards are created
// here so each screen carries its own redirect latch for the lifetime of the
// mount.
func (a *App) registerScreens() {
	a.Router.Register(
		&homeScreen{app: a},
		&loginScreen{app: a},
		newDashboardAdmin(a),
		newDashboardPharmacien(a),
		newDashboardClient(a),
		newProduitsList(a),
		newProduitsShow(a),
		newProduitsNew(a),
		newProduitsEdit(a),
		newProduitsDelete(a),
		newPharmaciesList(a),
		newPharmaciesShow(a),
		newPharmaciesNew(a),
		newPharmaciesEdit(a),
		newPharmaciesDelete(a),
		newStocksList(a),
		newStocksNew(a),
		newStocksEdit(a),
		newStocksDelete(a),
		&rechercheScreen{app: a},
	)
}
