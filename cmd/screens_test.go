// Copyright (c) 2026 Pharmav2 Dashboard
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"testing"

	"github.com/naimlawani01/pharmav2-dashboard/internal/nav"
	"github.com/naimlawani01/pharmav2-dashboard/internal/pharmanet"
	"github.com/naimlawani01/pharmav2-dashboard/internal/session"
)

func TestBrowseScreensArePublic(t *testing.T) {
	screens := []nav.Screen{
		newProduitsList(nil),
		newProduitsShow(nil),
		newPharmaciesList(nil),
		newPharmaciesShow(nil),
		&rechercheScreen{},
	}
	for _, s := range screens {
		if _, guarded := s.(nav.Guarded); guarded {
			t.Errorf("screen %q is guarded, want public browsing", s.Path())
		}
	}
}

func TestManagementScreensAreGuarded(t *testing.T) {
	screens := []nav.Screen{
		newProduitsNew(nil),
		newProduitsEdit(nil),
		newProduitsDelete(nil),
		newPharmaciesNew(nil),
		newPharmaciesEdit(nil),
		newPharmaciesDelete(nil),
		newStocksList(nil),
		newStocksNew(nil),
		newStocksEdit(nil),
		newStocksDelete(nil),
		newDashboardAdmin(nil),
		newDashboardPharmacien(nil),
		newDashboardClient(nil),
	}
	for _, s := range screens {
		if _, guarded := s.(nav.Guarded); !guarded {
			t.Errorf("screen %q is public, want guarded", s.Path())
		}
	}
}

func TestAdminFormsFallBackToList(t *testing.T) {
	tests := []struct {
		screen   nav.Guarded
		fallback string
	}{
		{newProduitsNew(nil), "/produits"},
		{newProduitsEdit(nil), "/produits"},
		{newProduitsDelete(nil), "/produits"},
		{newPharmaciesNew(nil), "/pharmacies"},
		{newPharmaciesEdit(nil), "/pharmacies"},
		{newPharmaciesDelete(nil), "/pharmacies"},
	}

	// A signed-in non-admin is denied to the list screen, not to login.
	snap := session.Snapshot{
		Fetched:       true,
		Authenticated: true,
		User:          &pharmanet.Me{ID: 1, Role: pharmanet.RoleClient},
	}
	for _, tt := range tests {
		d := tt.screen.Guard().Evaluate(tt.screen.Path(), snap)
		if d.Redirect != tt.fallback {
			t.Errorf("screen %q denial redirect = %q, want %q", tt.screen.Path(), d.Redirect, tt.fallback)
		}
	}
}
