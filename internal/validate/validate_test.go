// Copyright (c) 2026 Pharmav2 Dashboard
// Licensed under the MIT License. See LICENSE file in the project root for details.

package validate

import (
	"errors"
	"testing"

	"github.com/naimlawani01/pharmav2-dashboard/internal/api"
	"github.com/naimlawani01/pharmav2-dashboard/internal/pharmanet"
)

func TestStructValidPayload(t *testing.T) {
	in := pharmanet.UserCreate{
		Nom:        "Alice",
		Email:      "alice@pharma.test",
		MotDePasse: "secret1",
		Role:       pharmanet.RoleClient,
	}
	if err := Struct(in); err != nil {
		t.Errorf("Struct() error = %v, want nil", err)
	}
}

func TestStructFailuresMatchBackendShape(t *testing.T) {
	tests := []struct {
		name    string
		payload any
		want    string
	}{
		{
			name:    "missing product name",
			payload: pharmanet.ProduitCreate{PrixUnitaire: 3.5},
			want:    "nom: field required",
		},
		{
			name: "bad email",
			payload: pharmanet.UserCreate{
				Nom:        "Bob",
				Email:      "pas-un-email",
				MotDePasse: "secret1",
			},
			want: "email: value is not a valid email address",
		},
		{
			name: "short password",
			payload: pharmanet.UserCreate{
				Nom:        "Bob",
				Email:      "bob@pharma.test",
				MotDePasse: "abc",
			},
			want: "mot_de_passe: ensure this value has at least 6 characters",
		},
		{
			name:    "missing stock references",
			payload: pharmanet.StockCreate{QuantiteDisponible: 4},
			want:    "produit_id: field required\npharmacie_id: field required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.payload)
			if err == nil {
				t.Fatal("Struct() error = nil, want a validation failure")
			}

			var apiErr *api.Error
			if !errors.As(err, &apiErr) {
				t.Fatalf("Struct() error = %T, want *api.Error", err)
			}
			if apiErr.Status != 422 {
				t.Errorf("Status = %d, want 422", apiErr.Status)
			}
			if !apiErr.IsValidation() {
				t.Error("IsValidation() = false, want true")
			}
			if got := apiErr.Message(); got != tt.want {
				t.Errorf("Message() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStructReportsWireNames(t *testing.T) {
	err := Struct(pharmanet.UserCreate{Nom: "X", Email: "x@y.fr"})
	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("Struct() error = %T, want *api.Error", err)
	}
	fields, ok := apiErr.Detail.([]api.FieldError)
	if !ok || len(fields) != 1 {
		t.Fatalf("Detail = %#v, want one field error", apiErr.Detail)
	}
	if len(fields[0].Loc) != 2 || fields[0].Loc[0] != "body" || fields[0].Loc[1] != "mot_de_passe" {
		t.Errorf("Loc = %v, want [body mot_de_passe]", fields[0].Loc)
	}
}
