// Copyright (c) 2026 Pharmav2 Dashboard
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package pharmanet defines the wire types exchanged with the pharmacy-network
// REST backend. Field names follow the backend's JSON schema verbatim.
package pharmanet

// Role is one of the fixed user roles recognised by the backend.
type Role string

const (
	RoleClient     Role = "client"
	RolePharmacien Role = "pharmacien"
	RoleAdmin      Role = "admin"
)

// Valid reports whether r is one of the closed set of roles.
func (r Role) Valid() bool {
	switch r {
	case RoleClient, RolePharmacien, RoleAdmin:
		return true
	}
	return false
}

// Produit is a product from the shared catalogue.
type Produit struct {
	ID           int     `json:"id"`
	Nom          string  `json:"nom"`
	Description  string  `json:"description,omitempty"`
	Categorie    string  `json:"categorie,omitempty"`
	PrixUnitaire float64 `json:"prix_unitaire"`
}

// ProduitCreate is the payload for creating a product.
type ProduitCreate struct {
	Nom          string  `json:"nom" validate:"required"`
	Description  string  `json:"description,omitempty"`
	Categorie    string  `json:"categorie,omitempty"`
	PrixUnitaire float64 `json:"prix_unitaire" validate:"gte=0"`
}

// ProduitUpdate carries the optional fields of a product update.
type ProduitUpdate struct {
	Nom          *string  `json:"nom,omitempty"`
	Description  *string  `json:"description,omitempty"`
	Categorie    *string  `json:"categorie,omitempty"`
	PrixUnitaire *float64 `json:"prix_unitaire,omitempty" validate:"omitempty,gte=0"`
}

// Pharmacie is a pharmacy of the network.
type Pharmacie struct {
	ID        int      `json:"id"`
	Nom       string   `json:"nom"`
	Adresse   string   `json:"adresse,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Telephone string   `json:"telephone,omitempty"`
}

// PharmacieCreate is the payload for creating a pharmacy.
type PharmacieCreate struct {
	Nom       string   `json:"nom" validate:"required"`
	Adresse   string   `json:"adresse,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty" validate:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,gte=-180,lte=180"`
	Telephone string   `json:"telephone,omitempty"`
}

// PharmacieUpdate carries the optional fields of a pharmacy update.
type PharmacieUpdate struct {
	Nom       *string  `json:"nom,omitempty"`
	Adresse   *string  `json:"adresse,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty" validate:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,gte=-180,lte=180"`
	Telephone *string  `json:"telephone,omitempty"`
}

// Stock links a product to a pharmacy with an available quantity.
type Stock struct {
	ID                 int      `json:"id"`
	ProduitID          int      `json:"produit_id"`
	PharmacieID        int      `json:"pharmacie_id"`
	QuantiteDisponible int      `json:"quantite_disponible"`
	Prix               *float64 `json:"prix,omitempty"`
}

// StockCreate is the payload for creating a stock record.
type StockCreate struct {
	ProduitID          int      `json:"produit_id" validate:"required,gt=0"`
	PharmacieID        int      `json:"pharmacie_id" validate:"required,gt=0"`
	QuantiteDisponible int      `json:"quantite_disponible" validate:"gte=0"`
	Prix               *float64 `json:"prix,omitempty" validate:"omitempty,gte=0"`
}

// StockUpdate carries the optional fields of a stock update.
type StockUpdate struct {
	QuantiteDisponible *int     `json:"quantite_disponible,omitempty" validate:"omitempty,gte=0"`
	Prix               *float64 `json:"prix,omitempty" validate:"omitempty,gte=0"`
}

// ProduitDisponible is one availability hit returned by the product search.
// The backend computes distance_km server-side when a position is supplied.
type ProduitDisponible struct {
	ProduitID          int      `json:"produit_id"`
	ProduitNom         string   `json:"produit_nom"`
	PharmacieID        int      `json:"pharmacie_id"`
	PharmacieNom       string   `json:"pharmacie_nom"`
	PharmacieAdresse   string   `json:"pharmacie_adresse,omitempty"`
	PharmacieLatitude  *float64 `json:"pharmacie_latitude,omitempty"`
	PharmacieLongitude *float64 `json:"pharmacie_longitude,omitempty"`
	PharmacieTelephone string   `json:"pharmacie_telephone,omitempty"`
	QuantiteDisponible int      `json:"quantite_disponible"`
	Prix               *float64 `json:"prix,omitempty"`
	DistanceKM         *float64 `json:"distance_km,omitempty"`
}

// User is the identity record returned by registration.
type User struct {
	ID          int    `json:"id"`
	Nom         string `json:"nom"`
	Email       string `json:"email"`
	Role        Role   `json:"role"`
	PharmacieID *int   `json:"pharmacie_id,omitempty"`
}

// UserCreate is the registration payload.
type UserCreate struct {
	Nom         string `json:"nom" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	MotDePasse  string `json:"mot_de_passe" validate:"required,min=6"`
	Role        Role   `json:"role,omitempty"`
	PharmacieID *int   `json:"pharmacie_id,omitempty"`
}

// Me is the full identity returned by the who-am-I endpoint.
type Me struct {
	ID        int        `json:"id"`
	Nom       string     `json:"nom"`
	Email     string     `json:"email"`
	Role      Role       `json:"role"`
	Pharmacie *Pharmacie `json:"pharmacie,omitempty"`
}

// PharmacieID returns the id of the pharmacy attached to the identity, if any.
func (m *Me) PharmacieID() (int, bool) {
	if m == nil || m.Pharmacie == nil {
		return 0, false
	}
	return m.Pharmacie.ID, true
}

// AuthResponse is returned by the login endpoint. The session cookie is set
// server-side; tokens are mirrored in the body for clients that persist them.
type AuthResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	User         User   `json:"user"`
}
