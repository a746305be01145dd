// Copyright (c) 2026 Pharmav2 Dashboard
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/naimlawani01/pharmav2-dashboard/internal/pharmanet"
)

func pageQuery(skip, limit int) url.Values {
	q := url.Values{}
	q.Set("skip", strconv.Itoa(skip))
	q.Set("limit", strconv.Itoa(limit))
	return q
}

// ListProduits returns a page of the product catalogue.
func (c *Client) ListProduits(ctx context.Context, skip, limit int) ([]pharmanet.Produit, error) {
	var out []pharmanet.Produit
	if err := c.get(ctx, "/api/produits/", pageQuery(skip, limit), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetProduit returns one product by id.
func (c *Client) GetProduit(ctx context.Context, id int) (*pharmanet.Produit, error) {
	var out pharmanet.Produit
	if err := c.get(ctx, fmt.Sprintf("/api/produits/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateProduit creates a product.
func (c *Client) CreateProduit(ctx context.Context, in pharmanet.ProduitCreate) (*pharmanet.Produit, error) {
	var out pharmanet.Produit
	if err := c.postJSON(ctx, "/api/produits/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProduit updates a product.
func (c *Client) UpdateProduit(ctx context.Context, id int, in pharmanet.ProduitUpdate) (*pharmanet.Produit, error) {
	var out pharmanet.Produit
	if err := c.putJSON(ctx, fmt.Sprintf("/api/produits/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteProduit deletes a product.
func (c *Client) DeleteProduit(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/api/produits/%d", id))
}

// ListPharmacies returns a page of pharmacies.
func (c *Client) ListPharmacies(ctx context.Context, skip, limit int) ([]pharmanet.Pharmacie, error) {
	var out []pharmanet.Pharmacie
	if err := c.get(ctx, "/api/pharmacies/", pageQuery(skip, limit), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetPharmacie returns one pharmacy by id.
func (c *Client) GetPharmacie(ctx context.Context, id int) (*pharmanet.Pharmacie, error) {
	var out pharmanet.Pharmacie
	if err := c.get(ctx, fmt.Sprintf("/api/pharmacies/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreatePharmacie creates a pharmacy.
func (c *Client) CreatePharmacie(ctx context.Context, in pharmanet.PharmacieCreate) (*pharmanet.Pharmacie, error) {
	var out pharmanet.Pharmacie
	if err := c.postJSON(ctx, "/api/pharmacies/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePharmacie updates a pharmacy.
func (c *Client) UpdatePharmacie(ctx context.Context, id int, in pharmanet.PharmacieUpdate) (*pharmanet.Pharmacie, error) {
	var out pharmanet.Pharmacie
	if err := c.putJSON(ctx, fmt.Sprintf("/api/pharmacies/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeletePharmacie deletes a pharmacy.
func (c *Client) DeletePharmacie(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/api/pharmacies/%d", id))
}

// StockFilter narrows a stock listing to one product and/or one pharmacy.
type StockFilter struct {
	ProduitID   int
	PharmacieID int
}

// ListStocks returns a page of stock records, optionally filtered.
func (c *Client) ListStocks(ctx context.Context, skip, limit int, filter StockFilter) ([]pharmanet.Stock, error) {
	q := pageQuery(skip, limit)
	if filter.ProduitID > 0 {
		q.Set("produit_id", strconv.Itoa(filter.ProduitID))
	}
	if filter.PharmacieID > 0 {
		q.Set("pharmacie_id", strconv.Itoa(filter.PharmacieID))
	}
	var out []pharmanet.Stock
	if err := c.get(ctx, "/api/stocks/", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetStock returns one stock record by id.
func (c *Client) GetStock(ctx context.Context, id int) (*pharmanet.Stock, error) {
	var out pharmanet.Stock
	if err := c.get(ctx, fmt.Sprintf("/api/stocks/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateStock creates a stock record.
func (c *Client) CreateStock(ctx context.Context, in pharmanet.StockCreate) (*pharmanet.Stock, error) {
	var out pharmanet.Stock
	if err := c.postJSON(ctx, "/api/stocks/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateStock updates a stock record.
func (c *Client) UpdateStock(ctx context.Context, id int, in pharmanet.StockUpdate) (*pharmanet.Stock, error) {
	var out pharmanet.Stock
	if err := c.putJSON(ctx, fmt.Sprintf("/api/stocks/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteStock deletes a stock record.
func (c *Client) DeleteStock(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/api/stocks/%d", id))
}

// SearchProduit asks the backend where a product is available. When a
// position is supplied the backend computes and returns the distance to each
// pharmacy; the client never computes distances itself.
func (c *Client) SearchProduit(ctx context.Context, nom string, lat, lon *float64) ([]pharmanet.ProduitDisponible, error) {
	q := url.Values{}
	q.Set("nom", nom)
	if lat != nil && lon != nil {
		q.Set("latitude", strconv.FormatFloat(*lat, 'f', -1, 64))
		q.Set("longitude", strconv.FormatFloat(*lon, 'f', -1, 64))
	}
	var out []pharmanet.ProduitDisponible
	if err := c.get(ctx, "/api/recherche/produit", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}
