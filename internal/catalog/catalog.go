package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// Product is one storefront catalog entry. Price is kept as raw JSON
// because the document allows both a flat number and a per-variant map.
type Product struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Images []string        `json:"images"`
	Price  json.RawMessage `json:"price"`
}

// Document is the parsed catalog.
type Document struct {
	Products []Product `json:"products"`
}

// Catalog holds the storefront catalog loaded at boot. The raw bytes
// are served verbatim so the document round-trips unchanged.
type Catalog struct {
	doc Document
	raw []byte
}

// Load reads and parses the catalog document at path.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}

	return &Catalog{doc: doc, raw: raw}, nil
}

// Raw returns the document exactly as it was read from disk.
func (c *Catalog) Raw() []byte {
	return c.raw
}

// Products returns the parsed catalog entries.
func (c *Catalog) Products() []Product {
	return c.doc.Products
}
