// Vinoteca - Wine Ranking Catalog and Related-Wine Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoteca

package catalog

import (
	"errors"
	"regexp"
)

var (
	// ErrEmptySource is returned when Load is given no reader.
	ErrEmptySource = errors.New("catalog source is nil")

	// ErrMalformedCatalog is returned when the source is not a JSON array of records.
	ErrMalformedCatalog = errors.New("catalog source is not a JSON array")

	errNotScalar = errors.New("value is neither a string nor a number")
)

var (
	leadingInteger = regexp.MustCompile(`^[+-]?\d+`)
	leadingNumber  = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
)

// TaxonomyItem is one {id, name} entry of a taxonomy list. Only the first
// entry of most taxonomies is canonical.
type TaxonomyItem struct {
	ID   Optional[Scalar] `json:"id"`
	Name Optional[string] `json:"name"`
}

// Taxonomy is a raw taxonomy list. Null list entries decode as absent items.
type Taxonomy []Optional[TaxonomyItem]

// RawGrape is one grape composition entry. The export has used three
// different keys for both the variety name and its share.
type RawGrape struct {
	Vitigno     Optional[string] `json:"vitigno"`
	Nome        Optional[string] `json:"nome"`
	Name        Optional[string] `json:"name"`
	Percentuale Optional[Scalar] `json:"percentuale"`
	Percentage  Optional[Scalar] `json:"percentage"`
	Value       Optional[Scalar] `json:"value"`
}

// RawThumbnail holds the image variants of a record.
type RawThumbnail struct {
	Full      Optional[string] `json:"full"`
	Medium    Optional[string] `json:"medium"`
	Thumbnail Optional[string] `json:"thumbnail"`
}

// RawAward is one entry of the award list. Name is a "name;...;year" string.
type RawAward struct {
	Name Optional[string] `json:"name"`
}

// RawWine is a record as found in the bulk export. Any field may be absent.
type RawWine struct {
	ID    Optional[Scalar] `json:"id"`
	Slug  Optional[string] `json:"slug"`
	Title Optional[string] `json:"title"`

	Regioni                   Optional[Taxonomy] `json:"regioni"`
	VinoCategoria             Optional[Taxonomy] `json:"vino_categoria"`
	ProdottiFasciaDiPrezzo    Optional[Taxonomy] `json:"prodotti_fascia_di_prezzo"`
	ProdottiDenominazioneVino Optional[Taxonomy] `json:"prodotti_denominazione_vino"`
	TagAbbinamento            Optional[Taxonomy] `json:"tag_abbinamento"`

	Anno            Optional[Scalar] `json:"anno"`
	VinoCentesimi   Optional[Scalar] `json:"vino_centesimi"`
	Prezzo          Optional[Scalar] `json:"prezzo"`
	NumeroBottiglie Optional[Scalar] `json:"numero_bottiglie"`

	Vitigni         Optional[[]Optional[RawGrape]] `json:"vitigni"`
	VinoVitigni     Optional[[]Optional[RawGrape]] `json:"vino_vitigni"`
	ProdottiVitigni Optional[[]Optional[RawGrape]] `json:"prodotti_vitigni"`

	Abbinamento     Optional[string] `json:"abbinamento"`
	VinoAbbinamento Optional[string] `json:"vino_abbinamento"`

	Content       Optional[string]               `json:"content"`
	RelatedLocale Optional[map[string]any]       `json:"related_locale"`
	Thumbnail     Optional[RawThumbnail]         `json:"thumbnail"`
	Premi         Optional[[]Optional[RawAward]] `json:"premi"`
}

