// Vinoteca - Wine Ranking Catalog and Related-Wine Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoteca

package catalog

import "strings"

// Wine is the canonical, normalized catalog entry.
//
// Nil pointers mean "unknown"; text fields are never empty strings.
type Wine struct {
	ID   int    `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`

	Type       *string  `json:"type"`
	Categories []string `json:"categories"`

	Region        *string  `json:"region"`
	Year          *int     `json:"year"`
	Score         *int     `json:"score"`
	Price         *float64 `json:"price"`
	PriceRange    *string  `json:"price_range"`
	Bottles       *int     `json:"bottles"`
	Denominazione *string  `json:"denominazione"`

	Grapes      []Grape  `json:"grapes"`
	Pairing     *string  `json:"pairing"`
	PairingTags []string `json:"pairing_tags"`

	RelatedLocale Locale     `json:"related_locale"`
	Thumbnail     *Thumbnail `json:"thumbnail"`
	Content       *string    `json:"content"`

	WineryName *string  `json:"winery_name"`
	WineryLink *string  `json:"winery_link"`
	Awards     []string `json:"awards"`

	// FirstAward is the trimmed name of the first raw award entry, nil when
	// that entry is null or blank even if later entries are not.
	FirstAward *string `json:"first_award"`
}

// Grape is one entry of a wine's grape composition.
type Grape struct {
	Name       string   `json:"name"`
	Percentage *float64 `json:"percentage"`
}

// Thumbnail holds image URLs. At least one variant is non-nil.
type Thumbnail struct {
	Full      *string `json:"full"`
	Medium    *string `json:"medium"`
	Thumbnail *string `json:"thumbnail"`
}

// TypeName returns the wine type or "" when unknown.
func (w Wine) TypeName() string {
	return deref(w.Type)
}

// RegionName returns the primary region or "" when unknown.
func (w Wine) RegionName() string {
	return deref(w.Region)
}

// ScoreOrZero returns the score, treating an unknown score as 0.
func (w Wine) ScoreOrZero() int {
	if w.Score == nil {
		return 0
	}
	return *w.Score
}

// Locale is the free-form locale metadata attached to a record. It is passed
// through untouched; the accessors read the few keys the catalog relies on.
type Locale map[string]any

// Title returns the trimmed locale title (the producer name), if any.
func (l Locale) Title() (string, bool) {
	return l.text("title")
}

// Website returns the trimmed locale website, if any.
func (l Locale) Website() (string, bool) {
	return l.text("website")
}

// Regions returns the trimmed, non-blank names of the locale's region list in
// source order. Duplicates are kept.
func (l Locale) Regions() []string {
	list, ok := l["regioni"].([]any)
	if !ok {
		return nil
	}
	names := make([]string, 0, len(list))
	for _, entry := range list {
		item, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		name, _ := item["name"].(string)
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func (l Locale) text(key string) (string, bool) {
	s, _ := l[key].(string)
	s = strings.TrimSpace(s)
	return s, s != ""
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func ptr[T any](v T) *T {
	return &v
}
