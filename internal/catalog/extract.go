// Vinoteca - Wine Ranking Catalog and Related-Wine Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoteca

package catalog

import "strings"

// Extractor reads one candidate value for a canonical field from a source
// record. Key names the raw field it reads and shows up in debug output.
type Extractor[S, T any] struct {
	Key  string
	Read func(S) Optional[T]
}

// firstText returns the first candidate that is present and non-blank after
// trimming.
func firstText[S any](src S, candidates []Extractor[S, string]) (string, bool) {
	for _, c := range candidates {
		v, ok := c.Read(src).Get()
		if !ok {
			continue
		}
		if v = strings.TrimSpace(v); v != "" {
			return v, true
		}
	}
	return "", false
}

// firstScalar returns the first candidate that is present and not blank text.
func firstScalar[S any](src S, candidates []Extractor[S, Scalar]) (Scalar, bool) {
	for _, c := range candidates {
		v, ok := c.Read(src).Get()
		if ok && !v.Blank() {
			return v, true
		}
	}
	return Scalar{}, false
}

// firstPresent returns the first candidate that is present at all, even if
// empty. Grape lists use this: an explicit empty list wins over a later key.
func firstPresent[S, T any](src S, candidates []Extractor[S, T]) (T, bool) {
	for _, c := range candidates {
		if v, ok := c.Read(src).Get(); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// taxonomyName reads the name of the first entry of a taxonomy list.
func taxonomyName(t Optional[Taxonomy]) Optional[string] {
	list, ok := t.Get()
	if !ok || len(list) == 0 {
		return None[string]()
	}
	item, ok := list[0].Get()
	if !ok {
		return None[string]()
	}
	return item.Name
}

// taxonomyNames returns the trimmed, non-blank, first-seen-unique names of a
// taxonomy list.
func taxonomyNames(t Optional[Taxonomy]) []string {
	list, _ := t.Get()
	names := make([]string, 0, len(list))
	seen := make(map[string]struct{}, len(list))
	for _, entry := range list {
		item, ok := entry.Get()
		if !ok {
			continue
		}
		name, ok := item.Name.Get()
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

func localeText(raw *RawWine, key string) Optional[string] {
	m, ok := raw.RelatedLocale.Get()
	if !ok {
		return None[string]()
	}
	s, ok := m[key].(string)
	if !ok {
		return None[string]()
	}
	return Some(s)
}

func localeFirstRegion(raw *RawWine) Optional[string] {
	m, ok := raw.RelatedLocale.Get()
	if !ok {
		return None[string]()
	}
	regions := Locale(m).Regions()
	if len(regions) == 0 {
		return None[string]()
	}
	return Some(regions[0])
}

type (
	wineText   = Extractor[*RawWine, string]
	wineScalar = Extractor[*RawWine, Scalar]
	grapeText  = Extractor[RawGrape, string]
	grapeValue = Extractor[RawGrape, Scalar]
	grapeList  = Extractor[*RawWine, []Optional[RawGrape]]
)

var (
	titleField = []wineText{
		{Key: "title", Read: func(r *RawWine) Optional[string] { return r.Title }},
	}
	slugField = []wineText{
		{Key: "slug", Read: func(r *RawWine) Optional[string] { return r.Slug }},
	}
	regionField = []wineText{
		{Key: "regioni", Read: func(r *RawWine) Optional[string] { return taxonomyName(r.Regioni) }},
	}
	localeRegionField = wineText{
		Key: "related_locale.regioni", Read: localeFirstRegion,
	}
	denominazioneField = []wineText{
		{Key: "prodotti_denominazione_vino", Read: func(r *RawWine) Optional[string] { return taxonomyName(r.ProdottiDenominazioneVino) }},
	}
	priceRangeField = []wineText{
		{Key: "prodotti_fascia_di_prezzo", Read: func(r *RawWine) Optional[string] { return taxonomyName(r.ProdottiFasciaDiPrezzo) }},
	}
	pairingField = []wineText{
		{Key: "abbinamento", Read: func(r *RawWine) Optional[string] { return r.Abbinamento }},
		{Key: "vino_abbinamento", Read: func(r *RawWine) Optional[string] { return r.VinoAbbinamento }},
	}
	contentField = []wineText{
		{Key: "content", Read: func(r *RawWine) Optional[string] { return r.Content }},
	}
	wineryNameField = []wineText{
		{Key: "related_locale.title", Read: func(r *RawWine) Optional[string] { return localeText(r, "title") }},
	}
	wineryLinkField = []wineText{
		{Key: "related_locale.website", Read: func(r *RawWine) Optional[string] { return localeText(r, "website") }},
	}

	idField = []wineScalar{
		{Key: "id", Read: func(r *RawWine) Optional[Scalar] { return r.ID }},
	}
	yearField = []wineScalar{
		{Key: "anno", Read: func(r *RawWine) Optional[Scalar] { return r.Anno }},
	}
	scoreField = []wineScalar{
		{Key: "vino_centesimi", Read: func(r *RawWine) Optional[Scalar] { return r.VinoCentesimi }},
	}
	priceField = []wineScalar{
		{Key: "prezzo", Read: func(r *RawWine) Optional[Scalar] { return r.Prezzo }},
	}
	bottlesField = []wineScalar{
		{Key: "numero_bottiglie", Read: func(r *RawWine) Optional[Scalar] { return r.NumeroBottiglie }},
	}

	grapeListField = []grapeList{
		{Key: "vitigni", Read: func(r *RawWine) Optional[[]Optional[RawGrape]] { return r.Vitigni }},
		{Key: "vino_vitigni", Read: func(r *RawWine) Optional[[]Optional[RawGrape]] { return r.VinoVitigni }},
		{Key: "prodotti_vitigni", Read: func(r *RawWine) Optional[[]Optional[RawGrape]] { return r.ProdottiVitigni }},
	}
	grapeNameField = []grapeText{
		{Key: "vitigno", Read: func(g RawGrape) Optional[string] { return g.Vitigno }},
		{Key: "nome", Read: func(g RawGrape) Optional[string] { return g.Nome }},
		{Key: "name", Read: func(g RawGrape) Optional[string] { return g.Name }},
	}
	grapeShareField = []grapeValue{
		{Key: "percentuale", Read: func(g RawGrape) Optional[Scalar] { return g.Percentuale }},
		{Key: "percentage", Read: func(g RawGrape) Optional[Scalar] { return g.Percentage }},
		{Key: "value", Read: func(g RawGrape) Optional[Scalar] { return g.Value }},
	}
)
