// Vinoteca - Wine Ranking Catalog and Related-Wine Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoteca

package catalog

import (
	"strconv"
	"strings"
)

// DefaultPlaceholderName is the display name given to records without a title.
const DefaultPlaceholderName = "Senza nome"

// Options tunes the normalizer.
type Options struct {
	// PlaceholderName replaces a blank title.
	PlaceholderName string

	// LocaleRegionFallback resolves the region from the first entry of the
	// locale region list when the primary region taxonomy is empty.
	LocaleRegionFallback bool
}

// DefaultOptions returns the normalizer settings used by Normalize.
func DefaultOptions() Options {
	return Options{PlaceholderName: DefaultPlaceholderName}
}

// Normalizer maps raw records to Wine values. It is immutable and safe for
// concurrent use.
type Normalizer struct {
	placeholder string
	region      []wineText
}

// NewNormalizer builds a Normalizer. A blank placeholder falls back to
// DefaultPlaceholderName.
func NewNormalizer(opts Options) *Normalizer {
	placeholder := strings.TrimSpace(opts.PlaceholderName)
	if placeholder == "" {
		placeholder = DefaultPlaceholderName
	}
	region := regionField
	if opts.LocaleRegionFallback {
		region = append(append([]wineText{}, regionField...), localeRegionField)
	}
	return &Normalizer{placeholder: placeholder, region: region}
}

var defaultNormalizer = NewNormalizer(DefaultOptions())

// Normalize maps raw to a Wine with the default options.
func Normalize(raw RawWine) Wine {
	return defaultNormalizer.Normalize(raw)
}

// Normalize maps raw to a Wine. It never fails: fields that cannot be
// resolved are left nil or take their documented default.
func (n *Normalizer) Normalize(raw RawWine) Wine {
	r := &raw
	w := Wine{
		Grapes:      []Grape{},
		PairingTags: taxonomyNames(r.TagAbbinamento),
		Categories:  taxonomyNames(r.VinoCategoria),
		Awards:      awardNames(r.Premi),
		FirstAward:  firstAwardName(r.Premi),
	}

	if id, ok := firstScalar(r, idField); ok {
		w.ID, _ = id.Int()
	}

	w.Name = n.placeholder
	if name, ok := firstText(r, titleField); ok {
		w.Name = name
	}
	w.Slug = resolveSlug(r, w.Name, w.ID)

	if len(w.Categories) > 0 {
		w.Type = ptr(w.Categories[0])
	}
	w.Region = textPtr(r, n.region)
	w.Denominazione = textPtr(r, denominazioneField)
	w.PriceRange = textPtr(r, priceRangeField)
	w.Pairing = textPtr(r, pairingField)
	w.Content = textPtr(r, contentField)
	w.WineryName = textPtr(r, wineryNameField)
	w.WineryLink = textPtr(r, wineryLinkField)

	w.Year = intPtr(r, yearField)
	w.Score = intPtr(r, scoreField)
	w.Bottles = intPtr(r, bottlesField)
	if s, ok := firstScalar(r, priceField); ok {
		if f, ok := s.Float(); ok {
			w.Price = &f
		}
	}

	if list, ok := firstPresent(r, grapeListField); ok {
		w.Grapes = parseGrapes(list)
	}

	if m, ok := r.RelatedLocale.Get(); ok && m != nil {
		w.RelatedLocale = Locale(m)
	}
	w.Thumbnail = parseThumbnail(r.Thumbnail)

	return w
}

// resolveSlug prefers the source slug, then the slugified name. A name with
// no slug-safe characters falls back to "wine-<id>" so the slug is never empty.
func resolveSlug(r *RawWine, name string, id int) string {
	if slug, ok := firstText(r, slugField); ok {
		return strings.ToLower(slug)
	}
	if slug := Slugify(name); slug != "" {
		return slug
	}
	return "wine-" + strconv.Itoa(id)
}

func textPtr(r *RawWine, candidates []wineText) *string {
	if v, ok := firstText(r, candidates); ok {
		return &v
	}
	return nil
}

func intPtr(r *RawWine, candidates []wineScalar) *int {
	s, ok := firstScalar(r, candidates)
	if !ok {
		return nil
	}
	if n, ok := s.Int(); ok {
		return &n
	}
	return nil
}

func parseGrapes(list []Optional[RawGrape]) []Grape {
	grapes := make([]Grape, 0, len(list))
	for _, entry := range list {
		g, ok := entry.Get()
		if !ok {
			continue
		}
		name, ok := firstText(g, grapeNameField)
		if !ok {
			continue
		}
		grape := Grape{Name: name}
		if share, ok := firstScalar(g, grapeShareField); ok {
			if n, ok := share.Int(); ok {
				f := float64(n)
				grape.Percentage = &f
			}
		}
		grapes = append(grapes, grape)
	}
	return grapes
}

func parseThumbnail(t Optional[RawThumbnail]) *Thumbnail {
	raw, ok := t.Get()
	if !ok {
		return nil
	}
	thumb := Thumbnail{
		Full:      trimmedPtr(raw.Full),
		Medium:    trimmedPtr(raw.Medium),
		Thumbnail: trimmedPtr(raw.Thumbnail),
	}
	if thumb.Full == nil && thumb.Medium == nil && thumb.Thumbnail == nil {
		return nil
	}
	return &thumb
}

func awardNames(p Optional[[]Optional[RawAward]]) []string {
	list, _ := p.Get()
	names := make([]string, 0, len(list))
	for _, entry := range list {
		award, ok := entry.Get()
		if !ok {
			continue
		}
		if name := trimmedPtr(award.Name); name != nil {
			names = append(names, *name)
		}
	}
	return names
}

// firstAwardName reads premi[0].name only. A null or blank first entry
// means the wine has no award, whatever follows it.
func firstAwardName(p Optional[[]Optional[RawAward]]) *string {
	list, _ := p.Get()
	if len(list) == 0 {
		return nil
	}
	award, ok := list[0].Get()
	if !ok {
		return nil
	}
	return trimmedPtr(award.Name)
}

func trimmedPtr(o Optional[string]) *string {
	s, ok := o.Get()
	if !ok {
		return nil
	}
	if s = strings.TrimSpace(s); s == "" {
		return nil
	}
	return &s
}
