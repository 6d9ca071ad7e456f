// Vinoteca - Wine Ranking Catalog and Related-Wine Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoteca

package config

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/tomtom215/vinoteca/internal/validation"
)

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if verr := validation.ValidateStruct(c); verr != nil {
		return verr
	}
	if err := c.validateRecommend(); err != nil {
		return err
	}
	return c.validateAwards()
}

func (c *Config) validateRecommend() error {
	if !c.Recommend.CacheEnabled {
		return nil
	}
	if c.Recommend.CacheSize < 1 {
		return fmt.Errorf("recommend.cache_size must be positive when the cache is enabled, got %d", c.Recommend.CacheSize)
	}
	if c.Recommend.CacheTTL <= 0 {
		return fmt.Errorf("recommend.cache_ttl must be positive when the cache is enabled, got %v", c.Recommend.CacheTTL)
	}
	return nil
}

func (c *Config) validateAwards() error {
	if _, err := language.Parse(c.Awards.CollationLocale); err != nil {
		return fmt.Errorf("awards.collation_locale %q is not a BCP 47 tag: %w", c.Awards.CollationLocale, err)
	}
	return nil
}
