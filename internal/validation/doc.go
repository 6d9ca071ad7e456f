// Vinoteca - Wine Ranking Catalog and Related-Wine Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoteca

/*
Package validation provides struct validation using go-playground/validator v10.

A single validator instance is shared process-wide. It reports fields by
their query or koanf tag name, so errors read "count must be at most 24"
rather than naming the Go field, and it registers two custom tags:

  - routepath: an absolute URL path ("/classifica-vini-2026"), no whitespace
  - loglevel: a level name accepted by logging.Init

Query parameters in the API and the configuration structs are validated
the same way:

	type relatedQuery struct {
	    Count int    `query:"count" validate:"min=0,max=100"`
	    Seed  string `query:"seed" validate:"max=256"`
	}

	if verr := validation.ValidateStruct(&q); verr != nil {
	    apiErr := verr.ToAPIError()
	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
	}

ValidateStruct returns a *RequestValidationError, whose ToAPIError produces
the VALIDATION_ERROR code used by the HTTP envelope.
*/
package validation
