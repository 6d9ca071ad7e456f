// Vinoteca - Wine Ranking Catalog and Related-Wine Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoteca

package supervisor

import (
	"context"
	"errors"
	"sync/atomic"
)

var errLayerStart = errors.New("layer service failed to start")

// layerService stands in for the janitor or HTTP service of a layer. It
// fails its first failures runs, then blocks until canceled.
type layerService struct {
	name     string
	failures int32
	starts   atomic.Int32
	stops    atomic.Int32
}

func newLayerService(name string, failures int32) *layerService {
	return &layerService{name: name, failures: failures}
}

func (s *layerService) Serve(ctx context.Context) error {
	run := s.starts.Add(1)
	defer s.stops.Add(1)

	if run <= s.failures {
		return errLayerStart
	}
	<-ctx.Done()
	return ctx.Err()
}

func (s *layerService) String() string {
	return s.name
}
