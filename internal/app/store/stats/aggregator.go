// Package stats loads the dashboard's summary statistics from the platform
// API's seven count endpoints.
package stats

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/dalemusser/strataadmin/internal/app/store/platformapi"
	"github.com/dalemusser/strataadmin/internal/app/system/timeouts"
	"github.com/dalemusser/strataadmin/internal/domain/models"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// LoadError is returned when any of the seven calls fails. No statistics are
// produced alongside it.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load dashboard statistics: %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Aggregator fans out to the count endpoints and joins the results.
type Aggregator struct {
	api platformapi.Getter
	log *zap.Logger
}

// NewAggregator creates an Aggregator reading through api.
func NewAggregator(api platformapi.Getter, logger *zap.Logger) *Aggregator {
	return &Aggregator{api: api, log: logger}
}

// Load issues all seven requests concurrently and waits for every one of
// them. The first failure cancels the others and Load returns a *LoadError;
// otherwise the returned statistics are complete, with 0 for anything the
// API left out. Nothing is cached between calls.
func (a *Aggregator) Load(ctx context.Context) (models.DashboardStatistics, error) {
	ctx, loadID := platformapi.EnsureLoadID(ctx)
	start := time.Now()

	var members, artworks, events, projects, pendingArt, pendingMem, reports payload

	g, gctx := errgroup.WithContext(ctx)
	fetch := func(path string, dst *payload) {
		g.Go(func() error {
			cctx, cancel := context.WithTimeout(gctx, timeouts.Call())
			defer cancel()
			p, err := a.fetch(cctx, path)
			if err != nil {
				return &LoadError{Path: path, Err: err}
			}
			*dst = p
			return nil
		})
	}
	fetch(platformapi.PathMemberStats, &members)
	fetch(platformapi.PathArtworkStats, &artworks)
	fetch(platformapi.PathUpcomingEvents, &events)
	fetch(platformapi.PathActiveProjects, &projects)
	fetch(platformapi.PathPendingArtworks, &pendingArt)
	fetch(platformapi.PathPendingMembers, &pendingMem)
	fetch(platformapi.PathReportedContent, &reports)

	if err := g.Wait(); err != nil {
		a.log.Error("dashboard statistics load failed",
			zap.String("load_id", loadID),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return models.DashboardStatistics{}, err
	}

	out := models.DashboardStatistics{
		TotalMembers:     members.count("total"),
		MemberChange:     members.number("change"),
		TotalArtworks:    artworks.count("total"),
		ArtworkChange:    artworks.number("change"),
		UpcomingEvents:   events.count("count"),
		ActiveProjects:   projects.count("count"),
		PendingApprovals: pendingArt.count("count"),
		PendingMembers:   pendingMem.count("count"),
		ReportedContent:  reports.count("count"),
	}

	a.log.Debug("dashboard statistics loaded",
		zap.String("load_id", loadID),
		zap.Duration("elapsed", time.Since(start)))
	return out, nil
}

func (a *Aggregator) fetch(ctx context.Context, path string) (payload, error) {
	var raw json.RawMessage
	if err := a.api.GetJSON(ctx, path, &raw); err != nil {
		return nil, err
	}
	return decodePayload(raw)
}

// payload is one count endpoint's JSON object.
type payload map[string]json.RawMessage

// decodePayload accepts only a JSON object. Arrays, scalars and null make
// the endpoint's response malformed.
func decodePayload(raw json.RawMessage) (payload, error) {
	var p payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("expected a JSON object: %w", err)
	}
	if p == nil {
		return nil, errors.New("expected a JSON object, got null")
	}
	return p, nil
}

// number reads key as an integer. Missing keys, null, strings, booleans and
// out-of-range values give 0; fractions are truncated toward zero. Integers
// are read from their digits, so large counts are exact.
func (p payload) number(key string) int64 {
	raw, ok := p[key]
	if !ok {
		return 0
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return 0
	}
	n, ok := v.(json.Number)
	if !ok {
		return 0
	}
	if i, err := n.Int64(); err == nil {
		return i
	}
	f, err := n.Float64()
	if err != nil || math.IsNaN(f) || f >= math.MaxInt64 || f <= math.MinInt64 {
		return 0
	}
	return int64(f)
}

// count is number for fields that cannot go below zero; a negative value is
// treated as unusable and gives 0.
func (p payload) count(key string) int64 {
	return max(p.number(key), 0)
}
