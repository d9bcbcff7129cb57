// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/undokai/rostercheck/internal/adapters/dataset"
	"github.com/undokai/rostercheck/internal/domain/checks"
	"github.com/undokai/rostercheck/internal/domain/dedupe"
	"github.com/undokai/rostercheck/internal/domain/identity"
	"github.com/undokai/rostercheck/internal/domain/model"
	"github.com/undokai/rostercheck/internal/domain/normalize"
	"github.com/undokai/rostercheck/internal/domain/roster"
	"github.com/undokai/rostercheck/internal/domain/schedule"
	"github.com/undokai/rostercheck/internal/domain/types"
	"github.com/undokai/rostercheck/pkg/logger"
	"github.com/undokai/rostercheck/pkg/metrics"
)

// Service wires the roster dataset to the search and validation operations.
// The dataset is loaded once at Start; the index, resolver and report builder
// built from it are immutable afterwards, so reads need no locking beyond the
// started check.
type Service struct {
	mu sync.RWMutex

	// Configuration
	datasetPath      string
	school           string
	maxSearchResults int

	// Built at Start
	data     *dataset.Dataset
	index    *roster.Index
	resolver *identity.Resolver
	builder  *checks.Builder

	started bool

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithDatasetPath points the service at a YAML dataset file instead of the
// embedded one.
func WithDatasetPath(path string) Option {
	return func(s *Service) {
		s.datasetPath = path
	}
}

// WithSchool overrides the school name from the dataset.
func WithSchool(school string) Option {
	return func(s *Service) {
		if school != "" {
			s.school = school
		}
	}
}

// WithMaxSearchResults caps the number of participants returned per search.
func WithMaxSearchResults(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxSearchResults = n
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		maxSearchResults: 50,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start loads the dataset and builds the roster index.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	var (
		data *dataset.Dataset
		err  error
	)
	if s.datasetPath != "" {
		data, err = dataset.Load(s.datasetPath)
	} else {
		data, err = dataset.Default()
	}
	if err != nil {
		return fmt.Errorf("start service: %w", err)
	}

	if s.school == "" {
		s.school = data.School
	}

	s.data = data
	s.index = roster.BuildIndex(s.school, data.Entries)
	s.resolver = identity.NewResolver(data.Identities)
	s.builder = checks.NewBuilder(data.Rules, data.Identities, checks.WithSchool(s.school))
	s.started = true

	metrics.UpdateDatasetStats(len(data.Entries), s.index.Len(), len(data.Identities))
	s.logger.Info(ctx, "roster service started",
		logger.String("school", s.school),
		logger.Int("entries", len(data.Entries)),
		logger.Int("participants", s.index.Len()),
		logger.Int("identities", len(data.Identities)),
	)
	return nil
}

// Stop marks the service stopped. Nothing to tear down: no background work.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "roster service stopped")
}

// Report builds a fresh validation report over the loaded entries.
func (s *Service) Report(ctx context.Context) (*checks.ValidationReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.started {
		return nil, ErrNotStarted
	}

	start := time.Now()
	report, err := s.builder.Build(s.data.Entries)
	if err != nil {
		return nil, err
	}
	metrics.RecordReportBuilt(float64(time.Since(start).Milliseconds()))
	metrics.UpdateReportFindings(report.Summary.Passed, report.Summary.Warnings, report.Summary.Errors)

	s.logger.Debug(ctx, "validation report built",
		logger.String("report_id", report.ReportID),
		logger.Int("teams", report.Summary.TotalTeams),
		logger.Int("warnings", report.Summary.Warnings),
		logger.Int("errors", report.Summary.Errors),
	)
	return report, nil
}

// Search resolves a free-text query into matching participant views.
// submitted is false when the query normalizes to nothing, which callers
// treat as "no query" rather than an empty result; results may be empty
// while submitted is true.
func (s *Service) Search(ctx context.Context, query string) (results []types.Participant, submitted bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.started {
		return nil, false
	}

	tokens := normalize.Tokenize(query)
	if len(tokens) == 0 {
		return nil, false
	}

	seen := dedupe.NewSet(0)
	results = make([]types.Participant, 0)
	for _, name := range s.index.Names() {
		if !matchesAny(name, tokens) {
			continue
		}
		p, ok := s.index.Lookup(name)
		if !ok {
			continue
		}
		for _, id := range s.resolver.Resolve(name, p.Grade, p.Department) {
			if seen.SeenAndRecord(id.DisplayName) {
				continue
			}
			if len(results) >= s.maxSearchResults {
				break
			}
			results = append(results, types.Participant{
				Name:       id.DisplayName,
				School:     p.School,
				Events:     p.Events,
				Grade:      id.Grade,
				Department: id.Department,
			})
		}
		if len(results) >= s.maxSearchResults {
			break
		}
	}

	metrics.RecordSearch(len(results))
	s.logger.Debug(ctx, "search executed",
		logger.Strings("tokens", tokens),
		logger.Int("results", len(results)),
	)
	return results, true
}

// matchesAny reports whether any token occurs in the normalized name.
// Partial matches count: a token is a substring, not an exact name.
func matchesAny(name string, tokens []string) bool {
	normalized := normalize.Normalize(name)
	for _, t := range tokens {
		if strings.Contains(normalized, t) {
			return true
		}
	}
	return false
}

// Events returns the distinct event/team/details triples of the dataset.
func (s *Service) Events(ctx context.Context) ([]types.EventParticipation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.started {
		return nil, ErrNotStarted
	}
	return roster.UniqueEvents(s.data.Entries), nil
}

// EventRoster resolves the member list of one event entry, identified by its
// event/team/details triple, into identities plus the grouped listing.
func (s *Service) EventRoster(ctx context.Context, eventName model.EventKind, team, details string) ([]types.MemberIdentity, []roster.RosterGroup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.started {
		return nil, nil, ErrNotStarted
	}
	for _, e := range s.data.Entries {
		if e.EventName == eventName && e.Team == team && e.Details == details {
			members := roster.EventRoster(e, s.resolver)
			return members, roster.GroupRoster(members), nil
		}
	}
	return nil, nil, fmt.Errorf("%w: %s/%s", ErrEventNotFound, eventName, team)
}

// Timetable returns the fixed day schedule.
func (s *Service) Timetable(ctx context.Context) []schedule.Item {
	return schedule.Timetable()
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started": s.started,
	}
	if s.started {
		stats["school"] = s.school
		stats["entries"] = len(s.data.Entries)
		stats["participants"] = s.index.Len()
		stats["identities"] = len(s.data.Identities)
		stats["maxSearchResults"] = s.maxSearchResults
	}
	return stats
}
