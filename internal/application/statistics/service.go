// Package statistics aggregates defaulted customers and approved defaults for
// the statistics page.
package statistics

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"weiyue/internal/domain/customer"
	"weiyue/internal/shared/biztime"
	"weiyue/internal/shared/errors"
	"weiyue/internal/shared/logger"
)

// unclassified labels customers whose industry or region is blank.
const unclassified = "未分类"

// Cache stores the serialised overview.
type Cache interface {
	Get(ctx context.Context) (payload []byte, ok bool, err error)
	Set(ctx context.Context, payload []byte) error
	Invalidate(ctx context.Context) error
}

// ApprovalSource lists the audit times of approved default applications.
type ApprovalSource interface {
	ApprovedAuditTimes(ctx context.Context) ([]time.Time, error)
}

type Share struct {
	Name       string  `json:"name"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type TrendPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type Overview struct {
	Industry []Share      `json:"industry"`
	Region   []Share      `json:"region"`
	Trend    []TrendPoint `json:"trend"`
}

type Service struct {
	customers customer.Repository
	approvals ApprovalSource
	cache     Cache
	logger    logger.Interface
}

func NewService(customers customer.Repository, approvals ApprovalSource, cache Cache, logger logger.Interface) *Service {
	return &Service{
		customers: customers,
		approvals: approvals,
		cache:     cache,
		logger:    logger,
	}
}

// Overview serves from the cache when possible. Cache failures are logged and
// fall through to the database.
func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	if payload, ok, err := s.cache.Get(ctx); err != nil {
		s.logger.Warnw("statistics cache read failed", "error", err)
	} else if ok {
		var cached Overview
		if err := json.Unmarshal(payload, &cached); err == nil {
			return &cached, nil
		}
		s.logger.Warnw("discarding unreadable statistics cache entry")
	}

	defaulted, err := s.customers.ListDefaulted(ctx)
	if err != nil {
		s.logger.Errorw("failed to list defaulted customers", "error", err)
		return nil, errors.NewInternalError("failed to compute statistics")
	}
	approvedAt, err := s.approvals.ApprovedAuditTimes(ctx)
	if err != nil {
		s.logger.Errorw("failed to load approved audit times", "error", err)
		return nil, errors.NewInternalError("failed to compute statistics")
	}

	overview := &Overview{
		Industry: shares(defaulted, (*customer.Customer).Industry),
		Region:   shares(defaulted, (*customer.Customer).Region),
		Trend:    trend(approvedAt),
	}

	if payload, err := json.Marshal(overview); err == nil {
		if err := s.cache.Set(ctx, payload); err != nil {
			s.logger.Warnw("statistics cache write failed", "error", err)
		}
	}
	return overview, nil
}

func (s *Service) Invalidate(ctx context.Context) error {
	return s.cache.Invalidate(ctx)
}

// shares counts customers per key, largest group first, ties by name.
func shares(customers []*customer.Customer, key func(*customer.Customer) string) []Share {
	counts := make(map[string]int)
	for _, c := range customers {
		name := strings.TrimSpace(key(c))
		if name == "" {
			name = unclassified
		}
		counts[name]++
	}

	total := decimal.NewFromInt(int64(len(customers)))
	out := make([]Share, 0, len(counts))
	for name, n := range counts {
		pct := decimal.NewFromInt(int64(n)).Mul(decimal.NewFromInt(100)).Div(total).Round(2)
		out = append(out, Share{Name: name, Count: n, Percentage: pct.InexactFloat64()})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// trend buckets audit times by business-timezone month, oldest first.
func trend(times []time.Time) []TrendPoint {
	counts := make(map[string]int)
	for _, t := range times {
		counts[biztime.MonthKey(t)]++
	}
	out := make([]TrendPoint, 0, len(counts))
	for month, n := range counts {
		out = append(out, TrendPoint{Date: month, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}
