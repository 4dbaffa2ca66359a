package verify

import (
	"context"
	"errors"
)

// MetricsSummary represents aggregated verification insights.
type MetricsSummary struct {
	TotalVerifications int64   `json:"total_verifications"`
	MatchedCount       int64   `json:"matched_count"`
	MatchRate          float64 `json:"match_rate"`
	AverageConfidence  float64 `json:"average_confidence"`
	AverageDistance    float64 `json:"average_distance"`
}

// GetMetricsSummary aggregates verification metrics from persisted audit logs.
func (s *Service) GetMetricsSummary(ctx context.Context) (*MetricsSummary, error) {
	if s.repo == nil {
		return nil, errors.New("audit repository not configured")
	}

	aggregation, err := s.repo.AggregateMetrics(ctx)
	if err != nil {
		return nil, err
	}

	summary := &MetricsSummary{
		TotalVerifications: aggregation.TotalCount,
		MatchedCount:       aggregation.MatchCount,
		AverageConfidence:  aggregation.AverageConfidence,
		AverageDistance:    aggregation.AverageDistance,
	}

	if aggregation.TotalCount > 0 {
		summary.MatchRate = float64(aggregation.MatchCount) / float64(aggregation.TotalCount)
	}

	return summary, nil
}
