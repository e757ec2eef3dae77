package calculator

import (
	"context"

	"go.opencensus.io/stats"
	"go.opencensus.io/stats/view"
	"go.opencensus.io/tag"
	"go.uber.org/zap"
)

var (
	KeyTokenKind = mustNewKey("calculator_token_kind")

	MeasureTokensPushed       = stats.Int64("calculator/tokens_pushed", "Number of tokens pushed onto a brain", stats.UnitNone)
	MeasureEvaluationFailures = stats.Int64("calculator/evaluation_failures", "Number of evaluations that produced no result", stats.UnitNone)
	MeasureActiveSessions     = stats.Int64("calculator/active_sessions", "Number of open sessions", stats.UnitNone)
	MeasureExpiredSessions    = stats.Int64("calculator/expired_sessions", "Number of sessions removed for being idle", stats.UnitNone)
)

// DefaultViews are the views a server should register to export calculator
// metrics.
var DefaultViews = []*view.View{
	{
		Name:        "calculator/tokens_pushed",
		Description: "Count of tokens pushed, by kind",
		Measure:     MeasureTokensPushed,
		TagKeys:     []tag.Key{KeyTokenKind},
		Aggregation: view.Count(),
	},
	{
		Name:        "calculator/evaluation_failures",
		Description: "Count of evaluations without a result",
		Measure:     MeasureEvaluationFailures,
		Aggregation: view.Count(),
	},
	{
		Name:        "calculator/active_sessions",
		Description: "Open sessions",
		Measure:     MeasureActiveSessions,
		Aggregation: view.LastValue(),
	},
	{
		Name:        "calculator/expired_sessions",
		Description: "Sessions expired for being idle",
		Measure:     MeasureExpiredSessions,
		Aggregation: view.Sum(),
	},
}

func mustNewKey(name string) tag.Key {
	k, err := tag.NewKey(name)
	if err != nil {
		panic(err)
	}
	return k
}

func recordPush(ctx context.Context, kind string, ok bool) {
	tagCtx, err := tag.New(ctx, tag.Upsert(KeyTokenKind, kind))
	if err != nil {
		zap.S().Warnw("Failed to tag metrics", "error", err)
		tagCtx = ctx
	}

	stats.Record(tagCtx, MeasureTokensPushed.M(1))
	if !ok {
		stats.Record(ctx, MeasureEvaluationFailures.M(1))
	}
}
