package bkdtree

import (
	"context"
	"time"
)

// MetricKDT specializes KDT for items that additionally expose a
// per-dimension scalar coordinate, adding Euclidean nearest-neighbor
// search. It composes a *KDT rather than duplicating its query methods, per
// the metric variants' relationship to their base type.
type MetricKDT[T MetricItem[T]] struct {
	*KDT[T]
}

// NewMetricKDT builds a MetricKDT over dim dimensions from items. Fails if
// dim <= 0 or items is empty.
func NewMetricKDT[T MetricItem[T]](ctx context.Context, dim int, items []T, optFns ...Option) (*MetricKDT[T], error) {
	kdt, err := NewKDT[T](ctx, dim, items, optFns...)
	if err != nil {
		return nil, err
	}
	return &MetricKDT[T]{KDT: kdt}, nil
}

// NearestNeighborResult is the outcome of a nearest-neighbor query.
type NearestNeighborResult[T any] struct {
	Found       bool
	Neighbor    T
	SquaredDist float64
}

// NearestNeighbor returns the stored item of minimum Euclidean squared
// distance to q. Ties are broken by whichever candidate the traversal
// visits first.
func (m *MetricKDT[T]) NearestNeighbor(ctx context.Context, q T) NearestNeighborResult[T] {
	start := time.Now()
	res := m.tree.NearestNeighbor(q, coordFunc[T])
	m.opts.metricsCollector.RecordNearestNeighbor(res.Found, time.Since(start))
	m.opts.logger.LogNearestNeighbor(ctx, res.Found, res.SqDist)
	return NearestNeighborResult[T]{Found: res.Found, Neighbor: res.Neighbor, SquaredDist: res.SqDist}
}
