package bkdtree

import (
	"context"
	"time"

	"github.com/CodeDevAM/BKDTree/internal/core"
)

// MetricBKDT specializes BKDT for items that additionally expose a
// per-dimension scalar coordinate, adding nearest-neighbor search across
// the base buffer and every occupied slot. It composes a *BKDT rather than
// duplicating its mutation and query methods.
type MetricBKDT[T MetricItem[T]] struct {
	*BKDT[T]
}

// NewMetricBKDT constructs an empty MetricBKDT over dim dimensions with the
// given block size. Fails if dim <= 0 or blockSize < 2.
func NewMetricBKDT[T MetricItem[T]](dim, blockSize int, optFns ...Option) (*MetricBKDT[T], error) {
	b, err := NewBKDT[T](dim, blockSize, optFns...)
	if err != nil {
		return nil, err
	}
	return &MetricBKDT[T]{BKDT: b}, nil
}

// NearestNeighbor returns the item of minimum Euclidean squared distance to
// q across the base buffer and every occupied slot. Ties are broken by
// whichever candidate is found first in base-first, slot-ascending order.
func (m *MetricBKDT[T]) NearestNeighbor(ctx context.Context, q T) NearestNeighborResult[T] {
	start := time.Now()

	var best NearestNeighborResult[T]
	for _, v := range m.base {
		sq := core.SquaredDistance(m.dim, q, v, coordFunc[T])
		if !best.Found || sq < best.SquaredDist {
			best = NearestNeighborResult[T]{Found: true, Neighbor: v, SquaredDist: sq}
		}
	}
	for _, s := range m.slots {
		if s == nil {
			continue
		}
		res := s.NearestNeighbor(q, coordFunc[T])
		if res.Found && (!best.Found || res.SqDist < best.SquaredDist) {
			best = NearestNeighborResult[T]{Found: true, Neighbor: res.Neighbor, SquaredDist: res.SqDist}
		}
	}

	m.opts.metricsCollector.RecordNearestNeighbor(best.Found, time.Since(start))
	m.opts.logger.LogNearestNeighbor(ctx, best.Found, best.SquaredDist)
	return best
}
