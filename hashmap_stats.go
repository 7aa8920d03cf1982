package hashmap

import (
	"fmt"
	"strings"
)

// Stats returns statistics for the Map. It's an O(N) operation,
// so it should be used only for diagnostics or debugging purposes.
func (m *Map[V]) Stats() *MapStats {
	stats := &MapStats{
		Capacity:     len(m.buckets),
		LoadFactor:   m.LoadFactor(),
		Counter:      m.count,
		TotalGrowths: m.totalGrowths,
	}
	stats.Threshold = maxEntries(stats.Capacity, stats.LoadFactor)
	for i := range m.buckets {
		s := &m.buckets[i]
		n := s.size()
		stats.Size += n
		switch s.kind {
		case slotEmpty:
			stats.EmptyBuckets++
		case slotSingle:
			stats.SingleBuckets++
		case slotChained:
			stats.ChainedBuckets++
		}
		if n > stats.MaxChainLen {
			stats.MaxChainLen = n
		}
	}
	return stats
}

// MapStats is Map statistics.
//
// Warning: map statistics are intended to be used for diagnostic
// purposes, not for production code. This means that breaking changes
// may be introduced into this struct even between minor releases.
type MapStats struct {
	// Capacity is the number of allocated buckets, zero for a map that
	// has not stored anything yet.
	Capacity int
	// LoadFactor is the load factor currently in effect.
	LoadFactor float64
	// Threshold is the largest number of entries the table holds
	// before it grows.
	Threshold int
	// Size is the exact number of entries reachable from the buckets.
	Size int
	// Counter is the number of entries according to the live count.
	// It always equals Size unless the map is corrupted.
	Counter int
	// EmptyBuckets is the number of buckets that hold no entries.
	EmptyBuckets int
	// SingleBuckets is the number of buckets holding one inline entry.
	SingleBuckets int
	// ChainedBuckets is the number of buckets holding a chain.
	ChainedBuckets int
	// MaxChainLen is the largest number of entries in one bucket.
	MaxChainLen int
	// TotalGrowths is the number of times the table grew.
	TotalGrowths int
}

// ToString returns string representation of map stats.
func (s *MapStats) ToString() string {
	var sb strings.Builder
	sb.WriteString("MapStats{\n")
	sb.WriteString(fmt.Sprintf("Capacity:       %d\n", s.Capacity))
	sb.WriteString(fmt.Sprintf("LoadFactor:     %g\n", s.LoadFactor))
	sb.WriteString(fmt.Sprintf("Threshold:      %d\n", s.Threshold))
	sb.WriteString(fmt.Sprintf("Size:           %d\n", s.Size))
	sb.WriteString(fmt.Sprintf("Counter:        %d\n", s.Counter))
	sb.WriteString(fmt.Sprintf("EmptyBuckets:   %d\n", s.EmptyBuckets))
	sb.WriteString(fmt.Sprintf("SingleBuckets:  %d\n", s.SingleBuckets))
	sb.WriteString(fmt.Sprintf("ChainedBuckets: %d\n", s.ChainedBuckets))
	sb.WriteString(fmt.Sprintf("MaxChainLen:    %d\n", s.MaxChainLen))
	sb.WriteString(fmt.Sprintf("TotalGrowths:   %d\n", s.TotalGrowths))
	sb.WriteString("}\n")
	return sb.String()
}
