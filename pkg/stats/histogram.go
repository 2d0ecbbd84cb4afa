package stats

import "math"

// Histogram represents the distribution of a numeric column as equi-width
// buckets, the binning the sparkline renderer expects: bucket position
// encodes value range, bucket count encodes density.
type Histogram struct {
	Buckets    []Bucket
	TotalCount int
}

// Bucket is a single bucket in the histogram. Bounds are inclusive on the
// left; the last bucket is closed on both sides.
type Bucket struct {
	Lo    float64
	Hi    float64
	Count int
}

// NewHistogram bins the given values into bucketCount equi-width buckets.
// Non-finite values are ignored. A zero-variance input lands entirely in the
// first bucket, leaving the rest empty.
func NewHistogram(values []float64, bucketCount int) *Histogram {
	finite := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			finite = append(finite, v)
		}
	}

	if len(finite) == 0 || bucketCount <= 0 {
		return &Histogram{}
	}

	lo, hi := finite[0], finite[0]
	for _, v := range finite {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	h := &Histogram{
		Buckets:    make([]Bucket, bucketCount),
		TotalCount: len(finite),
	}
	width := (hi - lo) / float64(bucketCount)
	for i := range h.Buckets {
		h.Buckets[i].Lo = lo + width*float64(i)
		h.Buckets[i].Hi = lo + width*float64(i+1)
	}
	h.Buckets[bucketCount-1].Hi = hi

	for _, v := range finite {
		idx := 0
		if width > 0 {
			idx = int((v - lo) / width)
			if idx >= bucketCount {
				idx = bucketCount - 1
			}
		}
		h.Buckets[idx].Count++
	}

	return h
}

// Counts returns the bucket counts as the float slice the renderer consumes.
func (h *Histogram) Counts() []float64 {
	out := make([]float64, len(h.Buckets))
	for i, b := range h.Buckets {
		out[i] = float64(b.Count)
	}
	return out
}
