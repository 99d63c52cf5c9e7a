package dataset

import "sort"

// AgeCholesterolPoint is one (age, cholesterol) observation for the scatter
// chart.
type AgeCholesterolPoint struct {
	Age         int
	Cholesterol int
}

// AgeCholesterolBySex splits the (age, cholesterol) observations by sex.
// Index 0 holds female rows, index 1 male rows.
func (d *Dataset) AgeCholesterolBySex() [2][]AgeCholesterolPoint {
	var points [2][]AgeCholesterolPoint
	for _, r := range d.rows {
		if r.Sex != 0 && r.Sex != 1 {
			continue
		}
		points[r.Sex] = append(points[r.Sex], AgeCholesterolPoint{Age: r.Age, Cholesterol: r.Cholesterol})
	}
	return points
}

// ChestPainCounts returns the chest-pain-type codes present in the dataset
// in ascending order, with the number of rows per code.
func (d *Dataset) ChestPainCounts() (codes []int, counts []int) {
	byCode := make(map[int]int)
	for _, r := range d.rows {
		byCode[r.ChestPainType]++
	}

	for code := range byCode {
		codes = append(codes, code)
	}
	sort.Ints(codes)

	counts = make([]int, len(codes))
	for i, code := range codes {
		counts[i] = byCode[code]
	}
	return codes, counts
}

// HeartRateBin is one bucket of the max-heart-rate histogram.
type HeartRateBin struct {
	// From and To delimit the half-open interval [From, To).
	From, To int
	Count    int
}

// MaxHeartRateBins buckets the thalach column into fixed-width bins spanning
// the observed range. width must be positive.
func (d *Dataset) MaxHeartRateBins(width int) []HeartRateBin {
	if width <= 0 || len(d.rows) == 0 {
		return nil
	}

	minRate, maxRate := d.rows[0].MaxHeartRate, d.rows[0].MaxHeartRate
	for _, r := range d.rows {
		if r.MaxHeartRate < minRate {
			minRate = r.MaxHeartRate
		}
		if r.MaxHeartRate > maxRate {
			maxRate = r.MaxHeartRate
		}
	}

	start := (minRate / width) * width
	bins := make([]HeartRateBin, 0, (maxRate-start)/width+1)
	for from := start; from <= maxRate; from += width {
		bins = append(bins, HeartRateBin{From: from, To: from + width})
	}

	for _, r := range d.rows {
		bins[(r.MaxHeartRate-start)/width].Count++
	}
	return bins
}

// FiveNumberSummary is the box-plot statistic: minimum, lower quartile,
// median, upper quartile, maximum.
type FiveNumberSummary struct {
	Min, Q1, Median, Q3, Max float64
}

// CholesterolSummaryBySex computes the cholesterol five-number summary per
// sex. Index 0 is female, index 1 male. A sex with no observations yields a
// zero summary.
func (d *Dataset) CholesterolSummaryBySex() [2]FiveNumberSummary {
	var groups [2][]float64
	for _, r := range d.rows {
		if r.Sex != 0 && r.Sex != 1 {
			continue
		}
		groups[r.Sex] = append(groups[r.Sex], float64(r.Cholesterol))
	}

	var out [2]FiveNumberSummary
	for i, values := range groups {
		out[i] = fiveNumberSummary(values)
	}
	return out
}

func fiveNumberSummary(values []float64) FiveNumberSummary {
	if len(values) == 0 {
		return FiveNumberSummary{}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	return FiveNumberSummary{
		Min:    sorted[0],
		Q1:     quantile(sorted, 0.25),
		Median: quantile(sorted, 0.5),
		Q3:     quantile(sorted, 0.75),
		Max:    sorted[len(sorted)-1],
	}
}

// quantile computes the q-th quantile of sorted using linear interpolation
// between closest ranks.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}

	pos := q * float64(len(sorted)-1)
	lo := int(pos)
	frac := pos - float64(lo)
	if lo+1 >= len(sorted) {
		return sorted[lo]
	}
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}
