// Package timeseries reduces raw timestamped rows into daily series and
// provides the small statistics helpers shared by the analytics and
// trending packages. Everything here is a pure function over in-memory
// slices; callers fetch the rows.
package timeseries

import (
	"math"
	"sort"
	"time"
)

// a single daily observation
type Point struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// a raw event row with an optional numeric payload
type Sample struct {
	At    time.Time
	Value float64
}

// groups timestamps by UTC calendar day and counts them.
// Days with no rows are not synthesized; only observed days appear.
func BucketCountByDay(times []time.Time) []Point {
	buckets := make(map[time.Time]float64, len(times))

	for _, t := range times {
		day := truncateToDay(t)
		buckets[day]++
	}

	return sortedPoints(buckets)
}

// groups samples by UTC calendar day and sums their values.
// Days with no rows are not synthesized; only observed days appear.
func BucketSumByDay(samples []Sample) []Point {
	buckets := make(map[time.Time]float64, len(samples))

	for _, s := range samples {
		day := truncateToDay(s.At)
		buckets[day] += s.Value
	}

	return sortedPoints(buckets)
}

// returns a copy of the series sorted ascending by date
func SortAscending(series []Point) []Point {
	sorted := make([]Point, len(series))
	copy(sorted, series)

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	return sorted
}

// extracts the values of a series in order
func Values(series []Point) []float64 {
	values := make([]float64, len(series))

	for i, p := range series {
		values[i] = p.Value
	}

	return values
}

// arithmetic mean; 0 for an empty slice
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}

// population standard deviation; 0 for an empty slice
func StdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	mean := Mean(values)

	var sumSquares float64
	for _, v := range values {
		diff := v - mean
		sumSquares += diff * diff
	}

	return math.Sqrt(sumSquares / float64(len(values)))
}

// computes a sliding-window mean over the series (sorted ascending).
// A series shorter than the window is returned unchanged.
func MovingAverage(series []Point, windowSize int) []Point {
	if windowSize <= 0 || len(series) < windowSize {
		return series
	}

	sorted := SortAscending(series)
	result := make([]Point, 0, len(sorted)-windowSize+1)

	for i := windowSize - 1; i < len(sorted); i++ {
		var sum float64
		for j := i - windowSize + 1; j <= i; j++ {
			sum += sorted[j].Value
		}

		result = append(result, Point{
			Date:  sorted[i].Date,
			Value: sum / float64(windowSize),
		})
	}

	return result
}

func truncateToDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

func sortedPoints(buckets map[time.Time]float64) []Point {
	points := make([]Point, 0, len(buckets))

	for day, value := range buckets {
		points = append(points, Point{Date: day, Value: value})
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})

	return points
}
