// Package job contains the pure business logic for job lifecycle operations.
// This is part of the Functional Core - no I/O, only pure functions.
package job

import "fmt"

// NumberSeriesStart is the first number in the generated job-number series.
// Seed data historically begins at AE-9001.
const NumberSeriesStart = 9000

// GenerateJobNo generates a job number from the current max number.
// The format is AE-NNNN. When no jobs exist yet the series starts at
// NumberSeriesStart so generated numbers never collide with low
// caller-supplied numbers.
func GenerateJobNo(currentMax int) string {
	if currentMax < NumberSeriesStart {
		currentMax = NumberSeriesStart
	}
	return fmt.Sprintf("AE-%04d", currentMax+1)
}

// ParseJobNumber extracts the numeric portion from a job number.
// Returns -1 if the format is invalid.
func ParseJobNumber(id string) int {
	var num int
	_, err := fmt.Sscanf(id, "AE-%d", &num)
	if err != nil {
		return -1
	}
	return num
}
