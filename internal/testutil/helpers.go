package testutil

// SeedTestData contains commonly used test seeds for consistent testing across packages.
// Using fixed seeds keeps generated terrain reproducible between test runs.
var SeedTestData = struct {
	World1 int64
	World2 int64
	Flat   int64
}{
	World1: 12345,
	World2: 54321,
	Flat:   0,
}

// NormToHeight converts a normalized [0,1] terrain value back to the raw [-1,1] height
// scale used by the noise field. Tests use it to probe classification boundaries.
func NormToHeight(norm float64) float64 {
	return norm*2 - 1
}
