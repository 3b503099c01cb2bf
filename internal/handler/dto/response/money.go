package response

// API prices are major currency units; storage keeps cents.
func centsToMajor(cents int64) float64 {
	return float64(cents) / 100
}
