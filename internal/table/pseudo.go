package table

// Pseudo tables scale like real tables but never emit rows. Their counts
// bound derived quantities: how many web sites run concurrently and how many
// cities and counties the small dimensions may occupy.
var (
	concurrentWebSites = mustScalingInfo(0, Logarithmic, []int64{0, 2, 3, 4, 5, 5, 5, 5, 5, 5})
	activeCities       = mustScalingInfo(0, Logarithmic, []int64{0, 2, 6, 18, 30, 54, 90, 165, 270, 495})
	activeCounties     = mustScalingInfo(0, Logarithmic, []int64{0, 1, 3, 9, 15, 27, 45, 81, 135, 245})
)

// ConcurrentWebSites returns how many web sites overlap in time at this
// scale.
func (s *Scaling) ConcurrentWebSites() (int64, error) {
	return concurrentWebSites.RowCountForScale(s.scale)
}

// ActiveCities returns how many distinct cities the small dimensions draw
// from at this scale.
func (s *Scaling) ActiveCities() (int64, error) {
	return activeCities.RowCountForScale(s.scale)
}

// ActiveCounties returns how many distinct counties the small dimensions
// draw from at this scale.
func (s *Scaling) ActiveCounties() (int64, error) {
	return activeCounties.RowCountForScale(s.scale)
}
