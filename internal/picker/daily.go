package picker

// SelectForDate returns the pickCount roster members chosen for dateKey. The
// result depends only on the arguments: the same key, roster order and count
// always give the same ordered slice.
//
// When pickCount exceeds the roster size the whole shuffled roster is returned;
// NewSelector rejects that configuration up front.
func SelectForDate(dateKey string, roster []string, pickCount int) []string {
	gen := NewGenerator(DeriveSeed(dateKey))
	return ShufflePrefix(roster, pickCount, gen.Float64)
}
