package repositories

import "time"

// nowFunc is swapped in tests that need deterministic timestamps.
var nowFunc = time.Now
