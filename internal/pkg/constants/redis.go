package constants

// Redis key patterns
const (
	// KeyRoadClass holds one cached on/off-road classification keyed by
	// rounded coordinate
	KeyRoadClass = "drivescore:roadclass:%s"

	// KeyRoadClassHits and KeyRoadClassMisses are the cache counters.
	// They live outside the KeyRoadClass prefix so pattern scans of the
	// cache entries never touch them.
	KeyRoadClassHits   = "drivescore:roadstats:hits"
	KeyRoadClassMisses = "drivescore:roadstats:misses"

	// KeySessionTrack is the per-session driving trail list
	KeySessionTrack = "drivescore:track:%s"

	// KeySessionCells is the per-session hash of geohash cell visit counts
	KeySessionCells = "drivescore:track:%s:cells"

	// KeySessionGeo is the per-session geo set of trail positions, keyed
	// by sample timestamp
	KeySessionGeo = "drivescore:track:%s:geo"
)
