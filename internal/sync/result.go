package sync

// Result summarizes what one sync unit did.
//
// EventsCount and MarketsCount count observations from the provider (a market
// listed under two events counts twice); MarketsCreated and SnapshotsCreated
// count rows actually written to the store.
type Result struct {
	EventsCount      int
	MarketsCount     int
	MarketsCreated   int
	SnapshotsCreated int
}

func (r *Result) add(other Result) {
	r.EventsCount += other.EventsCount
	r.MarketsCount += other.MarketsCount
	r.MarketsCreated += other.MarketsCreated
	r.SnapshotsCreated += other.SnapshotsCreated
}
