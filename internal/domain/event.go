package domain

// Event represents a locally stored event listing, normalized from the
// Ticketmaster Discovery API. Optional attributes are pointers so that
// absent provider data is persisted as NULL rather than an empty string.
// Start and end times are ISO-8601 UTC instants (e.g. 2026-02-20T01:30:00Z).
type Event struct {
	ID         int64   `db:"id" json:"id"`
	ExternalID *string `db:"external_id" json:"externalId"`
	Title      *string `db:"title" json:"title"`
	Category   *string `db:"category" json:"category"`
	Genre      *string `db:"genre" json:"genre"`
	VenueName  *string `db:"venue_name" json:"venueName"`
	Latitude   *string `db:"latitude" json:"latitude"`
	Longitude  *string `db:"longitude" json:"longitude"`
	StartTime  *string `db:"start_time" json:"startTime"`
	EndTime    *string `db:"end_time" json:"endTime"`
	URL        *string `db:"url" json:"url"`
}
