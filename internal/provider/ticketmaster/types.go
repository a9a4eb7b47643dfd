package ticketmaster

// SearchResponse is the Discovery API search envelope. Only the fields
// this service reads are declared; everything else in the payload is
// ignored by the decoder.
type SearchResponse struct {
	Embedded struct {
		Events []Event `json:"events"`
	} `json:"_embedded"`
}

// Event is one raw listing from the Discovery API. Nested structures are
// frequently missing or partial, so accessors below return an explicit
// ok flag instead of handing out nil sub-objects.
type Event struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	URL             string           `json:"url"`
	Classifications []Classification `json:"classifications"`
	Dates           Dates            `json:"dates"`
	Embedded        struct {
		Venues []Venue `json:"venues"`
	} `json:"_embedded"`
}

type Classification struct {
	Segment Named `json:"segment"`
	Genre   Named `json:"genre"`
}

type Named struct {
	Name string `json:"name"`
}

type Venue struct {
	Name     string    `json:"name"`
	Location *Location `json:"location"`
}

// Location carries coordinates as text, preserving provider precision.
type Location struct {
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

type Dates struct {
	Start    *EventDate `json:"start"`
	End      *EventDate `json:"end"`
	Timezone string     `json:"timezone"`
}

// EventDate is either an absolute instant (DateTime) or a local
// date/time pair interpreted in the event's Dates.Timezone.
type EventDate struct {
	DateTime  string `json:"dateTime"`
	LocalDate string `json:"localDate"`
	LocalTime string `json:"localTime"`
}

// FirstClassification returns the leading classification entry, which
// the Discovery API documents as the primary one.
func (e *Event) FirstClassification() (Classification, bool) {
	if len(e.Classifications) == 0 {
		return Classification{}, false
	}
	return e.Classifications[0], true
}

// FirstVenue returns the leading embedded venue entry.
func (e *Event) FirstVenue() (Venue, bool) {
	if len(e.Embedded.Venues) == 0 {
		return Venue{}, false
	}
	return e.Embedded.Venues[0], true
}

// EndDateTime returns the explicit end instant string, if any.
func (d Dates) EndDateTime() string {
	if d.End == nil {
		return ""
	}
	return d.End.DateTime
}
