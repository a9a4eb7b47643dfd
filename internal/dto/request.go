package dto

// ListEventsRequest represents an event listing query. Both parameters
// are repeatable, e.g. ?category=Music&category=Sports&genre=Rock.
type ListEventsRequest struct {
	Categories []string `form:"category"`
	Genres     []string `form:"genre"`
}
