package guardian

// Envelope is a decoded response of the search endpoint.
type Envelope struct {
	Response Response `json:"response"`

	// StatusCode is the HTTP status of the response, not a part of the body.
	StatusCode int `json:"-"`
}

// Response contains the search results.
type Response struct {
	Status      string   `json:"status"`
	Message     string   `json:"message,omitempty"`
	Total       int      `json:"total"`
	CurrentPage int      `json:"currentPage"`
	Pages       int      `json:"pages"`
	Results     []Result `json:"results"`
}

// Result is a single content item.
type Result struct {
	ID                 string `json:"id"`
	SectionID          string `json:"sectionId"`
	WebTitle           string `json:"webTitle"`
	WebURL             string `json:"webUrl"`
	WebPublicationDate string `json:"webPublicationDate"`
	Fields             Fields `json:"fields"`
}

// Fields are the fields requested with show-fields.
type Fields struct {
	Headline   string `json:"headline"`
	Thumbnail  string `json:"thumbnail"`
	Standfirst string `json:"standfirst"`
	Byline     string `json:"byline"`
	BodyText   string `json:"bodyText"`
}
