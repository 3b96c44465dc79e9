package types

// Location is a named place reference embedded in a character record.
type Location struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Character is one record returned by the character listing endpoint.
// Only ID, Name, Status and Species are displayed; the remaining fields are
// carried so exports keep the full record.
type Character struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Status   string   `json:"status"`
	Species  string   `json:"species"`
	Type     string   `json:"type,omitempty"`
	Gender   string   `json:"gender,omitempty"`
	Origin   Location `json:"origin"`
	Location Location `json:"location"`
	Image    string   `json:"image,omitempty"`
	Episode  []string `json:"episode,omitempty"`
	URL      string   `json:"url,omitempty"`
	Created  string   `json:"created,omitempty"`
}

// CharacterPage is the response envelope of the listing endpoint. Only the
// results array is consumed.
type CharacterPage struct {
	Results []Character `json:"results"`
}
