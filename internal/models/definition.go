package models

// Definition is one sense of a word extracted from a dictionary page.
type Definition struct {
	ID           int      `json:"id"`
	Meaning      string   `json:"meaning"`
	PartOfSpeech string   `json:"partOfSpeech"`
	Examples     []string `json:"examples"`
}

type Lookup struct {
	Word        string       `json:"word"`
	Definitions []Definition `json:"definitions"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
