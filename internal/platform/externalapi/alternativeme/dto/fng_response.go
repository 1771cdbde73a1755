// Package dto holds the wire shapes of the alternative.me API.
package dto

// FearGreedResponse is the body of GET /fng/.
type FearGreedResponse struct {
	Name     string           `json:"name"`
	Data     []FearGreedEntry `json:"data"`
	Metadata struct {
		Error *string `json:"error"`
	} `json:"metadata"`
}

// FearGreedEntry is one index reading. Value is a decimal number encoded as a string.
type FearGreedEntry struct {
	Value               string `json:"value"`
	ValueClassification string `json:"value_classification"`
	Timestamp           string `json:"timestamp"`
	TimeUntilUpdate     string `json:"time_until_update,omitempty"`
}
