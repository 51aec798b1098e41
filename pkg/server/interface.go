/*
Package server implements msgpack IPC for autocomplete lookups.

The server speaks binary msgpack over stdin/stdout so editors and other
tools can query suggestions through a long-lived child process instead of
the interactive prompt.

A lookup request carries an ID, the keyword and the language code:

	{"id": "req_001", "q": "hel", "hl": "en", "l": 10}

The response returns the ranked suggestions with timing info:

	{"id": "req_001", "s": [{"w": "hello", "r": 1}, {"w": "helium", "r": 2}], "c": 2, "t": 93214}

Failed lookups answer with an error record instead; the code mirrors HTTP
semantics (400 empty query, 408 timeout, 502 upstream transport, 500
malformed upstream body). Requests are processed synchronously, one at a
time, matching the single outstanding network call of the CLI mode.
*/
package server

// SuggestRequest - minimal lookup request
type SuggestRequest struct {
	ID    string `msgpack:"id"`
	Query string `msgpack:"q"`
	Lang  string `msgpack:"hl,omitempty"`
	Limit int    `msgpack:"l,omitempty"`
}

// RankedSuggestion - one suggestion with its 1-based rank
type RankedSuggestion struct {
	Text string `msgpack:"w"`
	Rank uint16 `msgpack:"r"`
}

// SuggestResponse - lookup response
type SuggestResponse struct {
	ID          string             `msgpack:"id"`
	Suggestions []RankedSuggestion `msgpack:"s"`
	Count       int                `msgpack:"c"`
	TimeTaken   int64              `msgpack:"t"`
}

// SuggestError holds basic error information for failed lookups
type SuggestError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
