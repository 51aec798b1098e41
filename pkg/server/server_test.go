package server

import (
	"bytes"
	"context"
	"testing"

	"github.com/orenagassy/google-autocomplete-scraper/pkg/suggest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

type stubSuggester struct {
	suggestions []string
	err         error
	gotKeyword  string
	gotLang     string
}

func (s *stubSuggester) Suggest(ctx context.Context, keyword, lang string) ([]string, error) {
	s.gotKeyword = keyword
	s.gotLang = lang
	return s.suggestions, s.err
}

// serve encodes the given requests, runs the server to EOF and returns
// the raw output stream.
func serve(t *testing.T, stub *stubSuggester, requests ...SuggestRequest) *bytes.Buffer {
	t.Helper()
	var in, out bytes.Buffer
	enc := msgpack.NewEncoder(&in)
	for _, req := range requests {
		require.NoError(t, enc.Encode(req))
	}

	srv := NewServerWithIO(stub, "en", &in, &out)
	require.NoError(t, srv.Start())
	return &out
}

func TestServerAnswersLookup(t *testing.T) {
	stub := &stubSuggester{suggestions: []string{"hello", "hello world", "helium"}}
	out := serve(t, stub, SuggestRequest{ID: "req_001", Query: "hel", Lang: "en"})

	var resp SuggestResponse
	require.NoError(t, msgpack.NewDecoder(out).Decode(&resp))

	assert.Equal(t, "req_001", resp.ID)
	assert.Equal(t, 3, resp.Count)
	require.Len(t, resp.Suggestions, 3)
	assert.Equal(t, RankedSuggestion{Text: "hello", Rank: 1}, resp.Suggestions[0])
	assert.Equal(t, RankedSuggestion{Text: "helium", Rank: 3}, resp.Suggestions[2])
	assert.Equal(t, "hel", stub.gotKeyword)
}

func TestServerAppliesLimitAndDefaultLang(t *testing.T) {
	stub := &stubSuggester{suggestions: []string{"a", "b", "c"}}
	out := serve(t, stub, SuggestRequest{ID: "req_002", Query: "x", Limit: 2})

	var resp SuggestResponse
	require.NoError(t, msgpack.NewDecoder(out).Decode(&resp))

	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, "en", stub.gotLang)
}

func TestServerRejectsEmptyQuery(t *testing.T) {
	stub := &stubSuggester{}
	out := serve(t, stub, SuggestRequest{ID: "req_003"})

	var errResp SuggestError
	require.NoError(t, msgpack.NewDecoder(out).Decode(&errResp))

	assert.Equal(t, "req_003", errResp.ID)
	assert.Equal(t, 400, errResp.Code)
}

func TestServerMapsFetchErrorKinds(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"timeout", &suggest.Error{Kind: suggest.ErrTimeout}, 408},
		{"format", &suggest.Error{Kind: suggest.ErrFormat}, 500},
		{"transport", &suggest.Error{Kind: suggest.ErrTransport}, 502},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubSuggester{err: tc.err}
			out := serve(t, stub, SuggestRequest{ID: "req", Query: "x"})

			var errResp SuggestError
			require.NoError(t, msgpack.NewDecoder(out).Decode(&errResp))
			assert.Equal(t, tc.code, errResp.Code)
		})
	}
}

func TestServerHandlesMultipleRequests(t *testing.T) {
	stub := &stubSuggester{suggestions: []string{"one"}}
	out := serve(t, stub,
		SuggestRequest{ID: "a", Query: "x"},
		SuggestRequest{ID: "b", Query: "y"},
	)

	dec := msgpack.NewDecoder(out)
	var first, second SuggestResponse
	require.NoError(t, dec.Decode(&first))
	require.NoError(t, dec.Decode(&second))
	assert.Equal(t, "a", first.ID)
	assert.Equal(t, "b", second.ID)
}
