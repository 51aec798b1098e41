package server

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/orenagassy/google-autocomplete-scraper/pkg/suggest"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles the IPC for autocomplete lookups
type Server struct {
	suggester   suggest.Suggester
	defaultLang string
	dec         *msgpack.Decoder
	enc         *msgpack.Encoder
}

// NewServer creates a lookup server using stdin/stdout for IPC
func NewServer(suggester suggest.Suggester, defaultLang string) *Server {
	return NewServerWithIO(suggester, defaultLang, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a lookup server over arbitrary streams,
// used by tests and by callers embedding the server in a pipeline.
func NewServerWithIO(suggester suggest.Suggester, defaultLang string, r io.Reader, w io.Writer) *Server {
	return &Server{
		suggester:   suggester,
		defaultLang: defaultLang,
		dec:         msgpack.NewDecoder(r),
		enc:         msgpack.NewEncoder(w),
	}
}

// Start begins listening for IPC requests, answering each synchronously
// until the input stream is closed.
func (s *Server) Start() error {
	log.Debug("Starting suggest IPC server.")

	for {
		var request SuggestRequest
		if err := s.dec.Decode(&request); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			return err
		}
		s.handleSuggest(request)
	}
}

// handleSuggest runs one lookup and writes either a response or an error
// record. Fetch failures never abort the serve loop.
func (s *Server) handleSuggest(request SuggestRequest) {
	if request.Query == "" {
		s.sendError(request.ID, "Missing 'q' parameter", 400)
		log.Debug("Query is empty in request")
		return
	}

	lang := request.Lang
	if lang == "" {
		lang = s.defaultLang
	}

	start := time.Now()
	suggestions, err := s.suggester.Suggest(context.Background(), request.Query, lang)
	elapsed := time.Since(start)

	if err != nil {
		switch suggest.KindOf(err) {
		case suggest.ErrTimeout:
			s.sendError(request.ID, "request timed out", 408)
		case suggest.ErrFormat:
			s.sendError(request.ID, "unexpected response format", 500)
		default:
			s.sendError(request.ID, "error fetching suggestions", 502)
		}
		log.Errorf("Lookup failed for '%s': %v", request.Query, err)
		return
	}

	if request.Limit > 0 && len(suggestions) > request.Limit {
		suggestions = suggestions[:request.Limit]
	}

	ranked := make([]RankedSuggestion, len(suggestions))
	for i, text := range suggestions {
		ranked[i] = RankedSuggestion{Text: text, Rank: uint16(i + 1)}
	}

	s.sendResponse(SuggestResponse{
		ID:          request.ID,
		Suggestions: ranked,
		Count:       len(ranked),
		TimeTaken:   elapsed.Microseconds(),
	})
}

// sendResponse encodes a response record onto the output stream.
func (s *Server) sendResponse(response any) {
	if err := s.enc.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error record
func (s *Server) sendError(id, message string, code int) {
	s.sendResponse(SuggestError{
		ID:    id,
		Error: message,
		Code:  code,
	})
}
