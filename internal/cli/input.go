// Package cli implements the interactive keyword loop: language selection,
// keyword reading, fetch dispatch and the continue/exit prompts.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/orenagassy/google-autocomplete-scraper/pkg/display"
	"github.com/orenagassy/google-autocomplete-scraper/pkg/language"
	"github.com/orenagassy/google-autocomplete-scraper/pkg/suggest"
)

// Session drives one interactive run. The bound language is explicit
// state on the session, mutated only by the selection prompt.
type Session struct {
	tablePath  string
	suggester  suggest.Suggester
	maxDisplay int
	scanner    *bufio.Scanner
	out        io.Writer
	lang       language.Language
}

// NewSession wires a session over the given input and output streams.
// maxDisplay caps printed suggestions, 0 shows all.
func NewSession(tablePath string, suggester suggest.Suggester, maxDisplay int, in io.Reader, out io.Writer) *Session {
	return &Session{
		tablePath:  tablePath,
		suggester:  suggester,
		maxDisplay: maxDisplay,
		scanner:    bufio.NewScanner(in),
		out:        out,
	}
}

// Start runs the loop until an exit command, a declined continue prompt,
// or end of input. The only error it returns is a broken language table,
// which the caller treats as fatal.
func (s *Session) Start() error {
	lang, err := s.selectLanguage()
	if err != nil {
		return err
	}
	s.lang = lang

	fmt.Fprintf(s.out, "\nLanguage set to: %s\n", s.lang.Code)
	fmt.Fprintln(s.out, "Type 'quit', 'exit' or 'q' to exit, 'lang' to change language, Ctrl+C works anytime.")

	for {
		fmt.Fprintln(s.out, "\n"+strings.Repeat("-", 40))
		fmt.Fprint(s.out, "Enter keyword to search: ")
		line, ok := s.readLine()
		if !ok {
			return nil
		}
		keyword := strings.TrimSpace(line)

		switch strings.ToLower(keyword) {
		case "quit", "exit", "q":
			fmt.Fprintln(s.out, "\nGoodbye!")
			return nil
		case "lang":
			lang, err := s.selectLanguage()
			if err != nil {
				return err
			}
			s.lang = lang
			fmt.Fprintf(s.out, "Language changed to: %s\n", s.lang.Code)
			continue
		case "":
			fmt.Fprintln(s.out, errorLine("Please enter a valid keyword."))
			continue
		}

		s.runQuery(keyword)

		switch s.promptContinue() {
		case answerStop:
			fmt.Fprintln(s.out, "\nThanks for using the autocomplete tool!")
			return nil
		case answerQuit:
			fmt.Fprintln(s.out, "\nGoodbye!")
			return nil
		}
	}
}

// selectLanguage reloads the table from disk and prompts until the user
// picks a listed key or accepts the English default with a blank line.
func (s *Session) selectLanguage() (language.Language, error) {
	table, created, err := language.LoadOrInit(s.tablePath)
	if err != nil {
		return language.Language{}, err
	}
	if created {
		log.Debugf("Seeded default language table at %s", s.tablePath)
	}

	fmt.Fprintln(s.out, "\nSelect language:")
	for _, key := range table.Keys() {
		lang, _ := table.Lookup(key)
		fmt.Fprintf(s.out, "%2s. %s (%s)\n", key, lang.Name, lang.Code)
	}

	for {
		fmt.Fprint(s.out, "\nEnter choice (or press Enter for English): ")
		line, ok := s.readLine()
		if !ok {
			return language.English(), nil
		}
		choice := strings.TrimSpace(line)
		if choice == "" {
			return language.English(), nil
		}
		if lang, ok := table.Lookup(choice); ok {
			return lang, nil
		}
		fmt.Fprintln(s.out, errorLine("Invalid choice. Pick one of the listed keys."))
	}
}

// runQuery fetches suggestions for keyword and always renders the result,
// substituting an empty list after a reported fetch failure.
func (s *Session) runQuery(keyword string) {
	fmt.Fprintf(s.out, "\nFetching suggestions for '%s'...\n", display.Visual(keyword, s.lang.RTL))

	suggestions, err := s.suggester.Suggest(context.Background(), keyword, s.lang.Code)
	if err != nil {
		s.reportFetchError(err)
		suggestions = nil
	}
	s.renderSuggestions(keyword, suggestions)
}

// reportFetchError maps tagged fetch failures to their one-line messages.
func (s *Session) reportFetchError(err error) {
	switch suggest.KindOf(err) {
	case suggest.ErrTimeout:
		fmt.Fprintln(s.out, errorLine("Request timed out. Please check your internet connection."))
	case suggest.ErrFormat:
		fmt.Fprintln(s.out, errorLine("Unexpected response format from the suggestion endpoint."))
	default:
		detail := err
		var fe *suggest.Error
		if errors.As(err, &fe) && fe.Err != nil {
			detail = fe.Err
		}
		fmt.Fprintln(s.out, errorLine(fmt.Sprintf("Error fetching suggestions: %v", detail)))
	}
}

type continueAnswer int

const (
	answerContinue continueAnswer = iota
	answerStop
	answerQuit
)

// promptContinue asks whether to run another keyword. "n"/"no" stops with
// the thank-you message, the exit commands stop with the farewell, and
// anything else keeps the loop going.
func (s *Session) promptContinue() continueAnswer {
	fmt.Fprint(s.out, "\nSearch another keyword? (y/n): ")
	line, ok := s.readLine()
	if !ok {
		return answerStop
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "n", "no":
		return answerStop
	case "quit", "exit", "q":
		return answerQuit
	default:
		return answerContinue
	}
}

// readLine reads one input line, reporting false at end of input.
func (s *Session) readLine() (string, bool) {
	if !s.scanner.Scan() {
		return "", false
	}
	return s.scanner.Text(), true
}
