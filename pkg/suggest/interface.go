package suggest

import "context"

// Suggester is the lookup surface the CLI loop and IPC server depend on.
// The production implementation is *Fetcher; tests substitute stubs.
type Suggester interface {
	Suggest(ctx context.Context, keyword, lang string) ([]string, error)
}
