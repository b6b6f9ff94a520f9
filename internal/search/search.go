// Package search declares the collaborators the UI shell is built against.
// The shell itself ships without implementations: committing a query and
// opening a result are wired in by whichever backend provides them.
package search

import "context"

// Provider turns a query into an ordered list of display strings for the
// results pane.
type Provider interface {
	Search(ctx context.Context, query string) ([]string, error)
}

// Launcher opens a selected result out-of-band (e.g. hands it to a media
// player).
type Launcher interface {
	Open(ctx context.Context, item string) error
}
