// Package errors provides structured, coded errors for muon.
//
// Every failure muon surfaces carries a short code (e.g. "E001") that maps to
// a registered message and category. Codes let callers match failures with
// the standard library errors.Is without comparing message text:
//
//	if errors.Is(err, muonerrors.New("E001")) {
//	    // an element without a Render implementation was stringified
//	}
//
// # Error Categories
//
//   - render: tree rendering failures (unimplemented elements, depth limit)
//   - adapter: response adapter failures
//   - config: muon.json loading and validation
//   - http: page routing
//   - publish: document storage
//   - registry: tag lookups
//
// # Usage
//
//	err := errors.New("E120").
//	    WithDetail("Failed to parse muon.json").
//	    WithSuggestion("Check that muon.json is valid JSON").
//	    Wrap(cause)
//
//	fmt.Fprintln(os.Stderr, err.Format())
package errors
