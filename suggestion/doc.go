// Package suggestion tracks a single active inline completion and
// reconciles it against live document edits.
//
// A Tracker holds at most one suggestion together with the document
// snapshot it was computed against. As the user types, Interpolate either
// narrows the suggestion (when recent typing is consistent with starting
// to accept it) or withdraws it (when the document has diverged, the
// cursor has left the suggestion's territory, or the suggestion has gone
// stale). Withdrawal is silent: the host renders "no suggestion" and may
// refetch.
//
// The Tracker is safe for concurrent use, but the intended model is a
// single event loop: install on backend response, interpolate on every
// keystroke, clear on dismissal or supersession.
package suggestion
