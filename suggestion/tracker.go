package suggestion

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/inlaydev/inlay/textpos"
)

// DefaultMaxAge is how long a suggestion stays presentable after it was
// installed. Interpolate withdraws anything older.
const DefaultMaxAge = 5 * time.Second

// Snapshot is the host-supplied view of a document at one instant:
// the full text, the cursor, and a stable identity token distinguishing
// documents from each other.
type Snapshot struct {
	DocumentID string
	Text       string
	Cursor     textpos.Position
}

// tracked is the single active suggestion plus the context it was
// computed against. All fields are set together by Set and only ever
// discarded as a whole.
type tracked struct {
	id        string
	text      string // completion text offered to the user
	baseText  string // document text at fetch time
	docID     string
	anchor    textpos.Position
	rng       textpos.Range // span the suggestion would occupy
	createdAt time.Time
}

// Tracker manages at most one active suggestion.
type Tracker struct {
	mu     sync.Mutex
	cur    *tracked
	maxAge time.Duration
	now    func() time.Time
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithMaxAge overrides the staleness bound for installed suggestions.
// A non-positive value disables the age check.
func WithMaxAge(d time.Duration) Option {
	return func(t *Tracker) {
		t.maxAge = d
	}
}

// WithClock sets the time source used for staleness checks. Intended for
// tests.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		t.now = now
	}
}

// NewTracker creates an empty tracker.
func NewTracker(opts ...Option) *Tracker {
	t := &Tracker{
		maxAge: DefaultMaxAge,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Set installs a new suggestion computed against snap, silently replacing
// any prior one. The anchor is the snapshot's cursor; the active range
// spans the text the suggestion would insert there. Returns the id
// assigned to the suggestion.
func (t *Tracker) Set(text string, snap Snapshot) (string, error) {
	if text == "" {
		return "", ErrEmptyCompletion
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.cur = &tracked{
		id:        uuid.NewString(),
		text:      text,
		baseText:  snap.Text,
		docID:     snap.DocumentID,
		anchor:    snap.Cursor,
		rng:       textpos.Range{Start: snap.Cursor, End: textpos.Advance(snap.Cursor, text)},
		createdAt: t.now(),
	}
	return t.cur.id, nil
}

// Clear discards any active suggestion. Idempotent. This is also the
// cancellation primitive: hosts call it when a pending request is
// superseded or the user dismisses the suggestion.
func (t *Tracker) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cur = nil
}

// Active reports whether a suggestion is currently tracked.
func (t *Tracker) Active() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cur != nil
}

// ID returns the id of the active suggestion, or "" when empty.
func (t *Tracker) ID() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cur == nil {
		return ""
	}
	return t.cur.id
}

// Text returns the stored completion text, or "" when empty.
func (t *Tracker) Text() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cur == nil {
		return ""
	}
	return t.cur.text
}

// Anchor returns the position the suggestion was computed for. The second
// result is false when no suggestion is active.
func (t *Tracker) Anchor() (textpos.Position, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cur == nil {
		return textpos.Position{}, false
	}
	return t.cur.anchor, true
}

// ActiveRange returns the span the suggestion would occupy. The second
// result is false when no suggestion is active.
func (t *Tracker) ActiveRange() (textpos.Range, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cur == nil {
		return textpos.Range{}, false
	}
	return t.cur.rng, true
}

// HasConflict reports whether the live document state has diverged from
// the tracked suggestion: no suggestion is active, the cursor has left
// the active range, the anchor no longer resolves inside the document, or
// the text occupying the active range is not a prefix of the stored
// completion. It does not modify the tracker.
func (t *Tracker) HasConflict(snap Snapshot) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.hasConflictLocked(snap)
}

func (t *Tracker) hasConflictLocked(snap Snapshot) bool {
	if t.cur == nil {
		return true
	}
	if !t.cur.rng.Contains(snap.Cursor) {
		return true
	}

	startOff := textpos.Offset(snap.Text, t.cur.rng.Start)
	// The anchor must still name a real location; Offset clamps when the
	// document has shrunk past it, and the round trip exposes that.
	if textpos.PositionAt(snap.Text, startOff) != t.cur.rng.Start {
		return true
	}

	cursorOff := textpos.Offset(snap.Text, snap.Cursor)
	if cursorOff < startOff {
		return true
	}
	return !strings.HasPrefix(t.cur.text, snap.Text[startOff:cursorOff])
}

// Interpolate adjusts the tracked suggestion to the live document state
// and returns the text still worth rendering at the cursor. It returns
// ok=false — and clears the tracker — when the suggestion has been
// withdrawn: wrong document, stale, or in conflict with the live text.
//
// When the user's typing since the snapshot matches the front of the
// suggestion, the matched prefix is stripped and the remainder returned,
// avoiding a backend round trip per keystroke.
func (t *Tracker) Interpolate(snap Snapshot) (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.interpolateLocked(snap)
}

func (t *Tracker) interpolateLocked(snap Snapshot) (string, bool) {
	if t.cur == nil {
		return "", false
	}
	if snap.DocumentID != t.cur.docID {
		t.cur = nil
		return "", false
	}
	if t.maxAge > 0 && t.now().Sub(t.cur.createdAt) > t.maxAge {
		t.cur = nil
		return "", false
	}
	if t.hasConflictLocked(snap) {
		t.cur = nil
		return "", false
	}

	// Net characters inserted before the cursor since the suggestion was
	// fetched: anchor measured against the base text, cursor against the
	// live text.
	anchorOff := textpos.Offset(t.cur.baseText, t.cur.anchor)
	cursorOff := textpos.Offset(snap.Text, snap.Cursor)
	delta := cursorOff - anchorOff

	if delta == 0 {
		return t.cur.text, true
	}

	if delta > 0 {
		typed := snap.Text[cursorOff-delta : cursorOff]
		if strings.HasPrefix(t.cur.text, typed) {
			// The user started typing the suggestion; show the rest.
			return t.cur.text[delta:], true
		}
		// Unrelated text landed before the cursor; the suggestion simply
		// appears after it now.
		return t.cur.text, true
	}

	// delta < 0: text deleted before the cursor. The conflict gate above
	// already re-validated the anchor against the shrunk document, so the
	// suggestion is still sound as-is.
	return t.cur.text, true
}

// Accept resolves the suggestion against snap, clears the tracker, and
// returns the text the host should insert at the cursor. ok=false means
// there was nothing acceptable (empty, stale, or in conflict).
func (t *Tracker) Accept(snap Snapshot) (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	text, ok := t.interpolateLocked(snap)
	if !ok {
		return "", false
	}
	t.cur = nil
	return text, true
}
