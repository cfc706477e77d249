// Package richtext implements a rich-text editing surface over an explicit
// document tree. The surface owns the tree and the selection cursor; every
// formatting command reads then writes them synchronously, re-serializes the
// document and re-derives the formatting state. Selection-state failures
// degrade to warnings and no-ops, never errors to the host.
package richtext

import "log"

// warnf reports swallowed selection-state failures. Replaceable for tests
// and for hosts that route warnings elsewhere.
var warnf = func(format string, args ...any) {
	log.Printf("richtext: "+format, args...)
}

// SetWarnLogger replaces the warning hook. Passing nil silences warnings.
func SetWarnLogger(f func(format string, args ...any)) {
	if f == nil {
		f = func(string, ...any) {}
	}
	warnf = f
}

// Direction is the detected writing direction.
type Direction int

const (
	LeftToRight Direction = iota
	RightToLeft
)

// URLTransform rewrites an outgoing link or image URL before it is embedded
// (proxying, validation). The only extension point exposed to the host.
type URLTransform func(url string) string

// Options configures a Surface.
type Options struct {
	// Value is the initial markup. The host owns the authoritative value.
	Value string
	// OnChange receives the serialized document after every mutation.
	OnChange func(html string)
	// TransformLinkURL and TransformImageURL rewrite outgoing URLs.
	TransformLinkURL  URLTransform
	TransformImageURL URLTransform
	// HistoryLimit caps undo depth. Zero means DefaultHistoryLimit.
	HistoryLimit int
}

// DefaultHistoryLimit is the undo stack depth when none is configured.
const DefaultHistoryLimit = 100

// Surface is a rich-text editing surface: a document tree plus the current
// selection. Not safe for concurrent use; commands are expected to run on a
// single event loop.
type Surface struct {
	root *Node
	sel  *Selection

	onChange       func(string)
	transformLink  URLTransform
	transformImage URLTransform

	hist      history
	direction Direction
	state     FormattingState
}

// NewSurface creates a surface from the given options.
func NewSurface(opts Options) *Surface {
	limit := opts.HistoryLimit
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	s := &Surface{
		root:           ParseHTML(opts.Value),
		onChange:       opts.OnChange,
		transformLink:  opts.TransformLinkURL,
		transformImage: opts.TransformImageURL,
		hist:           history{limit: limit},
	}
	s.refreshDerived()
	return s
}

// Root returns the document root. Exposed for rendering and tests; mutating
// the tree outside surface commands bypasses change notification.
func (s *Surface) Root() *Node { return s.root }

// Selection returns the current selection, or nil when there is none.
func (s *Surface) Selection() *Selection { return s.sel }

// SetSelection replaces the selection. Selections outside the surface root
// are treated as no live selection.
func (s *Surface) SetSelection(sel *Selection) {
	if sel != nil && !sel.containedIn(s.root) {
		warnf("selection outside editable surface ignored")
		sel = nil
	}
	s.sel = sel
	s.state = deriveState(s.root, s.sel)
}

// ClearSelection drops the selection.
func (s *Surface) ClearSelection() {
	s.sel = nil
	s.state = deriveState(s.root, nil)
}

// HTML returns the serialized document.
func (s *Surface) HTML() string { return SerializeHTML(s.root) }

// PlainText returns the document's text content.
func (s *Surface) PlainText() string { return PlainText(s.root) }

// SetHTML replaces the whole document with the host-supplied value. The
// selection is cleared; history is preserved so host reconciliation does not
// wipe undo.
func (s *Surface) SetHTML(markup string) {
	if SerializeHTML(s.root) == markup {
		return
	}
	s.hist.record(s.snapshot())
	s.root = ParseHTML(markup)
	s.sel = nil
	s.notify()
}

// Direction returns the detected writing direction of the current content.
func (s *Surface) Direction() Direction { return s.direction }

// State returns the formatting state at the current selection.
func (s *Surface) State() FormattingState { return s.state }

// selectionIn reports whether there is a live selection inside the surface.
func (s *Surface) selectionIn() bool {
	return s.sel != nil && s.sel.containedIn(s.root)
}

// beginMutation snapshots the document for undo. Paired with afterMutation.
func (s *Surface) beginMutation() string {
	return s.snapshot()
}

// afterMutation records history and fires change notification.
func (s *Surface) afterMutation(before string) {
	if s.snapshot() == before {
		return
	}
	s.hist.record(before)
	s.notify()
}

func (s *Surface) snapshot() string {
	return SerializeHTML(s.root)
}

// notify re-serializes, re-derives formatting state and direction, and
// invokes the change callback. Runs after every mutation.
func (s *Surface) notify() {
	s.refreshDerived()
	if s.onChange != nil {
		s.onChange(SerializeHTML(s.root))
	}
}

func (s *Surface) refreshDerived() {
	s.direction = DetectDirection(PlainText(s.root))
	s.state = deriveState(s.root, s.sel)
}
