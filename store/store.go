package store

import (
	"fmt"
	"slices"

	"github.com/franku1122/confmanager/logging"
	"github.com/franku1122/confmanager/metrics"
	"github.com/franku1122/confmanager/parser"
)

// Options configure a Store.
type Options struct {
	// Syntax customizes the file format. The zero value means
	// parser.DefaultSyntax().
	Syntax parser.Syntax

	// Logger receives recoverable warnings and I/O failures.
	// Defaults to logging.Stdout().
	Logger logging.Sink

	// Metrics, when non-nil, counts store operations.
	Metrics *metrics.Collector

	// AutoCreate makes ApplyModified initialize an empty loaded map when no
	// file was opened. When false, the value half of the merge is skipped
	// with an error log instead.
	AutoCreate bool
}

// Store owns loaded configuration state plus the staging areas for pending
// edits and pending removals. Staged changes only become visible in the
// loaded state after ApplyModified.
//
// A Store is not safe for concurrent mutation; callers needing that must
// synchronize externally.
type Store struct {
	syntax     parser.Syntax
	log        logging.Sink
	metrics    *metrics.Collector
	autoCreate bool

	// loaded is nil until a file is opened (or auto-created on apply);
	// the nil map is the checked "nothing loaded yet" state.
	loaded      map[string]string
	annotations []string

	edited            map[string]string
	editedAnnotations []string
	removeValues      map[string]struct{}
	removeAnnotations map[string]struct{}
}

// New creates an empty, unloaded Store. It fails only when the syntax
// customization is ambiguous.
func New(opts Options) (*Store, error) {
	syn := opts.Syntax
	if syn == (parser.Syntax{}) {
		syn = parser.DefaultSyntax()
	}
	if err := syn.Validate(); err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}
	sink := opts.Logger
	if sink == nil {
		sink = logging.Stdout()
	}
	return &Store{
		syntax:            syn,
		log:               sink,
		metrics:           opts.Metrics,
		autoCreate:        opts.AutoCreate,
		edited:            make(map[string]string),
		removeValues:      make(map[string]struct{}),
		removeAnnotations: make(map[string]struct{}),
	}, nil
}

// Clear discards all loaded and staged state. The configured logger, syntax,
// and metrics collector are retained.
func (s *Store) Clear() {
	s.loaded = nil
	s.annotations = nil
	s.resetStaging()
}

func (s *Store) resetStaging() {
	s.edited = make(map[string]string)
	s.editedAnnotations = nil
	s.removeValues = make(map[string]struct{})
	s.removeAnnotations = make(map[string]struct{})
}

// IsLoaded reports whether configuration state is present, either from Open
// or from an auto-created apply.
func (s *Store) IsLoaded() bool {
	return s.loaded != nil
}

// Dirty reports whether any edits or removals are staged.
func (s *Store) Dirty() bool {
	return len(s.edited) > 0 || len(s.editedAnnotations) > 0 ||
		len(s.removeValues) > 0 || len(s.removeAnnotations) > 0
}

// LoadedValue returns the loaded value for key.
func (s *Store) LoadedValue(key string) (string, bool) {
	v, ok := s.loaded[key]
	return v, ok
}

// EditedValue returns the staged value for key.
func (s *Store) EditedValue(key string) (string, bool) {
	v, ok := s.edited[key]
	return v, ok
}

// Values returns a copy of the loaded key/value map.
func (s *Store) Values() map[string]string {
	out := make(map[string]string, len(s.loaded))
	for k, v := range s.loaded {
		out[k] = v
	}
	return out
}

// Annotations returns a copy of the loaded annotation list in declaration order.
func (s *Store) Annotations() []string {
	return slices.Clone(s.annotations)
}

// EditedAnnotations returns a copy of the staged annotation list.
func (s *Store) EditedAnnotations() []string {
	return slices.Clone(s.editedAnnotations)
}

// HasLoadedAnnotation reports whether text is in the loaded annotation list.
func (s *Store) HasLoadedAnnotation(text string) bool {
	return slices.Contains(s.annotations, text)
}

// HasEditedAnnotation reports whether text is staged for addition.
func (s *Store) HasEditedAnnotation(text string) bool {
	return slices.Contains(s.editedAnnotations, text)
}

// ValueRemovalPending reports whether key is marked for removal on the next apply.
func (s *Store) ValueRemovalPending(key string) bool {
	_, ok := s.removeValues[key]
	return ok
}

// AnnotationRemovalPending reports whether text is marked for removal on the
// next apply.
func (s *Store) AnnotationRemovalPending(text string) bool {
	_, ok := s.removeAnnotations[text]
	return ok
}

// Syntax returns the customization the store was created with.
func (s *Store) Syntax() parser.Syntax {
	return s.syntax
}
