package store

import (
	"slices"

	"github.com/franku1122/confmanager/logging"
	"github.com/franku1122/confmanager/metrics"
)

// ApplyModified folds the staged edits and pending removals into the loaded
// state. It never fails and is a no-op merge when nothing is staged.
//
// Edited values win over loaded values for the same key, and removals are
// applied after the edit overlay, so a key that is both edited and marked
// for removal ends up removed. All staging areas are cleared afterwards,
// whether or not the merge changed anything.
func (s *Store) ApplyModified() {
	s.metrics.Inc(metrics.Applies)

	if s.loaded == nil {
		if s.autoCreate {
			// Single-shot empty-base init. Never recurses.
			s.loaded = make(map[string]string)
		} else {
			s.log.Put(logging.Error, "apply: no configuration loaded; staged values not merged")
		}
	}

	if s.loaded != nil {
		work := make(map[string]string, len(s.loaded)+len(s.edited))
		for k, v := range s.loaded {
			work[k] = v
		}
		for k, v := range s.edited {
			work[k] = v
		}
		for k := range s.removeValues {
			delete(work, k) // absent targets are silently ignored
		}
		s.loaded = work
	}

	merged := slices.Clone(s.annotations)
	for _, a := range s.editedAnnotations {
		if !slices.Contains(merged, a) {
			merged = append(merged, a)
		}
	}
	var kept []string
	for _, a := range merged {
		if _, drop := s.removeAnnotations[a]; !drop {
			kept = append(kept, a)
		}
	}
	s.annotations = kept

	s.resetStaging()
}
