// Package bind populates a config store from typed application objects.
//
// Rather than reflecting over struct fields, a type describes itself by
// implementing Configurable (and optionally Annotated); Populate stages the
// result into a store's edit areas. The reverse direction — deserializing
// entries back into typed fields — is deliberately not provided.
package bind

import (
	"errors"
	"fmt"

	"github.com/franku1122/confmanager/parser"
	"github.com/franku1122/confmanager/store"
)

// Configurable is implemented by types that can render themselves as
// config entries. Values must already be stringified.
type Configurable interface {
	ConfigEntries() []parser.Pair
}

// Annotated is optionally implemented alongside Configurable by types that
// also declare annotations.
type Annotated interface {
	ConfigAnnotations() []string
}

// Populate stages every entry of c — and every annotation, when c implements
// Annotated — into st. An entry whose key is already staged replaces the
// staged value; annotations already staged are left alone. Nothing is
// applied: callers decide when to run ApplyModified.
func Populate(st *store.Store, c Configurable) error {
	for _, p := range c.ConfigEntries() {
		if p.Key == "" {
			return fmt.Errorf("bind: %T produced an entry with an empty key", c)
		}
		err := st.AddEditedValue(p.Key, p.Value, true)
		if errors.Is(err, store.ErrExists) {
			if err := st.RemoveEditedValue(p.Key, false); err != nil {
				return fmt.Errorf("bind: restage %q: %w", p.Key, err)
			}
			err = st.AddEditedValue(p.Key, p.Value, true)
		}
		if err != nil {
			return fmt.Errorf("bind: stage %q: %w", p.Key, err)
		}
	}

	a, ok := c.(Annotated)
	if !ok {
		return nil
	}
	for _, ann := range a.ConfigAnnotations() {
		if err := st.AddEditedAnnotation(ann, true); err != nil && !errors.Is(err, store.ErrExists) {
			return fmt.Errorf("bind: stage annotation %q: %w", ann, err)
		}
	}
	return nil
}
