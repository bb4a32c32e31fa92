package store

import (
	"fmt"
	"slices"
)

// AddEditedValue stages key/value for addition on the next apply. When
// cancelRemoval is true, a pending removal of the same key is cleared: the
// two requests are mutually cancelling.
func (s *Store) AddEditedValue(key, value string, cancelRemoval bool) error {
	if _, ok := s.edited[key]; ok {
		return fmt.Errorf("store: edited value %q: %w", key, ErrExists)
	}
	s.edited[key] = value
	if cancelRemoval {
		delete(s.removeValues, key)
	}
	return nil
}

// RemoveEditedValue unstages key. When pendRemoval is true, key is also
// marked for removal from the loaded state on the next apply.
func (s *Store) RemoveEditedValue(key string, pendRemoval bool) error {
	if _, ok := s.edited[key]; !ok {
		return fmt.Errorf("store: edited value %q: %w", key, ErrNotFound)
	}
	delete(s.edited, key)
	if pendRemoval {
		s.removeValues[key] = struct{}{}
	}
	return nil
}

// AddEditedAnnotation stages text for addition on the next apply, appended
// in staging order. When cancelRemoval is true, a pending removal of the
// same annotation is cleared.
func (s *Store) AddEditedAnnotation(text string, cancelRemoval bool) error {
	if slices.Contains(s.editedAnnotations, text) {
		return fmt.Errorf("store: edited annotation %q: %w", text, ErrExists)
	}
	s.editedAnnotations = append(s.editedAnnotations, text)
	if cancelRemoval {
		delete(s.removeAnnotations, text)
	}
	return nil
}

// RemoveEditedAnnotation unstages text, preserving the order of the rest.
// When pendRemoval is true, text is also marked for removal on the next apply.
func (s *Store) RemoveEditedAnnotation(text string, pendRemoval bool) error {
	i := slices.Index(s.editedAnnotations, text)
	if i < 0 {
		return fmt.Errorf("store: edited annotation %q: %w", text, ErrNotFound)
	}
	s.editedAnnotations = slices.Delete(s.editedAnnotations, i, i+1)
	if pendRemoval {
		s.removeAnnotations[text] = struct{}{}
	}
	return nil
}

// PendValueRemoval marks key for deletion from the loaded state on the next
// apply, independent of edit staging.
func (s *Store) PendValueRemoval(key string) error {
	if _, ok := s.removeValues[key]; ok {
		return fmt.Errorf("store: pending removal of value %q: %w", key, ErrExists)
	}
	s.removeValues[key] = struct{}{}
	return nil
}

// UnpendValueRemoval clears a pending value removal.
func (s *Store) UnpendValueRemoval(key string) error {
	if _, ok := s.removeValues[key]; !ok {
		return fmt.Errorf("store: pending removal of value %q: %w", key, ErrNotFound)
	}
	delete(s.removeValues, key)
	return nil
}

// PendAnnotationRemoval marks text for deletion from the loaded annotation
// list on the next apply.
func (s *Store) PendAnnotationRemoval(text string) error {
	if _, ok := s.removeAnnotations[text]; ok {
		return fmt.Errorf("store: pending removal of annotation %q: %w", text, ErrExists)
	}
	s.removeAnnotations[text] = struct{}{}
	return nil
}

// UnpendAnnotationRemoval clears a pending annotation removal.
func (s *Store) UnpendAnnotationRemoval(text string) error {
	if _, ok := s.removeAnnotations[text]; !ok {
		return fmt.Errorf("store: pending removal of annotation %q: %w", text, ErrNotFound)
	}
	delete(s.removeAnnotations, text)
	return nil
}

// RemoveLoadedValue deletes key from the loaded state immediately, bypassing
// staging.
func (s *Store) RemoveLoadedValue(key string) error {
	if _, ok := s.loaded[key]; !ok {
		return fmt.Errorf("store: loaded value %q: %w", key, ErrNotFound)
	}
	delete(s.loaded, key)
	return nil
}

// RemoveLoadedAnnotation deletes text from the loaded annotation list
// immediately, bypassing staging.
func (s *Store) RemoveLoadedAnnotation(text string) error {
	i := slices.Index(s.annotations, text)
	if i < 0 {
		return fmt.Errorf("store: loaded annotation %q: %w", text, ErrNotFound)
	}
	s.annotations = slices.Delete(s.annotations, i, i+1)
	return nil
}
