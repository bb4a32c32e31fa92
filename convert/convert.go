// Package convert translates between the .cfg store representation and a
// YAML document, for interchange with tooling that does not read the .cfg
// format.
package convert

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/franku1122/confmanager/store"
)

// Document is the YAML shape of a converted config file.
type Document struct {
	Annotations []string          `yaml:"annotations,omitempty"`
	Values      map[string]string `yaml:"values"`
}

// FromStore captures a store's loaded state as a Document.
func FromStore(st *store.Store) Document {
	return Document{
		Annotations: st.Annotations(),
		Values:      st.Values(),
	}
}

// ToYAML serializes the store's loaded state as YAML.
func ToYAML(st *store.Store) ([]byte, error) {
	data, err := yaml.Marshal(FromStore(st))
	if err != nil {
		return nil, fmt.Errorf("convert: marshal yaml: %w", err)
	}
	return data, nil
}

// FromYAML parses a Document from YAML.
func FromYAML(data []byte) (Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("convert: parse yaml: %w", err)
	}
	for k := range doc.Values {
		if k == "" {
			return Document{}, fmt.Errorf("convert: yaml document contains an empty key")
		}
	}
	return doc, nil
}

// Stage queues every value and annotation of doc into st's edit staging
// areas. Keys already staged are replaced. Callers run ApplyModified (or
// save with ApplyFirst) to commit.
func Stage(st *store.Store, doc Document) error {
	for k, v := range doc.Values {
		err := st.AddEditedValue(k, v, true)
		if errors.Is(err, store.ErrExists) {
			if err := st.RemoveEditedValue(k, false); err != nil {
				return fmt.Errorf("convert: restage %q: %w", k, err)
			}
			err = st.AddEditedValue(k, v, true)
		}
		if err != nil {
			return fmt.Errorf("convert: stage %q: %w", k, err)
		}
	}
	for _, a := range doc.Annotations {
		if err := st.AddEditedAnnotation(a, true); err != nil && !errors.Is(err, store.ErrExists) {
			return fmt.Errorf("convert: stage annotation %q: %w", a, err)
		}
	}
	return nil
}
