package store

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"sort"
	"strings"

	"github.com/franku1122/confmanager/logging"
	"github.com/franku1122/confmanager/metrics"
	"github.com/franku1122/confmanager/parser"
)

// Open reads the file at path line by line and replaces the loaded state
// with its contents. The first line may carry an annotation declaration;
// a matching declaration anywhere else in the file is logged as an error
// and ignored. Malformed fragments and duplicate keys are logged as
// warnings and skipped — a bad line never aborts the read.
//
// On any failure the store is left unloaded.
func (s *Store) Open(path string) error {
	f, err := os.Open(path)
	if err != nil {
		s.loaded, s.annotations = nil, nil
		s.metrics.Inc(metrics.IOErrors)
		if errors.Is(err, fs.ErrNotExist) {
			s.log.Put(logging.Error, fmt.Sprintf("open %s: file not found", path))
			return fmt.Errorf("store: open %q: %w", path, ErrFileNotFound)
		}
		s.log.Put(logging.Error, fmt.Sprintf("open %s: %v", path, err))
		return fmt.Errorf("store: open %q: %w", path, err)
	}
	defer f.Close()

	loaded := make(map[string]string)
	var annotations []string

	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()

		if items, ok := parser.AnnotationLine(line, s.syntax); ok {
			if lineNo == 1 {
				for _, it := range items {
					if !slices.Contains(annotations, it) {
						annotations = append(annotations, it)
					}
				}
			} else {
				s.log.Put(logging.Error,
					fmt.Sprintf("line %d: extra @annotation declaration ignored", lineNo))
			}
			continue
		}

		pairs, malformed := parser.Line(line, s.syntax)
		for _, frag := range malformed {
			s.metrics.Inc(metrics.ParseWarnings)
			s.log.Put(logging.Warn,
				fmt.Sprintf("line %d: cannot parse %q as a key/value pair", lineNo, frag))
		}
		for _, p := range pairs {
			if _, dup := loaded[p.Key]; dup {
				s.metrics.Inc(metrics.DuplicateKeys)
				s.log.Put(logging.Warn,
					fmt.Sprintf("line %d: duplicate key %q dropped", lineNo, p.Key))
				continue
			}
			loaded[p.Key] = p.Value
		}
	}
	if err := sc.Err(); err != nil {
		s.loaded, s.annotations = nil, nil
		s.metrics.Inc(metrics.IOErrors)
		s.log.Put(logging.Error, fmt.Sprintf("read %s: %v", path, err))
		return fmt.Errorf("store: read %q: %w", path, err)
	}

	s.loaded = loaded
	s.annotations = annotations
	s.metrics.Inc(metrics.Opens)
	return nil
}

// SaveOptions control Save. The zero value matches the defaults: serialize
// the loaded state as-is and replace an existing file.
type SaveOptions struct {
	// ApplyFirst runs ApplyModified before serializing. Otherwise staged
	// edits are excluded from the written file — non-destructive by default.
	ApplyFirst bool

	// KeepExisting makes Save fail with ErrFileExists instead of replacing
	// an existing file.
	KeepExisting bool
}

// Save serializes the loaded state to path. Annotations, when present, are
// written as a single declaration line followed by a blank separator line;
// values follow one per line in sorted key order.
func (s *Store) Save(path string, opts SaveOptions) error {
	if opts.ApplyFirst {
		s.ApplyModified()
	}
	if !s.IsLoaded() {
		return fmt.Errorf("store: save %q: %w", path, ErrNotLoaded)
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if opts.KeepExisting {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		s.metrics.Inc(metrics.IOErrors)
		switch {
		case errors.Is(err, fs.ErrExist):
			s.log.Put(logging.Error, fmt.Sprintf("save %s: refusing to overwrite", path))
			return fmt.Errorf("store: save %q: %w", path, ErrFileExists)
		case errors.Is(err, fs.ErrPermission):
			s.log.Put(logging.Error, fmt.Sprintf("save %s: permission denied", path))
			return fmt.Errorf("store: save %q: %w", path, ErrNoPermission)
		default:
			s.log.Put(logging.Error, fmt.Sprintf("save %s: %v", path, err))
			return fmt.Errorf("store: save %q: %w", path, err)
		}
	}

	w := bufio.NewWriter(f)
	if len(s.annotations) > 0 {
		sep := string(s.syntax.AnnotationSep) + " "
		fmt.Fprintf(w, "%s%s\n\n", parser.AnnotationPrefix, strings.Join(s.annotations, sep))
	}

	pad := " "
	if s.syntax.PairSep == ' ' {
		pad = ""
	}
	keys := make([]string, 0, len(s.loaded))
	for k := range s.loaded {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := s.loaded[k]
		if s.syntax.Quoting {
			v = string(s.syntax.Quote) + v + string(s.syntax.Quote)
		}
		fmt.Fprintf(w, "%s%s%c%s%s\n", k, pad, s.syntax.PairSep, pad, v)
	}

	if err := w.Flush(); err != nil {
		f.Close()
		s.metrics.Inc(metrics.IOErrors)
		s.log.Put(logging.Error, fmt.Sprintf("save %s: %v", path, err))
		return fmt.Errorf("store: save %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		s.metrics.Inc(metrics.IOErrors)
		return fmt.Errorf("store: save %q: %w", path, err)
	}
	s.metrics.Inc(metrics.Saves)
	return nil
}
