package parser

import (
	"fmt"
	"strings"
)

// AnnotationPrefix introduces the one-per-file annotation declaration line.
// The trailing space is part of the prefix.
const AnnotationPrefix = "@annotation "

// fragmentSep joins multiple key/value pairs on one physical line. It is
// fixed by the format and must not collide with any Syntax separator.
const fragmentSep = ';'

// Pair is one parsed key/value entry. Values are opaque strings; any typed
// interpretation is the caller's responsibility.
type Pair struct {
	Key   string
	Value string
}

// Syntax customizes the file format. It must be fixed before a file is
// opened; changing it afterwards has undefined effect on already-parsed data.
type Syntax struct {
	// Comment truncates a line from its first literal occurrence.
	Comment string

	// PairSep separates a key from its value.
	PairSep rune

	// AnnotationSep separates items of the annotation declaration. On read,
	// a semicolon is accepted as an alternative.
	AnnotationSep rune

	// Quoting wraps values in Quote characters on write and strips one
	// layer on read.
	Quoting bool

	// Quote is the quote character used when Quoting is enabled.
	Quote rune
}

// DefaultSyntax returns the stock format: "//" comments, '=' pairs,
// ',' annotation lists, quoting enabled with '"'.
func DefaultSyntax() Syntax {
	return Syntax{
		Comment:       "//",
		PairSep:       '=',
		AnnotationSep: ',',
		Quoting:       true,
		Quote:         '"',
	}
}

// Validate checks the separator characters for ambiguity. No two of
// {PairSep, AnnotationSep, ';'} may be equal, or pair and line splitting
// become ambiguous.
func (s Syntax) Validate() error {
	if s.Comment == "" {
		return fmt.Errorf("syntax: comment marker must not be empty")
	}
	if s.PairSep == 0 || s.AnnotationSep == 0 {
		return fmt.Errorf("syntax: separator characters must be set")
	}
	if s.PairSep == s.AnnotationSep {
		return fmt.Errorf("syntax: pair separator %q collides with annotation separator", s.PairSep)
	}
	if s.PairSep == fragmentSep {
		return fmt.Errorf("syntax: pair separator must not be %q", fragmentSep)
	}
	if s.AnnotationSep == fragmentSep {
		return fmt.Errorf("syntax: annotation separator must not be %q", fragmentSep)
	}
	if s.Quoting && s.Quote == 0 {
		return fmt.Errorf("syntax: quoting enabled without a quote character")
	}
	return nil
}

// Line parses one physical line into zero or more key/value pairs.
// Malformed fragments are returned verbatim in malformed so the caller can
// log them with line context; they never abort parsing of the rest of the
// line or file.
func Line(line string, syn Syntax) (pairs []Pair, malformed []string) {
	if i := strings.Index(line, syn.Comment); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, nil
	}

	for _, frag := range strings.Split(line, string(fragmentSep)) {
		frag = strings.TrimSpace(frag)
		if frag == "" {
			continue
		}
		// Split-limit-2: the separator may appear again inside the value.
		k, v, found := strings.Cut(frag, string(syn.PairSep))
		if !found {
			malformed = append(malformed, frag)
			continue
		}
		key := strings.TrimSpace(k)
		if key == "" {
			malformed = append(malformed, frag)
			continue
		}
		val := strings.TrimSpace(v)
		if syn.Quoting {
			val = unquote(val, syn.Quote)
		}
		pairs = append(pairs, Pair{Key: key, Value: val})
	}
	return pairs, malformed
}

// AnnotationLine reports whether line is an annotation declaration and, if
// so, returns its trimmed items. Empty items are dropped.
func AnnotationLine(line string, syn Syntax) ([]string, bool) {
	rest, ok := strings.CutPrefix(strings.TrimLeft(line, " \t"), AnnotationPrefix)
	if !ok {
		return nil, false
	}
	split := func(r rune) bool { return r == syn.AnnotationSep || r == fragmentSep }

	var items []string
	for _, it := range strings.FieldsFunc(rest, split) {
		if it = strings.TrimSpace(it); it != "" {
			items = append(items, it)
		}
	}
	return items, true
}

// unquote strips one layer of the quote character when the value is wrapped
// in it on both ends.
func unquote(v string, q rune) string {
	qs := string(q)
	if len(v) >= 2*len(qs) && strings.HasPrefix(v, qs) && strings.HasSuffix(v, qs) {
		return v[len(qs) : len(v)-len(qs)]
	}
	return v
}
