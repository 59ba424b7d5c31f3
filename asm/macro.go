package asm

import (
	"regexp"
)

// Macro is a compiled line matcher plus its raw, unexpanded template body.
// Body lines may reference placeholders, automatic temp variables ($name),
// automatic labels (%<Group><Number>), and other macros, including the
// macro itself.
type Macro struct {
	Header string         // Header text the matcher was compiled from.
	Lines  []string       // Raw template lines, parsed only at expansion time.
	Params map[string]int // Placeholder name to first capture position.

	pattern *regexp.Regexp
	order   []string // Placeholder name at each capture position.
}

var (
	paramRe       = regexp.MustCompile(`\{(\w+)\}`)
	quotedParamRe = regexp.MustCompile(`\\\{(\w+)\\\}`)
	wordRe        = regexp.MustCompile(`\w+`)
)

// CompileMacro compiles a macro header into a line matcher. Literal header
// text matches exactly, so macro syntax such as arithmetic operators is not
// interpreted as pattern syntax; each {name} placeholder captures one
// alphanumeric/underscore token; the match is anchored to the whole line.
func CompileMacro(header string) (m *Macro) {
	pattern := quotedParamRe.ReplaceAllString(regexp.QuoteMeta(header), `(\w+)`)

	m = &Macro{
		Header:  header,
		Params:  map[string]int{},
		pattern: regexp.MustCompile(`^` + pattern + `$`),
	}

	for _, caps := range paramRe.FindAllStringSubmatch(header, -1) {
		name := caps[1]
		if _, seen := m.Params[name]; !seen {
			m.Params[name] = len(m.order)
		}
		m.order = append(m.order, name)
	}

	return
}

// Match matches a whole line against the macro header, returning the
// captured invocation text per placeholder name. A placeholder name
// repeated in the header must capture identical text at every position.
func (m *Macro) Match(line string) (subs map[string]string, ok bool) {
	caps := m.pattern.FindStringSubmatch(line)
	if caps == nil {
		return
	}

	subs = make(map[string]string, len(m.Params))
	for n, name := range m.order {
		text := caps[n+1]
		if prev, seen := subs[name]; seen && prev != text {
			return nil, false
		}
		subs[name] = text
	}

	ok = true
	return
}

// substituteWords replaces, in a single pass, every whole token of line
// that names a placeholder with its captured text.
func substituteWords(line string, subs map[string]string) string {
	return wordRe.ReplaceAllStringFunc(line, func(word string) string {
		if text, ok := subs[word]; ok {
			return text
		}
		return word
	})
}
