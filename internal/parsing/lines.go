package parsing

// FeatureLines returns the 1-based line on which each element of the
// document's feature array starts. The feature array is the top-level array,
// or the "features" member of the top-level object; a top-level Feature object
// yields its own starting line. Content is assumed to be valid JSON.
func FeatureLines(content []byte) []int {
	s := lineScanner{line: 1}
	return s.scan(content)
}

type lineScanner struct {
	line  int
	depth int

	inString bool
	escaped  bool
	// key collects string bytes at depth 1, the root object's member names
	key     []byte
	lastKey string

	targetDepth int
	expectValue bool
	lines       []int
}

func (s *lineScanner) scan(content []byte) []int {
	rootLine := 0
	rootIsObject := false

	for _, c := range content {
		if c == '\n' {
			s.line++
		}

		if s.inString {
			s.string(c)
			continue
		}

		if s.expectValue && s.depth == s.targetDepth && !isSpace(c) && c != ',' && c != ']' {
			s.lines = append(s.lines, s.line)
			s.expectValue = false
		}

		switch c {
		case '"':
			s.inString = true
			if s.depth == 1 {
				s.key = s.key[:0]
			}
		case '{', '[':
			if s.depth == 0 {
				rootLine = s.line
				rootIsObject = c == '{'
				if c == '[' {
					s.targetDepth = 1
					s.expectValue = true
				}
			} else if c == '[' && s.depth == 1 && rootIsObject && s.lastKey == "features" && s.targetDepth == 0 {
				s.targetDepth = 2
				s.expectValue = true
			}
			s.depth++
		case '}', ']':
			if s.depth == s.targetDepth && c == ']' {
				s.expectValue = false
				s.targetDepth = -1
			}
			s.depth--
		case ',':
			if s.depth == s.targetDepth {
				s.expectValue = true
			}
		}
	}

	if s.lines == nil && rootIsObject && s.targetDepth == 0 && rootLine > 0 {
		return []int{rootLine}
	}
	return s.lines
}

func (s *lineScanner) string(c byte) {
	switch {
	case s.escaped:
		s.escaped = false
	case c == '\\':
		s.escaped = true
	case c == '"':
		s.inString = false
		if s.depth == 1 {
			s.lastKey = string(s.key)
		}
		return
	}
	if s.depth == 1 {
		s.key = append(s.key, c)
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
