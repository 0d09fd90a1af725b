package mock

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gogpu/glmesh/glcore"
	"github.com/gogpu/gputypes"
)

var (
	mainRE   = regexp.MustCompile(`\bvoid\s+main\s*\(\s*(void)?\s*\)`)
	outVarRE = regexp.MustCompile(`(?m)^\s*(?:layout\s*\([^)]*\)\s*)?(?:(?:flat|smooth|noperspective)\s+)?out\s+\w+\s+(\w+)\s*;`)
	inVarRE  = regexp.MustCompile(`(?m)^\s*(?:layout\s*\([^)]*\)\s*)?(?:(?:flat|smooth|noperspective)\s+)?in\s+\w+\s+(\w+)\s*;`)

	// lines that continue on the next line without a terminator
	keywordRE  = regexp.MustCompile(`^(?:}\s*)?(?:else|do)$`)
	controlRE  = regexp.MustCompile(`^(?:}\s*)?(?:else\s+)?(?:if|for|while|switch)\s*\(.*\)$`)
	typeHeadRE = regexp.MustCompile(`^(?:layout\s*\([^)]*\)\s*)?(?:struct|uniform|buffer|in|out)\s+\w+$`)
)

// statement continuations: a line ending in one of these is not complete.
var continuations = []string{";", "{", "}", ",", "(", "[", "&&", "||", "+", "-", "*", "/", "=", "?", ":", "\\"}

// CheckGLSL is a lightweight GLSL front end. It reports the errors a
// driver compiler reports for the common mistakes: a missing #version
// directive, unbalanced braces and unterminated statements. Control
// headers, else/do and block heads such as "struct Light" may continue on
// the next line. Messages use
// the "0:LINE(COL): error: ..." layout of Mesa's compiler.
func CheckGLSL(stage gputypes.ShaderStage, source string) glcore.Status {
	lines := strings.Split(stripComments(source), "\n")

	first := nextCode(lines, 0)
	if first < 0 {
		return fail(1, 1, "syntax error, unexpected end of file")
	}
	if !strings.HasPrefix(strings.TrimSpace(lines[first]), "#version") {
		return fail(first+1, 1, "GLSL 1.10 is not supported. Supported versions are: 1.40, 1.50, and 3.30")
	}

	depth := 0
	for i, raw := range lines {
		t := strings.TrimSpace(raw)
		if t == "" || strings.HasPrefix(t, "#") {
			continue
		}
		for col, r := range raw {
			switch r {
			case '{':
				depth++
			case '}':
				depth--
				if depth < 0 {
					return fail(i+1, col+1, "syntax error, unexpected '}'")
				}
			}
		}
		if terminated(t) || keywordRE.MatchString(t) || controlRE.MatchString(t) {
			continue
		}
		next := nextCode(lines, i+1)
		opensBlock := next >= 0 && strings.HasPrefix(strings.TrimSpace(lines[next]), "{")
		if opensBlock && (strings.HasSuffix(t, ")") || typeHeadRE.MatchString(t)) {
			continue
		}
		if next < 0 {
			return fail(len(lines), 1, "syntax error, unexpected end of file")
		}
		tok := firstToken(lines[next])
		col := strings.Index(lines[next], tok) + 1
		return fail(next+1, col, fmt.Sprintf("syntax error, unexpected %s, expecting ',' or ';'", describeToken(tok)))
	}
	if depth != 0 {
		return fail(len(lines), 1, "syntax error, unexpected end of file")
	}
	return glcore.Status{OK: true}
}

// CheckLink checks a vertex/fragment pair: both stages need a main
// function and every fragment input needs a vertex output of the same name.
func CheckLink(vertex, fragment string) glcore.Status {
	vertex, fragment = stripComments(vertex), stripComments(fragment)
	if !mainRE.MatchString(vertex) {
		return glcore.Status{Log: "error: vertex shader lacks `main'"}
	}
	if !mainRE.MatchString(fragment) {
		return glcore.Status{Log: "error: fragment shader lacks `main'"}
	}
	outputs := make(map[string]bool)
	for _, m := range outVarRE.FindAllStringSubmatch(vertex, -1) {
		outputs[m[1]] = true
	}
	for _, m := range inVarRE.FindAllStringSubmatch(fragment, -1) {
		if !outputs[m[1]] {
			return glcore.Status{Log: fmt.Sprintf("error: fragment shader input `%s' has no matching output in the previous stage", m[1])}
		}
	}
	return glcore.Status{OK: true}
}

func fail(line, col int, msg string) glcore.Status {
	return glcore.Status{Log: fmt.Sprintf("0:%d(%d): error: %s\n", line, col, msg)}
}

func terminated(line string) bool {
	for _, c := range continuations {
		if strings.HasSuffix(line, c) {
			return true
		}
	}
	return false
}

// nextCode returns the index of the first line at or after i that holds
// code, or -1.
func nextCode(lines []string, i int) int {
	for ; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) != "" {
			return i
		}
	}
	return -1
}

func firstToken(line string) string {
	t := strings.TrimSpace(line)
	end := strings.IndexFunc(t, func(r rune) bool {
		return !(r == '_' || r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z')
	})
	switch {
	case end == 0:
		return t[:1]
	case end < 0:
		return t
	default:
		return t[:end]
	}
}

func describeToken(tok string) string {
	if len(tok) == 1 && !(tok[0] == '_' || tok[0] >= 'a' && tok[0] <= 'z' || tok[0] >= 'A' && tok[0] <= 'Z') {
		return "'" + tok + "'"
	}
	return "NEW_IDENTIFIER"
}

// stripComments blanks // and /* */ comments, keeping line breaks so line
// numbers stay stable.
func stripComments(src string) string {
	var b strings.Builder
	b.Grow(len(src))
	for i := 0; i < len(src); i++ {
		switch {
		case strings.HasPrefix(src[i:], "//"):
			for i < len(src) && src[i] != '\n' {
				i++
			}
			if i < len(src) {
				b.WriteByte('\n')
			}
		case strings.HasPrefix(src[i:], "/*"):
			i += 2
			for i < len(src) && !strings.HasPrefix(src[i:], "*/") {
				if src[i] == '\n' {
					b.WriteByte('\n')
				}
				i++
			}
			i++
		default:
			b.WriteByte(src[i])
		}
	}
	return b.String()
}
