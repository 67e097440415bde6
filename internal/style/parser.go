package style

import (
	"fmt"
	"strings"
)

// Rule is a single CSS rule: one selector and its declarations (raw strings).
type Rule struct {
	Selector string            // ".panel" or "#modal"
	Props    map[string]string // "background" -> "#333"
}

// Stylesheet is an ordered list of rules; later rules override earlier ones.
type Stylesheet struct {
	Rules []Rule
}

// Parse reads a small CSS subset: ".class" and "#id" selectors (comma lists allowed) with
// "key: value;" blocks. Comments are stripped; blocks with other selectors are skipped.
func Parse(src string) (*Stylesheet, error) {
	sheet := &Stylesheet{}
	src = stripComments(src)
	for {
		src = strings.TrimSpace(src)
		if src == "" {
			return sheet, nil
		}
		open := strings.IndexByte(src, '{')
		if open < 0 {
			return nil, fmt.Errorf("css: trailing text %q", truncate(src))
		}
		end := strings.IndexByte(src[open:], '}')
		if end < 0 {
			return nil, fmt.Errorf("css: unclosed block after %q", truncate(src[:open]))
		}
		end += open
		props := parseDeclarations(src[open+1 : end])
		for _, sel := range strings.Split(src[:open], ",") {
			sel = strings.TrimSpace(sel)
			if len(sel) < 2 || (sel[0] != '.' && sel[0] != '#') {
				continue
			}
			sheet.Rules = append(sheet.Rules, Rule{Selector: sel, Props: props})
		}
		src = src[end+1:]
	}
}

// Match merges the properties of every rule selecting a node with the given class or id.
func (s *Stylesheet) Match(class, id string) map[string]string {
	merged := make(map[string]string)
	if s == nil {
		return merged
	}
	for _, r := range s.Rules {
		name := r.Selector[1:]
		if (r.Selector[0] == '.' && name == class && class != "") || (r.Selector[0] == '#' && name == id && id != "") {
			for k, v := range r.Props {
				merged[k] = v
			}
		}
	}
	return merged
}

func stripComments(s string) string {
	var b strings.Builder
	for {
		i := strings.Index(s, "/*")
		if i < 0 {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:i])
		j := strings.Index(s[i+2:], "*/")
		if j < 0 {
			return b.String()
		}
		s = s[i+2+j+2:]
	}
}

func parseDeclarations(body string) map[string]string {
	props := make(map[string]string)
	for _, part := range strings.Split(body, ";") {
		k, v, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		k = strings.TrimSpace(k)
		if k != "" {
			props[k] = strings.TrimSpace(v)
		}
	}
	return props
}

func truncate(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 20 {
		return s[:20] + "..."
	}
	return s
}
