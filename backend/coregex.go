package backend

import "github.com/coregx/coregex"

// coregexMatcher adds template expansion to *coregex.Regex.
type coregexMatcher struct {
	*coregex.Regex
}

// Expand appends template to dst and returns the result; during the
// append, it replaces $0 through $9 with the corresponding submatch of src
// described by match. "$$" is a literal dollar sign. Any other "$" sequence,
// including "${name}", is copied literally.
//
// These are the expansion rules coregex applies in ReplaceAll, so replacing
// match by match with Expand yields the same text as ReplaceAll.
func (m coregexMatcher) Expand(dst []byte, template []byte, src []byte, match []int) []byte {
	i := 0
	for i < len(template) {
		if template[i] != '$' || i+1 >= len(template) {
			dst = append(dst, template[i])
			i++
			continue
		}

		next := template[i+1]
		switch {
		case next >= '0' && next <= '9':
			g := int(next-'0') * 2
			if g+1 < len(match) && match[g] >= 0 {
				dst = append(dst, src[match[g]:match[g+1]]...)
			}
			i += 2
		case next == '$':
			dst = append(dst, '$')
			i += 2
		default:
			dst = append(dst, '$')
			i++
		}
	}
	return dst
}

// ExpandString is like Expand but the template and source are strings.
func (m coregexMatcher) ExpandString(dst []byte, template string, src string, match []int) []byte {
	return m.Expand(dst, []byte(template), []byte(src), match)
}
