package lint

import (
	"regexp"
	"strconv"
)

// Properties is the string-keyed configuration map a rule is constructed
// from, matching checkstyle property semantics: every value arrives as a
// string and the rule parses it. Unknown keys are ignored for forward
// compatibility; malformed values fall back to the rule's documented
// default instead of erroring.
type Properties map[string]string

// Bool returns the key parsed as a boolean, or def when absent or
// unparsable. Only "true" and "false" are recognized.
func (p Properties) Bool(key string, def bool) bool {
	switch p[key] {
	case "true":
		return true
	case "false":
		return false
	default:
		return def
	}
}

// Int returns the key parsed as an integer, or def when absent or
// unparsable.
func (p Properties) Int(key string, def int) int {
	raw, ok := p[key]
	if !ok {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

// String returns the raw value, or def when absent.
func (p Properties) String(key, def string) string {
	if raw, ok := p[key]; ok {
		return raw
	}
	return def
}

// Pattern compiles the key as a regular expression, falling back to def
// (which must compile) when the key is absent or does not compile.
// The returned string is the pattern actually in effect, for messages.
func (p Properties) Pattern(key, def string) (*regexp.Regexp, string) {
	raw, ok := p[key]
	if ok {
		if re, err := regexp.Compile(raw); err == nil {
			return re, raw
		}
	}
	return regexp.MustCompile(def), def
}
