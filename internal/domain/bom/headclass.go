package bom

import "strings"

// ComponentKey tags BOM entries pulled in as sub-parts of a variant item
// rather than matched by name.
const ComponentKey = "component"

// HeadClassOf derives the pump-head variant key of an item from its name.
// The match is a case-insensitive substring test against the configured
// head classes ("30M", "50M", ...), taken in order so classification stays
// deterministic when a name could match more than one class. Items whose
// name matches no class are common.
func HeadClassOf(name string, classes []string) (string, bool) {
	upper := strings.ToUpper(name)
	for _, class := range classes {
		if class == "" {
			continue
		}
		if strings.Contains(upper, strings.ToUpper(class)) {
			return class, true
		}
	}
	return "", false
}
