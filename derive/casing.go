package derive

import (
	"strings"
	"unicode"
)

// OutputName is the default file name for the generated code of structs:
// <type>_lerp.go for a single type, lerp_gen.go otherwise.
func OutputName(structs []*Struct) string {
	if len(structs) == 1 {
		return ToSnakeCase(structs[0].Name) + "_lerp.go"
	}
	return "lerp_gen.go"
}

// ToSnakeCase converts PascalCase or camelCase to snake_case.
// Acronyms stay together: "HTTPSConnection" becomes "https_connection".
func ToSnakeCase(s string) string {
	var result strings.Builder
	runes := []rune(s)

	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prevUpper := unicode.IsUpper(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if !prevUpper || nextLower {
				result.WriteRune('_')
			}
		}
		result.WriteRune(r)
	}

	return strings.ToLower(result.String())
}
