package stepexpr

import "strings"

// regexEscaper escapes the characters that are meaningful in regex syntax
// so that expression text matches literally.
var regexEscaper = strings.NewReplacer(
	`\`, `\\`,
	`^`, `\^`,
	`[`, `\[`,
	`(`, `\(`,
	`{`, `\{`,
	`$`, `\$`,
	`.`, `\.`,
	`|`, `\|`,
	`?`, `\?`,
	`*`, `\*`,
	`+`, `\+`,
	`}`, `\}`,
	`)`, `\)`,
	`]`, `\]`,
)

// escapeRegex returns text with every regex metacharacter backslash-escaped.
func escapeRegex(text string) string {
	return regexEscaper.Replace(text)
}
