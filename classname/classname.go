// Package classname merges conditional utility-class fragments into a single
// deduplicated string. When two classes target the same utility group (for
// example "p-2" and "p-4"), the later one wins.
package classname

import "strings"

// If returns class when cond is true, otherwise the empty string.
// Empty fragments are skipped by Merge.
func If(cond bool, class string) string {
	if cond {
		return class
	}
	return ""
}

// IfElse returns whenTrue when cond is true, otherwise whenFalse.
func IfElse(cond bool, whenTrue, whenFalse string) string {
	if cond {
		return whenTrue
	}
	return whenFalse
}

// Merge combines any number of class fragments into one string.
// Fragments may contain multiple whitespace-separated classes. Later classes
// in the same conflict group replace earlier ones; order of first occurrence
// is otherwise preserved.
func Merge(fragments ...string) string {
	var classes []string
	byGroup := make(map[string]int) // group key -> index into classes

	for _, fragment := range fragments {
		for _, class := range strings.Fields(fragment) {
			key := groupKey(class)
			if idx, ok := byGroup[key]; ok {
				classes[idx] = class
				continue
			}
			byGroup[key] = len(classes)
			classes = append(classes, class)
		}
	}

	return strings.Join(classes, " ")
}

// Utility prefixes whose classes conflict with each other regardless of value.
// The first matching (longest) prefix defines the conflict group.
var utilityGroups = []string{
	"px", "py", "pt", "pr", "pb", "pl", "p",
	"mx", "my", "mt", "mr", "mb", "ml", "m",
	"min-w", "max-w", "w",
	"min-h", "max-h", "h",
	"top", "right", "bottom", "left", "inset",
	"gap-x", "gap-y", "gap",
	"rounded",
	"bg",
	"font",
	"leading",
	"tracking",
	"items",
	"justify",
	"self",
	"z",
	"opacity",
	"overflow",
	"shadow",
	"cursor",
	"select",
	"align",
	"flex",
	"grid-cols", "grid-rows",
	"col-span", "row-span",
	"border-x", "border-y", "border-t", "border-r", "border-b", "border-l", "border",
}

// Sizes that make "text-<value>" a font-size utility rather than a color.
var textSizes = map[string]bool{
	"xs": true, "sm": true, "base": true, "lg": true, "xl": true,
	"2xl": true, "3xl": true, "4xl": true, "5xl": true, "6xl": true,
	"7xl": true, "8xl": true, "9xl": true,
}

// Alignment values for "text-<value>".
var textAlignments = map[string]bool{
	"left": true, "center": true, "right": true, "justify": true,
	"start": true, "end": true,
}

// groupKey maps a class to its conflict-group key. Classes with no known
// utility prefix conflict only with an identical class (plain dedup).
func groupKey(class string) string {
	base := class
	if i := strings.IndexByte(base, ':'); i >= 0 {
		// Variant prefix such as "hover:" scopes the group.
		prefix := base[:i+1]
		return prefix + groupKey(base[i+1:])
	}

	// "text-" splits into size, alignment and color groups by value.
	if value, ok := strings.CutPrefix(base, "text-"); ok {
		switch {
		case textSizes[value]:
			return "text/size"
		case textAlignments[value]:
			return "text/align"
		default:
			return "text/color"
		}
	}

	for _, prefix := range utilityGroups {
		if base == prefix {
			return prefix
		}
		if strings.HasPrefix(base, prefix+"-") {
			return prefix
		}
	}

	return "raw/" + base
}
