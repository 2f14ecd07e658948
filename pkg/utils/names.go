package utils

import (
	"sort"
	"strings"

	"github.com/mozillazg/go-pinyin"
)

// NameSortKey returns a romanized, lowercased sort key for an employee
// name so Chinese names order predictably alongside Latin ones
func NameSortKey(name string) string {
	var b strings.Builder
	for _, r := range name {
		if r < 0x80 {
			b.WriteRune(r)
			continue
		}
		romanized := pinyin.LazyConvert(string(r), nil)
		if len(romanized) > 0 {
			b.WriteString(romanized[0])
		} else {
			b.WriteRune(r)
		}
	}
	return strings.ToLower(b.String())
}

// SortNames sorts names in place by romanized key, raw name as tie-break
func SortNames(names []string) {
	sort.Slice(names, func(a, b int) bool {
		ka, kb := NameSortKey(names[a]), NameSortKey(names[b])
		if ka != kb {
			return ka < kb
		}
		return names[a] < names[b]
	})
}
