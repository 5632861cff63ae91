package report

import (
	"strings"

	"github.com/trashtocash/admin-api/pkg/model"
	"github.com/trashtocash/admin-api/pkg/util"
)

// Material key prefixes, checked in this order. An item counts toward the
// first category it matches.
const (
	prefixGlass   = "glass"
	prefixPlastic = "plastic"
	prefixCans    = "cans"
)

// ParseItems sums the collected items of a transaction per material. The value
// comes straight from the document, so anything that is not a list yields zero
// totals and malformed entries are skipped.
func ParseItems(v any) model.MaterialTotals {
	var totals model.MaterialTotals
	for _, entry := range itemEntries(v) {
		count, _ := util.ToInt(entry["count"])
		if count <= 0 {
			continue
		}
		key, _ := entry["itemKey"].(string)
		key = strings.ToLower(key)
		switch {
		case key == "":
		case strings.HasPrefix(key, prefixGlass):
			totals.Glass += count
		case strings.HasPrefix(key, prefixPlastic):
			totals.Plastic += count
		case strings.HasPrefix(key, prefixCans):
			totals.Cans += count
		}
	}
	return totals
}

func itemEntries(v any) []map[string]any {
	switch list := v.(type) {
	case []map[string]any:
		return list
	case []any:
		entries := make([]map[string]any, 0, len(list))
		for _, raw := range list {
			if m, ok := raw.(map[string]any); ok {
				entries = append(entries, m)
			}
		}
		return entries
	}
	return nil
}
