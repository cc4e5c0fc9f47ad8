package oloc

import (
	"strings"

	"github.com/oloc-go/oloc/internal/config"
)

// reservedPrefix marks a symbol the caller is explicitly declaring as
// reserved, bypassing the substring scan entirely.
const reservedPrefix = "<--reserved"

// IsReserved reports whether symbol names a reserved keyword: either it
// carries the explicit reservedPrefix, or any function-alias or
// symbol-alias spelling from the tables appears in it as a substring. The
// substring check is deliberately over-broad, accepting this
// over-approximation rather than tokenizing the candidate.
func IsReserved(symbol string, opts ...Option) bool {
	if strings.HasPrefix(symbol, reservedPrefix) {
		return true
	}
	o := resolve(opts)
	return isReserved(symbol, o.tables)
}

func isReserved(symbol string, tables config.Tables) bool {
	for _, kw := range tables.ReservedKeywords() {
		if kw != "" && strings.Contains(symbol, kw) {
			return true
		}
	}
	return false
}
