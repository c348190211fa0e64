package chat

import (
	"fmt"
	"hash/fnv"
)

// ChartNamespace derives the widget key namespace for a SQL block from the
// statement text. Equal statements share chart pickers across re-renders;
// distinct statements get their own. FNV-64a is enough here, the keys only
// need to be stable and well spread, not tamper resistant.
func ChartNamespace(statement string) string {
	h := fnv.New64a()
	h.Write([]byte(statement))
	return fmt.Sprintf("chart_%016x", h.Sum64())
}
