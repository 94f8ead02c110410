package overpass

import (
	"fmt"
	"strconv"
	"strings"
)

// serverTimeout is the [timeout:N] setting in seconds passed to Overpass.
const serverTimeout = 25

// TagPredicate matches nodes whose Key tag equals Value exactly
type TagPredicate struct {
	Key   string
	Value string
}

// BuildQuery returns an Overpass QL union selecting nodes within radiusMeters
// of (latitude, longitude) that match any of the predicates.
func BuildQuery(latitude, longitude float64, radiusMeters int, predicates []TagPredicate) string {
	lat := strconv.FormatFloat(latitude, 'f', -1, 64)
	lon := strconv.FormatFloat(longitude, 'f', -1, 64)

	var b strings.Builder
	fmt.Fprintf(&b, "[out:json][timeout:%d];\n(\n", serverTimeout)
	for _, p := range predicates {
		fmt.Fprintf(&b, "  node[%q=%q](around:%d,%s,%s);\n", p.Key, p.Value, radiusMeters, lat, lon)
	}
	b.WriteString(");\nout;")
	return b.String()
}
