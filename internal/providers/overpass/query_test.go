package overpass

import (
	"strings"
	"testing"
)

var ewastePredicates = []TagPredicate{
	{Key: "recycling:ewaste", Value: "yes"},
	{Key: "recycling:electronics", Value: "yes"},
	{Key: "recycling:electrical", Value: "yes"},
	{Key: "recycling:electrical_appliances", Value: "yes"},
	{Key: "amenity", Value: "recycling"},
	{Key: "recycling_type", Value: "container"},
}

func TestBuildQuery(t *testing.T) {
	got := BuildQuery(19.076, 72.8777, 50000, ewastePredicates)

	if !strings.HasPrefix(got, "[out:json]") {
		t.Errorf("query should request JSON output, got:\n%s", got)
	}
	if !strings.HasSuffix(got, "out;") {
		t.Errorf("query should end with out statement, got:\n%s", got)
	}

	wantClauses := []string{
		`node["recycling:ewaste"="yes"](around:50000,19.076,72.8777);`,
		`node["recycling:electronics"="yes"](around:50000,19.076,72.8777);`,
		`node["recycling:electrical"="yes"](around:50000,19.076,72.8777);`,
		`node["recycling:electrical_appliances"="yes"](around:50000,19.076,72.8777);`,
		`node["amenity"="recycling"](around:50000,19.076,72.8777);`,
		`node["recycling_type"="container"](around:50000,19.076,72.8777);`,
	}
	for _, clause := range wantClauses {
		if !strings.Contains(got, clause) {
			t.Errorf("query missing clause %s\nquery:\n%s", clause, got)
		}
	}

	if n := strings.Count(got, "node["); n != len(ewastePredicates) {
		t.Errorf("query has %d node clauses, want %d", n, len(ewastePredicates))
	}
}

func TestBuildQuery_Radius(t *testing.T) {
	got := BuildQuery(-33.8688, 151.2093, 100000, ewastePredicates[:1])
	want := `node["recycling:ewaste"="yes"](around:100000,-33.8688,151.2093);`
	if !strings.Contains(got, want) {
		t.Errorf("BuildQuery() = %s, want clause %s", got, want)
	}
}

func TestBuildQuery_NoPredicates(t *testing.T) {
	got := BuildQuery(0, 0, 1000, nil)
	if strings.Contains(got, "node[") {
		t.Errorf("expected no node clauses, got:\n%s", got)
	}
}
