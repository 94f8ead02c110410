package recycler

import (
	"recycleit/internal/providers/overpass"
	"recycleit/internal/types"
)

// Rule assigns Category to any node whose Key tag equals Value exactly
type Rule struct {
	Key      string
	Value    string
	Category types.Category
}

// DefaultRules are the tag combinations OSM mappers use for e-waste drop-off points.
var DefaultRules = []Rule{
	{Key: "recycling:ewaste", Value: "yes", Category: types.CategoryEWaste},
	{Key: "recycling:electronics", Value: "yes", Category: types.CategoryEWaste},
	{Key: "recycling:electrical", Value: "yes", Category: types.CategoryEWaste},
	{Key: "recycling:electrical_appliances", Value: "yes", Category: types.CategoryEWaste},
	{Key: "amenity", Value: "recycling", Category: types.CategoryEWaste},
	{Key: "recycling_type", Value: "container", Category: types.CategoryEWaste},
}

// Classifier maps tag sets to categories using an ordered rule table.
// The first matching rule wins.
type Classifier struct {
	rules []Rule
}

// NewClassifier builds a classifier over rules, or DefaultRules when none are given
func NewClassifier(rules ...Rule) *Classifier {
	if len(rules) == 0 {
		rules = DefaultRules
	}
	return &Classifier{rules: append([]Rule(nil), rules...)}
}

// Classify returns the category of the first matching rule, or false if none match
func (c *Classifier) Classify(tags map[string]string) (types.Category, bool) {
	for _, r := range c.rules {
		if v, ok := tags[r.Key]; ok && v == r.Value {
			return r.Category, true
		}
	}
	return "", false
}

// Predicates returns the rule table as Overpass tag predicates, deduplicated by key and value
func (c *Classifier) Predicates() []overpass.TagPredicate {
	seen := make(map[overpass.TagPredicate]struct{}, len(c.rules))
	preds := make([]overpass.TagPredicate, 0, len(c.rules))
	for _, r := range c.rules {
		p := overpass.TagPredicate{Key: r.Key, Value: r.Value}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		preds = append(preds, p)
	}
	return preds
}
