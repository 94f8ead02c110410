package recycler

import (
	"testing"

	"recycleit/internal/types"
)

func TestClassifier_Classify(t *testing.T) {
	tests := []struct {
		name   string
		tags   map[string]string
		want   types.Category
		wantOK bool
	}{
		{"ewaste", map[string]string{"recycling:ewaste": "yes"}, types.CategoryEWaste, true},
		{"electronics", map[string]string{"recycling:electronics": "yes"}, types.CategoryEWaste, true},
		{"electrical", map[string]string{"recycling:electrical": "yes"}, types.CategoryEWaste, true},
		{"electrical appliances", map[string]string{"recycling:electrical_appliances": "yes"}, types.CategoryEWaste, true},
		{"amenity recycling", map[string]string{"amenity": "recycling"}, types.CategoryEWaste, true},
		{"recycling container", map[string]string{"recycling_type": "container"}, types.CategoryEWaste, true},
		{"amenity recycling with extra tags", map[string]string{"amenity": "recycling", "name": "Green Center"}, types.CategoryEWaste, true},
		{"bakery", map[string]string{"shop": "bakery"}, "", false},
		{"ewaste no", map[string]string{"recycling:ewaste": "no"}, "", false},
		{"case mismatch value", map[string]string{"recycling:ewaste": "Yes"}, "", false},
		{"case mismatch key", map[string]string{"Amenity": "recycling"}, "", false},
		{"partial value", map[string]string{"amenity": "recycling_centre"}, "", false},
		{"recycling centre type", map[string]string{"recycling_type": "centre"}, "", false},
		{"empty", map[string]string{}, "", false},
		{"nil", nil, "", false},
	}

	c := NewClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := c.Classify(tt.tags)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Classify(%v) = (%q, %v), want (%q, %v)", tt.tags, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestClassifier_CustomRules(t *testing.T) {
	c := NewClassifier(
		Rule{Key: "recycling:ewaste", Value: "yes", Category: types.CategoryEWaste},
		Rule{Key: "shop", Value: "electronics", Category: types.CategoryElectronics},
		Rule{Key: "amenity", Value: "recycling", Category: types.CategoryGeneralRecycling},
	)

	tests := []struct {
		name string
		tags map[string]string
		want types.Category
	}{
		{"electronics shop", map[string]string{"shop": "electronics"}, types.CategoryElectronics},
		{"general recycling", map[string]string{"amenity": "recycling"}, types.CategoryGeneralRecycling},
		{"first rule wins", map[string]string{"amenity": "recycling", "recycling:ewaste": "yes"}, types.CategoryEWaste},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := c.Classify(tt.tags)
			if !ok || got != tt.want {
				t.Errorf("Classify(%v) = (%q, %v), want (%q, true)", tt.tags, got, ok, tt.want)
			}
		})
	}
}

func TestClassifier_Predicates(t *testing.T) {
	preds := NewClassifier().Predicates()
	if len(preds) != len(DefaultRules) {
		t.Fatalf("Predicates() returned %d, want %d", len(preds), len(DefaultRules))
	}
	for i, r := range DefaultRules {
		if preds[i].Key != r.Key || preds[i].Value != r.Value {
			t.Errorf("Predicates()[%d] = %+v, want %s=%s", i, preds[i], r.Key, r.Value)
		}
	}

	dup := NewClassifier(
		Rule{Key: "amenity", Value: "recycling", Category: types.CategoryEWaste},
		Rule{Key: "amenity", Value: "recycling", Category: types.CategoryGeneralRecycling},
	)
	if n := len(dup.Predicates()); n != 1 {
		t.Errorf("Predicates() with duplicate rules returned %d, want 1", n)
	}
}
