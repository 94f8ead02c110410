package recycler

const (
	operatorNameSuffix = " - E-Waste Recycling"
	genericName        = "E-Waste Recycling Center"
)

// ResolveName picks a display name: the name tag, then the operator, then a generic label.
func ResolveName(tags map[string]string) string {
	if name := tags["name"]; name != "" {
		return name
	}
	if operator := tags["operator"]; operator != "" {
		return operator + operatorNameSuffix
	}
	return genericName
}
