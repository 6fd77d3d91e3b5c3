package chess

// SevenTagRoster is the list of mandatory PGN tags, in output order.
var SevenTagRoster = []string{
	"Event",
	"Site",
	"Date",
	"Round",
	"White",
	"Black",
	"Result",
}

// IsSevenTagRosterTag returns true if the tag is part of the Seven Tag Roster.
func IsSevenTagRosterTag(name string) bool {
	for _, tag := range SevenTagRoster {
		if tag == name {
			return true
		}
	}
	return false
}

// Tag is a single PGN tag pair.
type Tag struct {
	Name  string
	Value string
}

// Tags is an ordered list of tag pairs. Order is preserved from input.
type Tags []Tag

// Get returns a tag value, or empty string if not present.
func (t Tags) Get(name string) string {
	for _, tag := range t {
		if tag.Name == name {
			return tag.Value
		}
	}
	return ""
}

// Has returns true if the tag is present.
func (t Tags) Has(name string) bool {
	for _, tag := range t {
		if tag.Name == name {
			return true
		}
	}
	return false
}

// Set replaces a tag value or appends a new tag.
func (t *Tags) Set(name, value string) {
	for i := range *t {
		if (*t)[i].Name == name {
			(*t)[i].Value = value
			return
		}
	}
	*t = append(*t, Tag{Name: name, Value: value})
}
