package sequencescape

// ReturnField maps an output key to its address in the search response
type ReturnField struct {
	Key  string
	Path Path
}

// Endpoint describes a named Sequencescape search and the part of its response we keep
type Endpoint struct {
	// Name is the search name as registered in Sequencescape
	Name string
	// Parameter is the query attribute posted to the search
	Parameter string
	// Root wraps the posted query. Empty uses the singular of the searches collection.
	Root    string
	Returns []ReturnField
}

// SwipecardSearch finds a user from the code on their swipecard
var SwipecardSearch = Endpoint{
	Name:      "Find user by swipecard code",
	Parameter: "swipecard_code",
	Root:      "user",
	Returns: []ReturnField{
		{Key: "uuid", Path: Path{"user", "uuid"}},
		{Key: "login", Path: Path{"user", "login"}},
	},
}

// PlateBarcodeSearch finds a plate from its barcode
var PlateBarcodeSearch = Endpoint{
	Name:      "Find assets by barcode",
	Parameter: "barcode",
	Root:      "plate",
	Returns: []ReturnField{
		{Key: "uuid", Path: Path{"plate", "uuid"}},
		{Key: "name", Path: Path{"plate", "name"}},
		{Key: "external_type", Path: Path{"plate", "plate_purpose", "name"}},
	},
}

// Result holds every key declared by the endpoint. Keys whose path was missing hold nil.
type Result map[string]any

// String returns the value of key when it is a string
func (r Result) String(key string) string {
	s, _ := r[key].(string)
	return s
}

// Found reports whether at least one declared key resolved to a value
func (r Result) Found() bool {
	for _, v := range r {
		if v != nil {
			return true
		}
	}
	return false
}
