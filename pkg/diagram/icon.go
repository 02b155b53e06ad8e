package diagram

// Icon references an icon from an icon font, e.g. Icon{Name: "fa-book", Type: "fa"}.
type Icon struct {
	Name string
	Type string
	// Version selects the textual form: "v1" (default) or "v2".
	// Any other value renders the padded form.
	Version string
}

// String renders the icon reference.
func (i Icon) String() string {
	switch i.Version {
	case "", "v1":
		return i.Type + " " + i.Name
	case "v2":
		return i.Type + ":" + i.Name
	}
	return " " + i.Type + ":" + i.Name + " "
}
