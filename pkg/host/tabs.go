package host

// Tab is one entry of the settings screen tab bar.
type Tab struct {
	Slug string
	Name string
}

// Tabs is the ordered tab registry value passed through FilterSettingsTabs.
type Tabs []Tab

// Set adds or renames a tab, keeping the position of an existing slug.
func (t Tabs) Set(slug, name string) Tabs {
	for i := range t {
		if t[i].Slug == slug {
			out := append(Tabs(nil), t...)
			out[i].Name = name
			return out
		}
	}
	out := make(Tabs, 0, len(t)+1)
	out = append(out, t...)
	return append(out, Tab{Slug: slug, Name: name})
}

// Get returns the display name for slug.
func (t Tabs) Get(slug string) (string, bool) {
	for _, tab := range t {
		if tab.Slug == slug {
			return tab.Name, true
		}
	}
	return "", false
}

// Slugs returns the tab slugs in order.
func (t Tabs) Slugs() []string {
	out := make([]string, len(t))
	for i, tab := range t {
		out[i] = tab.Slug
	}
	return out
}
