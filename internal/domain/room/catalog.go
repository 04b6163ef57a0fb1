package room

// Entry describes one room category and its flat nightly rate.
type Entry struct {
	Key         string
	Label       string
	Rate        float64
	Description string
	Features    []string
}

// Catalog is a read-only set of room categories in display order.
type Catalog struct {
	entries []Entry
	byKey   map[string]int
}

var defaultEntries = []Entry{
	{
		Key:         "single",
		Label:       "Single Room",
		Rate:        5000,
		Description: "Perfect for solo travelers",
		Features:    []string{"1 King Bed", "City View", "Free Wi-Fi"},
	},
	{
		Key:         "double",
		Label:       "Double Room",
		Rate:        8000,
		Description: "Ideal for couples",
		Features:    []string{"1 Queen Bed", "Sea View", "Mini Bar"},
	},
	{
		Key:         "suite",
		Label:       "Suite",
		Rate:        12000,
		Description: "Spacious luxury suite",
		Features:    []string{"Living Area", "Panoramic View", "Jacuzzi"},
	},
	{
		Key:         "deluxe",
		Label:       "Deluxe Suite",
		Rate:        15000,
		Description: "Premium experience",
		Features:    []string{"2 Bedrooms", "Private Pool", "Butler Service"},
	},
}

var defaultCatalog = New(defaultEntries)

// Default returns the resort's static room catalog.
func Default() Catalog { return defaultCatalog }

// New builds a catalog from entries. Later duplicates of a key are ignored.
func New(entries []Entry) Catalog {
	c := Catalog{byKey: make(map[string]int, len(entries))}
	for _, e := range entries {
		if _, dup := c.byKey[e.Key]; dup {
			continue
		}
		c.byKey[e.Key] = len(c.entries)
		c.entries = append(c.entries, clone(e))
	}
	return c
}

// Lookup returns the entry for key. ok is false when the key is unknown.
func (c Catalog) Lookup(key string) (Entry, bool) {
	i, ok := c.byKey[key]
	if !ok {
		return Entry{}, false
	}
	return clone(c.entries[i]), true
}

// Has reports whether key names a room category.
func (c Catalog) Has(key string) bool {
	_, ok := c.byKey[key]
	return ok
}

func (c Catalog) All() []Entry {
	out := make([]Entry, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, clone(e))
	}
	return out
}

// Label returns the display label for key, or key itself when unknown.
func (c Catalog) Label(key string) string {
	if e, ok := c.Lookup(key); ok {
		return e.Label
	}
	return key
}

func clone(e Entry) Entry {
	e.Features = append([]string(nil), e.Features...)
	return e
}
