// Package catalog holds the material taxonomy used to validate listings and
// drive material search.
package catalog

// Catalog maps a category to its ordered subcategories. It is read-only once built.
type Catalog struct {
	order []string
	subs  map[string][]string
}

type entry struct {
	category      string
	subcategories []string
}

var defaultEntries = []entry{
	{"Concrete & Cement", []string{"Ready Mix", "Cement Bags", "Aggregates"}},
	{"Steel & Metals", []string{"Rebar", "Structural Steel", "Sheet Metal"}},
	{"Plumbing", []string{"PVC Pipes", "Copper Pipes", "Fittings", "Fixtures"}},
	{"Electrical", []string{"Wiring", "Conduit", "Panels", "Fixtures"}},
	{"Lumber & Wood", []string{"Plywood", "Dimensional Lumber", "Finishing Wood"}},
	{"Finishes", []string{"Paint", "Tiles", "Flooring", "Drywall"}},
	{"Tools & Equipment", []string{"Power Tools", "Hand Tools", "Safety Equipment"}},
}

var std = build(defaultEntries)

// Default returns the process-wide catalog.
func Default() *Catalog { return std }

func build(entries []entry) *Catalog {
	c := &Catalog{subs: make(map[string][]string, len(entries))}
	for _, e := range entries {
		c.order = append(c.order, e.category)
		c.subs[e.category] = append([]string(nil), e.subcategories...)
	}
	return c
}

// Categories returns category names in catalog order.
func (c *Catalog) Categories() []string {
	return append([]string(nil), c.order...)
}

// Subcategories returns the subcategories of category, or false if it is unknown.
func (c *Catalog) Subcategories(category string) ([]string, bool) {
	subs, ok := c.subs[category]
	if !ok {
		return nil, false
	}
	return append([]string(nil), subs...), true
}

func (c *Catalog) Has(category string) bool {
	_, ok := c.subs[category]
	return ok
}

// Contains reports whether subcategory belongs to category.
func (c *Catalog) Contains(category, subcategory string) bool {
	for _, s := range c.subs[category] {
		if s == subcategory {
			return true
		}
	}
	return false
}

// Entry is the serialisable form of one category.
type Entry struct {
	Category      string   `json:"category"`
	Subcategories []string `json:"subcategories"`
}

// Entries returns the whole taxonomy in order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, 0, len(c.order))
	for _, cat := range c.order {
		out = append(out, Entry{Category: cat, Subcategories: append([]string(nil), c.subs[cat]...)})
	}
	return out
}
