package catalog

import (
	"encoding/json"
	"strings"
)

// Item is a single saree record after normalization.
type Item struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Subfolder string `json:"subfolder"`
	ImageURL  string `json:"imageUrl"`
}

// Subfolder groups items inside a category, e.g. "Kanjivaram / Bridal".
type Subfolder struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Items []Item `json:"items"`
}

// Category is a top-level grouping in the feed.
type Category struct {
	Name       string      `json:"name"`
	Slug       string      `json:"slug"`
	Subfolders []Subfolder `json:"subfolders"`
}

// Catalog is the normalized catalog tree.
type Catalog []Category

// Stats summarizes a catalog for the gallery header and the CLI.
type Stats struct {
	Categories int
	Subfolders int
	Items      int
}

// CountStats walks the tree once and counts its containers and items.
func CountStats(c Catalog) Stats {
	var s Stats
	s.Categories = len(c)
	for _, cat := range c {
		s.Subfolders += len(cat.Subfolders)
		for _, sub := range cat.Subfolders {
			s.Items += len(sub.Items)
		}
	}
	return s
}

// ItemByID finds an item anywhere in the catalog.
func (c Catalog) ItemByID(id string) (Item, bool) {
	for _, cat := range c {
		for _, sub := range cat.Subfolders {
			for _, it := range sub.Items {
				if it.ID == id {
					return it, true
				}
			}
		}
	}
	return Item{}, false
}

// SubfolderBySlug resolves a category/subfolder slug pair.
func (c Catalog) SubfolderBySlug(categorySlug, subfolderSlug string) (Category, Subfolder, bool) {
	for _, cat := range c {
		if cat.Slug != categorySlug {
			continue
		}
		for _, sub := range cat.Subfolders {
			if sub.Slug == subfolderSlug {
				return cat, sub, true
			}
		}
	}
	return Category{}, Subfolder{}, false
}

// rawCategory mirrors one element of the upstream feed array. The feed is
// inconsistent about field names, so every known alias is decoded and
// coalesced during normalization.
type rawCategory struct {
	Name       flexString     `json:"name"`
	Category   flexString     `json:"category"`
	Title      flexString     `json:"title"`
	Subfolders []rawSubfolder `json:"subfolders"`
	Folders    []rawSubfolder `json:"folders"`
}

type rawSubfolder struct {
	Name       flexString `json:"name"`
	FolderName flexString `json:"folderName"`
	Title      flexString `json:"title"`
	Items      []rawItem  `json:"items"`
	Images     []rawItem  `json:"images"`
}

type rawItem struct {
	ID       flexString `json:"id"`
	AltID    flexString `json:"_id"`
	Name     flexString `json:"name"`
	Title    flexString `json:"title"`
	ItemName flexString `json:"itemName"`
	Image    flexString `json:"image"`
	ImageURL flexString `json:"imageUrl"`
	Img      flexString `json:"img"`
	URL      flexString `json:"url"`
}

// flexString decodes JSON strings and numbers into a string. The feed emits
// numeric identifiers for some records and string identifiers for others.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*f = ""
		return nil
	}
	if len(s) > 0 && s[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*f = flexString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

func (f flexString) String() string { return string(f) }
