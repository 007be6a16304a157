package catalog

import (
	"path"
	"strings"
)

// Normalize reshapes the raw feed into the canonical catalog tree.
//
// The feed is heterogeneous: alternate field names, duplicated records,
// numeric-or-string identifiers, and items with no usable image. Normalize
// makes a single pass over each collection and produces a tree where:
//
//   - every item has an ID, a name, and an image URL
//   - item IDs are unique within their subfolder (first record wins)
//   - empty subfolders and empty categories are dropped
//   - feed order of categories, subfolders, and items is preserved
//
// The input is never mutated.
func Normalize(raw []rawCategory) Catalog {
	out := make(Catalog, 0, len(raw))
	for _, rc := range raw {
		catName := coalesce(rc.Name, rc.Category, rc.Title)
		if catName == "" {
			continue
		}

		subs := rc.Subfolders
		if len(subs) == 0 {
			subs = rc.Folders
		}

		cat := Category{Name: catName, Slug: Slugify(catName)}
		for _, rs := range subs {
			sub := normalizeSubfolder(catName, rs)
			if len(sub.Items) == 0 {
				continue
			}
			cat.Subfolders = append(cat.Subfolders, sub)
		}
		if len(cat.Subfolders) == 0 {
			continue
		}
		out = append(out, cat)
	}
	return out
}

func normalizeSubfolder(categoryName string, rs rawSubfolder) Subfolder {
	subName := coalesce(rs.Name, rs.FolderName, rs.Title)
	if subName == "" {
		subName = "General"
	}

	items := rs.Items
	if len(items) == 0 {
		items = rs.Images
	}

	sub := Subfolder{Name: subName, Slug: Slugify(subName)}
	seen := make(map[string]bool, len(items))
	for _, ri := range items {
		img := coalesce(ri.Image, ri.ImageURL, ri.Img, ri.URL)
		if img == "" {
			continue
		}
		id := coalesce(ri.ID, ri.AltID)
		if id == "" {
			continue
		}
		if seen[id] {
			continue
		}
		seen[id] = true

		name := coalesce(ri.Name, ri.Title, ri.ItemName)
		if name == "" {
			name = nameFromImage(img)
		}

		sub.Items = append(sub.Items, Item{
			ID:        id,
			Name:      name,
			Category:  categoryName,
			Subfolder: subName,
			ImageURL:  img,
		})
	}
	return sub
}

// coalesce returns the first value that is non-empty after trimming.
func coalesce(values ...flexString) string {
	for _, v := range values {
		if s := strings.TrimSpace(string(v)); s != "" {
			return s
		}
	}
	return ""
}

// nameFromImage derives a display name from an image reference,
// e.g. "https://cdn.example.com/silk/peacock-blue_01.jpg" -> "peacock blue 01".
func nameFromImage(img string) string {
	base := path.Base(img)
	if i := strings.IndexByte(base, '?'); i >= 0 {
		base = base[:i]
	}
	base = strings.TrimSuffix(base, path.Ext(base))
	base = strings.NewReplacer("-", " ", "_", " ").Replace(base)
	return strings.Join(strings.Fields(base), " ")
}

// Slugify turns a display name into a URL- and filter-safe token.
func Slugify(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
