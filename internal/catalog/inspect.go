package catalog

import (
	"encoding/json"
	"fmt"
)

// FeedReport compares the raw feed against its normalized form. The CLI's
// validate command uses it to surface how lossy a feed snapshot is.
type FeedReport struct {
	RawItems     int
	Stats        Stats
	DroppedItems int
}

// Inspect decodes a feed body and normalizes it, reporting what survived.
// The error taxonomy matches Client.Fetch: an undecodable body is ErrBadShape.
func Inspect(body []byte) (Catalog, FeedReport, error) {
	var raw []rawCategory
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, FeedReport{}, fmt.Errorf("%w: %v", ErrBadShape, err)
	}

	normalized := Normalize(raw)
	report := FeedReport{
		RawItems: rawItemCount(raw),
		Stats:    CountStats(normalized),
	}
	report.DroppedItems = report.RawItems - report.Stats.Items
	return normalized, report, nil
}

// rawItemCount counts item records the same way Normalize selects them:
// the items array when present, the images array otherwise.
func rawItemCount(raw []rawCategory) int {
	total := 0
	for _, rc := range raw {
		subs := rc.Subfolders
		if len(subs) == 0 {
			subs = rc.Folders
		}
		for _, rs := range subs {
			items := rs.Items
			if len(items) == 0 {
				items = rs.Images
			}
			total += len(items)
		}
	}
	return total
}
