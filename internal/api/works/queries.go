package works

import (
	dw "entity-hub/internal/domain/works"
)

// listing ties a work type to its listing route. Albums are listed under
// /music even though their detail pages live at /albums/:slug.
type listing struct {
	Type        dw.WorkType
	Path        string
	Heading     string
	Description string
	Empty       string
}

var listings = []listing{
	{
		Type:        dw.TypeBook,
		Path:        "/books",
		Heading:     "Books",
		Description: "Explore books by Camryn Jackson (Campaigne). Literary works including Tales of Time.",
		Empty:       "No books available yet.",
	},
	{
		Type:        dw.TypeAlbum,
		Path:        "/music",
		Heading:     "Music",
		Description: "Explore music albums and releases by Camryn Jackson (Campaigne), including PNEUMA and 144: A New Dawn.",
		Empty:       "No music available yet.",
	},
	{
		Type:        dw.TypeApp,
		Path:        "/apps",
		Heading:     "Apps",
		Description: "Explore apps developed by Camryn Jackson (Campaigne), including ORIGEN.",
		Empty:       "No apps available yet.",
	},
}

func listingFor(t dw.WorkType) (listing, bool) {
	for _, l := range listings {
		if l.Type == t {
			return l, true
		}
	}
	return listing{Type: t, Path: "/", Heading: "Home"}, false
}

// splitByStatus keeps catalog order within each group.
func splitByStatus(ws []dw.Work) (released, inProgress []dw.Work) {
	released, inProgress = []dw.Work{}, []dw.Work{}
	for _, w := range ws {
		switch w.Status {
		case dw.StatusReleased:
			released = append(released, w)
		case dw.StatusInProgress:
			inProgress = append(inProgress, w)
		}
	}
	return released, inProgress
}
