package works

// Credit is a screen appearance. Film work is credited rather than
// released through the catalog, so it lives in its own list.
type Credit struct {
	Name          string
	Role          string
	DatePublished string // year or full date
	WatchLabel    string
	WatchURL      string
	IMDbURL       string
	Stills        []Still
}

type Still struct {
	Src string
	Alt string
}

const IMDbProfileURL = "https://www.imdb.com/name/nm13817235/"

var credits = []Credit{
	{
		Name:          "Bonus Trip",
		Role:          "Film",
		DatePublished: "2024",
		WatchLabel:    "Watch on Amazon Prime Video",
		WatchURL:      "https://www.amazon.com/gp/video/detail/B0D86CSWWX",
		IMDbURL:       IMDbProfileURL,
		Stills: []Still{
			{Src: "/images/photos/Bonus Triip.jpg", Alt: "Bonus Trip - Film still"},
			{Src: "/images/photos/Camryn Jackson and Bonus Trip cast at Premiere.JPG", Alt: "Camryn Jackson and Bonus Trip cast at Premiere"},
		},
	},
}

// Credits returns the film credits, oldest listing first.
func Credits() []Credit {
	out := make([]Credit, len(credits))
	copy(out, credits)
	return out
}
