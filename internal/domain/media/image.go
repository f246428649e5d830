package media

// Photo is an official image published on the photos page.
// Src is a site-relative path under /images.
type Photo struct {
	Src     string `json:"src"`
	Alt     string `json:"alt"`
	Caption string `json:"caption"`
}

var photos = []Photo{
	{Src: "/images/photos/Campaigne - Headshot.JPG", Alt: "Camryn Jackson, musician and author", Caption: "Campaigne - Official Headshot"},
	{Src: "/images/photos/Campaigne Head Shot Closeup.JPG", Alt: "Campaigne - Headshot Closeup", Caption: "Campaigne - Headshot Closeup"},
	{Src: "/images/photos/Camryn Jackson Headshot.JPG", Alt: "Camryn Jackson - Headshot", Caption: "Camryn Jackson - Headshot"},
	{Src: "/images/photos/Campaigne - Editorial.JPG", Alt: "Campaigne - Editorial", Caption: "Campaigne - Editorial"},
	{Src: "/images/photos/Campaigne - Editorial shot.JPG", Alt: "Campaigne - Editorial Shot", Caption: "Campaigne - Editorial Shot"},
	{Src: "/images/photos/Campaigne - Editorial shot 2.JPG", Alt: "Campaigne - Editorial Shot 2", Caption: "Campaigne - Editorial Shot 2"},
	{Src: "/images/photos/Campaigne - Editorial shot 3.JPG", Alt: "Campaigne - Editorial Shot 3", Caption: "Campaigne - Editorial Shot 3"},
	{Src: "/images/photos/Campaigne - Editorial shot 4.JPG", Alt: "Campaigne - Editorial Shot 4", Caption: "Campaigne - Editorial Shot 4"},
	{Src: "/images/photos/Campaigne - Editorial shot 5.JPG", Alt: "Campaigne - Editorial Shot 5", Caption: "Campaigne - Editorial Shot 5"},
	{Src: "/images/photos/Campaigne - Editorial shot 6.JPG", Alt: "Campaigne - Editorial Shot 6", Caption: "Campaigne - Editorial Shot 6"},
	{Src: "/images/photos/Campaigne - PNEUMA - album cover.JPG", Alt: "PNEUMA Album Cover", Caption: "PNEUMA Album Cover"},
	{Src: "/images/photos/Campaigne - PNEUMA Alt version - Album Cover.JPG", Alt: "PNEUMA: Echoes of Breath Album Cover", Caption: "PNEUMA: Echoes of Breath Album Cover"},
	{Src: "/images/photos/Campaigne - 144 A New Dawn - Album Cover.JPG", Alt: "144: A New Dawn Album Cover", Caption: "144: A New Dawn Album Cover"},
	{Src: "/images/photos/Bonus Triip.jpg", Alt: "Bonus Trip - Film still", Caption: "Bonus Trip"},
	{Src: "/images/photos/Camryn Jackson and Bonus Trip cast at Premiere.JPG", Alt: "Camryn Jackson and Bonus Trip cast at Premiere", Caption: "Camryn Jackson and Bonus Trip cast at Premiere"},
}

func Photos() []Photo {
	out := make([]Photo, len(photos))
	copy(out, photos)
	return out
}
