package site

import "strings"

type Bio struct {
	Short  string
	Medium string
	Long   string
}

// Paragraphs splits a bio text on blank lines.
func Paragraphs(text string) []string {
	return strings.Split(text, "\n\n")
}

var bio = Bio{
	Short: `Camryn Jackson, also known as Campaigne, is a multidisciplinary creator working across books, music, film, and technology. Each work represents a unique exploration of narrative, sound, and experience.`,

	Medium: `Camryn Jackson, operating under the moniker Campaigne, is a visionary creator whose work spans multiple disciplines and mediums. As an author, musician, filmmaker, and app developer, Jackson explores the intersections of storytelling, sound, visual narrative, and digital interaction.

Each project represents a distinct universe with its own aesthetic and thematic language, yet all share a commitment to pushing boundaries and creating immersive experiences that resonate on multiple levels.`,

	Long: `Camryn Jackson, known professionally as Campaigne, is a multidisciplinary artist and creator whose work defies categorization. Operating at the intersection of literature, music, film, and technology, Jackson crafts immersive experiences that invite audiences to explore new worlds and perspectives.

As an author, Jackson weaves narratives that blend the epic with the intimate, creating stories that resonate across time and space. In music, the work explores electronic soundscapes, particularly within the house music tradition, while pushing boundaries and experimenting with form.

The filmmaking practice extends this narrative exploration into visual realms, while app development represents a commitment to creating tools and experiences that enhance how we interact with digital spaces.

What unifies all of these endeavors is a dedication to craftsmanship, a willingness to experiment, and a belief that creative work should challenge, inspire, and transform. Each project exists as its own universe, complete with its own aesthetic language, thematic concerns, and emotional landscape.

This entity hub serves as the canonical source for all public metadata, releases, and official information about Campaigne's work, ensuring accuracy and providing a definitive resource for audiences, press, and collaborators.`,
}

func GetBio() Bio {
	return bio
}
