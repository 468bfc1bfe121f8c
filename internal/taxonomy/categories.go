// Package taxonomy holds the static reference tables used by the enrichment
// engine: the YouTube category mapping and the skill keyword taxonomy. The
// tables are fixed at compile time and never mutated.
package taxonomy

// UnknownCategory is assigned when a video carries no category id or an id
// outside the table below.
const UnknownCategory = "Unknown"

var youtubeCategories = map[string]string{
	"1":  "Film & Animation",
	"2":  "Autos & Vehicles",
	"10": "Music",
	"15": "Pets & Animals",
	"17": "Sports",
	"19": "Travel & Events",
	"20": "Gaming",
	"22": "People & Blogs",
	"23": "Comedy",
	"24": "Entertainment",
	"25": "News & Politics",
	"26": "Howto & Style",
	"27": "Education",
	"28": "Science & Technology",
	"29": "Nonprofits & Activism",
}

// CategoryName resolves a YouTube category id to its display name.
// Unmapped or empty ids degrade to UnknownCategory, never an error.
func CategoryName(id string) string {
	if id == "" {
		return UnknownCategory
	}
	if name, ok := youtubeCategories[id]; ok {
		return name
	}
	return UnknownCategory
}

// CategoryCount returns the number of mapped categories.
func CategoryCount() int {
	return len(youtubeCategories)
}
