package seeder

import "github.com/sbilibin2017/gt-landmarks/internal/models"

type sampleUser struct {
	username string
	email    string
	daysAgo  int
}

type sampleVisit struct {
	user     string
	landmark string
	notes    string
	daysAgo  int
}

const (
	techTower = "Tech Tower"
	culc      = "Clough Undergraduate Learning Commons"
	bobbyDodd = "Bobby Dodd Stadium"
	kendeda   = "Kendeda Building"
	mccamish  = "McCamish Pavilion"
)

var techTowerImages = models.TrainingImages{
	{URL: "https://upload.wikimedia.org/wikipedia/commons/8/89/Tech_Tower_Building_-_1.jpg", Description: "Front view", License: "CC0"},
	{URL: "https://upload.wikimedia.org/wikipedia/commons/4/40/TechTower.jpg", Description: "Classic view", License: "CC BY-SA 3.0"},
	{URL: "https://upload.wikimedia.org/wikipedia/commons/4/49/Tech_Tower_Panorama.jpg", Description: "Panoramic", License: "CC BY-SA 3.0"},
	{URL: "https://upload.wikimedia.org/wikipedia/commons/3/3e/Tech_Tower_and_skyline.jpg", Description: "With skyline", License: "CC BY-SA 3.0"},
	{URL: "https://upload.wikimedia.org/wikipedia/commons/c/c8/Tech_Tower_in_Atlanta.jpg", Description: "Full view", License: "CC BY-SA 3.0"},
	{URL: "https://upload.wikimedia.org/wikipedia/commons/8/8f/Tech_Tower_snow.jpg", Description: "In snow", License: "CC BY-SA 3.0"},
	{URL: "https://upload.wikimedia.org/wikipedia/commons/f/f7/Tech_Tower_sideview.jpg", Description: "Side view", License: "CC BY-SA 3.0"},
	{URL: "https://upload.wikimedia.org/wikipedia/commons/b/b6/Tech_Tower_Entrance-1.jpg", Description: "Entrance", License: "CC BY-SA 3.0"},
	{URL: "https://upload.wikimedia.org/wikipedia/commons/6/6e/GT_Admin_Building_6282.jpg", Description: "Wide angle", License: "CC BY-SA 3.0"},
	{URL: "https://upload.wikimedia.org/wikipedia/commons/1/1f/GT_landmark_6269.jpg", Description: "From plaza", License: "CC BY-SA 3.0"},
	{URL: "https://upload.wikimedia.org/wikipedia/commons/7/7a/Tech_Tower_Entrance-2.jpg", Description: "Entrance detail", License: "CC BY-SA 3.0"},
	{URL: "https://upload.wikimedia.org/wikipedia/commons/e/e0/Tech_Tower_-_June_2024.jpg", Description: "Recent 2024", License: "CC BY-SA 4.0"},
	{URL: "https://upload.wikimedia.org/wikipedia/commons/5/5e/Tech_Tower%2C_GA_Tech.jpg", Description: "Vertical view", License: "CC BY-SA 3.0"},
	{URL: "https://upload.wikimedia.org/wikipedia/commons/a/af/Tech_Tower_and_Shop_1899.jpg", Description: "Historic 1899", License: "Public Domain"},
	{URL: "https://upload.wikimedia.org/wikipedia/commons/2/2c/Tech_Tower.jpg", Description: "Standard view", License: "CC BY-SA 3.0"},
}

var culcImages = models.TrainingImages{
	{URL: "https://upload.wikimedia.org/wikipedia/commons/c/c8/G._Wayne_Clough_Undergraduate_Learning_Commons_-_Georgia_Institute_of_Technology_-_DSC00776.JPG", Description: "Exterior front", License: "CC0"},
	{URL: "https://upload.wikimedia.org/wikipedia/commons/5/54/CULC%2C_Georgia_Tech.jpg", Description: "Southwest corner", License: "CC BY-SA 4.0"},
	{URL: "https://upload.wikimedia.org/wikipedia/commons/f/f3/CULC.jpg", Description: "Angle view", License: "CC BY-SA 4.0"},
	{URL: "https://upload.wikimedia.org/wikipedia/commons/1/17/G._Wayne_Clough_Undergraduate_Learning_Commons.jpg", Description: "Full building", License: "CC BY-SA 4.0"},
	{URL: "https://upload.wikimedia.org/wikipedia/commons/8/8c/Clough_Commons_interior%2C_May_2021_1.jpg", Description: "Interior 1", License: "CC BY-SA 4.0"},
	{URL: "https://upload.wikimedia.org/wikipedia/commons/0/0f/Clough_Commons_interior%2C_May_2021_2.jpg", Description: "Interior 2", License: "CC BY-SA 4.0"},
	{URL: "https://upload.wikimedia.org/wikipedia/commons/9/9f/CULC_Model.jpg", Description: "Architectural model", License: "CC BY-SA 3.0"},
	{URL: "https://upload.wikimedia.org/wikipedia/commons/a/a7/Campus_under_Construction_-_panoramio.jpg", Description: "Under construction", License: "CC BY 3.0"},
	{URL: "https://upload.wikimedia.org/wikipedia/commons/c/ce/Campus_under_construction_-_panoramio.jpg", Description: "Construction progress", License: "CC BY 3.0"},
	{URL: "https://upload.wikimedia.org/wikipedia/commons/4/41/The_Internship_-_panoramio.jpg", Description: "From plaza", License: "CC BY 3.0"},
	{URL: "https://upload.wikimedia.org/wikipedia/commons/a/a0/Skiles_walkway.jpg", Description: "Walkway view", License: "CC BY-SA 4.0"},
	{URL: "https://upload.wikimedia.org/wikipedia/commons/6/6a/Roof_Terrace_plaque%2C_CULC.jpg", Description: "Roof terrace", License: "CC BY-SA 4.0"},
	{URL: "https://upload.wikimedia.org/wikipedia/commons/1/1e/Coca-Cola_Building_as_seen_from_Campus_of_Georgia_Tech..JPG", Description: "View from CULC", License: "CC BY-SA 4.0"},
	{URL: "https://upload.wikimedia.org/wikipedia/commons/b/b0/Georgia_Tech_Campus.jpg", Description: "Campus view", License: "CC BY-SA 3.0"},
}

// extras holds the details known for some landmarks beyond name and
// description.
var extras = map[string]models.Landmark{
	techTower: {
		Location: &models.Location{Latitude: 33.7756, Longitude: -84.3985},
		FunFacts: models.StringList{
			"Built in 1888",
			"Originally called the Academic Building",
			`Famous for the "Stealing the T" tradition`,
			"Listed on the National Register of Historic Places",
		},
		TrainingImages: techTowerImages,
	},
	culc: {
		Location: &models.Location{Latitude: 33.7749, Longitude: -84.3963},
		FunFacts: models.StringList{
			"Opened in 2011",
			"Named after G. Wayne Clough, former GT President",
			"Features a 3-story glass facade",
			"Open 24 hours a day",
		},
		TrainingImages: culcImages,
	},
}

// landmarkFolders lists the seeded landmarks by data folder, in insertion
// order.
var landmarkFolders = []string{"tech_tower", "culc", "bobby_dodd", "kendeda", "mccamish"}

var sampleUsers = []sampleUser{
	{"alice_johnson", "alice.johnson@gatech.edu", 30},
	{"bob_smith", "bob.smith@gatech.edu", 25},
	{"carol_williams", "carol.williams@gatech.edu", 20},
	{"david_brown", "david.brown@gatech.edu", 15},
	{"emma_davis", "emma.davis@gatech.edu", 10},
	{"buzz", "buzz@gatech.edu", 2},
	{"ramblin_wreck", "wreck@gatech.edu", 2},
}

var sampleVisits = []sampleVisit{
	{"alice_johnson", techTower, "Beautiful historic building!", 28},
	{"alice_johnson", culc, "Great study space", 25},
	{"alice_johnson", bobbyDodd, "Go Jackets!", 20},
	{"alice_johnson", mccamish, "Awesome basketball game", 15},

	{"bob_smith", techTower, "Iconic GT landmark", 23},
	{"bob_smith", kendeda, "Amazing sustainable design", 18},
	{"bob_smith", bobbyDodd, "Great atmosphere on game day", 12},

	{"carol_williams", techTower, "Must-see for every Yellow Jacket", 19},
	{"carol_williams", culc, "Love the modern architecture", 17},
	{"carol_williams", kendeda, "Living Building certified!", 14},
	{"carol_williams", bobbyDodd, "Historic Grant Field", 10},
	{"carol_williams", mccamish, "State-of-the-art facility", 5},

	{"david_brown", techTower, "Perfect spot for photos", 13},
	{"david_brown", culc, "Best place to collaborate", 8},

	{"emma_davis", kendeda, "So impressed by the green features", 9},
	{"emma_davis", bobbyDodd, "First football game - amazing!", 6},
	{"emma_davis", mccamish, "Great venue for basketball", 3},

	{"buzz", techTower, "Amazing historic building!", 1},
	{"buzz", culc, "Great study spot!", 1},
	{"ramblin_wreck", techTower, "Love the architecture", 1},
}
