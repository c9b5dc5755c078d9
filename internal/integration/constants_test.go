package integration_test

const (
	// User related constants
	TestUserId       = "64b7f0c2a1e4d3b2c1a09f01"
	TestUserName     = "Arya Stark"
	TestUserEmail    = "arya@winterfell.example"
	TestUserPassword = "Needle123!"

	// Movie related constants
	TestMovieId       = "573a1390f29313caabcd4135"
	TestMovieTitle    = "Blacksmith Scene"
	TestMovieGenre    = "Short"
	TestMovieYear     = 1893
	TestMovieRuntime  = 1
	TestMovieRating   = 6.2
	TestMovieVotes    = 1189
	TestMovieDirector = "William K.L. Dickson"

	TestOtherMovieId    = "573a1390f29313caabcd42e8"
	TestOtherMovieTitle = "The Great Train Robbery"
	TestOtherMovieGenre = "Western"

	TestMissingMovieId = "573a1390f29313caabcd0000"

	// Comment related constants
	TestCommentName  = "Mercedes Tyler"
	TestCommentEmail = "mercedes_tyler@fakegmail.example"
	TestCommentText  = "A quiet classic."
)

var (
	TestMoviePlot = "Three men hammer on an anvil and pass a bottle of beer around. " +
		"The scene repeats with small changes in posture and rhythm until the film runs out."
	TestMovieCast = []string{"Charles Kayser", "John Ott", "Uncredited Smith"}
)
