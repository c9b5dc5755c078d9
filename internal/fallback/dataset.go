// Package fallback holds the sample records served when the primary store
// is unreachable or not configured. Every call returns fresh copies.
package fallback

import (
	"time"

	"github.com/metinatakli/movieflix/internal/domain"
)

func Movies() []domain.Movie {
	return []domain.Movie{
		{
			ID:          "573a1390f29313caabcd42e8",
			Title:       "The Great Train Robbery",
			Plot:        "A group of bandits stage a brazen train hold-up, only to find a determined posse hot on their heels.",
			FullPlot:    "Among the earliest existing films in American cinema - notable as the first film that presented a narrative story to tell - it depicts a group of cowboy outlaws who hold up a train and rob the passengers.",
			Genres:      []string{"Short", "Western"},
			Runtime:     11,
			Cast:        []string{"A.C. Abadie", "Gilbert M. 'Broncho Billy' Anderson", "George Barnes", "Justus D. Barnes"},
			Poster:      "https://m.media-amazon.com/images/M/MV5BMTU3NjE5NzYtYTYyNS00MDVmLWIwYjgtMmYwYWIxZDYyNzU2XkEyXkFqcGdeQXVyNzQzNzQxNzI@._V1_SY1000_SX677_AL_.jpg",
			Year:        1903,
			Rated:       "TV-G",
			IMDb:        domain.IMDb{Rating: 7.4, Votes: 9847, ID: 439},
			Countries:   []string{"USA"},
			Languages:   []string{"English"},
			Directors:   []string{"Edwin S. Porter"},
			NumComments: 12,
		},
		{
			ID:          "573a1390f29313caabcd5293",
			Title:       "The Perils of Pauline",
			Plot:        "Young Pauline is left a lot of money when her wealthy uncle dies. However, her uncle's secretary has been named as her guardian until she marries.",
			FullPlot:    "Young Pauline is left a lot of money when her wealthy uncle dies. However, her uncle's secretary has been named as her guardian until she marries, at which time she will officially take possession of her inheritance.",
			Genres:      []string{"Action"},
			Runtime:     199,
			Cast:        []string{"Pearl White", "Crane Wilbur", "Paul Panzer", "Edward Josè"},
			Poster:      "https://m.media-amazon.com/images/M/MV5BMzgxODk1Mzk2Ml5BMl5BanBnXkFtZTgwMDg0NzkwMjE@._V1_SY1000_SX677_AL_.jpg",
			Year:        1914,
			IMDb:        domain.IMDb{Rating: 7.6, Votes: 744, ID: 4465},
			Countries:   []string{"USA"},
			Languages:   []string{"English"},
			Directors:   []string{"Louis J. Gasnier", "Donald MacKenzie"},
			NumComments: 8,
		},
	}
}

func Comments() []domain.Comment {
	return []domain.Comment{
		{
			ID:      "5a9427648b0beebeb69579e7",
			Name:    "Mercedes Tyler",
			Email:   "mercedes_tyler@fakegmail.com",
			MovieID: "573a1390f29313caabcd4323",
			Text:    "Amazing cinematography and storytelling. This film really captures the essence of early cinema.",
			Date:    time.Date(2002, time.August, 18, 4, 56, 7, 0, time.UTC),
		},
		{
			ID:      "5a9427648b0beebeb69579e8",
			Name:    "John Smith",
			Email:   "john.smith@example.com",
			MovieID: "573a1390f29313caabcd42e8",
			Text:    "A classic that started it all! The train robbery scene is iconic.",
			Date:    time.Date(2023, time.January, 15, 10, 30, 0, 0, time.UTC),
		},
	}
}

func Theaters() []domain.Theater {
	return []domain.Theater{
		{
			ID:        "59a47286cfa9a3a73e51e72d",
			TheaterID: 1003,
			Location: domain.Location{
				Address: domain.Address{
					Street1: "45235 Worth Ave.",
					City:    "California",
					State:   "MD",
					Zipcode: "20619",
				},
				Geo: domain.GeoPoint{Type: "Point", Coordinates: [2]float64{-76.512016, 38.29697}},
			},
		},
		{
			ID:        "59a47286cfa9a3a73e51e72e",
			TheaterID: 1004,
			Location: domain.Location{
				Address: domain.Address{
					Street1: "123 Main St.",
					City:    "New York",
					State:   "NY",
					Zipcode: "10001",
				},
				Geo: domain.GeoPoint{Type: "Point", Coordinates: [2]float64{-74.006, 40.7128}},
			},
		},
	}
}

func Users() []domain.User {
	u := domain.User{
		ID:    "59b99db6cfa9a34dcd7885bb",
		Name:  "Daenerys Targaryen",
		Email: "emilia_clarke@gameofthron.es",
	}
	u.Password.Hash = []byte("$2b$12$NzpbWHdMytemLtTfFKduHenr2NZ.rvxIKuYM4AWLTFaUShxbJ.G3q")

	return []domain.User{u}
}
