package app

import (
	"github.com/metinatakli/movieflix/api"
	"github.com/metinatakli/movieflix/internal/domain"
)

func toApiMovie(m domain.Movie) api.Movie {
	movie := api.Movie{
		Id:          m.ID,
		Title:       m.Title,
		Plot:        m.Plot,
		FullPlot:    m.FullPlot,
		Genres:      nonNil(m.Genres),
		Runtime:     m.Runtime,
		Cast:        nonNil(m.Cast),
		Poster:      m.Poster,
		Year:        m.Year,
		Rated:       m.Rated,
		IMDb:        api.IMDb{Rating: m.IMDb.Rating, Votes: m.IMDb.Votes, Id: m.IMDb.ID},
		Countries:   nonNil(m.Countries),
		Languages:   nonNil(m.Languages),
		Directors:   nonNil(m.Directors),
		NumComments: m.NumComments,
		Released:    m.Released,
	}

	if m.Awards != nil {
		movie.Awards = &api.Awards{
			Wins:        m.Awards.Wins,
			Nominations: m.Awards.Nominations,
			Text:        m.Awards.Text,
		}
	}

	if m.Tomatoes != nil {
		movie.Tomatoes = &api.Tomatoes{
			Viewer:      toApiTomatoesScore(m.Tomatoes.Viewer),
			Critic:      toApiTomatoesScore(m.Tomatoes.Critic),
			Fresh:       m.Tomatoes.Fresh,
			Rotten:      m.Tomatoes.Rotten,
			LastUpdated: m.Tomatoes.LastUpdated,
		}
	}

	return movie
}

func toApiTomatoesScore(s *domain.TomatoesScore) *api.TomatoesScore {
	if s == nil {
		return nil
	}

	return &api.TomatoesScore{Rating: s.Rating, NumReviews: s.NumReviews, Meter: s.Meter}
}

func toApiMovieWithWatchlist(m domain.MovieWithWatchlist) api.MovieWithWatchlist {
	movie := api.MovieWithWatchlist{
		Movie:         toApiMovie(m.Movie),
		IsInWatchlist: m.IsInWatchlist,
		UserRating:    m.UserRating,
	}

	if m.WatchlistStatus != nil {
		status := api.WatchlistStatus(*m.WatchlistStatus)
		movie.WatchlistStatus = &status
	}

	return movie
}

func toApiMovies(movies []domain.MovieWithWatchlist) []api.MovieWithWatchlist {
	out := make([]api.MovieWithWatchlist, len(movies))
	for i, m := range movies {
		out[i] = toApiMovieWithWatchlist(m)
	}

	return out
}

func toApiComment(c domain.Comment) api.Comment {
	return api.Comment{
		Id:      c.ID,
		Name:    c.Name,
		Email:   c.Email,
		MovieId: c.MovieID,
		Text:    c.Text,
		Date:    c.Date,
	}
}

func toApiComments(comments []domain.Comment) []api.Comment {
	out := make([]api.Comment, len(comments))
	for i, c := range comments {
		out[i] = toApiComment(c)
	}

	return out
}

func toApiTheaters(theaters []domain.Theater) []api.Theater {
	out := make([]api.Theater, len(theaters))
	for i, t := range theaters {
		out[i] = api.Theater{
			Id:        t.ID,
			TheaterId: t.TheaterID,
			Location: api.Location{
				Address: api.Address{
					Street1: t.Location.Address.Street1,
					City:    t.Location.Address.City,
					State:   t.Location.Address.State,
					Zipcode: t.Location.Address.Zipcode,
				},
				Geo: api.GeoPoint{
					Type:        t.Location.Geo.Type,
					Coordinates: t.Location.Geo.Coordinates,
				},
			},
		}
	}

	return out
}

func toApiWatchlistItem(item domain.WatchlistItem) api.WatchlistItem {
	return api.WatchlistItem{
		Id:        item.ID,
		UserId:    item.UserID,
		MovieId:   item.MovieID,
		AddedDate: item.AddedDate,
		Status:    api.WatchlistStatus(item.Status),
		Rating:    item.Rating,
		Notes:     item.Notes,
	}
}

func toApiCollectionStats(stats map[string]domain.CollectionStats) map[string]api.CollectionStats {
	out := make(map[string]api.CollectionStats, len(stats))
	for name, s := range stats {
		indexes := make([]api.IndexInfo, len(s.Indexes))
		for i, idx := range s.Indexes {
			indexes[i] = api.IndexInfo{Name: idx.Name, Keys: idx.Keys}
		}

		out[name] = api.CollectionStats{
			DocumentCount: s.DocumentCount,
			IndexCount:    s.IndexCount,
			Indexes:       indexes,
			Error:         s.Error,
		}
	}

	return out
}

func toApiUser(identity domain.Identity) api.UserResponse {
	return api.UserResponse{
		Id:    identity.UserID,
		Name:  identity.Name,
		Email: identity.Email,
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}

	return s
}
