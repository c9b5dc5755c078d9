package integration_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/metinatakli/movieflix/internal/auth"
	"github.com/metinatakli/movieflix/internal/domain"
	"github.com/metinatakli/movieflix/internal/repository"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

var keysToIgnore = map[string]struct{}{
	"timestamp": {},
	"requestId": {},
	"id":        {},
	"addedDate": {},
	"date":      {},
}

func prepareRequest(method, path string, body io.Reader, headers map[string]string, cookies []*http.Cookie) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	for _, c := range cookies {
		req.AddCookie(c)
	}

	return req, nil
}

func compareResponse(t testing.TB, body io.Reader, expectedResponse string) {
	var actual map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	cleanMap(actual)

	var expected map[string]any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		_, ok := keysToIgnore[k]
		return ok
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func cleanMap(m map[string]any) {
	for k := range m {
		if _, ok := keysToIgnore[k]; ok {
			delete(m, k)
			continue
		}
		if nested, ok := m[k].(map[string]any); ok {
			cleanMap(nested)
		}
	}
}

func decodeResponse[T any](t testing.TB, res *http.Response) T {
	var v T
	require.NoError(t, json.NewDecoder(res.Body).Decode(&v))

	return v
}

func cleanDatabase(t testing.TB, testApp *TestApp) {
	ctx := context.Background()

	for _, name := range repository.Collections {
		_, err := testApp.DB.Collection(name).DeleteMany(ctx, bson.D{})
		require.NoError(t, err)
	}
}

func createIndexes(t testing.TB, testApp *TestApp) {
	err := repository.NewMongoStore(testApp.DB).CreateIndexes(context.Background())
	require.NoError(t, err)
}

func mustObjectID(t testing.TB, hex string) bson.ObjectID {
	id, err := bson.ObjectIDFromHex(hex)
	require.NoError(t, err)

	return id
}

func seedMovies(t testing.TB, testApp *TestApp) {
	movies := []any{
		bson.M{
			"_id":                mustObjectID(t, TestMovieId),
			"title":              TestMovieTitle,
			"plot":               TestMoviePlot,
			"fullplot":           TestMoviePlot + " It was shown at the Chicago World's Fair.",
			"genres":             bson.A{TestMovieGenre},
			"runtime":            TestMovieRuntime,
			"cast":               TestMovieCast,
			"year":               TestMovieYear,
			"imdb":               bson.M{"rating": TestMovieRating, "votes": TestMovieVotes, "id": 5},
			"countries":          bson.A{"USA"},
			"languages":          bson.A{"English"},
			"directors":          bson.A{TestMovieDirector, "Second Director"},
			"num_mflix_comments": 1,
		},
		bson.M{
			"_id":    mustObjectID(t, TestOtherMovieId),
			"title":  TestOtherMovieTitle,
			"plot":   "A group of bandits stage a brazen train hold-up.",
			"genres": bson.A{TestOtherMovieGenre},
			// the sample data stores some numbers as strings
			"runtime":            "11",
			"year":               "1903",
			"imdb":               bson.M{"rating": "7.4", "votes": 9847, "id": 439},
			"cast":               bson.A{"A.C. Abadie"},
			"directors":          bson.A{"Edwin S. Porter"},
			"num_mflix_comments": 0,
		},
	}

	_, err := testApp.DB.Collection("movies").InsertMany(context.Background(), movies)
	require.NoError(t, err)
}

func seedComment(t testing.TB, testApp *TestApp) {
	_, err := testApp.DB.Collection("comments").InsertOne(context.Background(), bson.M{
		"name":     TestCommentName,
		"email":    TestCommentEmail,
		"movie_id": mustObjectID(t, TestMovieId),
		"text":     TestCommentText,
		"date":     time.Now().UTC(),
	})
	require.NoError(t, err)
}

func seedUser(t testing.TB, testApp *TestApp) domain.Identity {
	var user domain.User
	require.NoError(t, user.Password.Set(TestUserPassword))

	_, err := testApp.DB.Collection("users").InsertOne(context.Background(), bson.M{
		"_id":      mustObjectID(t, TestUserId),
		"name":     TestUserName,
		"email":    TestUserEmail,
		"password": string(user.Password.Hash),
	})
	require.NoError(t, err)

	return testIdentity()
}

func testIdentity() domain.Identity {
	return domain.Identity{UserID: TestUserId, Name: TestUserName, Email: TestUserEmail}
}

func sessionCookie(t testing.TB, testApp *TestApp, identity domain.Identity) *http.Cookie {
	token, err := testApp.Tokens.Issue(identity)
	require.NoError(t, err)

	return &http.Cookie{Name: auth.CookieName, Value: token}
}

func countDocuments(t testing.TB, testApp *TestApp, collection string, filter any) int64 {
	n, err := testApp.DB.Collection(collection).CountDocuments(context.Background(), filter)
	require.NoError(t, err)

	return n
}
