package integration_test

import (
	"net/http"
	"testing"

	"github.com/metinatakli/movieflix/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type HealthTestSuite struct {
	BaseSuite
}

func TestHealthSuite(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	suite.Run(t, new(HealthTestSuite))
}

func (s *HealthTestSuite) TestHealth() {
	Scenario{
		Name:           "reports connected store",
		Method:         http.MethodGet,
		URL:            "/health",
		ExpectedStatus: http.StatusOK,
		BeforeTestFunc: func(t testing.TB, app *TestApp) {
			seedMovies(t, app)
		},
		AfterTestFunc: func(t testing.TB, app *TestApp, res *http.Response) {
			resp := decodeResponse[api.HealthcheckResponse](t, res)

			assert.Equal(t, "healthy", resp.Status)
			assert.Equal(t, "connected", resp.Database.Status)
			assert.Contains(t, resp.Database.CollectionNames, "movies")
			assert.Equal(t, "configured", resp.Environment.MongoUri)
			assert.Equal(t, dbName, resp.Environment.DbName)
		},
	}.Run(s.T(), s.app)
}

func (s *HealthTestSuite) TestAdminDatabase() {
	cookies := []*http.Cookie{sessionCookie(s.T(), s.app, testIdentity())}

	Scenario{
		Name:             "creates indexes",
		Method:           http.MethodGet,
		URL:              "/admin/database?action=indexes",
		Cookies:          cookies,
		ExpectedStatus:   http.StatusOK,
		ExpectedResponse: `{"success": true, "message": "Indexes created successfully"}`,
	}.Run(s.T(), s.app)

	Scenario{
		Name:           "reports stats with the unique watchlist index",
		Method:         http.MethodGet,
		URL:            "/admin/database?action=stats",
		Cookies:        cookies,
		ExpectedStatus: http.StatusOK,
		AfterTestFunc: func(t testing.TB, app *TestApp, res *http.Response) {
			resp := decodeResponse[api.DatabaseStatsResponse](t, res)

			assert.True(t, resp.Success)
			watchlist, ok := resp.Stats["watchlist"]
			if assert.True(t, ok) {
				assert.Empty(t, watchlist.Error)
				assert.GreaterOrEqual(t, watchlist.IndexCount, 7)
			}
		},
	}.Run(s.T(), s.app)
}
