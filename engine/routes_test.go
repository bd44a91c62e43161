package engine

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/drummonds/travelGenius/catalog"
	"github.com/drummonds/travelGenius/config"
)

func setupTestServer(t *testing.T) (*echo.Echo, *ServerHandler) {
	t.Helper()
	e := echo.New()
	e.HideBanner = true
	serverConfig := config.ServerConfig{FrontEndConfig: config.FrontEndConfig{AppName: "Travel Genius", Version: "test"}}
	serverHandler, err := NewServerHandler(e, serverConfig)
	require.NoError(t, err)
	t.Cleanup(func() { serverHandler.Close() })
	serverHandler.RegisterRoutes()
	return e, serverHandler
}

func get(t *testing.T, e *echo.Echo, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestStartupChecks(t *testing.T) {
	_, serverHandler := setupTestServer(t)
	require.NoError(t, serverHandler.StartupChecks())
}

func TestGetHome(t *testing.T) {
	e, _ := setupTestServer(t)
	rec := get(t, e, "/api/home")
	require.Equal(t, http.StatusOK, rec.Code)

	var home catalog.Welcome
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &home))
	require.Equal(t, catalog.Home(), home)
}

func TestGetAttractions(t *testing.T) {
	e, _ := setupTestServer(t)
	rec := get(t, e, "/api/attractions")
	require.Equal(t, http.StatusOK, rec.Code)

	var categories []catalog.AttractionCategory
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &categories))
	require.Equal(t, catalog.Attractions(), categories)
}

func TestGetCuisinesCarriesStars(t *testing.T) {
	e, _ := setupTestServer(t)
	rec := get(t, e, "/api/cuisines")
	require.Equal(t, http.StatusOK, rec.Code)

	var cuisines []cuisineResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cuisines))
	require.Len(t, cuisines, 2)
	require.Equal(t, "Peking Duck", cuisines[0].Type)

	var stars []int
	for _, cuisine := range cuisines {
		for _, restaurant := range cuisine.Restaurants {
			stars = append(stars, restaurant.Stars)
		}
	}
	require.Equal(t, []int{5, 4, 5, 4}, stars)
	require.Equal(t, "★★★★★", cuisines[0].Restaurants[0].Glyphs)
	require.Equal(t, 4.3, cuisines[0].Restaurants[1].Rating)
}

func TestGetTipsAndLanguages(t *testing.T) {
	e, _ := setupTestServer(t)

	rec := get(t, e, "/api/tips")
	require.Equal(t, http.StatusOK, rec.Code)
	var tips []catalog.TravelTip
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tips))
	require.Equal(t, catalog.Tips(), tips)

	rec = get(t, e, "/api/languages")
	require.Equal(t, http.StatusOK, rec.Code)
	var languages []catalog.Language
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &languages))
	require.Equal(t, catalog.Languages(), languages)
}

func TestSearchCatalog(t *testing.T) {
	e, _ := setupTestServer(t)

	t.Run("single term", func(t *testing.T) {
		rec := get(t, e, "/api/search?term=dumplings")
		require.Equal(t, http.StatusOK, rec.Code)

		var response searchResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		require.Equal(t, "dumplings", response.Term)
		require.NotZero(t, response.Total)
		require.Equal(t, "cuisine/1", response.Hits[0].ID)
		require.Equal(t, "Dumplings", response.Hits[0].Title)
	})

	t.Run("phrase", func(t *testing.T) {
		rec := get(t, e, "/api/search?term=marble+boat")
		require.Equal(t, http.StatusOK, rec.Code)

		var response searchResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		require.Equal(t, uint64(1), response.Total)
		require.Equal(t, "attraction/0/1", response.Hits[0].ID)
		require.Equal(t, "Summer Palace", response.Hits[0].Title)
	})

	t.Run("empty term", func(t *testing.T) {
		rec := get(t, e, "/api/search?term=")
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("no results", func(t *testing.T) {
		rec := get(t, e, "/api/search?term=zzqxv")
		require.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestGetAboutInfo(t *testing.T) {
	e, _ := setupTestServer(t)
	rec := get(t, e, "/api/about")
	require.Equal(t, http.StatusOK, rec.Code)

	var about map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &about))
	require.Equal(t, "Travel Genius", about["name"])
	require.Equal(t, "test", about["version"])
	require.EqualValues(t, 2, about["attractionCategories"])
	require.EqualValues(t, 4, about["places"])
	require.EqualValues(t, 2, about["cuisines"])
	require.EqualValues(t, 4, about["restaurants"])
	require.EqualValues(t, 4, about["tips"])
}
