package engine

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/drummonds/travelGenius/catalog"
)

type restaurantResponse struct {
	catalog.Restaurant
	Stars  int    `json:"stars"`
	Glyphs string `json:"glyphs"`
}

type cuisineResponse struct {
	Type        string               `json:"type"`
	Description string               `json:"description"`
	Restaurants []restaurantResponse `json:"restaurants"`
}

type searchResponse struct {
	Term  string      `json:"term"`
	Total uint64      `json:"total"`
	Hits  []SearchHit `json:"hits"`
}

// GetHome returns the home tab content
func (serverHandler *ServerHandler) GetHome(context echo.Context) error {
	return context.JSON(http.StatusOK, catalog.Home())
}

// GetAttractions returns every attraction category in display order
func (serverHandler *ServerHandler) GetAttractions(context echo.Context) error {
	return context.JSON(http.StatusOK, catalog.Attractions())
}

// GetCuisines returns the cuisines with the star count for each restaurant
func (serverHandler *ServerHandler) GetCuisines(context echo.Context) error {
	entries := catalog.Cuisines()
	response := make([]cuisineResponse, 0, len(entries))
	for _, entry := range entries {
		restaurants := make([]restaurantResponse, 0, len(entry.Restaurants))
		for _, restaurant := range entry.Restaurants {
			restaurants = append(restaurants, restaurantResponse{
				Restaurant: restaurant,
				Stars:      catalog.StarCount(restaurant.Rating),
				Glyphs:     catalog.Stars(restaurant.Rating),
			})
		}
		response = append(response, cuisineResponse{
			Type:        entry.Type,
			Description: entry.Description,
			Restaurants: restaurants,
		})
	}
	return context.JSON(http.StatusOK, response)
}

// GetTips returns the travel tips in display order
func (serverHandler *ServerHandler) GetTips(context echo.Context) error {
	return context.JSON(http.StatusOK, catalog.Tips())
}

// GetLanguages returns the translation targets offered by the translate tab
func (serverHandler *ServerHandler) GetLanguages(context echo.Context) error {
	return context.JSON(http.StatusOK, catalog.Languages())
}

// SearchCatalog will take the search term and search the whole catalog
func (serverHandler *ServerHandler) SearchCatalog(context echo.Context) error {
	searchTerm := strings.TrimSpace(context.QueryParam("term"))
	if searchTerm == "" {
		return context.JSON(http.StatusNotFound, "Empty search term")
	}
	total, hits, err := SearchCatalogTerm(searchTerm, serverHandler.SearchDB, serverHandler.searchDocs)
	if err != nil {
		Logger.Error("Search returned an error", "error", err, "searchTerm", searchTerm)
		return context.JSON(http.StatusInternalServerError, map[string]string{"error": "Search failed"})
	}
	if total == 0 {
		Logger.Info("Search returned no results", "searchTerm", searchTerm)
		return context.NoContent(http.StatusNoContent)
	}
	return context.JSON(http.StatusOK, searchResponse{Term: searchTerm, Total: total, Hits: hits})
}

// GetAboutInfo returns information about the application and its content
func (serverHandler *ServerHandler) GetAboutInfo(context echo.Context) error {
	attractions := catalog.Attractions()
	places := 0
	for _, category := range attractions {
		places += len(category.Places)
	}
	cuisines := catalog.Cuisines()
	restaurants := 0
	for _, cuisine := range cuisines {
		restaurants += len(cuisine.Restaurants)
	}

	aboutInfo := map[string]interface{}{
		"name":                 serverHandler.ServerConfig.AppName,
		"version":              serverHandler.ServerConfig.Version,
		"attractionCategories": len(attractions),
		"places":               places,
		"cuisines":             len(cuisines),
		"restaurants":          restaurants,
		"tips":                 len(catalog.Tips()),
		"languages":            len(catalog.Languages()),
	}
	return context.JSON(http.StatusOK, aboutInfo)
}
