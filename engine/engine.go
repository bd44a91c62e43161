package engine

import (
	"fmt"
	"log/slog"

	"github.com/blevesearch/bleve"
	"github.com/labstack/echo/v4"

	"github.com/drummonds/travelGenius/catalog"
	"github.com/drummonds/travelGenius/config"
)

// Logger is global since we will need it everywhere
var Logger *slog.Logger

// ServerHandler will inject the variables needed into routes
type ServerHandler struct {
	SearchDB     bleve.Index
	Echo         *echo.Echo
	ServerConfig config.ServerConfig
	searchDocs   map[string]searchDocument
}

// NewServerHandler builds the search index and returns a handler ready for RegisterRoutes
func NewServerHandler(e *echo.Echo, serverConfig config.ServerConfig) (*ServerHandler, error) {
	searchDB, docs, err := SetupSearchDB()
	if err != nil {
		return nil, fmt.Errorf("setting up search index: %w", err)
	}
	return &ServerHandler{
		SearchDB:     searchDB,
		Echo:         e,
		ServerConfig: serverConfig,
		searchDocs:   docs,
	}, nil
}

// StartupChecks runs all the sanity checks before we start serving
func (serverHandler *ServerHandler) StartupChecks() error {
	if err := catalog.Validate(); err != nil {
		Logger.Error("Catalog failed validation", "error", err)
		return err
	}
	count, err := serverHandler.SearchDB.DocCount()
	if err != nil {
		return fmt.Errorf("counting indexed documents: %w", err)
	}
	if int(count) != len(serverHandler.searchDocs) {
		return fmt.Errorf("search index holds %d documents, expected %d", count, len(serverHandler.searchDocs))
	}
	Logger.Info("Startup checks passed", "indexedDocuments", count)
	return nil
}

// RegisterRoutes adds the catalog API to the echo instance
func (serverHandler *ServerHandler) RegisterRoutes() {
	api := serverHandler.Echo.Group("/api")
	api.GET("/home", serverHandler.GetHome)
	api.GET("/attractions", serverHandler.GetAttractions)
	api.GET("/cuisines", serverHandler.GetCuisines)
	api.GET("/tips", serverHandler.GetTips)
	api.GET("/languages", serverHandler.GetLanguages)
	api.GET("/search", serverHandler.SearchCatalog)
	api.GET("/about", serverHandler.GetAboutInfo)
}

// Close releases the search index
func (serverHandler *ServerHandler) Close() error {
	return serverHandler.SearchDB.Close()
}
