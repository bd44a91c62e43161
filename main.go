package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/oklog/ulid/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/drummonds/travelGenius/catalog"
	config "github.com/drummonds/travelGenius/config"
	engine "github.com/drummonds/travelGenius/engine"
	"github.com/drummonds/travelGenius/webapp"
)

// Logger is global since we will need it everywhere
var Logger *slog.Logger

// maxPortRetries is how many successive ports we try when the configured one is taken
const maxPortRetries = 5

// injectGlobals injects all of our globals into their packages
func injectGlobals(logger *slog.Logger) {
	Logger = logger
	engine.Logger = Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	var configFile string

	serve := func(cmd *cobra.Command, args []string) error {
		serverConfig, logger, err := config.SetupServer(v, configFile)
		if err != nil {
			return err
		}
		injectGlobals(logger)
		return runServer(serverConfig)
	}

	root := &cobra.Command{
		Use:          "travelgenius",
		Short:        "Travel Genius travel companion web app",
		SilenceUsage: true,
		RunE:         serve,
	}
	root.PersistentFlags().StringVar(&configFile, "config", "", "config file (default config/serverConfig.toml or ./serverConfig.toml)")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the web app and the catalog API",
		RunE:  serve,
	}
	for _, cmd := range []*cobra.Command{root, serveCmd} {
		cmd.Flags().String("addr", "", "IP address to bind, empty binds all addresses")
		cmd.Flags().String("port", "", "port to listen on")
	}
	bindServeFlags := func(cmd *cobra.Command, args []string) error {
		if err := v.BindPFlag("serverConfig.ServerAddr", cmd.Flags().Lookup("addr")); err != nil {
			return err
		}
		return v.BindPFlag("serverConfig.ServerPort", cmd.Flags().Lookup("port"))
	}
	root.PreRunE = bindServeFlags
	serveCmd.PreRunE = bindServeFlags

	root.AddCommand(serveCmd, newCatalogCmd())
	return root
}

func newCatalogCmd() *cobra.Command {
	var section string
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print the content catalog as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeCatalog(cmd.OutOrStdout(), section)
		},
	}
	cmd.Flags().StringVar(&section, "section", "all", "all, home, attractions, cuisines, tips or languages")
	return cmd
}

// writeCatalog prints one section of the catalog, or all of it
func writeCatalog(w io.Writer, section string) error {
	var data interface{}
	switch section {
	case "all":
		data = map[string]interface{}{
			"home":        catalog.Home(),
			"attractions": catalog.Attractions(),
			"cuisines":    catalog.Cuisines(),
			"tips":        catalog.Tips(),
			"languages":   catalog.Languages(),
		}
	case "home":
		data = catalog.Home()
	case "attractions":
		data = catalog.Attractions()
	case "cuisines":
		data = catalog.Cuisines()
	case "tips":
		data = catalog.Tips()
	case "languages":
		data = catalog.Languages()
	default:
		return fmt.Errorf("unknown catalog section %q", section)
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// newServer wires the API, static assets and the go-app handler onto a fresh echo instance
func newServer(serverConfig config.ServerConfig) (*echo.Echo, *engine.ServerHandler, error) {
	e := echo.New()
	e.HideBanner = true
	serverHandler, err := engine.NewServerHandler(e, serverConfig)
	if err != nil {
		return nil, nil, err
	}
	if err := serverHandler.StartupChecks(); err != nil {
		serverHandler.Close()
		return nil, nil, err
	}

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return ulid.Make().String() },
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, values middleware.RequestLoggerValues) error {
			Logger.Info("request",
				"method", values.Method,
				"uri", values.URI,
				"status", values.Status,
				"duration_ms", values.Latency.Milliseconds(),
				"request_id", values.RequestID,
			)
			return nil
		},
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: serverConfig.CORSOrigins,
	}))

	serverHandler.RegisterRoutes()

	Logger.Info("Setting up go-app WASM UI")
	appHandler := webapp.Handler(webapp.Options{
		Name:        serverConfig.AppName,
		Description: serverConfig.AppDescription,
		Version:     serverConfig.Version,
		Stylesheet:  "/webapp/webapp.css",
	})

	// Serve static assets
	e.Static("/web", serverConfig.WebDir)
	e.File("/webapp/webapp.css", serverConfig.StylesheetPath)

	// Serve go-app handler for all other routes (must be last)
	e.Any("/*", echo.WrapHandler(appHandler))
	return e, serverHandler, nil
}

func runServer(serverConfig config.ServerConfig) error {
	e, serverHandler, err := newServer(serverConfig)
	if err != nil {
		Logger.Error("Unable to set up server", "error", err)
		return err
	}
	defer serverHandler.Close()

	if serverConfig.ListenAddrIP == "" {
		Logger.Info("No Ip Addr set, binding on ALL addresses")
	}

	// Try to start server with automatic port increment if port is in use
	startPort := serverConfig.ListenAddrPort
	var startErr error
	for attempt := 0; attempt < maxPortRetries; attempt++ {
		addr := fmt.Sprintf("%s:%s", serverConfig.ListenAddrIP, serverConfig.ListenAddrPort)
		Logger.Info("Attempting to start server", "address", addr, "attempt", attempt+1)

		startErr = e.Start(addr)
		if startErr == nil || !isAddressInUse(startErr) {
			break
		}
		Logger.Warn("Port already in use, trying next port",
			"port", serverConfig.ListenAddrPort,
			"attempt", attempt+1,
			"max_attempts", maxPortRetries)
		nextPort, err := incrementPort(serverConfig.ListenAddrPort)
		if err != nil {
			return err
		}
		serverConfig.ListenAddrPort = nextPort
	}
	if startErr != nil && isAddressInUse(startErr) {
		Logger.Error("Failed to find available port after maximum retries",
			"start_port", startPort,
			"max_retries", maxPortRetries)
	}
	return startErr
}

// incrementPort returns the port after the given one
func incrementPort(port string) (string, error) {
	portNum, err := strconv.Atoi(port)
	if err != nil {
		return "", fmt.Errorf("invalid port %q: %w", port, err)
	}
	return strconv.Itoa(portNum + 1), nil
}

// isAddressInUse checks if the error is due to address already in use
func isAddressInUse(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "address already in use")
}
