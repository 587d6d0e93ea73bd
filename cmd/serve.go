package cmd

import (
	"fmt"
	"net/http"
	"path"

	gorilla "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/musicianhub/musician-services/api/handlers"
	"github.com/musicianhub/musician-services/api/middleware"
	services "github.com/musicianhub/musician-services/api/services"
	docs "github.com/musicianhub/musician-services/docs"
	"github.com/musicianhub/musician-services/static"

	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Musician API
// @version v1
// @description API for creating and managing relationships between artists and genres of music.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server for handling requests",
	Run: func(cmd *cobra.Command, args []string) {

		// Load the config, initialize the database and set up logging
		commonSetUp()
		defer musicianDB.Close()

		// Ensure the schema exists before accepting requests
		if err := musicianDB.InitTables(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize database tables")
		}

		// Create routes
		r := mux.NewRouter()

		service := &services.Service{
			Config: appCfg,
			DB:     musicianDB,
		}

		app := r
		if appCfg.BasePath != "" {
			app = r.PathPrefix(appCfg.BasePath).Subrouter()
		}

		// Apply the middleware to the application routes
		app.Use(middleware.WithLogger)
		app.Use(middleware.SecurityHeaders)

		// Home route
		app.HandleFunc("/", handlers.Home(service)).Methods(http.MethodGet)

		// User routes. The fixed paths are registered before the {id}
		// patterns so "create" and "edit" are not read as identifiers.
		app.HandleFunc("/users", handlers.CreateUser(service)).Methods(http.MethodPost)
		app.HandleFunc("/users", handlers.GetUsers(service)).Methods(http.MethodGet)
		app.HandleFunc("/users/create", handlers.CreateUserView(service)).Methods(http.MethodGet)
		app.HandleFunc("/users/edit", handlers.UpdateUser(service)).Methods(http.MethodPost)
		app.HandleFunc("/users/{id}", handlers.GetUser(service)).Methods(http.MethodGet)
		app.HandleFunc("/users/{id}/edit", handlers.EditUserView(service)).Methods(http.MethodGet)
		app.HandleFunc("/users/{id}/delete", handlers.DeleteUser(service)).Methods(http.MethodPost)
		app.HandleFunc("/users/{id}/assign/create", handlers.AssignUser(service)).Methods(http.MethodPost)

		// Group routes
		app.HandleFunc("/groups", handlers.CreateGroup(service)).Methods(http.MethodPost)
		app.HandleFunc("/groups", handlers.GetGroups(service)).Methods(http.MethodGet)
		app.HandleFunc("/groups/create", handlers.CreateGroupView(service)).Methods(http.MethodGet)
		app.HandleFunc("/groups/edit", handlers.UpdateGroup(service)).Methods(http.MethodPost)
		app.HandleFunc("/groups/{id}/edit", handlers.EditGroupView(service)).Methods(http.MethodGet)
		app.HandleFunc("/groups/{id}/users", handlers.GroupUsers(service)).Methods(http.MethodGet)
		app.HandleFunc("/groups/{id}/delete", handlers.DeleteGroup(service)).Methods(http.MethodPost)

		// Assign routes
		app.HandleFunc("/assigns/{id}/delete", handlers.DeleteAssign(service)).Methods(http.MethodPost)

		// Static assets
		app.PathPrefix(appCfg.StaticPath).Handler(
			http.StripPrefix(appCfg.BasePath+appCfg.StaticPath+"/",
				http.FileServer(http.FS(static.FS)))).
			Methods(http.MethodGet)

		// Docs
		docs.SwaggerInfo.Host = appCfg.Host
		docs.SwaggerInfo.BasePath = appCfg.BasePath
		r.PathPrefix(appCfg.DocsPath).Handler(httpSwagger.Handler(
			httpSwagger.URL(path.Join(appCfg.DocsPath, "/doc.json")),
			httpSwagger.DeepLinking(true),
			httpSwagger.DocExpansion("none"),
			httpSwagger.DomID("swagger-ui"),
		)).Methods(http.MethodGet)

		// Compression and a last-resort panic recovery wrap the whole
		// router.
		handler := gorilla.RecoveryHandler()(gorilla.CompressHandler(r))

		log.Info().Msg(fmt.Sprintf("Server started at %s:%d", host, port))

		if err := http.ListenAndServe(fmt.Sprintf("%s:%d", host, port),
			handler); err != nil {

			log.Error().Err(err).Msg("could not start server")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&host, "host", "0.0.0.0", "host to run the server on")
	serveCmd.Flags().IntVar(&port, "port", 3000, "port to run the server on")
}
