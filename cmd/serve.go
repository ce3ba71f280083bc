package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/hhyeonhee/ULTRA/api"
	_ "github.com/hhyeonhee/ULTRA/api/catalog"
	graphqlApi "github.com/hhyeonhee/ULTRA/api/graphql"
	_ "github.com/hhyeonhee/ULTRA/api/warehouse"
	"github.com/hhyeonhee/ULTRA/config"
	"github.com/hhyeonhee/ULTRA/service/warehouse"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the warehouse registry REST/GraphQL server",
	Run: func(cmd *cobra.Command, args []string) {
		config.LoadAppConfig()
		session := warehouse.NewSession(config.ResolveCSVFiles())
		if err := session.Load(); err != nil {
			log.Fatalf("load resources: %v", err)
		}

		e := api.NewServer(session)
		graphqlApi.RegisterGraphQLRoutes(e, session)

		port := os.Getenv("PORT")
		if port == "" {
			port = "8080"
		}
		log.Printf("Server running on :%s", port)
		e.Logger.Fatal(e.Start(":" + port))
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
