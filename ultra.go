//go:build !cli

package main

import (
	"log"
	"os"

	"github.com/common-nighthawk/go-figure"

	"github.com/hhyeonhee/ULTRA/api"
	_ "github.com/hhyeonhee/ULTRA/api/catalog"
	graphqlApi "github.com/hhyeonhee/ULTRA/api/graphql"
	_ "github.com/hhyeonhee/ULTRA/api/warehouse"
	"github.com/hhyeonhee/ULTRA/config"
	"github.com/hhyeonhee/ULTRA/service/warehouse"
)

func main() {
	config.LoadEnv()
	config.LoadAppConfig()

	files := config.ResolveCSVFiles()
	session := warehouse.NewSession(files)
	if err := session.Load(); err != nil {
		log.Fatalf("failed to load resources: %v", err)
	}
	log.Printf("Resources loaded (catalog=%s zones=%s status=%s)", files.Products, files.Zones, files.Status)

	e := api.NewServer(session)
	graphqlApi.RegisterGraphQLRoutes(e, session)

	// ASCII banner on start
	figure.NewFigure("ULTRA WMS", "slant", true).Print()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on :%s", port)
	e.Logger.Fatal(e.Start(":" + port))
}
