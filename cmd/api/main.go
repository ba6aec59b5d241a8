package main

import (
	_ "github.com/eromsubebe/poc-auto-quote-response/docs"
	"github.com/eromsubebe/poc-auto-quote-response/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Freight RFQ Auto-Quote API
// @version         1.0
// @description     RFQ intake-to-quote service (rate catalog, SLA tracking, draft quotes) backed by DynamoDB.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /api

func main() {
	routes.Run()
}
