package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/communitylens/ledger/cmd/app"
)

// @contact.name   Community Ledger
// @contact.url    https://github.com/communitylens/ledger
//
// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html
//
// @externalDocs.description  OpenAPI
// @externalDocs.url          https://swagger.io/resources/open-api/
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
