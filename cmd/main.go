// cmd/main.go
package main

import (
	"product-insights-api/app"
)

// @title           Product Insights API
// @version         1.0
// @description     Read-only listing, statistics and price histogram endpoints over the product transaction dataset.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT

// @host      localhost:5000
// @BasePath  /
func main() {
	app.Run()
}
