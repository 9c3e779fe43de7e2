// repository/main_test.go
package repository

import (
	"os"
	"product-insights-api/logger"
	"testing"
)

// TestMain runs setup before any tests in this package are executed.
func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}
