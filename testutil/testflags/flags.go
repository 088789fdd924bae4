package testflags

import (
	"os"
	"testing"
)

// IntegrationTest skips t unless SV2_ENABLE_INTEGRATION_TESTS is set. These
// tests bind real TCP ports.
func IntegrationTest(t *testing.T) {
	if _, ok := os.LookupEnv("SV2_ENABLE_INTEGRATION_TESTS"); !ok {
		t.SkipNow()
	}
	t.Parallel()
}
