package serve

import "testing"

// TestProcessConfigValidation tests that invalid flag values are rejected
// before the server starts
func TestProcessConfigValidation(t *testing.T) {
	// merge persistent flags the way command execution would
	if err := ServeCmd.ParseFlags(nil); err != nil {
		t.Fatalf("Failed to parse flags: %v", err)
	}
	flags := ServeCmd.Flags()

	setFlag := func(key, value string) {
		t.Helper()
		if err := flags.Set(key, value); err != nil {
			t.Fatalf("Failed to set flag %s: %v", key, err)
		}
	}

	if err := processConfig(ServeCmd, nil); err != nil {
		t.Fatalf("Unexpected error with default flags: %v", err)
	}

	setFlag("log-level", "verbose")
	if err := processConfig(ServeCmd, nil); err == nil {
		t.Error("Expected an error for an invalid log level")
	}
	setFlag("log-level", "info")

	setFlag("page-size", "0")
	if err := processConfig(ServeCmd, nil); err == nil {
		t.Error("Expected an error for a non-positive page size")
	}
	setFlag("page-size", "20")

	setFlag("max-page-size", "5")
	if err := processConfig(ServeCmd, nil); err == nil {
		t.Error("Expected an error when max-page-size is below page-size")
	}
	setFlag("max-page-size", "100")
}
