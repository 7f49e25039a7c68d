package ui

import (
	"os"
	"testing"
)

func TestMain(m *testing.M) {
	// Keep tests away from the user's config and debug settings.
	os.Setenv("ADPF_DEBUG", "")
	os.Setenv("ADPF_SECTION", "")

	os.Exit(m.Run())
}
