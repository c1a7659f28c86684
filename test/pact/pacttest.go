//go:build pact
// +build pact

package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const (
	ProviderName = "repairshop-api"
	ConsumerName = "shop-portal"

	StateCatalogBaseline = "catalog baseline"
	StatePartExists      = "part 7f1c exists"
	StatePartMissing     = "no part with the requested id"
	StateAdminAccount    = "admin account provisioned"
)

const (
	ExistingPartID = "7f1c9a52-3d44-4a0b-9a67-2f8d1c5e0b11"
	MissingPartID  = "00000000-0000-0000-0000-000000000404"

	AdminEmail    = "admin@pact.example"
	AdminPassword = "pact-admin-pass"
)

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// PactFile returns the canonical pact file path for the shop portal consumer.
func PactFile(t testing.TB) string {
	t.Helper()
	return filepath.Join(PactDir(t), ConsumerName+"-"+ProviderName+".json")
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

// ExamplePartPayload provides stable test data for pact interactions.
func ExamplePartPayload() map[string]any {
	return map[string]any{
		"id":            ExistingPartID,
		"name":          "Brake Pad Set",
		"category":      "brakes",
		"unitPrice":     49.90,
		"stockQuantity": 12,
	}
}

// projectRoot walks up from this file to the workspace root.
func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}
