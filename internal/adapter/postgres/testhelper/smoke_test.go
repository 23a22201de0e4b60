package testhelper

import (
	"context"
	"testing"
)

func TestSetupTestDB_Smoke(t *testing.T) {
	pool := SetupTestDB(t)

	profile := SeedProfile(t, pool)
	SeedWorkflow(t, pool, profile.ID)

	var count int
	err := pool.QueryRow(
		context.Background(),
		`SELECT count(*) FROM workflows WHERE profile_id = $1`,
		profile.ID,
	).Scan(&count)
	if err != nil {
		t.Fatalf("expected workflow in DB, got error: %v", err)
	}

	if count != 1 {
		t.Fatalf("expected 1 workflow, got %d", count)
	}
}

func TestSetupTestDB_ApplicationName(t *testing.T) {
	pool := SetupTestDB(t)

	var name string
	if err := pool.QueryRow(context.Background(), `SHOW application_name`).Scan(&name); err != nil {
		t.Fatalf("show application_name: %v", err)
	}
	if name != ApplicationName {
		t.Errorf("application_name = %q, want %q", name, ApplicationName)
	}
}
