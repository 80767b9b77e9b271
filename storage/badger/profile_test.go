package badger

import (
	"context"
	"testing"

	"github.com/SriramKintada/SuperNetworkAI/core"
	"github.com/SriramKintada/SuperNetworkAI/storage"
)

func TestProfileBasics(t *testing.T) {
	profileRepo, embeddingRepo, membershipRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() {
		membershipRepo.Close()
		embeddingRepo.Close()
		profileRepo.Close()
		backend.Close()
	}()

	ctx := context.Background()

	profile := &core.Profile{
		Id:           core.NewID(),
		UserId:       core.NewID(),
		Name:         "Alan Turing",
		Headline:     "Mathematician",
		Skills:       []string{"cryptanalysis", "computation"},
		Visibility:   core.VisibilityPublic,
		ShowInSearch: true,
	}

	added, err := profileRepo.UpsertProfiles(ctx, profile)
	if err != nil {
		t.Fatalf("Failed to upsert profile: %v", err)
	}
	if len(added) != 1 {
		t.Fatalf("Expected 1 profile, got %d", len(added))
	}
	if added[0].InsertedAt.IsZero() || added[0].UpdatedAt.IsZero() {
		t.Fatal("Expected timestamps to be set on insert")
	}

	retrieved, err := profileRepo.GetProfile(ctx, profile.Id)
	if err != nil {
		t.Fatalf("Failed to get profile: %v", err)
	}
	if retrieved.Name != "Alan Turing" {
		t.Fatalf("Expected 'Alan Turing', got '%s'", retrieved.Name)
	}
	if len(retrieved.Skills) != 2 {
		t.Fatalf("Expected 2 skills, got %d", len(retrieved.Skills))
	}
}

func TestProfileUpsertPreservesInsertedAt(t *testing.T) {
	profileRepo, _, _, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer backend.Close()

	ctx := context.Background()

	profile := &core.Profile{
		Id: core.NewID(), UserId: core.NewID(), Name: "Original",
		Visibility: core.VisibilityPublic,
	}
	if _, err := profileRepo.UpsertProfiles(ctx, profile); err != nil {
		t.Fatalf("Failed to upsert profile: %v", err)
	}

	first, err := profileRepo.GetProfile(ctx, profile.Id)
	if err != nil {
		t.Fatalf("Failed to get profile: %v", err)
	}

	update := &core.Profile{
		Id: profile.Id, UserId: profile.UserId, Name: "Updated",
		Visibility: core.VisibilityPublic,
	}
	if _, err := profileRepo.UpsertProfiles(ctx, update); err != nil {
		t.Fatalf("Failed to update profile: %v", err)
	}

	second, err := profileRepo.GetProfile(ctx, profile.Id)
	if err != nil {
		t.Fatalf("Failed to get updated profile: %v", err)
	}
	if second.Name != "Updated" {
		t.Fatalf("Expected 'Updated', got '%s'", second.Name)
	}
	if !second.InsertedAt.Equal(first.InsertedAt) {
		t.Fatal("Expected InsertedAt to be preserved across updates")
	}
}

func TestProfileNotFound(t *testing.T) {
	profileRepo, _, _, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer backend.Close()

	_, err = profileRepo.GetProfile(context.Background(), "missing")
	if err != storage.ErrNotFound {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestProfileGetMultipleSkipsMissing(t *testing.T) {
	profileRepo, _, _, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer backend.Close()

	ctx := context.Background()

	a := &core.Profile{Id: core.NewID(), UserId: core.NewID(), Name: "A", Visibility: core.VisibilityPublic}
	b := &core.Profile{Id: core.NewID(), UserId: core.NewID(), Name: "B", Visibility: core.VisibilityPublic}
	if _, err := profileRepo.UpsertProfiles(ctx, a, b); err != nil {
		t.Fatalf("Failed to upsert profiles: %v", err)
	}

	results, err := profileRepo.GetProfiles(ctx, a.Id, "missing", b.Id)
	if err != nil {
		t.Fatalf("Failed to get profiles: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Expected 2 profiles, got %d", len(results))
	}
	// Order follows the requested ids.
	if results[0].Name != "A" || results[1].Name != "B" {
		t.Fatalf("Expected [A B], got [%s %s]", results[0].Name, results[1].Name)
	}
}

func TestProfileDelete(t *testing.T) {
	profileRepo, _, _, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer backend.Close()

	ctx := context.Background()

	profile := &core.Profile{Id: core.NewID(), UserId: core.NewID(), Name: "Gone", Visibility: core.VisibilityPublic}
	if _, err := profileRepo.UpsertProfiles(ctx, profile); err != nil {
		t.Fatalf("Failed to upsert profile: %v", err)
	}

	if err := profileRepo.DeleteProfiles(ctx, profile.Id); err != nil {
		t.Fatalf("Failed to delete profile: %v", err)
	}
	if _, err := profileRepo.GetProfile(ctx, profile.Id); err != storage.ErrNotFound {
		t.Fatalf("Expected ErrNotFound after delete, got %v", err)
	}
	if err := profileRepo.DeleteProfiles(ctx, profile.Id); err != storage.ErrNotFound {
		t.Fatalf("Expected ErrNotFound deleting twice, got %v", err)
	}
}

func TestGetAllProfiles(t *testing.T) {
	profileRepo, _, _, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer backend.Close()

	ctx := context.Background()

	for i := 0; i < 5; i++ {
		p := &core.Profile{Id: core.NewID(), UserId: core.NewID(), Name: "Person", Visibility: core.VisibilityPublic}
		if _, err := profileRepo.UpsertProfiles(ctx, p); err != nil {
			t.Fatalf("Failed to upsert profile: %v", err)
		}
	}

	all, err := profileRepo.GetAllProfiles(ctx)
	if err != nil {
		t.Fatalf("Failed to get all profiles: %v", err)
	}
	if len(all) != 5 {
		t.Fatalf("Expected 5 profiles, got %d", len(all))
	}
}
