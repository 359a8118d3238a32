package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"littlewords/internal/models"
	"littlewords/internal/storage"
)

func newTestRepo(t *testing.T) (*AppRepository, storage.Store) {
	t.Helper()
	store := storage.NewMemoryStore()
	return NewAppRepository(store, zap.NewNop()), store
}

func TestInitializeFreshState(t *testing.T) {
	repo, _ := newTestRepo(t)

	data := repo.Initialize(context.Background())
	if data == nil {
		t.Fatal("Initialize() returned nil")
	}
	if len(data.Children) != 0 {
		t.Errorf("fresh state has %d children, want 0", len(data.Children))
	}
	if data.ActiveChildID != nil {
		t.Error("fresh state has an active child")
	}
	if data.Version != CurrentVersion {
		t.Errorf("version = %q, want %q", data.Version, CurrentVersion)
	}
}

func TestInitializeCorruptBlobDegradesToFresh(t *testing.T) {
	repo, store := newTestRepo(t)
	if err := store.Set(context.Background(), StorageKey, "{not json"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	data := repo.Initialize(context.Background())
	if data == nil {
		t.Fatal("Initialize() returned nil")
	}
	if len(data.Children) != 0 || data.Version != CurrentVersion {
		t.Error("corrupt blob did not degrade to fresh state")
	}
}

func TestSaveInitializeRoundTrip(t *testing.T) {
	repo, _ := newTestRepo(t)

	birthDate := "2023-01-15"
	age := 18
	created := time.Date(2024, 7, 15, 10, 0, 0, 0, time.UTC)
	data := models.NewAppData(CurrentVersion)
	child := &models.Child{
		ID:                "child-1",
		Name:              "Mia",
		BirthDate:         &birthDate,
		SelectedLanguages: []models.Language{models.LanguageEnglish},
		Categories: models.LanguageData{
			models.LanguageEnglish: {
				"toys": &models.Category{
					Title:    "Toys",
					Language: models.LanguageEnglish,
					Words: []models.Word{
						{Word: "ball", Understanding: true, Speaking: true, FirstSpokenAge: &age},
						{Word: "doll"},
					},
				},
			},
		},
		CreatedAt:    created,
		LastModified: created,
	}
	data.Children[child.ID] = child
	id := child.ID
	data.ActiveChildID = &id

	if err := repo.Save(context.Background(), data); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	loaded := repo.Initialize(context.Background())

	want, _ := json.Marshal(data)
	got, _ := json.Marshal(loaded)
	if string(want) != string(got) {
		t.Errorf("round-trip mismatch:\nsaved:  %s\nloaded: %s", want, got)
	}
}

func TestInitializeStampsMissingVersion(t *testing.T) {
	repo, store := newTestRepo(t)
	err := store.Set(context.Background(), StorageKey, `{"children":{},"activeChildId":null}`)
	if err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	for i := 0; i < 2; i++ {
		data := repo.Initialize(context.Background())
		if data.Version != CurrentVersion {
			t.Fatalf("pass %d: version = %q, want %q", i, data.Version, CurrentVersion)
		}
		if err := repo.Save(context.Background(), data); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
	}
}

func TestInitializeFixesNilChildrenMap(t *testing.T) {
	repo, store := newTestRepo(t)
	err := store.Set(context.Background(), StorageKey, `{"activeChildId":null,"version":"1.0"}`)
	if err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	data := repo.Initialize(context.Background())
	if data.Children == nil {
		t.Fatal("children map is nil after load")
	}
}

func TestReset(t *testing.T) {
	repo, store := newTestRepo(t)
	if err := repo.Save(context.Background(), models.NewAppData(CurrentVersion)); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if err := repo.Reset(context.Background()); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if _, err := store.Get(context.Background(), StorageKey); !errors.Is(err, storage.ErrKeyNotFound) {
		t.Errorf("Get() after reset error = %v, want ErrKeyNotFound", err)
	}
}

func TestMarkBackedUp(t *testing.T) {
	repo, _ := newTestRepo(t)
	data := models.NewAppData(CurrentVersion)
	at := time.Date(2024, 7, 15, 10, 0, 0, 0, time.UTC)

	if err := repo.MarkBackedUp(context.Background(), data, at); err != nil {
		t.Fatalf("MarkBackedUp() error = %v", err)
	}
	if data.LastBackup == nil || !data.LastBackup.Equal(at) {
		t.Errorf("lastBackup = %v, want %v", data.LastBackup, at)
	}

	loaded := repo.Initialize(context.Background())
	if loaded.LastBackup == nil || !loaded.LastBackup.Equal(at) {
		t.Error("lastBackup not persisted")
	}
}
