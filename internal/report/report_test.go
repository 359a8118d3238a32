package report

import (
	"strings"
	"testing"
	"time"

	"littlewords/internal/models"
)

func TestRender(t *testing.T) {
	age := 18
	birthDate := "2023-01-15"
	child := &models.Child{
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
						{Word: "doll", Understanding: true},
					},
				},
			},
		},
	}

	var sb strings.Builder
	now := time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)
	if err := Render(&sb, child, now); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	html := sb.String()

	for _, want := range []string{"Mia", "age 18 months", "July 15, 2024", "Toys", "ball"} {
		if !strings.Contains(html, want) {
			t.Errorf("report missing %q", want)
		}
	}
	// Single-language reports skip the share table
	if strings.Contains(html, "Share") {
		t.Error("share table rendered for a single-language child")
	}
}

func TestRenderEscapesContent(t *testing.T) {
	child := &models.Child{
		Name:              "Mia <script>",
		SelectedLanguages: []models.Language{models.LanguageEnglish},
		Categories:        models.LanguageData{models.LanguageEnglish: {}},
	}

	var sb strings.Builder
	if err := Render(&sb, child, time.Now()); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if strings.Contains(sb.String(), "<script>") {
		t.Error("child name not escaped")
	}
}
