package stats

import (
	"reflect"
	"testing"

	"littlewords/internal/models"
)

func intp(v int) *int { return &v }

func testChild() *models.Child {
	return &models.Child{
		ID:                "child-1",
		Name:              "Mia",
		SelectedLanguages: []models.Language{models.LanguageEnglish, models.LanguageSpanish},
		Categories: models.LanguageData{
			models.LanguageEnglish: {
				"toys": &models.Category{
					Title:    "Toys",
					Language: models.LanguageEnglish,
					Words: []models.Word{
						{Word: "ball", Understanding: true, Speaking: true, FirstSpokenAge: intp(18)},
						{Word: "car", Understanding: true, Speaking: true, FirstSpokenAge: intp(20)},
						{Word: "doll", Understanding: true},
						{Word: "blocks"},
					},
				},
				"animals": &models.Category{
					Title:    "Animals",
					Language: models.LanguageEnglish,
					Words: []models.Word{
						{Word: "dog", Understanding: true, Speaking: true, FirstSpokenAge: intp(18)},
						{Word: "cat", Understanding: true},
					},
				},
				"vehicles": &models.Category{
					Title:    "Vehicles",
					Language: models.LanguageEnglish,
					Words: []models.Word{
						{Word: "truck", Understanding: true, Speaking: true},
					},
				},
			},
			models.LanguageSpanish: {
				"toys": &models.Category{
					Title:    "Juguetes",
					Language: models.LanguageSpanish,
					Words: []models.Word{
						{Word: "pelota", Understanding: true, Speaking: true, FirstSpokenAge: intp(21)},
					},
				},
			},
		},
	}
}

func TestTotalsForLanguage(t *testing.T) {
	child := testChild()

	got := TotalsForLanguage(child, models.LanguageEnglish)
	if got.Understood != 6 || got.Spoken != 4 {
		t.Errorf("english totals = %d understood, %d spoken; want 6, 4", got.Understood, got.Spoken)
	}

	got = TotalsForLanguage(child, models.LanguagePortuguese)
	if got.Understood != 0 || got.Spoken != 0 {
		t.Errorf("absent language totals = %+v, want zeros", got)
	}
}

func TestCategoryBreakdownOrderAndCounts(t *testing.T) {
	child := testChild()

	breakdown := CategoryBreakdown(child, models.LanguageEnglish)
	if len(breakdown) != 3 {
		t.Fatalf("got %d categories, want 3", len(breakdown))
	}

	// Catalog order first (toys before animals), then custom categories
	keys := []string{breakdown[0].Key, breakdown[1].Key, breakdown[2].Key}
	want := []string{"toys", "animals", "vehicles"}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("order = %v, want %v", keys, want)
	}

	toys := breakdown[0]
	if toys.Title != "Toys" || toys.WordCount != 4 || toys.Understood != 3 || toys.Spoken != 2 {
		t.Errorf("toys = %+v", toys)
	}
	if !reflect.DeepEqual(toys.SpokenWords, []string{"ball", "car"}) {
		t.Errorf("spoken words = %v", toys.SpokenWords)
	}
}

func TestCategoryBreakdownAbsentLanguage(t *testing.T) {
	if got := CategoryBreakdown(testChild(), models.LanguagePortuguese); got != nil {
		t.Errorf("got %v, want nil", got)
	}
}

func TestLanguageShares(t *testing.T) {
	child := testChild()

	shares := LanguageShares(child)
	if len(shares) != 2 {
		t.Fatalf("got %d shares, want 2", len(shares))
	}
	// 4 of 5 spoken words are english
	if shares[0].Language != models.LanguageEnglish || shares[0].Spoken != 4 || shares[0].Percent != 80 {
		t.Errorf("english share = %+v", shares[0])
	}
	if shares[1].Language != models.LanguageSpanish || shares[1].Spoken != 1 || shares[1].Percent != 20 {
		t.Errorf("spanish share = %+v", shares[1])
	}
}

func TestLanguageSharesNoSpokenWords(t *testing.T) {
	child := &models.Child{
		SelectedLanguages: []models.Language{models.LanguageEnglish},
		Categories: models.LanguageData{
			models.LanguageEnglish: {
				"toys": &models.Category{Title: "Toys", Words: []models.Word{{Word: "ball"}}},
			},
		},
	}

	shares := LanguageShares(child)
	if len(shares) != 1 || shares[0].Percent != 0 {
		t.Errorf("shares = %+v, want a single zero-percent share", shares)
	}
}

func TestAgeHistogram(t *testing.T) {
	child := testChild()

	buckets := AgeHistogram(child, models.LanguageEnglish)
	// "truck" is spoken with no recorded age and must not appear
	want := []AgeBucket{{AgeMonths: 18, Count: 2}, {AgeMonths: 20, Count: 1}}
	if !reflect.DeepEqual(buckets, want) {
		t.Errorf("buckets = %v, want %v", buckets, want)
	}
}

func TestCumulativeAgeHistogram(t *testing.T) {
	child := testChild()

	result := CumulativeAgeHistogram(child)
	english, ok := result[models.LanguageEnglish]
	if !ok {
		t.Fatal("english missing from cumulative histogram")
	}
	want := []AgeBucket{{AgeMonths: 18, Count: 2}, {AgeMonths: 20, Count: 3}}
	if !reflect.DeepEqual(english, want) {
		t.Errorf("english = %v, want %v", english, want)
	}

	spanish := result[models.LanguageSpanish]
	if !reflect.DeepEqual(spanish, []AgeBucket{{AgeMonths: 21, Count: 1}}) {
		t.Errorf("spanish = %v", spanish)
	}
}
