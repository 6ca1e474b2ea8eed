package book

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPickBest(t *testing.T) {
	best, ok := PickBest([]Candidate{
		{Value: "  ", Priority: 0, Source: "a"},
		{Value: "third", Priority: 2, Source: "c"},
		{Value: " second ", Priority: 1, Source: "b"},
	})
	require.True(t, ok)
	require.Equal(t, "second", best.Value)
	require.Equal(t, "b", best.Source)

	_, ok = PickBest([]Candidate{{Value: ""}, {Value: "\t"}})
	require.False(t, ok)

	_, ok = PickBest(nil)
	require.False(t, ok)
}

func TestPickBestStableForEqualPriority(t *testing.T) {
	best, ok := PickBest([]Candidate{
		{Value: "first", Priority: 1, Source: "a"},
		{Value: "second", Priority: 1, Source: "b"},
	})
	require.True(t, ok)
	require.Equal(t, "first", best.Value)
}

func TestMergeRegistryTitleWins(t *testing.T) {
	m := NewPriorityMerger()
	got := m.Merge([]*PartialRecord{
		{Source: SourceRegistry, Title: "O CORTIÇO", Author: "Aluísio Azevedo"},
		{Source: SourceGoogleBooks, Title: "O Cortiço (Edição Especial)", Author: "Azevedo, Aluísio", PageCount: 240, Description: "Romance naturalista."},
	})

	require.Equal(t, "O CORTIÇO", got.Title)
	require.Equal(t, "Aluísio Azevedo", got.Author)
	// fields the registry left empty fall back to the default order
	require.Equal(t, 240, got.PageCount)
	require.Equal(t, "Romance naturalista.", got.Description)
	require.Equal(t, []string{SourceRegistry, SourceGoogleBooks}, got.SourcesUsed)
}

func TestMergeRegistryWithoutTitleIsLowestPriority(t *testing.T) {
	m := NewPriorityMerger()
	got := m.Merge([]*PartialRecord{
		{Source: SourceRegistry, Publisher: "Registry Pub"},
		{Source: SourceOpenLibrary, Title: "Dom Casmurro", Publisher: "OL Pub"},
	})

	require.Equal(t, "OL Pub", got.Publisher)
	require.Equal(t, []string{SourceOpenLibrary}, got.SourcesUsed)
}

func TestMergeDefaultOrder(t *testing.T) {
	m := NewPriorityMerger()
	got := m.Merge([]*PartialRecord{
		{Source: SourceCrossref, Title: "Crossref Title", Author: "Crossref Author", PublicationDate: "1890"},
		{Source: SourceOpenLibrary, Title: "OL Title", Language: "por"},
		{Source: SourceGoogleBooks, Title: "GB Title"},
	})

	require.Equal(t, "GB Title", got.Title)
	require.Equal(t, "Crossref Author", got.Author)
	require.Equal(t, "por", got.Language)
	require.Equal(t, "1890", got.PublicationDate)
	require.Equal(t, []string{SourceCrossref, SourceOpenLibrary, SourceGoogleBooks}, got.SourcesUsed)
}

func TestMergeRegistryExtendedFields(t *testing.T) {
	m := NewPriorityMerger()
	got := m.Merge([]*PartialRecord{
		{
			Source:         SourceRegistry,
			Title:          "Vidas Secas",
			Format:         "Livro impresso",
			TargetAudience: "Juvenil",
			City:           "Rio de Janeiro",
			State:          "RJ",
			Country:        "Brasil",
			Keywords:       []string{"seca", " ", "sertão", "seca"},
		},
	})

	require.Equal(t, "Livro impresso", got.Format)
	require.Equal(t, "Juvenil", got.TargetAudience)
	require.Equal(t, "RJ", got.State)
	require.Equal(t, []string{"seca", "sertão"}, got.Keywords)
}

func TestMergeNeverOverwritesWithEmpty(t *testing.T) {
	m := NewPriorityMerger()
	got := m.Merge([]*PartialRecord{
		{Source: SourceOpenLibrary, Subtitle: "Um romance"},
		{Source: SourceGoogleBooks, Subtitle: "   "},
	})
	require.Equal(t, "Um romance", got.Subtitle)
}

func TestMergeDescriptionCleaner(t *testing.T) {
	m := NewPriorityMerger(WithDescriptionCleaner(func(s string) string {
		if strings.Contains(s, "function(") {
			return ""
		}
		return s
	}))
	got := m.Merge([]*PartialRecord{
		{Source: SourceGoogleBooks, Description: "function(){ var x = 1; }"},
		{Source: SourceOpenLibrary, Description: "A clean synopsis."},
	})
	require.Equal(t, "A clean synopsis.", got.Description)
	require.Equal(t, []string{SourceOpenLibrary}, got.SourcesUsed)
}

func TestMergeEmpty(t *testing.T) {
	got := NewPriorityMerger().Merge(nil)
	require.Empty(t, got.Title)
	require.Empty(t, got.SourcesUsed)

	got = NewPriorityMerger().Merge([]*PartialRecord{nil})
	require.Empty(t, got.SourcesUsed)
}

func TestOutcomeConstructors(t *testing.T) {
	require.Equal(t, OutcomeEmpty, Success(nil).Kind)
	require.Equal(t, OutcomeEmpty, Success(&PartialRecord{Source: "x"}).Kind)
	require.True(t, Success(&PartialRecord{Source: "x", Title: "T"}).OK())
	require.Equal(t, "failure", Failure(ErrNoDataFound).Kind.String())
}

func TestResolvedRecordHelpers(t *testing.T) {
	var r ResolvedRecord
	require.False(t, r.IsSufficient())
	r.Title = "T"
	require.False(t, r.IsSufficient())
	r.Author = "A"
	require.True(t, r.IsSufficient())

	r.AddSource("a")
	r.AddSource("b")
	r.AddSource("a")
	require.Equal(t, []string{"a", "b"}, r.SourcesUsed)
}
