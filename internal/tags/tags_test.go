package tags

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Ficção Juvenil", "juvenil"},
		{"Relações Familiares", "relacao familiar"},
		{"Aventuras", "aventura"},
		{"Jovens", "jovem"},
		{"Animais", "animal"},
		{"Ficção de Aventura", "aventura"},
		{"stories", ""},
		{"Fiction", ""},
		{"  ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestSingularize(t *testing.T) {
	tests := map[string]string{
		"escritores": "escritor",
		"leões":      "leão",
		"pães":       "pão",
		"jovens":     "jovem",
		"jornais":    "jornal",
		"missas":     "missa",
		"stress":     "stress",
		"mês":        "mês",
		"casa":       "casa",
	}
	for in, want := range tests {
		require.Equal(t, want, Singularize(in), in)
	}
}

func TestReduce_SynonymFamily(t *testing.T) {
	got := Reduce([]string{"família", "familiar", "vida familiar"})
	require.Equal(t, []string{"familia"}, got)
}

func TestReduce_KeepsShortestOfGroup(t *testing.T) {
	got := Reduce([]string{"literatura infantil", "infância", "criança"})
	require.Equal(t, []string{"crianca"}, got)
}

func TestReduce_SameStem(t *testing.T) {
	got := Reduce([]string{"poético", "poética"})
	require.Equal(t, []string{"poetico"}, got)
}

func TestReduce_DropsEnglishAndStopTags(t *testing.T) {
	got := Reduce([]string{"Fiction", "Young Adult", "Literatura Brasileira", "Brasil", "humor", "Livros"})
	require.Equal(t, []string{"humor"}, got)
}

func TestReduce_Cap(t *testing.T) {
	var raw []string
	for i := 0; i < 60; i++ {
		raw = append(raw, fmt.Sprintf("tema%02d", i))
	}
	raw = append(raw,
		"naturalismo", "cortiço", "guerra", "viagem", "natureza", "racismo",
		"preconceito", "filosofia", "política", "psicologia", "religião",
		"economia", "música", "matemática", "tecnologia", "educação",
		"saúde", "sociologia", "poesia", "drama", "distopia",
	)
	got := Reduce(raw)
	require.LessOrEqual(t, len(got), MaxTags)
	require.Len(t, got, MaxTags)
}

func TestReduce_Empty(t *testing.T) {
	require.Empty(t, Reduce(nil))
	require.Empty(t, Derive(Input{}))
}

func TestDerive(t *testing.T) {
	got := Derive(Input{
		Title:          "O Cortiço",
		Category:       "Ficção / Romance",
		TargetAudience: "Juvenil",
		Description:    "Uma história de amizade e aventuras no Rio de Janeiro.",
		Keywords:       []string{"naturalismo"},
		Subjects:       []string{"Literatura brasileira"},
	})

	require.Equal(t, []string{
		"romance", "juvenil", "cortico", "amizade", "aventura", "historia", "naturalismo",
	}, got)
}

func TestDerive_NeverExceedsCap(t *testing.T) {
	in := Input{
		Title:       "Memórias póstumas de Brás Cubas",
		Category:    "Romance, Drama; Poesia / Conto & Crônica | Biografia > Distopia",
		Description: "guerra viagem natureza identidade preconceito racismo sobrevivência liberdade morte medo filosofia política psicologia religião economia arte música matemática tecnologia educação saúde sociologia",
		Keywords:    []string{"realismo", "ironia", "narrador defunto", "sociedade carioca"},
	}
	require.LessOrEqual(t, len(Derive(in)), MaxTags)
}

func TestRelated(t *testing.T) {
	require.True(t, related("amor", "romance"))
	require.True(t, related("escola", "vida escolar"))
	require.False(t, related("guerra", "viagem"))
	// Containment needs at least four letters on the short side.
	require.False(t, related("mar", "amargo"))
}
