package tags

// All terms below are in normalized form: lowercase, singular, no accents.

// fillerTerms are removed from inside a tag ("ficção juvenil" -> "juvenil").
var fillerTerms = map[string]bool{
	"ficcao":  true,
	"fiction": true,
	"stories": true,
	"story":   true,
}

// connectors are trimmed from the edges of a tag after filler removal.
var connectors = map[string]bool{
	"de": true, "da": true, "do": true, "das": true, "dos": true,
	"e": true, "em": true, "of": true, "and": true, "&": true,
}

// stopTags are dropped outright: languages, countries and generic
// literary terms that say nothing about the book.
var stopTags = map[string]bool{
	// languages
	"portugue": true, "portugues": true, "ingle": true, "ingles": true,
	"espanhol": true, "france": true, "alema": true, "alemao": true,
	"italiano": true, "lingua portuguesa": true, "idioma": true,
	// countries and nationalities
	"brasil": true, "brasileira": true, "brasileiro": true, "portugal": true,
	"portuguesa": true, "estado unido": true,
	"eua": true, "inglaterra": true, "franca": true, "nacional": true,
	"estrangeira": true, "estrangeiro": true, "americana": true,
	// generic literary terms
	"literatura": true, "literatura brasileira": true,
	"literatura estrangeira": true, "literatura portuguesa": true,
	"literatura americana": true, "literatura inglesa": true,
	"livro": true, "obra": true, "geral": true, "general": true,
	"outro": true, "diverso": true, "texto": true, "edicao": true,
	"volume": true, "serie": true, "colecao": true, "classico": true,
	"romance brasileiro": true, "ficcao": true, "narrativa": true,
	"genero": true, "tema": true, "assunto": true,
}

// synonymGroups collapse near-equivalent tags; the shortest member seen
// in a tag list survives.
var synonymGroups = map[string][]string{
	"family":     {"familia", "familiar", "vida familiar", "relacao familiar", "parentesco"},
	"school":     {"escola", "escolar", "vida escolar", "colegio", "sala de aula"},
	"diary":      {"diario", "diario intimo", "diario pessoal"},
	"friendship": {"amizade", "amigo", "amiga"},
	"childhood":  {"infancia", "crianca", "infantil", "literatura infantil", "infantojuvenil"},
	"youth":      {"juventude", "jovem", "juvenil", "adolescencia", "adolescente", "literatura juvenil"},
	"humor":      {"humor", "comedia", "humoristico", "engracado"},
	"history":    {"historia", "historico", "historiografia"},
	"romance":    {"romance", "amor", "romantico", "paixao"},
	"adventure":  {"aventura", "aventureiro"},
	"mystery":    {"misterio", "enigma", "investigacao", "policial", "detetive"},
	"fantasy":    {"fantasia", "fantastico", "magia"},
	"horror":     {"horror", "terror", "assombracao"},
	"suspense":   {"suspense", "tensao"},
	"biography":  {"biografia", "autobiografia", "memoria", "biografico"},
	"science":    {"ciencia", "cientifico", "divulgacao cientifica"},
}

// groupOf maps a member term to its synonym group.
var groupOf = func() map[string]string {
	m := make(map[string]string)
	for group, members := range synonymGroups {
		for _, term := range members {
			m[term] = group
		}
	}
	return m
}()

// stemSuffixes are stripped (first match wins) when comparing stems.
var stemSuffixes = []string{
	"amente", "mente", "idade", "mento", "ismo", "ista", "ario", "aria",
	"eiro", "eira", "ador", "agem", "ico", "ica", "oso", "osa", "ivo",
	"iva", "al", "ar", "ia", "o", "a", "e",
}

// titleStopWords never become title tags.
var titleStopWords = map[string]bool{
	"sobre": true, "entre": true, "desde": true, "quando": true, "porque": true,
	"outro": true, "outra": true, "outros": true, "outras": true, "todos": true,
	"todas": true, "minha": true, "nossa": true, "nosso": true, "sempre": true,
	"livro": true, "volume": true, "edicao": true, "parte": true, "about": true,
	"their": true, "there": true, "where": true, "which": true, "other": true,
	"these": true, "those": true, "under": true, "after": true, "before": true,
	"book": true, "books": true, "first": true, "second": true, "third": true,
}

// audienceTerms maps target-audience phrases to tags.
var audienceTerms = []struct {
	match string
	tag   string
}{
	{"infantojuvenil", "infantojuvenil"},
	{"infantil", "infantil"},
	{"crianca", "infantil"},
	{"children", "infantil"},
	{"juvenil", "juvenil"},
	{"jovem", "juvenil"},
	{"jovens", "juvenil"},
	{"adolescente", "juvenil"},
	{"young adult", "juvenil"},
	{"adulto", "adulto"},
	{"academico", "academico"},
	{"universitario", "academico"},
	{"didatico", "didatico"},
}

// descriptionVocabulary is matched against the normalized description,
// genres first, then themes, then subject areas.
var descriptionVocabulary = []string{
	// genres
	"romance", "aventura", "fantasia", "misterio", "suspense", "terror",
	"poesia", "conto", "cronica", "drama", "comedia", "biografia",
	"distopia", "policial",
	// themes
	"amizade", "amor", "familia", "escola", "infancia", "adolescencia",
	"morte", "guerra", "viagem", "natureza", "identidade", "preconceito",
	"racismo", "sobrevivencia", "magia", "medo", "liberdade", "memoria",
	// subject areas
	"historia", "ciencia", "filosofia", "politica", "psicologia",
	"religiao", "economia", "arte", "musica", "matematica", "tecnologia",
	"educacao", "saude", "sociologia",
}
