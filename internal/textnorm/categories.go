package textnorm

import (
	"sort"
	"strings"
)

// categoryTerms maps lowercased English subject and category strings, as
// returned by the international catalogs, to Portuguese.
var categoryTerms = map[string]string{
	// BISAC top-level headings
	"antiques & collectibles":     "Antiguidades e colecionáveis",
	"architecture":                "Arquitetura",
	"art":                         "Arte",
	"bibles":                      "Bíblias",
	"biography & autobiography":   "Biografia e autobiografia",
	"body, mind & spirit":         "Corpo, mente e espírito",
	"business & economics":        "Negócios e economia",
	"comics & graphic novels":     "Quadrinhos e romances gráficos",
	"computers":                   "Computação",
	"cooking":                     "Culinária",
	"crafts & hobbies":            "Artesanato e passatempos",
	"design":                      "Design",
	"drama":                       "Drama",
	"education":                   "Educação",
	"family & relationships":      "Família e relacionamentos",
	"fiction":                     "Ficção",
	"foreign language study":      "Estudo de línguas estrangeiras",
	"games & activities":          "Jogos e atividades",
	"games":                       "Jogos",
	"gardening":                   "Jardinagem",
	"health & fitness":            "Saúde e bem-estar",
	"history":                     "História",
	"house & home":                "Casa e lar",
	"humor":                       "Humor",
	"juvenile fiction":            "Ficção juvenil",
	"juvenile nonfiction":         "Não ficção juvenil",
	"young adult fiction":         "Ficção jovem adulto",
	"young adult nonfiction":      "Não ficção jovem adulto",
	"language arts & disciplines": "Linguagem e disciplinas",
	"language arts":               "Linguagem",
	"law":                         "Direito",
	"literary collections":        "Coletâneas literárias",
	"literary criticism":          "Crítica literária",
	"mathematics":                 "Matemática",
	"medical":                     "Medicina",
	"music":                       "Música",
	"nature":                      "Natureza",
	"performing arts":             "Artes cênicas",
	"pets":                        "Animais de estimação",
	"philosophy":                  "Filosofia",
	"photography":                 "Fotografia",
	"poetry":                      "Poesia",
	"political science":           "Ciência política",
	"psychology":                  "Psicologia",
	"reference":                   "Referência",
	"religion":                    "Religião",
	"science":                     "Ciência",
	"self-help":                   "Autoajuda",
	"social science":              "Ciências sociais",
	"sports & recreation":         "Esportes e lazer",
	"study aids":                  "Material de estudo",
	"technology & engineering":    "Tecnologia e engenharia",
	"transportation":              "Transporte",
	"travel":                      "Viagem",
	"true crime":                  "Crimes reais",
	"nonfiction":                  "Não ficção",
	"non-fiction":                 "Não ficção",

	// fiction subgenres
	"action & adventure":            "Ação e aventura",
	"adventure":                     "Aventura",
	"adventure stories":             "Histórias de aventura",
	"classics":                      "Clássicos",
	"coming of age":                 "Amadurecimento",
	"contemporary":                  "Contemporâneo",
	"crime":                         "Crime",
	"detective and mystery stories": "Histórias policiais e de mistério",
	"dystopian":                     "Distopia",
	"erotica":                       "Erótico",
	"fairy tales":                   "Contos de fadas",
	"fairy tales & folklore":        "Contos de fadas e folclore",
	"family life":                   "Vida familiar",
	"fantasy":                       "Fantasia",
	"fantasy fiction":               "Ficção de fantasia",
	"folklore":                      "Folclore",
	"ghost stories":                 "Histórias de fantasmas",
	"historical":                    "Histórico",
	"historical fiction":            "Ficção histórica",
	"horror":                        "Terror",
	"horror stories":                "Histórias de terror",
	"humorous stories":              "Histórias humorísticas",
	"legends, myths, fables":        "Lendas, mitos e fábulas",
	"literary":                      "Literário",
	"literary fiction":              "Ficção literária",
	"love stories":                  "Histórias de amor",
	"magical realism":               "Realismo mágico",
	"mystery":                       "Mistério",
	"mystery & detective":           "Mistério e detetive",
	"mystery fiction":               "Ficção de mistério",
	"mythology":                     "Mitologia",
	"novel":                         "Romance",
	"novels":                        "Romances",
	"psychological":                 "Psicológico",
	"romance":                       "Romance",
	"romance fiction":               "Ficção romântica",
	"satire":                        "Sátira",
	"science fiction":               "Ficção científica",
	"short stories":                 "Contos",
	"short stories (single author)": "Contos",
	"suspense":                      "Suspense",
	"thriller":                      "Suspense",
	"thrillers":                     "Suspense",
	"war & military":                "Guerra e militar",
	"westerns":                      "Faroeste",
	"women":                         "Mulheres",
	"epistolary":                    "Epistolar",
	"diaries":                       "Diários",
	"diary fiction":                 "Ficção em diário",

	// juvenile headings
	"animals":                 "Animais",
	"school & education":      "Escola e educação",
	"schools":                 "Escolas",
	"friendship":              "Amizade",
	"family":                  "Família",
	"siblings":                "Irmãos",
	"girls & women":           "Meninas e mulheres",
	"boys & men":              "Meninos e homens",
	"social themes":           "Temas sociais",
	"social issues":           "Questões sociais",
	"emotions & feelings":     "Emoções e sentimentos",
	"picture books":           "Livros ilustrados",
	"readers":                 "Leitores iniciantes",
	"bullying":                "Bullying",
	"growing up":              "Crescimento",
	"children's stories":      "Histórias infantis",
	"children's literature":   "Literatura infantil",
	"children's books":        "Livros infantis",
	"juvenile literature":     "Literatura juvenil",
	"young adult":             "Jovem adulto",
	"teenagers":               "Adolescentes",
	"toys, dolls & puppets":   "Brinquedos, bonecas e fantoches",
	"holidays & celebrations": "Feriados e celebrações",

	// nonfiction subjects
	"autobiography":                "Autobiografia",
	"biography":                    "Biografia",
	"memoir":                       "Memórias",
	"memoirs":                      "Memórias",
	"essays":                       "Ensaios",
	"economics":                    "Economia",
	"management":                   "Gestão",
	"leadership":                   "Liderança",
	"marketing":                    "Marketing",
	"finance":                      "Finanças",
	"personal finance":             "Finanças pessoais",
	"entrepreneurship":             "Empreendedorismo",
	"sociology":                    "Sociologia",
	"anthropology":                 "Antropologia",
	"politics":                     "Política",
	"ethics":                       "Ética",
	"theology":                     "Teologia",
	"christianity":                 "Cristianismo",
	"spirituality":                 "Espiritualidade",
	"astronomy":                    "Astronomia",
	"biology":                      "Biologia",
	"chemistry":                    "Química",
	"physics":                      "Física",
	"geography":                    "Geografia",
	"ecology":                      "Ecologia",
	"environment":                  "Meio ambiente",
	"medicine":                     "Medicina",
	"nutrition":                    "Nutrição",
	"parenting":                    "Parentalidade",
	"relationships":                "Relacionamentos",
	"linguistics":                  "Linguística",
	"grammar":                      "Gramática",
	"dictionaries":                 "Dicionários",
	"encyclopedias":                "Enciclopédias",
	"textbooks":                    "Livros didáticos",
	"programming":                  "Programação",
	"software":                     "Software",
	"internet":                     "Internet",
	"engineering":                  "Engenharia",
	"world war, 1939-1945":         "Segunda Guerra Mundial",
	"world war ii":                 "Segunda Guerra Mundial",
	"world war i":                  "Primeira Guerra Mundial",
	"slavery":                      "Escravidão",
	"racism":                       "Racismo",
	"feminism":                     "Feminismo",
	"human rights":                 "Direitos humanos",
	"cities and towns":             "Cidades",
	"love":                         "Amor",
	"death":                        "Morte",
	"friendship fiction":           "Ficção sobre amizade",
	"brazil":                       "Brasil",
	"brazilian fiction":            "Ficção brasileira",
	"brazilian literature":         "Literatura brasileira",
	"portuguese literature":        "Literatura portuguesa",
	"english literature":           "Literatura inglesa",
	"american literature":          "Literatura norte-americana",
	"latin american literature":    "Literatura latino-americana",
	"french literature":            "Literatura francesa",
	"russian literature":           "Literatura russa",
	"german literature":            "Literatura alemã",
	"literature":                   "Literatura",
	"general":                      "Geral",
	"comics":                       "Quadrinhos",
	"graphic novels":               "Romances gráficos",
	"manga":                        "Mangá",
	"plays":                        "Peças de teatro",
	"theater":                      "Teatro",
	"cinema":                       "Cinema",
	"film":                         "Cinema",
	"painting":                     "Pintura",
	"sculpture":                    "Escultura",
	"music history":                "História da música",
	"cookbooks":                    "Livros de receitas",
	"baking":                       "Confeitaria",
	"wine":                         "Vinho",
	"soccer":                       "Futebol",
	"football":                     "Futebol",
	"yoga":                         "Ioga",
	"meditation":                   "Meditação",
	"self-improvement":             "Desenvolvimento pessoal",
	"personal growth":              "Crescimento pessoal",
	"motivational & inspirational": "Motivação e inspiração",
	"success":                      "Sucesso",
	"happiness":                    "Felicidade",
	"time management":              "Gestão do tempo",
	"study and teaching":           "Estudo e ensino",
	"teaching methods & materials": "Métodos e materiais de ensino",
	"curricula":                    "Currículos",
}

// substringKeys holds the dictionary keys, longest first, so substring
// matching prefers the most specific term.
var substringKeys = func() []string {
	keys := make([]string, 0, len(categoryTerms))
	for k := range categoryTerms {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}()

// TranslateCategory maps an English category to Portuguese using the static
// dictionary: an exact match first, then the longest dictionary term the
// string contains. Unmapped strings are returned unchanged.
func TranslateCategory(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return s
	}
	lower := strings.ToLower(trimmed)
	if pt, ok := categoryTerms[lower]; ok {
		return pt
	}
	for _, k := range substringKeys {
		if containsTerm(lower, k) {
			return categoryTerms[k]
		}
	}
	return s
}

// containsTerm reports whether term occurs in s on word boundaries, so
// "art" does not match inside "party".
func containsTerm(s, term string) bool {
	for start := 0; start <= len(s)-len(term); {
		idx := strings.Index(s[start:], term)
		if idx < 0 {
			return false
		}
		idx += start
		end := idx + len(term)
		if (idx == 0 || !isWordByte(s[idx-1])) && (end == len(s) || !isWordByte(s[end])) {
			return true
		}
		start = idx + 1
	}
	return false
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= '0' && b <= '9' || b >= 0x80
}
