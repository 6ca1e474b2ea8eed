package textnorm

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTranslateCategory(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "exact", in: "Fiction", want: "Ficção"},
		{name: "exact case insensitive", in: "JUVENILE FICTION", want: "Ficção juvenil"},
		{name: "substring prefers longest", in: "Juvenile Fiction / Family / Siblings", want: "Ficção juvenil"},
		{name: "substring", in: "Classic science fiction stories", want: "Ficção científica"},
		{name: "word boundary", in: "Party planning", want: "Party planning"},
		{name: "unmapped passes through", in: "Literatura brasileira", want: "Literatura brasileira"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, TranslateCategory(tt.in))
		})
	}
}

func TestIsLikelyEnglish(t *testing.T) {
	require.True(t, IsLikelyEnglish("The story of a boy who lives in the city with his family and the dog."))
	require.False(t, IsLikelyEnglish("A história de um menino que vive na cidade com sua família."))
	require.False(t, IsLikelyEnglish("the and of to in"), "shorter than the minimum length")
	require.False(t, IsLikelyEnglish("The cat sat on the mat quietly."), "fewer than five matches")
}

func TestLooksEnglish(t *testing.T) {
	require.True(t, LooksEnglish("Juvenile Fiction"))
	require.True(t, LooksEnglish("Young Adult"))
	require.False(t, LooksEnglish("Ficção juvenil"))
	require.False(t, LooksEnglish(""))
}

func TestSanitizeDescription(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "line breaks and entities",
			in:   "Primeira linha.<br/>Segunda &amp; terceira&nbsp;parte.",
			want: "Primeira linha.\nSegunda & terceira parte.",
		},
		{
			name: "script block removed",
			in:   "Um romance.<script type=\"text/javascript\">track()</script> Fim.",
			want: "Um romance. Fim.",
		},
		{
			name: "style and iframe removed",
			in:   "<style>p{color:red}</style>Texto<iframe src=\"x\"></iframe> limpo",
			want: "Texto limpo",
		},
		{
			name: "bare script runs to end",
			in:   "Sinopse curta. <script src=\"a.js\">",
			want: "Sinopse curta.",
		},
		{
			name: "markup stripped and whitespace collapsed",
			in:   "<p>Um   livro\t sobre <b>amizade</b>.</p>\n\n\n<p>Outro parágrafo</p>",
			want: "Um livro sobre amizade.\nOutro parágrafo",
		},
		{
			name: "code discarded",
			in:   "var x = document.getElementById('a'); function() { return 1; }",
			want: "",
		},
		{
			name: "single pattern kept",
			in:   "Use => para indicar implicação.",
			want: "Use => para indicar implicação.",
		},
		{
			name: "blank",
			in:   "   ",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, SanitizeDescription(tt.in))
		})
	}
}

type fakeTranslator struct {
	mu       sync.Mutex
	calls    []string
	inflight atomic.Int32
	peak     atomic.Int32
	delay    time.Duration
	fail     bool
}

func (f *fakeTranslator) Translate(_ context.Context, text string) (string, error) {
	cur := f.inflight.Add(1)
	defer f.inflight.Add(-1)
	for {
		p := f.peak.Load()
		if cur <= p || f.peak.CompareAndSwap(p, cur) {
			break
		}
	}
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	f.mu.Lock()
	f.calls = append(f.calls, text)
	f.mu.Unlock()
	if f.fail {
		return "", errors.New("boom")
	}
	return "PT:" + text, nil
}

func TestNormalizerTranslateDictionaryFirst(t *testing.T) {
	ft := &fakeTranslator{}
	n := NewNormalizer(WithTranslator(ft))

	require.Equal(t, "Ficção", n.Translate(context.Background(), "Fiction"))
	require.Empty(t, ft.calls, "dictionary hit must not call the remote translator")

	require.Equal(t, "Contos policiais", n.Translate(context.Background(), "Contos policiais"))
	require.Empty(t, ft.calls, "non-English text is not sent out")

	require.Equal(t, "PT:Young kids", n.Translate(context.Background(), "Young kids"))
	require.Len(t, ft.calls, 1)
}

func TestNormalizerMemoizes(t *testing.T) {
	ft := &fakeTranslator{}
	memo := NewMemoryMemo()
	n := NewNormalizer(WithTranslator(ft), WithMemo(memo))

	first := n.Translate(context.Background(), "Boys and girls")
	second := n.Translate(context.Background(), "boys and girls")
	require.Equal(t, "PT:Boys and girls", first)
	require.Equal(t, first, second)
	require.Len(t, ft.calls, 1)
	require.Equal(t, 1, memo.Len())
}

func TestNormalizerKeepsOriginalOnError(t *testing.T) {
	ft := &fakeTranslator{fail: true}
	memo := NewMemoryMemo()
	n := NewNormalizer(WithTranslator(ft), WithMemo(memo))

	require.Equal(t, "Young kids", n.Translate(context.Background(), "Young kids"))
	require.Equal(t, 0, memo.Len(), "failures are not memoized")
}

func TestTranslateAllBatches(t *testing.T) {
	ft := &fakeTranslator{delay: 20 * time.Millisecond}
	n := NewNormalizer(WithTranslator(ft), WithBatchSize(5))

	items := make([]string, 12)
	for i := range items {
		items[i] = strings.Repeat("young ", i+1) + "kids"
	}
	out := n.TranslateAll(context.Background(), items)

	require.Len(t, out, len(items))
	for i, item := range items {
		require.Equal(t, "PT:"+item, out[i], "order must be preserved")
	}
	require.LessOrEqual(t, ft.peak.Load(), int32(5))
	require.Len(t, ft.calls, 12)
}

func TestDescription(t *testing.T) {
	ft := &fakeTranslator{}
	n := NewNormalizer(WithTranslator(ft))

	en := "<p>The story of a boy who lives in the city with his family and the dog.</p>"
	require.Equal(t, "PT:The story of a boy who lives in the city with his family and the dog.", n.Description(context.Background(), en))

	pt := "Um garoto que vive na cidade com a família."
	require.Equal(t, pt, n.Description(context.Background(), pt))
	require.Len(t, ft.calls, 1)

	require.Equal(t, "", n.Description(context.Background(), "var a = 1; window.location = b;"))
}

func TestHTTPTranslator(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/translate_a/single", r.URL.Path)
		require.Equal(t, "en", r.URL.Query().Get("sl"))
		require.Equal(t, "pt", r.URL.Query().Get("tl"))
		require.Equal(t, "Hello there. Bye.", r.URL.Query().Get("q"))
		_, _ = w.Write([]byte(`[[["Olá. ","Hello there. ",null,null,1],["Tchau.","Bye.",null,null,1]],null,"en"]`))
	}))
	defer server.Close()

	tr := NewHTTPTranslator(WithTranslateBaseURL(server.URL), WithTranslateHTTPClient(server.Client()))
	got, err := tr.Translate(context.Background(), "Hello there. Bye.")
	require.NoError(t, err)
	require.Equal(t, "Olá. Tchau.", got)
}

func TestHTTPTranslatorErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") == "bad status" {
			http.Error(w, "nope", http.StatusTooManyRequests)
			return
		}
		_, _ = w.Write([]byte(`{"unexpected":true}`))
	}))
	defer server.Close()

	tr := NewHTTPTranslator(WithTranslateBaseURL(server.URL), WithTranslateHTTPClient(server.Client()))
	_, err := tr.Translate(context.Background(), "bad status")
	require.Error(t, err)

	_, err = tr.Translate(context.Background(), "bad shape")
	require.Error(t, err)
}

func TestStripAccents(t *testing.T) {
	tests := map[string]string{
		"Ficção":          "Ficcao",
		"família":         "familia",
		"Érico Veríssimo": "Erico Verissimo",
		"plain":           "plain",
		"":                "",
	}
	for in, want := range tests {
		require.Equal(t, want, StripAccents(in), in)
	}
}
