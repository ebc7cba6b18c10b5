package content

import (
	"reflect"
	"strings"
	"testing"

	"github.com/ppiankov/domainhunter/internal/model"
)

func TestClassifyNiche(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"finance only", "investment banking trading financial", model.NicheFinance},
		{"tie goes to first declared", "software health", model.NicheTechnology},
		{"no vocabulary hits", "the quick brown fox", model.NicheGeneral},
		{"blank", "   ", model.NicheUnknown},
		{"empty", "", model.NicheUnknown},
		{"case insensitive", "RECIPE Cooking Kitchen", model.NicheFood},
		{"majority wins", "travel hotel flight software", model.NicheTravel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyNiche(tt.text); got != tt.want {
				t.Errorf("classifyNiche(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestAssessQuality(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"short", "hello world", 30},
		{"spam phrases", "click here buy now", 20},
		{"educational phrases", "learn this guide", 36},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := assessQuality(tt.text); got != tt.want {
				t.Errorf("assessQuality(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestAssessQuality_LongWellFormed(t *testing.T) {
	// 12 sentences of 15 words each: 180 words (no length bonus, no short penalty)
	// and mean sentence length inside [10,25] for +10.
	sentence := "Every small garden needs careful planning before planting anything at all in the spring season. "
	text := strings.Repeat(sentence, 12)

	if got := assessQuality(text); got != 60 {
		t.Errorf("assessQuality = %d, want 60", got)
	}
}

func TestSpamScore(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"clean", "a calm description of gardening", 0},
		{"buy now fifteen times", strings.Repeat("buy now ", 15), 100},
		{"two phrases", "special offer, risk free", 20},
		{"shouting", "WOW", 20},
		{"punctuation", "what?!", 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := spamScore(tt.text); got != tt.want {
				t.Errorf("spamScore(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestSpamScore_Repetition(t *testing.T) {
	// 120 tokens, "widget" is 20 of them (>10%).
	var b strings.Builder
	for i := 0; i < 20; i++ {
		b.WriteString("widget alpha bravo charlie delta echo ")
	}
	// alpha..echo each also appear 20 times; the top count is 20 of 120.
	if got := spamScore(b.String()); got != 25 {
		t.Errorf("spamScore = %d, want 25", got)
	}
}

func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"frequency order", "Python python PYTHON code code golang", []string{"python", "code", "golang"}},
		{"stop words and short tokens dropped", "the and with go is fine", []string{"fine"}},
		{"non alphabetic dropped", "abc123 release 2024 release", []string{"release"}},
		{"ties keep first seen", "zebra apple", []string{"zebra", "apple"}},
		{"empty", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractKeywords(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("extractKeywords(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractKeywords_Limit(t *testing.T) {
	var words []string
	for c := 'a'; c <= 'z'; c++ {
		words = append(words, strings.Repeat(string(c), 4))
	}
	got := extractKeywords(strings.Join(words, " "))
	if len(got) != 20 {
		t.Fatalf("expected 20 keywords, got %d", len(got))
	}
	if got[0] != "aaaa" || got[19] != "tttt" {
		t.Errorf("unexpected keyword order: %v", got)
	}
}

func TestDetectLanguage(t *testing.T) {
	english := strings.Repeat("The cat is on the mat and the dog is in the house. ", 3)
	if got := detectLanguage(english); got != "english" {
		t.Errorf("detectLanguage(english) = %q, want english", got)
	}
	if got := detectLanguage("the cat and the dog"); got != "unknown" {
		t.Errorf("detectLanguage(short) = %q, want unknown", got)
	}
	if got := detectLanguage(""); got != "unknown" {
		t.Errorf("detectLanguage(empty) = %q, want unknown", got)
	}
}

func TestReadability(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"short words", "Go on. Be so.", 62},
		{"clamped high", "I a. I a.", 100},
		{"clamped low", "Internationalization considerations notwithstanding.", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := readability(tt.text); got != tt.want {
				t.Errorf("readability(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestSplitSentences(t *testing.T) {
	got := splitSentences("One. Two! Three?\nFour")
	want := []string{"One.", "Two!", "Three?", "Four"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("splitSentences = %v, want %v", got, want)
	}
}

func TestSplitSentences_Abbreviations(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"Dr. Smith arrived. He sat down.", []string{"Dr. Smith arrived.", "He sat down."}},
		{"Acme Inc. sells tools, e.g. hammers. Prices vary.", []string{"Acme Inc. sells tools, e.g. hammers.", "Prices vary."}},
		{"Written by J. R. Tolkien. Read it.", []string{"Written by J. R. Tolkien.", "Read it."}},
		{"So do I. Then we left.", []string{"So do I.", "Then we left."}},
	}

	for _, tt := range tests {
		if got := splitSentences(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitSentences(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAnalyzeSentiment(t *testing.T) {
	if got := analyzeSentiment(""); got != model.NeutralSentiment() {
		t.Errorf("empty text sentiment = %+v, want neutral", got)
	}

	pos := analyzeSentiment("This is a really great product and I love it!")
	if pos.Compound <= 0 || pos.Positive <= pos.Negative {
		t.Errorf("expected positive sentiment, got %+v", pos)
	}

	neg := analyzeSentiment("I hate this terrible scam")
	if neg.Compound >= 0 || neg.Negative <= neg.Positive {
		t.Errorf("expected negative sentiment, got %+v", neg)
	}

	negated := analyzeSentiment("this is not good")
	if negated.Compound >= 0 {
		t.Errorf("expected negation to flip polarity, got %+v", negated)
	}

	if got := analyzeSentiment("The product is good"); got.Compound != 0.4404 {
		t.Errorf("compound = %v, want VADER reference 0.4404", got.Compound)
	}

	for _, s := range []model.Sentiment{pos, neg, negated} {
		if s.Compound < -1 || s.Compound > 1 {
			t.Errorf("compound out of range: %+v", s)
		}
		for _, v := range []float64{s.Positive, s.Negative, s.Neutral} {
			if v < 0 || v > 1 {
				t.Errorf("proportion out of range: %+v", s)
			}
		}
	}
}

func TestExtractText(t *testing.T) {
	doc := `<html><head><style>p{color:red}</style><script>var x = 1;</script></head>
<body><p>Hello <b>world</b></p><noscript>enable js</noscript></body></html>`

	got, err := ExtractText(doc)
	if err != nil {
		t.Fatalf("ExtractText error: %v", err)
	}
	if got != "Hello world" {
		t.Errorf("ExtractText = %q, want %q", got, "Hello world")
	}
}

func TestFallback_Deterministic(t *testing.T) {
	a := Fallback("example.com")
	b := Fallback("example.com")
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("fallback not deterministic:\n%+v\n%+v", a, b)
	}
	if !a.Fallback {
		t.Error("expected Fallback flag to be set")
	}
}

func TestFallback_Ranges(t *testing.T) {
	domains := []string{"example.com", "techpro.io", "a.org", "", "bücher.de", "zzz.net"}
	for _, d := range domains {
		s := Fallback(d)
		if s.ContentQuality < 30 || s.ContentQuality > 95 {
			t.Errorf("%q: quality %d out of [30,95]", d, s.ContentQuality)
		}
		if s.SpamScore < 0 || s.SpamScore > 30 {
			t.Errorf("%q: spam %d out of [0,30]", d, s.SpamScore)
		}
		if s.BrandabilityScore < 40 || s.BrandabilityScore > 90 {
			t.Errorf("%q: brandability %d out of [40,90]", d, s.BrandabilityScore)
		}
		if s.Readability < 60 || s.Readability > 90 {
			t.Errorf("%q: readability %d out of [60,90]", d, s.Readability)
		}
		if n := len(s.Keywords); n < 5 || n > 10 {
			t.Errorf("%q: %d keywords, want 5-10", d, n)
		}
		if s.Sentiment.Compound < 0.1 || s.Sentiment.Compound > 0.6 {
			t.Errorf("%q: compound %f out of [0.1,0.6]", d, s.Sentiment.Compound)
		}
		found := false
		for _, n := range model.Niches {
			if n == s.Niche {
				found = true
			}
		}
		if !found {
			t.Errorf("%q: niche %q not in the nine-niche set", d, s.Niche)
		}
	}
}

func TestAnalyzer_EmptyInputUsesFallback(t *testing.T) {
	a := NewAnalyzer(0)

	first := a.Analyze("example.com", "", "")
	second := a.Analyze("example.com", "  ", "\n")
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("empty-input analysis not deterministic:\n%+v\n%+v", first, second)
	}
	if !reflect.DeepEqual(first, Fallback("example.com")) {
		t.Error("empty-input analysis should equal Fallback(domain)")
	}
}

func TestAnalyzer_Analyze(t *testing.T) {
	a := NewAnalyzer(10)

	historical := "Learn investment banking and trading with our financial guide."
	current := "Our tutorial covers credit and loan basics."
	got := a.Analyze("techpro.io", historical, current)

	if got.Fallback {
		t.Fatal("expected real analysis, got fallback")
	}
	if got.Niche != model.NicheFinance {
		t.Errorf("niche = %q, want Finance", got.Niche)
	}
	if got.BrandabilityScore != 95 {
		t.Errorf("brandability = %d, want 95", got.BrandabilityScore)
	}
	if got.HistoricalText != "Learn inve" {
		t.Errorf("historical text = %q, want first 10 chars", got.HistoricalText)
	}
	if got.SpamScore != 0 {
		t.Errorf("spam = %d, want 0", got.SpamScore)
	}
	if len(got.Keywords) == 0 {
		t.Error("expected keywords")
	}
}

func TestAnalyzer_FinanceText(t *testing.T) {
	got := NewAnalyzer(0).Analyze("example.com", "investment banking trading financial", "")
	if got.Niche != model.NicheFinance {
		t.Errorf("niche = %q, want Finance", got.Niche)
	}
}

func TestGuard_RecoversPanic(t *testing.T) {
	got := guard("example.com", "test", 42, func() int { panic("boom") })
	if got != 42 {
		t.Errorf("guard returned %d, want fallback 42", got)
	}
}

func TestAnalyzer_SentimentBroadVocabulary(t *testing.T) {
	a := NewAnalyzer(0)
	s := a.Analyze("example.com", "I adore this delightful, superb and outstanding service!", "")

	if s.Sentiment.Compound < 0.8 {
		t.Errorf("compound = %v, want strongly positive", s.Sentiment.Compound)
	}
	if s.Sentiment.Positive <= s.Sentiment.Negative || s.Sentiment.Neutral == 1 {
		t.Errorf("sentiment = %+v, want positive proportion", s.Sentiment)
	}

	neg := a.Analyze("example.com", "A dreadful, miserable and appalling experience.", "")
	if neg.Sentiment.Compound > -0.5 {
		t.Errorf("compound = %v, want strongly negative", neg.Sentiment.Compound)
	}
}
