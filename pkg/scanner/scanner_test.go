package scanner

import (
	"math/rand"
	"testing"
)

// TestExtractFeatures 验证 URL 词法特征提取
func TestExtractFeatures(t *testing.T) {
	tests := []struct {
		url  string
		want URLFeatures
	}{
		{
			url: "https://example.com",
			want: URLFeatures{
				URLLength: 19, HostnameLength: 11, NumDots: 1, NumHyphens: 0, HTTPS: true,
			},
		},
		{
			url: "http://phish-site.login.example.com/verify",
			want: URLFeatures{
				URLLength: 42, HostnameLength: 28, NumDots: 3, NumHyphens: 1, HTTPS: false,
			},
		},
	}

	for _, tt := range tests {
		got := ExtractFeatures(tt.url)
		if got != tt.want {
			t.Errorf("ExtractFeatures(%q): got %+v, want %+v", tt.url, got, tt.want)
		}
	}
}

// TestVerdictForConfidence 验证分类器阈值
func TestVerdictForConfidence(t *testing.T) {
	tests := []struct {
		confidence float64
		want       Verdict
	}{
		{0.0, VerdictClean},
		{0.4, VerdictClean},
		{0.41, VerdictSuspicious},
		{0.8, VerdictSuspicious},
		{0.81, VerdictMalicious},
		{1.0, VerdictMalicious},
	}
	for _, tt := range tests {
		if got := verdictForConfidence(tt.confidence); got != tt.want {
			t.Errorf("verdictForConfidence(%v): got %v, want %v", tt.confidence, got, tt.want)
		}
	}
}

// TestWorseVerdict 最终判定取两个引擎中较严重者
func TestWorseVerdict(t *testing.T) {
	tests := []struct {
		a, b, want Verdict
	}{
		{VerdictClean, VerdictClean, VerdictClean},
		{VerdictClean, VerdictSuspicious, VerdictSuspicious},
		{VerdictSuspicious, VerdictClean, VerdictSuspicious},
		{VerdictSuspicious, VerdictMalicious, VerdictMalicious},
		{VerdictMalicious, VerdictClean, VerdictMalicious},
	}
	for _, tt := range tests {
		if got := worseVerdict(tt.a, tt.b); got != tt.want {
			t.Errorf("worseVerdict(%v, %v): got %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

// TestIntensityScore 验证权重混合公式
func TestIntensityScore(t *testing.T) {
	tests := []struct {
		hits       int
		confidence float64
		want       float64
	}{
		{0, 0, 0},
		{5, 1.0, 100},
		{10, 1.0, 100}, // hit ratio capped at 1
		{0, 0.5, 20},   // 0.5 * 0.4 * 100
		{5, 0, 60},     // 1.0 * 0.6 * 100
	}
	for _, tt := range tests {
		if got := intensityScore(tt.hits, tt.confidence); got != tt.want {
			t.Errorf("intensityScore(%d, %v): got %v, want %v", tt.hits, tt.confidence, got, tt.want)
		}
	}
}

// TestAnalyzeDeterministicForSeed 相同种子产生相同报告
func TestAnalyzeDeterministicForSeed(t *testing.T) {
	a := Analyze(rand.New(rand.NewSource(5)), "http://phish-site.example.com")
	b := Analyze(rand.New(rand.NewSource(5)), "http://phish-site.example.com")

	if a.FinalVerdict != b.FinalVerdict || a.Confidence != b.Confidence ||
		a.EngineHits != b.EngineHits || a.Intensity != b.Intensity {
		t.Errorf("same seed gave different reports: %+v vs %+v", a, b)
	}
}

// TestAnalyzeReportShape 报告字段处于合法范围
func TestAnalyzeReportShape(t *testing.T) {
	rng := rand.New(rand.NewSource(9))

	for i := 0; i < 100; i++ {
		r := Analyze(rng, "http://login-secure-update.example-bank.com/account.verify")

		if r.Confidence < 0 || r.Confidence > 1 {
			t.Errorf("confidence out of range: %v", r.Confidence)
		}
		if r.Intensity < 0 || r.Intensity > 100 {
			t.Errorf("intensity out of range: %v", r.Intensity)
		}
		if r.EngineHits < 0 || r.EngineHits > r.TotalEngines {
			t.Errorf("engine hits out of range: %d of %d", r.EngineHits, r.TotalEngines)
		}
		if len(r.Impacts) != 5 {
			t.Fatalf("impact count: got %d, want 5", len(r.Impacts))
		}
		if r.FinalVerdict != VerdictClean && r.FinalVerdict != VerdictSuspicious && r.FinalVerdict != VerdictMalicious {
			t.Errorf("unexpected verdict: %v", r.FinalVerdict)
		}
	}
}

// TestAnalyzeVerdictConsistency 判定不低于分类器单独的判定
func TestAnalyzeVerdictConsistency(t *testing.T) {
	rng := rand.New(rand.NewSource(21))

	for i := 0; i < 100; i++ {
		r := Analyze(rng, "http://a-b-c.d-e-f.example.com")
		mlVerdict := verdictForConfidence(r.Confidence)
		if worseVerdict(r.FinalVerdict, mlVerdict) != r.FinalVerdict {
			t.Errorf("final verdict %v weaker than classifier verdict %v", r.FinalVerdict, mlVerdict)
		}
	}
}
