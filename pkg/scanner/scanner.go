// Package scanner produces the mock hybrid threat reports shown after a
// simulated scan. No network or model inference happens here: verdicts
// come from simple URL heuristics plus a seeded random jitter, shaped
// like the real engine's output (global intel hits + local classifier
// confidence, weighted into one intensity score).
package scanner

import (
	"math"
	"math/rand"
	"net/url"
	"sort"
	"strings"
	"time"
)

// Verdict is the classification assigned to a scanned URL.
type Verdict string

const (
	VerdictClean      Verdict = "CLEAN"
	VerdictSuspicious Verdict = "SUSPICIOUS"
	VerdictMalicious  Verdict = "MALICIOUS"
)

// Classifier confidence thresholds.
const (
	maliciousThreshold  = 0.8
	suspiciousThreshold = 0.4
)

// Intensity weighting: intel hits are normalized against the count that
// indicates a high-confidence threat, then blended with the classifier
// confidence.
const (
	highConfidenceHits = 5
	intelWeight        = 0.6
	classifierWeight   = 0.4
)

// URLFeatures are the lexical features extracted from a URL before
// scoring. They drive the deterministic part of the mock confidence and
// the feature-impact breakdown on the result view.
type URLFeatures struct {
	URLLength      int
	HostnameLength int
	NumDots        int
	NumHyphens     int
	HTTPS          bool
}

// ExtractFeatures derives lexical features from a raw URL string. An
// unparseable URL still yields length/character counts with an empty
// hostname.
func ExtractFeatures(rawURL string) URLFeatures {
	hostname := ""
	if parsed, err := url.Parse(rawURL); err == nil {
		hostname = parsed.Host
	}
	return URLFeatures{
		URLLength:      len(rawURL),
		HostnameLength: len(hostname),
		NumDots:        strings.Count(rawURL, "."),
		NumHyphens:     strings.Count(rawURL, "-"),
		HTTPS:          strings.HasPrefix(rawURL, "https"),
	}
}

// FeatureImpact is one entry of the per-feature contribution breakdown.
type FeatureImpact struct {
	Name   string  `yaml:"name"`
	Impact float64 `yaml:"impact"`
}

// Report is the full result of one mock scan.
type Report struct {
	URL          string          `yaml:"url"`
	FinalVerdict Verdict         `yaml:"finalVerdict"`
	Intensity    float64         `yaml:"maliciousIntensity"` // 0..100
	Confidence   float64         `yaml:"confidenceScore"`    // 0..1
	EngineHits   int             `yaml:"engineHits"`
	TotalEngines int             `yaml:"totalEngines"`
	Impacts      []FeatureImpact `yaml:"featureImpacts"`
	ScannedAt    time.Time       `yaml:"scannedAt"`
}

// verdictForConfidence applies the classifier thresholds.
func verdictForConfidence(confidence float64) Verdict {
	switch {
	case confidence > maliciousThreshold:
		return VerdictMalicious
	case confidence > suspiciousThreshold:
		return VerdictSuspicious
	default:
		return VerdictClean
	}
}

// verdictForHits mirrors the intel engine: any flagged engine marks the
// URL malicious outright.
func verdictForHits(hits int) Verdict {
	if hits > 0 {
		return VerdictMalicious
	}
	return VerdictClean
}

// worseVerdict returns the more severe of two verdicts; the final verdict
// is the worst across both engines.
func worseVerdict(a, b Verdict) Verdict {
	rank := map[Verdict]int{VerdictClean: 0, VerdictSuspicious: 1, VerdictMalicious: 2}
	if rank[b] > rank[a] {
		return b
	}
	return a
}

// intensityScore blends intel hits and classifier confidence into a
// 0-100 risk intensity, rounded to two decimals:
//
//	(min(hits/5, 1) * 0.6 + confidence * 0.4) * 100
func intensityScore(hits int, confidence float64) float64 {
	hitRatio := math.Min(float64(hits)/highConfidenceHits, 1.0)
	intensity := (hitRatio*intelWeight + confidence*classifierWeight) * 100
	return math.Round(intensity*100) / 100
}

// featureBias maps lexical features to a base confidence: long, dotted,
// hyphenated, non-HTTPS URLs look more like phishing.
func featureBias(f URLFeatures) float64 {
	bias := 0.1
	bias += math.Min(float64(f.URLLength)/400, 0.2)
	if f.NumDots > 1 {
		bias += math.Min(float64(f.NumDots-1)*0.04, 0.15)
	}
	bias += math.Min(float64(f.NumHyphens)*0.05, 0.2)
	if !f.HTTPS {
		bias += 0.25
	}
	return bias
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Analyze runs the mock hybrid scan. The rng drives all stochastic parts
// so callers can reproduce a report with a fixed seed.
func Analyze(rng *rand.Rand, rawURL string) *Report {
	features := ExtractFeatures(rawURL)

	// Local classifier: lexical bias plus jitter standing in for model
	// confidence.
	confidence := clamp01(featureBias(features) + (rng.Float64()-0.5)*0.3)
	confidence = math.Round(confidence*10000) / 10000

	// Global intel: engine hits scale with how suspicious the URL looks.
	totalEngines := 70 + rng.Intn(8)
	hits := 0
	if confidence > suspiciousThreshold {
		hits = rng.Intn(int(confidence*10) + 1)
	}

	final := worseVerdict(verdictForConfidence(confidence), verdictForHits(hits))

	return &Report{
		URL:          rawURL,
		FinalVerdict: final,
		Intensity:    intensityScore(hits, confidence),
		Confidence:   confidence,
		EngineHits:   hits,
		TotalEngines: totalEngines,
		Impacts:      featureImpacts(rng, features),
		ScannedAt:    time.Now(),
	}
}

// featureImpacts builds the per-feature contribution list, most
// influential first. Impacts are jittered so repeated scans of the same
// URL read like fresh model output.
func featureImpacts(rng *rand.Rand, f URLFeatures) []FeatureImpact {
	httpsImpact := -0.1
	if !f.HTTPS {
		httpsImpact = 0.25
	}
	impacts := []FeatureImpact{
		{Name: "url_length", Impact: math.Min(float64(f.URLLength)/400, 0.2)},
		{Name: "hostname_length", Impact: math.Min(float64(f.HostnameLength)/200, 0.15)},
		{Name: "num_dots", Impact: math.Min(float64(f.NumDots)*0.04, 0.2)},
		{Name: "num_hyphens", Impact: math.Min(float64(f.NumHyphens)*0.05, 0.2)},
		{Name: "is_https", Impact: httpsImpact},
	}
	for i := range impacts {
		impacts[i].Impact += (rng.Float64() - 0.5) * 0.02
		impacts[i].Impact = math.Round(impacts[i].Impact*10000) / 10000
	}
	sort.Slice(impacts, func(i, j int) bool {
		return math.Abs(impacts[i].Impact) > math.Abs(impacts[j].Impact)
	})
	return impacts
}
