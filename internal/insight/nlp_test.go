package insight

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulsecheck/internal/model"
)

func TestExtractTopicClusters(t *testing.T) {
	responses := []model.Response{
		themed("r1", "t1", "the daily standup meeting keeps running over every time", fptr(30), 0),
		themed("r2", "t1", "another meeting got added to my calendar this week", fptr(35), 1),
		themed("r3", "t1", "my salary has not moved in two years despite everything", fptr(20), 2),
	}

	clusters := ExtractTopicClusters(DefaultLexicon(), responses)
	require.NotEmpty(t, clusters)

	assert.Equal(t, "Meetings", clusters[0].Topic)
	assert.Equal(t, 2, clusters[0].Frequency)
	assert.InDelta(t, 32.5, clusters[0].AvgSentiment, 1e-9)
	// share 2/3*50 + bulk 2*10 + base 20
	assert.InDelta(t, 2.0/3.0*50+20+20, clusters[0].Confidence, 1e-9)

	for i := 1; i < len(clusters); i++ {
		assert.GreaterOrEqual(t, clusters[i-1].Frequency, clusters[i].Frequency)
	}
}

func TestClusterConfidence(t *testing.T) {
	// bulk term saturates at 3 occurrences
	assert.InDelta(t, 35.0, clusterConfidence(1, 10), 1e-9)
	assert.InDelta(t, 65.0, clusterConfidence(3, 10), 1e-9)
	assert.Equal(t, 100.0, clusterConfidence(50, 50))
}

func TestDetectEmotionKeywordMatch(t *testing.T) {
	r := themed("r1", "t1", "I am frustrated and frankly annoyed by the process", fptr(20), 0)
	got := DetectEmotion(DefaultLexicon(), r)

	assert.Equal(t, "r1", got.ResponseID)
	assert.Equal(t, "frustrated", got.Primary)
	assert.InDelta(t, 0.8, got.Score, 1e-9)
	// 0.8*100 + 20*0.5
	assert.InDelta(t, 90.0, got.Intensity, 1e-9)
}

func TestDetectEmotionSentimentFallback(t *testing.T) {
	tests := []struct {
		name  string
		score *float64
		want  string
	}{
		{"positive sentiment reads satisfied", fptr(85), "satisfied"},
		{"negative sentiment reads frustrated", fptr(10), "frustrated"},
		{"middling sentiment reads concerned", fptr(50), "concerned"},
		{"unscored reads concerned", nil, "concerned"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := themed("r1", "t1", "the new desk layout is what it is", tt.score, 0)
			got := DetectEmotion(DefaultLexicon(), r)
			assert.Equal(t, tt.want, got.Primary)
			assert.Equal(t, emotionDefaultScore, got.Score)
		})
	}
}

func TestFindSemanticPatterns(t *testing.T) {
	responses := []model.Response{
		themed("r1", "t1", "back to back meetings all day long, no room to breathe", fptr(25), 0),
		themed("r2", "t1", "the meeting overload this quarter is unreal", fptr(30), 1),
		themed("r3", "t1", "we are short staffed and it shows in every deadline", fptr(20), 2),
	}

	patterns := FindSemanticPatterns(DefaultLexicon(), responses)
	require.Len(t, patterns, 2)

	assert.Equal(t, "excessive meetings", patterns[0].Canonical)
	assert.Equal(t, 2, patterns[0].Frequency)
	assert.Less(t, patterns[0].SentimentImpact, 0.0)

	assert.Equal(t, "understaffing", patterns[1].Canonical)
}

func TestIdentifyEmergingTopics(t *testing.T) {
	now := testBase.AddDate(0, 0, 40)
	old := func(id, content string) model.Response {
		return themed(id, "t1", content, fptr(50), 0) // 40 days before now
	}
	recent := func(id, content string) model.Response {
		r := themed(id, "t1", content, fptr(50), 0)
		r.CreatedAt = now.AddDate(0, 0, -2)
		return r
	}

	responses := []model.Response{
		// salary: steady background topic, one recent mention
		old("o1", "my salary discussion went nowhere again"),
		old("o2", "salary bands are still not published"),
		old("o3", "I asked about my salary in the review"),
		recent("n1", "salary came up once more in passing"),
		// remote-work: brand new, all mentions recent
		recent("n2", "the remote policy debate is heating up"),
		recent("n3", "remote days might get cut, everyone is talking about it"),
		recent("n4", "remote work is the main thing on my mind"),
		// padding without topic keywords
		old("o4", "nothing in particular to add here"),
		old("o5", "it was a quiet couple of weeks"),
	}

	emerging := IdentifyEmergingTopics(DefaultLexicon(), responses, now)
	require.Len(t, emerging, 1)

	got := emerging[0]
	assert.Equal(t, "Remote Work", got.Topic)
	assert.Equal(t, 3, got.RecentCount)
	assert.Equal(t, 3, got.TotalCount)
	assert.Greater(t, got.GrowthFactor, 1.0)
}

func TestIdentifyEmergingTopicsNeedsMinimumRecent(t *testing.T) {
	now := testBase.AddDate(0, 0, 40)
	r := themed("r1", "t1", "remote work again today", fptr(50), 0)
	r.CreatedAt = now.AddDate(0, 0, -1)

	emerging := IdentifyEmergingTopics(DefaultLexicon(), []model.Response{r}, now)
	assert.Empty(t, emerging)
}

func TestPerformNLPAnalysis(t *testing.T) {
	now := testBase.AddDate(0, 0, 1)
	var responses []model.Response
	for i := 0; i < 6; i++ {
		responses = append(responses, themed(fmt.Sprintf("r%d", i),
			"t1", "too many meetings and the workload keeps growing, I am frustrated", fptr(25), i))
	}

	analysis := PerformNLPAnalysis(DefaultLexicon(), responses, now)

	assert.NotEmpty(t, analysis.Topics)
	assert.NotEmpty(t, analysis.Patterns)
	assert.Len(t, analysis.Emotions, len(responses))
	assert.GreaterOrEqual(t, analysis.QualityScore, 0.0)
	assert.LessOrEqual(t, analysis.QualityScore, 100.0)
}
