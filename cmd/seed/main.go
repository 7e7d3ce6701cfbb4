package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pulsecheck/internal/model"
)

type seedResponse struct {
	content   string
	theme     string // theme name, resolved to an id after insert
	score     *float64
	label     model.SentimentLabel
	followUp  string
	minuteOff int
}

type seedSession struct {
	group       string
	initialMood *float64
	finalMood   *float64
	daysAgo     int
	completed   bool
	responses   []seedResponse
}

func f(v float64) *float64 { return &v }

func s(v string) *string { return &v }

func main() {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "pulsecheck"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(dbName)
	now := time.Now()

	survey := model.Survey{
		ID:          primitive.NewObjectID().Hex(),
		Title:       "Q3 Engineering Pulse Check",
		Description: "Quarterly conversational check-in on how people are doing, what's working, and what needs attention.",
		Themes: []model.Theme{
			{ID: "t-wlb", Name: "Work-Life Balance"},
			{ID: "t-career", Name: "Career Growth"},
			{ID: "t-mgmt", Name: "Management"},
			{ID: "t-comp", Name: "Compensation"},
			{ID: "t-team", Name: "Team Collaboration"},
			{ID: "t-culture", Name: "Company Culture"},
		},
		CreatedAt: now.AddDate(0, 0, -30),
		UpdatedAt: now.AddDate(0, 0, -30),
	}

	themeIDs := map[string]string{}
	for _, t := range survey.Themes {
		themeIDs[t.Name] = t.ID
	}

	if _, err := db.Collection("surveys").InsertOne(ctx, survey); err != nil {
		log.Fatalf("Failed to insert survey: %v", err)
	}

	// Sentiment scores deliberately mix the 0-1 scale (AI-scored live data)
	// and the 0-100 scale (imported data) so the normalizer gets exercised,
	// and a few responses carry no score at all.
	sessions := []seedSession{
		{
			group: "Engineering", initialMood: f(40), finalMood: f(55), daysAgo: 20, completed: true,
			responses: []seedResponse{
				{content: "Honestly I'm exhausted. Too many late nights this quarter and the weekends are no longer mine. There is no work life balance here anymore.", theme: "Work-Life Balance", score: f(0.15), label: model.SentimentNegative, followUp: "What changed this quarter that made the hours longer?"},
				{content: "The release deadline got pulled in twice. Unrealistic deadlines mean everyone is overworked and stressed out.", theme: "Work-Life Balance", score: f(0.2), label: model.SentimentNegative, minuteOff: 3},
				{content: "On the plus side my manager is supportive and actually listens when I raise it in our one on one.", theme: "Management", score: f(0.8), label: model.SentimentPositive, followUp: "What does that support look like day to day?", minuteOff: 6},
				{content: "She pushed back on scope for us last sprint, which helped. She really has my back.", theme: "Management", score: f(0.85), label: model.SentimentPositive, minuteOff: 9},
			},
		},
		{
			group: "Engineering", initialMood: f(60), finalMood: f(70), daysAgo: 18, completed: true,
			responses: []seedResponse{
				{content: "I'm learning a lot on this team, the mentorship from the senior folks is genuinely great.", theme: "Career Growth", score: f(82), label: model.SentimentPositive, followUp: "Is there a skill you'd like more structured training on?"},
				{content: "I'd love a proper course budget for distributed systems training, it's all ad hoc right now.", theme: "Career Growth", score: f(65), label: model.SentimentNeutral, minuteOff: 4},
				{content: "Great team overall. Real camaraderie, people help each other without being asked.", theme: "Team Collaboration", score: f(90), label: model.SentimentPositive, minuteOff: 8},
			},
		},
		{
			group: "Sales", initialMood: f(35), finalMood: f(30), daysAgo: 15, completed: true,
			responses: []seedResponse{
				{content: "I feel underpaid compared to market. No raise in two years while targets keep going up. It's not fair.", theme: "Compensation", score: f(10), label: model.SentimentNegative, followUp: "Have you been able to raise this with your manager?"},
				{content: "I raised it twice. Management never listens, we just get told to wait for the next cycle.", theme: "Management", score: f(0.1), label: model.SentimentNegative, minuteOff: 5},
				{content: "A few of us are thinking of leaving if the next comp review goes the same way.", theme: "Compensation", score: f(8), label: model.SentimentNegative, minuteOff: 10},
			},
		},
		{
			group: "Sales", initialMood: f(55), daysAgo: 12, completed: false,
			responses: []seedResponse{
				{content: "Too many meetings. Half my calendar is internal syncs that could be an email.", theme: "Team Collaboration", score: f(0.3), label: model.SentimentNegative},
				{content: "Communication between sales and product is poor, we hear about launches from customers.", theme: "Team Collaboration", score: f(25), label: model.SentimentNegative, minuteOff: 4},
			},
		},
		{
			group: "Support", initialMood: f(50), finalMood: f(65), daysAgo: 10, completed: true,
			responses: []seedResponse{
				{content: "The hybrid setup works well for me, the flexible schedule makes childcare possible.", theme: "Work-Life Balance", score: f(0.88), label: model.SentimentPositive},
				{content: "I feel valued here. The new recognition shout-outs in all-hands are a small thing but they matter.", theme: "Company Culture", score: f(78), label: model.SentimentPositive, followUp: "What else makes you feel recognized?", minuteOff: 5},
				{content: "Proud of what the team shipped this quarter, honestly.", theme: "Company Culture", label: model.SentimentPositive, minuteOff: 9},
			},
		},
		{
			group: "Support", initialMood: f(45), finalMood: f(40), daysAgo: 8, completed: true,
			responses: []seedResponse{
				{content: "There's no career path in support. I've been stuck at the same level for three years, it feels like a dead end.", theme: "Career Growth", score: f(0.18), label: model.SentimentNegative, followUp: "What kind of role would you want to grow into?"},
				{content: "I'd move into engineering if there were an internal transfer program, but nobody talks about advancement here.", theme: "Career Growth", score: f(22), label: model.SentimentNegative, minuteOff: 6},
			},
		},
		{
			group: "Engineering", initialMood: f(65), finalMood: f(75), daysAgo: 3, completed: true,
			responses: []seedResponse{
				{content: "The new standup format is much better, meetings are down and focus time is up.", theme: "Team Collaboration", score: f(0.75), label: model.SentimentPositive},
				{content: "The office return chatter worries me though. Remote work is why I joined.", theme: "Work-Life Balance", score: f(45), label: model.SentimentNeutral, followUp: "What would a fair hybrid policy look like to you?", minuteOff: 4},
				{content: "Two or three anchor days would be fine as long as it stays flexible.", theme: "Work-Life Balance", score: f(0.6), label: model.SentimentNeutral, minuteOff: 7},
			},
		},
		{
			group: "", initialMood: f(30), daysAgo: 2, completed: false,
			responses: []seedResponse{
				{content: "The politics and favoritism around promotions are toxic. The same clique gets every opportunity.", theme: "Company Culture", score: f(0.05), label: model.SentimentNegative},
				{content: "I'm burned out and nobody seems to notice or care.", theme: "Work-Life Balance", score: f(12), label: model.SentimentNegative, minuteOff: 3},
			},
		},
	}

	sessionColl := db.Collection("sessions")
	responseColl := db.Collection("responses")

	sessionCount, responseCount := 0, 0
	for _, spec := range sessions {
		started := now.AddDate(0, 0, -spec.daysAgo)
		sess := model.Session{
			ID:                 primitive.NewObjectID().Hex(),
			SurveyID:           survey.ID,
			InitialMood:        spec.initialMood,
			StartedAt:          started,
			Status:             model.SessionActive,
			AnonymizationLevel: "full",
		}
		if spec.group != "" {
			sess.Group = s(spec.group)
		}
		if spec.completed {
			ended := started.Add(time.Duration(3*len(spec.responses)+2) * time.Minute)
			sess.EndedAt = &ended
			sess.FinalMood = spec.finalMood
			sess.Status = model.SessionCompleted
		}
		if _, err := sessionColl.InsertOne(ctx, sess); err != nil {
			log.Fatalf("Failed to insert session: %v", err)
		}
		sessionCount++

		for _, r := range spec.responses {
			label := r.label
			resp := model.Response{
				ID:             primitive.NewObjectID().Hex(),
				SessionID:      sess.ID,
				SurveyID:       survey.ID,
				Content:        r.content,
				SentimentLabel: &label,
				SentimentScore: r.score,
				CreatedAt:      started.Add(time.Duration(r.minuteOff) * time.Minute),
			}
			if id, ok := themeIDs[r.theme]; ok {
				resp.ThemeID = &id
			}
			if r.followUp != "" {
				resp.AIFollowUp = s(r.followUp)
			}
			if _, err := responseColl.InsertOne(ctx, resp); err != nil {
				log.Fatalf("Failed to insert response: %v", err)
			}
			responseCount++
		}
	}

	fmt.Printf("Seeded survey %q (%s): %d sessions, %d responses\n", survey.Title, survey.ID, sessionCount, responseCount)
}
