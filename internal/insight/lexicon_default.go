package insight

import "pulsecheck/internal/model"

// DefaultLexicon returns the built-in rule tables. Keyword lists are matched
// as case-insensitive substrings of response content.
func DefaultLexicon() *Lexicon {
	return &Lexicon{
		SubThemes: []ThemeKeywords{
			{
				Theme: "work-life-balance",
				SubThemes: []KeywordSet{
					{Key: "overtime", Keywords: []string{"overtime", "long hours", "late nights", "weekends"}},
					{Key: "burnout", Keywords: []string{"burnout", "burned out", "burnt out", "exhausted", "drained"}},
					{Key: "flexibility", Keywords: []string{"flexible", "flexibility", "remote", "work from home", "hybrid"}},
					{Key: "workload", Keywords: []string{"workload", "too much work", "overloaded", "understaffed"}},
				},
			},
			{
				Theme: "career-growth",
				SubThemes: []KeywordSet{
					{Key: "promotion", Keywords: []string{"promotion", "promoted", "advancement", "career path"}},
					{Key: "learning", Keywords: []string{"learning", "training", "course", "skills", "mentorship"}},
					{Key: "stagnation", Keywords: []string{"stuck", "stagnant", "dead end", "no growth", "plateau"}},
				},
			},
			{
				Theme: "management",
				SubThemes: []KeywordSet{
					{Key: "feedback-quality", Keywords: []string{"feedback", "one on one", "1:1", "check-in"}},
					{Key: "micromanagement", Keywords: []string{"micromanage", "micromanaged", "controlling", "no autonomy"}},
					{Key: "support", Keywords: []string{"supportive", "support from", "has my back", "listens"}},
				},
			},
			{
				Theme: "compensation",
				SubThemes: []KeywordSet{
					{Key: "salary", Keywords: []string{"salary", "pay", "underpaid", "raise"}},
					{Key: "benefits", Keywords: []string{"benefits", "insurance", "pension", "perks"}},
					{Key: "fairness", Keywords: []string{"fair", "unfair", "equity", "equal pay"}},
				},
			},
			{
				Theme: "team-collaboration",
				SubThemes: []KeywordSet{
					{Key: "communication", Keywords: []string{"communication", "communicate", "kept in the loop", "silos"}},
					{Key: "conflict", Keywords: []string{"conflict", "tension", "friction", "disagreement"}},
					{Key: "camaraderie", Keywords: []string{"team spirit", "camaraderie", "great team", "colleagues"}},
				},
			},
			{
				Theme: "company-culture",
				SubThemes: []KeywordSet{
					{Key: "values", Keywords: []string{"values", "mission", "purpose", "ethics"}},
					{Key: "inclusion", Keywords: []string{"inclusive", "inclusion", "diversity", "belonging"}},
					{Key: "politics", Keywords: []string{"politics", "political", "favoritism", "cliques"}},
				},
			},
		},

		PositivePhrases: []string{
			"love my job", "great team", "supportive manager", "good balance",
			"learning a lot", "feel valued", "well paid", "growth opportunities",
			"flexible schedule", "proud of", "enjoy working",
		},
		NegativePhrases: []string{
			"too many meetings", "no work life balance", "underpaid", "burned out",
			"no recognition", "poor communication", "micromanaged", "overworked",
			"thinking of leaving", "no career path", "toxic", "stressed out",
			"unrealistic deadlines", "never listens",
		},

		Topics: []KeywordSet{
			{Key: "meetings", Keywords: []string{"meeting", "meetings", "standup", "sync"}},
			{Key: "workload", Keywords: []string{"workload", "overloaded", "too much work", "capacity"}},
			{Key: "remote-work", Keywords: []string{"remote", "work from home", "wfh", "hybrid", "office return"}},
			{Key: "management", Keywords: []string{"manager", "management", "leadership", "boss"}},
			{Key: "compensation", Keywords: []string{"salary", "pay", "compensation", "bonus", "raise"}},
			{Key: "career", Keywords: []string{"career", "promotion", "growth", "advancement"}},
			{Key: "training", Keywords: []string{"training", "learning", "course", "onboarding"}},
			{Key: "communication", Keywords: []string{"communication", "transparency", "information", "updates"}},
			{Key: "recognition", Keywords: []string{"recognition", "appreciated", "credit", "acknowledged"}},
			{Key: "tools", Keywords: []string{"tools", "software", "equipment", "laptop", "systems"}},
			{Key: "deadlines", Keywords: []string{"deadline", "deadlines", "pressure", "crunch"}},
			{Key: "team-dynamics", Keywords: []string{"team", "colleagues", "coworkers", "collaboration"}},
			{Key: "wellbeing", Keywords: []string{"stress", "health", "wellbeing", "mental health"}},
			{Key: "processes", Keywords: []string{"process", "bureaucracy", "red tape", "approval"}},
			{Key: "office-environment", Keywords: []string{"office", "desk", "noise", "commute"}},
		},

		Emotions: []KeywordSet{
			{Key: "frustrated", Keywords: []string{"frustrated", "frustrating", "annoyed", "fed up"}},
			{Key: "satisfied", Keywords: []string{"satisfied", "happy with", "content", "pleased"}},
			{Key: "anxious", Keywords: []string{"anxious", "worried", "nervous", "uneasy"}},
			{Key: "excited", Keywords: []string{"excited", "thrilled", "can't wait", "pumped"}},
			{Key: "angry", Keywords: []string{"angry", "furious", "outraged", "mad"}},
			{Key: "disappointed", Keywords: []string{"disappointed", "let down", "expected more"}},
			{Key: "hopeful", Keywords: []string{"hopeful", "optimistic", "looking forward", "improving"}},
			{Key: "overwhelmed", Keywords: []string{"overwhelmed", "drowning", "too much", "can't keep up"}},
			{Key: "proud", Keywords: []string{"proud", "accomplished", "achievement"}},
			{Key: "confused", Keywords: []string{"confused", "unclear", "don't understand", "mixed messages"}},
			{Key: "grateful", Keywords: []string{"grateful", "thankful", "appreciate"}},
			{Key: "demotivated", Keywords: []string{"demotivated", "unmotivated", "don't care anymore", "checked out"}},
			{Key: "valued", Keywords: []string{"valued", "respected", "heard", "matter"}},
			{Key: "ignored", Keywords: []string{"ignored", "overlooked", "invisible", "dismissed"}},
			{Key: "exhausted", Keywords: []string{"exhausted", "tired", "drained", "worn out"}},
			{Key: "concerned", Keywords: []string{"concerned", "concerning", "not sure about", "doubts"}},
		},

		SemanticGroups: []SemanticGroup{
			{Canonical: "excessive meetings", Variants: []string{"too many meetings", "meeting overload", "back to back meetings", "endless meetings"}},
			{Canonical: "lack of recognition", Variants: []string{"no recognition", "not appreciated", "work goes unnoticed", "no credit"}},
			{Canonical: "unclear direction", Variants: []string{"no clear direction", "shifting priorities", "keep changing", "mixed messages"}},
			{Canonical: "understaffing", Variants: []string{"short staffed", "not enough people", "need more hands", "understaffed"}},
			{Canonical: "manager support", Variants: []string{"manager supports", "supportive manager", "great manager", "manager listens"}},
			{Canonical: "growth opportunities", Variants: []string{"room to grow", "career opportunities", "chance to advance", "growth opportunities"}},
			{Canonical: "poor onboarding", Variants: []string{"thrown in the deep end", "no onboarding", "figure it out myself"}},
			{Canonical: "pay dissatisfaction", Variants: []string{"underpaid", "below market", "pay is not competitive", "deserve more"}},
		},

		CultureStrengths: []KeywordSet{
			{Key: "psychological-safety", Keywords: []string{"safe to speak up", "can be honest", "no blame", "admit mistakes"}},
			{Key: "collaboration", Keywords: []string{"help each other", "great team", "work well together", "collaborative"}},
			{Key: "ownership", Keywords: []string{"trusted to", "autonomy", "own my work", "freedom to decide"}},
			{Key: "learning-culture", Keywords: []string{"always learning", "knowledge sharing", "mentorship", "encouraged to learn"}},
			{Key: "recognition-culture", Keywords: []string{"celebrated", "recognized", "appreciated", "shout out"}},
		},
		CultureWeaknesses: []KeywordSet{
			{Key: "siloed-teams", Keywords: []string{"silos", "siloed", "don't talk to each other", "left hand right hand"}},
			{Key: "decision-opacity", Keywords: []string{"decisions behind closed doors", "not transparent", "no explanation", "top down"}},
			{Key: "meeting-culture", Keywords: []string{"too many meetings", "meetings could be emails", "meeting overload"}},
			{Key: "change-fatigue", Keywords: []string{"another reorg", "constant change", "change fatigue", "keeps changing"}},
		},
		CultureRisks: []KeywordSet{
			{Key: "burnout-risk", Keywords: []string{"burnout", "burned out", "exhausted", "breaking point", "can't keep up"}},
			{Key: "attrition-risk", Keywords: []string{"thinking of leaving", "looking elsewhere", "quit", "resign", "new job"}},
			{Key: "trust-erosion", Keywords: []string{"don't trust", "broken promises", "lost faith", "say one thing"}},
			{Key: "harassment-signals", Keywords: []string{"bullied", "harassed", "hostile", "afraid of"}},
		},

		InterventionRules: []InterventionRule{
			{
				Match: []string{"work-life", "work life", "balance"},
				Templates: []InterventionTemplate{
					{
						Title:           "Introduce flexible working hours",
						Description:     "Let employees shift their working day around personal commitments within core-hour bounds.",
						EstimatedImpact: 12, Effort: model.EffortMedium, Timeline: "1-2 months", QuickWin: false,
					},
					{
						Title:           "Adopt an after-hours communication policy",
						Description:     "No expectation to answer messages outside working hours; schedule-send becomes the default.",
						EstimatedImpact: 8, Effort: model.EffortLow, Timeline: "2 weeks", QuickWin: true,
					},
				},
			},
			{
				Match: []string{"career", "growth", "development"},
				Templates: []InterventionTemplate{
					{
						Title:           "Launch a structured development program",
						Description:     "Per-role growth tracks with budgeted learning time and a visible promotion rubric.",
						EstimatedImpact: 15, Effort: model.EffortHigh, Timeline: "1 quarter", QuickWin: false,
					},
					{
						Title:           "Hold monthly career check-ins",
						Description:     "A recurring manager conversation dedicated to growth, separate from status updates.",
						EstimatedImpact: 7, Effort: model.EffortLow, Timeline: "2 weeks", QuickWin: true,
					},
				},
			},
			{
				Match: []string{"manage", "leadership"},
				Templates: []InterventionTemplate{
					{
						Title:           "Run a manager coaching cycle",
						Description:     "Focused coaching on feedback delivery and delegation for all people managers.",
						EstimatedImpact: 12, Effort: model.EffortMedium, Timeline: "2 months", QuickWin: false,
					},
					{
						Title:           "Start skip-level conversations",
						Description:     "Quarterly skip-level 1:1s so concerns reach beyond the direct manager.",
						EstimatedImpact: 6, Effort: model.EffortLow, Timeline: "1 month", QuickWin: true,
					},
				},
			},
			{
				Match: []string{"communication", "transparen"},
				Templates: []InterventionTemplate{
					{
						Title:           "Publish a weekly leadership update",
						Description:     "A short written update covering decisions made and the reasoning behind them.",
						EstimatedImpact: 9, Effort: model.EffortLow, Timeline: "1 week", QuickWin: true,
					},
					{
						Title:           "Hold monthly open Q&A sessions",
						Description:     "Leadership answers anonymously submitted questions in an all-hands slot.",
						EstimatedImpact: 8, Effort: model.EffortMedium, Timeline: "1 month", QuickWin: false,
					},
				},
			},
			{
				Match: []string{"workload", "stress", "wellbeing"},
				Templates: []InterventionTemplate{
					{
						Title:           "Rebalance team workload",
						Description:     "Audit current assignments against capacity and redistribute or descope.",
						EstimatedImpact: 14, Effort: model.EffortHigh, Timeline: "1-2 months", QuickWin: false,
					},
					{
						Title:           "Protect focus time",
						Description:     "Two company-wide meeting-free half-days per week for deep work.",
						EstimatedImpact: 7, Effort: model.EffortLow, Timeline: "1 week", QuickWin: true,
					},
				},
			},
			{
				Match: []string{"compensation", "pay", "benefit"},
				Templates: []InterventionTemplate{
					{
						Title:           "Run a compensation benchmark review",
						Description:     "Compare salaries against market data and publish the banding methodology.",
						EstimatedImpact: 13, Effort: model.EffortHigh, Timeline: "1 quarter", QuickWin: false,
					},
				},
			},
			{
				Match: []string{"team", "collaboration"},
				Templates: []InterventionTemplate{
					{
						Title:           "Set up cross-team working agreements",
						Description:     "Explicit interfaces and response expectations between collaborating teams.",
						EstimatedImpact: 8, Effort: model.EffortMedium, Timeline: "1 month", QuickWin: false,
					},
				},
			},
			{
				Match: []string{"recognition", "appreciation"},
				Templates: []InterventionTemplate{
					{
						Title:           "Introduce peer recognition",
						Description:     "A lightweight channel for public peer shout-outs, surfaced in all-hands.",
						EstimatedImpact: 6, Effort: model.EffortLow, Timeline: "1 week", QuickWin: true,
					},
				},
			},
		},

		FallbackActions: []InterventionTemplate{
			{
				Title:           "Run a follow-up deep-dive",
				Description:     "Schedule targeted conversations on this theme to pin down the underlying issue before acting.",
				EstimatedImpact: 5, Effort: model.EffortLow, Timeline: "2 weeks", QuickWin: false,
			},
		},

		RiskMitigation: InterventionTemplate{
			Title:           "Address detected culture risk",
			Description:     "Escalate the flagged risk pattern to HR leadership and agree a mitigation owner within one week.",
			EstimatedImpact: 10, Effort: model.EffortMedium, Timeline: "2 weeks", QuickWin: false,
		},
	}
}
