package knowledge

// Generic wording used for archetypes without their own depth concept or
// question set.
var (
	genericDepth = DepthConcept{
		Concept:  "Analysis Depth",
		Question: "How deep should the analysis go?",
		Options: []Option{
			{Value: "basic", Label: "Basic overview with key points"},
			{Value: "detailed", Label: "Detailed analysis with explanations"},
			{Value: "comprehensive", Label: "Comprehensive analysis with key insights"},
			{Value: "exhaustive", Label: "Exhaustive analysis covering edge cases"},
		},
	}

	genericQuestions = QuestionSet{
		PrimaryGoal: "What's the primary goal of your agent?",
		Tasks: TaskChecklist{
			Label: "What specific tasks should your agent help with?",
			Options: []string{
				"Answer questions",
				"Provide step-by-step guidance",
				"Generate ideas",
				"Review and critique work",
				"Create templates or examples",
				"Explain complex concepts",
				"Troubleshoot problems",
				"Make recommendations",
			},
		},
		Audience: AudienceChoice{
			Label: "Who is the target audience?",
			Options: []Option{
				{Value: "general-users", Label: "General users"},
				{Value: "beginners", Label: "Beginners and newcomers"},
				{Value: "professionals", Label: "Working professionals"},
				{Value: "experts", Label: "Domain experts"},
				{Value: "mixed", Label: "Mixed audience - adapt to the user"},
			},
		},
	}
)
