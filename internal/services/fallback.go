package services

import (
	"fmt"
	"strings"

	"trendpulse-backend/internal/models"
)

// Deterministic fallback content served when the completion service
// fails, times out or returns something unparsable. Both builders are
// pure functions of their inputs: the same input always yields the same
// output, which keeps the failure path testable.

func FallbackSuggestions(topic, platform, style string) models.SuggestionResult {
	return models.SuggestionResult{
		Titles: []string{
			fmt.Sprintf("5 %s Mistakes Everyone Makes (And How to Avoid Them)", topic),
			fmt.Sprintf("How I Mastered %s in 30 Days", topic),
			fmt.Sprintf("The Ultimate %s Guide for Beginners", topic),
			fmt.Sprintf("Why %s Is Blowing Up on %s Right Now", topic, platform),
			fmt.Sprintf("%s Secrets Nobody Talks About", topic),
		},
		Tags: []string{
			hashtag(topic),
			hashtag(platform),
			hashtag(style),
			"#viral", "#trending", "#creator", "#contentcreation", "#fyp",
		},
		ContentIdeas: []models.ContentIdea{
			{
				Title:       fmt.Sprintf("A Day Built Around %s", topic),
				Description: fmt.Sprintf("Document a full day centered on %s and close with your three biggest takeaways.", topic),
				Engagement:  "high",
			},
			{
				Title:       fmt.Sprintf("%s Myths, Busted", topic),
				Description: fmt.Sprintf("Debunk the most common misconceptions about %s in a rapid-fire %s format.", topic, style),
				Engagement:  "medium",
			},
			{
				Title:       fmt.Sprintf("30 Days of %s: Before and After", topic),
				Description: fmt.Sprintf("Show a measurable transformation from a month of consistent %s content on %s.", topic, platform),
				Engagement:  "high",
			},
		},
	}
}

func FallbackAnalysis(content, platform string) models.AnalysisResult {
	words := strings.Fields(content)
	hook := strings.Join(words[:min(len(words), 6)], " ")

	// Length-derived score, never random.
	score := 5.0 + float64(len(content)%40)/10.0

	return models.AnalysisResult{
		ViralScore: score,
		OptimizedTitles: []string{
			fmt.Sprintf("%s… Here's What Happened", hook),
			fmt.Sprintf("The Truth About %s", hook),
			fmt.Sprintf("Nobody Tells You This: %s", hook),
		},
		ViralTags: []string{
			hashtag(platform),
			"#viral", "#trending", "#fyp", "#foryou", "#creator",
		},
		HookIdeas: []string{
			fmt.Sprintf("Open cold on \"%s\" before any intro.", hook),
			"Start with the end result, then rewind to how you got there.",
			fmt.Sprintf("Ask your %s audience a question in the first two seconds.", platform),
		},
		ContentStrategy: fmt.Sprintf(
			"Lead with your strongest moment in the first three seconds, keep cuts tight for %s pacing, and end with a direct prompt to comment or share.",
			platform),
	}
}

func hashtag(s string) string {
	return "#" + strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
}
