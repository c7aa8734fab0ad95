package resources

import "fmt"

// Fallback builds a single article-type resource with the no-URL
// sentinel when the model reply cannot be parsed.
func Fallback(in Input) []Resource {
	return []Resource{
		{
			Type:        TypeArticle,
			Title:       fmt.Sprintf("Getting started with %s", in.TopicTitle),
			Level:       in.Level,
			Reason:      fmt.Sprintf("A starting point for %s while curated recommendations are unavailable.", in.TopicTitle),
			Description: fmt.Sprintf("Search the official %s documentation and community guides for %s.", in.Skill, in.TopicTitle),
			URL:         NoURL,
		},
	}
}
