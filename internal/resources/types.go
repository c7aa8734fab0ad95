package resources

// Resource is a recommended learning material for a topic.
type Resource struct {
	Type          Type   `json:"type"`
	Title         string `json:"title"`
	Author        string `json:"author,omitempty"`
	Level         string `json:"level"`
	EstimatedTime string `json:"estimatedTime,omitempty"`
	Reason        string `json:"reason"`
	Description   string `json:"description"`
	// URL is a real URL, or NoURL when none is known. Placeholder
	// domains are never emitted by this package.
	URL string `json:"url"`
}

// Type categorizes a resource.
type Type string

const (
	TypeBook    Type = "book"
	TypeCourse  Type = "course"
	TypeArticle Type = "article"
	TypeVideo   Type = "video"
)

// NoURL is the sentinel used when no real URL is available.
const NoURL = "#"

// Input holds the parameters for one resource-list generation.
type Input struct {
	// TopicTitle names the topic the resources should cover.
	TopicTitle string

	// Skill is the broader skill being learned.
	Skill string

	// Level is the learner's starting level.
	Level string
}
