package repos

// RawRepo is the subset of a GitHub repository record the portfolio reads.
// Optional fields are pointers so absent and null decode the same way.
type RawRepo struct {
	Name            string   `json:"name"`
	Description     *string  `json:"description"`
	Language        *string  `json:"language"`
	Topics          []string `json:"topics"`
	Homepage        *string  `json:"homepage"`
	HTMLURL         string   `json:"html_url"`
	StargazersCount int      `json:"stargazers_count"`
	ForksCount      int      `json:"forks_count"`
	Fork            bool     `json:"fork"`
	UpdatedAt       string   `json:"updated_at"`
}

// DisplayItem is the UI-ready form of a repository.
type DisplayItem struct {
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Tags        []string `json:"tags" yaml:"tags"`
	Link        string   `json:"link" yaml:"link"`
	RepoLink    string   `json:"repoLink" yaml:"repo_link"`
	Stars       int      `json:"stars" yaml:"stars"`
	Forks       int      `json:"forks" yaml:"forks"`
	Language    *string  `json:"language" yaml:"language"`
	UpdatedAt   string   `json:"updatedAt" yaml:"updated_at"`
	Image       string   `json:"image,omitempty" yaml:"image,omitempty"`
}

// Override replaces curated fields of a featured repository, keyed by the
// repository name. Empty fields are left alone.
type Override struct {
	Title       string   `json:"title,omitempty" yaml:"title,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Tags        []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Image       string   `json:"image,omitempty" yaml:"image,omitempty"`
}

// FetchState is the lifecycle of a one-shot repository load.
type FetchState int

const (
	NotFetched FetchState = iota
	Fetching
	Succeeded
	Failed
)

func (s FetchState) String() string {
	switch s {
	case NotFetched:
		return "not_fetched"
	case Fetching:
		return "fetching"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}
