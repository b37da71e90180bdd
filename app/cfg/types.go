package cfg

type Cfg struct {
	// Remote content source (Ghost Content API)
	GhostURL string
	GhostKey string

	// Storage
	DBPath     string
	CatalogDir string

	// Syndication
	SourcesFile string

	// Application configuration
	Port              string
	BaseUrl           string
	WorkerCount       int
	SchedulerInterval int
	APIAccessKey      string

	// Application metadata
	UserAgent string
	Timezone  string
	Debug     bool
	Version   string
}
