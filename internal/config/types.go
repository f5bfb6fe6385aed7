package config

// StoreDriver selects the key-value store backing UI state.
type StoreDriver string

const (
	StoreMemory   StoreDriver = "memory"
	StoreSQLite   StoreDriver = "sqlite"
	StoreRedis    StoreDriver = "redis"
	StoreDisabled StoreDriver = "disabled"
)

// HighlighterMode selects how tutorial code is highlighted.
type HighlighterMode string

const (
	// HighlighterAuto uses chroma when it knows the language.
	HighlighterAuto HighlighterMode = "auto"
	// HighlighterBuiltin always uses the small builtin highlighter.
	HighlighterBuiltin HighlighterMode = "builtin"
)

// Config is the top-level learnsite configuration, corresponding to .learnsite.yml.
type Config struct {
	ContentDir         string          `yaml:"content_dir" koanf:"content_dir"`
	ContentURL         string          `yaml:"content_url" koanf:"content_url"`
	Addr               string          `yaml:"addr" koanf:"addr"`
	SiteName           string          `yaml:"site_name" koanf:"site_name"`
	DefaultCourse      string          `yaml:"default_course" koanf:"default_course"`
	CoursesGlob        string          `yaml:"courses_glob" koanf:"courses_glob"`
	TutorialsPath      string          `yaml:"tutorials_path" koanf:"tutorials_path"`
	ListCap            int             `yaml:"list_cap" koanf:"list_cap"`
	GroupLabels        []string        `yaml:"group_labels" koanf:"group_labels"`
	Store              StoreConfig     `yaml:"store" koanf:"store"`
	Highlighter        HighlighterMode `yaml:"highlighter" koanf:"highlighter"`
	HighlightStyle     string          `yaml:"highlight_style" koanf:"highlight_style"`
	ScrollOffset       int             `yaml:"scroll_offset" koanf:"scroll_offset"`
	ScrollTopThreshold int             `yaml:"scroll_top_threshold" koanf:"scroll_top_threshold"`
	LogMode            string          `yaml:"log_mode" koanf:"log_mode"`
	OutputDir          string          `yaml:"output_dir" koanf:"output_dir"`
	MaxConcurrency     int             `yaml:"max_concurrency" koanf:"max_concurrency"`
	AllowAllOrigins    bool            `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}

// StoreConfig holds key-value store settings.
type StoreConfig struct {
	Driver    StoreDriver `yaml:"driver" koanf:"driver"`
	Path      string      `yaml:"path" koanf:"path"`
	RedisAddr string      `yaml:"redis_addr" koanf:"redis_addr"`
	Prefix    string      `yaml:"prefix" koanf:"prefix"`
}
