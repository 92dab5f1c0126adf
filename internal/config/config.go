// internal/config/config.go
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

// DefaultSubreddits is used when TARGET_SUBREDDITS is not set.
var DefaultSubreddits = []string{
	"programming", "MachineLearning", "webdev", "javascript",
	"Python", "technology", "artificial", "datascience",
	"DevOps", "reactjs", "learnpython", "compsci",
}

var validCommentSorts = map[string]bool{
	"top":           true,
	"new":           true,
	"controversial": true,
	"best":          true,
}

var validPostSorts = map[string]bool{
	"hot":    true,
	"new":    true,
	"top":    true,
	"rising": true,
}

// FilterConfig controls which comments survive collection.
type FilterConfig struct {
	MaxCommentsPerPost   int
	MinCommentScore      int
	MaxCommentDepth      int
	CommentSort          string
	IncludeControversial bool
	CollectReplies       bool
	SkipDeleted          bool
	SkipAutomod          bool
}

type Config struct {
	ClientID     string
	ClientSecret string
	UserAgent    string

	APIBaseURL string
	TokenURL   string

	TargetSubreddits  []string
	DefaultPostLimit  int
	DefaultSortMode   string
	DefaultTimeFilter string

	ListingDelay   time.Duration
	CommentDelay   time.Duration
	SubredditPause time.Duration

	CollectComments bool
	Filter          FilterConfig

	RawDataDir      string
	CollectSchedule string

	LogLevel string
	LogFile  string

	ServerPort     string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	RequestTimeout time.Duration
	MaxRetries     int
	ProxyURLs      []string
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	clientID := os.Getenv("REDDIT_CLIENT_ID")
	clientSecret := os.Getenv("REDDIT_CLIENT_SECRET")

	var missing []string
	if clientID == "" {
		missing = append(missing, "REDDIT_CLIENT_ID")
	}
	if clientSecret == "" {
		missing = append(missing, "REDDIT_CLIENT_SECRET")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s. Please check your .env file", strings.Join(missing, ", "))
	}

	proxyURLs, err := parseProxyURLs(os.Getenv("REDDIT_PROXY_URLS"))
	if err != nil {
		return nil, err
	}

	commentSort := getEnv("COMMENT_SORT_BY", "top")
	if !validCommentSorts[commentSort] {
		return nil, fmt.Errorf("invalid COMMENT_SORT_BY %q, must be one of: top, new, controversial, best", commentSort)
	}

	sortMode := getEnv("DEFAULT_SORT_TYPE", "hot")
	if !validPostSorts[sortMode] {
		return nil, fmt.Errorf("invalid DEFAULT_SORT_TYPE %q, must be one of: hot, new, top, rising", sortMode)
	}

	schedule := os.Getenv("COLLECT_SCHEDULE")
	if schedule != "" {
		if _, err := cron.ParseStandard(schedule); err != nil {
			return nil, fmt.Errorf("invalid COLLECT_SCHEDULE %q: %w", schedule, err)
		}
	}

	return &Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		UserAgent:    getEnv("REDDIT_USER_AGENT", "RedditRadar:v1.0 (by /u/YourUsername)"),

		APIBaseURL: getEnv("REDDIT_API_BASE_URL", "https://oauth.reddit.com"),
		TokenURL:   getEnv("REDDIT_TOKEN_URL", "https://www.reddit.com/api/v1/access_token"),

		TargetSubreddits:  parseSubreddits(os.Getenv("TARGET_SUBREDDITS")),
		DefaultPostLimit:  getEnvInt("DEFAULT_POSTS_LIMIT", 100),
		DefaultSortMode:   sortMode,
		DefaultTimeFilter: getEnv("DEFAULT_TIME_FILTER", "day"),

		ListingDelay:   getEnvDuration("RATE_LIMIT_DELAY", 1*time.Second),
		CommentDelay:   getEnvDuration("COMMENT_RATE_LIMIT_DELAY", 1500*time.Millisecond),
		SubredditPause: getEnvDuration("SUBREDDIT_PAUSE", 2*time.Second),

		CollectComments: getEnvBool("COLLECT_COMMENTS", true),
		Filter: FilterConfig{
			MaxCommentsPerPost:   getEnvInt("MAX_COMMENTS_PER_POST", 50),
			MinCommentScore:      getEnvInt("MIN_COMMENT_SCORE", 1),
			MaxCommentDepth:      getEnvInt("MAX_COMMENT_DEPTH", 3),
			CommentSort:          commentSort,
			IncludeControversial: getEnvBool("INCLUDE_CONTROVERSIAL", false),
			CollectReplies:       getEnvBool("COLLECT_REPLIES", true),
			SkipDeleted:          getEnvBool("SKIP_DELETED_COMMENTS", true),
			SkipAutomod:          getEnvBool("SKIP_AUTOMOD_COMMENTS", true),
		},

		RawDataDir:      getEnv("RAW_DATA_DIR", "data/raw"),
		CollectSchedule: schedule,

		LogLevel: strings.ToUpper(getEnv("LOG_LEVEL", "INFO")),
		LogFile:  getEnv("LOG_FILE", "logs/reddit_radar.log"),

		ServerPort:  getEnv("SERVER_PORT", "8080"),
		ReadTimeout: getEnvDuration("SERVER_READ_TIMEOUT", 30*time.Second),
		// Collection responses can take minutes, zero disables the write timeout.
		WriteTimeout:   getEnvDuration("SERVER_WRITE_TIMEOUT", 0),
		RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
		MaxRetries:     getEnvInt("MAX_RETRIES", 3),
		ProxyURLs:      proxyURLs,
	}, nil
}

func parseSubreddits(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return append([]string(nil), DefaultSubreddits...)
	}

	var subreddits []string
	for _, sub := range strings.Split(raw, ",") {
		sub = strings.TrimSpace(sub)
		if sub == "" {
			continue
		}
		subreddits = append(subreddits, sub)
	}

	if len(subreddits) == 0 {
		return append([]string(nil), DefaultSubreddits...)
	}
	return subreddits
}

func parseProxyURLs(raw string) ([]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	var proxyURLs []string
	for _, proxy := range strings.Split(raw, ",") {
		proxy = strings.TrimSpace(proxy)
		if proxy == "" {
			continue
		}

		if !strings.HasPrefix(proxy, "http://") && !strings.HasPrefix(proxy, "https://") && !strings.HasPrefix(proxy, "socks5://") {
			return nil, fmt.Errorf("invalid proxy URL format, must start with http://, https:// or socks5://: %s", proxy)
		}

		if _, err := url.Parse(proxy); err != nil {
			return nil, fmt.Errorf("invalid proxy URL %s: %w", proxy, err)
		}

		proxyURLs = append(proxyURLs, proxy)
	}

	return proxyURLs, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return boolValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}
