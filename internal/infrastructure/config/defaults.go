package config

import "time"

const (
	DefaultHTTPPort        = "8080"
	DefaultShutdownTimeout = 10 * time.Second
	DefaultProvider        = "bot"
	DefaultFetchTimeout    = 10 * time.Second
	DefaultUserAgent       = "goldquote-service/1.0"
	DefaultFakeSelling     = 2955.0
	DefaultFakeBuying      = 2922.0
)
