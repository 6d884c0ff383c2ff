package conf

const (
	ModeDev  = "dev"
	ModeProd = "prod"
)

// Bootstrap is the `log` section of the application config.
type Bootstrap struct {
	Log *Log `json:"log"`
}

type Log struct {
	Logger *Logger `json:"logger"`
}

type Logger struct {
	Mode       string   `json:"mode"`
	AppName    string   `json:"app_name"`
	Level      string   `json:"level"`
	Directory  string   `json:"directory"`
	FormatJson bool     `json:"format_json"`
	ErrorFile  bool     `json:"error_file"`
	Sensitive  []string `json:"sensitive"`
	Rotate     *Rotate  `json:"rotate"`
}

type Rotate struct {
	MaxSizeMB  int32 `json:"max_size_mb"`
	MaxBackups int32 `json:"max_backups"`
	MaxAgeDays int32 `json:"max_age_days"`
	Compress   bool  `json:"compress"`
	LocalTime  bool  `json:"local_time"`
}

func DefaultConfig(opts ...Option) *Bootstrap {
	c := &Log{
		Logger: &Logger{
			Mode:       ModeDev,
			AppName:    "app",
			Level:      "debug",
			Directory:  "./logs",
			FormatJson: false,
			ErrorFile:  false,
			Sensitive:  []string{},
			Rotate: &Rotate{
				MaxSizeMB:  100,
				MaxBackups: 7,
				MaxAgeDays: 7,
				Compress:   true,
				LocalTime:  true,
			},
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return &Bootstrap{
		Log: c,
	}
}

// Fill replaces missing sections with defaults so a partial YAML file still
// yields a usable logger.
func (b *Bootstrap) Fill() *Bootstrap {
	def := DefaultConfig().Log
	if b.Log == nil {
		b.Log = def
		return b
	}
	if b.Log.Logger == nil {
		b.Log.Logger = def.Logger
		return b
	}
	l := b.Log.Logger
	if l.Mode == "" {
		l.Mode = def.Logger.Mode
	}
	if l.AppName == "" {
		l.AppName = def.Logger.AppName
	}
	if l.Level == "" {
		l.Level = def.Logger.Level
	}
	if l.Rotate == nil {
		l.Rotate = def.Logger.Rotate
	}
	return b
}

type Option func(*Log)

func WithLevel(level string) Option {
	return func(c *Log) { c.Logger.Level = level }
}

func WithSensitive(keys []string) Option {
	return func(c *Log) { c.Logger.Sensitive = keys }
}

