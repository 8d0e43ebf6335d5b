package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName        = "LunaCycle"
	AppID          = "com.github.trangvu.lunacycle"
	KeyringService = "com.github.trangvu.lunacycle"
	KeyringUser    = "gemini_api_key"
	LogFileName    = "app.log"
	DataFileName   = "data.json"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	// Used for the data file and logs, both of which hold health data.
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700
)

// -----------------------------------------------------------------------------
// Storage Key Namespace
// -----------------------------------------------------------------------------

const (
	KeyProfile     = "luna_profile"
	KeyCycles      = "luna_cycles"
	KeyAdvicePfx   = "luna_advice_" // one entry per calendar day: luna_advice_<YYYY-MM-DD>
	KeyLanguage    = "luna_language"
	KeyAdviceModel = "luna_advice_model"
)

// -----------------------------------------------------------------------------
// Defaults & Business Logic
// -----------------------------------------------------------------------------

const (
	DefaultCycleLength    = 28
	DefaultPeriodDuration = 5

	// Sanity windows. Samples outside these ranges are excluded from
	// averaging, never clamped, so a fat-fingered date cannot skew stats.
	MinPeriodDuration = 1  // inclusive
	MaxPeriodDuration = 15 // exclusive
	MinCycleGap       = 15 // exclusive
	MaxCycleGap       = 60 // exclusive

	// MaxActivePeriodDays is the hard window after which an unclosed
	// cycle is treated as historical for display purposes.
	MaxActivePeriodDays = 10

	// AdviceRetentionDays bounds the advice cache: entries older than
	// this many calendar days are evicted when the store reports a
	// failed write.
	AdviceRetentionDays = 30

	DefaultLanguage = "en"
	DefaultModel    = "gemini-2.5-flash"

	// FallbackActivityEmoji decorates legacy activity entries persisted
	// as bare strings before the emoji field existed.
	FallbackActivityEmoji = "✨"
)

// SupportedLanguages defines the list of available output languages (ISO 639-1).
var SupportedLanguages = []string{"en", "vi"}

// -----------------------------------------------------------------------------
// Data Formats
// -----------------------------------------------------------------------------

const (
	// DateFormatDay is the calendar-day layout used everywhere:
	// storage keys, persisted records, and CLI input.
	DateFormatDay = "2006-01-02"
)

// -----------------------------------------------------------------------------
// iCalendar Export
// -----------------------------------------------------------------------------

const (
	ICalVersion = "2.0"
	ICalProdid  = "-//LunaCycle//Tracker//EN"
	ICalCalName = "Cycle History"
	ICalScale   = "GREGORIAN"
	ICalMethod  = "PUBLISH"
	ICalDomain  = "lunacycle"

	PropUID        = "UID"
	PropSummary    = "SUMMARY"
	PropDTStart    = "DTSTART"
	PropDTEnd      = "DTEND"
	PropDTStamp    = "DTSTAMP"
	PropVersion    = "VERSION"
	PropProdid     = "PRODID"
	PropXWRCalName = "X-WR-CALNAME"
	PropCalScale   = "CALSCALE"
	PropMethod     = "METHOD"

	// UID Generation
	UIDSalt         = "lunacycle-v1-"
	UIDHashLength   = 16
	FormatHashInput = "%s|%s|%s"
	FormatUID       = "%s-%s@%s"
	ForecastUIDKey  = "forecast"

	// StubVCalendar is the minimal valid iCalendar object used when there
	// is nothing to export, so consumers never see an invalid feed.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyAdvicePrompt   = "advice_prompt"
	TKeyAdviceOnPeriod = "advice_status_period"
	TKeyAdviceNormal   = "advice_status_normal"
	TKeyStatusPeriod   = "status_on_period"
	TKeyStatusForecast = "status_forecast"
	TKeyStatusToday    = "status_due_today"
	TKeyEvtPeriod      = "event_period"
	TKeyEvtForecast    = "event_forecast"
	TKeyLblCycleLen    = "lbl_cycle_length"
	TKeyLblPeriodDur   = "lbl_period_duration"
	TKeyLblMood        = "lbl_mood"
	TKeyLblBreakfast   = "lbl_breakfast"
	TKeyLblLunch       = "lbl_lunch"
	TKeyLblDinner      = "lbl_dinner"
	TKeyLblActivities  = "lbl_activities"
	TKeyLblOngoing     = "lbl_ongoing"
	TKeyLblDuration    = "lbl_duration"
	TKeyLblDays        = "lbl_days"
	TKeyHello          = "hello"
)

// -----------------------------------------------------------------------------
// Feed Server (Network & Timeouts)
// -----------------------------------------------------------------------------

const (
	// LocalhostBindAddr keeps the feed unreachable from other hosts; the
	// calendar never leaves the machine.
	LocalhostBindAddr = "127.0.0.1"
	AddrSeparator     = ":"
	RouteRoot         = "/"
	DefaultFeedPort   = "8754"

	ShutdownTimeout    = 5 * time.Second
	ServerReadTimeout  = 10 * time.Second
	ServerWriteTimeout = 30 * time.Second
	ServerIdleTimeout  = 60 * time.Second

	RetryAfterSeconds = "10"
	AllowedMethods    = "GET, HEAD"
	ChannelBufferSize = 1
)

// -----------------------------------------------------------------------------
// HTTP Headers & MIME Types
// -----------------------------------------------------------------------------

const (
	HeaderContentType     = "Content-Type"
	HeaderCacheControl    = "Cache-Control"
	HeaderETag            = "ETag"
	HeaderLastModified    = "Last-Modified"
	HeaderRetryAfter      = "Retry-After"
	HeaderAllow           = "Allow"
	HeaderXContentType    = "X-Content-Type-Options"
	HeaderIfNoneMatch     = "If-None-Match"
	HeaderIfModifiedSince = "If-Modified-Since"

	MimeTextCalendar    = "text/calendar; charset=utf-8"
	MimeNoSniff         = "nosniff"
	CacheControlPrivate = "private, no-cache"

	// FormatETag expects a string argument.
	FormatETag = `"%s"`

	HTTPMsgMethodNotAll = "Method Not Allowed"
	HTTPMsgInitializing = "Calendar feed is initializing, retry shortly"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrConfigDir      = "could not determine user config dir"
	ErrCacheDir       = "could not determine user cache dir"
	ErrCreateDir      = "could not create app dir"
	ErrDataLoad       = "failed to load data file"
	ErrDataPersist    = "failed to persist data file"
	ErrDataDecode     = "failed to decode stored record"
	ErrDataEncode     = "failed to encode record"
	ErrDateParse      = "unable to parse date"
	ErrNoProfile      = "no profile exists yet, run init first"
	ErrNoCycles       = "no cycles recorded yet"
	ErrNoOpenCycle    = "no open cycle to close"
	ErrAPIKeyMissing  = "no API key configured, run key set first"
	ErrProviderCall   = "advice provider request failed"
	ErrProviderEmpty  = "advice provider returned no content"
	ErrProviderJSON   = "advice provider returned malformed JSON"
	ErrICalEncode     = "failed to encode iCalendar data"
	ErrLogFile        = "failed to open log file"
	ErrLocalesAccess  = "failed to access embedded locales"
	ErrLocaleLoad     = "failed to load locale file"
	ErrAppFailed      = "application failed unexpectedly"
	ErrNameRequired   = "name must not be empty"
	ErrDateRequired   = "a start date is required"
	ErrEndBeforeStart = "end date is before the cycle start"
	ErrPortRequired   = "feed port is required"
	ErrPortNumber     = "feed port must be a number"
	ErrPortRange      = "feed port must be between 1 and 65535"
	ErrServerStartup  = "feed server failed to start"
	ErrServerShutdown = "feed server shutdown failed"
	ErrWriteResp      = "failed to write feed response"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting    = "Starting application"
	MsgAppStop        = "Application stopped"
	MsgDataLoaded     = "Data file loaded"
	MsgDataCreated    = "New data file created"
	MsgCycleAdded     = "Cycle added"
	MsgCycleUpdated   = "Cycle updated"
	MsgCycleDeleted   = "Cycle deleted"
	MsgProfileSaved   = "Profile saved"
	MsgRecalcDone     = "Profile statistics recalculated"
	MsgRecalcSkipped  = "Recalculation skipped, no profile"
	MsgAdviceCacheHit = "Advice served from cache"
	MsgAdviceFetched  = "Advice fetched from provider"
	MsgAdviceMerged   = "Menu refreshed into cached advice"
	MsgAdviceSaveFail = "Advice cache write failed, continuing without persistence"
	MsgAdviceEvicted  = "Evicted stale advice entries"
	MsgStoreCleared   = "All persisted data cleared"
	MsgExportDone     = "Calendar export written"
	MsgFeedListen     = "Calendar feed listening"
	MsgFeedStop       = "Shutting down calendar feed"
	MsgFeedUpdated    = "Calendar feed content updated"
	MsgLocaleSkip     = "Skipping non-locale file"
	MsgLocaleLoaded   = "Locale loaded successfully"
	MsgTransMissing   = "Missing translation key"
	MsgLogWarning     = "Warning: %s at %s: %v\n"
	MsgVersionOutput  = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyKey       = "key"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyCycleID   = "cycle_id"
	LogKeyCount     = "count"
	LogKeyEvicted   = "evicted"
	LogKeyDateKey   = "date_key"
	LogKeyCycleLen  = "avg_cycle_length"
	LogKeyPeriodDur = "avg_period_duration"
	LogKeyModel     = "model"
	LogKeyDay       = "day_of_cycle"
	LogKeyOnPeriod  = "on_period"
	LogKeySizeBytes = "size_bytes"
	LogKeyDuration  = "duration_ms"
	LogKeyPort      = "port"
	LogKeyETag      = "etag"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompMain    = "main"
	CompStore   = "store"
	CompRepo    = "repository"
	CompAdvice  = "advice"
	CompGateway = "gateway"
	CompExport  = "export"
	CompFeed    = "feed"
	CompI18n    = "i18n"
	CompCLI     = "cli"
)
