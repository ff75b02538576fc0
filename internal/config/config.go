package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	errEnvVarNotFound error = errors.New("environment variable not found")
	errInvalidEnvVar  error = errors.New("invalid environment variable")
)

const (
	DriverPostgres = "postgres"
	DriverMongoDB  = "mongodb"
)

const (
	portEnvKey              = "PORT"
	storeDriverEnvKey       = "STORE_DRIVER"
	dbConnEnvKey            = "DB_CONNECTION_URL"
	mongoURIEnvKey          = "MONGODB_URI"
	mongoDatabaseEnvKey     = "MONGODB_DATABASE"
	captchaAnswerEnvKey     = "CAPTCHA_ANSWER"
	loginRequireEmailEnvKey = "LOGIN_REQUIRE_EMAIL"
	smtpHostEnvKey          = "SMTP_HOST"
	smtpPortEnvKey          = "SMTP_PORT"
	smtpUsernameEnvKey      = "SMTP_USERNAME"
	smtpPasswordEnvKey      = "SMTP_PASSWORD"
	mailFromEnvKey          = "MAIL_FROM"
	logLevelEnvKey          = "LOG_LEVEL"
)

const (
	defaultPort          = "3000"
	defaultMongoDatabase = "gamesite"
	defaultCaptcha       = "7"
	defaultSMTPPort      = 587
	defaultLogLevel      = "info"
)

type SMTP struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Enabled reports whether a mail server is configured.
func (s SMTP) Enabled() bool {
	return s.Host != ""
}

type App struct {
	Port              string
	StoreDriver       string
	DBConnectionURL   string
	MongoURI          string
	MongoDatabase     string
	CaptchaAnswer     string
	LoginRequireEmail bool
	SMTP              SMTP
	LogLevel          string
}

// NewApp reads the configuration from the environment. Variables found in the env files
// (".env" when none are given) fill in what the environment does not set; a missing file is not an error.
func NewApp(envFiles ...string) (App, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return App{}, fmt.Errorf("load env file: %w", err)
	}

	app := App{
		Port:          lookupDefault(portEnvKey, defaultPort),
		StoreDriver:   lookupDefault(storeDriverEnvKey, DriverPostgres),
		MongoDatabase: lookupDefault(mongoDatabaseEnvKey, defaultMongoDatabase),
		CaptchaAnswer: lookupDefault(captchaAnswerEnvKey, defaultCaptcha),
		LogLevel:      lookupDefault(logLevelEnvKey, defaultLogLevel),
	}

	var ok bool
	switch app.StoreDriver {
	case DriverPostgres:
		app.DBConnectionURL, ok = os.LookupEnv(dbConnEnvKey)
		if !ok {
			return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
		}
	case DriverMongoDB:
		app.MongoURI, ok = os.LookupEnv(mongoURIEnvKey)
		if !ok {
			return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, mongoURIEnvKey)
		}
	default:
		return App{}, fmt.Errorf("%w: %s must be %q or %q", errInvalidEnvVar, storeDriverEnvKey, DriverPostgres, DriverMongoDB)
	}

	loginRequireEmail, err := strconv.ParseBool(lookupDefault(loginRequireEmailEnvKey, "false"))
	if err != nil {
		return App{}, fmt.Errorf("%w: %s: %w", errInvalidEnvVar, loginRequireEmailEnvKey, err)
	}
	app.LoginRequireEmail = loginRequireEmail

	smtpPort, err := strconv.Atoi(lookupDefault(smtpPortEnvKey, strconv.Itoa(defaultSMTPPort)))
	if err != nil {
		return App{}, fmt.Errorf("%w: %s: %w", errInvalidEnvVar, smtpPortEnvKey, err)
	}

	app.SMTP = SMTP{
		Host:     os.Getenv(smtpHostEnvKey),
		Port:     smtpPort,
		Username: os.Getenv(smtpUsernameEnvKey),
		Password: os.Getenv(smtpPasswordEnvKey),
		From:     lookupDefault(mailFromEnvKey, os.Getenv(smtpUsernameEnvKey)),
	}

	if app.SMTP.Enabled() && app.SMTP.From == "" {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, mailFromEnvKey)
	}

	return app, nil
}

func lookupDefault(key, fallback string) string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	return value
}
