package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	FSS          FSS          `mapstructure:",squash"`
	ECOS         ECOS         `mapstructure:",squash"`
	BackfillSync BackfillSync `mapstructure:",squash"`
	Chart        Chart        `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// FSS holds the connection settings for the FISIS open statistics API.
// The list and account codes select the solvency statement rows: one account
// code for available capital and one for required capital, per sector list.
type FSS struct {
	BaseURL            string `mapstructure:"fss_base_url"`
	AuthKey            string `mapstructure:"fss_auth_key"`
	LifeListNo         string `mapstructure:"fss_life_list_no"`
	NonLifeListNo      string `mapstructure:"fss_non_life_list_no"`
	AvailableAccountCd string `mapstructure:"fss_available_account_cd"`
	RequiredAccountCd  string `mapstructure:"fss_required_account_cd"`
	Term               string `mapstructure:"fss_term"`
}

// ECOS holds the connection settings for the Bank of Korea statistics API
// used as the benchmark yield source.
type ECOS struct {
	BaseURL  string `mapstructure:"ecos_base_url"`
	AuthKey  string `mapstructure:"ecos_auth_key"`
	StatCode string `mapstructure:"ecos_stat_code"`
	ItemCode string `mapstructure:"ecos_item_code"`
	Cycle    string `mapstructure:"ecos_cycle"`
	PageSize int    `mapstructure:"ecos_page_size"`
}

type BackfillSync struct {
	CronSchedule        string `mapstructure:"backfill_sync_cron"`
	LookbackMonths      int    `mapstructure:"backfill_sync_lookback_months"`
	RequestDelaySeconds int    `mapstructure:"backfill_sync_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"backfill_sync_max_concurrent_jobs"`
	Enabled             bool   `mapstructure:"backfill_sync_enabled"`
}

type Chart struct {
	PaddingFraction float64 `mapstructure:"chart_padding_fraction"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/solvency")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("FSS_BASE_URL", "http://fisis.fss.or.kr/openapi")
	viper.SetDefault("FSS_AUTH_KEY", "your_auth_key") // ONLY LOCAL
	viper.SetDefault("FSS_LIFE_LIST_NO", "SH021")
	viper.SetDefault("FSS_NON_LIFE_LIST_NO", "SI021")
	viper.SetDefault("FSS_AVAILABLE_ACCOUNT_CD", "A11")
	viper.SetDefault("FSS_REQUIRED_ACCOUNT_CD", "A12")
	viper.SetDefault("FSS_TERM", "Q") // quarterly reporting

	viper.SetDefault("ECOS_BASE_URL", "https://ecos.bok.or.kr/api")
	viper.SetDefault("ECOS_AUTH_KEY", "your_auth_key") // ONLY LOCAL
	viper.SetDefault("ECOS_STAT_CODE", "817Y002")      // market interest rates, daily
	viper.SetDefault("ECOS_ITEM_CODE", "010200001")    // treasury bonds
	viper.SetDefault("ECOS_CYCLE", "D")
	viper.SetDefault("ECOS_PAGE_SIZE", 1000)

	viper.SetDefault("BACKFILL_SYNC_CRON", "0 5 * * *") // every day at 5am
	viper.SetDefault("BACKFILL_SYNC_LOOKBACK_MONTHS", 12)
	viper.SetDefault("BACKFILL_SYNC_REQUEST_DELAY_SECONDS", 2)
	viper.SetDefault("BACKFILL_SYNC_MAX_CONCURRENT_JOBS", 3)
	viper.SetDefault("BACKFILL_SYNC_ENABLED", false)

	viper.SetDefault("CHART_PADDING_FRACTION", 0.1)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Using variables loaded by godotenv (viper could not read .env):", err)
	} else {
		logrus.Info(".env file read by viper")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadEnvFile loads the .env file via godotenv, trying the usual locations.
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Could not determine current directory:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info(".env file loaded from:", location)
			return
		}
	}

	logrus.Warn("No .env file found in any known location")
}
