package config

import (
	"os"

	"github.com/Veraticus/ewaste-impact/internal/sheets"
	"github.com/spf13/viper"
)

// sheetsEnv maps viper keys to the GOOGLE_SHEETS_* variables consulted when
// the key is unset.
var sheetsEnv = map[string]string{
	"sheets.service_account_path": "GOOGLE_SHEETS_SERVICE_ACCOUNT_PATH",
	"sheets.client_id":            "GOOGLE_SHEETS_CLIENT_ID",
	"sheets.client_secret":        "GOOGLE_SHEETS_CLIENT_SECRET",
	"sheets.refresh_token":        "GOOGLE_SHEETS_REFRESH_TOKEN",
	"sheets.spreadsheet_id":       "GOOGLE_SHEETS_SPREADSHEET_ID",
	"sheets.spreadsheet_name":     "GOOGLE_SHEETS_SPREADSHEET_NAME",
}

// LoadSheetsConfig builds the Sheets writer config. Precedence is viper
// (config file or IMPACT_SHEETS_* env), then GOOGLE_SHEETS_* env, then
// sheets.DefaultConfig.
func LoadSheetsConfig() (*sheets.Config, error) {
	config := sheets.DefaultConfig()

	config.ServiceAccountPath = ExpandPath(lookup("sheets.service_account_path"))
	config.ClientID = lookup("sheets.client_id")
	config.ClientSecret = lookup("sheets.client_secret")
	config.RefreshToken = lookup("sheets.refresh_token")
	config.SpreadsheetID = lookup("sheets.spreadsheet_id")
	if v := lookup("sheets.spreadsheet_name"); v != "" {
		config.SpreadsheetName = v
	}
	if v := viper.GetString("sheets.timezone"); v != "" {
		config.TimeZone = v
	}
	if viper.IsSet("sheets.batch_size") {
		config.BatchSize = viper.GetInt("sheets.batch_size")
	}
	if viper.IsSet("sheets.formatting") {
		config.EnableFormatting = viper.GetBool("sheets.formatting")
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// LoadOAuth2Config returns the client credentials for `auth sheets`.
func LoadOAuth2Config() sheets.OAuth2Config {
	return sheets.OAuth2Config{
		ClientID:     lookup("sheets.client_id"),
		ClientSecret: lookup("sheets.client_secret"),
		TokenFile:    TokenPath(),
		ListenAddr:   viper.GetString("sheets.listen_addr"),
	}
}

func lookup(key string) string {
	if v := viper.GetString(key); v != "" {
		return v
	}
	return os.Getenv(sheetsEnv[key])
}

func pathOr(key, fallback string) string {
	if v := viper.GetString(key); v != "" {
		return ExpandPath(v)
	}
	return fallback
}
