package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly duration parsing. It exists so that a JSON config file can
// express durations as "24h" rather than nanosecond integers.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey     string   `json:"token_sign_key"`
		TokenIssuer      string   `json:"token_issuer"`
		TokenDuration    Duration `json:"token_duration"`
		PasswordHashCost int      `json:"password_hash_cost"`
		CSRFAuthKey      string   `json:"csrf_auth_key"`
		AdminEmail       string   `json:"admin_email"`
		AdminPassword    string   `json:"admin_password"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress        string   `json:"http_address"`
		Environment        string   `json:"environment"`
		CORSAllowedOrigins []string `json:"cors_allowed_origins"`
		RequestTimeout     Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	RateLimit struct {
		Window      Duration `json:"window"`
		GlobalLimit int      `json:"global_limit"`
		LoginLimit  int      `json:"login_limit"`
	} `json:"rate_limit,omitempty"`

	Payment struct {
		StripeSecretKey string `json:"stripe_secret_key"`
	} `json:"payment,omitempty"`

	Assets struct {
		CloudName string `json:"cloud_name"`
		APIKey    string `json:"api_key"`
		SecretKey string `json:"secret_key"`
	} `json:"assets,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:     jsonCfg.App.TokenSignKey,
			TokenIssuer:      jsonCfg.App.TokenIssuer,
			TokenDuration:    time.Duration(jsonCfg.App.TokenDuration),
			PasswordHashCost: jsonCfg.App.PasswordHashCost,
			CSRFAuthKey:      jsonCfg.App.CSRFAuthKey,
			AdminEmail:       jsonCfg.App.AdminEmail,
			AdminPassword:    jsonCfg.App.AdminPassword,
		},
		Server: Server{
			HTTPAddress:        jsonCfg.Server.HTTPAddress,
			Environment:        jsonCfg.Server.Environment,
			CORSAllowedOrigins: jsonCfg.Server.CORSAllowedOrigins,
			RequestTimeout:     time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		RateLimit: RateLimit{
			Window:      time.Duration(jsonCfg.RateLimit.Window),
			GlobalLimit: jsonCfg.RateLimit.GlobalLimit,
			LoginLimit:  jsonCfg.RateLimit.LoginLimit,
		},
		Payment: Payment{
			StripeSecretKey: jsonCfg.Payment.StripeSecretKey,
		},
		Assets: Assets{
			CloudName: jsonCfg.Assets.CloudName,
			APIKey:    jsonCfg.Assets.APIKey,
			SecretKey: jsonCfg.Assets.SecretKey,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "24h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
