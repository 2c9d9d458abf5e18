// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "jp-wordbook"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort    = ":3000"
	DefaultIndexDocument = "index.html"
	DefaultLogLevel      = "info"
	DefaultDatabaseURL   = "file:wordbook.db?cache=shared"
)

// サポートするDBドライバ
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)
