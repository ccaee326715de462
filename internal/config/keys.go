package config

const (
	KeyAPIURL     = "api_url"
	KeyAuthScheme = "auth_scheme"
	KeyLogLevel   = "log_level"
	KeyTransport  = "transport"
	KeyHost       = "host"
	KeyPort       = "port"
)
