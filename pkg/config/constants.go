package config

const (
	// EnvPrefix is the envconfig prefix shared by all settings.
	EnvPrefix = "VANSTOCK"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)
