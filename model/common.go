package model

// Response is the common error/message envelope for all API calls.
type Response struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Update successful"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// --- SYSTEM CONFIG ---
type EnvConfig struct {
	Port                string `json:"port"`
	Environment         string `json:"environment"`
	MongoUri            string `json:"mongoUri"`
	RedisUrl            string `json:"redisUrl"`
	FetchTimeoutSeconds int    `json:"fetchTimeoutSeconds"`
	RefreshCron         string `json:"refreshCron"`
}
