package model

import "net/url"

// Config stores the application configuration.
type Config struct {
	BotToken      string
	MongoUser     string
	MongoPass     string
	MongoAddr     string
	MongoDatabase string
	Prefix        string
	WindowDays    int
	LogWebhookURL string
}

// MongoURI builds the connection string for the occurrence store from the
// credential pair and network address.
func (c *Config) MongoURI() string {
	u := url.URL{
		Scheme: "mongodb",
		User:   url.UserPassword(c.MongoUser, c.MongoPass),
		Host:   c.MongoAddr,
		Path:   "/" + c.MongoDatabase,
	}
	return u.String()
}
