package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	EnvMailCredentialsFile = "SHIPDESK_MAIL_CREDENTIALS_FILE"
	EnvMailTokenFile       = "SHIPDESK_MAIL_TOKEN_FILE"
	EnvMailMailbox         = "SHIPDESK_MAIL_MAILBOX"
	EnvMailPollEnabled     = "SHIPDESK_MAIL_POLL_ENABLED"
	EnvMailPollInterval    = "SHIPDESK_MAIL_POLL_INTERVAL"
	EnvMailMaxPerPoll      = "SHIPDESK_MAIL_MAX_PER_POLL"
)

// MailConfig holds Gmail transport and inbox polling parameters.
// CredentialsFile is the OAuth client credentials JSON; TokenFile is the
// cached user token produced by the authorization flow.
type MailConfig struct {
	CredentialsFile string `toml:"credentials_file"`
	TokenFile       string `toml:"token_file"`
	Mailbox         string `toml:"mailbox"`
	PollEnabled     bool   `toml:"poll_enabled"`
	PollInterval    string `toml:"poll_interval"`
	MaxPerPoll      int    `toml:"max_per_poll"`
}

// PollIntervalDuration returns PollInterval as a time.Duration.
func (c *MailConfig) PollIntervalDuration() time.Duration {
	d, _ := time.ParseDuration(c.PollInterval)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *MailConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *MailConfig) Merge(overlay *MailConfig) {
	if overlay.CredentialsFile != "" {
		c.CredentialsFile = overlay.CredentialsFile
	}
	if overlay.TokenFile != "" {
		c.TokenFile = overlay.TokenFile
	}
	if overlay.Mailbox != "" {
		c.Mailbox = overlay.Mailbox
	}
	if overlay.PollEnabled {
		c.PollEnabled = true
	}
	if overlay.PollInterval != "" {
		c.PollInterval = overlay.PollInterval
	}
	if overlay.MaxPerPoll != 0 {
		c.MaxPerPoll = overlay.MaxPerPoll
	}
}

func (c *MailConfig) loadDefaults() {
	if c.CredentialsFile == "" {
		c.CredentialsFile = "credentials.json"
	}
	if c.TokenFile == "" {
		c.TokenFile = "token.json"
	}
	if c.Mailbox == "" {
		c.Mailbox = "me"
	}
	if c.PollInterval == "" {
		c.PollInterval = "1m"
	}
	if c.MaxPerPoll == 0 {
		c.MaxPerPoll = 25
	}
}

func (c *MailConfig) loadEnv() {
	if v := os.Getenv(EnvMailCredentialsFile); v != "" {
		c.CredentialsFile = v
	}
	if v := os.Getenv(EnvMailTokenFile); v != "" {
		c.TokenFile = v
	}
	if v := os.Getenv(EnvMailMailbox); v != "" {
		c.Mailbox = v
	}
	if v := os.Getenv(EnvMailPollEnabled); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			c.PollEnabled = enabled
		}
	}
	if v := os.Getenv(EnvMailPollInterval); v != "" {
		c.PollInterval = v
	}
	if v := os.Getenv(EnvMailMaxPerPoll); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxPerPoll = n
		}
	}
}

func (c *MailConfig) validate() error {
	if _, err := time.ParseDuration(c.PollInterval); err != nil {
		return fmt.Errorf("invalid poll_interval: %w", err)
	}
	if c.MaxPerPoll < 1 {
		return fmt.Errorf("invalid max_per_poll: %d", c.MaxPerPoll)
	}
	return nil
}
