package config

import (
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	Google   Google
	Session  Session
	Mail     Mail
	Quiz     Quiz
	Admin    Admin
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type Google struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

type Session struct {
	Secret string
}

type Mail struct {
	Host     string
	Port     string
	Username string
	Password string
	Sender   string
}

type Quiz struct {
	QuestionsPerCategory int
	TimerSeconds         int
	BankPath             string
	ResultEmailDelayMin  int
}

type Admin struct {
	Emails []string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("QUIZ_QUESTIONS_PER_CATEGORY", 2)
	viper.SetDefault("QUIZ_TIMER_SECONDS", 300)
	viper.SetDefault("RESULT_EMAIL_DELAY_MINUTES", 60)
	viper.SetDefault("MAIL_HOST", "smtp.gmail.com")
	viper.SetDefault("MAIL_PORT", "587")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.Google.ClientID = viper.GetString("GOOGLE_CLIENT_ID")
	config.Google.ClientSecret = viper.GetString("GOOGLE_CLIENT_SECRET")
	config.Google.RedirectURL = viper.GetString("GOOGLE_REDIRECT_URL")

	config.Session.Secret = viper.GetString("SESSION_SECRET")

	config.Mail.Host = viper.GetString("MAIL_HOST")
	config.Mail.Port = viper.GetString("MAIL_PORT")
	config.Mail.Username = viper.GetString("MAIL_USERNAME")
	config.Mail.Password = viper.GetString("MAIL_PASSWORD")
	config.Mail.Sender = viper.GetString("MAIL_DEFAULT_SENDER")

	config.Quiz.QuestionsPerCategory = viper.GetInt("QUIZ_QUESTIONS_PER_CATEGORY")
	config.Quiz.TimerSeconds = viper.GetInt("QUIZ_TIMER_SECONDS")
	config.Quiz.BankPath = viper.GetString("QUIZ_BANK_PATH")
	config.Quiz.ResultEmailDelayMin = viper.GetInt("RESULT_EMAIL_DELAY_MINUTES")

	if raw := viper.GetString("ADMIN_EMAILS"); raw != "" {
		for _, e := range strings.Split(raw, ",") {
			if e = strings.TrimSpace(e); e != "" {
				config.Admin.Emails = append(config.Admin.Emails, strings.ToLower(e))
			}
		}
	}

	log.Info().Str("port", config.Server.Port).Int("admin_emails", len(config.Admin.Emails)).Msg("Config loaded")
	return &config, nil
}

// IsAdminEmail reports whether the given address belongs to an admin.
func (c *Config) IsAdminEmail(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, e := range c.Admin.Emails {
		if e == email {
			return true
		}
	}
	return false
}
