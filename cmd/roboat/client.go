package main

import (
	"github.com/eshaffer321/roboat-go/pkg/roboat"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

const (
	credentialFlag = "roblosecurity"
	rpsFlag        = "rps"
	burstFlag      = "burst"
	sentryDSNFlag  = "sentry-dsn"
	timeoutFlag    = "timeout"
	logLevelFlag   = "log-level"
	economyURLFlag = "economy-url"
	usersURLFlag   = "users-url"
	catalogURLFlag = "catalog-url"
)

func RegisterClientFlags(f []cli.Flag) []cli.Flag {
	return append(f,
		cli.StringFlag{
			Name:   credentialFlag,
			Usage:  ".ROBLOSECURITY cookie value",
			EnvVar: "ROBLOSECURITY",
		},
		cli.Float64Flag{
			Name:   rpsFlag,
			Usage:  "maximum requests per second (0 disables limiting)",
			EnvVar: "ROBOAT_RPS",
		},
		cli.IntFlag{
			Name:   burstFlag,
			Usage:  "rate limiter burst size",
			EnvVar: "ROBOAT_BURST",
			Value:  1,
		},
		cli.StringFlag{
			Name:   sentryDSNFlag,
			Usage:  "sentry dsn for error reporting",
			EnvVar: "SENTRY_DSN",
		},
		cli.DurationFlag{
			Name:   timeoutFlag,
			Usage:  "http client timeout",
			EnvVar: "ROBOAT_TIMEOUT",
			Value:  roboat.DefaultTimeout,
		},
		cli.StringFlag{
			Name:   economyURLFlag,
			Usage:  "economy api base url",
			EnvVar: "ROBOAT_ECONOMY_URL",
			Value:  roboat.DefaultEconomyURL,
		},
		cli.StringFlag{
			Name:   usersURLFlag,
			Usage:  "users api base url",
			EnvVar: "ROBOAT_USERS_URL",
			Value:  roboat.DefaultUsersURL,
		},
		cli.StringFlag{
			Name:   catalogURLFlag,
			Usage:  "catalog api base url",
			EnvVar: "ROBOAT_CATALOG_URL",
			Value:  roboat.DefaultCatalogURL,
		},
		cli.StringFlag{
			Name:   logLevelFlag,
			Usage:  "log level (debug, info, warn, error)",
			EnvVar: "ROBOAT_LOG_LEVEL",
			Value:  "warn",
		},
	)
}

func configureLogging(c *cli.Context) error {
	level, err := log.ParseLevel(c.GlobalString(logLevelFlag))
	if err != nil {
		return errors.Wrapf(err, "invalid %s", logLevelFlag)
	}
	log.SetLevel(level)
	return nil
}

func newClient(c *cli.Context) (*roboat.Client, error) {
	opts := &roboat.ClientOptions{
		Credential: c.GlobalString(credentialFlag),
		EconomyURL: c.GlobalString(economyURLFlag),
		UsersURL:   c.GlobalString(usersURLFlag),
		CatalogURL: c.GlobalString(catalogURLFlag),
		Timeout:    c.GlobalDuration(timeoutFlag),
		SentryDSN:  c.GlobalString(sentryDSNFlag),
		Logger:     newLogger(log.StandardLogger()),
	}
	if rps := c.GlobalFloat64(rpsFlag); rps > 0 {
		opts.RateLimiter = roboat.NewRateLimiter(rps, c.GlobalInt(burstFlag))
	}
	return roboat.NewClient(opts)
}
