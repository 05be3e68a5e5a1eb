package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/gilliginsisland/nexd/app"
	"github.com/gilliginsisland/nexd/internal/logutil"
	"github.com/gilliginsisland/nexd/pkg/flagutil"
)

// Opts are the command line options. Zero values mean "not given" so the
// config file and environment can supply them.
type Opts struct {
	Port        int               `short:"p" long:"port" value-name:"NUMBER" description:"Port to listen on (default: 1900)"`
	Docroot     flagutil.Path     `short:"d" long:"docroot" value-name:"PATH" description:"Directory to serve (default: ./docroot)"`
	ConfigPath  flagutil.Path     `short:"c" long:"config" env:"NEXD_CONFIG" value-name:"PATH" description:"YAML, JSON or TOML config file"`
	LogLevel    flagutil.LogLevel `short:"v" long:"verbosity" description:"Verbosity level"`
	LogFormat   string            `long:"log-format" default:"text" choice:"text" choice:"json" description:"Log output format"`
	Contained   bool              `long:"contained" description:"Refuse requests that resolve outside the docroot"`
	ParentEntry bool              `long:"parent-entry" description:"Include ../ in directory listings"`
	Timeout     flagutil.Duration `long:"timeout" value-name:"DURATION" description:"Drop clients that take longer than this (default: no limit)"`
	Stdio       bool              `long:"stdio" description:"Answer one request on stdin/stdout, as under inetd; logs go to stderr"`
}

// Config layers the defaults, the config file, environ and the flags.
func (o *Opts) Config(environ []string) (*app.Config, error) {
	c := app.Default()
	if o.ConfigPath != "" {
		if err := app.ParseConfigFile(o.ConfigPath, &c); err != nil {
			return nil, err
		}
	}
	if err := c.LoadEnv(environ); err != nil {
		return nil, err
	}

	if o.Port != 0 {
		c.Port = o.Port
	}
	if o.Docroot != "" {
		c.Docroot = o.Docroot
	}
	if o.Contained {
		c.Contained = true
	}
	if o.ParentEntry {
		c.ParentEntry = true
	}
	if o.Timeout.Duration != 0 {
		c.Timeout = o.Timeout
	}

	if err := c.Normalize(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Logger returns the console logger selected by the options. In stdio mode
// stdout carries the response, so logs move to stderr.
func (o *Opts) Logger() *slog.Logger {
	var w io.Writer = os.Stdout
	if o.Stdio {
		w = os.Stderr
	}

	hopts := &slog.HandlerOptions{
		Level: o.LogLevel.Level,
	}
	if o.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, hopts))
	}
	return slog.New(logutil.NewTabHandler(w, hopts))
}
