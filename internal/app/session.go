package app

import (
	"io"
	"os"

	"weles-ai/internal/client"
	"weles-ai/internal/config"
)

// GlobalOptions are shared by every command.
type GlobalOptions struct {
	ConfigPath string
	APIKey     string
	BaseURL    string
	SSLMode    string
	Verbose    bool
	LogFile    string
	Stdout     io.Writer
}

type session struct {
	api      *client.API
	log      *Logger
	settings config.Settings
	out      io.Writer
}

func openSession(g GlobalOptions) (*session, error) {
	st, err := config.Resolve(config.Overrides{
		ConfigPath: g.ConfigPath,
		APIKey:     g.APIKey,
		BaseURL:    g.BaseURL,
		SSLMode:    g.SSLMode,
	})
	if err != nil {
		return nil, err
	}
	if st.APIKey == "" {
		return nil, missingKeyError()
	}
	log, err := NewLogger(g.Verbose, g.LogFile)
	if err != nil {
		return nil, err
	}
	api, err := client.New(client.Options{
		BaseURL: st.BaseURL,
		APIKey:  st.APIKey,
		SSLMode: client.SSLMode(st.SSLMode),
		CAFile:  st.CAFile,
	})
	if err != nil {
		_ = log.Close()
		return nil, err
	}
	api.SetTrace(func(ev client.TraceEvent) {
		log.Event("http_"+ev.Stage, traceFields(ev))
	})
	log.Event("session", map[string]any{"base_url": api.BaseURL(), "ssl_mode": st.SSLMode})

	out := g.Stdout
	if out == nil {
		out = os.Stdout
	}
	return &session{api: api, log: log, settings: st, out: out}, nil
}

func (s *session) close() {
	_ = s.log.Close()
}

func traceFields(ev client.TraceEvent) map[string]any {
	m := map[string]any{
		"method":      ev.Method,
		"url":         ev.URL,
		"request_id":  ev.RequestID,
		"duration_ms": ev.DurationMs,
	}
	if ev.StatusCode != 0 {
		m["status_code"] = ev.StatusCode
	}
	if ev.Request != "" {
		m["request"] = ev.Request
	}
	if ev.Response != "" {
		m["response"] = ev.Response
	}
	if ev.Error != "" {
		m["error"] = ev.Error
	}
	return m
}
