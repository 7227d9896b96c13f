// Package model holds the value types exchanged with the Weles AI service.
//
// Destinations, stories and code items are sealed tagged unions: each variant
// is its own struct and writes its protocol discriminator when marshaled.
// Callers never set the discriminator themselves.
package model

import (
	"encoding/json"
	"errors"
	"fmt"
)

type Protocol string

const (
	ProtocolFile           Protocol = "FILE"
	ProtocolJiraTicket     Protocol = "JIRA_TICKET"
	ProtocolConfluencePage Protocol = "CONFLUENCE_PAGE"
	ProtocolGitCode        Protocol = "GIT_CODE"
	ProtocolArchive        Protocol = "ARCHIVE"
)

var ErrUnknownProtocol = errors.New("unknown protocol")

type protocolProbe struct {
	Protocol Protocol `json:"protocol"`
}

func probeProtocol(data []byte) (Protocol, error) {
	var p protocolProbe
	if err := json.Unmarshal(data, &p); err != nil {
		return "", err
	}
	if p.Protocol == "" {
		return "", fmt.Errorf("%w: protocol is missing", ErrUnknownProtocol)
	}
	return p.Protocol, nil
}

// decodeList splits a JSON array and decodes every element with fn.
func decodeList[T any](data []byte, fn func([]byte) (T, error)) ([]T, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	out := make([]T, 0, len(raw))
	for i, item := range raw {
		v, err := fn(item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}
