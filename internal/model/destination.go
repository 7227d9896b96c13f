package model

import (
	"encoding/json"
	"fmt"
)

// Destination is where the generated document gets delivered.
type Destination interface {
	DestinationProtocol() Protocol
	isDestination()
}

type FileDestination struct {
	Name string `json:"name"`
}

type ConfluenceDestination struct {
	Name     string `json:"name"`
	ParentID string `json:"parentId"`
	GroupID  string `json:"groupId"`
}

type JiraDestination struct {
	Name       string `json:"name"`
	ProjectKey string `json:"projectKey"`
	ParentKey  string `json:"parentKey,omitempty"`
}

func (FileDestination) DestinationProtocol() Protocol       { return ProtocolFile }
func (ConfluenceDestination) DestinationProtocol() Protocol { return ProtocolConfluencePage }
func (JiraDestination) DestinationProtocol() Protocol       { return ProtocolJiraTicket }

func (FileDestination) isDestination()       {}
func (ConfluenceDestination) isDestination() {}
func (JiraDestination) isDestination()       {}

func (d FileDestination) MarshalJSON() ([]byte, error) {
	type plain FileDestination
	return json.Marshal(struct {
		plain
		Protocol Protocol `json:"protocol"`
	}{plain(d), ProtocolFile})
}

func (d ConfluenceDestination) MarshalJSON() ([]byte, error) {
	type plain ConfluenceDestination
	return json.Marshal(struct {
		plain
		Protocol Protocol `json:"protocol"`
	}{plain(d), ProtocolConfluencePage})
}

func (d JiraDestination) MarshalJSON() ([]byte, error) {
	type plain JiraDestination
	return json.Marshal(struct {
		plain
		Protocol Protocol `json:"protocol"`
	}{plain(d), ProtocolJiraTicket})
}

func DecodeDestination(data []byte) (Destination, error) {
	p, err := probeProtocol(data)
	if err != nil {
		return nil, fmt.Errorf("destination: %w", err)
	}
	switch p {
	case ProtocolFile:
		var d FileDestination
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, err
		}
		return d, nil
	case ProtocolConfluencePage:
		var d ConfluenceDestination
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, err
		}
		return d, nil
	case ProtocolJiraTicket:
		var d JiraDestination
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, err
		}
		return d, nil
	default:
		return nil, fmt.Errorf("destination: %w %q", ErrUnknownProtocol, p)
	}
}
