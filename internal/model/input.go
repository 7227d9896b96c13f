package model

import (
	"encoding/json"
	"fmt"
)

const (
	MediaTypeMarkdown = "text/markdown"
	MediaTypeZip      = "application/zip"
)

// Story is one input item of a high level design request.
type Story interface {
	StoryProtocol() Protocol
	isStory()
}

type JiraStory struct {
	Name      string `json:"name"`
	RemoteURI string `json:"remoteURI"`
}

// FileStory embeds the story content as a data URL.
type FileStory struct {
	Name      string `json:"name"`
	DataURL   string `json:"dataURL"`
	MediaType string `json:"mediaType,omitempty"`
	FileName  string `json:"fileName,omitempty"`
}

func (JiraStory) StoryProtocol() Protocol { return ProtocolJiraTicket }
func (FileStory) StoryProtocol() Protocol { return ProtocolFile }

func (JiraStory) isStory() {}
func (FileStory) isStory() {}

func (s JiraStory) MarshalJSON() ([]byte, error) {
	type plain JiraStory
	return json.Marshal(struct {
		plain
		Protocol Protocol `json:"protocol"`
	}{plain(s), ProtocolJiraTicket})
}

func (s FileStory) MarshalJSON() ([]byte, error) {
	type plain FileStory
	return json.Marshal(struct {
		plain
		Protocol Protocol `json:"protocol"`
	}{plain(s), ProtocolFile})
}

func DecodeStory(data []byte) (Story, error) {
	p, err := probeProtocol(data)
	if err != nil {
		return nil, fmt.Errorf("story: %w", err)
	}
	switch p {
	case ProtocolJiraTicket:
		var s JiraStory
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, err
		}
		return s, nil
	case ProtocolFile:
		var s FileStory
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("story: %w %q", ErrUnknownProtocol, p)
	}
}

func DecodeStories(data []byte) ([]Story, error) {
	return decodeList(data, DecodeStory)
}

// Code is one input item of a reverse engineering request.
type Code interface {
	CodeProtocol() Protocol
	isCode()
}

type GitCode struct {
	Name      string `json:"name"`
	RemoteURI string `json:"remoteURI"`
	Branch    string `json:"branch"`
}

type ArchiveCode struct {
	Name      string `json:"name"`
	DataURL   string `json:"dataURL"`
	MediaType string `json:"mediaType,omitempty"`
}

func (GitCode) CodeProtocol() Protocol     { return ProtocolGitCode }
func (ArchiveCode) CodeProtocol() Protocol { return ProtocolArchive }

func (GitCode) isCode()     {}
func (ArchiveCode) isCode() {}

func (c GitCode) MarshalJSON() ([]byte, error) {
	type plain GitCode
	return json.Marshal(struct {
		plain
		Protocol Protocol `json:"protocol"`
	}{plain(c), ProtocolGitCode})
}

func (c ArchiveCode) MarshalJSON() ([]byte, error) {
	type plain ArchiveCode
	return json.Marshal(struct {
		plain
		Protocol Protocol `json:"protocol"`
	}{plain(c), ProtocolArchive})
}

func DecodeCode(data []byte) (Code, error) {
	p, err := probeProtocol(data)
	if err != nil {
		return nil, fmt.Errorf("code: %w", err)
	}
	switch p {
	case ProtocolGitCode:
		var c GitCode
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, err
		}
		return c, nil
	case ProtocolArchive:
		var c ArchiveCode
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("code: %w %q", ErrUnknownProtocol, p)
	}
}

func DecodeCodes(data []byte) ([]Code, error) {
	return decodeList(data, DecodeCode)
}
