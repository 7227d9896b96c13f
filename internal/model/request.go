package model

import (
	"encoding/json"
)

type ProjectContext struct {
	ProjectID   string `json:"projectId"`
	ReleaseID   string `json:"releaseId"`
	IncrementNo int    `json:"incrementNo"`
}

// Remote is a credentialed reference to an external system the service may
// read additional context from.
//
// For blob workspaces BaseURI is the catalog root; the service appends
// {tenantId}/{projectId}/{releaseId}/{incrementId} itself.
type Remote struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	BaseURI     string            `json:"baseURI"`
	Credentials RemoteCredentials `json:"credentials"`
}

// RemoteCredentials carries a bearer token, or a password when Username is set.
type RemoteCredentials struct {
	Token    string `json:"token"`
	Username string `json:"username,omitempty"`
}

// HLDRequest asks for a high level design document built from stories.
// A nil Remotes lets the service apply the account defaults; an empty,
// non-nil Remotes is sent as an explicit empty list.
type HLDRequest struct {
	Context     ProjectContext `json:"context"`
	Destination Destination    `json:"destination"`
	Stories     []Story        `json:"stories"`
	Remotes     []Remote       `json:"remotes,omitempty"`
}

type ReverseEngineeringRequest struct {
	Context     ProjectContext `json:"context"`
	Destination Destination    `json:"destination"`
	Codes       []Code         `json:"codes"`
	Remotes     []Remote       `json:"remotes,omitempty"`
}

type requestEnvelope struct {
	Context     ProjectContext  `json:"context"`
	Destination json.RawMessage `json:"destination"`
	Stories     json.RawMessage `json:"stories"`
	Codes       json.RawMessage `json:"codes"`
	Remotes     []Remote        `json:"remotes"`
}

func (env requestEnvelope) destination() (Destination, error) {
	if len(env.Destination) == 0 || string(env.Destination) == "null" {
		return nil, nil
	}
	return DecodeDestination(env.Destination)
}

func (r *HLDRequest) UnmarshalJSON(data []byte) error {
	var env requestEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	dest, err := env.destination()
	if err != nil {
		return err
	}
	var stories []Story
	if len(env.Stories) > 0 {
		if stories, err = DecodeStories(env.Stories); err != nil {
			return err
		}
	}
	*r = HLDRequest{Context: env.Context, Destination: dest, Stories: stories, Remotes: env.Remotes}
	return nil
}

func (r *ReverseEngineeringRequest) UnmarshalJSON(data []byte) error {
	var env requestEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	dest, err := env.destination()
	if err != nil {
		return err
	}
	var codes []Code
	if len(env.Codes) > 0 {
		if codes, err = DecodeCodes(env.Codes); err != nil {
			return err
		}
	}
	*r = ReverseEngineeringRequest{Context: env.Context, Destination: dest, Codes: codes, Remotes: env.Remotes}
	return nil
}

type StatusRequest struct {
	ID string `json:"id"`
}

type RetrieveRequest struct {
	ID       string `json:"id"`
	FileName string `json:"fileName"`
}

// ListFilter is a conjunction of optional criteria. A nil member is not
// sent; an empty, non-nil member is sent as an empty list.
// FromTs is inclusive, ToTs is interpreted by the service.
type ListFilter struct {
	IDs      []string  `json:"ids,omitempty"`
	Statuses []Status  `json:"statuses,omitempty"`
	Projects []string  `json:"projects,omitempty"`
	Products []Product `json:"products,omitempty"`
	FromTs   *int64    `json:"fromTs,omitempty"`
	ToTs     *int64    `json:"toTs,omitempty"`
}

func (f ListFilter) MarshalJSON() ([]byte, error) {
	w := struct {
		IDs      *[]string  `json:"ids,omitempty"`
		Statuses *[]Status  `json:"statuses,omitempty"`
		Projects *[]string  `json:"projects,omitempty"`
		Products *[]Product `json:"products,omitempty"`
		FromTs   *int64     `json:"fromTs,omitempty"`
		ToTs     *int64     `json:"toTs,omitempty"`
	}{FromTs: f.FromTs, ToTs: f.ToTs}
	if f.IDs != nil {
		w.IDs = &f.IDs
	}
	if f.Statuses != nil {
		w.Statuses = &f.Statuses
	}
	if f.Projects != nil {
		w.Projects = &f.Projects
	}
	if f.Products != nil {
		w.Products = &f.Products
	}
	return json.Marshal(w)
}
