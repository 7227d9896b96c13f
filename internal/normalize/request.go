// Package normalize maps typed requests onto the wire payloads the Weles AI
// service expects, and maps its list responses back onto a stable shape.
package normalize

import (
	"errors"
	"fmt"
	"strings"

	"weles-ai/internal/model"
)

var ErrInvalidRequest = errors.New("invalid request")

// GeneratePayload is the body of POST /plugins/weles-ai/generate. The project
// context is flattened into the top level.
type GeneratePayload struct {
	ProjectID   string            `json:"projectId"`
	ReleaseID   string            `json:"releaseId"`
	IncrementNo int               `json:"incrementNo"`
	Product     model.Product     `json:"product"`
	Destination model.Destination `json:"destination"`
	Docs        []model.Story     `json:"docs,omitempty"`
	Code        []model.Code      `json:"code,omitempty"`
	// nil omits the key so the service applies account defaults; a pointer to
	// an empty slice sends "remotes":[].
	Remotes *[]model.Remote `json:"remotes,omitempty"`
}

func HighLevelDesign(req model.HLDRequest) (GeneratePayload, error) {
	if err := checkCommon(req.Context, req.Destination); err != nil {
		return GeneratePayload{}, err
	}
	if len(req.Stories) == 0 {
		return GeneratePayload{}, fmt.Errorf("%w: at least one story is required", ErrInvalidRequest)
	}
	docs := make([]model.Story, 0, len(req.Stories))
	for i, item := range req.Stories {
		s, err := normalizeStory(item)
		if err != nil {
			return GeneratePayload{}, fmt.Errorf("%w: stories[%d]: %v", ErrInvalidRequest, i, err)
		}
		docs = append(docs, s)
	}
	p := basePayload(req.Context, model.ProductHLD, req.Destination, req.Remotes)
	p.Docs = docs
	return p, nil
}

func ReverseEngineering(req model.ReverseEngineeringRequest) (GeneratePayload, error) {
	if err := checkCommon(req.Context, req.Destination); err != nil {
		return GeneratePayload{}, err
	}
	if len(req.Codes) == 0 {
		return GeneratePayload{}, fmt.Errorf("%w: at least one code item is required", ErrInvalidRequest)
	}
	code := make([]model.Code, 0, len(req.Codes))
	for i, item := range req.Codes {
		c, err := normalizeCode(item)
		if err != nil {
			return GeneratePayload{}, fmt.Errorf("%w: codes[%d]: %v", ErrInvalidRequest, i, err)
		}
		code = append(code, c)
	}
	p := basePayload(req.Context, model.ProductReverseEng, req.Destination, req.Remotes)
	p.Code = code
	return p, nil
}

// StatusFilter is the list query used to look up a single work item.
func StatusFilter(id string) model.ListFilter {
	return model.ListFilter{IDs: []string{id}}
}

func checkCommon(ctx model.ProjectContext, dest model.Destination) error {
	if strings.TrimSpace(ctx.ProjectID) == "" {
		return fmt.Errorf("%w: context.projectId is required", ErrInvalidRequest)
	}
	if strings.TrimSpace(ctx.ReleaseID) == "" {
		return fmt.Errorf("%w: context.releaseId is required", ErrInvalidRequest)
	}
	if dest == nil {
		return fmt.Errorf("%w: destination is required", ErrInvalidRequest)
	}
	return nil
}

func basePayload(ctx model.ProjectContext, product model.Product, dest model.Destination, remotes []model.Remote) GeneratePayload {
	p := GeneratePayload{
		ProjectID:   ctx.ProjectID,
		ReleaseID:   ctx.ReleaseID,
		IncrementNo: ctx.IncrementNo,
		Product:     product,
		Destination: dest,
	}
	if remotes != nil {
		cp := append([]model.Remote{}, remotes...)
		p.Remotes = &cp
	}
	return p
}

// normalizeStory returns a copy of the story; file stories always travel as markdown.
func normalizeStory(item model.Story) (model.Story, error) {
	switch s := item.(type) {
	case model.FileStory:
		s.MediaType = model.MediaTypeMarkdown
		return s, nil
	case *model.FileStory:
		if s == nil {
			return nil, errors.New("nil story")
		}
		return normalizeStory(*s)
	case model.JiraStory:
		return s, nil
	case *model.JiraStory:
		if s == nil {
			return nil, errors.New("nil story")
		}
		return *s, nil
	case nil:
		return nil, errors.New("nil story")
	default:
		return nil, fmt.Errorf("unsupported story type %T", item)
	}
}

// normalizeCode returns a copy of the code item; archives always travel as zip.
func normalizeCode(item model.Code) (model.Code, error) {
	switch c := item.(type) {
	case model.ArchiveCode:
		c.MediaType = model.MediaTypeZip
		return c, nil
	case *model.ArchiveCode:
		if c == nil {
			return nil, errors.New("nil code item")
		}
		return normalizeCode(*c)
	case model.GitCode:
		return c, nil
	case *model.GitCode:
		if c == nil {
			return nil, errors.New("nil code item")
		}
		return *c, nil
	case nil:
		return nil, errors.New("nil code item")
	default:
		return nil, fmt.Errorf("unsupported code type %T", item)
	}
}
