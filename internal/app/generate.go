package app

import (
	"context"
	"encoding/json"
	"fmt"

	"weles-ai/internal/input"
	"weles-ai/internal/model"
	"weles-ai/internal/output"
)

type HLDOptions struct {
	Context     string
	Destination string
	Stories     string
	Remotes     string
	// StoryFiles are markdown files or directories added as file stories.
	StoryFiles []string
}

type ReverseOptions struct {
	Context     string
	Destination string
	Codes       string
	Remotes     string
	// CodePaths are .zip files or directories added as archive codes.
	CodePaths []string
}

func RunHLD(ctx context.Context, g GlobalOptions, opts HLDOptions) error {
	req, err := buildHLDRequest(opts)
	if err != nil {
		return err
	}
	s, err := openSession(g)
	if err != nil {
		return err
	}
	defer s.close()

	s.log.Event("submit", map[string]any{"product": string(model.ProductHLD), "stories": len(req.Stories)})
	res, err := s.api.HighLevelDesign(ctx, req)
	if err != nil {
		return err
	}
	return output.PrintJSON(s.out, res)
}

func RunReverse(ctx context.Context, g GlobalOptions, opts ReverseOptions) error {
	req, err := buildReverseRequest(opts)
	if err != nil {
		return err
	}
	s, err := openSession(g)
	if err != nil {
		return err
	}
	defer s.close()

	s.log.Event("submit", map[string]any{"product": string(model.ProductReverseEng), "codes": len(req.Codes)})
	res, err := s.api.ReverseEngineering(ctx, req)
	if err != nil {
		return err
	}
	return output.PrintJSON(s.out, res)
}

func buildHLDRequest(opts HLDOptions) (model.HLDRequest, error) {
	pc, dest, remotes, err := loadCommon(opts.Context, opts.Destination, opts.Remotes)
	if err != nil {
		return model.HLDRequest{}, err
	}
	var raw json.RawMessage
	if err := input.LoadJSON(opts.Stories, "stories", len(opts.StoryFiles) == 0, &raw); err != nil {
		return model.HLDRequest{}, err
	}
	var stories []model.Story
	if len(raw) > 0 {
		if stories, err = model.DecodeStories(raw); err != nil {
			return model.HLDRequest{}, fmt.Errorf("--stories: %w", err)
		}
	}
	files, err := input.DiscoverStories(opts.StoryFiles)
	if err != nil {
		return model.HLDRequest{}, fmt.Errorf("--story-file: %w", err)
	}
	return model.HLDRequest{
		Context:     pc,
		Destination: dest,
		Stories:     append(stories, files...),
		Remotes:     remotes,
	}, nil
}

func buildReverseRequest(opts ReverseOptions) (model.ReverseEngineeringRequest, error) {
	pc, dest, remotes, err := loadCommon(opts.Context, opts.Destination, opts.Remotes)
	if err != nil {
		return model.ReverseEngineeringRequest{}, err
	}
	var raw json.RawMessage
	if err := input.LoadJSON(opts.Codes, "codes", len(opts.CodePaths) == 0, &raw); err != nil {
		return model.ReverseEngineeringRequest{}, err
	}
	var codes []model.Code
	if len(raw) > 0 {
		if codes, err = model.DecodeCodes(raw); err != nil {
			return model.ReverseEngineeringRequest{}, fmt.Errorf("--codes: %w", err)
		}
	}
	archives, err := input.ArchiveCodes(opts.CodePaths)
	if err != nil {
		return model.ReverseEngineeringRequest{}, fmt.Errorf("--code-path: %w", err)
	}
	return model.ReverseEngineeringRequest{
		Context:     pc,
		Destination: dest,
		Codes:       append(codes, archives...),
		Remotes:     remotes,
	}, nil
}

func loadCommon(rawCtx, rawDest, rawRemotes string) (model.ProjectContext, model.Destination, []model.Remote, error) {
	var pc model.ProjectContext
	if err := input.LoadJSON(rawCtx, "context", true, &pc); err != nil {
		return pc, nil, nil, err
	}
	b, err := input.ReadJSONArg(rawDest, "destination")
	if err != nil {
		return pc, nil, nil, err
	}
	dest, err := model.DecodeDestination(b)
	if err != nil {
		return pc, nil, nil, fmt.Errorf("--destination: %w", err)
	}
	var remotes []model.Remote
	if err := input.LoadJSON(rawRemotes, "remotes", false, &remotes); err != nil {
		return pc, nil, nil, err
	}
	return pc, dest, remotes, nil
}
