package entity

import (
	"fmt"

	errs "github.com/amirhossein-jamali/image2code-backend/internal/domain/error"
)

// ProjectFile is a single file of a generated project
type ProjectFile struct {
	Code string `json:"code"`
}

// GeneratedProject is the structured output of the model
type GeneratedProject struct {
	ProjectTitle string                 `json:"projectTitle"`
	Explanation  string                 `json:"explanation"`
	Files        map[string]ProjectFile `json:"files"`
}

// ValidateProjectShape checks a decoded JSON value has the project structure.
// raw is the original model output, echoed in the error snippet.
func ValidateProjectShape(v any, raw string) (*GeneratedProject, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, errs.NewGenerationFormatError("top-level value is not an object", raw)
	}

	title, ok := obj["projectTitle"].(string)
	if !ok {
		return nil, errs.NewGenerationFormatError("projectTitle must be a string", raw)
	}
	explanation, ok := obj["explanation"].(string)
	if !ok {
		return nil, errs.NewGenerationFormatError("explanation must be a string", raw)
	}
	rawFiles, ok := obj["files"].(map[string]any)
	if !ok {
		return nil, errs.NewGenerationFormatError("files must be an object", raw)
	}

	files := make(map[string]ProjectFile, len(rawFiles))
	for path, f := range rawFiles {
		entry, ok := f.(map[string]any)
		if !ok {
			return nil, errs.NewGenerationFormatError(fmt.Sprintf("file %q must be an object", path), raw)
		}
		code, ok := entry["code"].(string)
		if !ok {
			return nil, errs.NewGenerationFormatError(fmt.Sprintf("file %q must have string code", path), raw)
		}
		files[path] = ProjectFile{Code: code}
	}

	return &GeneratedProject{
		ProjectTitle: title,
		Explanation:  explanation,
		Files:        files,
	}, nil
}

// FileCount returns the number of files in the project
func (p *GeneratedProject) FileCount() int {
	if p == nil {
		return 0
	}
	return len(p.Files)
}
