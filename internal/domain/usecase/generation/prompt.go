package generation

import (
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/image2code-backend/internal/domain/entity"
	"github.com/amirhossein-jamali/image2code-backend/internal/domain/port/gateway"
)

const projectShape = `Respond with a single JSON object and nothing else, shaped exactly as:
{
  "projectTitle": "short title",
  "explanation": "one paragraph describing the implementation",
  "files": {
    "/path/to/file": { "code": "file contents" }
  }
}`

const reactTailwindInstructions = `You are an expert React and Tailwind CSS developer.
Convert the supplied design into a React project that reproduces it faithfully.
- Use functional components and Tailwind utility classes only.
- The entry component lives in "/App.js" and is the default export.
- Split reusable sections into components under "/components".
- Use lucide-react for icons and https://picsum.photos for placeholder images.
- Make the layout responsive.`

const htmlCSSInstructions = `You are an expert front-end developer.
Convert the supplied design into a static website that reproduces it faithfully.
- Put markup in "/index.html", styles in "/styles.css" and behaviour in "/script.js".
- Use semantic HTML5 and modern CSS (flexbox, grid, custom properties).
- Use https://picsum.photos for placeholder images.
- Make the layout responsive.`

const improveInstructions = `You are a senior front-end engineer.
Improve the following code: fix bugs, tighten the layout, improve accessibility and
responsiveness, and keep the existing structure and behaviour.
Return only the improved code with no commentary.`

func instructionsFor(lang entity.Language) string {
	if lang == entity.LanguageHTMLCSS {
		return htmlCSSInstructions
	}
	return reactTailwindInstructions
}

// BuildGenerationPrompt assembles the chat messages for a design-to-code request
func BuildGenerationPrompt(req *entity.GenerationRequest) []gateway.ChatMessage {
	var b strings.Builder
	b.WriteString(instructionsFor(req.Language))
	b.WriteString("\n\n")
	b.WriteString(projectShape)
	if req.Description != "" {
		fmt.Fprintf(&b, "\n\nUser description:\n%s", req.Description)
	}
	if len(req.Options) > 0 {
		fmt.Fprintf(&b, "\n\nRequested options: %s", strings.Join(req.Options, ", "))
	}

	parts := []gateway.ContentPart{{Type: "text", Text: b.String()}}
	if req.ImageURL != "" {
		parts = append(parts, gateway.ContentPart{Type: "image_url", ImageURL: req.ImageURL})
	}
	return []gateway.ChatMessage{{Role: "user", Parts: parts}}
}

// BuildImprovePrompt assembles the chat messages for an improve request
func BuildImprovePrompt(req *entity.ImproveRequest) []gateway.ChatMessage {
	return []gateway.ChatMessage{
		{Role: "system", Parts: []gateway.ContentPart{{Type: "text", Text: improveInstructions}}},
		{Role: "user", Parts: []gateway.ContentPart{{Type: "text", Text: req.Code}}},
	}
}
