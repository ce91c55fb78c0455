package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/image2code-backend/internal/domain/error"
)

func TestExtractAndParseJSON(t *testing.T) {
	t.Run("fenced json block", func(t *testing.T) {
		raw := "Here you go:\n```json\n{\"projectTitle\":\"x\",\"n\":1}\n```\nEnjoy"
		v, err := ExtractAndParseJSON(raw)

		require.NoError(t, err)
		obj, ok := v.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "x", obj["projectTitle"])
	})

	t.Run("unlabelled fence", func(t *testing.T) {
		v, err := ExtractAndParseJSON("```\n{\"a\":true}\n```")

		require.NoError(t, err)
		assert.Equal(t, map[string]any{"a": true}, v)
	})

	t.Run("raw json object", func(t *testing.T) {
		v, err := ExtractAndParseJSON(`  {"a": "b"}  `)

		require.NoError(t, err)
		assert.Equal(t, map[string]any{"a": "b"}, v)
	})

	t.Run("raw json array", func(t *testing.T) {
		v, err := ExtractAndParseJSON(`[1, 2, 3]`)

		require.NoError(t, err)
		assert.Equal(t, []any{float64(1), float64(2), float64(3)}, v)
	})

	t.Run("object embedded in prose", func(t *testing.T) {
		v, err := ExtractAndParseJSON(`Sure! {"a": {"b": 1}} Let me know.`)

		require.NoError(t, err)
		assert.Equal(t, map[string]any{"a": map[string]any{"b": float64(1)}}, v)
	})

	t.Run("prose without json is rejected", func(t *testing.T) {
		_, err := ExtractAndParseJSON("I cannot help with that request.")

		assert.ErrorIs(t, err, errs.ErrGenerationFormat)
	})

	t.Run("malformed fenced json is rejected", func(t *testing.T) {
		_, err := ExtractAndParseJSON("```json\n{\"a\": \n```")

		assert.ErrorIs(t, err, errs.ErrGenerationFormat)
	})

	t.Run("backticks inside a fenced string value", func(t *testing.T) {
		raw := "```json\n{\"explanation\":\"Run ```npm install``` first\"}\n```"
		v, err := ExtractAndParseJSON(raw)

		require.NoError(t, err)
		assert.Equal(t, map[string]any{"explanation": "Run ```npm install``` first"}, v)
	})

	t.Run("broken fence falls back to the outermost span", func(t *testing.T) {
		raw := "```json\nnot json\n``` but here it is: {\"a\": 1}"
		v, err := ExtractAndParseJSON(raw)

		require.NoError(t, err)
		assert.Equal(t, map[string]any{"a": float64(1)}, v)
	})

	t.Run("empty input is rejected", func(t *testing.T) {
		_, err := ExtractAndParseJSON("   ")

		assert.ErrorIs(t, err, errs.ErrGenerationFormat)
	})
}

func TestParseProject_FencedCodeInsideExplanation(t *testing.T) {
	raw := "Here you go:\n```json\n" +
		`{"projectTitle":"App","explanation":"Run ` + "```npm install```" + ` first","files":{"/App.js":{"code":"x"}}}` +
		"\n```"
	project, err := ParseProject(raw)

	require.NoError(t, err)
	assert.Equal(t, "App", project.ProjectTitle)
	assert.Equal(t, "Run ```npm install``` first", project.Explanation)
	assert.Equal(t, "x", project.Files["/App.js"].Code)
}

func TestParseProject(t *testing.T) {
	t.Run("valid project", func(t *testing.T) {
		raw := "```json\n" + `{"projectTitle":"Landing","explanation":"A page","files":{"/App.js":{"code":"export default () => null"}}}` + "\n```"
		project, err := ParseProject(raw)

		require.NoError(t, err)
		assert.Equal(t, "Landing", project.ProjectTitle)
		assert.Equal(t, "A page", project.Explanation)
		assert.Equal(t, "export default () => null", project.Files["/App.js"].Code)
	})

	testCases := []struct {
		name string
		raw  string
	}{
		{"array instead of object", `[{"projectTitle":"x"}]`},
		{"missing title", `{"explanation":"e","files":{}}`},
		{"non-string explanation", `{"projectTitle":"t","explanation":3,"files":{}}`},
		{"files not an object", `{"projectTitle":"t","explanation":"e","files":[]}`},
		{"file without code", `{"projectTitle":"t","explanation":"e","files":{"/a.js":{}}}`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseProject(tc.raw)

			var formatErr *errs.GenerationFormatError
			require.ErrorAs(t, err, &formatErr)
			assert.Equal(t, tc.raw, formatErr.Snippet)
		})
	}
}

func TestStripCodeFence(t *testing.T) {
	assert.Equal(t, "<div></div>", StripCodeFence("```html\n<div></div>\n```"))
	assert.Equal(t, "plain code", StripCodeFence("  plain code \n"))
	assert.Equal(t, "echo ```x```", StripCodeFence("```sh\necho ```x```\n```"))
}
