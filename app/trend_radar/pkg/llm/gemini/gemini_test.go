package gemini

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/llm"
)

func TestToGenAISchema(t *testing.T) {
	s := llm.Object(map[string]*llm.Schema{
		"sustainability": llm.Enum("FLASH", "LONG"),
		"risks":          llm.Strings(),
		"score":          llm.Integer(),
	})

	got := toGenAISchema(s)
	assert.Equal(t, genai.TypeObject, got.Type)
	assert.Equal(t, []string{"risks", "score", "sustainability"}, got.Required)
	assert.Equal(t, genai.TypeString, got.Properties["sustainability"].Type)
	assert.Equal(t, []string{"FLASH", "LONG"}, got.Properties["sustainability"].Enum)
	assert.Equal(t, genai.TypeArray, got.Properties["risks"].Type)
	assert.Equal(t, genai.TypeString, got.Properties["risks"].Items.Type)
	assert.Equal(t, genai.TypeInteger, got.Properties["score"].Type)
	assert.Nil(t, toGenAISchema(nil))
}

func TestBuildConfig(t *testing.T) {
	cfg := buildConfig(&llm.Request{Prompt: "p", Schema: llm.Object(map[string]*llm.Schema{"a": llm.String()})})
	assert.Equal(t, "application/json", cfg.ResponseMIMEType)
	require.NotNil(t, cfg.ResponseSchema)
	assert.Empty(t, cfg.Tools)

	cfg = buildConfig(&llm.Request{Prompt: "p", JSONOnly: true, WebSearch: true, System: "sys"})
	require.Len(t, cfg.Tools, 1)
	assert.NotNil(t, cfg.Tools[0].GoogleSearch)
	assert.Empty(t, cfg.ResponseMIMEType)
	require.NotNil(t, cfg.SystemInstruction)
	assert.Equal(t, "sys", cfg.SystemInstruction.Parts[0].Text)
}

func TestNewRequiresKey(t *testing.T) {
	_, err := New(context.Background(), Config{})
	assert.ErrorIs(t, err, llm.ErrNoCredential)
}

func TestGenerateRoundTrip(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "models/test-model:generateContent") {
			http.NotFound(w, r)
			return
		}
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"candidates":[{"content":{"role":"model","parts":[{"text":"{\"ok\":true}"}]}}]}`)
	}))
	defer srv.Close()

	c, err := New(context.Background(), Config{APIKey: "k", BaseURL: srv.URL, Model: "test-model"})
	require.NoError(t, err)

	out, err := c.Generate(context.Background(), &llm.Request{Prompt: "hello", JSONOnly: true})
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, out)
	assert.Contains(t, body, "contents")
}
