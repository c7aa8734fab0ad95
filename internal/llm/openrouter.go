package llm

import "net/http"

const defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

// Static client-identification headers sent with every OpenRouter request.
const (
	openRouterReferer = "https://github.com/skillpath/skillpath"
	openRouterTitle   = "Skillpath"
)

// OpenRouterProvider wraps OpenAIProvider with OpenRouter-specific defaults.
// OpenRouter exposes an OpenAI-compatible API, so the underlying SDK is reused.
type OpenRouterProvider struct {
	*OpenAIProvider
}

// NewOpenRouterProvider creates a provider targeting the OpenRouter API.
// A missing API key is not rejected here; the remote call fails instead.
func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenRouterProvider, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenRouterBaseURL
	}

	oaiCfg := OpenAIConfig{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		BaseURL: baseURL,
	}

	httpClient := &http.Client{
		Transport: &identifyingTransport{base: http.DefaultTransport},
	}

	inner, err := newOpenAIProviderRaw(oaiCfg, httpClient)
	if err != nil {
		return nil, err
	}

	return &OpenRouterProvider{OpenAIProvider: inner}, nil
}

// identifyingTransport adds OpenRouter's app attribution headers.
type identifyingTransport struct {
	base http.RoundTripper
}

func (t *identifyingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("HTTP-Referer", openRouterReferer)
	req.Header.Set("X-Title", openRouterTitle)
	return t.base.RoundTrip(req)
}
