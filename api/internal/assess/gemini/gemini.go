// Package gemini implements the model-backed assessment engine on top of
// Google's Generative AI API.
package gemini

import (
	"context"
	"strings"

	"food-checker/api/internal/assess"
	"food-checker/api/internal/assess/interpret"
	"food-checker/api/internal/util"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// prompt asks the model to enumerate the foods on the image and flag the
// ones risky during pregnancy, answering strictly in the foods JSON shape.
const prompt = `妊婦がとる食事の画像を元に、そこに妊婦にとってリスクのある食材が含まれているかを判定する手助けをしてください。この画像に含まれる食品名をリストアップし、それぞれが妊婦にとってリスクがあるかどうかを判定してください。必ず次のJSON形式で返してください。

{
  "foods": [
    {"name": "食品名", "risk": true/false, "details": "リスクの説明（なければ空文字）"},
    ...
  ]
}

リスクがある食品がなければ、'risk': false だけの配列で返してください。説明文や表は不要です。`

type Engine struct {
	APIKey string
	Model  string
}

func New(apiKey, model string) *Engine {
	return &Engine{
		APIKey: strings.TrimSpace(apiKey),
		Model:  strings.TrimSpace(model),
	}
}

func (e *Engine) Name() string { return "gemini" }

// Assess sends the decoded image with the fixed instruction prompt in one
// blocking call and hands the textual reply to the interpreter. Credentials,
// decoding and transport problems come back as *assess.Failure; there is no
// retry and no timeout beyond what ctx carries.
func (e *Engine) Assess(ctx context.Context, imageDataURI string) (assess.Result, error) {
	if e.APIKey == "" {
		return assess.Result{}, &assess.Failure{
			Kind:    assess.FailureMissingCredentials,
			Message: "missing credentials: GEMINI_API_KEY is not set",
		}
	}

	imgBytes, _, err := util.DecodeBase64MaybeDataURL(imageDataURI)
	if err != nil {
		return assess.Result{}, &assess.Failure{
			Kind:    assess.FailureDecode,
			Message: "bad base64 image: " + err.Error(),
		}
	}

	cl, err := genai.NewClient(ctx, option.WithAPIKey(e.APIKey))
	if err != nil {
		return assess.Result{}, &assess.Failure{
			Kind:    assess.FailureTransport,
			Message: err.Error(),
		}
	}
	defer cl.Close()

	m := cl.GenerativeModel(e.Model)
	m.GenerationConfig = genai.GenerationConfig{
		Temperature: ptrFloat32(0),
	}

	// The upstream accepts the fixed jpeg declaration for all image subtypes.
	parts := []genai.Part{
		genai.Text(prompt),
		&genai.Blob{MIMEType: "image/jpeg", Data: imgBytes},
	}

	resp, err := m.GenerateContent(ctx, parts...)
	if err != nil {
		return assess.Result{}, &assess.Failure{
			Kind:    assess.FailureTransport,
			Message: err.Error(),
		}
	}
	txt := firstText(resp)
	if txt == "" {
		return assess.Result{}, &assess.Failure{
			Kind:    assess.FailureTransport,
			Message: "empty response from model",
		}
	}

	return interpret.Interpret(util.StripCodeFences(txt)), nil
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	for _, c := range resp.Candidates {
		if c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				return string(t)
			}
		}
	}
	return ""
}

func ptrFloat32(v float32) *float32 { return &v }
