package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// defaultDiseaseModelURL points at a plant disease classification model
// hosted on the HuggingFace inference API
const defaultDiseaseModelURL = "https://api-inference.huggingface.co/models/linkanjarad/mobilenet_v2_1.0_224-plant-disease-identification"

// DiseaseClient infers a crop disease label from an uploaded image
type DiseaseClient interface {
	Classify(ctx context.Context, image []byte) (*DiseaseDiagnosis, error)
}

// HuggingFaceAdapter calls the HuggingFace image-classification inference API
type HuggingFaceAdapter struct {
	apiKey     string
	modelURL   string
	httpClient *http.Client
}

// NewHuggingFaceAdapter creates an adapter authenticated with apiKey.
// An empty modelURL selects the default plant disease model.
func NewHuggingFaceAdapter(apiKey, modelURL string, timeout time.Duration) *HuggingFaceAdapter {
	if modelURL == "" {
		modelURL = defaultDiseaseModelURL
	}
	return &HuggingFaceAdapter{
		apiKey:     apiKey,
		modelURL:   modelURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type hfPrediction struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Classify sends the raw image bytes to the inference API and returns
// the top label with its confidence
func (a *HuggingFaceAdapter) Classify(ctx context.Context, image []byte) (*DiseaseDiagnosis, error) {
	if len(image) == 0 {
		return nil, errors.New("image is empty")
	}

	req, err := http.NewRequestWithContext(ctx, "POST", a.modelURL, bytes.NewReader(image))
	if err != nil {
		return nil, fmt.Errorf("error creating inference request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+a.apiKey)
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making inference request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading inference response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("inference request failed with status code %d: %s", resp.StatusCode, string(body))
	}

	var predictions []hfPrediction
	if err := json.Unmarshal(body, &predictions); err != nil {
		return nil, fmt.Errorf("error unmarshaling inference response: %w", err)
	}

	if len(predictions) == 0 {
		return nil, errors.New("inference returned no predictions")
	}

	top := predictions[0]
	for _, p := range predictions[1:] {
		if p.Score > top.Score {
			top = p
		}
	}

	return &DiseaseDiagnosis{
		Label:      top.Label,
		Confidence: top.Score,
	}, nil
}
