package jamai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shenikar/emergency_response_system/internal/models"
)

const completionsPath = "/chat/completions"

// Параметры сэмплирования для каждого типа запроса
const (
	analysisTemperature = 0.7
	analysisMaxTokens   = 1000

	resourcesTemperature = 0.5
	resourcesMaxTokens   = 200

	dispatchTemperature = 0.6
	dispatchMaxTokens   = 500
)

// Message - одно сообщение чата в запросе к JamAI
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest - тело запроса к chat-completions эндпоинту JamAI
type ChatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

// ChatResponse - тело ответа chat-completions
type ChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Client - клиент JamAI API
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewClient создает новый клиент JamAI
func NewClient(baseURL, apiKey, model string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// completion выполняет один запрос к chat-completions и возвращает текст первого ответа.
// Клиент не делает повторных попыток и не подставляет фолбэк - решение за вызывающим.
func (c *Client) completion(ctx context.Context, messages []Message, temperature float64, maxTokens int) (string, error) {
	reqBody := ChatRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+completionsPath, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: unexpected status code %d", ErrUnavailable, resp.StatusCode)
	}

	var chatResp ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", &MalformedResponseError{Reason: "invalid response body", Err: err}
	}

	if len(chatResp.Choices) == 0 {
		return "", &MalformedResponseError{Reason: "no choices in response"}
	}
	return chatResp.Choices[0].Message.Content, nil
}

// AnalyzeEmergency запрашивает у JamAI структурированный анализ инцидента
func (c *Client) AnalyzeEmergency(ctx context.Context, report *models.EmergencyReport) (models.AnalysisResult, error) {
	details, err := json.Marshal(report.AdditionalDetails)
	if err != nil {
		return models.AnalysisResult{}, fmt.Errorf("failed to marshal additional details: %w", err)
	}

	contact := report.ContactInfo
	if contact == "" {
		contact = "N/A"
	}

	prompt := fmt.Sprintf(`Analyze this emergency incident and provide response recommendations:

Incident Type: %s
Location: %s
Severity: %s
Description: %s
Contact: %s
Additional Details: %s

Provide a JSON response with:
1. risk_assessment (0-100 score)
2. immediate_actions (list of recommended actions)
3. required_resources (list of needed resources)
4. estimated_response_time (in minutes)
5. escalation_needed (boolean)
6. confidence_score (0-100)`,
		report.IncidentType, report.Location, report.Severity, report.Description, contact, details)

	messages := []Message{
		{
			Role:    "system",
			Content: "You are an expert emergency response coordinator. Analyze emergency incidents and provide immediate, actionable recommendations. Always respond with valid JSON.",
		},
		{
			Role:    "user",
			Content: prompt,
		},
	}

	content, err := c.completion(ctx, messages, analysisTemperature, analysisMaxTokens)
	if err != nil {
		return models.AnalysisResult{}, err
	}

	var analysis models.AnalysisResult
	if err := json.Unmarshal([]byte(content), &analysis); err != nil {
		return models.AnalysisResult{}, &MalformedResponseError{Reason: "analysis content is not valid JSON", Err: err}
	}
	return analysis, nil
}

// RecommendResources запрашивает список необходимых ресурсов для инцидента
func (c *Client) RecommendResources(ctx context.Context, incidentType string, severity models.Severity, location string) ([]string, error) {
	prompt := fmt.Sprintf(`Based on a %s severity %s at %s, list the necessary emergency resources needed. Respond with a JSON array of resource names.`,
		severity, incidentType, location)

	content, err := c.completion(ctx, []Message{{Role: "user", Content: prompt}}, resourcesTemperature, resourcesMaxTokens)
	if err != nil {
		return nil, err
	}

	var resources []string
	if err := json.Unmarshal([]byte(content), &resources); err != nil {
		return nil, &MalformedResponseError{Reason: "resource content is not a JSON array", Err: err}
	}
	return resources, nil
}

// GenerateDispatchPlan запрашивает оптимальный план диспетчеризации для инцидента
func (c *Client) GenerateDispatchPlan(ctx context.Context, analysis models.AnalysisResult, report *models.EmergencyReport) (models.DispatchPlan, error) {
	analysisJSON, err := json.Marshal(analysis)
	if err != nil {
		return models.DispatchPlan{}, fmt.Errorf("failed to marshal analysis: %w", err)
	}

	prompt := fmt.Sprintf(`Create a dispatch plan for this emergency:

Analysis: %s
Location: %s
Incident: %s

Provide JSON with:
1. primary_dispatch (unit and ETA)
2. backup_dispatch (unit and ETA)
3. coordination_notes (list)
4. public_safety_alerts (list)
5. traffic_management (list)`,
		analysisJSON, report.Location, report.IncidentType)

	content, err := c.completion(ctx, []Message{{Role: "user", Content: prompt}}, dispatchTemperature, dispatchMaxTokens)
	if err != nil {
		return models.DispatchPlan{}, err
	}

	var plan models.DispatchPlan
	if err := json.Unmarshal([]byte(content), &plan); err != nil {
		return models.DispatchPlan{}, &MalformedResponseError{Reason: "dispatch plan content is not valid JSON", Err: err}
	}
	return plan, nil
}
