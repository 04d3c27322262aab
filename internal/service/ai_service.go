package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"hr_training_backend/internal/config"
	"io"
	"net/http"
	"time"
)

// AIService gọi endpoint chat completions (OpenAI-compatible) khi câu hỏi
// nằm ngoài phạm vi nghiệp vụ của trợ lý.
type AIService struct {
	config config.AIConfig
	client *http.Client
}

func NewAIService(cfg config.AIConfig) *AIService {
	return &AIService{
		config: cfg,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *AIService) Enabled() bool {
	return s.config.BaseURL != "" && s.config.APIKey != ""
}

type AIChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionRequest struct {
	Model    string          `json:"model"`
	Messages []AIChatMessage `json:"messages"`
}

type ChatCompletionResponse struct {
	Choices []struct {
		Message AIChatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

const assistantSystemPrompt = "Bạn là Trợ lý Phúc, trợ lý ảo của phòng nhân sự. " +
	"Hãy trả lời ngắn gọn, thân thiện, bằng tiếng Việt. " +
	"Không bịa số liệu về thực tập sinh hay kế hoạch tuyển dụng; " +
	"nếu người dùng hỏi về tiến độ đào tạo, hướng dẫn họ dùng cú pháp \"chậm <tên kế hoạch>\"."

func (s *AIService) Chat(prompt string, history []AIChatMessage) (string, error) {
	messages := []AIChatMessage{{Role: "system", Content: assistantSystemPrompt}}
	messages = append(messages, history...)
	messages = append(messages, AIChatMessage{Role: "user", Content: prompt})

	reqBody := ChatCompletionRequest{
		Model:    s.config.Model,
		Messages: messages,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest("POST", s.config.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("AI API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result ChatCompletionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", err
	}

	if len(result.Choices) > 0 {
		return result.Choices[0].Message.Content, nil
	}

	return "", fmt.Errorf("AI returned no choices")
}
