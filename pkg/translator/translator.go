package translator

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"bozorcha-admin/pkg/logger"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// DeepSeek API configuration
const (
	deepSeekBaseURL = "https://api.deepseek.com"
	deepSeekModel   = "deepseek-chat" // DeepSeek-V3
)

// getDeepSeekClient creates a new DeepSeek client using OpenAI-compatible SDK
func getDeepSeekClient() *openai.Client {
	apiKey := os.Getenv("OPENAI_API_KEY") // DeepSeek key stored here
	if apiKey == "" {
		logger.Warn("OPENAI_API_KEY (DeepSeek) environment variable is not set")
		return nil
	}

	// Configure client to use DeepSeek API endpoint
	config := openai.DefaultConfig(apiKey)
	config.BaseURL = deepSeekBaseURL

	return openai.NewClientWithConfig(config)
}

// generateTranslation calls DeepSeek API to generate translation
func generateTranslation(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	client := getDeepSeekClient()
	if client == nil {
		return "", fmt.Errorf("OPENAI_API_KEY (DeepSeek) environment variable is not set")
	}

	resp, err := client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: deepSeekModel, // DeepSeek-V3
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: systemPrompt,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: userPrompt,
				},
			},
			Temperature: 0.3, // Lower temperature for more consistent translations
			MaxTokens:   1000,
		},
	)

	if err != nil {
		return "", fmt.Errorf("DeepSeek API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from DeepSeek")
	}

	responseText := resp.Choices[0].Message.Content
	logger.Info("DeepSeek response received",
		zap.String("model", resp.Model),
		zap.Int("tokens", resp.Usage.TotalTokens))

	return responseText, nil
}

// TranslateProduct - Translate product name and description from Uzbek (Latin)
// to Uzbek Cyrillic, Russian and English.
// Returns maps with keys: "uz", "cyr", "ru", "en". On any failure the original
// Uzbek text is returned for every locale and err stays nil - the assist must
// never block the form.
func TranslateProduct(ctx context.Context, nameUz, descUz string) (nameMap, descMap map[string]string, err error) {
	systemPrompt := `You are a professional translator for an online marketplace.
Output ONLY valid JSON without any markdown formatting or code blocks.
Translate accurately while preserving the original meaning and tone.
For the "cyr" key transliterate the Uzbek text into Uzbek Cyrillic script.`

	userPrompt := fmt.Sprintf(`Translate this product Name and Description from Uzbek (Latin script) to Uzbek Cyrillic, Russian and English.
Return ONLY a JSON object in this EXACT format (no markdown, no code blocks):
{
  "name": {
    "uz": "%s",
    "cyr": "...",
    "ru": "...",
    "en": "..."
  },
  "description": {
    "uz": "%s",
    "cyr": "...",
    "ru": "...",
    "en": "..."
  }
}

Product Name (Uzbek): %s
Product Description (Uzbek): %s`, nameUz, descUz, nameUz, descUz)

	responseText, err := generateTranslation(ctx, systemPrompt, userPrompt)
	if err != nil {
		logger.Warn("TranslateProduct failed", zap.Error(err))
		// Fallback: return original Uzbek text for all languages
		return createFallback(nameUz), createFallback(descUz), nil
	}

	// Parse JSON response
	var result struct {
		Name        map[string]string `json:"name"`
		Description map[string]string `json:"description"`
	}

	// Clean response text (remove markdown code blocks if present)
	responseText = cleanJSONResponse(responseText)

	if err := json.Unmarshal([]byte(responseText), &result); err != nil {
		logger.Warn("Failed to parse DeepSeek JSON response",
			zap.Error(err), zap.String("response", responseText))
		// Fallback: return original Uzbek text for all languages
		return createFallback(nameUz), createFallback(descUz), nil
	}

	if result.Name == nil {
		result.Name = make(map[string]string)
	}
	if result.Description == nil {
		result.Description = make(map[string]string)
	}

	// Set Uzbek values (preserve original)
	result.Name["uz"] = nameUz
	if descUz != "" {
		result.Description["uz"] = descUz
	}

	// Ensure every locale exists (fallback to uz if missing)
	fillMissing(result.Name, nameUz)
	if descUz != "" {
		fillMissing(result.Description, descUz)
	}

	logger.Info("Product translated",
		zap.String("uz", nameUz),
		zap.String("ru", result.Name["ru"]),
		zap.String("en", result.Name["en"]))

	return result.Name, result.Description, nil
}

// TranslateCategory - Translate a category name from Uzbek (Latin) to Uzbek
// Cyrillic, Russian and English. Same contract as TranslateProduct.
func TranslateCategory(ctx context.Context, nameUz string) (map[string]string, error) {
	systemPrompt := `You are a professional translator for an online marketplace.
Output ONLY valid JSON without any markdown formatting or code blocks.
For the "cyr" key transliterate the Uzbek text into Uzbek Cyrillic script.`

	userPrompt := fmt.Sprintf(`Translate this category name from Uzbek (Latin script) to Uzbek Cyrillic, Russian and English.
Return ONLY a JSON object in this EXACT format (no markdown, no code blocks):
{
  "uz": "%s",
  "cyr": "...",
  "ru": "...",
  "en": "..."
}

Category Name (Uzbek): %s`, nameUz, nameUz)

	responseText, err := generateTranslation(ctx, systemPrompt, userPrompt)
	if err != nil {
		logger.Warn("TranslateCategory failed", zap.Error(err))
		return createFallback(nameUz), nil
	}

	var result map[string]string

	responseText = cleanJSONResponse(responseText)

	if err := json.Unmarshal([]byte(responseText), &result); err != nil {
		logger.Warn("Failed to parse DeepSeek JSON response",
			zap.Error(err), zap.String("response", responseText))
		return createFallback(nameUz), nil
	}

	result["uz"] = nameUz
	fillMissing(result, nameUz)

	return result, nil
}

// createFallback - har bir til uchun asl matn
func createFallback(textUz string) map[string]string {
	if textUz == "" {
		return map[string]string{}
	}
	return map[string]string{
		"uz":  textUz,
		"cyr": textUz,
		"ru":  textUz,
		"en":  textUz,
	}
}

// fillMissing - tushib qolgan tillarni uz matn bilan to'ldirish
func fillMissing(m map[string]string, textUz string) {
	for _, locale := range []string{"cyr", "ru", "en"} {
		if m[locale] == "" {
			m[locale] = textUz
		}
	}
}

// cleanJSONResponse - Remove markdown code blocks and extra whitespace from JSON response
func cleanJSONResponse(text string) string {
	text = strings.TrimSpace(text)

	// Remove ```json at the start
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
	}

	// Remove ``` at the end
	if strings.HasSuffix(text, "```") {
		text = strings.TrimSuffix(text, "```")
	}

	return strings.TrimSpace(text)
}
