package assistantControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

const systemInstruction = `You are a helpful and friendly cleaning expert assistant for SofaSteam, a Romanian home cleaning startup.
Your goal is to help users with cleaning advice, stain removal tips, and product recommendations.
You are helpful, polite, and concise.
If the user asks in Romanian, reply in Romanian. If in English, reply in English.
ALWAYS use the 'googleSearch' tool to find the most up-to-date and accurate information about cleaning techniques.`

// WebSource is one grounding citation returned alongside the answer.
type WebSource struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// geminiResponse covers the slice of the generateContent response we consume.
type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
		GroundingMetadata struct {
			GroundingChunks []struct {
				Web *WebSource `json:"web,omitempty"`
			} `json:"groundingChunks"`
		} `json:"groundingMetadata"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func geminiConfig() (apiKey, model string, err error) {
	apiKey = os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return "", "", fmt.Errorf("gemini configuration missing")
	}
	model = os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return apiKey, model, nil
}

// GenerateCleaningAdvice forwards the question to the Gemini generateContent
// API with google_search grounding and returns the answer plus web citations.
// Stateless, no retry: the caller sees the upstream error as-is.
func GenerateCleaningAdvice(prompt, language string) (string, []WebSource, error) {
	apiKey, model, err := geminiConfig()
	if err != nil {
		return "", nil, err
	}

	langContext := "Answer in English language."
	if language == "ro" {
		langContext = "Answer in Romanian language."
	}

	payload := map[string]interface{}{
		"contents": []map[string]interface{}{
			{"parts": []map[string]string{{"text": prompt + " " + langContext}}},
		},
		"systemInstruction": map[string]interface{}{
			"parts": []map[string]string{{"text": systemInstruction}},
		},
		"tools": []map[string]interface{}{
			{"google_search": map[string]interface{}{}},
		},
	}

	jsonData, _ := json.Marshal(payload)
	apiURL := fmt.Sprintf(
		"https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent",
		model,
	)

	req, _ := http.NewRequest("POST", apiURL, bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", apiKey)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return "", nil, fmt.Errorf("failed to reach Gemini: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", nil, fmt.Errorf("gemini API error (%d): %s", resp.StatusCode, string(body))
	}

	var gemResp geminiResponse
	if err := json.Unmarshal(body, &gemResp); err != nil {
		return "", nil, fmt.Errorf("failed to parse Gemini response: %v", err)
	}
	if gemResp.Error != nil {
		return "", nil, fmt.Errorf("gemini error: %s", gemResp.Error.Message)
	}
	if len(gemResp.Candidates) == 0 {
		return "", nil, fmt.Errorf("gemini returned no candidates")
	}

	candidate := gemResp.Candidates[0]
	var text string
	for _, part := range candidate.Content.Parts {
		text += part.Text
	}

	var sources []WebSource
	for _, chunk := range candidate.GroundingMetadata.GroundingChunks {
		if chunk.Web != nil {
			sources = append(sources, *chunk.Web)
		}
	}

	return text, sources, nil
}

// POST /assistant/chat
func ChatHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Message  string `json:"message" binding:"required"`
			Language string `json:"language"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
			return
		}

		text, sources, err := GenerateCleaningAdvice(input.Message, input.Language)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"text":    text,
			"sources": sources,
		})
	}
}
