// Command smoke_fanfic sends one story request to a running server and prints
// the result. Run the server with LLM_PROVIDER=mock to try it offline.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

const defaultBaseURL = "http://localhost:5000"

type chapter struct {
	Title      string   `json:"titulo"`
	Paragraphs []string `json:"historia"`
}

type storyResponse struct {
	Title    string    `json:"titulo"`
	Chapters []chapter `json:"capitulos"`
	Error    string    `json:"error"`
}

func main() {
	baseURL := os.Getenv("FANFIC_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	language := "Inglês"
	if len(os.Args) > 1 {
		language = os.Args[1]
	}

	fmt.Println("🚀 Starting fanfic smoke test...")

	if err := ping(baseURL); err != nil {
		log.Fatalf("Server is not answering: %v", err)
	}
	fmt.Println("✅ Server is up")

	story, err := requestStory(baseURL, language)
	if err != nil {
		log.Fatalf("Failed to generate story: %v", err)
	}
	if story.Error != "" {
		log.Fatalf("API returned error: %s", story.Error)
	}

	fmt.Printf("📖 %s\n", story.Title)
	for _, c := range story.Chapters {
		fmt.Printf("  %s (%d paragraphs)\n", c.Title, len(c.Paragraphs))
	}
	fmt.Println("✅ Fanfic smoke test completed successfully!")
}

func ping(baseURL string) error {
	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(baseURL + "/")
	if err != nil {
		return fmt.Errorf("failed to send request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}

func requestStory(baseURL, language string) (*storyResponse, error) {
	payload, err := json.Marshal(map[string]interface{}{
		"personagens": []map[string]string{
			{"nome": "Ana", "papel": "Protagonista"},
			{"nome": "Bruno"},
		},
		"genero":  "aventura",
		"cenario": "uma vila no litoral",
		"idioma":  language,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, baseURL+"/fanfic", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// generation can take a while
	client := &http.Client{Timeout: 90 * time.Second}
	fmt.Println("📤 Requesting story...")

	startTime := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %v", err)
	}
	defer resp.Body.Close()
	fmt.Printf("⏱️  Request completed in %v\n", time.Since(startTime))

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var story storyResponse
	if err := json.Unmarshal(body, &story); err != nil {
		return nil, fmt.Errorf("failed to decode response: %v: %s", err, string(body))
	}
	return &story, nil
}
