// Seed registers a batch of fake users through the live API.
// Useful for local development and demo environments.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

func main() {
	baseURL := flag.String("base-url", "http://localhost:8080", "API base URL")
	count := flag.Int("count", 10, "number of users to register")
	flag.Parse()

	client := &http.Client{Timeout: 10 * time.Second}
	url := strings.TrimRight(*baseURL, "/") + "/api/auth/register"

	created := 0
	for i := 0; i < *count; i++ {
		payload := map[string]string{
			"name":     gofakeit.Name(),
			"email":    gofakeit.Email(),
			"password": gofakeit.Password(true, true, true, false, false, 12),
			"address":  gofakeit.Address().Address,
		}

		body, err := json.Marshal(payload)
		if err != nil {
			log.Fatalf("marshal payload: %v", err)
		}

		resp, err := client.Post(url, "application/json", bytes.NewReader(body))
		if err != nil {
			log.Fatalf("register request: %v", err)
		}

		if resp.StatusCode != http.StatusCreated {
			var errBody map[string]any
			_ = json.NewDecoder(resp.Body).Decode(&errBody)
			log.Printf("skipped %s: status %d, body %v", payload["email"], resp.StatusCode, errBody)
		} else {
			created++
		}
		_ = resp.Body.Close()
	}

	fmt.Printf("registered %d/%d users against %s\n", created, *count, *baseURL)
}
