package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

type (
	// quotePayload carries both field-name variants the quote service is
	// known to use. Precedence: quote over text, author over name.
	quotePayload struct {
		Quote  string `json:"quote"`
		Text   string `json:"text"`
		Author string `json:"author"`
		Name   string `json:"name"`
	}

	notesPayload struct {
		Notes string `json:"notes"`
	}
)

type APIClient struct {
	boardURL   string
	quoteURL   string
	httpClient *http.Client
}

func NewAPIClient(boardURL, quoteURL string) *APIClient {
	return &APIClient{
		boardURL: boardURL,
		quoteURL: quoteURL,
		// no timeout: only one request per slice is ever in flight
		httpClient: &http.Client{},
	}
}

// fetches a quote for the given category
func (c *APIClient) FetchQuote(category string) (Quote, error) {
	u := fmt.Sprintf("%s/api/v1/quotes?category=%s", c.quoteURL, url.QueryEscape(category))

	req, err := http.NewRequest("GET", u, nil)
	if err != nil {
		return Quote{}, fmt.Errorf("error creating request: %w", err)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return Quote{}, fmt.Errorf("error making request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return Quote{}, fmt.Errorf("quote service returned %s", res.Status)
	}

	var payload quotePayload
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return Quote{}, fmt.Errorf("error decoding response: %w", err)
	}

	return normalizeQuote(payload), nil
}

// normalizeQuote resolves the service's field-name variants into the
// displayed form; absent fields become empty strings
func normalizeQuote(p quotePayload) Quote {
	return Quote{
		Text:   firstNonEmpty(p.Quote, p.Text),
		Author: firstNonEmpty(p.Author, p.Name),
	}
}

// fetches all tasks in server order
func (c *APIClient) FetchTasks() ([]Task, error) {
	u := fmt.Sprintf("%s/api/v1/tasks", c.boardURL)

	req, err := http.NewRequest("GET", u, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("board service returned %s", res.Status)
	}

	var tasks []Task
	if err := json.NewDecoder(res.Body).Decode(&tasks); err != nil {
		return nil, fmt.Errorf("error decoding response: %w", err)
	}

	return tasks, nil
}

// sends a partial update flipping one task's finished flag
func (c *APIClient) PatchTaskFinished(id int64, finished int) error {
	u := fmt.Sprintf("%s/api/v1/tasks/%d", c.boardURL, id)

	reqBody, err := json.Marshal(struct {
		Finished int `json:"finished"`
	}{Finished: finished})
	if err != nil {
		return fmt.Errorf("error encoding request: %w", err)
	}

	req, err := http.NewRequest("PATCH", u, bytes.NewReader(reqBody))
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error making request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("board service returned %s", res.Status)
	}

	// the updated task comes back but nothing is done with it; the list is
	// re-fetched afterwards anyway
	return nil
}

// creates a new task; the server assigns the id and unfinished state
func (c *APIClient) PostNewTask(text string) error {
	u := fmt.Sprintf("%s/api/v1/tasks", c.boardURL)

	reqBody, err := json.Marshal(struct {
		Task string `json:"task"`
	}{Task: text})
	if err != nil {
		return fmt.Errorf("error encoding request: %w", err)
	}

	req, err := http.NewRequest("POST", u, bytes.NewReader(reqBody))
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error making request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK && res.StatusCode != http.StatusCreated {
		return fmt.Errorf("board service returned %s", res.Status)
	}

	return nil
}

// fetches the shared notes blob; a missing notes field reads as empty
func (c *APIClient) FetchNotes() (string, error) {
	u := fmt.Sprintf("%s/api/v1/notes", c.boardURL)

	req, err := http.NewRequest("GET", u, nil)
	if err != nil {
		return "", fmt.Errorf("error creating request: %w", err)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("error making request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("board service returned %s", res.Status)
	}

	var payload notesPayload
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("error decoding response: %w", err)
	}

	return payload.Notes, nil
}

// replaces the notes blob and returns the server's echoed value, which may
// be a normalized form of what was sent; if the echo omits the field the
// sent text stands in for it
func (c *APIClient) PutNotes(text string) (string, error) {
	u := fmt.Sprintf("%s/api/v1/notes", c.boardURL)

	reqBody, err := json.Marshal(notesPayload{Notes: text})
	if err != nil {
		return "", fmt.Errorf("error encoding request: %w", err)
	}

	req, err := http.NewRequest("PUT", u, bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("error making request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("board service returned %s", res.Status)
	}

	var payload struct {
		Notes *string `json:"notes"`
	}
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("error decoding response: %w", err)
	}

	if payload.Notes == nil {
		return text, nil
	}
	return *payload.Notes, nil
}
