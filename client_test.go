package main

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quoteServer(t *testing.T, body string) *httptest.Server {
	t.Helper()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, body)
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestFetchQuote_FieldNormalization(t *testing.T) {
	tests := []struct {
		name string
		body string
		want Quote
	}{
		{
			name: "quote and author fields",
			body: `{"quote":"Stay curious.","author":"Someone"}`,
			want: Quote{Text: "Stay curious.", Author: "Someone"},
		},
		{
			name: "text and name variants",
			body: `{"text":"Be kind.","name":"Anon"}`,
			want: Quote{Text: "Be kind.", Author: "Anon"},
		},
		{
			name: "quote wins over text, author over name",
			body: `{"quote":"A","text":"B","author":"C","name":"D"}`,
			want: Quote{Text: "A", Author: "C"},
		},
		{
			name: "all fields missing read as empty",
			body: `{}`,
			want: Quote{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := quoteServer(t, tt.body)
			client := NewAPIClient(ts.URL, ts.URL)

			got, err := client.FetchQuote("general")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFetchQuote_SendsCategory(t *testing.T) {
	var gotCategory string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCategory = r.URL.Query().Get("category")
		fmt.Fprint(w, `{"quote":"x"}`)
	}))
	t.Cleanup(ts.Close)

	client := NewAPIClient(ts.URL, ts.URL)
	_, err := client.FetchQuote("life & work")
	require.NoError(t, err)

	assert.Equal(t, "life & work", gotCategory)
}

func TestFetchQuote_ServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(ts.Close)

	client := NewAPIClient(ts.URL, ts.URL)
	_, err := client.FetchQuote("general")
	assert.Error(t, err)
}

func TestFetchTasks_KeepsServerOrder(t *testing.T) {
	ts := quoteServer(t, `[{"id":3,"task":"c","finished":1},{"id":1,"task":"a","finished":0}]`)

	client := NewAPIClient(ts.URL, ts.URL)
	tasks, err := client.FetchTasks()
	require.NoError(t, err)

	require.Len(t, tasks, 2)
	assert.Equal(t, Task{ID: 3, Task: "c", Finished: 1}, tasks[0])
	assert.Equal(t, Task{ID: 1, Task: "a", Finished: 0}, tasks[1])
	assert.True(t, tasks[0].Done())
	assert.False(t, tasks[1].Done())
}

func TestFetchTasks_MalformedBody(t *testing.T) {
	ts := quoteServer(t, `{"not":"a list"}`)

	client := NewAPIClient(ts.URL, ts.URL)
	_, err := client.FetchTasks()
	assert.Error(t, err)
}

func TestPatchTaskFinished_RequestShape(t *testing.T) {
	var gotMethod, gotPath, gotBody string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		fmt.Fprint(w, `{"id":7,"task":"x","finished":1}`)
	}))
	t.Cleanup(ts.Close)

	client := NewAPIClient(ts.URL, ts.URL)
	require.NoError(t, client.PatchTaskFinished(7, 1))

	assert.Equal(t, "PATCH", gotMethod)
	assert.Equal(t, "/api/v1/tasks/7", gotPath)
	assert.JSONEq(t, `{"finished":1}`, gotBody)
}

func TestPostNewTask_RequestShape(t *testing.T) {
	var gotMethod, gotPath, gotBody string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"id":8,"task":"Buy milk","finished":0}`)
	}))
	t.Cleanup(ts.Close)

	client := NewAPIClient(ts.URL, ts.URL)
	require.NoError(t, client.PostNewTask("Buy milk"))

	assert.Equal(t, "POST", gotMethod)
	assert.Equal(t, "/api/v1/tasks", gotPath)
	assert.JSONEq(t, `{"task":"Buy milk"}`, gotBody)
}

func TestFetchNotes_MissingFieldReadsEmpty(t *testing.T) {
	ts := quoteServer(t, `{}`)

	client := NewAPIClient(ts.URL, ts.URL)
	notes, err := client.FetchNotes()
	require.NoError(t, err)

	assert.Equal(t, "", notes)
}

func TestPutNotes_ReturnsEcho(t *testing.T) {
	ts := quoteServer(t, `{"notes":"hello!"}`)

	client := NewAPIClient(ts.URL, ts.URL)
	echo, err := client.PutNotes("hello!")
	require.NoError(t, err)

	assert.Equal(t, "hello!", echo)
}

func TestPutNotes_NormalizedEchoWins(t *testing.T) {
	ts := quoteServer(t, `{"notes":"hello"}`)

	client := NewAPIClient(ts.URL, ts.URL)
	echo, err := client.PutNotes("  hello  ")
	require.NoError(t, err)

	assert.Equal(t, "hello", echo)
}

func TestPutNotes_MissingEchoFallsBackToSentText(t *testing.T) {
	ts := quoteServer(t, `{}`)

	client := NewAPIClient(ts.URL, ts.URL)
	echo, err := client.PutNotes("hello!")
	require.NoError(t, err)

	assert.Equal(t, "hello!", echo)
}
