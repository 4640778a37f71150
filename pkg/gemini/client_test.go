package gemini

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"google.golang.org/genai"
)

func TestClient_Classify_NoAPIKey(t *testing.T) {
	c := NewClient("", "gemini-2.5-flash", time.Second)

	match := c.Classify(context.Background(), "my ceiling fan is not working")

	assert.Nil(t, match)
}

func TestClient_ConcurrentInit(t *testing.T) {
	c := NewClient("test-key", "gemini-2.5-flash", time.Second)

	const goroutines = 4

	var wg sync.WaitGroup
	got := make([]*genaiClientResult, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			client, err := c.client(context.Background())
			got[i] = &genaiClientResult{client: client, err: err}
		}(i)
	}

	wg.Wait()

	// All callers must observe the same underlying client.
	for i := 1; i < goroutines; i++ {
		assert.Equal(t, got[0].err == nil, got[i].err == nil)
		assert.Same(t, got[0].client, got[i].client)
	}
}

type genaiClientResult struct {
	client *genai.Client
	err    error
}

func TestClient_DraftBio_NoAPIKey(t *testing.T) {
	c := NewClient("", "gemini-2.5-flash", time.Second)

	bio := c.DraftBio(context.Background(), "Plumber", []string{"Reliable"})

	assert.Equal(t, FallbackBio, bio)
}
