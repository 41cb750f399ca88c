package audio

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/eslsoft/mandarin-master/internal/entity"
	"github.com/eslsoft/mandarin-master/internal/infrastructure/config"
)

func newTestPlayer(t *testing.T, handler http.Handler) *Player {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewPlayer(config.AudioConfig{
		BaseURL:        server.URL + "/",
		CacheDir:       t.TempDir(),
		TimeoutSeconds: 2,
	}, logger)
}

func TestFetchDownloadsAndCaches(t *testing.T) {
	hits := 0
	player := newTestPlayer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte("mp3-bytes"))
	}))
	ctx := context.Background()

	path, err := player.Fetch(ctx, "好")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "mp3-bytes" {
		t.Fatalf("cached file: %q, %v", data, err)
	}

	// Second fetch must come from the cache.
	again, err := player.Fetch(ctx, "好")
	if err != nil {
		t.Fatalf("cached fetch: %v", err)
	}
	if again != path {
		t.Errorf("cache path changed: %q vs %q", again, path)
	}
	if hits != 1 {
		t.Errorf("server hit %d times, want 1", hits)
	}
}

func TestFetchNotFound(t *testing.T) {
	player := newTestPlayer(t, http.NotFoundHandler())

	_, err := player.Fetch(context.Background(), "好")
	if !errors.Is(err, entity.ErrAudioNotFound) {
		t.Errorf("err = %v, want ErrAudioNotFound", err)
	}
}

func TestFetchServerError(t *testing.T) {
	player := newTestPlayer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := player.Fetch(context.Background(), "好")
	if err == nil {
		t.Fatal("expected an error for a 500 response")
	}
	if errors.Is(err, entity.ErrAudioNotFound) {
		t.Error("server error misclassified as not-found")
	}
}

func TestURLEscapesHanzi(t *testing.T) {
	player := NewPlayer(config.AudioConfig{BaseURL: "https://cdn.example/hsk/"}, nil)
	want := "https://cdn.example/hsk/cmn-%E4%BD%A0%E5%A5%BD.mp3"
	if got := player.URL("你好"); got != want {
		t.Errorf("URL = %q, want %q", got, want)
	}
}
