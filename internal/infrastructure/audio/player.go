// Package audio fetches pronunciation clips from the public audio-cmn CDN.
// Audio is a collaborator: its failures are advisory and must never affect
// XP, streak, or lesson bookkeeping.
package audio

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/eslsoft/mandarin-master/internal/entity"
	"github.com/eslsoft/mandarin-master/internal/infrastructure/config"
)

// Player resolves and caches pronunciation audio keyed by the exact hanzi string.
type Player struct {
	client   *http.Client
	baseURL  string
	cacheDir string
	logger   *logrus.Logger
}

// NewPlayer builds a player from configuration.
func NewPlayer(cfg config.AudioConfig, logger *logrus.Logger) *Player {
	if logger == nil {
		logger = logrus.New()
	}
	return &Player{
		client:   &http.Client{Timeout: cfg.Timeout()},
		baseURL:  cfg.BaseURL,
		cacheDir: cfg.CacheDir,
		logger:   logger,
	}
}

// URL returns the CDN address for a hanzi string.
func (p *Player) URL(hanzi string) string {
	return p.baseURL + "cmn-" + url.PathEscape(hanzi) + ".mp3"
}

// Fetch downloads (or reuses a cached copy of) the clip for hanzi and returns
// the local file path. Not-found and timeout failures come back as descriptive
// errors the caller may surface as an advisory message.
func (p *Player) Fetch(ctx context.Context, hanzi string) (string, error) {
	cached := filepath.Join(p.cacheDir, "cmn-"+hanzi+".mp3")
	if _, err := os.Stat(cached); err == nil {
		return cached, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.URL(hanzi), nil)
	if err != nil {
		return "", fmt.Errorf("build audio request: %w", err)
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch audio for %q: %w", hanzi, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", fmt.Errorf("%w: %q", entity.ErrAudioNotFound, hanzi)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch audio for %q: unexpected status %s", hanzi, resp.Status)
	}

	if err := os.MkdirAll(p.cacheDir, 0o755); err != nil {
		return "", fmt.Errorf("create audio cache dir: %w", err)
	}
	tmp, err := os.CreateTemp(p.cacheDir, "dl-*.mp3")
	if err != nil {
		return "", fmt.Errorf("create audio cache file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return "", fmt.Errorf("download audio for %q: %w", hanzi, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close audio cache file: %w", err)
	}
	if err := os.Rename(tmp.Name(), cached); err != nil {
		return "", fmt.Errorf("cache audio for %q: %w", hanzi, err)
	}

	p.logger.WithField("hanzi", hanzi).Debug("cached pronunciation clip")
	return cached, nil
}
