package emotes

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	cleanhttp "github.com/hashicorp/go-cleanhttp"
	getter "github.com/hashicorp/go-getter"
	safetemp "github.com/hashicorp/go-safetemp"
)

// FetchEmoteAsset downloads the emote image for id into cacheDir and returns
// the local file path. Downloads land in a temp dir first and are renamed into
// a fingerprinted cache path, so concurrent or interrupted fetches never leave
// a partial file at the final location. An already-cached asset is reused.
func FetchEmoteAsset(ctx context.Context, cdnBase, id, cacheDir string) (string, error) {
	if id == "" {
		return "", fmt.Errorf("empty emote identifier")
	}
	if cacheDir == "" {
		return "", fmt.Errorf("cacheDir required")
	}
	if err := os.MkdirAll(cacheDir, 0o700); err != nil {
		return "", fmt.Errorf("create cache dir: %w", err)
	}
	url := EmoteURL(cdnBase, id)
	dest := filepath.Join(cacheDir, fingerprint(url)+".webp")
	if fi, err := os.Stat(dest); err == nil && !fi.IsDir() {
		return dest, nil
	}

	tmpDir, cleanup, err := safetemp.Dir(cacheDir, "emotefetch-")
	if err != nil {
		return "", fmt.Errorf("temp dir: %w", err)
	}
	defer func() {
		if cleanup != nil {
			_ = cleanup.Close()
		}
	}()

	tmpFile := filepath.Join(tmpDir, "emote.webp")
	client := &getter.Client{
		Ctx:  ctx,
		Src:  url,
		Dst:  tmpFile,
		Mode: getter.ClientModeFile,
		// Ensure standard HTTP behaviors (proxies, certs, etc.)
		Getters: map[string]getter.Getter{
			"http":  &getter.HttpGetter{Client: defaultHTTPClient()},
			"https": &getter.HttpGetter{Client: defaultHTTPClient()},
		},
	}
	if err := client.Get(); err != nil {
		return "", fmt.Errorf("fetch emote asset: %w", err)
	}
	if err := os.Rename(tmpFile, dest); err != nil {
		return "", fmt.Errorf("cache move: %w", err)
	}
	return dest, nil
}

func defaultHTTPClient() *http.Client {
	return cleanhttp.DefaultClient()
}

func fingerprint(s string) string {
	h := sha1.Sum([]byte(s))
	return hex.EncodeToString(h[:])
}
