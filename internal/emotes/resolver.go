package emotes

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	cleanhttp "github.com/hashicorp/go-cleanhttp"
	multierror "github.com/hashicorp/go-multierror"

	"github.com/Tinerou/7tv-emotes-obsidian-plugin-sub000/internal/encoding/jsonx"
	"github.com/Tinerou/7tv-emotes-obsidian-plugin-sub000/pkg/log"
)

const (
	// DefaultService is the 7TV REST endpoint.
	DefaultService = "https://7tv.io/v3"
	// DefaultProvider scopes account lookups to the platform the account id
	// belongs to.
	DefaultProvider = "twitch"

	resolveTimeout = 10 * time.Second
	maxBodyBytes   = 4 << 20
)

// Resolver translates an external account id into a name -> identifier mapping
// via two sequential lookups: account -> emote set id, then emote set id ->
// entries. It never fails outward; any network or parse error is logged and
// the fallback-only mapping is returned instead.
type Resolver struct {
	Service  string
	Provider string
	Client   *http.Client
}

// NewResolver returns a resolver against the default 7TV endpoints, using a
// pooled cleanhttp client.
func NewResolver() *Resolver {
	return &Resolver{
		Service:  DefaultService,
		Provider: DefaultProvider,
		Client:   cleanhttp.DefaultPooledClient(),
	}
}

// Shapes the account lookup may answer with. The set id appears either as a
// singular connected set or as the first entry of a plural list, depending on
// the service version.
type userResponse struct {
	EmoteSet *struct {
		ID string `json:"id"`
	} `json:"emote_set"`
	EmoteSets []struct {
		ID string `json:"id"`
	} `json:"emote_sets"`
}

type setResponse struct {
	Emotes []struct {
		Name string `json:"name"`
		ID   string `json:"id"`
	} `json:"emotes"`
}

// Resolve builds a fresh mapping for accountID. The fallback entry is seeded
// before any network activity, so every return value is non-empty and the
// fallback survives every failure mode. An empty accountID skips the network
// entirely.
func (r *Resolver) Resolve(ctx context.Context, accountID string) *Mapping {
	m := NewMapping()
	if accountID == "" {
		return m
	}

	var errs *multierror.Error

	setID, err := r.lookupSetID(ctx, accountID)
	if err != nil {
		errs = multierror.Append(errs, err)
	} else if err := r.collectEmotes(ctx, setID, m); err != nil {
		errs = multierror.Append(errs, err)
	}
	if errs.ErrorOrNil() != nil {
		log.Warn("emote refresh:", errs.Error())
	}
	return m
}

func (r *Resolver) lookupSetID(ctx context.Context, accountID string) (string, error) {
	body, err := r.get(ctx, fmt.Sprintf("%s/users/%s/%s", r.Service, r.Provider, accountID))
	if err != nil {
		return "", err
	}
	var u userResponse
	if err := jsonx.Unmarshal(body, &u); err != nil {
		return "", fmt.Errorf("parse user response: %w", err)
	}
	if u.EmoteSet != nil && u.EmoteSet.ID != "" {
		return u.EmoteSet.ID, nil
	}
	if len(u.EmoteSets) > 0 && u.EmoteSets[0].ID != "" {
		return u.EmoteSets[0].ID, nil
	}
	return "", fmt.Errorf("user response carries no emote set id")
}

func (r *Resolver) collectEmotes(ctx context.Context, setID string, m *Mapping) error {
	body, err := r.get(ctx, fmt.Sprintf("%s/emote-sets/%s", r.Service, setID))
	if err != nil {
		return err
	}
	var s setResponse
	if err := jsonx.Unmarshal(body, &s); err != nil {
		return fmt.Errorf("parse emote set response: %w", err)
	}
	for _, e := range s.Emotes {
		// Entries missing either field are skipped silently; Put also
		// applies the last-wins rule for duplicate names.
		m.Put(e.Name, e.ID)
	}
	return nil
}

func (r *Resolver) get(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, resolveTimeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	client := r.Client
	if client == nil {
		client = cleanhttp.DefaultClient()
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("GET %s: unexpected status %s", url, resp.Status)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", url, err)
	}
	return body, nil
}
