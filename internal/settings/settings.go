package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"
	cty "github.com/zclconf/go-cty/cty"

	"github.com/Tinerou/7tv-emotes-obsidian-plugin-sub000/internal/emotes"
	"github.com/Tinerou/7tv-emotes-obsidian-plugin-sub000/pkg/log"
)

// Settings is the user-editable configuration. AccountID is the only field a
// user normally touches; the endpoint overrides exist for testing against a
// local service.
type Settings struct {
	AccountID string
	Service   string
	Provider  string
	CDNBase   string
}

// Defaults returns settings pointing at the public 7TV endpoints with no
// account configured.
func Defaults() Settings {
	return Settings{
		Service:  emotes.DefaultService,
		Provider: emotes.DefaultProvider,
		CDNBase:  emotes.DefaultCDNBase,
	}
}

// DefaultPath is the settings file location, ~/.emotetab/settings.hcl.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".emotetab", "settings.hcl")
	}
	return filepath.Join(home, ".emotetab", "settings.hcl")
}

// Load reads the settings file at path. A missing file yields Defaults with no
// error; a malformed file yields Defaults plus the parse error.
func Load(path string) (Settings, error) {
	s := Defaults()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return s, nil
	}
	p := hclparse.NewParser()
	f, diags := p.ParseHCLFile(path)
	if diags != nil && diags.HasErrors() || f == nil {
		return s, fmt.Errorf("parse %s: %s", path, diags.Error())
	}
	attrs, _ := f.Body.JustAttributes()
	read := func(key string, dst *string) {
		a, ok := attrs[key]
		if !ok {
			return
		}
		v, d := a.Expr.Value(nil)
		if (d != nil && d.HasErrors()) || v.Type() != cty.String || v.IsNull() {
			return
		}
		*dst = v.AsString()
	}
	read("account_id", &s.AccountID)
	read("service", &s.Service)
	read("provider", &s.Provider)
	read("cdn_base", &s.CDNBase)
	return s, nil
}

// Save writes the settings file, creating the parent directory if needed.
// Called on every settings change.
func Save(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	f := hclwrite.NewEmptyFile()
	body := f.Body()
	body.SetAttributeValue("account_id", cty.StringVal(s.AccountID))
	if s.Service != emotes.DefaultService {
		body.SetAttributeValue("service", cty.StringVal(s.Service))
	}
	if s.Provider != emotes.DefaultProvider {
		body.SetAttributeValue("provider", cty.StringVal(s.Provider))
	}
	if s.CDNBase != emotes.DefaultCDNBase {
		body.SetAttributeValue("cdn_base", cty.StringVal(s.CDNBase))
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, f.Bytes(), 0o600); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("finalize settings: %w", err)
	}
	return nil
}

// ValidAccountID reports whether id looks like a platform account id, which
// is numeric on every supported provider. A mismatch is a warning, not an
// error: the resolver will simply come back with the fallback mapping.
func ValidAccountID(id string) bool {
	if id == "" {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < '0' || id[i] > '9' {
			return false
		}
	}
	return true
}

// WarnAccountID logs when a configured account id does not look numeric.
func WarnAccountID(id string) {
	if id != "" && !ValidAccountID(id) {
		log.Warn("account id", id, "is not numeric; lookups will likely return nothing")
	}
}
