package mock

import (
	"errors"
	"io/fs"
	"path/filepath"
	"sync"

	"github.com/codekoriko/wsl-pathlib/internal/backend"
	"github.com/google/uuid"
	"github.com/ubuntu/decorate"
)

// RegistryKey wraps around a Windows registry key.
// Create it by calling OpenLxssRegistry. Must be closed after use with RegistryKey.Close.
// This implementation is a mock used for testing.
type RegistryKey struct {
	path string

	children map[string]*RegistryKey
	Data     map[string]any

	mu sync.RWMutex
}

const lxssPath = `Software/Microsoft/Windows/CurrentVersion/Lxss/`

// OpenLxssRegistry opens a registry key at the chosen subpath of the Lxss key.
//
// This implementation is a mock used for testing.
func (b *Backend) OpenLxssRegistry(path string) (r backend.RegistryKey, err error) {
	defer decorate.OnError(&err, "registry: could not open %s", filepath.Join("HKEY_CURRENT_USER", lxssPath, path))

	if b.OpenLxssKeyError {
		return nil, Error{}
	}

	b.lxssRootKey.mu.RLock()
	if path == "." {
		// We "leak" the locked mutex. The user is in charge of releasing it with .Close()
		return b.lxssRootKey, nil
	}

	key, ok := b.lxssRootKey.children[path]
	b.lxssRootKey.mu.RUnlock()
	if !ok {
		return nil, fs.ErrNotExist
	}

	key.mu.RLock()

	return key, nil
}

// Close releases the key.
// This implementation is a mock used for testing.
func (r *RegistryKey) Close() (err error) {
	r.mu.RUnlock()

	return nil
}

// Field obtains the value of a Field. The value must be a string.
// This implementation is a mock used for testing.
func (r *RegistryKey) Field(name string) (value string, err error) {
	defer decorate.OnError(&err, "registry: could not access field %q in %s", name, r.path)

	v, ok := r.Data[name]
	if !ok {
		return "", fs.ErrNotExist
	}

	s, ok := v.(string)
	if !ok {
		return "", errors.New("field is not string")
	}

	return s, nil
}

// SubkeyNames returns a slice containing the names of the current key's children.
// This implementation is a mock used for testing.
func (r *RegistryKey) SubkeyNames() (subkeys []string, err error) {
	defer decorate.OnError(&err, "registry: could not access subkeys under %s", r.path)

	for key := range r.children {
		subkeys = append(subkeys, key)
	}

	return subkeys, nil
}

// AddDistro registers a distro fixture under the Lxss tree.
func (b *Backend) AddDistro(name string, id uuid.UUID) {
	guid := "{" + id.String() + "}"

	b.lxssRootKey.mu.Lock()
	defer b.lxssRootKey.mu.Unlock()

	b.lxssRootKey.children[guid] = &RegistryKey{
		path: filepath.Join(lxssPath, guid),
		Data: map[string]any{
			"DistributionName": name,
		},
	}
}

// SetDefaultDistro points the DefaultDistribution fixture at the given GUID.
// The distro is expected to have been added with AddDistro.
func (b *Backend) SetDefaultDistro(id uuid.UUID) {
	b.lxssRootKey.mu.Lock()
	defer b.lxssRootKey.mu.Unlock()

	b.lxssRootKey.Data["DefaultDistribution"] = "{" + id.String() + "}"
}
