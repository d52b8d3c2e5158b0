package wslpath

// This file contains the Windows-side queries about registered distros, read
// from the Lxss registry key.

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/ubuntu/decorate"
)

// DefaultDistro returns the name of the default distribution.
//
// It is analogous to
//
//	`wsl.exe --list` (the starred entry)
//
// Only available on the Windows side.
func DefaultDistro(ctx context.Context) (name string, err error) {
	defer decorate.OnError(&err, "could not determine the default distro")

	// First, we find out the GUID of the default distro
	r, err := selectBackend(ctx).OpenLxssRegistry(".")
	if err != nil {
		return "", err
	}
	defer r.Close()

	guid, err := r.Field("DefaultDistribution")
	if err != nil {
		return "", err
	}

	// Safety check: we ensure the registry handed back a GUID
	if _, err := uuid.Parse(guid); err != nil {
		return "", fmt.Errorf("registry returned invalid GUID: %s", guid)
	}

	// Last, we find out the name of the distro
	return distributionName(ctx, guid)
}

// RegisteredDistros returns the names of the registered distros, sorted.
//
// It is analogous to
//
//	`wsl.exe --list --all`
//
// Only available on the Windows side.
func RegisteredDistros(ctx context.Context) (names []string, err error) {
	defer decorate.OnError(&err, "could not obtain the registered distros")

	r, err := selectBackend(ctx).OpenLxssRegistry(".")
	if err != nil {
		return nil, err
	}
	defer r.Close()

	subkeys, err := r.SubkeyNames()
	if err != nil {
		return nil, err
	}

	for _, key := range subkeys {
		if _, err := uuid.Parse(key); err != nil {
			continue // Not a WSL distro
		}

		name, err := distributionName(ctx, key)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}

	sort.Strings(names)
	return names, nil
}

// distributionName reads the DistributionName field under one distro's
// registry key.
func distributionName(ctx context.Context, guid string) (string, error) {
	r, err := selectBackend(ctx).OpenLxssRegistry(guid)
	if err != nil {
		return "", err
	}
	defer r.Close()

	return r.Field("DistributionName")
}
