package permissions

import (
	_ "embed"
	"encoding/json"
	"slices"
	"sync"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

// Allows reports whether the role may call the endpoint. An endpoint with
// no roles listed is open to any authenticated caller.
func (p Permission) Allows(role string) bool {
	if len(p.Permissions) == 0 {
		return true
	}

	return slices.Contains(p.Permissions, role)
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`
}

func (r *PermissionData) FindPermissions(path, method string) Permission {
	idx := slices.IndexFunc(r.Endpoints, func(rp Permission) bool {
		return rp.Path == path && rp.Method == method
	})

	if idx == -1 {
		return Permission{}
	}

	return r.Endpoints[idx]
}

var (
	once   sync.Once
	loaded *PermissionData
)

func Get() *PermissionData {
	once.Do(func() {
		var permissions PermissionData

		if err := json.Unmarshal(permissionsData, &permissions); err != nil {
			log.Err(err).Msg("Failed to decode embedded permissions")

			return
		}

		log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("Successfully loaded embedded permissions")

		loaded = &permissions
	})

	return loaded
}
