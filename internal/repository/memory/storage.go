// Package memory holds map-backed storages used with STORAGE_TYPE=memory and in tests.
package memory

import "github.com/Maruf-rahman11/threadhub-web-server/internal/services"

var (
	_ services.PostStorage         = (*PostStorage)(nil)
	_ services.UserStorage         = (*UserStorage)(nil)
	_ services.AnnouncementStorage = (*AnnouncementStorage)(nil)
)
