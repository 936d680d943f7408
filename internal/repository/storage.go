package repository

import "github.com/Maruf-rahman11/threadhub-web-server/internal/services"

var (
	_ services.PostStorage         = (*PostRepository)(nil)
	_ services.UserStorage         = (*UserRepository)(nil)
	_ services.AnnouncementStorage = (*AnnouncementRepository)(nil)
)
