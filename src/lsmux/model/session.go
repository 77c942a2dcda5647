package model

import (
	"time"

	"github.com/uber/lsmux/src/lsmux/entity"
)

// Session is the repository layer model for a live language server session.
type Session struct {
	FolderKey     string
	FolderName    string
	CommandPrefix string
	Conn          entity.Connection
	StartedAt     time.Time
}
