package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NewID builds a record identifier when the caller did not supply one:
// millisecond timestamp (keeps ids roughly sortable by creation time, like
// the console-generated ones) plus a uuid fragment against collisions.
func NewID() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
