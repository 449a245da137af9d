package models

type AuditLog struct {
	ID       string `json:"id"`
	Actor    string `json:"actor,omitempty"`
	Action   string `json:"action"`
	Entity   string `json:"entity,omitempty"`
	EntityID string `json:"entityId,omitempty"`
	Metadata string `json:"metadata,omitempty"`

	CreatedAt string `json:"createdAt"`
}
