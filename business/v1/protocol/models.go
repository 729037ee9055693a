package protocol

type Protocol struct {
	ProtocolId uint64 `json:"protocol_id" example:"1"`
	Title      string `json:"title" example:"Lockdown"`
	Content    string `json:"content" example:"Secure all entrances."`
}
