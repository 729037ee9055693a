package protocol

const protocolsKey = "protocols"

type Protocol struct {
	ProtocolId uint64
	Title      string
	Content    string
}
