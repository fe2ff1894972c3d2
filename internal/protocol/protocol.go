package protocol

// A PacketNumber in QUIC
type PacketNumber int64
