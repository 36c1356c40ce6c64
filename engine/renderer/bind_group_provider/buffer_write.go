package bind_group_provider

// BufferWrite is one queued uniform upload: Data lands in the buffer behind Binding on
// Provider, starting at Offset bytes.
type BufferWrite struct {
	Provider BindGroupProvider
	Binding  int
	Offset   uint64
	Data     []byte
}
