package components

// BackRequestMsg is emitted when a component asks to be closed.
type BackRequestMsg struct{}
