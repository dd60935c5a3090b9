package transports

// Mock implements the client's stream contract for testing. Reads serve
// ReadData one call at a time unless ReadFunc overrides them; an exhausted
// mock reports an idle line as (0, nil), the same as a quiet serial port.
type Mock struct {
	ReadData  []byte
	ReadErr   error
	WriteData []byte
	WriteErr  error
	FlushErr  error
	Flushes   int
	Closed    bool

	// ReadFunc allows custom read behavior for complex tests.
	ReadFunc func(p []byte) (int, error)
}

func (m *Mock) Read(p []byte) (int, error) {
	if m.ReadFunc != nil {
		return m.ReadFunc(p)
	}
	if m.ReadErr != nil {
		return 0, m.ReadErr
	}
	n := copy(p, m.ReadData)
	m.ReadData = m.ReadData[n:]
	return n, nil
}

func (m *Mock) Write(p []byte) (int, error) {
	if m.WriteErr != nil {
		return 0, m.WriteErr
	}
	m.WriteData = append(m.WriteData, p...)
	return len(p), nil
}

func (m *Mock) Flush() error {
	m.Flushes++
	return m.FlushErr
}

func (m *Mock) Close() error {
	m.Closed = true
	return nil
}
