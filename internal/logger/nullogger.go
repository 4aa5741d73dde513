package logger

// NullLogger drops every entry. Tests and optional components use it.
type NullLogger struct{}

var _ Logger = NullLogger{}

func NewNullLogger() NullLogger { return NullLogger{} }

func (NullLogger) Debug(string, map[string]interface{}) {}
func (NullLogger) Info(string, map[string]interface{}) {}
func (NullLogger) Error(error, map[string]interface{}) {}
func (NullLogger) Fatal(error, map[string]interface{}) {}
func (NullLogger) SetLevel(Level) {}
func (n NullLogger) With(Fields) Logger { return n }
