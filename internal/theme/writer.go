package theme

// Writer defines an interface for writing output
type Writer interface {
	Print(a ...interface{})
	Printf(format string, a ...interface{})
	Println(a ...interface{})
}
